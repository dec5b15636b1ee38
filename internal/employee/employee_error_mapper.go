package employee

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	employeeerrors "safety-api/internal/employee/errors"
	"safety-api/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "uq_employee_code" {
				return employeeerrors.ErrEmployeeCodeExists
			}
		case "23503":
			return apperror.Wrap(err,
				apperror.CodeInvalidReference,
				"Referenced record does not exist",
				http.StatusBadRequest,
			)
		}
	}

	// Driver-agnostic fallback for the unique code; sqlite phrases the
	// violation differently than postgres.
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "employee_code") &&
		(strings.Contains(errMsg, "duplicate key value") || strings.Contains(errMsg, "unique constraint")) {
		return employeeerrors.ErrEmployeeCodeExists
	}
	if strings.Contains(errMsg, "foreign key constraint") {
		return apperror.Wrap(err,
			apperror.CodeInvalidReference,
			"Referenced record does not exist",
			http.StatusBadRequest,
		)
	}

	return err
}

func mapWriteError(err error, action string) error {
	mapped := mapRepositoryError(err)

	var appErr *apperror.AppError
	if errors.As(mapped, &appErr) {
		return mapped
	}

	return apperror.Wrap(err,
		apperror.CodePersistenceFailed,
		fmt.Sprintf("Error %s employee", action),
		http.StatusBadRequest,
	)
}

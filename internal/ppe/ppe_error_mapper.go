package ppe

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	ppeerrors "safety-api/internal/ppe/errors"
	"safety-api/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ppeerrors.ErrPPEComplianceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return apperror.Wrap(err,
			apperror.CodeInvalidReference,
			"Referenced employee does not exist",
			http.StatusBadRequest,
		)
	}

	// Driver-agnostic fallback; sqlite phrases the violation differently
	// than postgres.
	if strings.Contains(strings.ToLower(err.Error()), "foreign key constraint") {
		return apperror.Wrap(err,
			apperror.CodeInvalidReference,
			"Referenced employee does not exist",
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
		fmt.Sprintf("Error %s PPE compliance record", action),
		http.StatusBadRequest,
	)
}

package location

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	locationerrors "safety-api/internal/location/errors"
	"safety-api/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return locationerrors.ErrLocationNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return apperror.Wrap(err,
			apperror.CodeInvalidReference,
			"Referenced record does not exist",
			http.StatusBadRequest,
		)
	}

	// Driver-agnostic fallback; sqlite phrases the violation differently
	// than postgres.
	if strings.Contains(strings.ToLower(err.Error()), "foreign key constraint") {
		return apperror.Wrap(err,
			apperror.CodeInvalidReference,
			"Referenced record does not exist",
			http.StatusBadRequest,
		)
	}

	return err
}

// mapWriteError is the write-path variant: anything the store rejects that
// is not already classified becomes a rolled-back 400 persistence failure.
func mapWriteError(err error, action string) error {
	mapped := mapRepositoryError(err)

	var appErr *apperror.AppError
	if errors.As(mapped, &appErr) {
		return mapped
	}

	return apperror.Wrap(err,
		apperror.CodePersistenceFailed,
		fmt.Sprintf("Error %s location", action),
		http.StatusBadRequest,
	)
}

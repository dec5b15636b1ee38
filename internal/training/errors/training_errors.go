package trainingerrors

import (
	"net/http"

	"safety-api/internal/shared/apperror"
)

var (
	ErrTrainingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Training session not found",
		http.StatusNotFound,
	)
	ErrInvalidTrainingID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid training ID",
		http.StatusBadRequest,
	)
	ErrInvalidCompletionDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid completion_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidExpiryDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid expiry_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)

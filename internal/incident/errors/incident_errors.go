package incidenterrors

import (
	"net/http"

	"safety-api/internal/shared/apperror"
)

var (
	ErrIncidentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Incident not found",
		http.StatusNotFound,
	)
	ErrInvalidIncidentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid incident ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateTime = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date_time format, expected RFC 3339",
		http.StatusBadRequest,
	)
)

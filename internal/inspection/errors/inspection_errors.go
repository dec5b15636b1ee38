package inspectionerrors

import (
	"net/http"

	"safety-api/internal/shared/apperror"
)

var (
	ErrInspectionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Inspection not found",
		http.StatusNotFound,
	)
	ErrInvalidInspectionID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid inspection ID",
		http.StatusBadRequest,
	)
	ErrInvalidInspectionDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid inspection_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidInspectionTime = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid inspection_time format, expected HH:MM:SS",
		http.StatusBadRequest,
	)
)

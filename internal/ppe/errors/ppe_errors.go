package ppeerrors

import (
	"net/http"

	"safety-api/internal/shared/apperror"
)

var (
	ErrPPEComplianceNotFound = apperror.New(
		apperror.CodeNotFound,
		"PPE compliance record not found",
		http.StatusNotFound,
	)
	ErrInvalidPPEComplianceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid PPE compliance record ID",
		http.StatusBadRequest,
	)
	ErrInvalidAssessmentDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid assessment_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)

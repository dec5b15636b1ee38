package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput      = "INVALID_INPUT"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeInvalidReference  = "INVALID_REFERENCE"
	CodePersistenceFailed = "PERSISTENCE_FAILED"

	// Server errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
)

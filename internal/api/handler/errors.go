package handler

import (
	"net/http"

	"github.com/starchase/starchase-go/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest      = apierr.CodeInvalidRequest
	CodeSessionNotFound     = apierr.CodeSessionNotFound
	CodeSessionFinished     = apierr.CodeSessionFinished
	CodeSummaryNotFound     = apierr.CodeSummaryNotFound
	CodePlayerNotFound      = apierr.CodePlayerNotFound
	CodeWrongPhase          = apierr.CodeWrongPhase
	CodeNotYourTurn         = apierr.CodeNotYourTurn
	CodeAlreadyAnswered     = apierr.CodeAlreadyAnswered
	CodeInvalidOption       = apierr.CodeInvalidOption
	CodeNoQuestionPosed     = apierr.CodeNoQuestionPosed
	CodeStarNotFound        = apierr.CodeStarNotFound
	CodeStarAlreadyEarned   = apierr.CodeStarAlreadyEarned
	CodeNotSelectingStar    = apierr.CodeNotSelectingStar
	CodeNoChoicePending     = apierr.CodeNoChoicePending
	CodeInvalidChoiceTarget = apierr.CodeInvalidChoiceTarget
	CodeInternalError       = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}

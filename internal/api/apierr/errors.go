// Package apierr maps domain errors to JSON API error responses.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/starchase/starchase-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeSessionNotFound     = "SESSION_NOT_FOUND"
	CodeSessionFinished     = "SESSION_FINISHED"
	CodeSummaryNotFound     = "SUMMARY_NOT_FOUND"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeWrongPhase          = "WRONG_PHASE"
	CodeNotYourTurn         = "NOT_YOUR_TURN"
	CodeAlreadyAnswered     = "ALREADY_ANSWERED"
	CodeInvalidOption       = "INVALID_OPTION"
	CodeNoQuestionPosed     = "NO_QUESTION_POSED"
	CodeStarNotFound        = "STAR_NOT_FOUND"
	CodeStarAlreadyEarned   = "STAR_ALREADY_EARNED"
	CodeNotSelectingStar    = "NOT_SELECTING_STAR"
	CodeNoChoicePending     = "NO_CHOICE_PENDING"
	CodeInvalidChoiceTarget = "INVALID_CHOICE_TARGET"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrSummaryNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSummaryNotFound, "No summary for this session"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrSessionFinished):
		return &httpError{http.StatusConflict, APIError{CodeSessionFinished, "Game has already finished"}}
	case errors.Is(err, model.ErrWrongPhase):
		return &httpError{http.StatusConflict, APIError{CodeWrongPhase, "Action not valid in the current phase"}}
	case errors.Is(err, model.ErrNotActingPlayer):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "Not your turn"}}
	case errors.Is(err, model.ErrAlreadyAnswered):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyAnswered, "Already answered this question"}}
	case errors.Is(err, model.ErrInvalidOption):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidOption, "Answer option out of range"}}
	case errors.Is(err, model.ErrNoQuestionPosed):
		return &httpError{http.StatusConflict, APIError{CodeNoQuestionPosed, "No question is currently posed"}}
	case errors.Is(err, model.ErrStarNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeStarNotFound, "Star not found"}}
	case errors.Is(err, model.ErrStarAlreadyEarned):
		return &httpError{http.StatusConflict, APIError{CodeStarAlreadyEarned, "Star has already been earned"}}
	case errors.Is(err, model.ErrNotSelectingStar):
		return &httpError{http.StatusForbidden, APIError{CodeNotSelectingStar, "You are not picking a star right now"}}
	case errors.Is(err, model.ErrNoChoicePending):
		return &httpError{http.StatusConflict, APIError{CodeNoChoicePending, "No twist choice is pending"}}
	case errors.Is(err, model.ErrInvalidTarget):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidChoiceTarget, "Invalid twist choice target"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

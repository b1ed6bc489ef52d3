// Package middleware provides API-specific HTTP middleware.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/starchase/starchase-go/internal/api/apierr"
	"github.com/starchase/starchase-go/internal/middleware"
)

// Recovery wraps the shared panic recovery middleware with a handler
// that answers in the API's JSON error shape
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, apiPanicHandler)
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}

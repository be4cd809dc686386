package ports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shardlight/shardlight/internal/adapters/pubg"
	"github.com/shardlight/shardlight/internal/logging"
	"github.com/shardlight/shardlight/internal/reporting"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Cause   string `json:"cause"`
}

// writeDocument passes the upstream document through untouched.
func writeDocument(w http.ResponseWriter, doc *pubg.Document) {
	w.Header().Set("Content-Type", "application/vnd.api+json")
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Raw())
}

func writeError(ctx context.Context, w http.ResponseWriter, responseError error) {
	logger := logging.FromContext(ctx)

	// Unknown error: default to 500
	statusCode := http.StatusInternalServerError

	var apiErr *pubg.APIError
	switch {
	case errors.Is(responseError, pubg.ErrMissingParameter),
		errors.Is(responseError, pubg.ErrInvalidShard):
		statusCode = http.StatusBadRequest
	case errors.As(responseError, &apiErr),
		errors.Is(responseError, pubg.ErrTransport):
		statusCode = http.StatusBadGateway
	}

	if statusCode == http.StatusInternalServerError {
		reporting.Report(ctx, responseError)
	}

	response, err := json.Marshal(errorResponse{
		Success: false,
		Cause:   responseError.Error(),
	})
	if err != nil {
		reporting.Report(ctx, fmt.Errorf("failed to marshal error response: %w", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"cause":"internal server error"}`))
		return
	}

	logger.Info("Request failed", "status", statusCode, "cause", responseError.Error())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}

package llm

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/resumecoach/backend/apperr"
)

var (
	// ErrCredential means the provider rejected the configured credential
	ErrCredential = errors.New("credential rejected by provider")

	// ErrRateLimited means the provider throttled the request
	ErrRateLimited = errors.New("rate limited by provider")

	// ErrEmptyResponse means the provider answered without any text
	ErrEmptyResponse = errors.New("empty response from model")
)

// classifyRPC wraps an error from the Gemini or Vertex SDKs, both of which
// surface gRPC status codes.
func classifyRPC(op string, err error) error {
	switch status.Code(err) {
	case codes.Unauthenticated, codes.PermissionDenied:
		return apperr.New(apperr.KindLLM, op, fmt.Errorf("%w: %v", ErrCredential, err))
	case codes.ResourceExhausted:
		return apperr.New(apperr.KindLLM, op, fmt.Errorf("%w: %v", ErrRateLimited, err))
	default:
		return apperr.New(apperr.KindLLM, op, fmt.Errorf("failed to generate content: %w", err))
	}
}

// classifyHTTP maps an OpenAI-compatible error status to a typed error
func classifyHTTP(op string, statusCode int, message string) error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperr.New(apperr.KindLLM, op, fmt.Errorf("%w: %s", ErrCredential, message))
	case http.StatusTooManyRequests:
		return apperr.New(apperr.KindLLM, op, fmt.Errorf("%w: %s", ErrRateLimited, message))
	default:
		return apperr.Newf(apperr.KindLLM, op, "provider error (status %d): %s", statusCode, message)
	}
}

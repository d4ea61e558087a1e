package dispatch

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/openai/openai-go/v3"

	"github.com/voiceagent/gateway/internal/adapters/elevenlabs"
	"github.com/voiceagent/gateway/internal/adapters/groq"
)

// apiError ties a dispatcher failure to an HTTP status so the boundary layer
// can serialize it directly. details carries upstream diagnostics that
// belong in the response body but not in the headline message.
type apiError struct {
	status  int
	msg     string
	details string
}

func (e apiError) Error() string { return e.msg }

// NewAPIError creates an error bound to an HTTP status code.
func NewAPIError(status int, msg string) error {
	return apiError{status: status, msg: msg}
}

func badRequest(msg string) error {
	return apiError{status: fiber.StatusBadRequest, msg: msg}
}

// AsAPIError extracts status, message, and optional details when available.
func AsAPIError(err error) (int, string, string, bool) {
	var apiErr apiError
	if errors.As(err, &apiErr) {
		return apiErr.status, apiErr.msg, apiErr.details, true
	}
	return 0, "", "", false
}

// mapUpstreamError converts adapter failures into the uniform taxonomy:
// structured upstream errors keep their original status, semantically empty
// 2xx responses become 500/502, anything else becomes a generic 500 that
// names the failed operation.
func mapUpstreamError(operation string, err error) error {
	var statusErr *elevenlabs.StatusError
	if errors.As(err, &statusErr) {
		return apiError{
			status:  statusErr.Code,
			msg:     fmt.Sprintf("%s request rejected by provider", operation),
			details: statusErr.Body,
		}
	}

	var openaiErr *openai.Error
	if errors.As(err, &openaiErr) {
		return apiError{
			status:  openaiErr.StatusCode,
			msg:     fmt.Sprintf("%s request rejected by provider", operation),
			details: openaiErr.Error(),
		}
	}

	switch {
	case errors.Is(err, elevenlabs.ErrEmptyTranscript), errors.Is(err, groq.ErrEmptyTranscript):
		return apiError{status: fiber.StatusInternalServerError, msg: "no transcription received from provider"}
	case errors.Is(err, groq.ErrEmptyCompletion):
		return apiError{status: fiber.StatusBadGateway, msg: "no response received from chat provider"}
	}

	return apiError{
		status: fiber.StatusInternalServerError,
		msg:    fmt.Sprintf("%s processing failed: %v", operation, err),
	}
}

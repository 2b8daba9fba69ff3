package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/brettcannon/the-knights-who-say-ni/internal/entities"
	"github.com/gofiber/fiber/v2"
)

type errorCode string

const (
	codeUnsupportedMediaType errorCode = "UNSUPPORTED_MEDIA_TYPE"
	codeInvalidPayload       errorCode = "INVALID_PAYLOAD"
	codeUpstreamError        errorCode = "UPSTREAM_ERROR"
	codeInternal             errorCode = "INTERNAL"
)

// errorResponse is the JSON error envelope returned to the webhook sender.
type errorResponse struct {
	Error struct {
		Code    errorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

func newErrorResponse(code errorCode, msg string) errorResponse {
	var body errorResponse
	body.Error.Code = code
	body.Error.Message = msg
	return body
}

// writeError maps domain errors onto webhook response statuses. A delivery
// that needs no action answers 204 with no body; an upstream failure answers
// 502 so GitHub may redeliver.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, entities.ErrNoActionNeeded):
		return c.SendStatus(http.StatusNoContent)
	case errors.Is(err, entities.ErrUnsupportedMediaType):
		return c.Status(http.StatusUnsupportedMediaType).JSON(newErrorResponse(codeUnsupportedMediaType, err.Error()))
	case errors.Is(err, entities.ErrInvalidPayload):
		return c.Status(http.StatusBadRequest).JSON(newErrorResponse(codeInvalidPayload, err.Error()))
	case errors.Is(err, entities.ErrUnexpectedStatus):
		return c.Status(http.StatusBadGateway).JSON(newErrorResponse(codeUpstreamError, err.Error()))
	default:
		return c.Status(http.StatusInternalServerError).JSON(newErrorResponse(codeInternal, err.Error()))
	}
}

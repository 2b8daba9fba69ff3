package handlers_fiber

import (
	"encoding/json"
	"net/http"

	"github.com/brettcannon/the-knights-who-say-ni/internal/entities"
	"github.com/gofiber/fiber/v2"
)

// PostGithubWebhook handles one GitHub pull_request webhook delivery.
func (h *Handler) PostGithubWebhook(c *fiber.Ctx) error {
	contentType := c.Get(fiber.HeaderContentType)

	var payload entities.WebhookPayload
	if entities.IsJSONMediaType(contentType) {
		if err := json.Unmarshal(c.Body(), &payload); err != nil {
			return c.Status(http.StatusBadRequest).JSON(newErrorResponse(codeInvalidPayload, "invalid body"))
		}
	}

	contrib, err := h.uc.Classify(contentType, payload)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.Reconcile(c.Context(), contrib); err != nil {
		h.log.Errorw("reconciliation failed", "error", err, "event", contrib.Event)
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusOK)
}

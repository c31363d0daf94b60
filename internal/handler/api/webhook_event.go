package api

import (
	"net/http"

	"sinistro-sync/internal/domain/webhook"
	resdto "sinistro-sync/internal/handler/dto/response"
	"sinistro-sync/internal/handler/httperr"
	"sinistro-sync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WebhookEventHandler struct {
	q queries.WebhookEventQueries
}

func NewWebhookEventHandler(q queries.WebhookEventQueries) *WebhookEventHandler {
	return &WebhookEventHandler{q: q}
}

// @Summary List webhook ledger
// @Description Inbound deliveries newest first, optionally filtered by status
// @Tags webhooks
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending|processing|ok|ignored|error"
// @Param limit query int false "Max items (default 50)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.WebhookEventResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/webhook-events [get]
func (h *WebhookEventHandler) List(c *gin.Context) {
	var filter queries.WebhookEventFilter
	if v := c.Query("status"); v != "" {
		st := webhook.Status(v)
		filter.Status = &st
	}
	items, next, err := h.q.List(c.Request.Context(), filter, parseCursor(c), parseLimit(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	events, err := resdto.FromWebhookEvents(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	resp := gin.H{"events": events}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

package api

import (
	"errors"
	"io"
	"net/http"

	"sinistro-sync/internal/domain/webhook"
	resdto "sinistro-sync/internal/handler/dto/response"
	"sinistro-sync/internal/handler/httperr"
	"sinistro-sync/internal/handler/middleware"
	"sinistro-sync/internal/pkg/config"
	"sinistro-sync/internal/pkg/errs"
	"sinistro-sync/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var (
	errWebhookUnauthorized = errs.Mark(errs.New("webhook authentication failed"), errs.ErrUnauthorized)
	errBodyTooLarge        = errs.Mark(errs.New("webhook body too large"), errs.ErrValidation)
)

type WebhookHandler struct {
	cmds    commands.WebhookCommands
	auth    *webhook.Authenticator
	maxBody int64
}

func NewWebhookHandler(cmds commands.WebhookCommands, auth *webhook.Authenticator, cfg config.Config) *WebhookHandler {
	return &WebhookHandler{cmds: cmds, auth: auth, maxBody: cfg.Webhook.MaxBodyBytes}
}

// @Summary RD Station webhook
// @Description Receives CRM deal events. Authenticated by x-rd-signature (HMAC-SHA256 of the raw body), x-webhook-token or ?token=.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param x-rd-signature header string false "hex HMAC-SHA256 of the body"
// @Param x-webhook-token header string false "shared secret"
// @Param token query string false "shared secret"
// @Success 200 {object} resdto.WebhookResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /webhooks/rdstation [post]
func (h *WebhookHandler) RDStation(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, errBodyTooLarge, "ValidationError", "body too large")
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), "ValidationError", "unreadable body")
		return
	}

	// The rejection never says which credential was wrong.
	if res := h.auth.Authenticate(body, c.Request.Header, c.Request.URL.Query()); !res.Valid {
		httperr.AbortWithError(c, http.StatusUnauthorized, errWebhookUnauthorized, "Unauthorized", nil)
		return
	}

	if env, perr := webhook.PeekEnvelope(body); perr == nil {
		middleware.SetWebhookEventID(c, env.EventUUID)
	}

	result, err := h.cmds.ProcessRDWebhook(c.Request.Context(), body)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWebhookResult(result))
}

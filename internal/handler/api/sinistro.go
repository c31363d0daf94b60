package api

import (
	"net/http"
	"strconv"

	reqdto "sinistro-sync/internal/handler/dto/request"
	resdto "sinistro-sync/internal/handler/dto/response"
	"sinistro-sync/internal/handler/httperr"
	"sinistro-sync/internal/handler/middleware"
	"sinistro-sync/internal/pkg/errs"
	"sinistro-sync/internal/usecase/commands"
	"sinistro-sync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SinistroHandler struct {
	sync   commands.SyncCommands
	status commands.StatusCommands
	q      queries.SinistroQueries
}

func NewSinistroHandler(sync commands.SyncCommands, status commands.StatusCommands, q queries.SinistroQueries) *SinistroHandler {
	return &SinistroHandler{sync: sync, status: status, q: q}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func parseLimit(c *gin.Context) int {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	return limit
}

func parseCursor(c *gin.Context) *queries.Cursor {
	if after := c.Query("after"); after != "" {
		return &queries.Cursor{After: after}
	}
	return nil
}

// @Summary Get sinistro
// @Description Sinistro with its RD link and sync fields
// @Tags sinistros
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sinistro ID"
// @Success 200 {object} resdto.SinistroResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/sinistros/{id} [get]
func (h *SinistroHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromSinistroView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List sinistro timeline
// @Description Timeline entries newest first with keyset pagination
// @Tags sinistros
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sinistro ID"
// @Param limit query int false "Max items (default 50)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.TimelineItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/sinistros/{id}/timeline [get]
func (h *SinistroHandler) Timeline(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	items, next, err := h.q.ListTimeline(c.Request.Context(), id, parseCursor(c), parseLimit(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	timeline, err := resdto.FromTimeline(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	resp := gin.H{"timeline": timeline}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Sync sinistro to RD Station
// @Description Creates or updates the RD deal for a sinistro and links it
// @Tags sinistros
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sinistro ID"
// @Param request body reqdto.SyncRequest true "Sync request"
// @Success 200 {object} resdto.SyncResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/sinistros/{id}/sync [post]
func (h *SinistroHandler) Sync(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), "ValidationError", err.Error())
		return
	}
	cmd, err := req.ToCommand(id, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	result, err := h.sync.Sync(c.Request.Context(), cmd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSyncResult(result))
}

// @Summary Change sinistro status
// @Description Local status transition; linked deals are pushed to RD afterwards
// @Tags sinistros
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sinistro ID"
// @Param request body reqdto.ChangeStatusRequest true "Status change"
// @Success 200 {object} resdto.StatusChangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/sinistros/{id}/status [patch]
func (h *SinistroHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), "ValidationError", err.Error())
		return
	}
	result, err := h.status.ChangeStatus(c.Request.Context(), id, req.ToCommand(actor))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatusChange(result))
}

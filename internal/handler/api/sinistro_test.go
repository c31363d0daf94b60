//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"sinistro-sync/internal/domain/sinistro"
	"sinistro-sync/internal/domain/user"
	"sinistro-sync/internal/handler/api"
	resdto "sinistro-sync/internal/handler/dto/response"
	"sinistro-sync/internal/pkg/errs"
	"sinistro-sync/internal/usecase/commands"
	"sinistro-sync/internal/usecase/queries"
	"sinistro-sync/tests/common/builder"
	"sinistro-sync/tests/common/httptest"
	"sinistro-sync/tests/common/testutil"
	commandsmock "sinistro-sync/tests/mock/commands"
	queriesmock "sinistro-sync/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SinistroHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockSync    *commandsmock.MockSyncCommands
	mockStatus  *commandsmock.MockStatusCommands
	mockQueries *queriesmock.MockSinistroQueries
	actor       user.Actor
}

func (s *SinistroHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSync = commandsmock.NewMockSyncCommands(s.mockCtrl)
	s.mockStatus = commandsmock.NewMockStatusCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSinistroQueries(s.mockCtrl)
	handler := api.NewSinistroHandler(s.mockSync, s.mockStatus, s.mockQueries)

	s.actor = user.Actor{ID: uuid.New(), Role: user.RoleOperator, Name: "Carla Operadora"}

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("actor", s.actor)
		c.Next()
	}

	s.router.GET("/api/sinistros/:id", handler.Get)
	s.router.GET("/api/sinistros/:id/timeline", handler.Timeline)
	s.router.POST("/api/sinistros/:id/sync", authMiddleware, handler.Sync)
	s.router.PATCH("/api/sinistros/:id/status", authMiddleware, handler.ChangeStatus)
}

func (s *SinistroHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSinistroHandlerSuite(t *testing.T) {
	suite.Run(t, new(SinistroHandlerTestSuite))
}

// ================================================================================
// TestGet
// ================================================================================

func (s *SinistroHandlerTestSuite) TestGet() {
	view := builder.NewSinistroBuilder().LinkedTo("deal-1001", builder.StageAndamento).BuildView()
	url := "/api/sinistros/" + view.ID.String()

	s.Run("success: returns the sinistro with sync fields", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var res resdto.SinistroResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(view.ID, res.ID)
		s.Equal("Em análise", res.StatusLabel)
		s.Equal("ok", res.SyncStatus)
		s.Require().NotNil(res.RDDealID)
		s.Equal("deal-1001", *res.RDDealID)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/sinistros/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when unknown", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(nil, errs.Mark(errs.New("sinistro not found"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "NotFound")
	})
}

// ================================================================================
// TestTimeline
// ================================================================================

func (s *SinistroHandlerTestSuite) TestTimeline() {
	id := uuid.New()
	url := "/api/sinistros/" + id.String() + "/timeline"
	prev, next := "em_andamento", "enviado_operadora"
	items := []*queries.TimelineItem{{
		ID:             uuid.New(),
		TipoEvento:     "status_alterado",
		Descricao:      "Status alterado de Em andamento para Enviado à operadora via RD Station",
		StatusAnterior: &prev,
		StatusNovo:     &next,
		Source:         "rd_station",
		ActorName:      "Ana Lima",
		TempoDecorrido: "2 dias e 8 horas",
		CreatedAt:      time.Date(2025, 3, 12, 17, 0, 0, 0, time.UTC),
	}}

	s.Run("success: first page with next cursor", func() {
		s.mockQueries.EXPECT().ListTimeline(gomock.Any(), id, (*queries.Cursor)(nil), 2).
			Return(items, &queries.Cursor{After: "abc"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=2", nil, "")

		var res struct {
			Timeline   []resdto.TimelineItemResponse `json:"timeline"`
			NextCursor string                        `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res.Timeline, 1)
		s.Equal("Ana Lima", res.Timeline[0].ActorName)
		s.Equal("2 dias e 8 horas", res.Timeline[0].TempoDecorrido)
		s.Equal("abc", res.NextCursor)
	})

	s.Run("success: cursor forwarded and default limit applied", func() {
		s.mockQueries.EXPECT().ListTimeline(gomock.Any(), id, &queries.Cursor{After: "abc"}, queries.DefaultListLimit).
			Return([]*queries.TimelineItem{}, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=abc", nil, "")

		var res map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.NotContains(res, "next_cursor")
		s.Contains(res, "timeline")
		s.Empty(res["timeline"])
	})

	s.Run("error: 400 on invalid cursor", func() {
		s.mockQueries.EXPECT().ListTimeline(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Mark(errs.New("invalid cursor"), errs.ErrValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "ValidationError")
	})
}

// ================================================================================
// TestSync
// ================================================================================

func (s *SinistroHandlerTestSuite) TestSync() {
	id := uuid.New()
	url := "/api/sinistros/" + id.String() + "/sync"
	reqBody := map[string]any{"action": "sync"}

	s.Run("success: returns deal link", func() {
		s.mockSync.EXPECT().Sync(gomock.Any(), commands.SyncRequest{
			SinistroID: id,
			Action:     commands.SyncActionSync,
			Actor:      s.actor,
		}).Return(&commands.SyncResult{
			SinistroID: id,
			Action:     commands.SyncActionCreate,
			DealID:     "deal-77",
			StageID:    builder.StageTriagem,
			PipelineID: builder.DefaultPipelineID,
			Linked:     true,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var res resdto.SyncResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Success)
		s.Equal("create", res.Action)
		s.Equal("deal-77", res.DealID)
		s.True(res.Linked)
	})

	validation := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing action", mutate: testutil.Drop("action")},
		{name: "unknown action", mutate: testutil.Set("action", "delete")},
		{name: "sinistroId of another sinistro", mutate: testutil.Set("sinistroId", uuid.NewString())},
	}
	for _, tc := range validation {
		s.Run("error: 400 on "+tc.name, func() {
			body := testutil.Body(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		})
	}

	s.Run("success: matching sinistroId is accepted", func() {
		s.mockSync.EXPECT().Sync(gomock.Any(), gomock.Any()).
			Return(&commands.SyncResult{SinistroID: id, Action: commands.SyncActionUpdate, DealID: "deal-77"}, nil)

		body := testutil.Body(s.T(), reqBody, testutil.Set("sinistroId", id.String()))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	mapped := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{name: "unknown sinistro", err: errs.Mark(errs.New("sinistro not found"), errs.ErrNotFound), expectedStatus: http.StatusNotFound, expectedMsg: "NotFound"},
		{name: "update without link", err: commands.ErrNotLinked, expectedStatus: http.StatusBadRequest, expectedMsg: "ValidationError"},
		{name: "crm failure", err: errs.Mark(errs.New("rd station 500"), errs.ErrUpstream), expectedStatus: http.StatusBadGateway, expectedMsg: "UpstreamError"},
	}
	for _, tc := range mapped {
		s.Run("error: maps "+tc.name, func() {
			s.mockSync.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
		})
	}
}

// ================================================================================
// TestChangeStatus
// ================================================================================

func (s *SinistroHandlerTestSuite) TestChangeStatus() {
	id := uuid.New()
	url := "/api/sinistros/" + id.String() + "/status"
	reqBody := map[string]any{"status": "aprovado", "observacao": "Parecer favorável"}

	s.Run("success: status changed and pushed", func() {
		s.mockStatus.EXPECT().ChangeStatus(gomock.Any(), id, commands.StatusChangeRequest{
			Status:     "aprovado",
			Observacao: "Parecer favorável",
			Actor:      s.actor,
		}).Return(&commands.StatusChangeResult{
			SinistroID:     id,
			PreviousStatus: sinistro.StatusEnviadoOperadora,
			NewStatus:      sinistro.StatusAprovado,
			StatusChanged:  true,
			Pushed:         true,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var res resdto.StatusChangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.StatusChanged)
		s.Equal("enviado_operadora", res.StatusAnterior)
		s.Equal("aprovado", res.StatusNovo)
		s.True(res.Pushed)
		s.Empty(res.SyncError)
	})

	s.Run("error: 400 without status", func() {
		body := testutil.Body(s.T(), reqBody, testutil.Drop("status"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "ValidationError")
	})

	s.Run("error: 409 on refused transition", func() {
		s.mockStatus.EXPECT().ChangeStatus(gomock.Any(), id, gomock.Any()).
			Return(nil, errs.Mark(errs.New("pago -> em_analise"), errs.ErrInvalidTransition))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "InvalidTransition")
	})
}

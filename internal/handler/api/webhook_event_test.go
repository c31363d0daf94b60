//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"sinistro-sync/internal/domain/webhook"
	"sinistro-sync/internal/handler/api"
	resdto "sinistro-sync/internal/handler/dto/response"
	"sinistro-sync/internal/pkg/errs"
	"sinistro-sync/internal/usecase/queries"
	"sinistro-sync/tests/common/httptest"
	queriesmock "sinistro-sync/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookEventHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockWebhookEventQueries
}

func (s *WebhookEventHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockWebhookEventQueries(s.mockCtrl)
	handler := api.NewWebhookEventHandler(s.mockQueries)

	s.router.GET("/api/webhook-events", handler.List)
}

func (s *WebhookEventHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookEventHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookEventHandlerTestSuite))
}

func (s *WebhookEventHandlerTestSuite) TestList() {
	reason := webhook.ReasonUnmappedStage
	received := time.Date(2025, 3, 12, 17, 0, 0, 0, time.UTC)
	views := []*queries.WebhookEventView{{
		ID:         uuid.New(),
		Provider:   "rd_station",
		EventID:    "evt-9",
		EventType:  "crm_deal_updated",
		Status:     "error",
		Attempts:   2,
		LastError:  &reason,
		ReceivedAt: received,
		UpdatedAt:  received,
	}}

	s.Run("success: filtered by status", func() {
		st := webhook.StatusError
		s.mockQueries.EXPECT().List(gomock.Any(), queries.WebhookEventFilter{Status: &st}, (*queries.Cursor)(nil), 10).
			Return(views, &queries.Cursor{After: "next"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/webhook-events?status=error&limit=10", nil, "")

		var res struct {
			Events     []resdto.WebhookEventResponse `json:"events"`
			NextCursor string                        `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res.Events, 1)
		s.Equal("evt-9", res.Events[0].EventID)
		s.Equal(2, res.Events[0].Attempts)
		s.Require().NotNil(res.Events[0].LastError)
		s.Equal("unmapped_stage", *res.Events[0].LastError)
		s.Nil(res.Events[0].ProcessedAt)
		s.Equal("next", res.NextCursor)
	})

	s.Run("success: no filter", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.WebhookEventFilter{}, (*queries.Cursor)(nil), queries.DefaultListLimit).
			Return(views, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/webhook-events", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on unknown status", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Mark(errs.New("invalid status filter"), errs.ErrValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/webhook-events?status=weird", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "ValidationError")
	})

	s.Run("error: 500 hides storage details", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Mark(errs.New("pool exhausted"), errs.ErrDatabaseOperationFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/webhook-events", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "pool exhausted")
	})
}

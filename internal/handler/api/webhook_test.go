//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"sinistro-sync/internal/domain/sinistro"
	"sinistro-sync/internal/domain/webhook"
	"sinistro-sync/internal/handler/api"
	resdto "sinistro-sync/internal/handler/dto/response"
	"sinistro-sync/internal/pkg/config"
	"sinistro-sync/internal/pkg/errs"
	"sinistro-sync/internal/usecase/commands"
	"sinistro-sync/tests/common/builder"
	"sinistro-sync/tests/common/httptest"
	commandsmock "sinistro-sync/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	webhookSecret = "handler-secret"
	webhookURL    = "/webhooks/rdstation"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockCmds *commandsmock.MockWebhookCommands
	auth     *webhook.Authenticator
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockWebhookCommands(s.mockCtrl)
	s.auth = webhook.NewAuthenticator(webhookSecret)

	cfg := config.NewTestConfig()
	cfg.Webhook.MaxBodyBytes = 4096
	handler := api.NewWebhookHandler(s.mockCmds, s.auth, cfg)

	s.router.POST(webhookURL, handler.RDStation)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) signed(body []byte) map[string]string {
	return map[string]string{webhook.SignatureHeader: s.auth.Sign(body)}
}

// ================================================================================
// Authentication
// ================================================================================

func (s *WebhookHandlerTestSuite) TestAuthentication() {
	body := builder.NewDealEventBuilder().BuildBody()
	sinistroID := uuid.New()
	applied := &commands.WebhookResult{
		SinistroID:     sinistroID,
		StatusChanged:  true,
		PreviousStatus: sinistro.StatusEmAndamento,
		NewStatus:      sinistro.StatusPendenteDocumentos,
	}

	accepted := []struct {
		name    string
		path    string
		headers map[string]string
	}{
		{name: "hmac signature", path: webhookURL, headers: s.signed(body)},
		{name: "token header", path: webhookURL, headers: map[string]string{webhook.TokenHeader: webhookSecret}},
		{name: "token query", path: webhookURL + "?token=" + webhookSecret, headers: nil},
	}
	for _, tc := range accepted {
		s.Run("success: "+tc.name, func() {
			s.mockCmds.EXPECT().ProcessRDWebhook(gomock.Any(), body).Return(applied, nil).Times(1)

			rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, tc.path, body, tc.headers)

			var res resdto.WebhookResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
			s.True(res.Success)
			s.Require().NotNil(res.SinistroID)
			s.Equal(sinistroID.String(), *res.SinistroID)
			s.Require().NotNil(res.StatusChanged)
			s.True(*res.StatusChanged)
			s.Require().NotNil(res.StatusNovo)
			s.Equal("pendente_documentos", *res.StatusNovo)
		})
	}

	rejected := []struct {
		name    string
		path    string
		headers map[string]string
	}{
		{name: "no credentials", path: webhookURL},
		{name: "wrong token header", path: webhookURL, headers: map[string]string{webhook.TokenHeader: "nope"}},
		{name: "signature of another body", path: webhookURL, headers: s.signed([]byte(`{"other":true}`))},
		{name: "wrong query token", path: webhookURL + "?token=nope"},
	}
	for _, tc := range rejected {
		s.Run("error: 401 with "+tc.name, func() {
			// no ProcessRDWebhook expectation: nothing may be processed
			rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, tc.path, body, tc.headers)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
		})
	}
}

// ================================================================================
// Processing outcomes
// ================================================================================

func (s *WebhookHandlerTestSuite) TestOutcomes() {
	body := builder.NewDealEventBuilder().BuildBody()

	s.Run("success: duplicate delivery answers 200", func() {
		s.mockCmds.EXPECT().ProcessRDWebhook(gomock.Any(), body).
			Return(&commands.WebhookResult{Duplicate: true}, nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, body, s.signed(body))

		var res resdto.WebhookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Duplicate)
		s.Nil(res.SinistroID)
	})

	s.Run("success: ignored delivery carries the reason", func() {
		s.mockCmds.EXPECT().ProcessRDWebhook(gomock.Any(), body).
			Return(&commands.WebhookResult{Ignored: true, Reason: webhook.ReasonNoSinistro}, nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, body, s.signed(body))

		var res resdto.WebhookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Ignored)
		s.Equal("no_sinistro", res.Reason)
	})

	s.Run("success: unchanged stage omits the status pair", func() {
		s.mockCmds.EXPECT().ProcessRDWebhook(gomock.Any(), body).
			Return(&commands.WebhookResult{SinistroID: uuid.New(), StatusChanged: false}, nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, body, s.signed(body))

		var res resdto.WebhookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().NotNil(res.StatusChanged)
		s.False(*res.StatusChanged)
		s.Nil(res.StatusAnterior)
		s.Nil(res.StatusNovo)
	})

	errorCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "malformed payload",
			err:            errs.Mark(errs.New("missing event_identifier"), errs.ErrValidation),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "ValidationError",
		},
		{
			name:           "storage failure after claim",
			err:            errs.Mark(errs.New("commit failed"), errs.ErrDatabaseOperationFailed),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Internal server error",
		},
		{
			name:           "crm unavailable",
			err:            errs.Mark(errs.New("rd station 503"), errs.ErrUpstream),
			expectedStatus: http.StatusBadGateway,
			expectedMsg:    "UpstreamError",
		},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCmds.EXPECT().ProcessRDWebhook(gomock.Any(), body).Return(nil, tc.err)

			rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, body, s.signed(body))
			httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
		})
	}
}

func (s *WebhookHandlerTestSuite) TestBodyLimit() {
	body := []byte(`{"event_name":"crm_deal_updated","pad":"` + strings.Repeat("x", 5000) + `"}`)

	rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, body, s.signed(body))
	httptest.AssertErrorResponse(s.T(), rec, http.StatusRequestEntityTooLarge, "ValidationError")
}

//go:build e2e

package webhook

import (
	"net/http"
	"testing"

	"sinistro-sync/internal/domain/sinistro"
	"sinistro-sync/internal/domain/user"
	"sinistro-sync/internal/domain/webhook"
	"sinistro-sync/internal/handler/dto/response"
	"sinistro-sync/tests/common/authtest"
	"sinistro-sync/tests/common/builder"
	"sinistro-sync/tests/common/dbtest"
	"sinistro-sync/tests/common/httptest"
	"sinistro-sync/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const webhookURL = "/webhooks/rdstation"

type WebhookTestSuite struct {
	e2e.SharedSuite
}

func TestWebhookSuite(t *testing.T) {
	suite.Run(t, new(WebhookTestSuite))
}

func (s *WebhookTestSuite) deliver(body []byte) *response.WebhookResponse {
	t := s.T()
	auth := webhook.NewAuthenticator(s.Config.Webhook.Secret)
	w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, body, map[string]string{
		webhook.SignatureHeader: auth.Sign(body),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.WebhookResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return &res
}

func (s *WebhookTestSuite) TestRDStationWebhook() {
	s.Run("Success: stage move updates status and timeline", func() {
		t := s.T()
		sin := builder.NewSinistroBuilder().
			LinkedTo("deal-1001", builder.StageTriagem).
			BuildDomain()
		dbtest.InsertSinistro(t, s.DB, sin)

		body := builder.NewDealEventBuilder().
			WithDealID("deal-1001").
			WithStage(builder.StageDocumentos, "Pendente de documentos").
			BuildBody()

		res := s.deliver(body)

		id := sin.ID.String()
		changed := true
		prev, next := "em_analise", "pendente_documentos"
		expected := &response.WebhookResponse{
			Success:        true,
			SinistroID:     &id,
			StatusChanged:  &changed,
			StatusAnterior: &prev,
			StatusNovo:     &next,
		}
		if diff := cmp.Diff(expected, res); diff != "" {
			t.Errorf("webhook response mismatch (-want +got):\n%s", diff)
		}

		status, _, dealID := dbtest.SinistroStatus(t, s.DB, sin.ID)
		assert.Equal(t, "pendente_documentos", status)
		require.NotNil(t, dealID)
		assert.Equal(t, "deal-1001", *dealID)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "sinistro_timeline"))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "webhook_events"))
	})

	s.Run("Success: replayed event is a duplicate", func() {
		t := s.T()
		sin := builder.NewSinistroBuilder().
			LinkedTo("deal-1001", builder.StageTriagem).
			BuildDomain()
		dbtest.InsertSinistro(t, s.DB, sin)

		body := builder.NewDealEventBuilder().
			WithDealID("deal-1001").
			WithStage(builder.StageAndamento, "Em andamento").
			BuildBody()

		first := s.deliver(body)
		require.NotNil(t, first.StatusChanged)
		assert.True(t, *first.StatusChanged)

		second := s.deliver(body)
		assert.Equal(t, &response.WebhookResponse{Success: true, Duplicate: true}, second)

		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "sinistro_timeline"))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "webhook_events"))
	})

	s.Run("Success: same stage twice leaves status unchanged", func() {
		t := s.T()
		sin := builder.NewSinistroBuilder().
			LinkedTo("deal-1001", builder.StageTriagem).
			BuildDomain()
		dbtest.InsertSinistro(t, s.DB, sin)

		s.deliver(builder.NewDealEventBuilder().
			WithDealID("deal-1001").
			WithStage(builder.StageOperadora, "Enviado à operadora").
			BuildBody())
		res := s.deliver(builder.NewDealEventBuilder().
			WithDealID("deal-1001").
			WithStage(builder.StageOperadora, "Enviado à operadora").
			WithUpdatedAt("2025-03-12T15:00:00-03:00").
			BuildBody())

		require.NotNil(t, res.StatusChanged)
		assert.False(t, *res.StatusChanged)
		assert.Nil(t, res.StatusAnterior)

		status, _, _ := dbtest.SinistroStatus(t, s.DB, sin.ID)
		assert.Equal(t, "enviado_operadora", status)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "sinistro_timeline"))
		assert.Equal(t, 2, dbtest.CountRows(t, s.DB, "webhook_events"))
	})

	s.Run("Success: unlinked sinistro is linked through the custom field", func() {
		t := s.T()
		sin := builder.NewSinistroBuilder().BuildDomain()
		dbtest.InsertSinistro(t, s.DB, sin)

		res := s.deliver(builder.NewDealEventBuilder().
			WithDealID("deal-2002").
			WithStage(builder.StageTriagem, "Triagem").
			WithCustomField(e2e.SinistroIDField, sin.ID.String()).
			BuildBody())

		require.NotNil(t, res.SinistroID)
		assert.Equal(t, sin.ID.String(), *res.SinistroID)

		status, _, dealID := dbtest.SinistroStatus(t, s.DB, sin.ID)
		assert.Equal(t, "em_analise", status)
		require.NotNil(t, dealID)
		assert.Equal(t, "deal-2002", *dealID)
	})

	s.Run("Ignored: deal without a sinistro", func() {
		t := s.T()
		res := s.deliver(builder.NewDealEventBuilder().
			WithDealID("deal-unknown").
			BuildBody())

		assert.Equal(t, &response.WebhookResponse{Success: true, Ignored: true, Reason: webhook.ReasonNoSinistro}, res)
		assert.Equal(t, 0, dbtest.CountRows(t, s.DB, "sinistro_timeline"))
	})

	s.Run("Ignored: unsupported event type", func() {
		t := s.T()
		res := s.deliver(builder.NewDealEventBuilder().
			WithEventType("crm_contact_created").
			BuildBody())

		assert.True(t, res.Ignored)
		assert.Equal(t, webhook.ReasonUnsupportedEvent, res.Reason)
	})

	s.Run("Ignored: stage that maps to no status", func() {
		t := s.T()
		sin := builder.NewSinistroBuilder().
			LinkedTo("deal-1001", builder.StageTriagem).
			BuildDomain()
		dbtest.InsertSinistro(t, s.DB, sin)

		res := s.deliver(builder.NewDealEventBuilder().
			WithDealID("deal-1001").
			WithStage("stg-desconhecido", "Qualquer coisa").
			BuildBody())

		assert.True(t, res.Ignored)
		assert.Equal(t, webhook.ReasonUnmappedStage, res.Reason)
		status, _, _ := dbtest.SinistroStatus(t, s.DB, sin.ID)
		assert.Equal(t, sinistro.StatusEmAnalise.String(), status)
	})

	s.Run("Success: shared token in header or query", func() {
		t := s.T()
		body := builder.NewDealEventBuilder().WithDealID("deal-unknown").BuildBody()
		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, body, map[string]string{
			webhook.TokenHeader: s.Config.Webhook.Secret,
		})
		assert.Equal(t, http.StatusOK, w.Code)
		httptest.AssertHeaders(t, w, map[string]string{"Content-Type": "application/json; charset=utf-8"})

		body = builder.NewDealEventBuilder().WithDealID("deal-unknown").BuildBody()
		w = httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL+"?token="+s.Config.Webhook.Secret, body, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("Error: bad signature is rejected before any write", func() {
		t := s.T()
		body := builder.NewDealEventBuilder().BuildBody()
		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, body, map[string]string{
			webhook.SignatureHeader: "deadbeef",
		})
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Unauthorized")
		assert.Equal(t, 0, dbtest.CountRows(t, s.DB, "webhook_events"))
	})

	s.Run("Error: malformed body", func() {
		t := s.T()
		res := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL+"?token="+s.Config.Webhook.Secret,
			[]byte(`{"event_type":`), nil)
		httptest.AssertErrorResponse(t, res, http.StatusBadRequest, "ValidationError")
		assert.Equal(t, 0, dbtest.CountRows(t, s.DB, "webhook_events"))
	})
}

func (s *WebhookTestSuite) TestListWebhookEvents() {
	url := "/api/webhook-events"

	s.Run("Success: events listed newest first with status filter", func() {
		t := s.T()
		jwt := authtest.NewJWTHelper(s.Config.JWT)

		s.deliver(builder.NewDealEventBuilder().WithEventUUID("evt-a").WithDealID("deal-x").BuildBody())
		s.deliver(builder.NewDealEventBuilder().WithEventUUID("evt-b").WithEventType("crm_contact_created").BuildBody())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url+"?status=ignored", nil, jwt.GenerateToken(t, user.RoleOperator))

		var res struct {
			Events []response.WebhookEventResponse `json:"events"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res.Events, 2)

		reasons := []string{*res.Events[0].LastError, *res.Events[1].LastError}
		if diff := cmp.Diff([]string{webhook.ReasonNoSinistro, webhook.ReasonUnsupportedEvent}, reasons,
			cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
			t.Errorf("reasons mismatch (-want +got):\n%s", diff)
		}
		for _, ev := range res.Events {
			assert.Equal(t, "ignored", ev.Status)
			assert.Equal(t, "rd_station", ev.Provider)
			assert.NotNil(t, ev.ProcessedAt)
		}
	})

	s.Run("Error: viewer is forbidden", func() {
		t := s.T()
		jwt := authtest.NewJWTHelper(s.Config.JWT)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, jwt.GenerateToken(t, user.RoleViewer))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error: missing token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

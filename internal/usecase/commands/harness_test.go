//go:build unit

package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"sinistro-sync/internal/domain/pipeline"
	"sinistro-sync/internal/pkg/clock"
	"sinistro-sync/internal/usecase/commands"
	"sinistro-sync/tests/common/fake"
	sharedmock "sinistro-sync/tests/mock/shared"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	provider        = "rd_station"
	sinistroIDField = "cf_sinistro_id"
)

var t0 = time.Date(2025, 3, 12, 17, 0, 0, 0, time.UTC)

// harness wires the command use cases against the in-memory store, with the
// CRM side mocked.
type harness struct {
	store   *fake.Store
	uow     *fake.UnitOfWork
	clock   *clock.MockClock
	crm     *sharedmock.MockCRMClient
	catalog *sharedmock.MockPipelineCatalog
	mapper  *pipeline.Mapper

	rec      *commands.Reconciler
	ledger   *commands.Ledger
	webhooks commands.WebhookCommands
	sync     commands.SyncCommands
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	mapper, err := pipeline.NewMapper(pipeline.DefaultRules())
	require.NoError(t, err)

	h := &harness{
		store:   fake.NewStore(),
		clock:   clock.NewMockClock(t0),
		crm:     sharedmock.NewMockCRMClient(ctrl),
		catalog: sharedmock.NewMockPipelineCatalog(ctrl),
		mapper:  mapper,
	}
	h.uow = fake.NewUnitOfWork(h.store)

	logger := slog.New(slog.DiscardHandler)
	settings := commands.WebhookSettings{
		Provider:        provider,
		ClaimTTL:        5 * time.Minute,
		SinistroIDField: sinistroIDField,
	}
	h.rec = commands.NewReconciler(commands.NewTimelineWriter(logger), h.clock, logger)
	h.ledger = commands.NewLedger(h.uow, h.clock, logger, settings)
	h.webhooks = commands.NewWebhookUseCase(h.uow, h.ledger, h.rec, h.catalog, mapper, settings, logger)
	h.sync = commands.NewSyncUseCase(h.uow, h.crm, h.catalog, mapper, h.rec, h.clock, commands.SyncSettings{
		CustomFields: commands.CustomFieldIDs{SinistroID: sinistroIDField, Numero: "cf_numero"},
	}, logger)
	return h
}

func newSweeper(h *harness) *commands.StaleClaimSweeper {
	return commands.NewStaleClaimSweeper(h.ledger, time.Minute, slog.New(slog.DiscardHandler))
}

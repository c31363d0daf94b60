//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sinistro-sync/internal/infra"
	"sinistro-sync/internal/infra/readstore"
	sqlc "sinistro-sync/internal/infra/sqlc/generated"
	"sinistro-sync/internal/pkg/pgconv"
	"sinistro-sync/internal/usecase/queries"
	"sinistro-sync/tests/common/builder"
	readstoremock "sinistro-sync/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// FindByID Tests
// =============================================================================

func TestSinistroReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewSinistroBuilder().LinkedTo("deal-1001", builder.StageAndamento)

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockSinistroReadQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: view mapped with status label",
			setupMock: func(mock *readstoremock.MockSinistroReadQueries, db sqlc.DBTX) {
				row := b.BuildInfra()
				row.RdOwnerName = pgtype.Text{String: "Ana Lima", Valid: true}
				mock.EXPECT().GetSinistroByID(ctx, db, b.ID).Return(row, nil)
			},
		},
		{
			name: "error: sinistro not found",
			setupMock: func(mock *readstoremock.MockSinistroReadQueries, db sqlc.DBTX) {
				mock.EXPECT().GetSinistroByID(ctx, db, b.ID).Return(sqlc.Sinistros{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *readstoremock.MockSinistroReadQueries, db sqlc.DBTX) {
				mock.EXPECT().GetSinistroByID(ctx, db, b.ID).Return(sqlc.Sinistros{}, errors.New("connection refused"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockSinistroReadQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewSinistroReadStore(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			view, err := store.FindByID(ctx, b.ID)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "em_analise", view.Status)
			assert.Equal(t, "Em análise", view.StatusLabel)
			assert.Equal(t, "ok", view.SyncStatus)
			require.NotNil(t, view.RDDealID)
			assert.Equal(t, "deal-1001", *view.RDDealID)
			require.NotNil(t, view.RDOwnerName)
			assert.Equal(t, "Ana Lima", *view.RDOwnerName)
			assert.Nil(t, view.ConcludedAt)
			assert.Nil(t, view.TempoConclusaoMinutos)
			assert.True(t, view.CreatedAt.Equal(b.CreatedAt))
		})
	}
}

// =============================================================================
// Timeline Tests
// =============================================================================

func timelineRow(sinistroID uuid.UUID, at time.Time) sqlc.SinistroTimeline {
	return sqlc.SinistroTimeline{
		ID:             uuid.New(),
		SinistroID:     sinistroID,
		TipoEvento:     "status_alterado",
		Descricao:      "Status alterado de Em andamento para Enviado à operadora via RD Station",
		StatusAnterior: pgtype.Text{String: "em_andamento", Valid: true},
		StatusNovo:     pgtype.Text{String: "enviado_operadora", Valid: true},
		Source:         "rd_station",
		ActorName:      "Ana Lima",
		TempoDecorrido: "2 dias e 8 horas",
		EventHash:      "h-" + at.Format(time.RFC3339),
		RdEventID:      pgtype.Text{String: "evt-1", Valid: true},
		CreatedAt:      pgconv.TimeToPgtype(at),
	}
}

func TestSinistroReadStore_TimelineFirstPage(t *testing.T) {
	ctx := context.Background()
	sinistroID := uuid.New()
	at := time.Date(2025, 3, 12, 17, 0, 0, 0, time.UTC)

	t.Run("success: rows mapped in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockSinistroReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewSinistroReadStore(mockQueries, mockDB)

		rows := []sqlc.SinistroTimeline{timelineRow(sinistroID, at), timelineRow(sinistroID, at.Add(-time.Hour))}
		rows[1].StatusAnterior = pgtype.Text{}
		rows[1].StatusNovo = pgtype.Text{}
		rows[1].RdEventID = pgtype.Text{}

		mockQueries.EXPECT().ListTimelineBySinistro(ctx, mockDB, sqlc.ListTimelineBySinistroParams{
			SinistroID: sinistroID,
			Limit:      21,
		}).Return(rows, nil)

		items, err := store.TimelineFirstPage(ctx, sinistroID, 21)
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, rows[0].ID, items[0].ID)
		require.NotNil(t, items[0].StatusNovo)
		assert.Equal(t, "enviado_operadora", *items[0].StatusNovo)
		require.NotNil(t, items[0].RDEventID)
		assert.Equal(t, "evt-1", *items[0].RDEventID)
		assert.Equal(t, "2 dias e 8 horas", items[0].TempoDecorrido)

		assert.Nil(t, items[1].StatusAnterior)
		assert.Nil(t, items[1].StatusNovo)
		assert.Nil(t, items[1].RDEventID)
	})

	t.Run("success: empty timeline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockSinistroReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewSinistroReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().ListTimelineBySinistro(ctx, mockDB, gomock.Any()).Return(nil, nil)

		items, err := store.TimelineFirstPage(ctx, sinistroID, 21)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockSinistroReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewSinistroReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().ListTimelineBySinistro(ctx, mockDB, gomock.Any()).Return(nil, errors.New("boom"))

		items, err := store.TimelineFirstPage(ctx, sinistroID, 21)
		require.Error(t, err)
		assert.Nil(t, items)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestSinistroReadStore_TimelineKeyset(t *testing.T) {
	ctx := context.Background()
	sinistroID := uuid.New()
	after := queries.Keyset{At: time.Date(2025, 3, 12, 17, 0, 0, 0, time.UTC), ID: uuid.New()}

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockSinistroReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewSinistroReadStore(mockQueries, mockDB)

	mockQueries.EXPECT().ListTimelineBySinistroKeyset(ctx, mockDB, sqlc.ListTimelineBySinistroKeysetParams{
		SinistroID:     sinistroID,
		AfterCreatedAt: pgconv.TimeToPgtype(after.At),
		AfterID:        after.ID,
		RowLimit:       11,
	}).Return([]sqlc.SinistroTimeline{timelineRow(sinistroID, after.At.Add(-time.Minute))}, nil)

	items, err := store.TimelineKeyset(ctx, sinistroID, after, 11)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].CreatedAt.Before(after.At))
}

// =============================================================================
// Test Helpers
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

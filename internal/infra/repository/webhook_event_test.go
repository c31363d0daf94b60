//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sinistro-sync/internal/domain/webhook"
	"sinistro-sync/internal/infra"
	"sinistro-sync/internal/infra/repository"
	sqlc "sinistro-sync/internal/infra/sqlc/generated"
	"sinistro-sync/internal/pkg/pgconv"
	"sinistro-sync/internal/usecase/shared"
	repositorymock "sinistro-sync/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 3, 12, 17, 0, 0, 0, time.UTC)

func claimParams() shared.ClaimParams {
	return shared.ClaimParams{
		Provider:    "rd_station",
		EventID:     "evt-1",
		EventType:   "crm_deal_updated",
		Payload:     []byte(`{"event_name":"crm_deal_updated"}`),
		Now:         now,
		StaleBefore: now.Add(-5 * time.Minute),
	}
}

// =============================================================================
// Claim Tests
// =============================================================================

func TestWebhookEventRepository_Claim(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockWebhookEventWriteQueries, sqlc.DBTX)
		expectClaimed bool
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: new event claimed",
			setupMock: func(mock *repositorymock.MockWebhookEventWriteQueries, tx sqlc.DBTX) {
				p := claimParams()
				mock.EXPECT().ClaimWebhookEvent(ctx, tx, sqlc.ClaimWebhookEventParams{
					Provider:    p.Provider,
					EventID:     p.EventID,
					EventType:   p.EventType,
					Payload:     p.Payload,
					Now:         pgconv.TimeToPgtype(p.Now),
					StaleBefore: pgconv.TimeToPgtype(p.StaleBefore),
				}).Return(sqlc.WebhookEvents{
					ID:         eventID,
					Provider:   p.Provider,
					EventID:    p.EventID,
					EventType:  p.EventType,
					Status:     string(webhook.StatusProcessing),
					Attempts:   1,
					ReceivedAt: pgconv.TimeToPgtype(now),
					UpdatedAt:  pgconv.TimeToPgtype(now),
				}, nil)
			},
			expectClaimed: true,
		},
		{
			name: "success: no row means someone else owns the event",
			setupMock: func(mock *repositorymock.MockWebhookEventWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().ClaimWebhookEvent(ctx, tx, gomock.Any()).Return(sqlc.WebhookEvents{}, pgx.ErrNoRows)
			},
			expectClaimed: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockWebhookEventWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().ClaimWebhookEvent(ctx, tx, gomock.Any()).Return(sqlc.WebhookEvents{}, errors.New("connection reset"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockWebhookEventWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewWebhookEventRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			ev, claimed, err := repo.Claim(ctx, mockDB, claimParams())

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.False(t, claimed)
				assert.Nil(t, ev)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectClaimed, claimed)
			if tc.expectClaimed {
				require.NotNil(t, ev)
				assert.Equal(t, eventID, ev.ID)
				assert.Equal(t, webhook.StatusProcessing, ev.Status)
				assert.Equal(t, 1, ev.Attempts)
				assert.Nil(t, ev.LastError)
				assert.Nil(t, ev.ProcessedAt)
			} else {
				assert.Nil(t, ev)
			}
		})
	}
}

// =============================================================================
// MarkProcessed Tests
// =============================================================================

func TestWebhookEventRepository_MarkProcessed(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	reason := webhook.ReasonNoSinistro

	testCases := []struct {
		name          string
		lastError     *string
		setupMock     func(*repositorymock.MockWebhookEventWriteQueries, sqlc.DBTX)
		expectHeld    bool
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: claim still held",
			setupMock: func(mock *repositorymock.MockWebhookEventWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().MarkWebhookEventProcessed(ctx, tx, sqlc.MarkWebhookEventProcessedParams{
					ID:        id,
					Attempts:  2,
					Status:    string(webhook.StatusOK),
					LastError: pgtype.Text{Valid: false},
					Now:       pgconv.TimeToPgtype(now),
				}).Return(int64(1), nil)
			},
			expectHeld: true,
		},
		{
			name:      "success: ignored with reason",
			lastError: &reason,
			setupMock: func(mock *repositorymock.MockWebhookEventWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().MarkWebhookEventProcessed(ctx, tx, gomock.Cond(func(x any) bool {
					p, ok := x.(sqlc.MarkWebhookEventProcessedParams)
					return ok && p.LastError.Valid && p.LastError.String == reason
				})).Return(int64(1), nil)
			},
			expectHeld: true,
		},
		{
			name: "success: row finalized or reclaimed by someone else",
			setupMock: func(mock *repositorymock.MockWebhookEventWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().MarkWebhookEventProcessed(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectHeld: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockWebhookEventWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().MarkWebhookEventProcessed(ctx, tx, gomock.Any()).Return(int64(0), errors.New("connection reset"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockWebhookEventWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewWebhookEventRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			status := webhook.StatusOK
			if tc.lastError != nil {
				status = webhook.StatusIgnored
			}
			held, err := repo.MarkProcessed(ctx, mockDB, id, 2, status, tc.lastError, now)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectHeld, held)
		})
	}
}

// =============================================================================
// ReleaseStale / Get Tests
// =============================================================================

func TestWebhookEventRepository_ReleaseStale(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns released count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockWebhookEventWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewWebhookEventRepository(mockQueries, mockDB)

		staleBefore := now.Add(-5 * time.Minute)
		mockQueries.EXPECT().ReleaseStaleWebhookEvents(ctx, mockDB, sqlc.ReleaseStaleWebhookEventsParams{
			LastError:   pgtype.Text{String: "claim expired", Valid: true},
			Now:         pgconv.TimeToPgtype(now),
			StaleBefore: pgconv.TimeToPgtype(staleBefore),
		}).Return(int64(3), nil)

		n, err := repo.ReleaseStale(ctx, mockDB, staleBefore, now, "claim expired")
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockWebhookEventWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewWebhookEventRepository(mockQueries, mockDB)

		mockQueries.EXPECT().ReleaseStaleWebhookEvents(ctx, mockDB, gomock.Any()).Return(int64(0), errors.New("timeout"))

		_, err := repo.ReleaseStale(ctx, mockDB, now, now, "claim expired")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestWebhookEventRepository_Get(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockWebhookEventWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: event found",
			setupMock: func(mock *repositorymock.MockWebhookEventWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetWebhookEvent(ctx, tx, sqlc.GetWebhookEventParams{Provider: "rd_station", EventID: "evt-1"}).
					Return(sqlc.WebhookEvents{
						ID:          uuid.New(),
						Provider:    "rd_station",
						EventID:     "evt-1",
						Status:      string(webhook.StatusOK),
						Attempts:    2,
						ProcessedAt: pgconv.TimeToPgtype(now),
					}, nil)
			},
		},
		{
			name: "error: event not found",
			setupMock: func(mock *repositorymock.MockWebhookEventWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetWebhookEvent(ctx, tx, gomock.Any()).Return(sqlc.WebhookEvents{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockWebhookEventWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetWebhookEvent(ctx, tx, gomock.Any()).Return(sqlc.WebhookEvents{}, errors.New("boom"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockWebhookEventWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewWebhookEventRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			ev, err := repo.Get(ctx, mockDB, "rd_station", "evt-1")
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, webhook.StatusOK, ev.Status)
			assert.Equal(t, 2, ev.Attempts)
			require.NotNil(t, ev.ProcessedAt)
			assert.True(t, ev.ProcessedAt.Equal(now))
		})
	}
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
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

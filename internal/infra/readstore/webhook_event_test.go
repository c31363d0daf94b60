//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sinistro-sync/internal/domain/webhook"
	"sinistro-sync/internal/infra"
	"sinistro-sync/internal/infra/readstore"
	sqlc "sinistro-sync/internal/infra/sqlc/generated"
	"sinistro-sync/internal/pkg/pgconv"
	"sinistro-sync/internal/usecase/queries"
	readstoremock "sinistro-sync/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWebhookEventReadStore_FirstPage(t *testing.T) {
	ctx := context.Background()
	received := time.Date(2025, 3, 12, 17, 0, 0, 0, time.UTC)
	errStatus := webhook.StatusError

	row := sqlc.WebhookEvents{
		ID:         uuid.New(),
		Provider:   "rd_station",
		EventID:    "evt-9",
		EventType:  "crm_deal_updated",
		Status:     string(webhook.StatusError),
		Attempts:   3,
		LastError:  pgtype.Text{String: "unmapped_stage", Valid: true},
		ReceivedAt: pgconv.TimeToPgtype(received),
		UpdatedAt:  pgconv.TimeToPgtype(received.Add(time.Minute)),
	}

	testCases := []struct {
		name          string
		status        *webhook.Status
		setupMock     func(*readstoremock.MockWebhookEventReadQueries, sqlc.DBTX)
		expectedError bool
	}{
		{
			name: "success: no status filter",
			setupMock: func(mock *readstoremock.MockWebhookEventReadQueries, db sqlc.DBTX) {
				mock.EXPECT().ListWebhookEvents(ctx, db, sqlc.ListWebhookEventsParams{
					Status:   pgtype.Text{Valid: false},
					RowLimit: 51,
				}).Return([]sqlc.WebhookEvents{row}, nil)
			},
		},
		{
			name:   "success: filtered by status",
			status: &errStatus,
			setupMock: func(mock *readstoremock.MockWebhookEventReadQueries, db sqlc.DBTX) {
				mock.EXPECT().ListWebhookEvents(ctx, db, sqlc.ListWebhookEventsParams{
					Status:   pgtype.Text{String: "error", Valid: true},
					RowLimit: 51,
				}).Return([]sqlc.WebhookEvents{row}, nil)
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *readstoremock.MockWebhookEventReadQueries, db sqlc.DBTX) {
				mock.EXPECT().ListWebhookEvents(ctx, db, gomock.Any()).Return(nil, errors.New("boom"))
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockWebhookEventReadQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewWebhookEventReadStore(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			views, err := store.FirstPage(ctx, tc.status, 51)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			require.Len(t, views, 1)
			v := views[0]
			assert.Equal(t, "evt-9", v.EventID)
			assert.Equal(t, "error", v.Status)
			assert.Equal(t, 3, v.Attempts)
			require.NotNil(t, v.LastError)
			assert.Equal(t, "unmapped_stage", *v.LastError)
			assert.Nil(t, v.ProcessedAt)
			assert.True(t, v.ReceivedAt.Equal(received))
		})
	}
}

func TestWebhookEventReadStore_Keyset(t *testing.T) {
	ctx := context.Background()
	ok := webhook.StatusOK
	after := queries.Keyset{At: time.Date(2025, 3, 12, 17, 0, 0, 0, time.UTC), ID: uuid.New()}

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockWebhookEventReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewWebhookEventReadStore(mockQueries, mockDB)

	mockQueries.EXPECT().ListWebhookEventsKeyset(ctx, mockDB, sqlc.ListWebhookEventsKeysetParams{
		Status:          pgtype.Text{String: "ok", Valid: true},
		AfterReceivedAt: pgconv.TimeToPgtype(after.At),
		AfterID:         after.ID,
		RowLimit:        11,
	}).Return([]sqlc.WebhookEvents{}, nil)

	views, err := store.Keyset(ctx, &ok, after, 11)
	require.NoError(t, err)
	assert.Empty(t, views)
}

//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"sinistro-sync/internal/domain/webhook"
	"sinistro-sync/internal/infra"
	"sinistro-sync/internal/pkg/errs"
	"sinistro-sync/internal/usecase/queries"
	"sinistro-sync/tests/common/builder"
	queriesmock "sinistro-sync/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SinistroQueriesTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *queriesmock.MockSinistroReadStore
	q     queries.SinistroQueries
}

func (s *SinistroQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockSinistroReadStore(s.ctrl)
	s.q = queries.NewSinistroQueries(s.store)
}

func TestSinistroQueriesSuite(t *testing.T) {
	suite.Run(t, new(SinistroQueriesTestSuite))
}

func timelineItems(n int, newest time.Time) []*queries.TimelineItem {
	items := make([]*queries.TimelineItem, n)
	for i := range items {
		items[i] = &queries.TimelineItem{ID: uuid.New(), CreatedAt: newest.Add(-time.Duration(i) * time.Minute)}
	}
	return items
}

func (s *SinistroQueriesTestSuite) TestGetByID() {
	view := builder.NewSinistroBuilder().BuildView()

	s.Run("found", func() {
		s.store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		got, err := s.q.GetByID(context.Background(), view.ID)
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("not found maps to a domain error", func() {
		s.store.EXPECT().FindByID(gomock.Any(), view.ID).
			Return(nil, infra.WrapRepoErr("sinistro not found", nil, infra.KindNotFound))
		_, err := s.q.GetByID(context.Background(), view.ID)
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *SinistroQueriesTestSuite) TestListTimeline() {
	view := builder.NewSinistroBuilder().BuildView()
	newest := time.Date(2025, 3, 12, 17, 0, 0, 0, time.UTC)

	s.Run("first page fetches one extra row to detect more", func() {
		s.store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		s.store.EXPECT().TimelineFirstPage(gomock.Any(), view.ID, int32(3)).Return(timelineItems(3, newest), nil)

		items, next, err := s.q.ListTimeline(context.Background(), view.ID, nil, 2)
		s.Require().NoError(err)
		s.Len(items, 2)
		s.Require().NotNil(next)

		at, id, err := queries.DecodeAfterCursor(next.After)
		s.Require().NoError(err)
		s.Equal(items[1].ID, id)
		s.Equal(items[1].CreatedAt, at)
	})

	s.Run("cursor continues with keyset", func() {
		after := queries.EncodeAfterCursor(newest, uuid.New())
		s.store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		s.store.EXPECT().TimelineKeyset(gomock.Any(), view.ID, gomock.Any(), int32(3)).Return(timelineItems(1, newest), nil)

		items, next, err := s.q.ListTimeline(context.Background(), view.ID, &queries.Cursor{After: after}, 2)
		s.Require().NoError(err)
		s.Len(items, 1)
		s.Nil(next)
	})

	s.Run("unknown sinistro", func() {
		s.store.EXPECT().FindByID(gomock.Any(), view.ID).
			Return(nil, infra.WrapRepoErr("sinistro not found", nil, infra.KindNotFound))
		_, _, err := s.q.ListTimeline(context.Background(), view.ID, nil, 10)
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func TestWebhookEventQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockWebhookEventReadStore(ctrl)
	q := queries.NewWebhookEventQueries(store)
	ctx := context.Background()

	t.Run("status filter is passed through", func(t *testing.T) {
		st := webhook.StatusError
		store.EXPECT().FirstPage(gomock.Any(), &st, int32(queries.DefaultListLimit+1)).
			Return([]*queries.WebhookEventView{{ID: uuid.New(), Status: string(st)}}, nil)

		rows, next, err := q.List(ctx, queries.WebhookEventFilter{Status: &st}, nil, 0)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Nil(t, next)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		st := webhook.Status("done")
		_, _, err := q.List(ctx, queries.WebhookEventFilter{Status: &st}, nil, 10)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("invalid cursor", func(t *testing.T) {
		_, _, err := q.List(ctx, queries.WebhookEventFilter{}, &queries.Cursor{After: "garbage!"}, 10)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

//go:build unit

package queries_test

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"parkbuddy/internal/usecase/queries"
	"parkbuddy/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationReadStore struct {
	mock.Mock
}

func (m *MockReservationReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]*queries.ReservationListItem), args.Error(1)
}

func (m *MockReservationReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastStartedAt time.Time, lastID int64, limit int32) ([]*queries.ReservationListItem, error) {
	args := m.Called(ctx, userID, lastStartedAt, lastID, limit)
	return args.Get(0).([]*queries.ReservationListItem), args.Error(1)
}

func (m *MockReservationReadStore) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationListItem, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*queries.ReservationListItem), args.Error(1)
}

func (m *MockReservationReadStore) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ActiveReservationView, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*queries.ActiveReservationView), args.Error(1)
}

func historyRows(userID uuid.UUID, n int) []*queries.ReservationListItem {
	base := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	rows := make([]*queries.ReservationListItem, n)
	for i := range rows {
		rows[i] = builder.NewReservationBuilder().
			WithUser(userID).
			WithID(int64(100 - i)).
			StartedAtTime(base.Add(-time.Duration(i) * time.Hour)).
			BuildListItem()
	}
	return rows
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success: full page yields a cursor at the last row", func(t *testing.T) {
		store := new(MockReservationReadStore)
		rows := historyRows(userID, 3)
		store.On("FindByUserFirstPage", mock.Anything, userID, int32(3)).Return(rows, nil)

		items, next, err := queries.NewReservationQueries(store).History(ctx, userID, nil, 2)

		require.NoError(t, err)
		require.Len(t, items, 2)
		require.NotNil(t, next)

		startedAt, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, items[1].ID, id)
		assert.True(t, startedAt.Equal(items[1].StartedAt))
	})

	t.Run("success: last page has no cursor", func(t *testing.T) {
		store := new(MockReservationReadStore)
		rows := historyRows(userID, 1)
		after := queries.EncodeAfterCursor(time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC), 101)
		store.On("FindByUserKeyset", mock.Anything, userID, time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC), int64(101), int32(3)).
			Return(rows, nil)

		items, next, err := queries.NewReservationQueries(store).History(ctx, userID, &queries.Cursor{After: after}, 2)

		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Nil(t, next)
		store.AssertExpectations(t)
	})

	t.Run("success: limit defaults", func(t *testing.T) {
		store := new(MockReservationReadStore)
		store.On("FindByUserFirstPage", mock.Anything, userID, int32(queries.DefaultListLimit+1)).
			Return([]*queries.ReservationListItem{}, nil)

		_, _, err := queries.NewReservationQueries(store).History(ctx, userID, nil, 0)

		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("error: tampered cursor", func(t *testing.T) {
		store := new(MockReservationReadStore)
		bad := base64.URLEncoding.EncodeToString([]byte("v0:123-4"))

		_, _, err := queries.NewReservationQueries(store).History(ctx, userID, &queries.Cursor{After: bad}, 2)

		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
		store.AssertNotCalled(t, "FindByUserKeyset")
	})
}

func TestDecodeAfterCursor_Rejects(t *testing.T) {
	for _, raw := range []string{"", "%%%", base64.URLEncoding.EncodeToString([]byte("v1:abc-1")), base64.URLEncoding.EncodeToString([]byte("v1:1-0"))} {
		_, _, err := queries.DecodeAfterCursor(raw)
		assert.Error(t, err, "cursor %q", raw)
	}
}

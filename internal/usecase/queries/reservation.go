package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastStartedAt time.Time, lastID int64, limit int32) ([]*ReservationListItem, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationListItem, error)
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*ActiveReservationView, error)
}

type ReservationQueries interface {
	// History lists open and closed reservations, most recent first.
	History(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
	FullHistory(ctx context.Context, userID uuid.UUID) ([]*ReservationListItem, error)
	Active(ctx context.Context, userID uuid.UUID) ([]*ActiveReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) History(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ReservationListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByUserFirstPage(ctx, userID, int32(limit+1)) // #nosec G115 -- capped at MaxListLimit
	} else {
		lastStartedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByUserKeyset(ctx, userID, lastStartedAt, lastID, int32(limit+1)) // #nosec G115 -- capped at MaxListLimit
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.StartedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *reservationQueriesImpl) FullHistory(ctx context.Context, userID uuid.UUID) ([]*ReservationListItem, error) {
	return q.repo.FindAllByUser(ctx, userID)
}

func (q *reservationQueriesImpl) Active(ctx context.Context, userID uuid.UUID) ([]*ActiveReservationView, error) {
	return q.repo.FindActiveByUser(ctx, userID)
}

package queries

import (
	"context"
	"time"
)

type ReportReadStore interface {
	InactiveUsers(ctx context.Context, since time.Time) ([]*InactiveUserView, error)
	ReservationsInPeriod(ctx context.Context, from, to time.Time) ([]*PeriodReservationView, error)
}

// ReportQueries feeds the scheduled notifier. It never writes.
type ReportQueries interface {
	InactiveUsers(ctx context.Context, since time.Time) ([]*InactiveUserView, error)
	ReservationsInPeriod(ctx context.Context, from, to time.Time) ([]*PeriodReservationView, error)
}

type reportQueriesImpl struct {
	store ReportReadStore
}

func NewReportQueries(store ReportReadStore) ReportQueries {
	return &reportQueriesImpl{store: store}
}

func (q *reportQueriesImpl) InactiveUsers(ctx context.Context, since time.Time) ([]*InactiveUserView, error) {
	return q.store.InactiveUsers(ctx, since)
}

func (q *reportQueriesImpl) ReservationsInPeriod(ctx context.Context, from, to time.Time) ([]*PeriodReservationView, error) {
	if !from.Before(to) {
		return nil, ErrInvalidWindow
	}
	return q.store.ReservationsInPeriod(ctx, from, to)
}

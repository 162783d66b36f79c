//go:build unit

// Package memstore is an in-memory shared.UnitOfWork for command tests.
// Transactions are serialised by one mutex and roll back on error.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"parkbuddy/internal/domain/lot"
	"parkbuddy/internal/domain/reservation"
	"parkbuddy/internal/domain/spot"
	"parkbuddy/internal/domain/user"
	"parkbuddy/internal/infra"
	sqlc "parkbuddy/internal/infra/sqlc/generated"
	"parkbuddy/internal/pkg/errs"
	"parkbuddy/internal/usecase/shared"

	"github.com/google/uuid"
)

type LotRow struct {
	ID        int64
	Name      string
	Address   string
	PinCode   string
	RateCents int64
	SpotCount int
	UpdatedAt time.Time
}

type SpotRow struct {
	ID        int64
	LotID     int64
	Status    spot.Status
	RetiredAt *time.Time
}

type ReservationRow struct {
	ID        int64
	SpotID    int64
	UserID    uuid.UUID
	StartedAt time.Time
	EndedAt   *time.Time
	CostCents *int64
}

type UserRow struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	Role         user.Role
	Active       bool
	LastLogin    *time.Time
}

type state struct {
	lots         map[int64]LotRow
	spots        map[int64]SpotRow
	reservations map[int64]ReservationRow
	users        map[uuid.UUID]UserRow
	nextID       int64
}

func (s state) clone() state {
	c := state{
		lots:         make(map[int64]LotRow, len(s.lots)),
		spots:        make(map[int64]SpotRow, len(s.spots)),
		reservations: make(map[int64]ReservationRow, len(s.reservations)),
		users:        make(map[uuid.UUID]UserRow, len(s.users)),
		nextID:       s.nextID,
	}
	for k, v := range s.lots {
		c.lots[k] = v
	}
	for k, v := range s.spots {
		c.spots[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	return c
}

type Store struct {
	mu        sync.Mutex
	st        state
	failNext  error
	failClose error
	attempts  int
}

func New() *Store {
	return &Store{st: state{}.clone()}
}

// FailNextWith makes the next transaction return err without running.
func (s *Store) FailNextWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = err
}

// FailCloseWith makes the next reservation Close return err, as a store
// constraint rejecting the write would.
func (s *Store) FailCloseWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failClose = err
}

// Attempts counts transactions started, including failed ones.
func (s *Store) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts++

	if err := s.failNext; err != nil {
		s.failNext = nil
		return err
	}

	snapshot := s.st.clone()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func (s *Store) WithinRetry(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return s.Within(ctx, fn)
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) CommandReads() shared.CommandReads {
	return &lockingReads{s: s}
}

// Seeding and inspection

func (s *Store) SeedLot(name string, rateCents int64, spots int) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.nextID++
	id := s.st.nextID
	s.st.lots[id] = LotRow{ID: id, Name: name, Address: name + " Road", PinCode: "560001", RateCents: rateCents, SpotCount: spots}
	s.addSpots(id, spots)
	return id
}

func (s *Store) SeedUser(email, passwordHash string, role user.Role, active bool) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.st.users[id] = UserRow{ID: id, Email: email, FullName: "Test User", PasswordHash: passwordHash, Role: role, Active: active}
	return id
}

func (s *Store) SetUserActive(id uuid.UUID, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.st.users[id]
	u.Active = active
	s.st.users[id] = u
}

// SetSpotStatus writes a spot's status directly, bypassing the repositories.
func (s *Store) SetSpotStatus(id int64, status spot.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp := s.st.spots[id]
	sp.Status = status
	s.st.spots[id] = sp
}

func (s *Store) Lot(id int64) (LotRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.st.lots[id]
	return l, ok
}

func (s *Store) User(id uuid.UUID) UserRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.users[id]
}

func (s *Store) Spot(id int64) (SpotRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.st.spots[id]
	return sp, ok
}

// ActiveSpots returns the non-retired spots of a lot by ascending id.
func (s *Store) ActiveSpots(lotID int64) []SpotRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lotSpots(lotID, func(sp SpotRow) bool { return sp.RetiredAt == nil })
}

func (s *Store) Reservation(id int64) (ReservationRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.reservations[id]
	return r, ok
}

func (s *Store) OpenReservations() []ReservationRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []ReservationRow
	for _, r := range s.st.reservations {
		if r.EndedAt == nil {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) addSpots(lotID int64, n int) {
	for i := 0; i < n; i++ {
		s.st.nextID++
		s.st.spots[s.st.nextID] = SpotRow{ID: s.st.nextID, LotID: lotID, Status: spot.StatusAvailable}
	}
}

func (s *Store) lotSpots(lotID int64, keep func(SpotRow) bool) []SpotRow {
	var out []SpotRow
	for _, sp := range s.st.spots {
		if sp.LotID == lotID && keep(sp) {
			out = append(out, sp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func conflict(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindConflict)
}

type memTx struct {
	s *Store
}

func (t *memTx) Lots() shared.LotRepository                 { return &lotRepo{s: t.s} }
func (t *memTx) Spots() shared.SpotRepository               { return &spotRepo{s: t.s} }
func (t *memTx) Reservations() shared.ReservationRepository { return &reservationRepo{s: t.s} }
func (t *memTx) Users() shared.UserRepository               { return &userRepo{s: t.s} }
func (t *memTx) Reads() shared.CommandReads                 { return &reads{s: t.s} }
func (t *memTx) DB() sqlc.DBTX                              { return nil }

type lotRepo struct{ s *Store }

func (r *lotRepo) Create(_ context.Context, l *lot.Lot, now time.Time) (int64, error) {
	r.s.st.nextID++
	id := r.s.st.nextID
	r.s.st.lots[id] = LotRow{
		ID:        id,
		Name:      l.Name().Value(),
		Address:   l.Address().Value(),
		PinCode:   l.PinCode().Value(),
		RateCents: l.HourlyRate().Cents(),
		SpotCount: l.SpotCount(),
		UpdatedAt: now,
	}
	return id, nil
}

func (r *lotRepo) FindForShare(_ context.Context, id int64) (*lot.Lot, error) {
	return r.find(id)
}

func (r *lotRepo) FindForUpdate(_ context.Context, id int64) (*lot.Lot, error) {
	return r.find(id)
}

func (r *lotRepo) find(id int64) (*lot.Lot, error) {
	row, ok := r.s.st.lots[id]
	if !ok {
		return nil, notFound("lot not found")
	}
	name, _ := lot.NewName(row.Name)
	address, _ := lot.NewAddress(row.Address)
	pin, _ := lot.NewPinCode(row.PinCode)
	return lot.ReconstructLot(row.ID, name, address, pin, reservation.MustMoney(row.RateCents), row.SpotCount, row.UpdatedAt, row.UpdatedAt), nil
}

func (r *lotRepo) Update(_ context.Context, l *lot.Lot, now time.Time) error {
	if _, ok := r.s.st.lots[l.ID()]; !ok {
		return notFound("lot not found")
	}
	r.s.st.lots[l.ID()] = LotRow{
		ID:        l.ID(),
		Name:      l.Name().Value(),
		Address:   l.Address().Value(),
		PinCode:   l.PinCode().Value(),
		RateCents: l.HourlyRate().Cents(),
		SpotCount: l.SpotCount(),
		UpdatedAt: now,
	}
	return nil
}

// Delete cascades to spots and their reservations like the schema does.
func (r *lotRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.st.lots[id]; !ok {
		return notFound("lot not found")
	}
	delete(r.s.st.lots, id)
	for sid, sp := range r.s.st.spots {
		if sp.LotID != id {
			continue
		}
		delete(r.s.st.spots, sid)
		for rid, res := range r.s.st.reservations {
			if res.SpotID == sid {
				delete(r.s.st.reservations, rid)
			}
		}
	}
	return nil
}

type spotRepo struct{ s *Store }

func (r *spotRepo) ClaimAvailable(_ context.Context, lotID int64, _ time.Time) (*spot.Spot, error) {
	free := r.s.lotSpots(lotID, func(sp SpotRow) bool {
		return sp.RetiredAt == nil && sp.Status == spot.StatusAvailable
	})
	if len(free) == 0 {
		return nil, notFound("no available spot")
	}
	sp := free[0]
	sp.Status = spot.StatusOccupied
	r.s.st.spots[sp.ID] = sp
	return spot.ReconstructSpot(sp.ID, sp.LotID, sp.Status, nil), nil
}

func (r *spotRepo) Vacate(_ context.Context, spotID int64, _ time.Time) error {
	sp, ok := r.s.st.spots[spotID]
	if !ok || sp.Status != spot.StatusOccupied {
		return errs.Mark(conflict("spot is not occupied"), shared.ErrSpotNotOccupied)
	}
	sp.Status = spot.StatusAvailable
	r.s.st.spots[spotID] = sp
	return nil
}

func (r *spotRepo) FindForUpdate(_ context.Context, id int64) (*spot.Spot, error) {
	sp, ok := r.s.st.spots[id]
	if !ok {
		return nil, notFound("spot not found")
	}
	return spot.ReconstructSpot(sp.ID, sp.LotID, sp.Status, sp.RetiredAt), nil
}

func (r *spotRepo) CountOccupied(_ context.Context, lotID int64) (int, error) {
	return len(r.s.lotSpots(lotID, func(sp SpotRow) bool {
		return sp.RetiredAt == nil && sp.Status == spot.StatusOccupied
	})), nil
}

func (r *spotRepo) Add(_ context.Context, lotID int64, n int, _ time.Time) error {
	r.s.addSpots(lotID, n)
	return nil
}

func (r *spotRepo) RetireFree(_ context.Context, lotID int64, n int, now time.Time) (int, error) {
	free := r.s.lotSpots(lotID, func(sp SpotRow) bool {
		return sp.RetiredAt == nil && sp.Status == spot.StatusAvailable
	})
	retired := 0
	for i := len(free) - 1; i >= 0 && retired < n; i-- {
		sp := free[i]
		at := now
		sp.RetiredAt = &at
		r.s.st.spots[sp.ID] = sp
		retired++
	}
	return retired, nil
}

func (r *spotRepo) Retire(_ context.Context, spotID int64, now time.Time) error {
	sp, ok := r.s.st.spots[spotID]
	if !ok || sp.RetiredAt != nil || sp.Status != spot.StatusAvailable {
		return conflict("spot is in use")
	}
	at := now
	sp.RetiredAt = &at
	r.s.st.spots[spotID] = sp
	return nil
}

type reservationRepo struct{ s *Store }

func (r *reservationRepo) Create(_ context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	for _, existing := range r.s.st.reservations {
		if existing.SpotID == res.SpotID() && existing.EndedAt == nil {
			return nil, conflict("spot already has an open reservation")
		}
	}
	r.s.st.nextID++
	id := r.s.st.nextID
	r.s.st.reservations[id] = ReservationRow{ID: id, SpotID: res.SpotID(), UserID: res.UserID(), StartedAt: res.StartedAt()}
	return reservation.ReconstructReservation(id, res.SpotID(), res.UserID(), res.StartedAt(), nil, nil)
}

func (r *reservationRepo) FindForRelease(_ context.Context, id int64) (*shared.ReleaseTarget, error) {
	row, ok := r.s.st.reservations[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	var cost *reservation.Money
	if row.CostCents != nil {
		m := reservation.MustMoney(*row.CostCents)
		cost = &m
	}
	res, err := reservation.ReconstructReservation(row.ID, row.SpotID, row.UserID, row.StartedAt, row.EndedAt, cost)
	if err != nil {
		return nil, err
	}
	sp := r.s.st.spots[row.SpotID]
	l := r.s.st.lots[sp.LotID]
	return &shared.ReleaseTarget{
		Reservation: res,
		LotID:       l.ID,
		HourlyRate:  reservation.MustMoney(l.RateCents),
	}, nil
}

func (r *reservationRepo) Close(_ context.Context, res *reservation.Reservation) error {
	if err := r.s.failClose; err != nil {
		r.s.failClose = nil
		return err
	}
	row, ok := r.s.st.reservations[res.ID()]
	if !ok || row.EndedAt != nil {
		return errs.Mark(conflict("reservation already closed"), shared.ErrReservationAlreadyClosed)
	}
	end := *res.EndedAt()
	cents := res.Cost().Cents()
	row.EndedAt = &end
	row.CostCents = &cents
	r.s.st.reservations[row.ID] = row
	return nil
}

func (r *reservationRepo) CountOpenByLot(_ context.Context, lotID int64) (int, error) {
	n := 0
	for _, row := range r.s.st.reservations {
		if row.EndedAt == nil && r.s.st.spots[row.SpotID].LotID == lotID {
			n++
		}
	}
	return n, nil
}

func (r *reservationRepo) HasOpenOnSpot(_ context.Context, spotID int64) (bool, error) {
	for _, row := range r.s.st.reservations {
		if row.EndedAt == nil && row.SpotID == spotID {
			return true, nil
		}
	}
	return false, nil
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, u *user.User, now time.Time) (*user.User, error) {
	for _, existing := range r.s.st.users {
		if strings.EqualFold(existing.Email, u.Email().Value()) {
			return nil, infra.WrapRepoErr("failed to create user", nil, infra.KindDuplicateKey)
		}
	}
	r.s.st.users[u.ID()] = UserRow{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		FullName:     u.FullName().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role(),
		Active:       u.IsActive(),
	}
	return user.ReconstructUser(u.ID(), u.Email(), u.FullName(), u.Phone(), u.PasswordHash(), u.Role(), nil, u.IsActive(), now, now), nil
}

func (r *userRepo) ActiveForShare(_ context.Context, id uuid.UUID) (bool, error) {
	u, ok := r.s.st.users[id]
	if !ok {
		return false, notFound("user not found")
	}
	return u.Active, nil
}

func (r *userRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	u, ok := r.s.st.users[id]
	if !ok {
		return notFound("user not found")
	}
	u.LastLogin = &at
	r.s.st.users[id] = u
	return nil
}

// reads runs inside a transaction that already holds the store lock.
type reads struct{ s *Store }

func (r *reads) UserByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.s.st.users {
		if strings.EqualFold(u.Email, email) {
			return toUser(u)
		}
	}
	return nil, notFound("user not found")
}

func (r *reads) UserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.s.st.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return toUser(u)
}

func (r *reads) SpotByID(_ context.Context, id int64) (*shared.SpotSnapshot, error) {
	sp, ok := r.s.st.spots[id]
	if !ok {
		return nil, notFound("spot not found")
	}
	return &shared.SpotSnapshot{ID: sp.ID, LotID: sp.LotID, Status: sp.Status}, nil
}

type lockingReads struct{ s *Store }

func (r *lockingReads) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return (&reads{s: r.s}).UserByEmail(ctx, email)
}

func (r *lockingReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return (&reads{s: r.s}).UserByID(ctx, id)
}

func (r *lockingReads) SpotByID(ctx context.Context, id int64) (*shared.SpotSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return (&reads{s: r.s}).SpotByID(ctx, id)
}

func toUser(row UserRow) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	fullName, err := user.NewFullName(row.FullName)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(row.ID, email, fullName, user.Phone{}, row.PasswordHash, row.Role, row.LastLogin, row.Active, time.Time{}, time.Time{}), nil
}

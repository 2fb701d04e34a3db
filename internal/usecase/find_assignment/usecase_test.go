package find_assignment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
	reservationRepo "github.com/qwerty-development/rbs-restaurant-sub003/internal/infra/storage/reservation"
)

type fakeTableRepo struct {
	tables []*domain.Table
	combos []*domain.TableCombination
}

func (f *fakeTableRepo) ListActive(_ context.Context, _ uuid.UUID) ([]*domain.Table, error) {
	return f.tables, nil
}

func (f *fakeTableRepo) ListActiveCombinations(_ context.Context, _ uuid.UUID) ([]*domain.TableCombination, error) {
	return f.combos, nil
}

type fakeReservationRepo struct {
	byID         map[uuid.UUID]*domain.Reservation
	occupying    []*domain.Reservation
	replacedID   uuid.UUID
	replacedWith []uuid.UUID
	replaceCalls int
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (f *fakeReservationRepo) ListOccupying(_ context.Context, _ uuid.UUID, _ []uuid.UUID) ([]*domain.Reservation, error) {
	return f.occupying, nil
}

func (f *fakeReservationRepo) ReplaceTables(_ context.Context, id uuid.UUID, tableIDs []uuid.UUID) error {
	f.replaceCalls++
	f.replacedID = id
	f.replacedWith = tableIDs
	return nil
}

type fakeHistoryRepo struct {
	entries []*domain.StatusHistoryEntry
}

func (f *fakeHistoryRepo) Append(_ context.Context, entry *domain.StatusHistoryEntry) (*domain.StatusHistoryEntry, error) {
	f.entries = append(f.entries, entry)
	return entry, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	restaurantID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	smallTable   = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	mediumTable  = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002")
	largeTable   = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000003")
)

func floorPlan() []*domain.Table {
	return []*domain.Table{
		{ID: smallTable, RestaurantID: restaurantID, Number: "T1", Capacity: 2, IsActive: true},
		{ID: mediumTable, RestaurantID: restaurantID, Number: "T2", Capacity: 4, IsActive: true},
		{ID: largeTable, RestaurantID: restaurantID, Number: "T3", Capacity: 6, IsActive: true},
	}
}

func pairCombo() *domain.TableCombination {
	return &domain.TableCombination{
		ID:               uuid.MustParse("cccccccc-0000-0000-0000-000000000001"),
		RestaurantID:     restaurantID,
		PrimaryTableID:   smallTable,
		SecondaryTableID: mediumTable,
		CombinedCapacity: 6,
		IsActive:         true,
	}
}

func newUseCase(tables *fakeTableRepo, reservations *fakeReservationRepo, history *fakeHistoryRepo, tx *fakeTxManager) *UseCase {
	return NewUseCase(tables, reservations, history, tx, nopLogger{})
}

func baseRequest(partySize int) *Request {
	return &Request{
		RestaurantID:    restaurantID,
		StartTime:       time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC),
		DurationMinutes: 120,
		PartySize:       partySize,
	}
}

func TestExecute_PicksSmallestFittingTable(t *testing.T) {
	uc := newUseCase(&fakeTableRepo{tables: floorPlan()}, &fakeReservationRepo{}, &fakeHistoryRepo{}, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), baseRequest(3))

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{mediumTable}, resp.TableIDs)
	assert.False(t, resp.RequiresCombination)
	assert.False(t, resp.Committed)
}

func TestExecute_SkipsOccupiedTable(t *testing.T) {
	req := baseRequest(3)
	occupied := &domain.Reservation{
		ID:              uuid.New(),
		RestaurantID:    restaurantID,
		StartTime:       req.StartTime,
		TurnTimeMinutes: 120,
		Status:          domain.StatusSeated,
		TableIDs:        []uuid.UUID{mediumTable},
	}

	uc := newUseCase(
		&fakeTableRepo{tables: floorPlan()},
		&fakeReservationRepo{occupying: []*domain.Reservation{occupied}},
		&fakeHistoryRepo{},
		&fakeTxManager{},
	)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	// Лучший подходящий стол занят — берётся следующий по вместимости
	assert.Equal(t, []uuid.UUID{largeTable}, resp.TableIDs)
}

func TestExecute_PrefersSingleOverCombination(t *testing.T) {
	uc := newUseCase(
		&fakeTableRepo{tables: floorPlan(), combos: []*domain.TableCombination{pairCombo()}},
		&fakeReservationRepo{},
		&fakeHistoryRepo{},
		&fakeTxManager{},
	)

	resp, err := uc.Execute(context.Background(), baseRequest(6))

	require.NoError(t, err)
	// Одиночный стол на 6 предпочтительнее комбинации на 6
	assert.Equal(t, []uuid.UUID{largeTable}, resp.TableIDs)
	assert.False(t, resp.RequiresCombination)
}

func TestExecute_FallsBackToCombination(t *testing.T) {
	req := baseRequest(6)
	occupied := &domain.Reservation{
		ID:              uuid.New(),
		RestaurantID:    restaurantID,
		StartTime:       req.StartTime,
		TurnTimeMinutes: 120,
		Status:          domain.StatusConfirmed,
		TableIDs:        []uuid.UUID{largeTable},
	}

	uc := newUseCase(
		&fakeTableRepo{tables: floorPlan(), combos: []*domain.TableCombination{pairCombo()}},
		&fakeReservationRepo{occupying: []*domain.Reservation{occupied}},
		&fakeHistoryRepo{},
		&fakeTxManager{},
	)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{smallTable, mediumTable}, resp.TableIDs)
	assert.True(t, resp.RequiresCombination)
}

func TestExecute_NoCandidateWhenPartyTooLarge(t *testing.T) {
	uc := newUseCase(&fakeTableRepo{tables: floorPlan()}, &fakeReservationRepo{}, &fakeHistoryRepo{}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), baseRequest(10))

	assert.ErrorIs(t, err, ErrNoCandidate)
}

func TestExecute_NoCandidateWhenEverythingOccupied(t *testing.T) {
	req := baseRequest(2)
	occupied := &domain.Reservation{
		ID:              uuid.New(),
		RestaurantID:    restaurantID,
		StartTime:       req.StartTime,
		TurnTimeMinutes: 120,
		Status:          domain.StatusSeated,
		TableIDs:        []uuid.UUID{smallTable, mediumTable, largeTable},
	}

	uc := newUseCase(
		&fakeTableRepo{tables: floorPlan()},
		&fakeReservationRepo{occupying: []*domain.Reservation{occupied}},
		&fakeHistoryRepo{},
		&fakeTxManager{},
	)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrNoCandidate)
}

func TestExecute_DeterministicTieBreakByID(t *testing.T) {
	// Два стола одинаковой вместимости: выигрывает меньший по ID
	twinA := uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000001")
	twinB := uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000002")
	tables := []*domain.Table{
		{ID: twinB, RestaurantID: restaurantID, Number: "T5", Capacity: 4, IsActive: true},
		{ID: twinA, RestaurantID: restaurantID, Number: "T4", Capacity: 4, IsActive: true},
	}

	uc := newUseCase(&fakeTableRepo{tables: tables}, &fakeReservationRepo{}, &fakeHistoryRepo{}, &fakeTxManager{})

	for i := 0; i < 5; i++ {
		resp, err := uc.Execute(context.Background(), baseRequest(4))
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{twinA}, resp.TableIDs)
	}
}

func TestExecute_CommitAssignsTablesAndWritesAudit(t *testing.T) {
	reservationID := uuid.MustParse("dddddddd-0000-0000-0000-000000000001")
	reservation := &domain.Reservation{
		ID:              reservationID,
		RestaurantID:    restaurantID,
		PartySize:       3,
		StartTime:       time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC),
		TurnTimeMinutes: 120,
		Status:          domain.StatusConfirmed,
	}

	reservations := &fakeReservationRepo{byID: map[uuid.UUID]*domain.Reservation{reservationID: reservation}}
	history := &fakeHistoryRepo{}
	tx := &fakeTxManager{}
	uc := newUseCase(&fakeTableRepo{tables: floorPlan()}, reservations, history, tx)

	req := baseRequest(3)
	req.ReservationID = &reservationID
	req.ActorID = 42

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Committed)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, reservationID, reservations.replacedID)
	assert.Equal(t, []uuid.UUID{mediumTable}, reservations.replacedWith)

	require.Len(t, history.entries, 1)
	entry := history.entries[0]
	assert.Equal(t, reservationID, entry.ReservationID)
	require.NotNil(t, entry.PreviousStatus)
	// Статус не менялся: запись о столах помечается previous == new
	assert.Equal(t, entry.NewStatus, *entry.PreviousStatus)
	assert.Equal(t, int64(42), entry.ActorID)
}

func TestExecute_CommitUnknownReservation(t *testing.T) {
	missing := uuid.New()
	reservations := &fakeReservationRepo{byID: map[uuid.UUID]*domain.Reservation{}}
	uc := newUseCase(&fakeTableRepo{tables: floorPlan()}, reservations, &fakeHistoryRepo{}, &fakeTxManager{})

	req := baseRequest(2)
	req.ReservationID = &missing

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.Zero(t, reservations.replaceCalls)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(&fakeTableRepo{}, &fakeReservationRepo{}, &fakeHistoryRepo{}, &fakeTxManager{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing restaurant", func(r *Request) { r.RestaurantID = uuid.Nil }},
		{"zero start time", func(r *Request) { r.StartTime = time.Time{} }},
		{"non-positive duration", func(r *Request) { r.DurationMinutes = 0 }},
		{"party too small", func(r *Request) { r.PartySize = 0 }},
		{"party too large", func(r *Request) { r.PartySize = domain.MaxPartySize + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest(2)
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

package switch_tables

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
	reservationRepo "github.com/qwerty-development/rbs-restaurant-sub003/internal/infra/storage/reservation"
	"github.com/qwerty-development/rbs-restaurant-sub003/pkg/ptr"
)

type fakeTableRepo struct {
	tables []*domain.Table
}

func (f *fakeTableRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*domain.Table, error) {
	found := make([]*domain.Table, 0, len(ids))
	for _, t := range f.tables {
		for _, id := range ids {
			if t.ID == id {
				found = append(found, t)
			}
		}
	}
	return found, nil
}

type fakeReservationRepo struct {
	byID      map[uuid.UUID]*domain.Reservation
	occupying []*domain.Reservation

	replaceCalls int
	replacedWith []uuid.UUID
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

func (f *fakeReservationRepo) ReplaceTables(_ context.Context, _ uuid.UUID, tableIDs []uuid.UUID) error {
	f.replaceCalls++
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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	restaurantID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	reservationID = uuid.MustParse("dddddddd-0000-0000-0000-000000000001")
	oldTable      = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	newTable      = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002")
	tinyTable     = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000003")
)

func fixture(partySize int) (*fakeTableRepo, *fakeReservationRepo, *fakeHistoryRepo) {
	tables := &fakeTableRepo{tables: []*domain.Table{
		{ID: oldTable, RestaurantID: restaurantID, Number: "T1", Capacity: 4, IsActive: true},
		{ID: newTable, RestaurantID: restaurantID, Number: "T2", Capacity: 4, IsActive: true},
		{ID: tinyTable, RestaurantID: restaurantID, Number: "T3", Capacity: 2, IsActive: true},
	}}
	reservations := &fakeReservationRepo{byID: map[uuid.UUID]*domain.Reservation{
		reservationID: {
			ID:              reservationID,
			RestaurantID:    restaurantID,
			PartySize:       partySize,
			StartTime:       time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC),
			TurnTimeMinutes: 120,
			Status:          domain.StatusSeated,
			TableIDs:        []uuid.UUID{oldTable},
		},
	}}
	return tables, reservations, &fakeHistoryRepo{}
}

func TestExecute_SwitchSucceeds(t *testing.T) {
	tables, reservations, history := fixture(4)
	uc := NewUseCase(tables, reservations, history, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: reservationID,
		NewTableIDs:   []uuid.UUID{newTable},
		ActorID:       9,
	})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{oldTable}, resp.PreviousTableIDs)
	assert.Equal(t, []uuid.UUID{newTable}, resp.NewTableIDs)
	assert.Nil(t, resp.CapacityWarning)
	assert.Equal(t, 1, reservations.replaceCalls)
	assert.Equal(t, []uuid.UUID{newTable}, reservations.replacedWith)

	// Пересадка попадает в журнал с previous == new
	require.Len(t, history.entries, 1)
	entry := history.entries[0]
	require.NotNil(t, entry.PreviousStatus)
	assert.Equal(t, entry.NewStatus, *entry.PreviousStatus)
	assert.Equal(t, domain.StatusSeated, entry.NewStatus)
	assert.Equal(t, int64(9), entry.ActorID)
	require.NotNil(t, entry.Reason)
	assert.Contains(t, *entry.Reason, "пересадка")
}

func TestExecute_ConflictIsAllOrNothing(t *testing.T) {
	tables, reservations, history := fixture(4)
	reservations.occupying = []*domain.Reservation{{
		ID:              uuid.New(),
		RestaurantID:    restaurantID,
		StartTime:       time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC),
		TurnTimeMinutes: 120,
		Status:          domain.StatusConfirmed,
		TableIDs:        []uuid.UUID{newTable},
	}}

	uc := NewUseCase(tables, reservations, history, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: reservationID,
		NewTableIDs:   []uuid.UUID{newTable},
		ActorID:       9,
	})

	assert.ErrorIs(t, err, ErrTableConflict)
	assert.Zero(t, reservations.replaceCalls)
	assert.Empty(t, history.entries)
}

func TestExecute_OwnReservationDoesNotConflict(t *testing.T) {
	tables, reservations, history := fixture(4)
	// В списке занятости — само бронирование на старом столе
	reservations.occupying = []*domain.Reservation{reservations.byID[reservationID]}

	uc := NewUseCase(tables, reservations, history, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: reservationID,
		NewTableIDs:   []uuid.UUID{newTable, oldTable},
		ActorID:       9,
	})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{newTable, oldTable}, resp.NewTableIDs)
}

func TestExecute_CapacityShortfallWarnsButSwitches(t *testing.T) {
	tables, reservations, history := fixture(4)
	uc := NewUseCase(tables, reservations, history, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: reservationID,
		NewTableIDs:   []uuid.UUID{tinyTable},
		ActorID:       9,
		Reason:        ptr.Ptr("гость пересел к окну"),
	})

	require.NoError(t, err)
	// Пересадка выполнена, но с предупреждением о нехватке мест
	assert.Equal(t, 1, reservations.replaceCalls)
	require.NotNil(t, resp.CapacityWarning)
	assert.Contains(t, *resp.CapacityWarning, "не хватает 2")
}

func TestExecute_UnknownTable(t *testing.T) {
	tables, reservations, history := fixture(4)
	uc := NewUseCase(tables, reservations, history, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: reservationID,
		NewTableIDs:   []uuid.UUID{uuid.New()},
		ActorID:       9,
	})

	assert.ErrorIs(t, err, ErrTableNotFound)
	assert.Zero(t, reservations.replaceCalls)
}

func TestExecute_InactiveTable(t *testing.T) {
	tables, reservations, history := fixture(4)
	tables.tables[1].IsActive = false

	uc := NewUseCase(tables, reservations, history, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: reservationID,
		NewTableIDs:   []uuid.UUID{newTable},
		ActorID:       9,
	})

	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestExecute_UnknownReservation(t *testing.T) {
	tables, reservations, history := fixture(4)
	uc := NewUseCase(tables, reservations, history, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: uuid.New(),
		NewTableIDs:   []uuid.UUID{newTable},
		ActorID:       9,
	})

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	tables, reservations, history := fixture(4)
	uc := NewUseCase(tables, reservations, history, fakeTxManager{}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"empty target set", &Request{ReservationID: reservationID, NewTableIDs: []uuid.UUID{}}},
		{"duplicate tables", &Request{ReservationID: reservationID, NewTableIDs: []uuid.UUID{newTable, newTable}}},
		{"nil table id", &Request{ReservationID: reservationID, NewTableIDs: []uuid.UUID{uuid.Nil}}},
		{"missing reservation id", &Request{NewTableIDs: []uuid.UUID{newTable}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

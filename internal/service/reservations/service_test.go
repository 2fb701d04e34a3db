package reservations

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

type fakeReservationRepo struct {
	byID map[uuid.UUID]*domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

type fakeHistoryRepo struct {
	entries []*domain.StatusHistoryEntry
}

func (f *fakeHistoryRepo) ListByReservation(_ context.Context, _ uuid.UUID) ([]*domain.StatusHistoryEntry, error) {
	return f.entries, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var reservationID = uuid.MustParse("dddddddd-0000-0000-0000-000000000001")

func fixture(status domain.DiningStatus) (*Service, *fakeHistoryRepo) {
	repo := &fakeReservationRepo{byID: map[uuid.UUID]*domain.Reservation{
		reservationID: {
			ID:              reservationID,
			RestaurantID:    uuid.New(),
			GuestName:       "Петрова",
			PartySize:       3,
			StartTime:       time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC),
			TurnTimeMinutes: 120,
			Status:          status,
		},
	}}
	history := &fakeHistoryRepo{}
	return NewService(repo, history, nopLogger{}), history
}

func TestGetByID_ComputesDerivedFields(t *testing.T) {
	svc, _ := fixture(domain.StatusSeated)

	resp, err := svc.GetByID(context.Background(), reservationID)

	require.NoError(t, err)
	assert.Equal(t, "seated", resp.Status)
	assert.Equal(t, 30, resp.Progress)
	assert.Equal(t, time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC), resp.EndTime)
	assert.NotEmpty(t, resp.StatusLabel)
	assert.NotNil(t, resp.TableIDs)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := fixture(domain.StatusSeated)

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetStatusHistory_MarksTableSwitches(t *testing.T) {
	svc, history := fixture(domain.StatusSeated)

	pending := domain.StatusPending
	seated := domain.StatusSeated
	history.entries = []*domain.StatusHistoryEntry{
		{ID: 1, ReservationID: reservationID, NewStatus: domain.StatusPending, ActorID: 1},
		{ID: 2, ReservationID: reservationID, PreviousStatus: &pending, NewStatus: domain.StatusConfirmed, ActorID: 1},
		// previous == new — пересадка, не смена статуса
		{ID: 3, ReservationID: reservationID, PreviousStatus: &seated, NewStatus: domain.StatusSeated, ActorID: 2, Reason: ptr.Ptr("пересадка")},
	}

	resp, err := svc.GetStatusHistory(context.Background(), reservationID)

	require.NoError(t, err)
	require.Len(t, resp.Entries, 3)
	assert.False(t, resp.Entries[0].IsTableSwitch)
	assert.False(t, resp.Entries[1].IsTableSwitch)
	assert.True(t, resp.Entries[2].IsTableSwitch)
	assert.Nil(t, resp.Entries[0].PreviousStatus)
	require.NotNil(t, resp.Entries[1].PreviousStatus)
	assert.Equal(t, "pending", *resp.Entries[1].PreviousStatus)
}

func TestGetStatusHistory_UnknownReservationIs404NotEmptyList(t *testing.T) {
	svc, _ := fixture(domain.StatusSeated)

	_, err := svc.GetStatusHistory(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetTransitions_SeatedReservation(t *testing.T) {
	svc, _ := fixture(domain.StatusSeated)

	resp, err := svc.GetTransitions(context.Background(), reservationID)

	require.NoError(t, err)
	assert.Equal(t, "seated", resp.CurrentStatus)
	assert.Equal(t, 30, resp.Progress)
	// 120 минут * (100-30)/100
	assert.Equal(t, 84, resp.RemainingMinutes)

	next := make([]string, len(resp.NextTransitions))
	for i, opt := range resp.NextTransitions {
		next[i] = opt.Status
	}
	assert.Contains(t, next, "ordered")
	assert.Contains(t, next, "cancelled_by_user")
	assert.NotContains(t, next, "no_show")

	// Полный набор — только вперёд по happy path плюс ветки
	all := make([]string, len(resp.AllStatuses))
	for i, opt := range resp.AllStatuses {
		all[i] = opt.Status
	}
	assert.Contains(t, all, "completed")
	assert.NotContains(t, all, "pending")
	assert.NotContains(t, all, "confirmed")
}

func TestGetTransitions_TerminalStatusHasNoMoves(t *testing.T) {
	svc, _ := fixture(domain.StatusCompleted)

	resp, err := svc.GetTransitions(context.Background(), reservationID)

	require.NoError(t, err)
	assert.Equal(t, 100, resp.Progress)
	assert.Equal(t, 0, resp.RemainingMinutes)
	assert.Empty(t, resp.NextTransitions)
	assert.Empty(t, resp.AllStatuses)
}

func TestGetTransitions_NotFound(t *testing.T) {
	svc, _ := fixture(domain.StatusSeated)

	_, err := svc.GetTransitions(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

package update_status

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
	reservationRepo "github.com/qwerty-development/rbs-restaurant-sub003/internal/infra/storage/reservation"
	"github.com/qwerty-development/rbs-restaurant-sub003/pkg/ptr"
)

type fakeReservationRepo struct {
	byID map[uuid.UUID]*domain.Reservation

	updateCalls  int
	updatedTo    domain.DiningStatus
	stampCheckIn bool

	cancelCalls  int
	cancelledTo  domain.DiningStatus
	cancelReason *string
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status domain.DiningStatus, stampCheckIn bool) error {
	f.updateCalls++
	f.updatedTo = status
	f.stampCheckIn = stampCheckIn
	return nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, _ uuid.UUID, status domain.DiningStatus, reason *string) error {
	f.cancelCalls++
	f.cancelledTo = status
	f.cancelReason = reason
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

var reservationID = uuid.MustParse("dddddddd-0000-0000-0000-000000000001")

func fixture(status domain.DiningStatus) (*UseCase, *fakeReservationRepo, *fakeHistoryRepo) {
	repo := &fakeReservationRepo{byID: map[uuid.UUID]*domain.Reservation{
		reservationID: {
			ID:              reservationID,
			RestaurantID:    uuid.New(),
			PartySize:       2,
			TurnTimeMinutes: 120,
			Status:          status,
		},
	}}
	history := &fakeHistoryRepo{}
	return NewUseCase(repo, history, fakeTxManager{}, nopLogger{}), repo, history
}

func TestExecute_HappyPathStep(t *testing.T) {
	uc, repo, history := fixture(domain.StatusSeated)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: reservationID,
		NewStatus:     domain.StatusOrdered,
		ActorID:       7,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusSeated, resp.PreviousStatus)
	assert.Equal(t, domain.StatusOrdered, resp.NewStatus)
	assert.False(t, resp.NoChange)
	assert.Equal(t, 45, resp.Progress)

	assert.Equal(t, 1, repo.updateCalls)
	assert.Equal(t, domain.StatusOrdered, repo.updatedTo)
	assert.False(t, repo.stampCheckIn)
	assert.Zero(t, repo.cancelCalls)

	require.Len(t, history.entries, 1)
	entry := history.entries[0]
	require.NotNil(t, entry.PreviousStatus)
	assert.Equal(t, domain.StatusSeated, *entry.PreviousStatus)
	assert.Equal(t, domain.StatusOrdered, entry.NewStatus)
	assert.Equal(t, int64(7), entry.ActorID)
}

func TestExecute_IdempotentSameStatus(t *testing.T) {
	uc, repo, history := fixture(domain.StatusConfirmed)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: reservationID,
		NewStatus:     domain.StatusConfirmed,
		ActorID:       7,
	})

	require.NoError(t, err)
	assert.True(t, resp.NoChange)
	assert.Equal(t, domain.StatusConfirmed, resp.NewStatus)

	// Ни записи статуса, ни строки в журнале
	assert.Zero(t, repo.updateCalls)
	assert.Zero(t, repo.cancelCalls)
	assert.Empty(t, history.entries)
}

func TestExecute_InvalidTransitionLeavesStateUntouched(t *testing.T) {
	uc, repo, history := fixture(domain.StatusMainCourse)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: reservationID,
		NewStatus:     domain.StatusSeated,
		ActorID:       7,
	})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Zero(t, repo.updateCalls)
	assert.Zero(t, repo.cancelCalls)
	assert.Empty(t, history.entries)
}

func TestExecute_ArrivedStampsCheckIn(t *testing.T) {
	uc, repo, _ := fixture(domain.StatusConfirmed)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: reservationID,
		NewStatus:     domain.StatusArrived,
		ActorID:       7,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.updateCalls)
	assert.True(t, repo.stampCheckIn)
}

func TestExecute_CancellationGoesThroughCancel(t *testing.T) {
	uc, repo, history := fixture(domain.StatusOrdered)

	reason := ptr.Ptr("гость попросил отменить")
	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: reservationID,
		NewStatus:     domain.StatusCancelledByUser,
		ActorID:       7,
		Reason:        reason,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByUser, resp.NewStatus)
	assert.Equal(t, 0, resp.Progress)

	assert.Zero(t, repo.updateCalls)
	assert.Equal(t, 1, repo.cancelCalls)
	assert.Equal(t, domain.StatusCancelledByUser, repo.cancelledTo)
	require.NotNil(t, repo.cancelReason)
	assert.Equal(t, *reason, *repo.cancelReason)

	require.Len(t, history.entries, 1)
	assert.Equal(t, reason, history.entries[0].Reason)
}

func TestExecute_CancellationRequiresReason(t *testing.T) {
	uc, _, _ := fixture(domain.StatusOrdered)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: reservationID,
		NewStatus:     domain.StatusCancelledByRestaurant,
		ActorID:       7,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_NoShowOnlyBeforeArrival(t *testing.T) {
	uc, _, _ := fixture(domain.StatusSeated)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: reservationID,
		NewStatus:     domain.StatusNoShow,
		ActorID:       7,
		Reason:        ptr.Ptr("гость не пришёл"),
	})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExecute_UnknownReservation(t *testing.T) {
	uc, _, _ := fixture(domain.StatusPending)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: uuid.New(),
		NewStatus:     domain.StatusConfirmed,
		ActorID:       7,
	})

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_UnknownStatusRejected(t *testing.T) {
	uc, _, _ := fixture(domain.StatusPending)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: reservationID,
		NewStatus:     domain.DiningStatus("brunch"),
		ActorID:       7,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

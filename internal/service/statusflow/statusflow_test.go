package statusflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
)

func TestProgress_StrictlyIncreasesAlongHappyPath(t *testing.T) {
	prev := -1
	for _, status := range domain.HappyPath {
		p := Progress(status)
		assert.Greater(t, p, prev, "progress must strictly increase at %s", status)
		prev = p
	}

	assert.Equal(t, 0, Progress(domain.StatusPending))
	assert.Equal(t, 100, Progress(domain.StatusCompleted))
}

func TestProgress_TerminalBranchesReportZero(t *testing.T) {
	for _, status := range []domain.DiningStatus{
		domain.StatusDeclinedByRestaurant,
		domain.StatusCancelledByUser,
		domain.StatusCancelledByRestaurant,
		domain.StatusNoShow,
	} {
		assert.Equal(t, 0, Progress(status), "terminal branch %s", status)
	}
}

func TestValidTransitions_HappyPathStep(t *testing.T) {
	options := ValidTransitions(domain.StatusSeated)

	targets := make([]domain.DiningStatus, 0, len(options))
	for _, opt := range options {
		targets = append(targets, opt.To)
	}

	// Следующий шаг + отмены; отклонение и no-show уже недоступны
	assert.Equal(t, []domain.DiningStatus{
		domain.StatusOrdered,
		domain.StatusCancelledByUser,
		domain.StatusCancelledByRestaurant,
	}, targets)
}

func TestValidTransitions_PendingIncludesAllBranches(t *testing.T) {
	options := ValidTransitions(domain.StatusPending)

	targets := make([]domain.DiningStatus, 0, len(options))
	for _, opt := range options {
		targets = append(targets, opt.To)
	}

	assert.Equal(t, []domain.DiningStatus{
		domain.StatusConfirmed,
		domain.StatusDeclinedByRestaurant,
		domain.StatusNoShow,
		domain.StatusCancelledByUser,
		domain.StatusCancelledByRestaurant,
	}, targets)
}

func TestValidTransitions_TerminalHasNone(t *testing.T) {
	for _, status := range domain.TerminalStatuses {
		assert.Empty(t, ValidTransitions(status), "terminal %s must have no transitions", status)
	}
}

func TestValidTransitions_PaymentLosesNoShow(t *testing.T) {
	// После прихода гостя no-show недоступен
	for _, opt := range ValidTransitions(domain.StatusPayment) {
		assert.NotEqual(t, domain.StatusNoShow, opt.To)
		assert.NotEqual(t, domain.StatusDeclinedByRestaurant, opt.To)
	}
}

func TestAllAvailableStatuses_ForwardOnly(t *testing.T) {
	options := AllAvailableStatuses(domain.StatusOrdered)

	for _, opt := range options {
		// Откаты назад по happy path запрещены
		assert.NotEqual(t, domain.StatusSeated, opt.To)
		assert.NotEqual(t, domain.StatusArrived, opt.To)
		assert.NotEqual(t, domain.StatusPending, opt.To)
		assert.NotEqual(t, domain.StatusOrdered, opt.To)
	}

	// Все статусы впереди по happy path доступны
	targets := make(map[domain.DiningStatus]bool, len(options))
	for _, opt := range options {
		targets[opt.To] = true
	}
	for _, status := range []domain.DiningStatus{
		domain.StatusAppetizers,
		domain.StatusMainCourse,
		domain.StatusDessert,
		domain.StatusPayment,
		domain.StatusCompleted,
	} {
		assert.True(t, targets[status], "%s must be reachable from ordered", status)
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.DiningStatus
		to      domain.DiningStatus
		allowed bool
	}{
		{"next step", domain.StatusConfirmed, domain.StatusArrived, true},
		{"skip ahead", domain.StatusConfirmed, domain.StatusDessert, true},
		{"backwards", domain.StatusMainCourse, domain.StatusSeated, false},
		{"decline from pending", domain.StatusPending, domain.StatusDeclinedByRestaurant, true},
		{"decline after confirm", domain.StatusConfirmed, domain.StatusDeclinedByRestaurant, false},
		{"no-show from confirmed", domain.StatusConfirmed, domain.StatusNoShow, true},
		{"no-show after arrival", domain.StatusArrived, domain.StatusNoShow, false},
		{"cancel mid-meal", domain.StatusMainCourse, domain.StatusCancelledByRestaurant, true},
		{"out of terminal", domain.StatusCompleted, domain.StatusPending, false},
		{"out of cancelled", domain.StatusCancelledByUser, domain.StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestRequiresConfirmation(t *testing.T) {
	assert.True(t, RequiresConfirmation(domain.StatusNoShow))
	assert.True(t, RequiresConfirmation(domain.StatusCancelledByUser))
	assert.True(t, RequiresConfirmation(domain.StatusCancelledByRestaurant))

	assert.False(t, RequiresConfirmation(domain.StatusDeclinedByRestaurant))
	assert.False(t, RequiresConfirmation(domain.StatusCompleted))
	assert.False(t, RequiresConfirmation(domain.StatusSeated))
}

func TestNextStep(t *testing.T) {
	next, ok := NextStep(domain.StatusDessert)
	require.True(t, ok)
	assert.Equal(t, domain.StatusPayment, next)

	_, ok = NextStep(domain.StatusCompleted)
	assert.False(t, ok)

	_, ok = NextStep(domain.StatusNoShow)
	assert.False(t, ok)
}

func TestEstimateRemainingMinutes(t *testing.T) {
	tests := []struct {
		name     string
		status   domain.DiningStatus
		turnTime int
		want     int
	}{
		{"not started", domain.StatusPending, 120, 120},
		{"seated", domain.StatusSeated, 120, 84},
		{"main course", domain.StatusMainCourse, 120, 36},
		{"payment", domain.StatusPayment, 90, 9},
		{"completed", domain.StatusCompleted, 120, 0},
		{"zero turn time", domain.StatusSeated, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateRemainingMinutes(tt.status, tt.turnTime))
		})
	}
}

func TestLabel_CoversEveryStatus(t *testing.T) {
	all := append([]domain.DiningStatus{}, domain.HappyPath...)
	all = append(all, domain.TerminalStatuses...)

	for _, status := range all {
		assert.NotEmpty(t, Label(status), "label missing for %s", status)
	}
}

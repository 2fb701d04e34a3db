package update_status

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID == uuid.Nil {
		return fmt.Errorf("%w: reservationID is required", ErrInvalidInput)
	}

	if !req.NewStatus.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.NewStatus)
	}

	if req.NewStatus.IsCancellation() && (req.Reason == nil || *req.Reason == "") {
		return fmt.Errorf("%w: reason is required for cancellation", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	return nil
}

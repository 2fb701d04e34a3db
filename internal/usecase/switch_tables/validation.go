package switch_tables

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

	if len(req.NewTableIDs) == 0 {
		return fmt.Errorf("%w: newTableIDs must not be empty", ErrInvalidInput)
	}

	seen := make(map[uuid.UUID]struct{}, len(req.NewTableIDs))
	for _, id := range req.NewTableIDs {
		if id == uuid.Nil {
			return fmt.Errorf("%w: newTableIDs must not contain empty ids", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: newTableIDs must not contain duplicates", ErrInvalidInput)
		}
		seen[id] = struct{}{}
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	return nil
}

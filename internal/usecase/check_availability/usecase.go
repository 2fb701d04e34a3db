package check_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
)

// UseCase use case проверки доступности столов во временном окне
// Чистое чтение: побочных эффектов нет
type UseCase struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: restaurant=%s, tables=%d, start=%s, duration=%d",
		req.RestaurantID, len(req.TableIDs), req.StartTime.Format(time.RFC3339), req.DurationMinutes)

	// Пустой список столов — нечему конфликтовать
	if len(req.TableIDs) == 0 {
		return &Response{Available: true, Conflicts: []Conflict{}}, nil
	}

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	reservations, err := uc.reservationRepo.ListOccupying(ctx, req.RestaurantID, req.TableIDs)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list occupying reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list occupying reservations: %v", ErrInternal, err)
	}

	conflicts := findConflicts(req, reservations)

	if len(conflicts) > 0 {
		uc.logger.Info("CheckAvailability: found %d conflicts for restaurant=%s", len(conflicts), req.RestaurantID)
	}

	return &Response{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

// findConflicts собирает пересечения запрошенного окна с занимающими
// бронированиями по каждому из запрошенных столов
//
// Интервалы полуоткрытые: [a0,a1) и [b0,b1) пересекаются ⇔ a0 < b1 И b0 < a1
// Граничные случаи (конец одного равен началу другого) пересечением не считаются:
// - Окно 18:00-20:00, бронирование 19:00-21:00 → ЕСТЬ пересечение (19:00-20:00)
// - Окно 18:00-20:00, бронирование 20:00-22:00 → НЕТ пересечения (граничат)
func findConflicts(req *Request, reservations []*domain.Reservation) []Conflict {
	windowEnd := req.StartTime.Add(time.Duration(req.DurationMinutes) * time.Minute)

	conflicts := make([]Conflict, 0)
	for _, tableID := range req.TableIDs {
		for _, res := range reservations {
			// Собственное бронирование игнорируется при редактировании
			if req.ExcludeReservationID != nil && res.ID == *req.ExcludeReservationID {
				continue
			}
			// Пропускаем бронирования, уже освободившие столы
			if !res.IsOccupying() {
				continue
			}
			if !res.OccupiesTable(tableID) {
				continue
			}
			if res.Overlaps(req.StartTime, windowEnd) {
				conflicts = append(conflicts, Conflict{
					ReservationID: res.ID,
					TableID:       tableID,
					GuestName:     res.GuestName,
					StartTime:     res.StartTime,
					EndTime:       res.EndTime(),
				})
			}
		}
	}

	return conflicts
}

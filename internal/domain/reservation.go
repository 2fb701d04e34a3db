package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reservation represents a guest booking in the system
type Reservation struct {
	ID              uuid.UUID
	RestaurantID    uuid.UUID
	GuestName       string // Денормализовано для отображения конфликтов без похода в сервис гостей
	PartySize       int
	StartTime       time.Time
	TurnTimeMinutes int // Ожидаемая длительность посадки
	Status          DiningStatus

	// Назначенные столы (ноль, один или несколько при объединении)
	TableIDs []uuid.UUID

	SpecialOfferID *uuid.UUID
	CheckedInAt    *time.Time // Фактическое время прихода гостя, отличается от StartTime

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime возвращает конец интервала занятости [StartTime, StartTime+TurnTime)
func (r *Reservation) EndTime() time.Time {
	return r.StartTime.Add(time.Duration(r.TurnTimeMinutes) * time.Minute)
}

// IsOccupying returns true if the reservation currently holds its tables
func (r *Reservation) IsOccupying() bool {
	return r.Status.IsOccupying()
}

// Overlaps проверяет пересечение с полуоткрытым интервалом [start, end)
// Граничные случаи (конец одного равен началу другого) пересечением не считаются
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && r.EndTime().After(start)
}

// OccupiesTable returns true if the reservation is assigned to the given table
func (r *Reservation) OccupiesTable(tableID uuid.UUID) bool {
	for _, id := range r.TableIDs {
		if id == tableID {
			return true
		}
	}
	return false
}

// ElapsedBase возвращает точку отсчёта для учёта прошедшего времени:
// фактический приход, если он зафиксирован, иначе плановое начало
func (r *Reservation) ElapsedBase() time.Time {
	if r.CheckedInAt != nil {
		return *r.CheckedInAt
	}
	return r.StartTime
}

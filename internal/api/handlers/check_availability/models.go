package check_availability

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	checkAvailability "github.com/qwerty-development/rbs-restaurant-sub003/internal/usecase/check_availability"
)

// ConflictResponse один конфликт по столу
type ConflictResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	TableID       uuid.UUID `json:"tableId"`
	GuestName     string    `json:"guestName"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
}

// CheckAvailabilityResponse HTTP ответ проверки доступности
type CheckAvailabilityResponse struct {
	Available bool               `json:"available"`
	Conflicts []ConflictResponse `json:"conflicts"`
}

// ParseQuery собирает модель use case из query-параметров:
// tableIds — CSV из UUID, startTime — RFC3339, durationMinutes — целое,
// excludeReservationId — опциональный UUID
func ParseQuery(restaurantID uuid.UUID, values url.Values) (*checkAvailability.Request, error) {
	req := &checkAvailability.Request{RestaurantID: restaurantID}

	if raw := values.Get("tableIds"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("invalid table id %q: %w", part, err)
			}
			req.TableIDs = append(req.TableIDs, id)
		}
	}

	startTime, err := time.Parse(time.RFC3339, values.Get("startTime"))
	if err != nil {
		return nil, fmt.Errorf("invalid startTime: %w", err)
	}
	req.StartTime = startTime

	duration, err := strconv.Atoi(values.Get("durationMinutes"))
	if err != nil {
		return nil, fmt.Errorf("invalid durationMinutes: %w", err)
	}
	req.DurationMinutes = duration

	if raw := values.Get("excludeReservationId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid excludeReservationId: %w", err)
		}
		req.ExcludeReservationID = &id
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	conflicts := make([]ConflictResponse, len(resp.Conflicts))
	for i, c := range resp.Conflicts {
		conflicts[i] = ConflictResponse{
			ReservationID: c.ReservationID,
			TableID:       c.TableID,
			GuestName:     c.GuestName,
			StartTime:     c.StartTime,
			EndTime:       c.EndTime,
		}
	}

	return &CheckAvailabilityResponse{
		Available: resp.Available,
		Conflicts: conflicts,
	}
}

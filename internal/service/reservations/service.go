package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	reservationRepo "github.com/qwerty-development/rbs-restaurant-sub003/internal/infra/storage/reservation"
	"github.com/qwerty-development/rbs-restaurant-sub003/internal/service/reservations/models"
	"github.com/qwerty-development/rbs-restaurant-sub003/internal/service/statusflow"
)

// Service сервис чтения бронирований: карточка, журнал, допустимые переходы
type Service struct {
	reservationRepo ReservationRepository
	historyRepo     HistoryRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	historyRepo HistoryRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		historyRepo:     historyRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// GetStatusHistory получает журнал изменений бронирования
// Записи с previous == new — пересадки и назначения столов, не смены статуса
func (s *Service) GetStatusHistory(ctx context.Context, id uuid.UUID) (*models.StatusHistoryResponse, error) {
	s.logger.Info("GetStatusHistory: fetching history for reservation id=%s", id)

	// Бронирование читается первым: журнал пустого бронирования — 404, а не []
	if _, err := s.reservationRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetStatusHistory: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetStatusHistory: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetStatusHistory - repository error: %v", ErrInternal, err)
	}

	entries, err := s.historyRepo.ListByReservation(ctx, id)
	if err != nil {
		s.logger.Error("GetStatusHistory: failed to list history for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetStatusHistory - history error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStatusHistory: fetched %d entries for reservation id=%s", len(entries), id)
	return models.FromDomainHistory(id, entries), nil
}

// GetTransitions получает допустимые переходы, прогресс посадки и оценку
// оставшегося времени для бронирования
func (s *Service) GetTransitions(ctx context.Context, id uuid.UUID) (*models.TransitionsResponse, error) {
	s.logger.Info("GetTransitions: fetching transitions for reservation id=%s", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetTransitions: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetTransitions: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetTransitions - repository error: %v", ErrInternal, err)
	}

	return &models.TransitionsResponse{
		ReservationID:    res.ID,
		CurrentStatus:    string(res.Status),
		CurrentLabel:     statusflow.Label(res.Status),
		Progress:         statusflow.Progress(res.Status),
		RemainingMinutes: statusflow.EstimateRemainingMinutes(res.Status, res.TurnTimeMinutes),
		NextTransitions:  models.FromTransitionOptions(statusflow.ValidTransitions(res.Status)),
		AllStatuses:      models.FromTransitionOptions(statusflow.AllAvailableStatuses(res.Status)),
	}, nil
}

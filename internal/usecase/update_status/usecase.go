package update_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
	reservationRepo "github.com/qwerty-development/rbs-restaurant-sub003/internal/infra/storage/reservation"
	"github.com/qwerty-development/rbs-restaurant-sub003/internal/service/statusflow"
)

// UseCase use case смены статуса посадки
type UseCase struct {
	reservationRepo ReservationRepository
	historyRepo     HistoryRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	historyRepo HistoryRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		historyRepo:     historyRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет переход статуса
// Переход в текущий статус идемпотентен: без записи и без строки в журнале
// Смена статуса и запись в журнал — одна сериализуемая транзакция: бронирование
// читается под блокировкой, допустимость перехода проверяется по актуальному статусу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateStatus: reservation=%s, target=%s, actor=%d",
		req.ReservationID, req.NewStatus, req.ActorID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateStatus: validation failed: %v", err)
		return nil, err
	}

	var result *Response
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateStatus: reservation id=%s not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateStatus: failed to get reservation id=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		if res.Status == req.NewStatus {
			uc.logger.Info("UpdateStatus: reservation id=%s already in status %s, no-op",
				res.ID, res.Status)
			result = &Response{
				ReservationID:  res.ID,
				PreviousStatus: res.Status,
				NewStatus:      res.Status,
				NoChange:       true,
				Progress:       statusflow.Progress(res.Status),
			}
			return nil
		}

		if !statusflow.CanTransition(res.Status, req.NewStatus) {
			uc.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for reservation id=%s",
				res.Status, req.NewStatus, res.ID)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, res.Status, req.NewStatus)
		}

		if err := uc.applyStatus(txCtx, res, req); err != nil {
			return err
		}

		prev := res.Status
		if _, err := uc.historyRepo.Append(txCtx, &domain.StatusHistoryEntry{
			ReservationID:  res.ID,
			PreviousStatus: &prev,
			NewStatus:      req.NewStatus,
			ActorID:        req.ActorID,
			Reason:         req.Reason,
		}); err != nil {
			uc.logger.Error("UpdateStatus: failed to append history for reservation id=%s: %v", res.ID, err)
			return fmt.Errorf("%w: failed to append history: %v", ErrInternal, err)
		}

		result = &Response{
			ReservationID:  res.ID,
			PreviousStatus: res.Status,
			NewStatus:      req.NewStatus,
			Progress:       statusflow.Progress(req.NewStatus),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	if !result.NoChange {
		uc.logger.Info("UpdateStatus: reservation id=%s moved %s -> %s",
			result.ReservationID, result.PreviousStatus, result.NewStatus)
	}

	return result, nil
}

// applyStatus пишет новый статус нужным способом:
// отмены идут через Cancel (причина и метка времени), остальные переходы —
// через UpdateStatus; вход в arrived проставляет фактическое время прихода
func (uc *UseCase) applyStatus(ctx context.Context, res *domain.Reservation, req *Request) error {
	var err error
	if req.NewStatus.IsCancellation() {
		err = uc.reservationRepo.Cancel(ctx, res.ID, req.NewStatus, req.Reason)
	} else {
		stampCheckIn := req.NewStatus == domain.StatusArrived
		err = uc.reservationRepo.UpdateStatus(ctx, res.ID, req.NewStatus, stampCheckIn)
	}

	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		uc.logger.Error("UpdateStatus: failed to write status %s for reservation id=%s: %v",
			req.NewStatus, res.ID, err)
		return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	return nil
}

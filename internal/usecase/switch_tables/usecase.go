package switch_tables

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
	reservationRepo "github.com/qwerty-development/rbs-restaurant-sub003/internal/infra/storage/reservation"
	"github.com/qwerty-development/rbs-restaurant-sub003/internal/service/capacity"
)

// UseCase use case пересадки бронирования за другой набор столов
type UseCase struct {
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	historyRepo     HistoryRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tableRepo TableRepository,
	reservationRepo ReservationRepository,
	historyRepo HistoryRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		historyRepo:     historyRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет пересадку
// Всё или ничего: проверка конфликтов по каждому целевому столу и замена
// привязок идут в одной сериализуемой транзакции; при занятом столе
// бронирование остаётся на прежних местах
// Недостаток вместимости пересадку не блокирует — персонал получает
// предупреждение в ответе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SwitchTables: reservation=%s, targets=%d, actor=%d",
		req.ReservationID, len(req.NewTableIDs), req.ActorID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SwitchTables: validation failed: %v", err)
		return nil, err
	}

	var result *Response
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("SwitchTables: reservation id=%s not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("SwitchTables: failed to get reservation id=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		tables, err := uc.loadTargetTables(txCtx, res.RestaurantID, req.NewTableIDs)
		if err != nil {
			return err
		}

		if err := uc.checkConflicts(txCtx, res, req.NewTableIDs); err != nil {
			return err
		}

		if err := uc.reservationRepo.ReplaceTables(txCtx, res.ID, req.NewTableIDs); err != nil {
			uc.logger.Error("SwitchTables: failed to replace tables for reservation id=%s: %v", res.ID, err)
			return fmt.Errorf("%w: failed to replace tables: %v", ErrInternal, err)
		}

		if err := uc.appendAuditEntry(txCtx, res, req); err != nil {
			return err
		}

		result = &Response{
			ReservationID:    res.ID,
			PreviousTableIDs: res.TableIDs,
			NewTableIDs:      req.NewTableIDs,
		}
		if check := capacity.Validate(tables, res.PartySize); !check.Valid {
			result.CapacityWarning = &check.Message
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SwitchTables: reservation id=%s moved to %d tables (warning=%t)",
		result.ReservationID, len(result.NewTableIDs), result.CapacityWarning != nil)

	return result, nil
}

// loadTargetTables загружает целевые столы и проверяет, что все существуют,
// активны и принадлежат ресторану бронирования
func (uc *UseCase) loadTargetTables(ctx context.Context, restaurantID uuid.UUID, ids []uuid.UUID) ([]*domain.Table, error) {
	tables, err := uc.tableRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("SwitchTables: failed to get tables: %v", err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}

	found := make(map[uuid.UUID]*domain.Table, len(tables))
	for _, t := range tables {
		found[t.ID] = t
	}

	for _, id := range ids {
		t, ok := found[id]
		if !ok || !t.IsActive || t.RestaurantID != restaurantID {
			uc.logger.Warn("SwitchTables: table id=%s is missing, inactive or belongs to another restaurant", id)
			return nil, fmt.Errorf("%w: table %s", ErrTableNotFound, id)
		}
	}

	return tables, nil
}

// checkConflicts проверяет занятость каждого целевого стола в окне бронирования
// Собственные привязки бронирования исключаются из проверки
func (uc *UseCase) checkConflicts(ctx context.Context, res *domain.Reservation, targetIDs []uuid.UUID) error {
	occupying, err := uc.reservationRepo.ListOccupying(ctx, res.RestaurantID, targetIDs)
	if err != nil {
		uc.logger.Error("SwitchTables: failed to list occupying reservations: %v", err)
		return fmt.Errorf("%w: failed to list occupying reservations: %v", ErrInternal, err)
	}

	start, end := res.StartTime, res.EndTime()
	for _, other := range occupying {
		if other.ID == res.ID {
			continue
		}
		if !other.IsOccupying() || !other.Overlaps(start, end) {
			continue
		}
		for _, tableID := range targetIDs {
			if other.OccupiesTable(tableID) {
				uc.logger.Warn("SwitchTables: table id=%s is occupied by reservation id=%s", tableID, other.ID)
				return fmt.Errorf("%w: table %s is held by reservation %s", ErrTableConflict, tableID, other.ID)
			}
		}
	}

	return nil
}

// appendAuditEntry пишет в журнал запись о пересадке
// Статус не меняется, поэтому previous == new — признак записи о столах
func (uc *UseCase) appendAuditEntry(ctx context.Context, res *domain.Reservation, req *Request) error {
	reason := switchReason(res.TableIDs, req.NewTableIDs, req.Reason)
	prev := res.Status
	if _, err := uc.historyRepo.Append(ctx, &domain.StatusHistoryEntry{
		ReservationID:  res.ID,
		PreviousStatus: &prev,
		NewStatus:      res.Status,
		ActorID:        req.ActorID,
		Reason:         &reason,
	}); err != nil {
		uc.logger.Error("SwitchTables: failed to append history for reservation id=%s: %v", res.ID, err)
		return fmt.Errorf("%w: failed to append history: %v", ErrInternal, err)
	}

	return nil
}

func switchReason(previous, next []uuid.UUID, extra *string) string {
	reason := fmt.Sprintf("пересадка: %s -> %s", joinIDs(previous), joinIDs(next))
	if extra != nil && *extra != "" {
		reason = reason + "; " + *extra
	}
	return reason
}

func joinIDs(ids []uuid.UUID) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ", ")
}

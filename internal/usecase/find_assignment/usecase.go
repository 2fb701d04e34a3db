package find_assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
	reservationRepo "github.com/qwerty-development/rbs-restaurant-sub003/internal/infra/storage/reservation"
)

// UseCase use case подбора оптимального набора столов
// Политика выбора: лучший одиночный стол предпочтительнее комбинации;
// комбинации рассматриваются, только если ни один одиночный стол не подошёл
// по вместимости и доступности
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

// Execute выполняет подбор столов
// Без ReservationID — чистое чтение; с ним выигравший набор фиксируется в
// сериализуемой транзакции: занятость перечитывается под блокировкой, чтобы
// проверка конфликтов и запись назначения были одним атомарным действием
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindAssignment: restaurant=%s, start=%s, duration=%d, party=%d",
		req.RestaurantID, req.StartTime.Format(time.RFC3339), req.DurationMinutes, req.PartySize)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindAssignment: validation failed: %v", err)
		return nil, err
	}

	if req.ReservationID == nil {
		return uc.solve(ctx, req)
	}

	var result *Response
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Бронирование блокируется первым, чтобы параллельные назначения
		// на него сериализовались
		if _, err := uc.reservationRepo.GetByID(txCtx, *req.ReservationID); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("FindAssignment: reservation id=%s not found", *req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("FindAssignment: failed to get reservation id=%s: %v", *req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		solved, err := uc.solve(txCtx, req)
		if err != nil {
			return err
		}

		if err := uc.reservationRepo.ReplaceTables(txCtx, *req.ReservationID, solved.TableIDs); err != nil {
			uc.logger.Error("FindAssignment: failed to commit assignment for reservation id=%s: %v",
				*req.ReservationID, err)
			return fmt.Errorf("%w: failed to commit assignment: %v", ErrInternal, err)
		}

		if err := uc.appendAuditEntry(txCtx, req, solved); err != nil {
			return err
		}

		solved.Committed = true
		result = solved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("FindAssignment: committed assignment for reservation id=%s (%d tables, combination=%t)",
		*req.ReservationID, len(result.TableIDs), result.RequiresCombination)

	return result, nil
}

// solve подбирает первый свободный кандидат в детерминированном порядке
func (uc *UseCase) solve(ctx context.Context, req *Request) (*Response, error) {
	tables, err := uc.tableRepo.ListActive(ctx, req.RestaurantID)
	if err != nil {
		uc.logger.Error("FindAssignment: failed to list tables: %v", err)
		return nil, fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
	}

	combos, err := uc.tableRepo.ListActiveCombinations(ctx, req.RestaurantID)
	if err != nil {
		uc.logger.Error("FindAssignment: failed to list combinations: %v", err)
		return nil, fmt.Errorf("%w: failed to list combinations: %v", ErrInternal, err)
	}

	singles, combinations := buildCandidates(tables, combos, req.PartySize)
	if len(singles) == 0 && len(combinations) == 0 {
		uc.logger.Info("FindAssignment: no candidate fits party of %d in restaurant=%s",
			req.PartySize, req.RestaurantID)
		return nil, ErrNoCandidate
	}

	// Занятость всех столов читается одним запросом; внутри транзакции
	// строки блокируются (FOR UPDATE)
	reservations, err := uc.reservationRepo.ListOccupying(ctx, req.RestaurantID, allTableIDs(tables))
	if err != nil {
		uc.logger.Error("FindAssignment: failed to list occupying reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list occupying reservations: %v", ErrInternal, err)
	}

	for _, cand := range singles {
		if isFree(cand, req.StartTime, req.DurationMinutes, reservations, req.ReservationID) {
			uc.logger.Info("FindAssignment: selected single table %s (capacity=%d) for party of %d",
				cand.tableIDs[0], cand.capacity, req.PartySize)
			return &Response{TableIDs: cand.tableIDs, RequiresCombination: false}, nil
		}
	}

	for _, cand := range combinations {
		if isFree(cand, req.StartTime, req.DurationMinutes, reservations, req.ReservationID) {
			uc.logger.Info("FindAssignment: selected combination of %d tables (capacity=%d) for party of %d",
				len(cand.tableIDs), cand.capacity, req.PartySize)
			return &Response{TableIDs: cand.tableIDs, RequiresCombination: true}, nil
		}
	}

	uc.logger.Info("FindAssignment: all fitting candidates are occupied for restaurant=%s", req.RestaurantID)
	return nil, ErrNoCandidate
}

// appendAuditEntry пишет в журнал запись о назначении столов
// Статус не меняется, поэтому previous == new — признак записи о столах
func (uc *UseCase) appendAuditEntry(ctx context.Context, req *Request, solved *Response) error {
	res, err := uc.reservationRepo.GetByID(ctx, *req.ReservationID)
	if err != nil {
		uc.logger.Error("FindAssignment: failed to re-read reservation id=%s: %v", *req.ReservationID, err)
		return fmt.Errorf("%w: failed to re-read reservation: %v", ErrInternal, err)
	}

	reason := fmt.Sprintf("автоподбор столов: назначено %d", len(solved.TableIDs))
	prev := res.Status
	if _, err := uc.historyRepo.Append(ctx, &domain.StatusHistoryEntry{
		ReservationID:  res.ID,
		PreviousStatus: &prev,
		NewStatus:      res.Status,
		ActorID:        req.ActorID,
		Reason:         &reason,
	}); err != nil {
		uc.logger.Error("FindAssignment: failed to append history for reservation id=%s: %v", res.ID, err)
		return fmt.Errorf("%w: failed to append history: %v", ErrInternal, err)
	}

	return nil
}

package validate_capacity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
	"github.com/qwerty-development/rbs-restaurant-sub003/internal/service/capacity"
)

// UseCase use case проверки вместимости набора столов
// Проверка информационная: никакие данные не изменяются
type UseCase struct {
	tableRepo TableRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(tableRepo TableRepository, logger Logger) *UseCase {
	return &UseCase{
		tableRepo: tableRepo,
		logger:    logger,
	}
}

// Execute выполняет проверку вместимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateCapacity: restaurant=%s, tables=%d, party=%d",
		req.RestaurantID, len(req.TableIDs), req.PartySize)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidateCapacity: validation failed: %v", err)
		return nil, err
	}

	tables, err := uc.tableRepo.GetByIDs(ctx, req.TableIDs)
	if err != nil {
		uc.logger.Error("ValidateCapacity: failed to get tables: %v", err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}

	found := make(map[uuid.UUID]struct{}, len(tables))
	for _, t := range tables {
		if !t.IsActive || t.RestaurantID != req.RestaurantID {
			uc.logger.Warn("ValidateCapacity: table id=%s is inactive or belongs to another restaurant", t.ID)
			return nil, fmt.Errorf("%w: table %s", ErrTableNotFound, t.ID)
		}
		found[t.ID] = struct{}{}
	}
	for _, id := range req.TableIDs {
		if _, ok := found[id]; !ok {
			uc.logger.Warn("ValidateCapacity: table id=%s not found", id)
			return nil, fmt.Errorf("%w: table %s", ErrTableNotFound, id)
		}
	}

	check := capacity.Validate(tables, req.PartySize)

	uc.logger.Info("ValidateCapacity: restaurant=%s, total=%d, party=%d, valid=%t",
		req.RestaurantID, check.TotalCapacity, req.PartySize, check.Valid)

	return &Response{
		Valid:         check.Valid,
		TotalCapacity: check.TotalCapacity,
		Shortfall:     check.Shortfall,
		Message:       check.Message,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RestaurantID == uuid.Nil {
		return fmt.Errorf("%w: restaurantID is required", ErrInvalidInput)
	}

	if len(req.TableIDs) == 0 {
		return fmt.Errorf("%w: tableIDs must not be empty", ErrInvalidInput)
	}

	seen := make(map[uuid.UUID]struct{}, len(req.TableIDs))
	for _, id := range req.TableIDs {
		if id == uuid.Nil {
			return fmt.Errorf("%w: tableIDs must not contain empty ids", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: tableIDs must not contain duplicates", ErrInvalidInput)
		}
		seen[id] = struct{}{}
	}

	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	return nil
}

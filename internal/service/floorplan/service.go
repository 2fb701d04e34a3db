package floorplan

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
	tableRepo "github.com/qwerty-development/rbs-restaurant-sub003/internal/infra/storage/table"
	"github.com/qwerty-development/rbs-restaurant-sub003/internal/service/floorplan/models"
)

// Service сервис плана зала: столы и комбинации
type Service struct {
	tableRepo TableRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса плана зала
func NewService(tableRepo TableRepository, logger Logger) *Service {
	return &Service{
		tableRepo: tableRepo,
		logger:    logger,
	}
}

// GetFloorPlan получает план зала: активные столы с отметками совместимости
// и активные комбинации
func (s *Service) GetFloorPlan(ctx context.Context, restaurantID uuid.UUID) (*models.FloorPlanResponse, error) {
	s.logger.Info("GetFloorPlan: fetching floor plan for restaurant=%s", restaurantID)

	tables, err := s.tableRepo.ListActive(ctx, restaurantID)
	if err != nil {
		s.logger.Error("GetFloorPlan: failed to list tables for restaurant=%s: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: GetFloorPlan - repository error: %v", ErrInternal, err)
	}

	combos, err := s.tableRepo.ListActiveCombinations(ctx, restaurantID)
	if err != nil {
		s.logger.Error("GetFloorPlan: failed to list combinations for restaurant=%s: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: GetFloorPlan - repository error: %v", ErrInternal, err)
	}

	// Совместимость симметрична: комбинация отмечается у обоих столов пары
	combinable := make(map[uuid.UUID][]uuid.UUID)
	for _, c := range combos {
		combinable[c.PrimaryTableID] = append(combinable[c.PrimaryTableID], c.SecondaryTableID)
		combinable[c.SecondaryTableID] = append(combinable[c.SecondaryTableID], c.PrimaryTableID)
	}

	resp := &models.FloorPlanResponse{
		RestaurantID: restaurantID,
		Tables:       make([]models.TableResponse, 0, len(tables)),
		Combinations: make([]models.CombinationResponse, 0, len(combos)),
	}
	for _, t := range tables {
		resp.Tables = append(resp.Tables, models.FromDomainTable(t, combinable[t.ID]))
	}
	for _, c := range combos {
		resp.Combinations = append(resp.Combinations, models.FromDomainCombination(c))
	}

	s.logger.Info("GetFloorPlan: restaurant=%s has %d tables, %d combinations",
		restaurantID, len(resp.Tables), len(resp.Combinations))

	return resp, nil
}

// CreateCombination создает комбинацию пары столов
// Оба стола должны существовать, быть активными и принадлежать ресторану;
// для пары не должно быть активной комбинации ни в одной ориентации
func (s *Service) CreateCombination(ctx context.Context, req *models.CreateCombinationRequest) (*models.CombinationResponse, error) {
	s.logger.Info("CreateCombination: restaurant=%s, pair=%s+%s",
		req.RestaurantID, req.PrimaryTableID, req.SecondaryTableID)

	if err := validateCreateCombination(req); err != nil {
		s.logger.Warn("CreateCombination: validation failed: %v", err)
		return nil, err
	}

	primary, secondary, err := s.loadPair(ctx, req)
	if err != nil {
		return nil, err
	}

	_, err = s.tableRepo.GetCombinationByPair(ctx, req.RestaurantID, req.PrimaryTableID, req.SecondaryTableID)
	if err == nil {
		s.logger.Warn("CreateCombination: combination for pair %s+%s already exists",
			req.PrimaryTableID, req.SecondaryTableID)
		return nil, ErrCombinationExists
	}
	if !errors.Is(err, tableRepo.ErrCombinationNotFound) {
		s.logger.Error("CreateCombination: failed to check existing combination: %v", err)
		return nil, fmt.Errorf("%w: CreateCombination - repository error: %v", ErrInternal, err)
	}

	capacity := primary.EffectiveMaxCapacity() + secondary.EffectiveMaxCapacity()
	if req.CombinedCapacity != nil {
		capacity = *req.CombinedCapacity
	}

	combo, err := s.tableRepo.CreateCombination(ctx, &domain.TableCombination{
		RestaurantID:     req.RestaurantID,
		PrimaryTableID:   req.PrimaryTableID,
		SecondaryTableID: req.SecondaryTableID,
		CombinedCapacity: capacity,
	})
	if err != nil {
		s.logger.Error("CreateCombination: failed to create combination: %v", err)
		return nil, fmt.Errorf("%w: CreateCombination - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCombination: created combination id=%s (capacity=%d)", combo.ID, combo.CombinedCapacity)

	resp := models.FromDomainCombination(combo)
	return &resp, nil
}

// RetireCombination мягко выводит комбинацию из эксплуатации
func (s *Service) RetireCombination(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("RetireCombination: retiring combination id=%s", id)

	if err := s.tableRepo.RetireCombination(ctx, id); err != nil {
		if errors.Is(err, tableRepo.ErrCombinationNotFound) {
			s.logger.Warn("RetireCombination: combination id=%s not found", id)
			return ErrCombinationNotFound
		}
		s.logger.Error("RetireCombination: failed to retire combination id=%s: %v", id, err)
		return fmt.Errorf("%w: RetireCombination - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RetireCombination: combination id=%s retired", id)
	return nil
}

// loadPair загружает и проверяет оба стола пары
func (s *Service) loadPair(ctx context.Context, req *models.CreateCombinationRequest) (*domain.Table, *domain.Table, error) {
	tables, err := s.tableRepo.GetByIDs(ctx, []uuid.UUID{req.PrimaryTableID, req.SecondaryTableID})
	if err != nil {
		s.logger.Error("CreateCombination: failed to get tables: %v", err)
		return nil, nil, fmt.Errorf("%w: CreateCombination - repository error: %v", ErrInternal, err)
	}

	byID := make(map[uuid.UUID]*domain.Table, len(tables))
	for _, t := range tables {
		byID[t.ID] = t
	}

	var pair [2]*domain.Table
	for i, id := range []uuid.UUID{req.PrimaryTableID, req.SecondaryTableID} {
		t, ok := byID[id]
		if !ok || !t.IsActive || t.RestaurantID != req.RestaurantID {
			s.logger.Warn("CreateCombination: table id=%s is missing, inactive or belongs to another restaurant", id)
			return nil, nil, fmt.Errorf("%w: table %s", ErrTableNotFound, id)
		}
		pair[i] = t
	}

	return pair[0], pair[1], nil
}

// validateCreateCombination валидирует запрос на создание комбинации
func validateCreateCombination(req *models.CreateCombinationRequest) error {
	if req.RestaurantID == uuid.Nil {
		return fmt.Errorf("%w: restaurantID is required", ErrInvalidInput)
	}
	if req.PrimaryTableID == uuid.Nil || req.SecondaryTableID == uuid.Nil {
		return fmt.Errorf("%w: both table ids are required", ErrInvalidInput)
	}
	if req.PrimaryTableID == req.SecondaryTableID {
		return fmt.Errorf("%w: combination requires two distinct tables", ErrInvalidInput)
	}
	if req.CombinedCapacity != nil && *req.CombinedCapacity <= 0 {
		return fmt.Errorf("%w: combinedCapacity must be positive", ErrInvalidInput)
	}
	return nil
}

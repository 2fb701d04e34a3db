package create_combination

import (
	"context"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/service/floorplan/models"
)

type FloorPlanService interface {
	CreateCombination(ctx context.Context, req *models.CreateCombinationRequest) (*models.CombinationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

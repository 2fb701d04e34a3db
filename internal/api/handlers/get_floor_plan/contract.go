package get_floor_plan

import (
	"context"

	"github.com/google/uuid"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/service/floorplan/models"
)

type FloorPlanService interface {
	GetFloorPlan(ctx context.Context, restaurantID uuid.UUID) (*models.FloorPlanResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

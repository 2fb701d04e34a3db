package validate_capacity

import (
	"context"

	validateCapacity "github.com/qwerty-development/rbs-restaurant-sub003/internal/usecase/validate_capacity"
)

type ValidateCapacityUseCase interface {
	Execute(ctx context.Context, req *validateCapacity.Request) (*validateCapacity.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package find_assignment

import (
	"context"

	findAssignment "github.com/qwerty-development/rbs-restaurant-sub003/internal/usecase/find_assignment"
)

type FindAssignmentUseCase interface {
	Execute(ctx context.Context, req *findAssignment.Request) (*findAssignment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

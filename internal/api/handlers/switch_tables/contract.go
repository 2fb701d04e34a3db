package switch_tables

import (
	"context"

	switchTables "github.com/qwerty-development/rbs-restaurant-sub003/internal/usecase/switch_tables"
)

type SwitchTablesUseCase interface {
	Execute(ctx context.Context, req *switchTables.Request) (*switchTables.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

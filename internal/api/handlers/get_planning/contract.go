package get_planning

import (
	"context"

	getPlanning "github.com/m04kA/SMC-StayPlanner/internal/usecase/get_planning"
)

type GetPlanningUseCase interface {
	Execute(ctx context.Context, req *getPlanning.Request) (*getPlanning.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

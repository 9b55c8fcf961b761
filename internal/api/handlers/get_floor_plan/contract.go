package get_floor_plan

import (
	"context"

	getFloorPlan "github.com/m04kA/SMC-TableBookingService/internal/usecase/get_floor_plan"
)

type GetFloorPlanUseCase interface {
	Execute(ctx context.Context, req *getFloorPlan.Request) (*getFloorPlan.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package update_tour

import (
	"context"

	updateTour "github.com/m04kA/WebMTour-Service/internal/usecase/update_tour"
)

type UpdateTourUseCase interface {
	Execute(ctx context.Context, req *updateTour.Request) (*updateTour.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

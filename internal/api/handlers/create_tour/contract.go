package create_tour

import (
	"context"

	createTour "github.com/m04kA/WebMTour-Service/internal/usecase/create_tour"
)

type CreateTourUseCase interface {
	Execute(ctx context.Context, req *createTour.Request) (*createTour.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

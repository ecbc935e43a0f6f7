package create_tour

import (
	"github.com/m04kA/WebMTour-Service/internal/domain"
	"github.com/m04kA/WebMTour-Service/internal/usecase/tourdraft"
)

// Request форма нового тура
type Request struct {
	Admin *domain.Admin
	Draft tourdraft.Draft
}

// Response созданный тур
// DatesSaved = false, если тур создан, но рейсы сохранить не удалось
type Response struct {
	Tour       *domain.Tour
	DatesSaved bool
}

package update_tour

import (
	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
	"github.com/m04kA/WebMTour-Service/internal/usecase/tourdraft"
)

// Options режимы работы use case
type Options struct {
	// AtomicDateReplace обновление тура, удаление и вставка рейсов выполняются в одной транзакции
	// По умолчанию шаги независимы: сбой между удалением и вставкой оставляет тур без рейсов
	AtomicDateReplace bool
}

// Request форма редактирования тура
type Request struct {
	Admin  *domain.Admin
	TourID uuid.UUID
	Draft  tourdraft.Draft
}

// Response обновленный тур с актуальными рейсами
type Response struct {
	Tour *domain.Tour
}

package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
)

const (
	PriceModeTrust     = "trust"
	PriceModeRecompute = "recompute"
)

// Исходы заявки для метрик
const (
	outcomeAdmitted            = "admitted"
	outcomeRejectedValidation  = "rejected_validation"
	outcomeRejectedNotFound    = "rejected_not_found"
	outcomeRejectedUnavailable = "rejected_unavailable"
	outcomeFailed              = "failed"
)

// Options режимы работы use case
type Options struct {
	// StrictAdmission поиск рейса и вставка выполняются в одной SERIALIZABLE транзакции
	// с блокировкой строки рейса. По умолчанию проверки и вставка не связаны транзакцией
	StrictAdmission bool

	// PriceMode trust - сохраняется цена клиента, recompute - цена пересчитывается
	// как price рейса × участники, расхождение отклоняется
	PriceMode string
}

// Request модель заявки на бронирование
type Request struct {
	TourID            uuid.UUID
	UserName          string
	UserEmail         string
	UserPhone         string
	BookingDate       time.Time // дата начала рейса (без времени)
	ParticipantsCount int
	TotalPrice        float64 // итоговая цена, посчитанная клиентом
	SpecialRequests   *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID  uuid.UUID
	Status     domain.BookingStatus
	TotalPrice float64
	CreatedAt  time.Time
}

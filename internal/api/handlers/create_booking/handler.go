package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/WebMTour-Service/internal/api/handlers"
	createBooking "github.com/m04kA/WebMTour-Service/internal/usecase/create_booking"
)

const (
	msgBookingCreated      = "จองสำเร็จ"
	msgIncompleteData      = "ข้อมูลไม่ครบถ้วน"
	msgTooManyParticipants = "จำนวนผู้เข้าร่วมเกินกำหนด (สูงสุด %d คน)"
	msgTourNotFound        = "ไม่พบทัวร์ที่เลือก"
	msgRoundNotFound       = "ไม่พบรอบการเดินทางในวันที่เลือก"
	msgRoundFull           = "รอบวันที่นี้ไม่ว่าง (เต็มแล้ว)"
	msgRoundClosed         = "รอบวันที่นี้ไม่ว่าง (ปิดรับจอง)"
	msgPriceMismatch       = "ราคารวมไม่ถูกต้อง"
	msgBookingFailed       = "เกิดข้อผิดพลาดในการจอง"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgIncompleteData)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом id и даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgIncompleteData)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var capacityErr *createBooking.CapacityError

		switch {
		case errors.As(err, &capacityErr):
			h.logger.Warn("POST /bookings - Too many participants: tour_id=%s, participants=%d, max=%d",
				req.TourID, useCaseReq.ParticipantsCount, capacityErr.Max)
			handlers.RespondBadRequest(w, fmt.Sprintf(msgTooManyParticipants, capacityErr.Max))

		case errors.Is(err, createBooking.ErrPriceMismatch):
			h.logger.Warn("POST /bookings - Price mismatch: tour_id=%s, total_price=%.2f", req.TourID, useCaseReq.TotalPrice)
			handlers.RespondBadRequest(w, msgPriceMismatch)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: tour_id=%s, error=%v", req.TourID, err)
			handlers.RespondBadRequest(w, msgIncompleteData)

		case errors.Is(err, createBooking.ErrTourNotFound):
			h.logger.Warn("POST /bookings - Tour not found: tour_id=%s", req.TourID)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, createBooking.ErrRoundNotFound):
			h.logger.Warn("POST /bookings - Round not found: tour_id=%s, date=%s", req.TourID, req.BookingDate)
			handlers.RespondNotFound(w, msgRoundNotFound)

		case errors.Is(err, createBooking.ErrRoundFull):
			h.logger.Warn("POST /bookings - Round full: tour_id=%s, date=%s", req.TourID, req.BookingDate)
			handlers.RespondBadRequest(w, msgRoundFull)

		case errors.Is(err, createBooking.ErrRoundNotAvailable):
			h.logger.Warn("POST /bookings - Round closed: tour_id=%s, date=%s", req.TourID, req.BookingDate)
			handlers.RespondBadRequest(w, msgRoundClosed)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: tour_id=%s, error=%v", req.TourID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgBookingFailed)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, tour_id=%s",
		result.BookingID, req.TourID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Response модели

// TourSummaryResponse краткие данные тура рядом с бронированием
type TourSummaryResponse struct {
	Title        string `json:"title"`
	Location     string `json:"location"`
	DurationDays int    `json:"duration_days"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                uuid.UUID           `json:"id"`
	TourID            uuid.UUID           `json:"tour_id"`
	UserName          string              `json:"user_name"`
	UserEmail         string              `json:"user_email"`
	UserPhone         string              `json:"user_phone"`
	BookingDate       string              `json:"booking_date"` // "2025-06-01"
	ParticipantsCount int                 `json:"participants_count"`
	TotalPrice        float64             `json:"total_price"`
	SpecialRequests   *string             `json:"special_requests"`
	Status            string              `json:"status"`
	CreatedAt         time.Time           `json:"created_at"`
	Tours             TourSummaryResponse `json:"tours"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// DashboardResponse сводка админ-панели
type DashboardResponse struct {
	TotalTours        int               `json:"total_tours"`
	TotalBookings     int               `json:"total_bookings"`
	PendingBookings   int               `json:"pending_bookings"`
	ConfirmedBookings int               `json:"confirmed_bookings"`
	RecentBookings    []BookingResponse `json:"recent_bookings"`
}

// Конвертеры

// FromDomainBooking конвертирует бронирование в response
func FromDomainBooking(b *domain.BookingWithTour) *BookingResponse {
	return &BookingResponse{
		ID:                b.ID,
		TourID:            b.TourID,
		UserName:          b.UserName,
		UserEmail:         b.UserEmail,
		UserPhone:         b.UserPhone,
		BookingDate:       b.BookingDate.Format(domain.DateFormat),
		ParticipantsCount: b.ParticipantsCount,
		TotalPrice:        b.TotalPrice,
		SpecialRequests:   b.SpecialRequests,
		Status:            string(b.Status),
		CreatedAt:         b.CreatedAt,
		Tours: TourSummaryResponse{
			Title:        b.Tour.Title,
			Location:     b.Tour.Location,
			DurationDays: b.Tour.DurationDays,
		},
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.BookingWithTour) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return result
}

// FromDomainDashboard конвертирует сводку
func FromDomainDashboard(stats *domain.DashboardStats) *DashboardResponse {
	return &DashboardResponse{
		TotalTours:        stats.TotalTours,
		TotalBookings:     stats.TotalBookings,
		PendingBookings:   stats.PendingBookings,
		ConfirmedBookings: stats.ConfirmedBookings,
		RecentBookings:    FromDomainBookingList(stats.RecentBookings),
	}
}

// ToDomainBookingStatus конвертирует строку в статус бронирования
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s, nil
}

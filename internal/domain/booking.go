package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// IsValid returns true for the known booking statuses
func (s BookingStatus) IsValid() bool {
	for _, valid := range BookingStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// Booking represents a customer's reservation on a tour round
// The round is matched by BookingDate == TourDate.StartDate, not by foreign key
type Booking struct {
	ID                uuid.UUID
	TourID            uuid.UUID
	UserName          string
	UserEmail         string
	UserPhone         string
	BookingDate       time.Time
	ParticipantsCount int
	TotalPrice        float64
	SpecialRequests   *string
	Status            BookingStatus
	CreatedAt         time.Time
}

// TourSummary denormalized tour fields shown next to a booking
type TourSummary struct {
	Title        string
	Location     string
	DurationDays int
}

// BookingWithTour booking joined with its tour
type BookingWithTour struct {
	Booking
	Tour TourSummary
}

// BookingFilter фильтр списка бронирований
type BookingFilter struct {
	Status *BookingStatus // nil - все статусы
	Limit  uint64         // 0 - без ограничения
}

// DashboardStats сводка для админ-панели
type DashboardStats struct {
	TotalTours        int
	TotalBookings     int
	PendingBookings   int
	ConfirmedBookings int
	RecentBookings    []*BookingWithTour
}

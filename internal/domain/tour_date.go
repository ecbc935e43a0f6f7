package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoundStatus represents the availability of a travel round
type RoundStatus string

const (
	RoundAvailable RoundStatus = "available"
	RoundFull      RoundStatus = "full"
	RoundClosed    RoundStatus = "closed"
)

// IsValid returns true for the known round statuses
func (s RoundStatus) IsValid() bool {
	switch s {
	case RoundAvailable, RoundFull, RoundClosed:
		return true
	}
	return false
}

// TourDate represents a scheduled departure window of a tour (a "round")
type TourDate struct {
	ID        uuid.UUID
	TourID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Price     float64 // price per participant for this round
	Status    RoundStatus
	CreatedAt time.Time
}

// IsAvailable returns true if the round accepts bookings
func (d *TourDate) IsAvailable() bool {
	return d.Status == RoundAvailable
}

// HasValidRange returns true if the round does not end before it starts
func (d *TourDate) HasValidRange() bool {
	return !d.EndDate.Before(d.StartDate)
}

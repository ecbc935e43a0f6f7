package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tour represents a bookable travel package
type Tour struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Location        string
	Price           float64 // base price per participant
	DurationDays    int
	MaxParticipants int
	IsActive        bool

	ImageURL *string
	PDFURL   *string

	// Operator metadata
	OwnerTour     *string
	CodeTourOwner *string
	LinkOwner     *string

	Highlights       []string
	IncludedServices []string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Dates travel rounds ordered by start date ascending; nil when not loaded
	Dates []TourDate
}

// AcceptsParticipants returns true if the group size fits the tour capacity
func (t *Tour) AcceptsParticipants(count int) bool {
	return count <= t.MaxParticipants
}

// TourFilter фильтр списка туров
type TourFilter struct {
	ActiveOnly bool
	Location   *string // подстрока в location
	MinDays    *int
	MaxDays    *int
}

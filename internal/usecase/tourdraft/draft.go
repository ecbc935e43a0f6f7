// Package tourdraft общая модель формы тура для create_tour и update_tour
package tourdraft

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
)

// ErrInvalidDraft форма тура заполнена не полностью или с ошибками
var ErrInvalidDraft = errors.New("tourdraft: invalid tour draft")

// Round рейс из формы
type Round struct {
	StartDate time.Time
	EndDate   time.Time
	Price     *float64            // nil - берется базовая цена тура
	Status    *domain.RoundStatus // nil - available
}

// Draft форма тура
// Числовые поля - указатели, чтобы отличать "не передано" от нуля
type Draft struct {
	Title           string
	Description     string
	Location        string
	Price           *float64
	DurationDays    *int
	MaxParticipants *int
	IsActive        *bool

	ImageURL      *string
	PDFURL        *string
	OwnerTour     *string
	CodeTourOwner *string
	LinkOwner     *string

	Highlights       []string
	IncludedServices []string

	// Dates nil - поле не передано, пустой срез - удалить все рейсы
	Dates []Round
}

// HasDates сообщает, передана ли коллекция рейсов
func (d *Draft) HasDates() bool {
	return d.Dates != nil
}

// Validate проверяет обязательные поля и все рейсы до любой записи в БД
func (d *Draft) Validate() error {
	switch {
	case strings.TrimSpace(d.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidDraft)
	case strings.TrimSpace(d.Description) == "":
		return fmt.Errorf("%w: description is required", ErrInvalidDraft)
	case strings.TrimSpace(d.Location) == "":
		return fmt.Errorf("%w: location is required", ErrInvalidDraft)
	case d.Price == nil:
		return fmt.Errorf("%w: price is required", ErrInvalidDraft)
	case d.DurationDays == nil:
		return fmt.Errorf("%w: duration_days is required", ErrInvalidDraft)
	case d.MaxParticipants == nil:
		return fmt.Errorf("%w: max_participants is required", ErrInvalidDraft)
	}

	if *d.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidDraft)
	}
	if *d.DurationDays < domain.MinDurationDays {
		return fmt.Errorf("%w: duration_days must be at least %d", ErrInvalidDraft, domain.MinDurationDays)
	}
	if *d.MaxParticipants < domain.MinMaxParticipants {
		return fmt.Errorf("%w: max_participants must be at least %d", ErrInvalidDraft, domain.MinMaxParticipants)
	}

	for i, r := range d.Dates {
		if r.StartDate.IsZero() || r.EndDate.IsZero() {
			return fmt.Errorf("%w: tour_dates[%d]: start_date and end_date are required", ErrInvalidDraft, i)
		}
		if r.EndDate.Before(r.StartDate) {
			return fmt.Errorf("%w: tour_dates[%d]: end_date is before start_date", ErrInvalidDraft, i)
		}
		if r.Price != nil && *r.Price < 0 {
			return fmt.Errorf("%w: tour_dates[%d]: price must not be negative", ErrInvalidDraft, i)
		}
		if r.Status != nil && !r.Status.IsValid() {
			return fmt.Errorf("%w: tour_dates[%d]: unknown status %q", ErrInvalidDraft, i, *r.Status)
		}
	}

	return nil
}

// Tour собирает тур из проверенной формы
// active используется, когда форма не содержит is_active
func (d *Draft) Tour(id uuid.UUID, active bool) *domain.Tour {
	if d.IsActive != nil {
		active = *d.IsActive
	}

	return &domain.Tour{
		ID:               id,
		Title:            d.Title,
		Description:      d.Description,
		Location:         d.Location,
		Price:            *d.Price,
		DurationDays:     *d.DurationDays,
		MaxParticipants:  *d.MaxParticipants,
		IsActive:         active,
		ImageURL:         nonEmpty(d.ImageURL),
		PDFURL:           nonEmpty(d.PDFURL),
		OwnerTour:        nonEmpty(d.OwnerTour),
		CodeTourOwner:    nonEmpty(d.CodeTourOwner),
		LinkOwner:        nonEmpty(d.LinkOwner),
		Highlights:       orEmpty(d.Highlights),
		IncludedServices: orEmpty(d.IncludedServices),
	}
}

// Rounds собирает рейсы с подставленными значениями по умолчанию
func (d *Draft) Rounds(basePrice float64) []domain.TourDate {
	rounds := make([]domain.TourDate, 0, len(d.Dates))
	for _, r := range d.Dates {
		round := domain.TourDate{
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
			Price:     basePrice,
			Status:    domain.RoundAvailable,
		}
		if r.Price != nil {
			round.Price = *r.Price
		}
		if r.Status != nil {
			round.Status = *r.Status
		}
		rounds = append(rounds, round)
	}
	return rounds
}

// nonEmpty пустая строка сохраняется как NULL
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// Package tourform HTTP форма тура, общая для создания и редактирования
package tourform

import (
	"fmt"
	"time"

	"github.com/m04kA/WebMTour-Service/internal/domain"
	"github.com/m04kA/WebMTour-Service/internal/service/tours/models"
	"github.com/m04kA/WebMTour-Service/internal/usecase/tourdraft"
)

// RoundForm рейс в форме тура
type RoundForm struct {
	StartDate string   `json:"start_date" validate:"required"`
	EndDate   string   `json:"end_date" validate:"required"`
	Price     *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Status    *string  `json:"status,omitempty" validate:"omitempty,oneof=available full closed"`
}

// TourForm тело POST/PUT запроса тура
// TourDates nil - поле не передано, пустой массив - удалить все рейсы
type TourForm struct {
	Title            string       `json:"title" validate:"required"`
	Description      string       `json:"description" validate:"required"`
	Location         string       `json:"location" validate:"required"`
	Price            *float64     `json:"price" validate:"required,gte=0"`
	DurationDays     *int         `json:"duration_days" validate:"required,gte=1"`
	MaxParticipants  *int         `json:"max_participants" validate:"required,gte=1"`
	IsActive         *bool        `json:"is_active,omitempty"`
	ImageURL         *string      `json:"image_url,omitempty"`
	PDFURL           *string      `json:"pdf_url,omitempty"`
	OwnerTour        *string      `json:"OwnerTour,omitempty"`
	CodeTourOwner    *string      `json:"Code_Tour_owner,omitempty"`
	LinkOwner        *string      `json:"Link_Owner,omitempty"`
	Highlights       []string     `json:"highlights,omitempty"`
	IncludedServices []string     `json:"included_services,omitempty"`
	TourDates        *[]RoundForm `json:"tour_dates,omitempty" validate:"omitempty,dive"`
}

// TourEnvelope ответ {"tour": ...}
type TourEnvelope struct {
	Tour *models.TourResponse `json:"tour"`
}

// ToDraft разбирает даты и собирает форму для use case
func (f *TourForm) ToDraft() (tourdraft.Draft, error) {
	draft := tourdraft.Draft{
		Title:            f.Title,
		Description:      f.Description,
		Location:         f.Location,
		Price:            f.Price,
		DurationDays:     f.DurationDays,
		MaxParticipants:  f.MaxParticipants,
		IsActive:         f.IsActive,
		ImageURL:         f.ImageURL,
		PDFURL:           f.PDFURL,
		OwnerTour:        f.OwnerTour,
		CodeTourOwner:    f.CodeTourOwner,
		LinkOwner:        f.LinkOwner,
		Highlights:       f.Highlights,
		IncludedServices: f.IncludedServices,
	}

	if f.TourDates == nil {
		return draft, nil
	}

	draft.Dates = make([]tourdraft.Round, 0, len(*f.TourDates))
	for i, r := range *f.TourDates {
		start, err := time.Parse(domain.DateFormat, r.StartDate)
		if err != nil {
			return tourdraft.Draft{}, fmt.Errorf("tour_dates[%d].start_date: %w", i, err)
		}
		end, err := time.Parse(domain.DateFormat, r.EndDate)
		if err != nil {
			return tourdraft.Draft{}, fmt.Errorf("tour_dates[%d].end_date: %w", i, err)
		}

		round := tourdraft.Round{StartDate: start, EndDate: end, Price: r.Price}
		if r.Status != nil {
			status := domain.RoundStatus(*r.Status)
			round.Status = &status
		}
		draft.Dates = append(draft.Dates, round)
	}

	return draft, nil
}

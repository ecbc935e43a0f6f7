package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
)

// Request модели

// ListToursRequest фильтр витрины
type ListToursRequest struct {
	Location *string
	MinDays  *int
	MaxDays  *int
}

// Response модели

// TourDateResponse рейс тура
type TourDateResponse struct {
	ID        uuid.UUID `json:"id"`
	TourID    uuid.UUID `json:"tour_id"`
	StartDate string    `json:"start_date"` // "2025-06-01"
	EndDate   string    `json:"end_date"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
}

// TourResponse тур
// Имена полей владельца совпадают с колонками исходной схемы
type TourResponse struct {
	ID               uuid.UUID          `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Location         string             `json:"location"`
	Price            float64            `json:"price"`
	DurationDays     int                `json:"duration_days"`
	MaxParticipants  int                `json:"max_participants"`
	IsActive         bool               `json:"is_active"`
	ImageURL         *string            `json:"image_url"`
	PDFURL           *string            `json:"pdf_url"`
	OwnerTour        *string            `json:"OwnerTour"`
	CodeTourOwner    *string            `json:"Code_Tour_owner"`
	LinkOwner        *string            `json:"Link_Owner"`
	Highlights       []string           `json:"highlights"`
	IncludedServices []string           `json:"included_services"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
	TourDates        []TourDateResponse `json:"tour_dates"`
}

// TourListResponse список туров
type TourListResponse struct {
	Tours []TourResponse `json:"tours"`
}

// Конвертеры

// FromDomainTour конвертирует тур в response
// Рейсы не загружены - tour_dates = null
func FromDomainTour(t *domain.Tour) *TourResponse {
	resp := &TourResponse{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		Location:         t.Location,
		Price:            t.Price,
		DurationDays:     t.DurationDays,
		MaxParticipants:  t.MaxParticipants,
		IsActive:         t.IsActive,
		ImageURL:         t.ImageURL,
		PDFURL:           t.PDFURL,
		OwnerTour:        t.OwnerTour,
		CodeTourOwner:    t.CodeTourOwner,
		LinkOwner:        t.LinkOwner,
		Highlights:       t.Highlights,
		IncludedServices: t.IncludedServices,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}

	if t.Dates != nil {
		resp.TourDates = make([]TourDateResponse, 0, len(t.Dates))
		for _, d := range t.Dates {
			resp.TourDates = append(resp.TourDates, FromDomainTourDate(d))
		}
	}

	return resp
}

// FromDomainTourDate конвертирует рейс в response
func FromDomainTourDate(d domain.TourDate) TourDateResponse {
	return TourDateResponse{
		ID:        d.ID,
		TourID:    d.TourID,
		StartDate: d.StartDate.Format(domain.DateFormat),
		EndDate:   d.EndDate.Format(domain.DateFormat),
		Price:     d.Price,
		Status:    string(d.Status),
	}
}

// FromDomainTourList конвертирует список туров
func FromDomainTourList(tours []*domain.Tour) *TourListResponse {
	result := make([]TourResponse, 0, len(tours))
	for _, t := range tours {
		result = append(result, *FromDomainTour(t))
	}
	return &TourListResponse{Tours: result}
}

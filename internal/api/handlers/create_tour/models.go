package create_tour

import (
	"github.com/m04kA/WebMTour-Service/internal/service/tours/models"
	createTour "github.com/m04kA/WebMTour-Service/internal/usecase/create_tour"
)

// CreateTourResponse HTTP response model
// dates_saved = false: тур создан, рейсы не сохранены
type CreateTourResponse struct {
	Tour       *models.TourResponse `json:"tour"`
	DatesSaved bool                 `json:"dates_saved"`
}

func FromUseCaseResponse(resp *createTour.Response) *CreateTourResponse {
	return &CreateTourResponse{
		Tour:       models.FromDomainTour(resp.Tour),
		DatesSaved: resp.DatesSaved,
	}
}

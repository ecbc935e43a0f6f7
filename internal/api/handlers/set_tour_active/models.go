package set_tour_active

// SetActiveRequest тело PATCH запроса
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

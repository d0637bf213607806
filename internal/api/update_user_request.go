package api

// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	FirstName string `json:"firstName" validate:"required" example:"Alice"`
	LastName  string `json:"lastName" validate:"required" example:"Smith"`
}

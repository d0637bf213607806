package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	FirstName string `json:"firstName" validate:"required" example:"Alice"`
	LastName  string `json:"lastName" validate:"required" example:"Smith"`
	Email     string `json:"email" validate:"required" example:"alice@example.com"`
	Password  string `json:"password" validate:"required" example:"Secret123!abcd"`
}

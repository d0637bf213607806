package api

// swagger:model api.UserResponse
type UserResponse struct {
	ID        int    `json:"id" example:"1"`
	FirstName string `json:"firstName" example:"Alice"`
	LastName  string `json:"lastName" example:"Smith"`
	Email     string `json:"email" example:"alice@example.com"`
}

package api

// SessionResponse 沿用既有用戶端依賴的鍵名
// swagger:model api.SessionResponse
type SessionResponse struct {
	UserID    int    `json:"user_id" example:"1"`
	LoggedIn  bool   `json:"UserLoggedIn" example:"true"`
	LastName  string `json:"UserLastname" example:"Smith"`
	FirstName string `json:"UserFirstname" example:"Alice"`
	Email     string `json:"UserEmail" example:"alice@example.com"`
}

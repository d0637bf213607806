package api

// swagger:model api.ChangePasswordRequest
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required" example:"OldSecret123!a"`
	NewPassword     string `json:"new_password" validate:"required" example:"NewSecret456!b"`
}

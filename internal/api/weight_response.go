package api

// swagger:model api.WeightResponse
type WeightResponse struct {
	ID             int      `json:"id" example:"1"`
	Date           string   `json:"date" example:"2024-01-01"`
	Weight         float64  `json:"weight" example:"70.5"`
	Fat            *float64 `json:"fat" example:"18.2"`
	TotalBodyWater *float64 `json:"total_body_water" example:"55.0"`
	MuscleMass     *float64 `json:"muscle_mass" example:"32.1"`
	BoneDensity    *float64 `json:"bone_density" example:"3.4"`
}

package api

// WeightRequest 建立與更新量測紀錄共用的請求格式
// date 格式為 YYYY-MM-DD，建立時缺漏則預設當天
// swagger:model api.WeightRequest
type WeightRequest struct {
	Date           string   `json:"date" example:"2024-01-01"`
	Weight         *float64 `json:"weight" example:"70.5"`
	Fat            *float64 `json:"fat" example:"18.2"`
	TotalBodyWater *float64 `json:"total_body_water" example:"55.0"`
	MuscleMass     *float64 `json:"muscle_mass" example:"32.1"`
	BoneDensity    *float64 `json:"bone_density" example:"3.4"`
}

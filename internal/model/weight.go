package model

import "time"

// Weight 一筆身體組成量測紀錄
// weight 欄位在資料庫為 NOT NULL，此處為指標以便建立時將缺漏值
// 原樣送入資料庫（由約束擋下）
type Weight struct {
	ID             int       `db:"id" json:"id"`
	UserID         *int      `db:"user_id" json:"user_id"`
	Date           time.Time `db:"date" json:"date"`
	Weight         *float64  `db:"weight" json:"weight"`
	Fat            *float64  `db:"fat" json:"fat"`
	TotalBodyWater *float64  `db:"total_body_water" json:"total_body_water"`
	MuscleMass     *float64  `db:"muscle_mass" json:"muscle_mass"`
	BoneDensity    *float64  `db:"bone_density" json:"bone_density"`
}

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"health-tracker/internal/database"
	"health-tracker/internal/model"

	"github.com/jackc/pgx/v5"
)

func ListWeights(ctx context.Context, db database.DB) ([]model.Weight, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, date, weight, fat, total_body_water, muscle_mass, bone_density
		 FROM weights ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListWeights: %w", err)
	}
	defer rows.Close()

	var weights []model.Weight
	for rows.Next() {
		var w model.Weight
		if err := rows.Scan(
			&w.ID,
			&w.UserID,
			&w.Date,
			&w.Weight,
			&w.Fat,
			&w.TotalBodyWater,
			&w.MuscleMass,
			&w.BoneDensity,
		); err != nil {
			return nil, fmt.Errorf("ListWeights: %w", err)
		}
		weights = append(weights, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListWeights: %w", err)
	}
	return weights, nil
}

func GetWeightByID(ctx context.Context, db database.DB, weightID int) (*model.Weight, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, date, weight, fat, total_body_water, muscle_mass, bone_density
		 FROM weights WHERE id = $1`,
		weightID,
	)
	w := &model.Weight{}
	if err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.Date,
		&w.Weight,
		&w.Fat,
		&w.TotalBodyWater,
		&w.MuscleMass,
		&w.BoneDensity,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetWeightByID: %w", err)
	}
	return w, nil
}

func CreateWeight(ctx context.Context, db database.DB, w *model.Weight) (*model.Weight, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO weights (user_id, date, weight, fat, total_body_water, muscle_mass, bone_density)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		w.UserID,
		w.Date,
		w.Weight,
		w.Fat,
		w.TotalBodyWater,
		w.MuscleMass,
		w.BoneDensity,
	)
	if err := row.Scan(&w.ID); err != nil {
		return nil, fmt.Errorf("CreateWeight: %w", err)
	}
	return w, nil
}

// UpdateWeight 只覆寫有提供的欄位，未提供者保留原值
func UpdateWeight(ctx context.Context, db database.DB, w *model.Weight) error {
	tag, err := db.Exec(ctx,
		`UPDATE weights SET
		   date             = COALESCE($1::date, date),
		   weight           = COALESCE($2::double precision, weight),
		   fat              = COALESCE($3::double precision, fat),
		   total_body_water = COALESCE($4::double precision, total_body_water),
		   muscle_mass      = COALESCE($5::double precision, muscle_mass),
		   bone_density     = COALESCE($6::double precision, bone_density)
		 WHERE id = $7`,
		nullableDate(w.Date),
		w.Weight,
		w.Fat,
		w.TotalBodyWater,
		w.MuscleMass,
		w.BoneDensity,
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateWeight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteWeight(ctx context.Context, db database.DB, weightID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM weights WHERE id = $1`,
		weightID,
	)
	if err != nil {
		return fmt.Errorf("DeleteWeight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// nullableDate 將零值時間轉為 NULL，讓 COALESCE 保留原本的量測日期
func nullableDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

package weights

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"health-tracker/internal/api"
	"health-tracker/internal/database"
	"health-tracker/internal/middleware"
	"health-tracker/internal/model"
	"health-tracker/internal/store"

	"github.com/labstack/echo/v4"
)

// dateLayout 量測日期的序列化格式
const dateLayout = "2006-01-02"

var (
	listWeights   = store.ListWeights
	getWeightByID = store.GetWeightByID
	createWeight  = store.CreateWeight
	updateWeight  = store.UpdateWeight
	deleteWeight  = store.DeleteWeight
)

func toWeightResponse(w *model.Weight) api.WeightResponse {
	resp := api.WeightResponse{
		ID:             w.ID,
		Date:           w.Date.Format(dateLayout),
		Fat:            w.Fat,
		TotalBodyWater: w.TotalBodyWater,
		MuscleMass:     w.MuscleMass,
		BoneDensity:    w.BoneDensity,
	}
	if w.Weight != nil {
		resp.Weight = *w.Weight
	}
	return resp
}

// @Summary     List all weight entries
// @Tags        weights
// @Produce     json
// @Success     200 {array} api.WeightResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /weight [get]
func ListWeightsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		weights, err := listWeights(c.Request().Context(), db)
		if err != nil {
			c.Logger().Errorf("list weights: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list weight entries"})
		}
		resp := make([]api.WeightResponse, 0, len(weights))
		for i := range weights {
			resp = append(resp, toWeightResponse(&weights[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a weight entry by ID
// @Tags        weights
// @Produce     json
// @Param       id path int true "紀錄 ID"
// @Success     200 {object} api.WeightResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /weight/{id} [get]
func GetWeightHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid weight ID"})
		}
		w, err := getWeightByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "weight entry not found"})
			}
			c.Logger().Errorf("get weight: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to get weight entry"})
		}
		return c.JSON(http.StatusOK, toWeightResponse(w))
	}
}

// CreateWeightHandler 建立量測紀錄，user_id 取自登入 session
// 不預先檢查 weight 是否缺漏，缺漏由資料庫 NOT NULL 約束擋下
// @Summary     Create a weight entry
// @Tags        weights
// @Accept      json
// @Produce     json
// @Param       body body api.WeightRequest true "量測資料"
// @Success     201 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /weight [post]
func CreateWeightHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.WeightRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		}

		date := time.Now().UTC().Truncate(24 * time.Hour)
		if req.Date != "" {
			parsed, err := time.Parse(dateLayout, req.Date)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
			}
			date = parsed
		}

		w := &model.Weight{
			Date:           date,
			Weight:         req.Weight,
			Fat:            req.Fat,
			TotalBodyWater: req.TotalBodyWater,
			MuscleMass:     req.MuscleMass,
			BoneDensity:    req.BoneDensity,
		}
		if sess, ok := middleware.SessionFromContext(c); ok {
			w.UserID = &sess.UserID
		}

		if _, err := createWeight(c.Request().Context(), db, w); err != nil {
			c.Logger().Errorf("create weight: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create weight entry"})
		}
		return c.JSON(http.StatusCreated, api.MessageResponse{Message: "Weight entry created successfully"})
	}
}

// UpdateWeightHandler 覆寫有提供的欄位，未提供者維持原值
// @Summary     Update a weight entry
// @Tags        weights
// @Accept      json
// @Produce     json
// @Param       id path int true "紀錄 ID"
// @Param       body body api.WeightRequest true "量測資料"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /weight/{id} [put]
func UpdateWeightHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid weight ID"})
		}
		var req api.WeightRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		}

		w := &model.Weight{
			ID:             id,
			Weight:         req.Weight,
			Fat:            req.Fat,
			TotalBodyWater: req.TotalBodyWater,
			MuscleMass:     req.MuscleMass,
			BoneDensity:    req.BoneDensity,
		}
		if req.Date != "" {
			parsed, err := time.Parse(dateLayout, req.Date)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
			}
			w.Date = parsed
		}

		if err := updateWeight(c.Request().Context(), db, w); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "weight entry not found"})
			}
			c.Logger().Errorf("update weight: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update weight entry"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Weight entry updated successfully"})
	}
}

// @Summary     Delete a weight entry
// @Tags        weights
// @Produce     json
// @Param       id path int true "紀錄 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /weight/{id} [delete]
func DeleteWeightHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid weight ID"})
		}
		if err := deleteWeight(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "weight entry not found"})
			}
			c.Logger().Errorf("delete weight: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete weight entry"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Weight entry deleted successfully"})
	}
}

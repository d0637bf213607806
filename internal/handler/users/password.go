package users

import (
	"errors"
	"net/http"

	"health-tracker/internal/api"
	"health-tracker/internal/database"
	"health-tracker/internal/middleware"
	"health-tracker/internal/service"
	"health-tracker/internal/store"

	"github.com/labstack/echo/v4"
)

// ChangePasswordHandler 驗證當前密碼後更新為新密碼
// @Summary     Change own password
// @Description 重新讀取使用者，驗證當前密碼與新密碼政策後改寫哈希
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.ChangePasswordRequest true "密碼資料"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /change-pw [post]
func ChangePasswordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ChangePasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		sess, ok := middleware.SessionFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		}

		// session 建立後帳號可能已被刪除，重新讀取確認
		user, err := getUserByID(c.Request().Context(), db, sess.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found."})
			}
			c.Logger().Errorf("change password: get user: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to change password"})
		}

		if err := comparePassword(user.PasswordHash, req.CurrentPassword); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Incorrect current password."})
		}
		if !service.ValidatePassword(req.NewPassword) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid new password. Please follow the password policy."})
		}

		hash, err := hashPassword(req.NewPassword)
		if err != nil {
			c.Logger().Errorf("change password: hash: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to change password"})
		}
		if err := updateUserPassword(c.Request().Context(), db, user.ID, hash); err != nil {
			c.Logger().Errorf("change password: update: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to change password"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Password changed successfully."})
	}
}

// File: internal/handler/auth/login.go
package auth

import (
	"context"
	"net/http"
	"time"

	"health-tracker/internal/api"
	"health-tracker/internal/cache"
	"health-tracker/internal/database"
	"health-tracker/internal/middleware"
	"health-tracker/internal/service"
	"health-tracker/internal/store"
	"health-tracker/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	getUserByEmail      = store.GetUserByEmail
	comparePassword     = service.ComparePassword
	newSession          = service.NewSession
	updateUserLastLogin = store.UpdateUserLastLogin
)

// LoginHandler 以 email 與密碼驗證並建立 session cookie
// @Summary     登入使用者
// @Description 驗證 email 與密碼，成功時設定 session cookie
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "登入資料"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /user/login [post]
func LoginHandler(db database.DB, rdb cache.Cache, secret string, ttl time.Duration, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		// 查無帳號與密碼錯誤回覆相同訊息，避免洩漏 email 是否存在
		user, err := getUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
		}
		if err := comparePassword(user.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
		}

		cookieValue, err := newSession(c.Request().Context(), rdb, secret, ttl, *user)
		if err != nil {
			c.Logger().Errorf("login: create session: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create session"})
		}

		c.SetCookie(&http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    cookieValue,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		// 登入時間非關鍵路徑，交給 worker pool 非同步寫入
		userID := user.ID
		logger := c.Logger()
		wp.Submit(func() {
			// 請求結束後 request context 即失效，改用背景 context
			if err := updateUserLastLogin(context.Background(), db, userID, time.Now().UTC()); err != nil {
				logger.Errorf("login: stamp last login: %v", err)
			}
		})

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged in successfully"})
	}
}

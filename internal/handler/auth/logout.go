// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"
	"time"

	"health-tracker/internal/api"
	"health-tracker/internal/cache"
	"health-tracker/internal/middleware"
	"health-tracker/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	getSession   = service.GetSession
	clearSession = service.ClearSession
)

// LogoutHandler 清除 session；無人登入時回 401（沿用既有行為，重複登出不是冪等成功）
// @Summary     登出使用者
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /user/logout [post]
func LogoutHandler(rdb cache.Cache, secret string, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(middleware.SessionCookieName)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "no user is logged in"})
		}
		if _, err := getSession(c.Request().Context(), rdb, secret, cookie.Value, ttl); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "no user is logged in"})
		}
		if err := clearSession(c.Request().Context(), rdb, secret, cookie.Value); err != nil {
			c.Logger().Errorf("logout: clear session: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to clear session"})
		}

		// 讓瀏覽器同步丟棄 cookie
		c.SetCookie(&http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out successfully"})
	}
}

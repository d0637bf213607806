// File: internal/handler/auth/session_data.go
package auth

import (
	"net/http"
	"time"

	"health-tracker/internal/api"
	"health-tracker/internal/cache"
	"health-tracker/internal/middleware"

	"github.com/labstack/echo/v4"
)

// SessionDataHandler 回傳目前 session 內容
// @Summary     取得 session 資料
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.SessionResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /user/session_data [get]
func SessionDataHandler(rdb cache.Cache, secret string, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(middleware.SessionCookieName)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "no user is logged in"})
		}
		sess, err := getSession(c.Request().Context(), rdb, secret, cookie.Value, ttl)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "no user is logged in"})
		}
		return c.JSON(http.StatusOK, api.SessionResponse{
			UserID:    sess.UserID,
			LoggedIn:  sess.LoggedIn,
			LastName:  sess.LastName,
			FirstName: sess.FirstName,
			Email:     sess.Email,
		})
	}
}

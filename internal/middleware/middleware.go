package middleware

import (
	"net/http"
	"time"

	"health-tracker/internal/api"
	"health-tracker/internal/cache"
	"health-tracker/internal/service"

	"github.com/labstack/echo/v4"
)

// ContextSessionKey 存放於 echo.Context 的 session 鍵名
const ContextSessionKey = "session"

// SessionCookieName 攜帶簽章 session ID 的 cookie 名稱
const SessionCookieName = "session"

var getSession = service.GetSession

// SessionFromContext 取出 RequireAuth 放入的 session
func SessionFromContext(c echo.Context) (*service.Session, bool) {
	s, ok := c.Get(ContextSessionKey).(*service.Session)
	return s, ok
}

// RequireAuth 驗證 session cookie，未登入則以 401 短路
func RequireAuth(rdb cache.Cache, secret string, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
			}
			sess, err := getSession(c.Request().Context(), rdb, secret, cookie.Value, ttl)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
			}
			c.Set(ContextSessionKey, sess)
			return next(c)
		}
	}
}

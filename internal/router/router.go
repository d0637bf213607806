// File: internal/router/router.go
package router

import (
	"health-tracker/internal/cache"
	"health-tracker/internal/config"
	"health-tracker/internal/database"
	"health-tracker/internal/handler"
	"health-tracker/internal/handler/auth"
	"health-tracker/internal/handler/users"
	"health-tracker/internal/handler/weights"
	"health-tracker/internal/middleware"
	"health-tracker/internal/worker"

	"github.com/labstack/echo/v4"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, cfg *config.Config, wp worker.Pool) {
	requireAuth := middleware.RequireAuth(rdb, cfg.SessionSecret, cfg.SessionTTL)

	// 健康檢查
	e.GET("/ping", handler.PingHandler(db, rdb))

	// 登入/登出與 session 查詢
	user := e.Group("/user")
	user.POST("/login", auth.LoginHandler(db, rdb, cfg.SessionSecret, cfg.SessionTTL, wp))
	user.POST("/logout", auth.LogoutHandler(rdb, cfg.SessionSecret, cfg.SessionTTL))
	user.GET("/session_data", auth.SessionDataHandler(rdb, cfg.SessionSecret, cfg.SessionTTL))

	// 使用者 CRUD（需登入）
	user.POST("/", users.CreateUserHandler(db), requireAuth)
	user.GET("/", users.ListUsersHandler(db), requireAuth)
	user.GET("/:id", users.GetUserHandler(db), requireAuth)
	user.PUT("/:id", users.UpdateUserHandler(db), requireAuth)
	user.DELETE("/:id", users.DeleteUserHandler(db), requireAuth)

	// 變更密碼（需登入）
	e.POST("/change-pw/", users.ChangePasswordHandler(db), requireAuth)

	// 量測紀錄 CRUD（需登入）
	weight := e.Group("/weight", requireAuth)
	weight.GET("/", weights.ListWeightsHandler(db))
	weight.POST("/", weights.CreateWeightHandler(db))
	weight.GET("/:id", weights.GetWeightHandler(db))
	weight.PUT("/:id", weights.UpdateWeightHandler(db))
	weight.DELETE("/:id", weights.DeleteWeightHandler(db))
}

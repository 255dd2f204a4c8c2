package router

import (
	"github.com/labstack/echo/v4"

	"health-insight/internal/cache"
	"health-insight/internal/database"
	"health-insight/internal/handler"
	"health-insight/internal/handler/auth"
	"health-insight/internal/handler/reports"
	"health-insight/internal/handler/users"
	"health-insight/internal/middleware"
	"health-insight/internal/repository"
	"health-insight/internal/service"
	"health-insight/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(
	e *echo.Echo,
	db database.DB,
	rc cache.Cache,
	userRepo repository.UserRepository,
	reportRepo repository.ReportRepository,
	tokens *service.TokenService,
	engine *service.ScoringEngine,
	wp worker.Pool,
) {
	api := e.Group("/api")

	// 公開端點
	api.GET("/health", handler.HealthHandler(db, rc))
	api.POST("/predict", handler.PredictHandler(engine))
	api.POST("/auth/signup", auth.SignupHandler(userRepo, tokens))
	api.POST("/auth/login", auth.LoginHandler(userRepo, tokens))

	// 受保護端點一律經過 RequireAuth
	requireAuth := middleware.RequireAuth(tokens)

	apiUsers := api.Group("/users", requireAuth)
	apiUsers.GET("/me", users.GetMeHandler(userRepo))
	apiUsers.PUT("/profile", users.UpdateProfileHandler(userRepo))

	apiReports := api.Group("/reports", requireAuth)
	apiReports.GET("", reports.ListReportsHandler(reportRepo, rc))
	apiReports.POST("", reports.CreateReportHandler(reportRepo, engine, rc, wp))
	apiReports.GET("/:id", reports.GetReportHandler(reportRepo))
}

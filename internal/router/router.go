package router

import (
	"github.com/mariaed-2103/Dashboard-Financeiro/internal/config"
	"github.com/mariaed-2103/Dashboard-Financeiro/internal/handler"
	"github.com/mariaed-2103/Dashboard-Financeiro/internal/middleware"
	"github.com/mariaed-2103/Dashboard-Financeiro/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services, handlers and middleware onto a gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// avatar images
	r.Static("/uploads", cfg.Upload.Dir)

	categories := service.NewCategoryService(db)
	transactions := service.NewTransactionService(db)
	users := service.NewUserService(db, cfg.Security.BcryptCost)
	auth := service.NewAuthService(db, cfg.JWT.Secret, cfg.JWT.Issuer,
		cfg.JWT.ExpireHours, cfg.Security.BcryptCost, categories)

	api := r.Group("/api")

	authHandler := handler.NewAuthHandler(auth)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret, db),
		middleware.AuditMiddleware(db),
	)

	userHandler := handler.NewUserHandler(users, cfg.Upload)
	protected.GET("/me", userHandler.GetMe)
	protected.PUT("/me", userHandler.UpdateProfile)
	protected.PUT("/me/password", userHandler.UpdatePassword)
	protected.POST("/me/avatar", userHandler.UploadAvatar)

	categoryHandler := handler.NewCategoryHandler(categories)
	protected.GET("/categories", categoryHandler.List)
	protected.POST("/categories", categoryHandler.Create)
	protected.PUT("/categories/:id", categoryHandler.Rename)
	protected.DELETE("/categories/:id", categoryHandler.Delete)

	txHandler := handler.NewTransactionHandler(transactions)
	protected.GET("/transactions", txHandler.List)
	protected.POST("/transactions", txHandler.Create)
	protected.PUT("/transactions/:id", txHandler.Update)
	protected.DELETE("/transactions/:id", txHandler.Delete)
	protected.GET("/transactions/summary", txHandler.Summary)
	protected.GET("/transactions/by-month", txHandler.ListByMonth)
	protected.GET("/transactions/by-category", txHandler.ListByCategory)
	protected.GET("/transactions/by-period", txHandler.ListByPeriod)
	protected.GET("/transactions/summary-by-period", txHandler.SummaryByPeriod)
	protected.GET("/transactions/category-summary", txHandler.CategorySummary)
	protected.GET("/transactions/category-summary-by-period", txHandler.CategorySummaryByPeriod)

	exportHandler := handler.NewExportHandler(transactions)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	logHandler := handler.NewLogHandler(db, cfg.App.PageSize)
	protected.GET("/logs", logHandler.ListLogs)

	return r
}

package router

import (
	"net/http"
	"time"

	"khata-ledger/internal/config"
	"khata-ledger/internal/handler"
	"khata-ledger/internal/middleware"
	"khata-ledger/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services, middleware and the route table.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	idleTimeout := time.Duration(cfg.Session.IdleTimeoutMinutes) * time.Minute
	authService := service.NewAuthService(db, idleTimeout)
	ledgerService := service.NewLedgerService(db)

	authHandler := handler.NewAuthHandler(authService, cfg.Session.CookieName)
	entryHandler := handler.NewEntryHandler(ledgerService)
	paymentHandler := handler.NewPaymentHandler(ledgerService)
	dashboardHandler := handler.NewDashboardHandler(ledgerService)
	exportHandler := handler.NewExportHandler(ledgerService)

	// landing page
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "khata ledger",
			"message": "track credit extended to farmers and payments received",
		})
	})

	// public auth endpoints
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// everything below requires a live session
	protected := r.Group("")
	protected.Use(
		middleware.AuthMiddleware(authService, cfg.Session.CookieName),
		middleware.RequestLog(),
	)

	protected.GET("/logout", authHandler.Logout)
	protected.GET("/dashboard", dashboardHandler.Dashboard)

	protected.POST("/add_entry", entryHandler.AddEntry)
	protected.GET("/edit_entry/:entry_id", entryHandler.GetEntry)
	protected.POST("/edit_entry/:entry_id", entryHandler.EditEntry)
	protected.POST("/delete_entry/:entry_id", entryHandler.DeleteEntry)

	protected.GET("/mark_payment/:entry_id", paymentHandler.EntryPayments)
	protected.POST("/mark_payment/:entry_id", paymentHandler.MarkPayment)

	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}

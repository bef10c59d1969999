package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tiadeasalon/salon-manager/internal/audit"
	"github.com/tiadeasalon/salon-manager/internal/cache"
	"github.com/tiadeasalon/salon-manager/internal/config"
	"github.com/tiadeasalon/salon-manager/internal/handlers"
	infraRepo "github.com/tiadeasalon/salon-manager/internal/infra/repository"
	"github.com/tiadeasalon/salon-manager/internal/middleware"
	"github.com/tiadeasalon/salon-manager/internal/storage"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	cacheStore *cache.Store,
	gallery *storage.GalleryStore,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	clientRepo := infraRepo.NewClientGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	financialRepo := infraRepo.NewFinancialGormRepository(db)
	configRepo := infraRepo.NewConfigGormRepository(db)
	tesourinhaRepo := infraRepo.NewTesourinhaGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	clientHandler := handlers.NewClientHandler(clientRepo, cacheStore, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentRepo, cacheStore, auditDispatcher)
	financialHandler := handlers.NewFinancialHandler(financialRepo, appointmentRepo, auditDispatcher)
	followupHandler := handlers.NewFollowupHandler(
		clientRepo,
		appointmentRepo,
		configRepo,
		cacheStore,
		auditDispatcher,
	)
	settingsHandler := handlers.NewSettingsHandler(configRepo, gallery, auditDispatcher)
	tesourinhaHandler := handlers.NewTesourinhaHandler(tesourinhaRepo, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(clientRepo, configRepo, gallery, auditDispatcher)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (vitrine)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/info", publicHandler.Info)
			publicAPI.POST("/booking", publicHandler.Booking)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (administração)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// FINANCIALS
			// ------------------------------
			secured.GET("/financials", financialHandler.List)
			secured.POST("/financials", financialHandler.Create)
			secured.DELETE("/financials/:id", financialHandler.Delete)
			secured.GET("/financials/summary", financialHandler.Summary)
			secured.GET("/financials/export", financialHandler.ExportCSV)

			// ------------------------------
			// FOLLOW-UP
			// ------------------------------
			secured.GET("/followups", followupHandler.List)
			secured.GET("/followups/config", followupHandler.GetConfig)
			secured.PUT("/followups/config", followupHandler.UpdateConfig)
			secured.POST("/followups/:id/reminder", followupHandler.SendReminder)
			secured.GET("/followups/birthdays", followupHandler.Birthdays)

			// ------------------------------
			// SETTINGS + GALLERY
			// ------------------------------
			secured.GET("/settings", settingsHandler.Get)
			secured.PATCH("/settings", settingsHandler.Update)
			secured.GET("/settings/gallery", settingsHandler.ListImages)
			secured.POST("/settings/gallery", settingsHandler.UploadImage)
			secured.DELETE("/settings/gallery", settingsHandler.DeleteImage)

			// ------------------------------
			// TESOURINHA
			// ------------------------------
			secured.GET("/tesourinha", tesourinhaHandler.List)
			secured.POST("/tesourinha", tesourinhaHandler.Create)
			secured.DELETE("/tesourinha/:id", tesourinhaHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

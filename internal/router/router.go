// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/miaucode/licencias-backend/internal/config"
	"github.com/miaucode/licencias-backend/internal/handlers"
	"github.com/miaucode/licencias-backend/internal/middleware"
	"github.com/miaucode/licencias-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	licenciaService := services.NewLicenciaService(db, cfg.Business)
	servicioService := services.NewServicioService(db)
	usuarioService := services.NewUsuarioService(db)
	ledgerService := services.NewLedgerService(db)
	dashboardService := services.NewDashboardService(db)
	exportService := services.NewExportService(db)

	// Initialize handlers
	licenciaHandler := handlers.NewLicenciaHandler(licenciaService)
	servicioHandler := handlers.NewServicioHandler(servicioService)
	usuarioHandler := handlers.NewUsuarioHandler(usuarioService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		licencias := v1.Group("/licencias")
		{
			licencias.GET("", licenciaHandler.List)
			licencias.GET("/vencen-hoy", licenciaHandler.ListVencenHoy)
			licencias.GET("/vencen-manana", licenciaHandler.ListVencenManana)
			licencias.GET("/:id", licenciaHandler.Get)
			licencias.POST("", licenciaHandler.Create)
			licencias.POST("/:id/renovar", licenciaHandler.Renew)
			licencias.PUT("/:id", licenciaHandler.Update)
			licencias.DELETE("/:id", licenciaHandler.Delete)
		}

		servicios := v1.Group("/servicios")
		{
			servicios.GET("", servicioHandler.List)
			servicios.GET("/:id", servicioHandler.Get)
			servicios.POST("", servicioHandler.Create)
			servicios.PUT("/:id", servicioHandler.Update)
			servicios.DELETE("/:id", servicioHandler.Delete)
		}

		usuarios := v1.Group("/usuarios")
		{
			usuarios.GET("", usuarioHandler.List)
			usuarios.GET("/:id", usuarioHandler.Get)
			usuarios.POST("", usuarioHandler.Create)
			usuarios.PUT("/:id", usuarioHandler.Update)
			usuarios.DELETE("/:id", usuarioHandler.Delete)
		}

		ingresos := v1.Group("/ingresos")
		{
			ingresos.GET("", ledgerHandler.ListIngresos)
			ingresos.POST("", ledgerHandler.CreateIngreso)
		}

		egresos := v1.Group("/egresos")
		{
			egresos.GET("", ledgerHandler.ListEgresos)
			egresos.POST("", ledgerHandler.CreateEgreso)
		}

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardHandler.GetStats)
		}

		export := v1.Group("/export")
		export.Use(middleware.ExportRateLimit())
		{
			export.GET("/:recurso", exportHandler.Export)
		}
	}

	return r
}

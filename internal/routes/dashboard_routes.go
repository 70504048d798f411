package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sipra-backend/internal/handler"
	"sipra-backend/internal/middleware"
	"sipra-backend/internal/repository"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	asistenciaRepo := repository.NewAsistenciaRepository(db)
	practicanteRepo := repository.NewPracticanteRepository(db)
	hdl := handler.NewDashboardHandler(asistenciaRepo, practicanteRepo)

	api := app.Group("/api/dashboard", middleware.Auth, middleware.Rol("Admin", "Encargado"))
	api.Get("/area/:areaID", hdl.GetStats)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sipra-backend/internal/handler"
	"sipra-backend/internal/middleware"
	"sipra-backend/internal/repository"
)

func SetupPracticanteRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewPracticanteRepository(db)
	hdl := handler.NewPracticanteHandler(repo)

	api := app.Group("/api/practicantes", middleware.Auth, middleware.Rol("Admin", "Encargado"))
	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Crear)
	// La ruta por área va antes que :id para que "area" no se tome como ID
	api.Get("/area/:areaID", hdl.GetPorArea)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Actualizar)
}

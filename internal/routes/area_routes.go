package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sipra-backend/internal/handler"
	"sipra-backend/internal/middleware"
	"sipra-backend/internal/repository"
)

func SetupAreaRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewAreaRepository(db)
	hdl := handler.NewAreaHandler(repo)

	api := app.Group("/api/admin/areas", middleware.Auth, middleware.Rol("Admin"))
	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Crear)
	api.Put("/:id", hdl.Actualizar)
	api.Delete("/:id", hdl.Eliminar)
}

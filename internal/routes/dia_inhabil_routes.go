package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sipra-backend/internal/handler"
	"sipra-backend/internal/middleware"
	"sipra-backend/internal/repository"
)

func SetupDiaInhabilRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewDiaInhabilRepository(db)
	hdl := handler.NewDiaInhabilHandler(repo)

	api := app.Group("/api/admin/dias-inhabiles", middleware.Auth, middleware.Rol("Admin"))
	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Crear)
	api.Delete("/:id", hdl.Eliminar)
}

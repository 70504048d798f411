package routes

import (
	"github.com/gofiber/fiber/v2"

	"sipra-backend/internal/catalogo"
	"sipra-backend/internal/handler"
	"sipra-backend/internal/middleware"
)

func SetupTurnoRoutes(app *fiber.App, turnos *catalogo.Catalogo) {
	hdl := handler.NewTurnoHandler(turnos)

	api := app.Group("/api/turnos", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sipra-backend/internal/handler"
	"sipra-backend/internal/repository"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUsuarioRepository(db)
	hdl := handler.NewAuthHandler(repo)

	app.Post("/api/login", hdl.Login)
}

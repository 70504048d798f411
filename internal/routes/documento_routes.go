package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sipra-backend/internal/handler"
	"sipra-backend/internal/middleware"
	"sipra-backend/internal/repository"
	"sipra-backend/internal/service"
)

func SetupDocumentoRoutes(app *fiber.App, db *gorm.DB, logger *zap.Logger, zona *time.Location) {
	documentoRepo := repository.NewDocumentoRepository(db)
	practicanteRepo := repository.NewPracticanteRepository(db)
	svc := service.NewDocumentoService(practicanteRepo, documentoRepo, logger, zona)
	hdl := handler.NewDocumentoHandler(documentoRepo, svc)

	api := app.Group("/api/documentos", middleware.Auth)
	api.Post("/", hdl.Subir)
	api.Get("/practicante/:practicanteID", hdl.GetPorPracticante)
	api.Get("/:id/descargar", hdl.Descargar)
	api.Post("/constancia/:practicanteID", middleware.Rol("Admin", "Encargado"), hdl.GenerarConstancia)
}

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

func SetupReporteRoutes(app *fiber.App, db *gorm.DB, logger *zap.Logger, zona *time.Location) {
	asistenciaRepo := repository.NewAsistenciaRepository(db)
	practicanteRepo := repository.NewPracticanteRepository(db)
	diaInhabilRepo := repository.NewDiaInhabilRepository(db)
	svc := service.NewReporteService(asistenciaRepo, practicanteRepo, diaInhabilRepo, logger, zona)
	hdl := handler.NewReporteHandler(svc)

	api := app.Group("/api/reportes", middleware.Auth, middleware.Rol("Admin", "Encargado"))
	api.Get("/area/:areaID", hdl.GetMensual)
	api.Get("/area/:areaID/excel", hdl.ExportarExcel)
}

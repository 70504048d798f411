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

func SetupSolicitudRoutes(app *fiber.App, db *gorm.DB, logger *zap.Logger, zona *time.Location) {
	solicitudRepo := repository.NewSolicitudRepository(db)
	practicanteRepo := repository.NewPracticanteRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	documentoRepo := repository.NewDocumentoRepository(db)

	documentoSvc := service.NewDocumentoService(practicanteRepo, documentoRepo, logger, zona)
	svc := service.NewSolicitudService(solicitudRepo, practicanteRepo, usuarioRepo, documentoSvc, logger)
	hdl := handler.NewSolicitudHandler(solicitudRepo, svc)

	// El alta de solicitudes es pública; la revisión es de coordinación
	app.Post("/api/solicitudes", hdl.Crear)

	api := app.Group("/api/admin/solicitudes", middleware.Auth, middleware.Rol("Admin", "Encargado"))
	api.Get("/pendientes", hdl.GetPendientes)
	api.Post("/:id/aprobar", hdl.Aprobar)
	api.Post("/:id/rechazar", hdl.Rechazar)
}

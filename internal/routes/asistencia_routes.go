package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sipra-backend/internal/catalogo"
	"sipra-backend/internal/handler"
	"sipra-backend/internal/middleware"
	"sipra-backend/internal/repository"
	"sipra-backend/internal/service"
)

func SetupAsistenciaRoutes(app *fiber.App, db *gorm.DB, turnos *catalogo.Catalogo, logger *zap.Logger, zona *time.Location) {
	asistenciaRepo := repository.NewAsistenciaRepository(db)
	practicanteRepo := repository.NewPracticanteRepository(db)
	svc := service.NewAsistenciaService(asistenciaRepo, practicanteRepo, turnos, logger, zona)
	hdl := handler.NewAsistenciaHandler(svc)

	api := app.Group("/api/asistencia", middleware.Auth)

	api.Post("/entrada", hdl.RegistrarEntrada)
	api.Post("/salida", hdl.RegistrarSalida)
	api.Post("/pausa/iniciar", hdl.IniciarPausa)
	api.Post("/pausa/finalizar", hdl.FinalizarPausa)
	api.Get("/hoy/:practicanteID", hdl.GetHoy)
	api.Get("/area/:areaID", middleware.Rol("Admin", "Encargado"), hdl.ListarPorArea)
}

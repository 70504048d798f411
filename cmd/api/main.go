package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"sipra-backend/config"
	"sipra-backend/internal/catalogo"
	"sipra-backend/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Aviso: no se encontró .env, se usan las variables de entorno del sistema")
	}

	zapLogger, err := config.NuevoLogger()
	if err != nil {
		panic(err)
	}
	defer zapLogger.Sync()

	// La zona horaria y el catálogo de turnos se fijan una vez y no cambian
	// durante la vida del proceso.
	zona := config.CargarZonaHoraria()
	turnos := catalogo.PorDefecto()

	config.ConnectDB()

	app := fiber.New()

	// Middleware global
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logger.New())

	// Documentos generados y expedientes subidos
	app.Static("/uploads", "./uploads")

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupAsistenciaRoutes(app, config.DB, turnos, zapLogger, zona)
	routes.SetupTurnoRoutes(app, turnos)
	routes.SetupPracticanteRoutes(app, config.DB)
	routes.SetupAreaRoutes(app, config.DB)
	routes.SetupSolicitudRoutes(app, config.DB, zapLogger, zona)
	routes.SetupDocumentoRoutes(app, config.DB, zapLogger, zona)
	routes.SetupReporteRoutes(app, config.DB, zapLogger, zona)
	routes.SetupDashboardRoutes(app, config.DB)
	routes.SetupDiaInhabilRoutes(app, config.DB)

	puerto := config.GetEnv("PUERTO", "3000")
	zapLogger.Info("Servidor listo en el puerto :" + puerto)
	app.Listen(":" + puerto)
}

package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"sipra-backend/config"
	"sipra-backend/internal/repository"
)

type DashboardHandler struct {
	asistencias  repository.AsistenciaRepository
	practicantes repository.PracticanteRepository
}

func NewDashboardHandler(asistencias repository.AsistenciaRepository, practicantes repository.PracticanteRepository) *DashboardHandler {
	return &DashboardHandler{asistencias: asistencias, practicantes: practicantes}
}

// GetStats regresa el panorama del día para un área: practicantes activos,
// cuántos ya registraron entrada y cuántos están en pausa.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	areaID, _ := strconv.Atoi(c.Params("areaID"))
	hoy := time.Now().In(config.Zona).Format("2006-01-02")

	activos, err := h.practicantes.ContarActivosPorArea(c.Context(), uint(areaID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener las estadísticas"})
	}

	presentes, err := h.asistencias.ContarEntradasDeFecha(c.Context(), uint(areaID), hoy)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener las estadísticas"})
	}

	enPausa, err := h.asistencias.ContarPausasAbiertasDeFecha(c.Context(), uint(areaID), hoy)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener las estadísticas"})
	}

	return c.JSON(fiber.Map{
		"message": "Estadísticas del día",
		"data": fiber.Map{
			"fecha":          hoy,
			"activos":        activos,
			"presentes":      presentes,
			"en_pausa":       enPausa,
			"sin_registrar":  activos - presentes,
		},
	})
}

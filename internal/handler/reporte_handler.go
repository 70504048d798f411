package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"sipra-backend/internal/service"
)

type ReporteHandler struct {
	svc service.ReporteService
}

func NewReporteHandler(svc service.ReporteService) *ReporteHandler {
	return &ReporteHandler{svc: svc}
}

func (h *ReporteHandler) GetMensual(c *fiber.Ctx) error {
	areaID, _ := strconv.Atoi(c.Params("areaID"))
	mes := c.Query("mes")
	anio := c.Query("anio")

	// Normalizar mes a dos dígitos
	if len(mes) == 1 {
		mes = "0" + mes
	}
	if mes == "" || anio == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Los parámetros mes y año son obligatorios"})
	}

	reporte, err := h.svc.ReporteMensual(c.Context(), uint(areaID), mes, anio)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Reporte generado", "data": reporte})
}

func (h *ReporteHandler) ExportarExcel(c *fiber.Ctx) error {
	areaID, _ := strconv.Atoi(c.Params("areaID"))
	mes := c.Query("mes")
	anio := c.Query("anio")

	if len(mes) == 1 {
		mes = "0" + mes
	}
	if mes == "" || anio == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Los parámetros mes y año son obligatorios"})
	}

	buf, nombre, err := h.svc.ExportarExcel(c.Context(), uint(areaID), mes, anio)
	if err != nil {
		return responderError(c, err)
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nombre))
	return c.Send(buf.Bytes())
}

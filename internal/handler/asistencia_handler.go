package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"sipra-backend/internal/service"
)

type AsistenciaHandler struct {
	svc service.AsistenciaService
}

func NewAsistenciaHandler(svc service.AsistenciaService) *AsistenciaHandler {
	return &AsistenciaHandler{svc: svc}
}

type EntradaRequest struct {
	PracticanteID uint    `json:"practicante_id" validate:"required,gt=0"`
	TurnoID       uint    `json:"turno_id" validate:"required,gt=0"`
	HoraEntrada   *string `json:"hora_entrada"`
}

func (h *AsistenciaHandler) RegistrarEntrada(c *fiber.Ctx) error {
	var req EntradaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Datos no válidos"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "practicante_id y turno_id son obligatorios y positivos"})
	}

	resultado, err := h.svc.RegistrarEntrada(c.Context(), req.PracticanteID, req.TurnoID, req.HoraEntrada)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Entrada registrada",
		"data":    resultado,
	})
}

type SalidaRequest struct {
	PracticanteID uint    `json:"practicante_id" validate:"required,gt=0"`
	HoraSalida    *string `json:"hora_salida"`
}

func (h *AsistenciaHandler) RegistrarSalida(c *fiber.Ctx) error {
	var req SalidaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Datos no válidos"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "practicante_id es obligatorio y positivo"})
	}

	resultado, err := h.svc.RegistrarSalida(c.Context(), req.PracticanteID, req.HoraSalida)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Salida registrada",
		"data":    resultado,
	})
}

type IniciarPausaRequest struct {
	AsistenciaID uint    `json:"asistencia_id" validate:"required,gt=0"`
	Motivo       *string `json:"motivo"`
}

func (h *AsistenciaHandler) IniciarPausa(c *fiber.Ctx) error {
	var req IniciarPausaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Datos no válidos"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "asistencia_id es obligatorio y positivo"})
	}

	resultado, err := h.svc.IniciarPausa(c.Context(), req.AsistenciaID, req.Motivo)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Pausa iniciada",
		"data":    resultado,
	})
}

type FinalizarPausaRequest struct {
	PausaID uint `json:"pausa_id" validate:"required,gt=0"`
}

func (h *AsistenciaHandler) FinalizarPausa(c *fiber.Ctx) error {
	var req FinalizarPausaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Datos no válidos"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "pausa_id es obligatorio y positivo"})
	}

	resultado, err := h.svc.FinalizarPausa(c.Context(), req.PausaID)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Pausa finalizada",
		"data":    resultado,
	})
}

func (h *AsistenciaHandler) GetHoy(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("practicanteID"))

	asistencia, err := h.svc.AsistenciaDeHoy(c.Context(), uint(id))
	if err != nil {
		return responderError(c, err)
	}

	// Sin registro no es una falla: el cliente distingue por data null.
	if asistencia == nil {
		return c.JSON(fiber.Map{
			"message": "Sin registro de asistencia hoy",
			"data":    nil,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Registro de asistencia encontrado",
		"data":    asistencia,
	})
}

func (h *AsistenciaHandler) ListarPorArea(c *fiber.Ctx) error {
	areaID, _ := strconv.Atoi(c.Params("areaID"))

	var fecha *string
	if f := c.Query("fecha"); f != "" {
		fecha = &f
	}

	lista, err := h.svc.ListarPorArea(c.Context(), uint(areaID), fecha)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Asistencias del área",
		"data":    lista,
	})
}

package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"sipra-backend/internal/model"
	"sipra-backend/internal/repository"
)

type DiaInhabilHandler struct {
	repo repository.DiaInhabilRepository
}

func NewDiaInhabilHandler(repo repository.DiaInhabilRepository) *DiaInhabilHandler {
	return &DiaInhabilHandler{repo: repo}
}

func (h *DiaInhabilHandler) GetAll(c *fiber.Ctx) error {
	dias, err := h.repo.GetAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener los días inhábiles"})
	}
	return c.JSON(fiber.Map{"data": dias})
}

type DiaInhabilRequest struct {
	Fecha       string `json:"fecha" validate:"required,datetime=2006-01-02"`
	Descripcion string `json:"descripcion"`
}

func (h *DiaInhabilHandler) Crear(c *fiber.Ctx) error {
	var req DiaInhabilRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Datos no válidos"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "La fecha es obligatoria con formato YYYY-MM-DD"})
	}

	dia := model.DiaInhabil{Fecha: req.Fecha, Descripcion: req.Descripcion}
	if err := h.repo.Crear(c.Context(), &dia); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo guardar el día inhábil"})
	}
	return c.JSON(fiber.Map{"message": "Día inhábil agregado", "data": dia})
}

func (h *DiaInhabilHandler) Eliminar(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Eliminar(c.Context(), uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo eliminar el día inhábil"})
	}
	return c.JSON(fiber.Map{"message": "Día inhábil eliminado"})
}

package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"sipra-backend/internal/model"
	"sipra-backend/internal/repository"
)

type AreaHandler struct {
	repo repository.AreaRepository
}

func NewAreaHandler(repo repository.AreaRepository) *AreaHandler {
	return &AreaHandler{repo: repo}
}

func (h *AreaHandler) GetAll(c *fiber.Ctx) error {
	areas, err := h.repo.GetAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener las áreas"})
	}
	return c.JSON(fiber.Map{"data": areas})
}

func (h *AreaHandler) Crear(c *fiber.Ctx) error {
	var area model.Area
	if err := c.BodyParser(&area); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Datos no válidos"})
	}

	if err := h.repo.Crear(c.Context(), &area); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo crear el área"})
	}
	return c.JSON(fiber.Map{"message": "Área creada", "data": area})
}

func (h *AreaHandler) Actualizar(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.Area
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Datos no válidos"})
	}

	area, err := h.repo.GetByID(c.Context(), uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Área no encontrada"})
	}

	area.NombreArea = req.NombreArea
	area.Responsable = req.Responsable

	if err := h.repo.Actualizar(c.Context(), area); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo actualizar el área"})
	}
	return c.JSON(fiber.Map{"message": "Área actualizada", "data": area})
}

func (h *AreaHandler) Eliminar(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Eliminar(c.Context(), uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo eliminar el área"})
	}
	return c.JSON(fiber.Map{"message": "Área eliminada"})
}

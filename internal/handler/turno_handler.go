package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"sipra-backend/internal/catalogo"
)

type TurnoHandler struct {
	turnos *catalogo.Catalogo
}

func NewTurnoHandler(turnos *catalogo.Catalogo) *TurnoHandler {
	return &TurnoHandler{turnos: turnos}
}

func (h *TurnoHandler) GetAll(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.turnos.Lista()})
}

func (h *TurnoHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	turno, err := h.turnos.Obtener(uint(id))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"data": turno})
}

package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"sipra-backend/internal/model"
	"sipra-backend/internal/repository"
	"sipra-backend/internal/service"
)

type SolicitudHandler struct {
	repo repository.SolicitudRepository
	svc  service.SolicitudService
}

func NewSolicitudHandler(repo repository.SolicitudRepository, svc service.SolicitudService) *SolicitudHandler {
	return &SolicitudHandler{repo: repo, svc: svc}
}

type SolicitudRequest struct {
	AreaID       uint   `json:"area_id" validate:"required,gt=0"`
	Nombre       string `json:"nombre" validate:"required"`
	Matricula    string `json:"matricula" validate:"required"`
	Carrera      string `json:"carrera"`
	Universidad  string `json:"universidad"`
	Email        string `json:"email" validate:"required,email"`
	Telefono     string `json:"telefono"`
	FechaEntrada string `json:"fecha_entrada" validate:"required,datetime=2006-01-02"`
	FechaTermino string `json:"fecha_termino" validate:"omitempty,datetime=2006-01-02"`
}

// Crear recibe la solicitud de un aspirante. Es el único endpoint público
// del módulo; el resto es para el personal del programa.
func (h *SolicitudHandler) Crear(c *fiber.Ctx) error {
	var req SolicitudRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Datos no válidos"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Faltan campos obligatorios o las fechas no tienen formato YYYY-MM-DD"})
	}

	pendiente, err := h.repo.ExistePendientePorMatricula(c.Context(), req.Matricula)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo validar la solicitud"})
	}
	if pendiente {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Ya hay una solicitud pendiente con esa matrícula"})
	}

	solicitud := model.Solicitud{
		AreaID:       req.AreaID,
		Nombre:       req.Nombre,
		Matricula:    req.Matricula,
		Carrera:      req.Carrera,
		Universidad:  req.Universidad,
		Email:        req.Email,
		Telefono:     req.Telefono,
		FechaEntrada: req.FechaEntrada,
		FechaTermino: req.FechaTermino,
		Estado:       "PENDIENTE",
	}
	if err := h.repo.Crear(c.Context(), &solicitud); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo registrar la solicitud"})
	}

	return c.JSON(fiber.Map{"message": "Solicitud recibida; será revisada por la coordinación", "data": solicitud})
}

func (h *SolicitudHandler) GetPendientes(c *fiber.Ctx) error {
	lista, err := h.repo.ListarPorEstado(c.Context(), "PENDIENTE")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener las solicitudes"})
	}
	return c.JSON(fiber.Map{"data": lista})
}

func (h *SolicitudHandler) Aprobar(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	practicante, err := h.svc.Aprobar(c.Context(), uint(id))
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Solicitud aprobada; se envió la carta de aceptación",
		"data":    practicante,
	})
}

type RechazoRequest struct {
	Motivo string `json:"motivo" validate:"required"`
}

func (h *SolicitudHandler) Rechazar(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req RechazoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Datos no válidos"})
	}

	if err := h.svc.Rechazar(c.Context(), uint(id), req.Motivo); err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Solicitud rechazada"})
}

package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"sipra-backend/internal/model"
	"sipra-backend/internal/repository"
)

type PracticanteHandler struct {
	repo repository.PracticanteRepository
}

func NewPracticanteHandler(repo repository.PracticanteRepository) *PracticanteHandler {
	return &PracticanteHandler{repo: repo}
}

type RegistroPracticanteRequest struct {
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

func (h *PracticanteHandler) Crear(c *fiber.Ctx) error {
	var req RegistroPracticanteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Datos no válidos"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Faltan campos obligatorios o las fechas no tienen formato YYYY-MM-DD"})
	}

	practicante := model.Practicante{
		AreaID:       req.AreaID,
		Nombre:       req.Nombre,
		Matricula:    req.Matricula,
		Carrera:      req.Carrera,
		Universidad:  req.Universidad,
		Email:        req.Email,
		Telefono:     req.Telefono,
		FechaEntrada: req.FechaEntrada,
		FechaTermino: req.FechaTermino,
		IsActive:     true,
	}
	if err := h.repo.Crear(c.Context(), &practicante); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo registrar al practicante"})
	}

	return c.JSON(fiber.Map{"message": "Practicante registrado", "data": practicante})
}

func (h *PracticanteHandler) GetAll(c *fiber.Ctx) error {
	lista, err := h.repo.ListarActivos(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener los practicantes"})
	}
	return c.JSON(fiber.Map{"data": lista})
}

func (h *PracticanteHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	practicante, err := h.repo.ObtenerPorID(c.Context(), uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Practicante no encontrado"})
	}
	return c.JSON(fiber.Map{"data": practicante})
}

func (h *PracticanteHandler) GetPorArea(c *fiber.Ctx) error {
	areaID, _ := strconv.Atoi(c.Params("areaID"))

	lista, err := h.repo.ListarPorArea(c.Context(), uint(areaID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener los practicantes del área"})
	}
	return c.JSON(fiber.Map{"data": lista})
}

type ActualizarPracticanteRequest struct {
	Email        string `json:"email"`
	Telefono     string `json:"telefono"`
	FechaTermino string `json:"fecha_termino"`
	IsActive     *bool  `json:"is_active"`
}

func (h *PracticanteHandler) Actualizar(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req ActualizarPracticanteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Datos no válidos"})
	}

	practicante, err := h.repo.ObtenerPorID(c.Context(), uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Practicante no encontrado"})
	}

	// Solo se actualizan los campos permitidos
	if req.Email != "" {
		practicante.Email = req.Email
	}
	if req.Telefono != "" {
		practicante.Telefono = req.Telefono
	}
	if req.FechaTermino != "" {
		practicante.FechaTermino = req.FechaTermino
	}
	if req.IsActive != nil {
		practicante.IsActive = *req.IsActive
	}

	if err := h.repo.Actualizar(c.Context(), practicante); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo actualizar al practicante"})
	}
	return c.JSON(fiber.Map{"message": "Practicante actualizado", "data": practicante})
}

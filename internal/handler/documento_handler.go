package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sipra-backend/internal/model"
	"sipra-backend/internal/repository"
	"sipra-backend/internal/service"
)

type DocumentoHandler struct {
	repo repository.DocumentoRepository
	svc  service.DocumentoService
}

func NewDocumentoHandler(repo repository.DocumentoRepository, svc service.DocumentoService) *DocumentoHandler {
	return &DocumentoHandler{repo: repo, svc: svc}
}

// Subir recibe un documento de expediente (INE, kardex, seguro, etc.) como
// multipart y lo guarda bajo ./uploads/expedientes con nombre único.
func (h *DocumentoHandler) Subir(c *fiber.Ctx) error {
	practicanteID, _ := strconv.Atoi(c.FormValue("practicante_id"))
	if practicanteID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "practicante_id es obligatorio y positivo"})
	}
	tipo := c.FormValue("tipo")
	if tipo == "" {
		tipo = "OTRO"
	}

	file, err := c.FormFile("archivo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "El archivo es obligatorio"})
	}

	uploadDir := "./uploads/expedientes"
	if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
		os.MkdirAll(uploadDir, 0755)
	}

	nombre := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(file.Filename))
	path := filepath.Join(uploadDir, nombre)
	if err := c.SaveFile(file, path); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo guardar el archivo"})
	}

	documento := model.Documento{
		PracticanteID: uint(practicanteID),
		Tipo:          tipo,
		NombreArchivo: filepath.Base(file.Filename),
		Path:          path,
	}
	if err := h.repo.Crear(c.Context(), &documento); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo registrar el documento"})
	}

	return c.JSON(fiber.Map{"message": "Documento recibido", "data": documento})
}

func (h *DocumentoHandler) GetPorPracticante(c *fiber.Ctx) error {
	practicanteID, _ := strconv.Atoi(c.Params("practicanteID"))

	lista, err := h.repo.ListarPorPracticante(c.Context(), uint(practicanteID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener los documentos"})
	}
	return c.JSON(fiber.Map{"data": lista})
}

// GenerarConstancia emite la constancia de término en PDF para una estancia
// concluida y la registra en el expediente.
func (h *DocumentoHandler) GenerarConstancia(c *fiber.Ctx) error {
	practicanteID, _ := strconv.Atoi(c.Params("practicanteID"))

	documento, err := h.svc.GenerarConstancia(c.Context(), uint(practicanteID))
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Constancia generada", "data": documento})
}

func (h *DocumentoHandler) Descargar(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	documento, err := h.repo.ObtenerPorID(c.Context(), uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Documento no encontrado"})
	}
	return c.Download(documento.Path, documento.NombreArchivo)
}

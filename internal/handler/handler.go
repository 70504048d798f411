package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"sipra-backend/internal/apperror"
)

// Instancia compartida del validador para los request structs
var validate = validator.New()

// responderError traduce un error de servicio a la respuesta HTTP. Los
// errores de negocio llevan su código; cualquier otro sale como 500.
func responderError(c *fiber.Ctx, err error) error {
	return c.Status(apperror.CodigoHTTP(err)).JSON(fiber.Map{"error": err.Error()})
}

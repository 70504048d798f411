package middleware

import "github.com/gofiber/fiber/v2"

func Rol(rolesPermitidos ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// El rol viene del contexto (lo puso el middleware Auth)
		rolUsuario, ok := c.Locals("rol").(string)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Acceso denegado: rol no válido"})
		}

		for _, rol := range rolesPermitidos {
			if rol == rolUsuario {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Acceso denegado: no cuenta con el rol requerido"})
	}
}

package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"sipra-backend/config"
	"sipra-backend/internal/repository"
)

type AuthHandler struct {
	repo repository.UsuarioRepository
}

func NewAuthHandler(repo repository.UsuarioRepository) *AuthHandler {
	return &AuthHandler{repo: repo}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de datos incorrecto"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Correo y contraseña son obligatorios"})
	}

	// 1. Buscar usuario por correo
	usuario, err := h.repo.BuscarPorEmail(c.Context(), req.Email)
	if err != nil || !usuario.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Correo o contraseña incorrectos"})
	}

	// 2. Comparar contraseña contra el hash almacenado
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Correo o contraseña incorrectos"})
	}

	// 3. Generar el token de sesión
	claims := jwt.MapClaims{
		"user_id": usuario.ID,
		"rol":     usuario.Rol,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	if usuario.PracticanteID != nil {
		claims["practicante_id"] = *usuario.PracticanteID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	firmado, err := token.SignedString(config.JWTSecret())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo generar el token"})
	}

	return c.JSON(fiber.Map{
		"message": "Inicio de sesión correcto",
		"token":   firmado,
		"data": fiber.Map{
			"nombre": usuario.Nombre,
			"email":  usuario.Email,
			"rol":    usuario.Rol,
		},
	})
}

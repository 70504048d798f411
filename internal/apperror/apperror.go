// Package apperror define los tipos de error de negocio que las capas de
// servicio regresan y que los handlers traducen a códigos HTTP. Cada error
// lleva un mensaje que identifica la regla violada, listo para mostrarse
// al usuario tal cual.
package apperror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Tipo string

const (
	TipoValidacion   Tipo = "VALIDACION"    // entrada mal formada o faltante
	TipoReglaNegocio Tipo = "REGLA_NEGOCIO" // la operación viola una regla del dominio
	TipoConflicto    Tipo = "CONFLICTO"     // el estado actual no permite la operación
	TipoNoEncontrado Tipo = "NO_ENCONTRADO" // el recurso referido no existe
)

type Error struct {
	Tipo    Tipo   `json:"tipo"`
	Mensaje string `json:"mensaje"`
}

func (e *Error) Error() string {
	return e.Mensaje
}

func Validacion(mensaje string) *Error {
	return &Error{Tipo: TipoValidacion, Mensaje: mensaje}
}

func ReglaNegocio(mensaje string) *Error {
	return &Error{Tipo: TipoReglaNegocio, Mensaje: mensaje}
}

func Conflicto(mensaje string) *Error {
	return &Error{Tipo: TipoConflicto, Mensaje: mensaje}
}

func NoEncontrado(mensaje string) *Error {
	return &Error{Tipo: TipoNoEncontrado, Mensaje: mensaje}
}

// Es reporta si err es un *Error del tipo dado.
func Es(err error, tipo Tipo) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Tipo == tipo
	}
	return false
}

// CodigoHTTP mapea el tipo de error a su código HTTP. Errores que no son
// de negocio (fallas de almacenamiento, etc.) salen como 500.
func CodigoHTTP(err error) int {
	var ae *Error
	if !errors.As(err, &ae) {
		return fiber.StatusInternalServerError
	}
	switch ae.Tipo {
	case TipoValidacion:
		return fiber.StatusBadRequest
	case TipoReglaNegocio:
		return fiber.StatusUnprocessableEntity
	case TipoConflicto:
		return fiber.StatusConflict
	case TipoNoEncontrado:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

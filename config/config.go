package config

import (
	"os"
	"strconv"
	"time"
)

// Zona horaria única del sistema. Se fija una sola vez al arrancar y todas
// las horas de asistencia se interpretan en ella.
var Zona *time.Location

// Helper para leer variables de entorno con valor por defecto
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper para leer variables de entorno como entero con valor por defecto
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// CargarZonaHoraria fija la zona horaria del proceso desde ZONA_HORARIA.
// Si la zona configurada no existe se usa la local del sistema.
func CargarZonaHoraria() *time.Location {
	nombre := GetEnv("ZONA_HORARIA", "America/Mexico_City")
	zona, err := time.LoadLocation(nombre)
	if err != nil {
		zona = time.Local
	}
	Zona = zona
	return zona
}

// JWTSecret regresa la llave para firmar los tokens de sesión.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "sipra-secreto-dev"))
}

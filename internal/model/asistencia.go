package model

import "gorm.io/gorm"

// Asistencia es el registro de entrada/salida de un practicante para un
// turno en una fecha. El índice único compuesto garantiza a lo más un
// registro por (practicante, fecha, turno) aun con peticiones simultáneas:
// el segundo insert falla en la base y el servicio lo traduce a conflicto.
type Asistencia struct {
	gorm.Model
	PracticanteID uint    `json:"practicante_id" gorm:"uniqueIndex:idx_asistencia_unica;not null"`
	Fecha         string  `json:"fecha" gorm:"uniqueIndex:idx_asistencia_unica;not null"` // YYYY-MM-DD
	TurnoID       uint    `json:"turno_id" gorm:"uniqueIndex:idx_asistencia_unica;not null"`
	HoraEntrada   string  `json:"hora_entrada"`         // HH:MM:SS, ya ajustada al turno
	HoraSalida    *string `json:"hora_salida"`          // null mientras no se registre la salida
	Pausas        []Pausa `json:"pausas"`
}

// Pausa es un descanso dentro de un registro de asistencia abierto.
// A lo más una pausa abierta (HoraFin null) por asistencia.
type Pausa struct {
	gorm.Model
	AsistenciaID uint    `json:"asistencia_id" gorm:"not null"`
	HoraInicio   string  `json:"hora_inicio"`
	HoraFin      *string `json:"hora_fin"`
	Motivo       *string `json:"motivo"` // opcional, 3-500 caracteres si viene
}

package model

import "gorm.io/gorm"

// Solicitud de incorporación al programa de prácticas. Al aprobarse se crea
// el practicante, sus credenciales de acceso y se envía la carta de
// aceptación por correo.
type Solicitud struct {
	gorm.Model
	AreaID        uint   `json:"area_id"`
	Nombre        string `json:"nombre"`
	Matricula     string `json:"matricula" gorm:"not null"`
	Carrera       string `json:"carrera"`
	Universidad   string `json:"universidad"`
	Email         string `json:"email" gorm:"not null"`
	Telefono      string `json:"telefono"`
	FechaEntrada  string `json:"fecha_entrada"` // inicio propuesto de la estancia
	FechaTermino  string `json:"fecha_termino"`
	Estado        string `json:"estado" gorm:"default:'PENDIENTE'"` // PENDIENTE/APROBADA/RECHAZADA
	MotivoRechazo string `json:"motivo_rechazo"`
	PathCarta     string `json:"path_carta"` // carta de aceptación generada

	Area Area `json:"area" gorm:"foreignKey:AreaID"`
}

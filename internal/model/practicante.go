package model

import "gorm.io/gorm"

type Practicante struct {
	gorm.Model
	AreaID       uint   `json:"area_id"`
	Nombre       string `json:"nombre"`
	Matricula    string `json:"matricula" gorm:"column:matricula;unique;not null"`
	Carrera      string `json:"carrera"`
	Universidad  string `json:"universidad"`
	Email        string `json:"email"`
	Telefono     string `json:"telefono"`
	FechaEntrada string `json:"fecha_entrada"` // inicio de la estancia, formato YYYY-MM-DD
	FechaTermino string `json:"fecha_termino"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`

	// Relaciones
	Area        Area         `json:"area" gorm:"foreignKey:AreaID"`
	Asistencias []Asistencia `json:"asistencias"`
	Documentos  []Documento  `json:"documentos"`
}

package model

import "gorm.io/gorm"

type Documento struct {
	gorm.Model
	PracticanteID uint   `json:"practicante_id" gorm:"not null"`
	Tipo          string `json:"tipo"` // INE/KARDEX/SEGURO/CARTA_ACEPTACION/CONSTANCIA/OTRO
	NombreArchivo string `json:"nombre_archivo"`
	Path          string `json:"path"`
}

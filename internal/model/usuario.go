package model

import "gorm.io/gorm"

type Usuario struct {
	gorm.Model
	PracticanteID *uint  `json:"practicante_id"` // null para usuarios administrativos
	Nombre        string `json:"nombre"`
	Email         string `json:"email" gorm:"unique;not null"`
	Password      string `json:"-"`
	Rol           string `json:"rol" gorm:"default:'Practicante'"` // Admin / Encargado / Practicante
	IsActive      bool   `json:"is_active" gorm:"default:true"`
}

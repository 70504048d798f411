package model

import "gorm.io/gorm"

type Area struct {
	gorm.Model
	NombreArea   string        `json:"nombre_area" gorm:"unique;not null"`
	Responsable  string        `json:"responsable"`
	Practicantes []Practicante `json:"practicantes"`
}

type DiaInhabil struct {
	gorm.Model
	Fecha       string `json:"fecha" gorm:"unique;not null"` // Formato YYYY-MM-DD
	Descripcion string `json:"descripcion"`
}

package database

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sipra-backend/internal/model"
)

// SeedAll carga los datos mínimos para operar: áreas, el usuario
// administrador y un par de practicantes de prueba.
func SeedAll(db *gorm.DB) {
	seedAreas(db)
	seedAdmin(db)
	seedPracticantes(db)
}

func seedAreas(db *gorm.DB) {
	areas := []model.Area{
		{NombreArea: "Sistemas", Responsable: "Coordinación de Sistemas"},
		{NombreArea: "Recursos Humanos", Responsable: "Coordinación de RH"},
		{NombreArea: "Comunicación", Responsable: "Coordinación de Comunicación"},
	}
	for _, area := range areas {
		db.Where(model.Area{NombreArea: area.NombreArea}).FirstOrCreate(&area)
	}
	fmt.Println("Áreas listas")
}

func seedAdmin(db *gorm.DB) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Println("No se pudo generar el hash del admin:", err)
		return
	}

	admin := model.Usuario{
		Nombre:   "Administrador",
		Email:    "admin@sipra.local",
		Password: string(hash),
		Rol:      "Admin",
		IsActive: true,
	}
	db.Where(model.Usuario{Email: admin.Email}).FirstOrCreate(&admin)
	fmt.Println("Usuario admin listo (admin@sipra.local / admin123)")
}

func seedPracticantes(db *gorm.DB) {
	var area model.Area
	if err := db.Where("nombre_area = ?", "Sistemas").First(&area).Error; err != nil {
		return
	}

	ayer := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	fin := time.Now().AddDate(0, 6, 0).Format("2006-01-02")

	practicantes := []model.Practicante{
		{AreaID: area.ID, Nombre: "Ana Torres", Matricula: "A0001", Carrera: "Ing. en Sistemas", Universidad: "UT", Email: "ana@correo.local", FechaEntrada: ayer, FechaTermino: fin, IsActive: true},
		{AreaID: area.ID, Nombre: "Luis Mena", Matricula: "A0002", Carrera: "Ing. Industrial", Universidad: "UT", Email: "luis@correo.local", FechaEntrada: ayer, FechaTermino: fin, IsActive: true},
	}
	for _, p := range practicantes {
		db.Where(model.Practicante{Matricula: p.Matricula}).FirstOrCreate(&p)
	}
	fmt.Println("Practicantes de prueba listos")
}

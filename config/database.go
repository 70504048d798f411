package config

import (
	"fmt"

	"sipra-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Formato: user:password@tcp(host:puerto)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASS", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "sipra_db"),
	)

	// TranslateError para que un insert duplicado salga como
	// gorm.ErrDuplicatedKey (lo usa el registro de entrada para detectar
	// dobles registros del mismo turno bajo peticiones concurrentes).
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("No se pudo conectar a la base de datos")
	}

	// Auto Migration: crea las tablas a partir de los structs del modelo
	db.AutoMigrate(&model.Usuario{})
	db.AutoMigrate(&model.Area{})
	db.AutoMigrate(&model.Practicante{})
	db.AutoMigrate(&model.Asistencia{})
	db.AutoMigrate(&model.Pausa{})
	db.AutoMigrate(&model.Solicitud{})
	db.AutoMigrate(&model.Documento{})
	db.AutoMigrate(&model.DiaInhabil{})

	DB = db
}

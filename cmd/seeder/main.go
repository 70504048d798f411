package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"sipra-backend/config"
	"sipra-backend/internal/database"
)

func main() {
	fmt.Println("Iniciando seeding de la base de datos...")

	// Carga manual del .env porque este es un script aparte
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: no se encontró .env, se usan las variables de entorno del sistema")
	}

	config.ConnectDB()

	database.SeedAll(config.DB)

	fmt.Println("Seeding terminado")
}

package main

import (
	"Leafia-Backend/cmd/config"
	migration "Leafia-Backend/cmd/database/migrate"
	"Leafia-Backend/internal/utils"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

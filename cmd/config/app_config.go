package config

import (
	"Leafia-Backend/internal/api/handlers"
	"Leafia-Backend/internal/api/routes"
	"Leafia-Backend/internal/middleware"
	"Leafia-Backend/internal/utils"
	"Leafia-Backend/internal/utils/storage"
	"Leafia-Backend/pkg/auth"
	"Leafia-Backend/pkg/classifier"
	"Leafia-Backend/pkg/disease"
	"Leafia-Backend/pkg/jwt"
	"Leafia-Backend/pkg/plant"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils; the classifier client is built once here and shared by every
	// request for the process lifetime
	s3 := storage.NewAwsS3()
	leafClassifier := classifier.NewHTTPClassifier()

	// Repository
	authRepository := auth.NewAuthRepository(db)
	diseaseRepository := disease.NewDiseaseRepository(db)
	plantRepository := plant.NewPlantRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	authService := auth.NewAuthService(authRepository, jwtService)
	diseaseService := disease.NewDiseaseService(diseaseRepository)
	plantService := plant.NewPlantService(plantRepository, diseaseRepository, leafClassifier, s3)

	// Handler
	authHandler := handlers.NewAuthHandler(authService, validator)
	diseaseHandler := handlers.NewDiseaseHandler(diseaseService, validator)
	plantHandler := handlers.NewPlantHandler(plantService)

	// routes
	routesConfig := routes.Config{
		App:            app,
		DB:             db,
		AuthHandler:    authHandler,
		DiseaseHandler: diseaseHandler,
		PlantHandler:   plantHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

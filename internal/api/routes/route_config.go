package routes

import (
	"Leafia-Backend/internal/api/handlers"
	"Leafia-Backend/internal/middleware"
	"Leafia-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Config struct {
	App            *fiber.App
	DB             *gorm.DB
	AuthHandler    handlers.AuthHandler
	DiseaseHandler handlers.DiseaseHandler
	PlantHandler   handlers.PlantHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Plants()
	c.Diseases()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/auth")
	{
		auth.Post("/signup", c.AuthHandler.Signup)
		auth.Post("/signin", c.AuthHandler.Signin)
	}
}

func (c *Config) Plants() {
	// Submitting a plant works without a credential; listing does not.
	c.App.Post("/upload_plant", c.PlantHandler.UploadPlant)
	c.App.Post("/predict", c.PlantHandler.Predict)
	c.App.Post("/predict_batch", c.PlantHandler.PredictBatch)
	c.App.Get("/get_user_plants", c.Middleware.AuthMiddleware(c.JWTService), c.PlantHandler.GetUserPlants)
}

func (c *Config) Diseases() {
	authed := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Post("/populate_diseases", authed, c.DiseaseHandler.PopulateDiseases)
	c.App.Get("/get_diseases", authed, c.DiseaseHandler.GetDiseases)
	c.App.Put("/update_disease/:id", authed, c.DiseaseHandler.UpdateDisease)
	c.App.Delete("/delete_disease/:id", authed, c.DiseaseHandler.DeleteDisease)
	c.App.Delete("/clear_diseases", authed, c.DiseaseHandler.ClearDiseases)
}

func (c *Config) GuestRoute() {
	c.App.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("Image Classification API is running.")
	})

	c.App.Get("/check_db", c.Middleware.AuthMiddleware(c.JWTService), func(ctx *fiber.Ctx) error {
		tables, err := c.DB.Migrator().GetTables()
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Database connection failed: " + err.Error(),
			})
		}
		if len(tables) == 0 {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No tables found in database",
			})
		}
		return ctx.JSON(fiber.Map{"message": "Tables found", "tables": tables})
	})
}

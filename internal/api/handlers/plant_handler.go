package handlers

import (
	"Leafia-Backend/domain"
	"Leafia-Backend/internal/api/presenters"
	"Leafia-Backend/pkg/plant"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	PlantHandler interface {
		UploadPlant(c *fiber.Ctx) error
		Predict(c *fiber.Ctx) error
		PredictBatch(c *fiber.Ctx) error
		GetUserPlants(c *fiber.Ctx) error
	}

	plantHandler struct {
		plantService plant.PlantService
	}
)

func NewPlantHandler(plantService plant.PlantService) PlantHandler {
	return &plantHandler{plantService: plantService}
}

func (h *plantHandler) UploadPlant(c *fiber.Ctx) error {
	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageNoImagePart, nil)
	}
	if image.Size == 0 || image.Filename == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageNoSelectedImage, nil)
	}

	location := c.FormValue("location", "Unknown")

	res, err := h.plantService.UploadPlant(c.Context(), image, location)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDiseaseNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.ErrDiseaseNotFound.Error(), nil)
		case errors.Is(err, domain.ErrClassificationFailed):
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedClassifyImage, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadPlant, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *plantHandler) Predict(c *fiber.Ctx) error {
	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageNoImagePart, nil)
	}
	if image.Size == 0 || image.Filename == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageNoSelectedImage, nil)
	}

	res, err := h.plantService.Predict(c.Context(), image)
	if err != nil {
		if errors.Is(err, domain.ErrClassificationFailed) {
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedClassifyImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *plantHandler) PredictBatch(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	images := form.File["images"]
	if len(images) == 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageNoImagesUploaded, nil)
	}

	entries, err := h.plantService.PredictBatch(c.Context(), images)
	if err != nil {
		if errors.Is(err, domain.ErrClassificationFailed) {
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedClassifyImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadPlant, err)
	}

	return presenters.SuccessResponse(c, entries, fiber.StatusOK)
}

func (h *plantHandler) GetUserPlants(c *fiber.Ctx) error {
	plants, err := h.plantService.GetUserPlants(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoPlantObservations) {
			return presenters.MessageResponse(c, fiber.StatusNotFound, domain.MessageNoPlantsFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPlants, err)
	}

	return presenters.SuccessResponse(c, plants, fiber.StatusOK)
}

package handlers

import (
	"Leafia-Backend/domain"
	"Leafia-Backend/internal/api/presenters"
	"Leafia-Backend/pkg/disease"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DiseaseHandler interface {
		PopulateDiseases(c *fiber.Ctx) error
		GetDiseases(c *fiber.Ctx) error
		UpdateDisease(c *fiber.Ctx) error
		DeleteDisease(c *fiber.Ctx) error
		ClearDiseases(c *fiber.Ctx) error
	}

	diseaseHandler struct {
		diseaseService disease.DiseaseService
		validator      *validator.Validate
	}
)

func NewDiseaseHandler(diseaseService disease.DiseaseService, validator *validator.Validate) DiseaseHandler {
	return &diseaseHandler{
		diseaseService: diseaseService,
		validator:      validator,
	}
}

// PopulateDiseases seeds the catalog. The body may carry a JSON array of
// entries; an empty body seeds the built-in starter catalog.
func (h *diseaseHandler) PopulateDiseases(c *fiber.Ctx) error {
	var req []domain.DiseaseSeedRequest

	if len(c.Body()) > 0 {
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
		for _, seed := range req {
			if err := h.validator.Struct(seed); err != nil {
				return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPopulateDiseases, err)
			}
		}
	}

	if err := h.diseaseService.PopulateDiseases(c.Context(), req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedPopulateDiseases, err)
	}

	return presenters.MessageResponse(c, fiber.StatusCreated, domain.MessageSuccessPopulateDiseases)
}

func (h *diseaseHandler) GetDiseases(c *fiber.Ctx) error {
	diseases, err := h.diseaseService.GetDiseases(c.Context())
	if err != nil {
		// An empty catalog answers 404, not an empty array.
		if errors.Is(err, domain.ErrNoDiseases) {
			return presenters.MessageResponse(c, fiber.StatusNotFound, domain.MessageNoDiseasesFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDiseases, err)
	}

	return presenters.SuccessResponse(c, diseases, fiber.StatusOK)
}

func (h *diseaseHandler) UpdateDisease(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDisease, err)
	}

	req := new(domain.UpdateDiseaseRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDisease, err)
	}

	if err := h.diseaseService.UpdateDisease(c.Context(), uint(id), *req); err != nil {
		if errors.Is(err, domain.ErrDiseaseNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateDisease, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateDisease, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessUpdateDisease)
}

func (h *diseaseHandler) DeleteDisease(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteDisease, err)
	}

	if err := h.diseaseService.DeleteDisease(c.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrDiseaseNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteDisease, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteDisease, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessDeleteDisease)
}

func (h *diseaseHandler) ClearDiseases(c *fiber.Ctx) error {
	if err := h.diseaseService.ClearDiseases(c.Context()); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedClearDiseases, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessClearDiseases)
}

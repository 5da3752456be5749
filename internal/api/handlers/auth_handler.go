package handlers

import (
	"Leafia-Backend/domain"
	"Leafia-Backend/internal/api/presenters"
	"Leafia-Backend/pkg/auth"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		Signup(c *fiber.Ctx) error
		Signin(c *fiber.Ctx) error
	}

	authHandler struct {
		authService auth.AuthService
		validator   *validator.Validate
	}
)

func NewAuthHandler(authService auth.AuthService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *authHandler) Signup(c *fiber.Ctx) error {
	req := new(domain.SignupRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSignup, err)
	}

	res, err := h.authService.Signup(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyRegistered) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedSignup, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSignup, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *authHandler) Signin(c *fiber.Ctx) error {
	req := new(domain.SigninRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSignin, err)
	}

	res, err := h.authService.Signin(c.Context(), *req)
	if err != nil {
		// Unknown email and wrong password share one answer on purpose.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSignin, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSignin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

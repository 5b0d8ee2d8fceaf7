package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Dispensario-api/internal/application/auth"
	"github.com/jhoicas/Dispensario-api/internal/application/dto"
	"github.com/jhoicas/Dispensario-api/internal/domain"
	"github.com/jhoicas/Dispensario-api/pkg/logger"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, dispensary"
// @Success      200   {object}  dto.Response
// @Failure      406   {object}  dto.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusNotAcceptable).JSON(dto.Fail("Required: email | password | dispensary"))
	}
	if in.Email == "" || in.Password == "" || in.Dispensary == "" {
		return c.Status(fiber.StatusNotAcceptable).JSON(dto.Fail("Required: email | password | dispensary"))
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusNotAcceptable).JSON(dto.Fail("Password must be at least 8 characters"))
	}
	out, err := h.uc.Register(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusNotAcceptable).JSON(dto.Fail("Email already registered"))
		}
		h.log.Error().Err(err).Msg("register user")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
	}
	return c.JSON(dto.OK(out, "User successfully registered."))
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Response
// @Failure      401   {object}  dto.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusNotAcceptable).JSON(dto.Fail("Required: email | password"))
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusNotAcceptable).JSON(dto.Fail("Required: email | password"))
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Invalid credentials"))
		}
		h.log.Error().Err(err).Msg("login user")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
	}
	return c.JSON(dto.OK(out, "Login successful."))
}

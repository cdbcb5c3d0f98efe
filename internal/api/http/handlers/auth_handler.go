package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fooddelivery-service/internal/api/dto"
	"github.com/spec-kit/fooddelivery-service/internal/service"
	apperrors "github.com/spec-kit/fooddelivery-service/pkg/util"
)

// AuthHandler exposes the issuer's registration and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /auth/registration.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Name == "" || req.Role == "" || req.Password == "" {
		return apperrors.NewValidationError("email, name, role and password are required", nil)
	}

	if _, err := h.auth.Register(c.UserContext(), req.Name, req.Email, req.Role, req.Password); err != nil {
		return err
	}

	return c.Status(http.StatusCreated).
		JSON(dto.NewAPIResponse(http.StatusCreated, "user registered successfully", nil))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password are required", nil)
	}

	user, token, _, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewAPIResponse(http.StatusOK, "login successful", dto.LoginData{
		ID:    user.ID,
		Role:  string(user.Role),
		Token: token,
	}))
}

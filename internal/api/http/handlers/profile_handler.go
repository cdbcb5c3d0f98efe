package handlers

import (
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fooddelivery-service/internal/api/dto"
	"github.com/spec-kit/fooddelivery-service/internal/auth"
	"github.com/spec-kit/fooddelivery-service/internal/domain"
	"github.com/spec-kit/fooddelivery-service/internal/service"
	apperrors "github.com/spec-kit/fooddelivery-service/pkg/util"
)

// ProfileHandler exposes profile endpoints on the verifying service. Every
// route assumes the auth middleware already populated the principal.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profileService}
}

// UpsertBasicData handles PUT /profile/basic.
func (h *ProfileHandler) UpsertBasicData(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.BasicDataRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	profile, err := h.profiles.UpsertBasicData(c.UserContext(), principal.UserID, principal.Email, principal.Role, service.BasicDataInput{
		FullName:    req.FullName,
		Phone:       req.Phone,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).
		JSON(dto.NewAPIResponse(http.StatusCreated, "profile data saved successfully", toBasicResponse(profile)))
}

// GetBasicData handles GET /profile/basic.
func (h *ProfileHandler) GetBasicData(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	profile, err := h.profiles.GetProfile(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAPIResponse(http.StatusOK, "profile data", toBasicResponse(profile)))
}

// UpdateAddress handles PUT /profile/address.
func (h *ProfileHandler) UpdateAddress(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	err := h.profiles.UpdateAddress(c.UserContext(), principal.UserID, service.AddressInput{
		Country:         req.Country,
		City:            req.City,
		Area:            req.Area,
		Street:          req.Street,
		BuildingNumber:  req.BuildingNumber,
		ApartmentNumber: req.ApartmentNumber,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAPIResponse(http.StatusOK, "address updated successfully", nil))
}

// GetAddress handles GET /profile/address.
func (h *ProfileHandler) GetAddress(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	profile, err := h.profiles.GetProfile(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAPIResponse(http.StatusOK, "address data", dto.AddressResponse{
		Country:         profile.Country,
		City:            profile.City,
		Area:            profile.Area,
		Street:          profile.Street,
		BuildingNumber:  profile.BuildingNumber,
		ApartmentNumber: profile.ApartmentNumber,
		Latitude:        profile.Latitude,
		Longitude:       profile.Longitude,
	}))
}

// UpdateLocation handles PUT /profile/location. The route is additionally
// gated by RequireRole(RESTAURANT); the service enforces the same rule.
func (h *ProfileHandler) UpdateLocation(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.profiles.UpdateLocation(c.UserContext(), principal.UserID, req.Latitude, req.Longitude); err != nil {
		return err
	}
	return c.JSON(dto.NewAPIResponse(http.StatusOK, "location updated successfully", nil))
}

// UpdateImage handles PUT /profile/image (multipart field "image").
func (h *ProfileHandler) UpdateImage(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return apperrors.NewValidationError("image file is required", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	if _, err := h.profiles.UpdateProfileImage(c.UserContext(), principal.UserID, fileHeader.Filename, contentType, data); err != nil {
		return err
	}
	return c.JSON(dto.NewAPIResponse(http.StatusOK, "image updated successfully", nil))
}

// GetImage handles GET /profile/image.
func (h *ProfileHandler) GetImage(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	profile, err := h.profiles.GetProfile(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAPIResponse(http.StatusOK, "profile image", dto.PictureResponse{
		ProfileImageURL: profile.ProfileImageURL,
	}))
}

func toBasicResponse(profile *domain.UserProfile) dto.BasicProfileResponse {
	return dto.BasicProfileResponse{
		UserID:      profile.UserID,
		FullName:    profile.FullName,
		Phone:       profile.Phone,
		Email:       profile.Email,
		Gender:      string(profile.Gender),
		DateOfBirth: profile.DateOfBirth,
		Role:        string(profile.Role),
		Status:      string(profile.Status),
	}
}

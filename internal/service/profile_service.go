package service

import (
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/fooddelivery-service/internal/domain"
	"github.com/spec-kit/fooddelivery-service/internal/events"
	"github.com/spec-kit/fooddelivery-service/internal/persistence"
	"github.com/spec-kit/fooddelivery-service/internal/repository"
	"github.com/spec-kit/fooddelivery-service/internal/storage"
	apperrors "github.com/spec-kit/fooddelivery-service/pkg/util"
)

// BasicDataInput carries the basic-data submission. Nil fields are left
// untouched on update; creation requires full name, phone and gender.
type BasicDataInput struct {
	FullName    *string
	Phone       *string
	Gender      *string
	DateOfBirth *time.Time
}

// AddressInput carries a full address submission, applied unconditionally.
type AddressInput struct {
	Country         string
	City            string
	Area            string
	Street          string
	BuildingNumber  string
	ApartmentNumber string
}

// ProfileService owns the profile completeness state machine and the
// profile's protected fields.
type ProfileService struct {
	profiles   repository.ProfileRepository
	objects    storage.ObjectStorage
	cache      *persistence.Redis
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// ProfileDependencies encapsulates collaborators for the profile service.
type ProfileDependencies struct {
	ProfileRepo repository.ProfileRepository
	Objects     storage.ObjectStorage
	Cache       *persistence.Redis
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// NewProfileService builds the service.
func NewProfileService(deps ProfileDependencies) *ProfileService {
	return &ProfileService{
		profiles:   deps.ProfileRepo,
		objects:    deps.Objects,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// UpsertBasicData creates the profile on first submission (BASICDATA state)
// or merges fields into an existing one, which is only allowed once the
// profile reached ACTIVE.
func (s *ProfileService) UpsertBasicData(ctx context.Context, userID int64, email string, role domain.Role, in BasicDataInput) (*domain.UserProfile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		return s.updateBasicData(ctx, profile, in)
	case errors.Is(err, pgx.ErrNoRows):
		return s.createProfile(ctx, userID, email, role, in)
	default:
		return nil, err
	}
}

func (s *ProfileService) createProfile(ctx context.Context, userID int64, email string, role domain.Role, in BasicDataInput) (*domain.UserProfile, error) {
	if in.FullName == nil || in.Phone == nil || in.Gender == nil {
		return nil, apperrors.NewIncompleteSubmission("full name, phone and gender are required when creating a profile")
	}
	gender, ok := domain.ParseGender(*in.Gender)
	if !ok {
		return nil, apperrors.NewValidationError("invalid gender", map[string]any{"gender": *in.Gender})
	}
	if !role.Valid() {
		return nil, apperrors.NewValidationError("invalid role value in token", nil)
	}

	profile := &domain.UserProfile{
		UserID:      userID,
		FullName:    *in.FullName,
		Phone:       *in.Phone,
		Email:       email,
		Gender:      gender,
		DateOfBirth: in.DateOfBirth,
		Role:        role,
		Status:      domain.ProfileStatusBasicData,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// lost a create race for the same subject; retry as an update
			existing, getErr := s.profiles.GetByUserID(ctx, userID)
			if getErr != nil {
				return nil, getErr
			}
			return s.updateBasicData(ctx, existing, in)
		}
		return nil, err
	}

	s.publish(ctx, events.EventProfileCreated, userID, events.ProfileCreatedPayload{
		Role:   profile.Role,
		Status: profile.Status,
	})
	return profile, nil
}

func (s *ProfileService) updateBasicData(ctx context.Context, profile *domain.UserProfile, in BasicDataInput) (*domain.UserProfile, error) {
	if profile.Status != domain.ProfileStatusActive {
		return nil, apperrors.NewProfileLocked()
	}

	if in.FullName != nil {
		profile.FullName = *in.FullName
	}
	if in.Phone != nil {
		profile.Phone = *in.Phone
	}
	if in.Gender != nil {
		gender, ok := domain.ParseGender(*in.Gender)
		if !ok {
			return nil, apperrors.NewValidationError("invalid gender", map[string]any{"gender": *in.Gender})
		}
		profile.Gender = gender
	}
	if in.DateOfBirth != nil {
		profile.DateOfBirth = in.DateOfBirth
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	s.cache.InvalidateProfile(ctx, profile.UserID)
	return profile, nil
}

// UpdateAddress applies address fields unconditionally and advances the
// completeness status per the role transition table. This call is itself a
// transition trigger, so no status gate applies.
func (s *ProfileService) UpdateAddress(ctx context.Context, userID int64, in AddressInput) error {
	profile, err := s.getProfile(ctx, userID)
	if err != nil {
		return err
	}

	profile.Country = in.Country
	profile.City = in.City
	profile.Area = in.Area
	profile.Street = in.Street
	profile.BuildingNumber = in.BuildingNumber
	profile.ApartmentNumber = in.ApartmentNumber

	oldStatus := profile.Status
	if next, ok := domain.NextStatusAfterAddress(profile.Role, profile.Status); ok {
		profile.Status = next
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		return err
	}
	s.cache.InvalidateProfile(ctx, userID)

	if profile.Status != oldStatus {
		s.publish(ctx, events.EventProfileStatusAdvanced, userID, events.ProfileStatusAdvancedPayload{
			OldStatus: oldStatus,
			NewStatus: profile.Status,
		})
	}
	return nil
}

// UpdateLocation sets coordinates. Restaurants only; the status is not
// touched here.
func (s *ProfileService) UpdateLocation(ctx context.Context, userID int64, latitude, longitude float64) error {
	profile, err := s.getProfile(ctx, userID)
	if err != nil {
		return err
	}
	if profile.Role != domain.RoleRestaurant {
		return apperrors.NewForbidden("location update is allowed only for restaurants")
	}

	profile.Latitude = &latitude
	profile.Longitude = &longitude

	if err := s.profiles.Update(ctx, profile); err != nil {
		return err
	}
	s.cache.InvalidateProfile(ctx, userID)
	return nil
}

// UpdateProfileImage stores the image through the object storage port and
// persists its public URL.
func (s *ProfileService) UpdateProfileImage(ctx context.Context, userID int64, filename, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", apperrors.NewValidationError("image file is required", nil)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", apperrors.NewValidationError("only image files are allowed", map[string]any{"content_type": contentType})
	}

	profile, err := s.getProfile(ctx, userID)
	if err != nil {
		return "", err
	}

	key := "profiles/" + uuid.NewString() + path.Ext(filename)
	url, err := s.objects.Put(ctx, key, contentType, data)
	if err != nil {
		s.logger.Error("image upload failed", zap.Int64("user_id", userID), zap.Error(err))
		return "", apperrors.NewInternalError(err)
	}

	profile.ProfileImageURL = url
	if err := s.profiles.Update(ctx, profile); err != nil {
		return "", err
	}
	s.cache.InvalidateProfile(ctx, userID)
	return url, nil
}

// GetProfile returns the profile, read through the cache.
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	if cached := s.cache.GetProfile(ctx, userID); cached != nil {
		return cached, nil
	}
	profile, err := s.getProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.cache.SetProfile(ctx, profile)
	return profile, nil
}

func (s *ProfileService) getProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user profile", map[string]any{"user_id": userID})
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) publish(ctx context.Context, eventType events.EventType, userID int64, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}

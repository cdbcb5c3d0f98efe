package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/fooddelivery-service/internal/domain"
	"github.com/spec-kit/fooddelivery-service/internal/service"
	apperrors "github.com/spec-kit/fooddelivery-service/pkg/util"
)

func strPtr(s string) *string { return &s }

func newProfileService(repo *fakeProfileRepo, objects *fakeObjectStorage) *service.ProfileService {
	if objects == nil {
		objects = &fakeObjectStorage{}
	}
	return service.NewProfileService(service.ProfileDependencies{
		ProfileRepo: repo,
		Objects:     objects,
		Logger:      zap.NewNop(),
	})
}

func basicInput() service.BasicDataInput {
	return service.BasicDataInput{
		FullName: strPtr("Jane Doe"),
		Phone:    strPtr("+201234567890"),
		Gender:   strPtr("FEMALE"),
	}
}

func TestFirstSubmissionCreatesProfileInBasicData(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newProfileService(repo, nil)

	profile, err := svc.UpsertBasicData(context.Background(), 1, "jane@example.com", domain.RoleRestaurant, basicInput())
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileStatusBasicData, profile.Status)
	assert.Equal(t, domain.RoleRestaurant, profile.Role)
	assert.Equal(t, "jane@example.com", profile.Email)
}

func TestFirstSubmissionRequiresAllBasicFields(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newProfileService(repo, nil)

	in := basicInput()
	in.Phone = nil
	_, err := svc.UpsertBasicData(context.Background(), 1, "jane@example.com", domain.RoleCustomer, in)
	require.Error(t, err)
	assert.Equal(t, "INCOMPLETE_SUBMISSION", apperrors.ToDomainError(err).Code)
}

func TestRestaurantStatusFlow(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newProfileService(repo, nil)
	ctx := context.Background()

	_, err := svc.UpsertBasicData(ctx, 1, "resto@example.com", domain.RoleRestaurant, basicInput())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateAddress(ctx, 1, service.AddressInput{Country: "EG", City: "Cairo", Street: "Main"}))
	profile, err := svc.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileStatusLocation, profile.Status)

	// a second address submission does not move the status further
	require.NoError(t, svc.UpdateAddress(ctx, 1, service.AddressInput{Country: "EG", City: "Giza", Street: "Side"}))
	profile, err = svc.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileStatusLocation, profile.Status)
}

func TestCustomerAddressActivatesDirectly(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newProfileService(repo, nil)
	ctx := context.Background()

	_, err := svc.UpsertBasicData(ctx, 2, "jane@example.com", domain.RoleCustomer, basicInput())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateAddress(ctx, 2, service.AddressInput{Country: "EG", City: "Cairo"}))
	profile, err := svc.GetProfile(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileStatusActive, profile.Status)
}

func TestBasicUpdateLockedBeforeActive(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newProfileService(repo, nil)
	ctx := context.Background()

	_, err := svc.UpsertBasicData(ctx, 1, "resto@example.com", domain.RoleRestaurant, basicInput())
	require.NoError(t, err)
	require.NoError(t, svc.UpdateAddress(ctx, 1, service.AddressInput{Country: "EG"}))

	// profile now at LOCATION; protected fields stay locked
	_, err = svc.UpsertBasicData(ctx, 1, "resto@example.com", domain.RoleRestaurant, service.BasicDataInput{FullName: strPtr("New Name")})
	require.Error(t, err)
	assert.Equal(t, "PROFILE_LOCKED", apperrors.ToDomainError(err).Code)
}

func TestBasicUpdateMergesWhenActive(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newProfileService(repo, nil)
	ctx := context.Background()

	_, err := svc.UpsertBasicData(ctx, 2, "jane@example.com", domain.RoleCustomer, basicInput())
	require.NoError(t, err)
	require.NoError(t, svc.UpdateAddress(ctx, 2, service.AddressInput{Country: "EG"}))

	updated, err := svc.UpsertBasicData(ctx, 2, "jane@example.com", domain.RoleCustomer, service.BasicDataInput{FullName: strPtr("Jane Smith")})
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", updated.FullName)
	// untouched fields survive the partial merge
	assert.Equal(t, "+201234567890", updated.Phone)
	assert.Equal(t, domain.ProfileStatusActive, updated.Status)
}

func TestAddressRequiresExistingProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newProfileService(repo, nil)

	err := svc.UpdateAddress(context.Background(), 99, service.AddressInput{Country: "EG"})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestLocationRestaurantOnly(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newProfileService(repo, nil)
	ctx := context.Background()

	_, err := svc.UpsertBasicData(ctx, 2, "jane@example.com", domain.RoleCustomer, basicInput())
	require.NoError(t, err)

	err = svc.UpdateLocation(ctx, 2, 30.05, 31.23)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
}

func TestLocationUpdateLeavesStatusUntouched(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newProfileService(repo, nil)
	ctx := context.Background()

	_, err := svc.UpsertBasicData(ctx, 1, "resto@example.com", domain.RoleRestaurant, basicInput())
	require.NoError(t, err)
	require.NoError(t, svc.UpdateAddress(ctx, 1, service.AddressInput{Country: "EG"}))

	require.NoError(t, svc.UpdateLocation(ctx, 1, 30.05, 31.23))

	profile, err := svc.GetProfile(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, profile.Latitude)
	assert.Equal(t, 30.05, *profile.Latitude)
	assert.Equal(t, domain.ProfileStatusLocation, profile.Status)
}

func TestImageUploadValidatesContentType(t *testing.T) {
	repo := newFakeProfileRepo()
	objects := &fakeObjectStorage{}
	svc := newProfileService(repo, objects)
	ctx := context.Background()

	_, err := svc.UpsertBasicData(ctx, 2, "jane@example.com", domain.RoleCustomer, basicInput())
	require.NoError(t, err)

	_, err = svc.UpdateProfileImage(ctx, 2, "notes.txt", "text/plain", []byte("hi"))
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	assert.Empty(t, objects.keys)

	url, err := svc.UpdateProfileImage(ctx, 2, "me.png", "image/png", []byte{0x89, 0x50})
	require.NoError(t, err)
	assert.Contains(t, url, "profiles/")
	require.Len(t, objects.keys, 1)
	assert.Contains(t, objects.keys[0], ".png")

	profile, err := svc.GetProfile(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, url, profile.ProfileImageURL)
}

func TestCreateRaceRetriesAsUpdate(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newProfileService(repo, nil)
	ctx := context.Background()

	// an ACTIVE profile already exists, but the service's initial lookup
	// misses it, so the insert reports a duplicate and the service retries
	// as an update
	_, err := svc.UpsertBasicData(ctx, 3, "jane@example.com", domain.RoleCustomer, basicInput())
	require.NoError(t, err)
	require.NoError(t, svc.UpdateAddress(ctx, 3, service.AddressInput{Country: "EG"}))

	repo.missFirstLookup = true
	updated, err := svc.UpsertBasicData(ctx, 3, "jane@example.com", domain.RoleCustomer, basicInput())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.FullName)
	assert.Equal(t, domain.ProfileStatusActive, updated.Status)
}

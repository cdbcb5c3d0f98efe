package service_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/fooddelivery-service/internal/domain"
	"github.com/spec-kit/fooddelivery-service/internal/repository"
)

type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := f.users[user.Email]; exists {
		return repository.ErrDuplicate
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.users[user.Email] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

type fakeProfileRepo struct {
	profiles map[int64]*domain.UserProfile
	// missFirstLookup makes the next GetByUserID report no rows, simulating
	// a concurrent writer inserting between the lookup and the insert
	missFirstLookup bool
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[int64]*domain.UserProfile)}
}

func (f *fakeProfileRepo) Create(_ context.Context, profile *domain.UserProfile) error {
	if _, exists := f.profiles[profile.UserID]; exists {
		return repository.ErrDuplicate
	}
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt
	stored := *profile
	f.profiles[profile.UserID] = &stored
	return nil
}

func (f *fakeProfileRepo) Update(_ context.Context, profile *domain.UserProfile) error {
	if _, exists := f.profiles[profile.UserID]; !exists {
		return pgx.ErrNoRows
	}
	stored := *profile
	stored.UpdatedAt = time.Now()
	f.profiles[profile.UserID] = &stored
	return nil
}

func (f *fakeProfileRepo) GetByUserID(_ context.Context, userID int64) (*domain.UserProfile, error) {
	if f.missFirstLookup {
		f.missFirstLookup = false
		return nil, pgx.ErrNoRows
	}
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *profile
	return &copied, nil
}

type fakeObjectStorage struct {
	keys         []string
	contentTypes []string
}

func (f *fakeObjectStorage) Put(_ context.Context, key, contentType string, _ []byte) (string, error) {
	f.keys = append(f.keys, key)
	f.contentTypes = append(f.contentTypes, contentType)
	return "https://cdn.test/" + key, nil
}

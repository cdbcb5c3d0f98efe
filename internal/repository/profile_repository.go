package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/fooddelivery-service/internal/domain"
)

// ProfileRepository defines persistence access for user profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.UserProfile) error
	Update(ctx context.Context, profile *domain.UserProfile) error
	GetByUserID(ctx context.Context, userID int64) (*domain.UserProfile, error)
}

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a Postgres-backed implementation.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.UserProfile) error {
	const query = `
        INSERT INTO user_profiles
            (user_id, full_name, phone, email, date_of_birth, gender, role, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		profile.UserID,
		profile.FullName,
		profile.Phone,
		profile.Email,
		profile.DateOfBirth,
		profile.Gender,
		profile.Role,
		profile.Status,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.UserProfile) error {
	const query = `
        UPDATE user_profiles SET
            full_name=$1, phone=$2, date_of_birth=$3, gender=$4,
            country=$5, city=$6, area=$7, street=$8,
            building_number=$9, apartment_number=$10,
            latitude=$11, longitude=$12,
            profile_image_url=$13, status=$14, updated_at=NOW()
        WHERE user_id=$15`

	cmd, err := r.pool.Exec(ctx, query,
		profile.FullName,
		profile.Phone,
		profile.DateOfBirth,
		profile.Gender,
		profile.Country,
		profile.City,
		profile.Area,
		profile.Street,
		profile.BuildingNumber,
		profile.ApartmentNumber,
		profile.Latitude,
		profile.Longitude,
		profile.ProfileImageURL,
		profile.Status,
		profile.UserID,
	)
	if err != nil {
		return mapUniqueViolation(err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	const query = `
        SELECT user_id, full_name, phone, email, date_of_birth, gender,
               country, city, area, street, building_number, apartment_number,
               latitude, longitude, profile_image_url, role, status,
               created_at, updated_at
        FROM user_profiles WHERE user_id=$1`

	var p domain.UserProfile
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.UserID,
		&p.FullName,
		&p.Phone,
		&p.Email,
		&p.DateOfBirth,
		&p.Gender,
		&p.Country,
		&p.City,
		&p.Area,
		&p.Street,
		&p.BuildingNumber,
		&p.ApartmentNumber,
		&p.Latitude,
		&p.Longitude,
		&p.ProfileImageURL,
		&p.Role,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

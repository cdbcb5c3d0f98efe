package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/fooddelivery-service/internal/domain"
)

func TestNextStatusAfterAddress(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.Role
		current  domain.ProfileStatus
		want     domain.ProfileStatus
		advances bool
	}{
		{"restaurant from basic data", domain.RoleRestaurant, domain.ProfileStatusBasicData, domain.ProfileStatusLocation, true},
		{"customer from basic data", domain.RoleCustomer, domain.ProfileStatusBasicData, domain.ProfileStatusActive, true},
		{"delivery from basic data", domain.RoleDelivery, domain.ProfileStatusBasicData, domain.ProfileStatusActive, true},
		{"admin from basic data", domain.RoleAdmin, domain.ProfileStatusBasicData, domain.ProfileStatusActive, true},
		{"restaurant already at location", domain.RoleRestaurant, domain.ProfileStatusLocation, "", false},
		{"restaurant already active", domain.RoleRestaurant, domain.ProfileStatusActive, "", false},
		{"customer already active", domain.RoleCustomer, domain.ProfileStatusActive, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := domain.NextStatusAfterAddress(tt.role, tt.current)
			assert.Equal(t, tt.advances, ok)
			if tt.advances {
				assert.Equal(t, tt.want, next)
			}
		})
	}
}

func TestTransitionsNeverRegress(t *testing.T) {
	order := map[domain.ProfileStatus]int{
		domain.ProfileStatusBasicData: 0,
		domain.ProfileStatusLocation:  1,
		domain.ProfileStatusActive:    2,
	}

	roles := []domain.Role{domain.RoleAdmin, domain.RoleCustomer, domain.RoleRestaurant, domain.RoleDelivery}
	statuses := []domain.ProfileStatus{domain.ProfileStatusBasicData, domain.ProfileStatusLocation, domain.ProfileStatusActive}

	for _, role := range roles {
		for _, status := range statuses {
			if next, ok := domain.NextStatusAfterAddress(role, status); ok {
				assert.Greater(t, order[next], order[status], "role %s status %s", role, status)
			}
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"ADMIN", "customer", " Restaurant ", "DELIVERY"} {
		_, ok := domain.ParseRole(valid)
		assert.True(t, ok, valid)
	}
	for _, invalid := range []string{"", "SUPERUSER", "ROLE_ADMIN"} {
		_, ok := domain.ParseRole(invalid)
		assert.False(t, ok, invalid)
	}
}

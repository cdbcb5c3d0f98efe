package domain

import "time"

// ProfileStatus tracks how complete a profile is. Transitions only move
// forward; no operation writes an earlier state.
type ProfileStatus string

const (
	// ProfileStatusBasicData means only the initial basic-data submission
	// has happened.
	ProfileStatusBasicData ProfileStatus = "BASICDATA"
	// ProfileStatusLocation means a restaurant has supplied its address but
	// not yet its coordinates.
	ProfileStatusLocation ProfileStatus = "LOCATION"
	// ProfileStatusActive is the terminal state; protected fields may be
	// updated freely.
	ProfileStatusActive ProfileStatus = "ACTIVE"
)

// Gender for the basic-data submission.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// ParseGender validates a request-supplied gender string.
func ParseGender(value string) (Gender, bool) {
	switch Gender(value) {
	case GenderMale, GenderFemale:
		return Gender(value), true
	}
	return "", false
}

// UserProfile is the profile record owned by the user service, keyed by the
// auth service's user id. Role is duplicated from the token on creation and
// treated as read-only here; the auth service stays the source of truth.
type UserProfile struct {
	UserID          int64
	FullName        string
	Phone           string
	Email           string
	DateOfBirth     *time.Time
	Gender          Gender
	Country         string
	City            string
	Area            string
	Street          string
	BuildingNumber  string
	ApartmentNumber string
	Latitude        *float64
	Longitude       *float64
	ProfileImageURL string
	Role            Role
	Status          ProfileStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// addressTransitions maps role x current status to the status an address
// submission advances to. Absent entries leave the status untouched, which
// keeps the machine monotonic: ACTIVE and LOCATION never appear as keys.
var addressTransitions = map[Role]map[ProfileStatus]ProfileStatus{
	RoleRestaurant: {
		ProfileStatusBasicData: ProfileStatusLocation,
	},
	RoleCustomer: {
		ProfileStatusBasicData: ProfileStatusActive,
	},
	RoleDelivery: {
		ProfileStatusBasicData: ProfileStatusActive,
	},
	RoleAdmin: {
		ProfileStatusBasicData: ProfileStatusActive,
	},
}

// NextStatusAfterAddress returns the status a profile moves to when an
// address is submitted, and whether a transition applies at all.
func NextStatusAfterAddress(role Role, current ProfileStatus) (ProfileStatus, bool) {
	next, ok := addressTransitions[role][current]
	return next, ok
}

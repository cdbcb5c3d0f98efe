package dto

import "time"

// BasicDataRequest payload for the basic-data upsert. Pointer fields are
// merged only when supplied.
type BasicDataRequest struct {
	FullName    *string    `json:"fullName"`
	Phone       *string    `json:"phone"`
	Gender      *string    `json:"gender"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
}

// AddressRequest payload for the address update.
type AddressRequest struct {
	Country         string `json:"country"`
	City            string `json:"city"`
	Area            string `json:"area"`
	Street          string `json:"street"`
	BuildingNumber  string `json:"buildingNumber"`
	ApartmentNumber string `json:"apartmentNumber"`
}

// LocationRequest payload for the coordinates update.
type LocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// BasicProfileResponse mirrors the profile's basic section.
type BasicProfileResponse struct {
	UserID      int64      `json:"userId"`
	FullName    string     `json:"fullName"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Gender      string     `json:"gender"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
}

// AddressResponse mirrors the profile's address section.
type AddressResponse struct {
	Country         string   `json:"country"`
	City            string   `json:"city"`
	Area            string   `json:"area"`
	Street          string   `json:"street"`
	BuildingNumber  string   `json:"buildingNumber"`
	ApartmentNumber string   `json:"apartmentNumber"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
}

// PictureResponse carries the profile image URL.
type PictureResponse struct {
	ProfileImageURL string `json:"profileImageUrl"`
}

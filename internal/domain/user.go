package domain

import "time"

// User is the credential record owned by the auth service: the pairing of a
// login email with a password hash and the role granted at registration.
// The hash never leaves this service and never appears in a token.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

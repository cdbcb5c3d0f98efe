package dto

// RegistrationRequest payload for new accounts.
type RegistrationRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginData is the login response body.
type LoginData struct {
	ID    int64  `json:"id"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

package dto

// Credentials is the login request payload.
type Credentials struct {
	Password string `json:"password"`
}

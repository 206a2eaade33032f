// internal/models/user.go
package models

// User is keyed by document number, which is immutable once created.
// Credential is an opaque secret: accepted on create/update, omitted from
// every response after that. This core never verifies it.
type User struct {
	Document   int    `json:"documento"`
	Email      string `json:"email"`
	Credential string `json:"contraseña,omitempty"`
}

// Sanitized returns a copy with the credential blanked for display.
func (u User) Sanitized() User {
	u.Credential = ""
	return u
}

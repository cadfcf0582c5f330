package auth

import "context"

// Service defines the interface for the admin pass/fail gate. There
// are no user accounts or roles: one configured admin identity is
// enough to protect the sync triggers.
type Service interface {
	// Login checks the configured admin credentials and returns a
	// signed session token.
	Login(ctx context.Context, username, password string) (string, error)
	// Verify checks a token issued by Login.
	Verify(token string) error
}

// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/phoenix-field/backend/internal/application/adapter"
	domainerror "github.com/phoenix-field/backend/internal/domain/error"
)

// credentialVerifier implements the adapter.CredentialVerifier interface.
// Roster credential cells may hold either a bcrypt hash or, for rows that
// predate hashing, the plaintext password itself.
type credentialVerifier struct{}

// NewCredentialVerifier creates a new credential verifier instance.
func NewCredentialVerifier() adapter.CredentialVerifier {
	return &credentialVerifier{}
}

// Verify returns nil when the presented password matches the stored credential.
func (v *credentialVerifier) Verify(storedCredential, presented string) error {
	if isBcryptHash(storedCredential) {
		if err := bcrypt.CompareHashAndPassword([]byte(storedCredential), []byte(presented)); err != nil {
			return domainerror.ErrInvalidCredentials
		}
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(storedCredential), []byte(presented)) != 1 {
		return domainerror.ErrInvalidCredentials
	}
	return nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

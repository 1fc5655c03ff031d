// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// CredentialVerifier checks a presented password against the credential
// cell stored in the roster sheet.
type CredentialVerifier interface {
	// Verify returns nil when the presented password matches the stored
	// credential, which may be a bcrypt hash or a legacy plaintext cell.
	Verify(storedCredential, presented string) error
}

// Package crypto provides password hashing for courier and store accounts.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes and verifies account passwords.
//
// New hashes are always bcrypt. Compare additionally accepts the legacy
// Werkzeug formats already stored for existing accounts:
//
//	pbkdf2:sha256:600000$<salt>$<hex digest>
//	scrypt:32768:8:1$<salt>$<hex digest>
type PasswordHasher interface {
	// Hash returns a bcrypt hash of plain.
	Hash(plain string) (string, error)

	// Compare reports whether plain matches the stored hash. Unknown or
	// malformed hashes never match.
	Compare(hash, plain string) bool
}

package auth

import "golang.org/x/crypto/bcrypt"

// PasswordVerifier abstracts how passwords are stored and compared so the
// scheme can change without touching callers.
type PasswordVerifier interface {
	Hash(password string) (string, error)
	Verify(stored, password string) bool
}

// PlainVerifier stores and compares passwords verbatim. This mirrors the
// legacy storefront behavior and is NOT safe for real deployments; swap in
// BcryptVerifier instead.
type PlainVerifier struct{}

func (PlainVerifier) Hash(password string) (string, error) {
	return password, nil
}

func (PlainVerifier) Verify(stored, password string) bool {
	return stored == password
}

// BcryptVerifier stores bcrypt hashes.
type BcryptVerifier struct{}

func (BcryptVerifier) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptVerifier) Verify(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

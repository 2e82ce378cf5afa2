package service

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 12

// HashPassword derives a salted one-way hash; two calls with the same
// plaintext yield different hashes.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored hash. A malformed
// hash is treated as a mismatch, never as an error.
func CheckPassword(plain string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

package crypto

import "golang.org/x/crypto/bcrypt"

// HashCost is the bcrypt work factor. Raising it makes brute-forcing stolen
// hashes more expensive at the price of slower logins.
const HashCost = 12

// HashPassword hashes a password using bcrypt. The salt and cost are embedded
// in the returned hash string.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks whether a password matches the given bcrypt hash.
// A mismatch returns false, never an error.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

package hash

import "golang.org/x/crypto/bcrypt"

// cost matches the bcrypt rounds the original deployment used.
const cost = 10

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check reports whether plain matches hashed. A malformed hash simply fails
// the check.
func Check(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

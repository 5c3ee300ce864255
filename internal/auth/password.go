package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost = 12
	codeDigits = 6
)

// HashPassword returns a bcrypt hash suitable for ADMIN_PASS.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func CheckPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// Credentials is the single admin account.
type Credentials struct {
	User string
	// Pass is either the plain password or its bcrypt hash.
	Pass string
}

// Match reports whether user and pass are the admin's. The comparison does
// not short-circuit on the user name.
func (c Credentials) Match(user, pass string) bool {
	if c.User == "" || c.Pass == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(c.User)) == 1

	var passOK bool
	if isBcryptHash(c.Pass) {
		passOK = CheckPassword(pass, c.Pass) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(pass), []byte(c.Pass)) == 1
	}
	return userOK && passOK
}

// GenerateCode returns a uniformly random six-digit code.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", codeDigits, n.Int64()+100000), nil
}

// HashCode is the form in which codes are stored.
func HashCode(code string) string {
	hash := sha256.Sum256([]byte(code))
	return base64.RawURLEncoding.EncodeToString(hash[:])
}

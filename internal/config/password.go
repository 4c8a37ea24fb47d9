package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// PasswordConfig holds password hashing settings.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // optional global secret appended before hashing
}

// NewPasswordConfig reads password settings from the environment:
// BCRYPT_COST (default 12, allowed 10-14) and optional PASSWORD_PEPPER.
func NewPasswordConfig() (*PasswordConfig, error) {
	cost := 12
	if s := os.Getenv("BCRYPT_COST"); s != "" {
		var err error
		cost, err = strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
		}
	}
	if cost < 10 || cost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", cost)
	}

	return &PasswordConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv("PASSWORD_PEPPER"),
	}, nil
}

// HashPassword hashes a password using bcrypt, with the pepper applied when
// configured.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw+c.Pepper), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a stored hash.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(pw+c.Pepper)) == nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
)

// JWTConfig holds the signing secret and token lifetime.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig reads JWT settings from the environment: JWT_SECRET (required)
// and JWT_EXPIRATION_HOURS (default 24).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	expirationHours := 24
	if s := os.Getenv("JWT_EXPIRATION_HOURS"); s != "" {
		var err error
		expirationHours, err = strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
		}
	}
	if expirationHours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", expirationHours)
	}

	return &JWTConfig{Secret: secret, ExpirationHours: expirationHours}, nil
}

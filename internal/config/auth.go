package config

import (
	"os"
	"sync"
)

// AuthConfig holds the shared API key accepted for privileged callers. Token
// issuance and JWT verification live in the gateway, not here.
type AuthConfig struct {
	APIKey string
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		authConfig = &AuthConfig{
			APIKey: os.Getenv("API_KEY_SECRET"),
		}
	})
	return authConfig
}

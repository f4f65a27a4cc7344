package service

import (
	"os"
	"strconv"
	"time"

	"walks-api/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the validity window of issued tokens. There is no
// refresh mechanism; re-authentication is the only renewal path.
const DefaultTokenTTL = 15 * time.Minute

// TokenConfig carries the signing parameters shared by the issuer and the
// validation middleware.
type TokenConfig struct {
	Issuer   string
	Audience string
	Secret   []byte
	TTL      time.Duration
}

// TokenConfigFromEnv builds the token configuration from environment
// variables with development fallbacks.
func TokenConfigFromEnv() TokenConfig {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in release mode")
		}
		secret = "default_super_secret_key" // development fallback, never for production
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "walks-api"
	}
	audience := os.Getenv("JWT_AUDIENCE")
	if audience == "" {
		audience = "walks-api-clients"
	}

	ttl := DefaultTokenTTL
	if minutes, err := strconv.Atoi(os.Getenv("JWT_TTL_MINUTES")); err == nil && minutes > 0 {
		ttl = time.Duration(minutes) * time.Minute
	}

	return TokenConfig{
		Issuer:   issuer,
		Audience: audience,
		Secret:   []byte(secret),
		TTL:      ttl,
	}
}

// TokenIssuer produces signed, time-bounded bearer tokens carrying identity
// and role claims.
type TokenIssuer struct {
	cfg TokenConfig
}

// NewTokenIssuer returns a TokenIssuer for the given configuration
func NewTokenIssuer(cfg TokenConfig) *TokenIssuer {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTokenTTL
	}
	return &TokenIssuer{cfg: cfg}
}

// Issue signs an HS256 token for the user with one role claim per role name.
// Expiry is issuance time plus the configured validity window.
func (t *TokenIssuer) Issue(user *model.User, roleNames []string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.Username,
		"roles": roleNames,
		"iss":   t.cfg.Issuer,
		"aud":   t.cfg.Audience,
		"iat":   now.Unix(),
		"exp":   now.Add(t.cfg.TTL).Unix(),
	})
	return token.SignedString(t.cfg.Secret)
}

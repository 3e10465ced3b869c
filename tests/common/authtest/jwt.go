//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"coworking-admin/internal/pkg/config"
	pkgjwt "coworking-admin/internal/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// JWTHelper forges tokens the way the account backend would mint them,
// signed with the shared secret the panel validates against.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject, role string) string {
	t.Helper()
	return h.sign(t, subject, role, time.Now().Add(15*time.Minute))
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject, role string) string {
	t.Helper()
	return h.sign(t, subject, role, time.Now().Add(-time.Hour))
}

func (h *JWTHelper) sign(t *testing.T, subject, role string, expiresAt time.Time) string {
	t.Helper()

	claims := pkgjwt.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.Secret))
	require.NoError(t, err)
	return token
}

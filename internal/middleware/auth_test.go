package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"readiness-engine/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-admin-secret"

func signedToken(t *testing.T, secret string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAdminProtected(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectSubject  bool
	}{
		{
			name:           "Valid Token",
			authHeader:     "Bearer " + signedToken(t, testSecret, time.Hour),
			expectedStatus: fiber.StatusOK,
			expectSubject:  true,
		},
		{
			name:           "No Auth Header",
			authHeader:     "",
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "Wrong Scheme",
			authHeader:     "Basic abc123",
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "Empty Token",
			authHeader:     "Bearer ",
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "Wrong Secret",
			authHeader:     "Bearer " + signedToken(t, "some-other-secret", time.Hour),
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "Expired Token",
			authHeader:     "Bearer " + signedToken(t, testSecret, -time.Hour),
			expectedStatus: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()

			var subject interface{}
			app.Get("/admin", middleware.AdminProtected(testSecret), func(c *fiber.Ctx) error {
				subject = c.Locals(middleware.AdminSubjectKey)
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("GET", "/admin", nil)
			if tt.authHeader != "" {
				req.Header.Set(middleware.AuthorizationHeader, tt.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectSubject {
				assert.Equal(t, "admin", subject)
			} else {
				assert.Nil(t, subject)
			}
		})
	}
}

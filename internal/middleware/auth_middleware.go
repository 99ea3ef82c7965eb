package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/fadilmartias/talent-matcher/internal/auth"
	"github.com/fadilmartias/talent-matcher/internal/config"
	"github.com/fadilmartias/talent-matcher/internal/util"
	"github.com/gofiber/fiber/v2"
)

const callerLocal = "caller"

// CallerAuth resolves the caller identity for matching routes. A valid API
// key makes a privileged caller; otherwise the X-User-Role/X-User-Id headers
// set by the gateway after JWT verification identify a recruiter or client.
// With no API key configured the service runs open (local development).
func CallerAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := config.LoadAuthConfig().APIKey
		if secret == "" {
			c.Locals(callerLocal, auth.Open())
			return c.Next()
		}

		if key := bearerToken(c); key != "" {
			if subtle.ConstantTimeCompare([]byte(key), []byte(secret)) == 1 {
				c.Locals(callerLocal, auth.APIKey())
				return c.Next()
			}
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "invalid API key",
			})
		}

		role := strings.TrimSpace(c.Get("X-User-Role"))
		userID := strings.TrimSpace(c.Get("X-User-Id"))
		if (role == auth.RoleRecruiter || role == auth.RoleClient) && userID != "" {
			c.Locals(callerLocal, auth.Caller{Role: role, UserID: userID})
			return c.Next()
		}

		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "authentication required",
		})
	}
}

// RequireAPIKey guards privileged routes (batch matching).
func RequireAPIKey() fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller := CallerFromCtx(c)
		if !caller.Privileged() {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: "API key required for batch matching",
			})
		}
		return c.Next()
	}
}

func CallerFromCtx(c *fiber.Ctx) auth.Caller {
	if caller, ok := c.Locals(callerLocal).(auth.Caller); ok {
		return caller
	}
	return auth.Caller{}
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

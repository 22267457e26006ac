package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "userbase/internal/log"
	"userbase/internal/repos"
	"userbase/internal/token"
)

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Any other scheme, or no header at all, counts as no token.
func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	scheme, tok, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" {
		return ""
	}
	return strings.TrimSpace(tok)
}

// RequireAuth verifies the bearer token and resolves the acting user on
// every request; nothing is cached, so deleting a user locks out their
// still-unexpired tokens on the very next call. On success the
// sanitized user lands in c.Locals("user") and the id in
// c.Locals("userID").
func RequireAuth(signer *token.Signer, users *repos.UserRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := bearerToken(c)
		if tok == "" {
			applog.Security(c, "auth.guard.missing", nil)
			return fail(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
		}
		claims, err := signer.Verify(tok)
		if err != nil {
			applog.Security(c, "auth.guard.invalid", nil)
			return fail(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}
		u, err := users.ByID(claims.Subject)
		if err != nil {
			applog.Security(c, "auth.guard.unknown_subject", map[string]any{"sub": claims.Subject})
			return fail(c, fiber.StatusUnauthorized, "User not found")
		}
		c.Locals("user", u.Sanitized())
		c.Locals("userID", u.ID)
		return c.Next()
	}
}

package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/models"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/utils"
)

// Identity is the resolved account a token subject maps to.
type Identity struct {
	Username string
	Role     string // "admin" or "user"
}

// IdentityResolver maps a token subject to a concrete account. Resolvers are
// tried in order; the first match wins.
type IdentityResolver func(username string) (*Identity, bool)

func AdminResolver(db *gorm.DB) IdentityResolver {
	return func(username string) (*Identity, bool) {
		var count int64
		db.Model(&models.Admin{}).Where("username = ?", username).Count(&count)
		if count == 0 {
			return nil, false
		}
		return &Identity{Username: username, Role: "admin"}, true
	}
}

func UserResolver(db *gorm.DB) IdentityResolver {
	return func(username string) (*Identity, bool) {
		var count int64
		db.Model(&models.User{}).Where("username = ?", username).Count(&count)
		if count == 0 {
			return nil, false
		}
		return &Identity{Username: username, Role: "user"}, true
	}
}

// publicPrefixes is the explicit allow-list of API paths that bypass
// authentication. Everything else under /api requires a resolvable identity.
var publicPrefixes = []string{
	"/api/user/login",
	"/api/admin/login",
	"/api/user/postUserRecord",
	"/api/auth/",
	"/api/product/getAllProducts/",
	"/api/product/getProductsByUser/",
	"/api/product/putProductDetails/",
}

func isPublicPath(path string) bool {
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Protected validates the bearer token and attaches the resolved identity to
// the request. Admin identities are tried before user identities since both
// share one token namespace.
func Protected(secret string, resolvers ...IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isPublicPath(c.Path()) {
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "No Token Provided",
			})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		username, err := utils.ParseToken(tokenString, secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token is invalid or expired",
			})
		}

		for _, resolve := range resolvers {
			if identity, ok := resolve(username); ok {
				c.Locals("username", identity.Username)
				c.Locals("role", identity.Role)
				return c.Next()
			}
		}

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Token subject does not resolve to any account",
		})
	}
}

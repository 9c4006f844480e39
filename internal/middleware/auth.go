package middleware

import (
	"net/http"
	"strings"

	"github.com/varunreddy1024/ledger-backend/internal/apierror"
	"github.com/varunreddy1024/ledger-backend/internal/model"
	"github.com/varunreddy1024/ledger-backend/internal/repository"
	"github.com/varunreddy1024/ledger-backend/internal/token"

	"github.com/gin-gonic/gin"
)

const UserKey = "current_user"

func unauthorized(c *gin.Context, msg string) {
	// RFC 6750 challenge on every 401
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New(msg))
}

// Authenticate validates the Bearer token on every protected route, then
// re-fetches the user by subject. The role inside the token is only a
// snapshot — the live record is the source of truth for authorization, so a
// role change or a deleted account takes effect immediately.
func Authenticate(tokens *token.Service, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			unauthorized(c, "Not authenticated")
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			unauthorized(c, "Could not validate credentials")
			return
		}

		user, err := users.FindByUsername(c.Request.Context(), claims.Username)
		if err != nil {
			unauthorized(c, "Could not validate credentials")
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// RequireRole rejects requests whose (live) user role is not in the allowed list.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		user, ok := c.MustGet(UserKey).(*model.User)
		if !ok || !allowed[user.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Not enough permissions"))
			return
		}
		c.Next()
	}
}

// GetCurrentUser is a helper to retrieve the authenticated user from the Gin context.
func GetCurrentUser(c *gin.Context) *model.User {
	user, _ := c.MustGet(UserKey).(*model.User)
	return user
}

package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	userModel "github.com/lanpartylabs/tournament_api/internal/user/model"
	userRepository "github.com/lanpartylabs/tournament_api/internal/user/repository"
)

// UserHeader is the request header carrying the resolved user identifier.
// Session handling lives in an upstream collaborator; this service only
// receives the identity it produced.
const UserHeader = "X-User-ID"

// ContextUserKey is the gin context key holding the authenticated user.
const ContextUserKey = "auth.user"

// Authenticate resolves the identity header to a user and stores it in the
// request context. Requests without the header pass through anonymously;
// endpoints that require identity enforce it themselves. An unknown
// identifier is rejected outright.
func Authenticate(users userRepository.Repository, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(UserHeader)
		if id == "" {
			c.Next()
			return
		}

		user, err := users.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, userModel.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Unauthenticated",
				})
				return
			}
			logger.Errorw("error resolving user identity", "user_id", id, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireAdmin aborts requests whose authenticated user is missing or not an
// admin. Must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := UserFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthenticated",
			})
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Forbidden",
			})
			return
		}
		c.Next()
	}
}

// UserFromContext returns the authenticated user stored by Authenticate.
func UserFromContext(c *gin.Context) (*userModel.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*userModel.User)
	return user, ok
}

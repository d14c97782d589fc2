package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/config"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/domain"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/service"
)

const currentUserKey = "currentUser"

// SessionAuth resolves the session token to a user and attaches it to the
// request context.
type SessionAuth struct {
	Auth   *service.AuthService
	Cookie string
}

// NewSessionAuth creates the middleware.
func NewSessionAuth(auth *service.AuthService, cfg config.Config) *SessionAuth {
	return &SessionAuth{Auth: auth, Cookie: cfg.SessionCookie}
}

// RequireUser rejects anonymous requests with 401 and exposes the resolved
// user to handlers.
func (m *SessionAuth) RequireUser(c *gin.Context) {
	token := TokenFromRequest(c.Request, m.Cookie)
	user, err := m.Auth.CurrentUser(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "authentication required",
			})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "could not resolve session",
		})
		return
	}

	c.Set(currentUserKey, user)
	c.Next()
}

// TokenFromRequest extracts the session token from the Authorization header
// or, failing that, the session cookie.
func TokenFromRequest(r *http.Request, cookieName string) string {
	header := r.Header.Get("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie, err := r.Cookie(cookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// GetCurrentUser exposes the authenticated user to handlers.
func GetCurrentUser(c *gin.Context) (domain.User, bool) {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return domain.User{}, false
	}
	user, ok := value.(domain.User)
	return user, ok
}

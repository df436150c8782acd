package middleware

import (
	"net/http"
	"net/url"

	"gasops/internal/auth"
	"gasops/internal/models"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "session_token"

const currentUserKey = "CurrentUser"

// InjectUser resolves the session cookie to a user and stashes it in the
// request context. Missing cookie, unknown/expired token and deleted user
// all mean the same thing: no current user. Never aborts.
func InjectUser(a *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		session, err := a.GetSession(token)
		if err != nil {
			c.Next()
			return
		}

		user, err := a.GetUserByID(session.UserID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user InjectUser resolved, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// RequirePage guards browser routes: unauthenticated requests are sent to
// the login form carrying the originally requested path.
func RequirePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			next := url.QueryEscape(c.Request.URL.Path)
			c.Redirect(http.StatusFound, "/login?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAPI guards programmatic routes with a plain 401.
func RequireAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Login required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin builds on RequireAPI: a logged-in non-admin gets 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Login required"})
			c.Abort()
			return
		}
		if user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"detail": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdminPage is RequireAdmin for browser routes: redirect when not
// logged in, a rendered 403 when the role is wrong.
func RequireAdminPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			next := url.QueryEscape(c.Request.URL.Path)
			c.Redirect(http.StatusFound, "/login?next="+next)
			c.Abort()
			return
		}
		if user.Role != models.RoleAdmin {
			c.HTML(http.StatusForbidden, "403.html", gin.H{})
			c.Abort()
			return
		}
		c.Next()
	}
}

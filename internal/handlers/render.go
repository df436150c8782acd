package handlers

import (
	"gasops/internal/middleware"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and threads the resolved current user into every
// template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if user, ok := middleware.CurrentUser(c); ok {
		data["user"] = user
		data["CurrentUsername"] = user.Username
		data["CurrentUserRole"] = user.Role
	}

	c.HTML(status, tmpl, data)
}

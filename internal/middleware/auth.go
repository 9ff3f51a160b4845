package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/response"
	"kentkonut/internal/constants"
	"kentkonut/internal/model"
	"kentkonut/internal/service"
	"kentkonut/pkg/logger"
)

const userContextKey = "current_user"

// Auth requires a valid bearer token and stores the user in the context
func Auth(authService service.AuthService, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := authService.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			response.Error(c, log, err)
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireRole lets through users having one of roles. Must run after Auth.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			response.Fail(c, http.StatusUnauthorized, constants.MsgUnauthorized)
			return
		}
		for _, r := range roles {
			if user.Role == r {
				c.Next()
				return
			}
		}
		response.Fail(c, http.StatusForbidden, constants.MsgForbidden)
	}
}

// CurrentUser the authenticated user, or nil
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}

// SetCurrentUser stores user as the authenticated user
func SetCurrentUser(c *gin.Context, user *model.User) {
	c.Set(userContextKey, user)
}

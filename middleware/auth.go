package middleware

import (
	"net/http"

	"drone-delivery-api/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys for the identity snapshot.
const (
	keyUserID    = "user_id"
	keyUserName  = "user_name"
	keyUserEmail = "user_email"
	keyUserRole  = "user_role"
)

// LoginUser saves the identity snapshot into the session. The snapshot
// is immutable until the next login.
func LoginUser(c *gin.Context, id models.Identity) error {
	s := sessions.Default(c)
	s.Set(keyUserID, id.ID)
	s.Set(keyUserName, id.Name)
	s.Set(keyUserEmail, id.Email)
	s.Set(keyUserRole, string(id.Role))
	return s.Save()
}

// LogoutUser drops the session unconditionally. Logging out twice is
// not an error.
func LogoutUser(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	return s.Save()
}

// CurrentUser returns the identity snapshot from the session, if any.
func CurrentUser(c *gin.Context) (models.Identity, bool) {
	s := sessions.Default(c)
	userID, ok := s.Get(keyUserID).(int64)
	if !ok {
		return models.Identity{}, false
	}
	name, _ := s.Get(keyUserName).(string)
	email, _ := s.Get(keyUserEmail).(string)
	role, _ := s.Get(keyUserRole).(string)
	return models.Identity{ID: userID, Name: name, Email: email, Role: models.UserRole(role)}, true
}

// AuthRequired rejects requests without an authenticated session.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RoleRequired enforces that the caller holds the given role.
func RoleRequired(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		if user.Role != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}

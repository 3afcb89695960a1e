package middleware

import (
	"net/http"

	"github.com/ashishaher15/eduplus-challange/database/model"
	"github.com/ashishaher15/eduplus-challange/web/session"

	"github.com/gin-gonic/gin"
)

// RoleRequired rejects requests whose session user does not hold one of the
// given roles.
func RoleRequired(roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		user := session.GetLoginUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}
		if !allowed[user.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}
		c.Next()
	}
}

// Package controller provides the HTTP handlers of the eduplus REST API and
// the embedded pages.
package controller

import (
	"net/http"

	"github.com/ashishaher15/eduplus-challange/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers.
type BaseController struct{}

// checkLogin aborts API requests that carry no login session.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
		return
	}
	c.Next()
}

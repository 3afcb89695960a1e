package controller

import (
	"net"
	"net/http"
	"strings"

	"github.com/ashishaher15/eduplus-challange/logger"
	"github.com/ashishaher15/eduplus-challange/util/validation"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real client IP from proxy headers or the remote
// address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// jsonError sends an {"error": msg} body with the given status.
func jsonError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// jsonFieldErrors sends field-level validation messages as a 400 response.
func jsonFieldErrors(c *gin.Context, errs validation.FieldErrors) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}

// jsonInternalError logs the cause and returns a generic 500 without leaking
// internals.
func jsonInternalError(c *gin.Context, msg string, err error) {
	logger.Warning(msg+":", err)
	jsonError(c, http.StatusInternalServerError, msg)
}

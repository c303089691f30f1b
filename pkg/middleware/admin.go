package middleware

import (
	"crypto/subtle"
	"net/http"

	"stylefeed/pkg/config"

	"github.com/gin-gonic/gin"
)

const adminRealm = `Basic realm="stylefeed admin"`

// AdminGateMiddleware guards the operator surface with a static Basic-Auth
// pair. It is entirely independent of the session scheme: no cookie or token
// state is consulted. When credentials are not configured the gate fails
// closed with 503 rather than challenging for a password nobody holds.
func AdminGateMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.AdminConfigured() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin interface unavailable"})
			c.Abort()
			return
		}

		user, password, ok := c.Request.BasicAuth()
		if !ok || !adminCredentialsMatch(cfg, user, password) {
			c.Header("WWW-Authenticate", adminRealm)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not permitted"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func adminCredentialsMatch(cfg *config.Config, user, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.AdminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPassword)) == 1
	return userOK && passOK
}

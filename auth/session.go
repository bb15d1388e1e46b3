package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarnali3515/query-nest-server/config"
)

// IssueSession handles POST /jwt. The client supplies its own identity
// payload; whatever it sends is signed into the session token, as long as it
// names a non-empty email.
func IssueSession(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var identity map[string]interface{}
		if err := c.ShouldBindJSON(&identity); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid identity payload"})
			return
		}

		email, _ := identity["email"].(string)
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
			return
		}

		token, err := IssueToken(cfg.TokenSecret, identity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}

		setSessionCookie(c, cfg, token, int(TokenTTL.Seconds()))
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// Logout handles POST /logout by expiring the session cookie with the same
// flags it was set with. Clearing a session that never existed still
// succeeds.
func Logout(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		setSessionCookie(c, cfg, "", -1)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sarnali3515/query-nest-server/auth"
	"github.com/sarnali3515/query-nest-server/config"
)

// SetupAuthRoutes registers the session credential endpoints.
func SetupAuthRoutes(r *gin.Engine, cfg *config.Config) {
	r.POST("/jwt", auth.IssueSession(cfg))
	r.POST("/logout", auth.Logout(cfg))
	r.GET("/logout", auth.Logout(cfg))
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sarnali3515/query-nest-server/config"
	"github.com/sarnali3515/query-nest-server/store"
)

// SetupRoutes is the single entry-point that wires up the session, query,
// recommendation and favorite route groups.
//
// Guard coverage intentionally follows the deployed contract rather than a
// uniform per-resource policy: creates and the recommendation delete are
// open while some reads are guarded.
func SetupRoutes(r *gin.Engine, cfg *config.Config, s *store.Stores) {
	// Session routes (no middleware)
	SetupAuthRoutes(r, cfg)

	// Query routes
	SetupQueryRoutes(r, cfg, s)

	// Recommendation routes
	SetupRecommendationRoutes(r, cfg, s)

	// Favorite routes
	SetupFavoriteRoutes(r, cfg, s)
}

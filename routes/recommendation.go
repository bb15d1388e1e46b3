package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sarnali3515/query-nest-server/config"
	recommendationcontroller "github.com/sarnali3515/query-nest-server/controllers/recommendation"
	"github.com/sarnali3515/query-nest-server/middleware"
	"github.com/sarnali3515/query-nest-server/store"
)

// SetupRecommendationRoutes registers the recommendation endpoints, including
// the two cascading ones.
func SetupRecommendationRoutes(r *gin.Engine, cfg *config.Config, s *store.Stores) {
	guard := middleware.ValidateToken(cfg.TokenSecret)

	r.POST("/recommendation", recommendationcontroller.CreateRecommendation(s.Recommendations, s.Queries))
	r.GET("/recommendation", guard, recommendationcontroller.GetRecommendations(s.Recommendations))
	r.GET("/my-recommendation/:email", guard, middleware.RequireOwnerEmail, recommendationcontroller.GetMyRecommendations(s.Recommendations))
	r.GET("/recommendation-me/:email", guard, middleware.RequireOwnerEmail, recommendationcontroller.GetRecommendationsForMe(s.Recommendations))
	r.DELETE("/recommendation/:id", recommendationcontroller.DeleteRecommendation(s.Recommendations, s.Queries))
}

package recommendationcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarnali3515/query-nest-server/store"
)

// GetRecommendations returns every recommendation across all recommenders.
func GetRecommendations(recs store.RecommendationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := recs.All(c.Request.Context())
		if err != nil {
			log.Printf("list recommendations: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recommendations"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetMyRecommendations returns the recommendations authored by :email.
func GetMyRecommendations(recs store.RecommendationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := recs.ByRecommender(c.Request.Context(), c.Param("email"))
		if err != nil {
			log.Printf("list my recommendations: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recommendations"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetRecommendationsForMe returns the recommendations made against queries
// owned by :email, via the denormalized query-owner field.
func GetRecommendationsForMe(recs store.RecommendationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := recs.ByQueryOwner(c.Request.Context(), c.Param("email"))
		if err != nil {
			log.Printf("list recommendations for me: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recommendations"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

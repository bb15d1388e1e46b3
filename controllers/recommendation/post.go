package recommendationcontroller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sarnali3515/query-nest-server/models"
	"github.com/sarnali3515/query-nest-server/store"
)

// CreateRecommendation inserts a recommendation, then bumps the parent
// query's recommendationCount and re-reads it for the response.
//
// The insert and the counter update are two independently committed writes;
// a failure between them leaves the counter behind the real recommendation
// count. A queryId that matches no query (or doesn't parse) skips the bump
// and the recommendation stands on its own.
func CreateRecommendation(recs store.RecommendationStore, queries store.QueryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rec models.Recommendation
		if err := c.ShouldBindJSON(&rec); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recommendation payload"})
			return
		}

		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = time.Now()
		}

		ctx := c.Request.Context()
		id, err := recs.Insert(ctx, rec)
		if err != nil {
			log.Printf("create recommendation: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recommendation"})
			return
		}

		var updatedQuery *models.Query
		if queryID, err := primitive.ObjectIDFromHex(rec.QueryID); err == nil {
			if _, err := queries.AdjustRecommendationCount(ctx, queryID, 1); err != nil {
				log.Printf("increment recommendation count for %s: %v", rec.QueryID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
				return
			}
			updatedQuery, err = queries.ByID(ctx, queryID)
			if err != nil && err != store.ErrNotFound {
				log.Printf("reload query %s: %v", rec.QueryID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"result":       gin.H{"acknowledged": true, "insertedId": id},
			"updatedQuery": updatedQuery,
		})
	}
}

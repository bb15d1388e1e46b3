package recommendationcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sarnali3515/query-nest-server/store"
)

// DeleteRecommendation looks the recommendation up first so the parent query
// is known, deletes it, then walks the counter back down. A recommendation
// that doesn't exist is a 404 and nothing is touched; a parent query that is
// already gone makes the decrement a no-op.
func DeleteRecommendation(recs store.RecommendationStore, queries store.QueryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recommendation ID"})
			return
		}

		ctx := c.Request.Context()
		rec, err := recs.ByID(ctx, id)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recommendation not found"})
			return
		}
		if err != nil {
			log.Printf("lookup recommendation %s: %v", id.Hex(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}

		deleted, err := recs.Delete(ctx, id)
		if err != nil {
			log.Printf("delete recommendation %s: %v", id.Hex(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}

		// Same two-write gap as the create path: the delete above is already
		// committed even if this decrement fails.
		if queryID, err := primitive.ObjectIDFromHex(rec.QueryID); err == nil {
			if _, err := queries.AdjustRecommendationCount(ctx, queryID, -1); err != nil {
				log.Printf("decrement recommendation count for %s: %v", rec.QueryID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": deleted})
	}
}

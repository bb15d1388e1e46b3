package querycontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sarnali3515/query-nest-server/store"
)

// GetQueryByID returns a single query.
// URL param: /query/:id
func GetQueryByID(queries store.QueryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query ID"})
			return
		}

		query, err := queries.ByID(c.Request.Context(), id)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Query not found"})
			return
		}
		if err != nil {
			log.Printf("get query %s: %v", id.Hex(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve query"})
			return
		}
		c.JSON(http.StatusOK, query)
	}
}

package querycontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sarnali3515/query-nest-server/store"
)

// DeleteQuery removes a query by ID. The response reports how many documents
// went away; deleting an already-gone query is not an error.
func DeleteQuery(queries store.QueryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query ID"})
			return
		}

		deleted, err := queries.Delete(c.Request.Context(), id)
		if err != nil {
			log.Printf("delete query %s: %v", id.Hex(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete query"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": deleted})
	}
}

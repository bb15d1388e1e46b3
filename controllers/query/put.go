package querycontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sarnali3515/query-nest-server/store"
)

// UpdateQuery upserts a query by ID. Only the fields present in the body are
// written, so recommendationCount survives an update that doesn't name it.
// A missing document is created with the supplied fields.
func UpdateQuery(queries store.QueryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query ID"})
			return
		}

		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query payload"})
			return
		}
		// The path owns the identity; never let the body overwrite it.
		delete(fields, "_id")

		result, err := queries.Upsert(c.Request.Context(), id, fields)
		if err != nil {
			log.Printf("update query %s: %v", id.Hex(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update query"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

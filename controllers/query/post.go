package querycontroller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sarnali3515/query-nest-server/models"
	"github.com/sarnali3515/query-nest-server/store"
)

// CreateQuery inserts a new query. A fresh query always starts with a zero
// recommendation count; only the cascade moves it afterwards.
func CreateQuery(queries store.QueryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query models.Query
		if err := c.ShouldBindJSON(&query); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query payload"})
			return
		}

		if query.CreatedAt.IsZero() {
			query.CreatedAt = time.Now()
		}

		id, err := queries.Insert(c.Request.Context(), query)
		if err != nil {
			log.Printf("create query: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create query"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
	}
}

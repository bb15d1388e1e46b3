package querycontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarnali3515/query-nest-server/store"
)

// GetQueries returns every query, newest first.
func GetQueries(queries store.QueryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := queries.All(c.Request.Context())
		if err != nil {
			log.Printf("list queries: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch queries"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetQueriesByOwner returns the queries owned by the :email path param,
// newest first. The owner-match middleware has already vouched that the
// caller is that email.
func GetQueriesByOwner(queries store.QueryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := queries.ByOwner(c.Request.Context(), c.Param("email"))
		if err != nil {
			log.Printf("list queries by owner: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch queries"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

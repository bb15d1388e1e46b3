package favoritecontroller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sarnali3515/query-nest-server/models"
	"github.com/sarnali3515/query-nest-server/store"
)

// CreateFavorite bookmarks a query. The body carries a snapshot of the query
// details, so nothing here references the live query document.
func CreateFavorite(favorites store.FavoriteStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var fav models.Favorite
		if err := c.ShouldBindJSON(&fav); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid favorite payload"})
			return
		}

		if fav.CreatedAt.IsZero() {
			fav.CreatedAt = time.Now()
		}

		id, err := favorites.Insert(c.Request.Context(), fav)
		if err != nil {
			log.Printf("create favorite: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create favorite"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
	}
}

// GetFavorites returns every favorite, newest first.
func GetFavorites(favorites store.FavoriteStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := favorites.All(c.Request.Context())
		if err != nil {
			log.Printf("list favorites: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching favorites"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetFavoritesByOwner returns the favorites saved by :email, newest first.
func GetFavoritesByOwner(favorites store.FavoriteStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := favorites.ByOwner(c.Request.Context(), c.Param("email"))
		if err != nil {
			log.Printf("list favorites by owner: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching favorites"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// DeleteFavorite removes a bookmark by ID.
func DeleteFavorite(favorites store.FavoriteStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid favorite ID"})
			return
		}

		deleted, err := favorites.Delete(c.Request.Context(), id)
		if err != nil {
			log.Printf("delete favorite %s: %v", id.Hex(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete favorite"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": deleted})
	}
}

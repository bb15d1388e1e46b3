package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sarnali3515/query-nest-server/config"
	favoritecontroller "github.com/sarnali3515/query-nest-server/controllers/favorite"
	"github.com/sarnali3515/query-nest-server/middleware"
	"github.com/sarnali3515/query-nest-server/store"
)

// SetupFavoriteRoutes registers the favorite endpoints.
func SetupFavoriteRoutes(r *gin.Engine, cfg *config.Config, s *store.Stores) {
	guard := middleware.ValidateToken(cfg.TokenSecret)

	r.POST("/favorites", favoritecontroller.CreateFavorite(s.Favorites))
	r.GET("/favorites", favoritecontroller.GetFavorites(s.Favorites))
	r.GET("/favorites/:email", favoritecontroller.GetFavoritesByOwner(s.Favorites))
	r.DELETE("/favorite/:id", guard, favoritecontroller.DeleteFavorite(s.Favorites))
}

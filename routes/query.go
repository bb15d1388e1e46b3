package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sarnali3515/query-nest-server/config"
	querycontroller "github.com/sarnali3515/query-nest-server/controllers/query"
	"github.com/sarnali3515/query-nest-server/middleware"
	"github.com/sarnali3515/query-nest-server/store"
)

// SetupQueryRoutes registers the query CRUD endpoints.
func SetupQueryRoutes(r *gin.Engine, cfg *config.Config, s *store.Stores) {
	guard := middleware.ValidateToken(cfg.TokenSecret)

	r.GET("/queries", querycontroller.GetQueries(s.Queries))
	r.GET("/queries/:email", guard, middleware.RequireOwnerEmail, querycontroller.GetQueriesByOwner(s.Queries))
	r.GET("/query/:id", guard, querycontroller.GetQueryByID(s.Queries))
	r.POST("/queries", querycontroller.CreateQuery(s.Queries))
	r.PUT("/query/:id", querycontroller.UpdateQuery(s.Queries))
	r.DELETE("/query/:id", guard, querycontroller.DeleteQuery(s.Queries))
}

package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sarnali3515/query-nest-server/config"
	"github.com/sarnali3515/query-nest-server/routes"
	"github.com/sarnali3515/query-nest-server/store"
)

func main() {
	log.Println("✅ Starting Query Nest server...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	// Init DB
	client := initDatabase(cfg)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("Mongo disconnect: %v", err)
		}
	}()

	stores := store.NewMongoStores(client.Database("queryNest"))

	// Gin setup
	r := gin.Default()

	// CORS settings: credentialed requests from the known frontends only
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Query Nest is running")
	})

	// Setup routes
	routes.SetupRoutes(r, cfg, stores)

	// Start server
	log.Printf("🚀 Query Nest server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase connects the Mongo client with the Stable API pinned to v1.
func initDatabase(cfg *config.Config) *mongo.Client {
	serverAPI := mongooptions.ServerAPI(mongooptions.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, mongooptions.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(serverAPI))
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	return client
}

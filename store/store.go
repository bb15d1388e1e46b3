package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sarnali3515/query-nest-server/models"
)

// ErrNotFound is returned by ByID lookups when no document matches.
var ErrNotFound = errors.New("document not found")

// UpsertResult mirrors the update metadata the API exposes to clients.
type UpsertResult struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

// QueryStore owns the query documents.
type QueryStore interface {
	Insert(ctx context.Context, q models.Query) (primitive.ObjectID, error)
	All(ctx context.Context) ([]models.Query, error)
	ByOwner(ctx context.Context, email string) ([]models.Query, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*models.Query, error)
	// Upsert merges the supplied fields into the document, creating it when
	// absent. Fields not named are left untouched.
	Upsert(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*UpsertResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	// AdjustRecommendationCount adds delta to the counter and reports how
	// many documents matched; 0 when the query no longer exists.
	AdjustRecommendationCount(ctx context.Context, id primitive.ObjectID, delta int64) (int64, error)
}

// RecommendationStore owns the recommendation documents.
type RecommendationStore interface {
	Insert(ctx context.Context, r models.Recommendation) (primitive.ObjectID, error)
	All(ctx context.Context) ([]models.Recommendation, error)
	ByRecommender(ctx context.Context, email string) ([]models.Recommendation, error)
	ByQueryOwner(ctx context.Context, email string) ([]models.Recommendation, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*models.Recommendation, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// FavoriteStore owns the favorite documents.
type FavoriteStore interface {
	Insert(ctx context.Context, f models.Favorite) (primitive.ObjectID, error)
	All(ctx context.Context) ([]models.Favorite, error)
	ByOwner(ctx context.Context, email string) ([]models.Favorite, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// Stores bundles the three document stores handed to the route setup.
type Stores struct {
	Queries         QueryStore
	Recommendations RecommendationStore
	Favorites       FavoriteStore
}

// NewMongoStores wires the stores onto the queryNest collections.
func NewMongoStores(db *mongo.Database) *Stores {
	return &Stores{
		Queries:         &MongoQueryStore{coll: db.Collection("queries")},
		Recommendations: &MongoRecommendationStore{coll: db.Collection("recommendation")},
		Favorites:       &MongoFavoriteStore{coll: db.Collection("favorite")},
	}
}

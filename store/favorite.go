package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sarnali3515/query-nest-server/models"
)

// MongoFavoriteStore backs FavoriteStore with the favorite collection.
type MongoFavoriteStore struct {
	coll *mongo.Collection
}

func (s *MongoFavoriteStore) Insert(ctx context.Context, f models.Favorite) (primitive.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, f)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *MongoFavoriteStore) All(ctx context.Context) ([]models.Favorite, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoFavoriteStore) ByOwner(ctx context.Context, email string) ([]models.Favorite, error) {
	return s.find(ctx, bson.M{"userEmail": email})
}

func (s *MongoFavoriteStore) find(ctx context.Context, filter bson.M) ([]models.Favorite, error) {
	cursor, err := s.coll.Find(ctx, filter, newestFirst)
	if err != nil {
		return nil, err
	}
	results := []models.Favorite{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *MongoFavoriteStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

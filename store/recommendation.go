package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sarnali3515/query-nest-server/models"
)

// MongoRecommendationStore backs RecommendationStore with the recommendation
// collection.
type MongoRecommendationStore struct {
	coll *mongo.Collection
}

func (s *MongoRecommendationStore) Insert(ctx context.Context, r models.Recommendation) (primitive.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, r)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *MongoRecommendationStore) All(ctx context.Context) ([]models.Recommendation, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoRecommendationStore) ByRecommender(ctx context.Context, email string) ([]models.Recommendation, error) {
	return s.find(ctx, bson.M{"recommenderEmail": email})
}

func (s *MongoRecommendationStore) ByQueryOwner(ctx context.Context, email string) ([]models.Recommendation, error) {
	return s.find(ctx, bson.M{"userEmail": email})
}

func (s *MongoRecommendationStore) find(ctx context.Context, filter bson.M) ([]models.Recommendation, error) {
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	results := []models.Recommendation{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *MongoRecommendationStore) ByID(ctx context.Context, id primitive.ObjectID) (*models.Recommendation, error) {
	var r models.Recommendation
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *MongoRecommendationStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

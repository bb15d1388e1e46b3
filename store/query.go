package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sarnali3515/query-nest-server/models"
)

// MongoQueryStore backs QueryStore with the queries collection.
type MongoQueryStore struct {
	coll *mongo.Collection
}

// newestFirst sorts by ObjectID, which embeds the creation timestamp.
var newestFirst = options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})

func (s *MongoQueryStore) Insert(ctx context.Context, q models.Query) (primitive.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, q)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *MongoQueryStore) All(ctx context.Context) ([]models.Query, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoQueryStore) ByOwner(ctx context.Context, email string) ([]models.Query, error) {
	return s.find(ctx, bson.M{"userEmail": email})
}

func (s *MongoQueryStore) find(ctx context.Context, filter bson.M) ([]models.Query, error) {
	cursor, err := s.coll.Find(ctx, filter, newestFirst)
	if err != nil {
		return nil, err
	}
	results := []models.Query{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *MongoQueryStore) ByID(ctx context.Context, id primitive.ObjectID) (*models.Query, error) {
	var q models.Query
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&q)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *MongoQueryStore) Upsert(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*UpsertResult, error) {
	update := bson.M{"$set": bson.M(fields)}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return &UpsertResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func (s *MongoQueryStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *MongoQueryStore) AdjustRecommendationCount(ctx context.Context, id primitive.ObjectID, delta int64) (int64, error) {
	update := bson.M{"$inc": bson.M{"recommendationCount": delta}}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

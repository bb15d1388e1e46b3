package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recommendation is one user's suggested alternative for a Query. QueryID is
// kept as the hex string clients send; UserEmail is the query owner's email,
// denormalized so "recommendations for me" is a single filter.
type Recommendation struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	QueryID              string             `bson:"queryId" json:"queryId"`
	QueryTitle           string             `bson:"queryTitle,omitempty" json:"queryTitle,omitempty"`
	ProductName          string             `bson:"productName,omitempty" json:"productName,omitempty"`
	UserEmail            string             `bson:"userEmail" json:"userEmail"`
	RecommenderEmail     string             `bson:"recommenderEmail" json:"recommenderEmail"`
	RecommenderName      string             `bson:"recommenderName,omitempty" json:"recommenderName,omitempty"`
	RecommendationTitle  string             `bson:"recommendationTitle" json:"recommendationTitle"`
	RecommendedProduct   string             `bson:"recommendedProduct" json:"recommendedProduct"`
	RecommendedImage     string             `bson:"recommendedImage,omitempty" json:"recommendedImage,omitempty"`
	RecommendationReason string             `bson:"recommendationReason,omitempty" json:"recommendationReason,omitempty"`
	CreatedAt            time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

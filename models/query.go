package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Query is a user-submitted question about a product, asking the community
// for alternatives. RecommendationCount is only ever adjusted by the
// recommendation cascade, never written directly by clients.
type Query struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserEmail           string             `bson:"userEmail" json:"userEmail"`
	UserName            string             `bson:"userName,omitempty" json:"userName,omitempty"`
	UserImage           string             `bson:"userImage,omitempty" json:"userImage,omitempty"`
	ProductName         string             `bson:"productName" json:"productName"`
	ProductBrand        string             `bson:"productBrand" json:"productBrand"`
	ProductImage        string             `bson:"productImage,omitempty" json:"productImage,omitempty"`
	QueryTitle          string             `bson:"queryTitle" json:"queryTitle"`
	BoycottingReason    string             `bson:"boycottingReason,omitempty" json:"boycottingReason,omitempty"`
	RecommendationCount int64              `bson:"recommendationCount" json:"recommendationCount"`
	CreatedAt           time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorite is a bookmark of a Query. It snapshots the query details instead
// of referencing the live document, so a deleted query leaves the bookmark
// intact.
type Favorite struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserEmail    string             `bson:"userEmail" json:"userEmail"`
	QueryID      string             `bson:"queryId,omitempty" json:"queryId,omitempty"`
	QueryTitle   string             `bson:"queryTitle,omitempty" json:"queryTitle,omitempty"`
	ProductName  string             `bson:"productName,omitempty" json:"productName,omitempty"`
	ProductBrand string             `bson:"productBrand,omitempty" json:"productBrand,omitempty"`
	ProductImage string             `bson:"productImage,omitempty" json:"productImage,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campaign is read-only and intentionally open-ended: beyond the identifier
// and name, documents in the Campanha collection never settled on a fixed
// schema, so the remainder is carried as-is.
type Campaign struct {
	ID     primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Name   string                 `bson:"nome,omitempty" json:"name,omitempty"`
	Fields map[string]interface{} `bson:",inline" json:"fields,omitempty"`
}

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Channel groups posts. Names are not unique.
type Channel struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name"`
}

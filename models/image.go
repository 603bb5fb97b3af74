package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image is an uploaded file: base64-encoded bytes plus content type and
// original filename, owned by the uploading user. Avatars (profile pictures)
// and post/comment attachments share this shape but live in separate
// collections. Images are immutable once created and never deleted.
type Image struct {
	ID   primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Data string              `bson:"data" json:"data"`
	Type string              `bson:"type" json:"type"`
	Name string              `bson:"name" json:"name"`
	User *primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
}

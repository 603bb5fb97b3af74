package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user. Password holds the bcrypt hash, never
// the plaintext. It is serialized in responses, matching the current API
// contract (flagged as a product decision, not corrected here).
type User struct {
	ID       primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Username string              `bson:"username" json:"username"`
	Password string              `bson:"password" json:"password"`
	Name     string              `bson:"name,omitempty" json:"name,omitempty"`
	Image    *primitive.ObjectID `bson:"image,omitempty" json:"image,omitempty"`
}

// UserView is the wire shape of a user read: stored fields plus the resolved
// avatar. The Image field shadows the embedded reference id.
type UserView struct {
	User
	Image *Image `json:"image"`
}

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reaction is a like or a dislike; the two kinds share a shape and are kept
// in separate collections. Post and Comment are both optional — a reaction
// targets one of them, but storing both is accepted and left as sent.
// Reactions are never deduplicated.
type Reaction struct {
	ID      primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Date    int64               `bson:"date" json:"date"`
	User    *primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	Post    *primitive.ObjectID `bson:"post,omitempty" json:"post,omitempty"`
	Comment *primitive.ObjectID `bson:"comment,omitempty" json:"comment,omitempty"`
}

// ReactionKind selects the like or dislike collection.
type ReactionKind string

const (
	KindLike    ReactionKind = "likes"
	KindDislike ReactionKind = "dislikes"
)

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a reply to a post. Likes and dislikes are derived at read time
// from the reaction collections' comment references.
type Comment struct {
	ID       primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Content  string              `bson:"content" json:"content"`
	GiphyURL string              `bson:"giphyUrl,omitempty" json:"giphyUrl,omitempty"`
	Date     int64               `bson:"date" json:"date"`
	User     *primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	Post     *primitive.ObjectID `bson:"post,omitempty" json:"post,omitempty"`
	Image    *primitive.ObjectID `bson:"image,omitempty" json:"image,omitempty"`
}

// CommentView is the wire shape of an expanded comment.
type CommentView struct {
	Comment
	User     *UserView  `json:"user,omitempty"`
	Image    *Image     `json:"image,omitempty"`
	Likes    []Reaction `json:"likes"`
	Dislikes []Reaction `json:"dislikes"`
}

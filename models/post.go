package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a piece of content published to a channel. Date is epoch millis
// assigned by the server at creation. User, Channel and Image are reference
// ids; comments, likes and dislikes are derived at read time by matching the
// referencing collections against this post's id.
type Post struct {
	ID       primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Title    string              `bson:"title" json:"title"`
	Content  string              `bson:"content" json:"content"`
	GiphyURL string              `bson:"giphyUrl,omitempty" json:"giphyUrl,omitempty"`
	Date     int64               `bson:"date" json:"date"`
	User     *primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	Channel  *primitive.ObjectID `bson:"channel,omitempty" json:"channel,omitempty"`
	Image    *primitive.ObjectID `bson:"image,omitempty" json:"image,omitempty"`
}

// PostView is the wire shape of an expanded post: the stored fields with
// user/image references resolved and the derived comment and reaction
// collections attached.
type PostView struct {
	Post
	User     *UserView     `json:"user,omitempty"`
	Image    *Image        `json:"image,omitempty"`
	Comments []CommentView `json:"comments"`
	Likes    []Reaction    `json:"likes"`
	Dislikes []Reaction    `json:"dislikes"`
}

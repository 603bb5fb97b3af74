package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stevenhalase/vetrant-api/models"
)

// Expansion selects how much of a document's reference graph a read
// resolves. It is passed explicitly by the caller on every read; the data
// layer never expands behind the caller's back.
type Expansion int

const (
	// ExpandNone returns stored fields only; reference fields stay ids.
	ExpandNone Expansion = iota
	// ExpandFull resolves reference fields into full documents and attaches
	// the derived collections (comments, likes, dislikes). Applies the same
	// way to single-document and multi-document reads.
	ExpandFull
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string, policy Expansion) (*models.UserView, error)
	FindByID(ctx context.Context, id primitive.ObjectID, policy Expansion) (*models.UserView, error)
	Exists(ctx context.Context, username string) (bool, error)
	SetAvatar(ctx context.Context, userID, avatarID primitive.ObjectID) error
}

type ImageRepository interface {
	CreateAvatar(ctx context.Context, image *models.Image) error
	CreateImage(ctx context.Context, image *models.Image) error
	FindAvatarByID(ctx context.Context, id primitive.ObjectID) (*models.Image, error)
	FindImageByID(ctx context.Context, id primitive.ObjectID) (*models.Image, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id primitive.ObjectID, policy Expansion) (*models.PostView, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID, policy Expansion) ([]models.PostView, error)
	FindByChannel(ctx context.Context, channelID primitive.ObjectID, policy Expansion) ([]models.PostView, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id primitive.ObjectID, policy Expansion) (*models.CommentView, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID, policy Expansion) ([]models.CommentView, error)
}

type ReactionRepository interface {
	Create(ctx context.Context, kind models.ReactionKind, reaction *models.Reaction) error
	FindByPost(ctx context.Context, kind models.ReactionKind, postID primitive.ObjectID) ([]models.Reaction, error)
	FindByComment(ctx context.Context, kind models.ReactionKind, commentID primitive.ObjectID) ([]models.Reaction, error)
}

type ChannelRepository interface {
	Create(ctx context.Context, channel *models.Channel) error
	FindAll(ctx context.Context) ([]models.Channel, error)
}

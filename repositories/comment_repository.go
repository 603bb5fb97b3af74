package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stevenhalase/vetrant-api/database"
	"github.com/stevenhalase/vetrant-api/models"
)

// MongoCommentRepository persists comments. Expanded reads resolve the user
// and image references and attach the derived like/dislike collections.
type MongoCommentRepository struct {
	comments  *mongo.Collection
	users     *MongoUserRepository
	images    *MongoImageRepository
	reactions *MongoReactionRepository
}

func NewCommentRepository(db *database.DB, users *MongoUserRepository, images *MongoImageRepository, reactions *MongoReactionRepository) *MongoCommentRepository {
	return &MongoCommentRepository{
		comments:  db.Collection("comments"),
		users:     users,
		images:    images,
		reactions: reactions,
	}
}

func (repo *MongoCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	_, err := repo.comments.InsertOne(ctx, comment)
	return err
}

func (repo *MongoCommentRepository) FindByID(ctx context.Context, id primitive.ObjectID, policy Expansion) (*models.CommentView, error) {
	var comment models.Comment
	err := repo.comments.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return repo.expand(ctx, &comment, policy)
}

func (repo *MongoCommentRepository) FindByUser(ctx context.Context, userID primitive.ObjectID, policy Expansion) ([]models.CommentView, error) {
	return repo.find(ctx, bson.M{"user": userID}, policy)
}

// FindByPost lists a post's comments; the post repository uses it to build
// the derived comments view.
func (repo *MongoCommentRepository) FindByPost(ctx context.Context, postID primitive.ObjectID, policy Expansion) ([]models.CommentView, error) {
	return repo.find(ctx, bson.M{"post": postID}, policy)
}

func (repo *MongoCommentRepository) find(ctx context.Context, filter bson.M, policy Expansion) ([]models.CommentView, error) {
	cursor, err := repo.comments.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}

	views := make([]models.CommentView, 0, len(comments))
	for i := range comments {
		view, err := repo.expand(ctx, &comments[i], policy)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (repo *MongoCommentRepository) expand(ctx context.Context, comment *models.Comment, policy Expansion) (*models.CommentView, error) {
	view := &models.CommentView{
		Comment:  *comment,
		Likes:    []models.Reaction{},
		Dislikes: []models.Reaction{},
	}
	if policy == ExpandNone {
		return view, nil
	}

	if comment.User != nil {
		user, err := repo.users.FindByID(ctx, *comment.User, ExpandFull)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		view.User = user
	}

	if comment.Image != nil {
		image, err := repo.images.FindImageByID(ctx, *comment.Image)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		view.Image = image
	}

	likes, err := repo.reactions.FindByComment(ctx, models.KindLike, comment.ID)
	if err != nil {
		return nil, err
	}
	view.Likes = likes

	dislikes, err := repo.reactions.FindByComment(ctx, models.KindDislike, comment.ID)
	if err != nil {
		return nil, err
	}
	view.Dislikes = dislikes

	return view, nil
}

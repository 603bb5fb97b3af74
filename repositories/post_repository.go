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

// MongoPostRepository persists posts. Expanded reads resolve the user and
// image references and attach the derived comments, likes and dislikes.
// Comments inside an expanded post are themselves expanded one level.
type MongoPostRepository struct {
	posts     *mongo.Collection
	users     *MongoUserRepository
	images    *MongoImageRepository
	comments  *MongoCommentRepository
	reactions *MongoReactionRepository
}

func NewPostRepository(db *database.DB, users *MongoUserRepository, images *MongoImageRepository, comments *MongoCommentRepository, reactions *MongoReactionRepository) *MongoPostRepository {
	return &MongoPostRepository{
		posts:     db.Collection("posts"),
		users:     users,
		images:    images,
		comments:  comments,
		reactions: reactions,
	}
}

func (repo *MongoPostRepository) Create(ctx context.Context, post *models.Post) error {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	_, err := repo.posts.InsertOne(ctx, post)
	return err
}

func (repo *MongoPostRepository) FindByID(ctx context.Context, id primitive.ObjectID, policy Expansion) (*models.PostView, error) {
	var post models.Post
	err := repo.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return repo.expand(ctx, &post, policy)
}

func (repo *MongoPostRepository) FindByUser(ctx context.Context, userID primitive.ObjectID, policy Expansion) ([]models.PostView, error) {
	return repo.find(ctx, bson.M{"user": userID}, policy)
}

func (repo *MongoPostRepository) FindByChannel(ctx context.Context, channelID primitive.ObjectID, policy Expansion) ([]models.PostView, error) {
	return repo.find(ctx, bson.M{"channel": channelID}, policy)
}

func (repo *MongoPostRepository) find(ctx context.Context, filter bson.M, policy Expansion) ([]models.PostView, error) {
	cursor, err := repo.posts.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	views := make([]models.PostView, 0, len(posts))
	for i := range posts {
		view, err := repo.expand(ctx, &posts[i], policy)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (repo *MongoPostRepository) expand(ctx context.Context, post *models.Post, policy Expansion) (*models.PostView, error) {
	view := &models.PostView{
		Post:     *post,
		Comments: []models.CommentView{},
		Likes:    []models.Reaction{},
		Dislikes: []models.Reaction{},
	}
	if policy == ExpandNone {
		return view, nil
	}

	if post.User != nil {
		user, err := repo.users.FindByID(ctx, *post.User, ExpandFull)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		view.User = user
	}

	if post.Image != nil {
		image, err := repo.images.FindImageByID(ctx, *post.Image)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		view.Image = image
	}

	comments, err := repo.comments.FindByPost(ctx, post.ID, ExpandFull)
	if err != nil {
		return nil, err
	}
	view.Comments = comments

	likes, err := repo.reactions.FindByPost(ctx, models.KindLike, post.ID)
	if err != nil {
		return nil, err
	}
	view.Likes = likes

	dislikes, err := repo.reactions.FindByPost(ctx, models.KindDislike, post.ID)
	if err != nil {
		return nil, err
	}
	view.Dislikes = dislikes

	return view, nil
}

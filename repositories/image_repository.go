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

// MongoImageRepository persists uploaded files. Avatars and post/comment
// attachments share a shape but live in separate collections.
type MongoImageRepository struct {
	avatars *mongo.Collection
	images  *mongo.Collection
}

func NewImageRepository(db *database.DB) *MongoImageRepository {
	return &MongoImageRepository{
		avatars: db.Collection("avatars"),
		images:  db.Collection("images"),
	}
}

func (repo *MongoImageRepository) CreateAvatar(ctx context.Context, image *models.Image) error {
	return insertImage(ctx, repo.avatars, image)
}

func (repo *MongoImageRepository) CreateImage(ctx context.Context, image *models.Image) error {
	return insertImage(ctx, repo.images, image)
}

func (repo *MongoImageRepository) FindAvatarByID(ctx context.Context, id primitive.ObjectID) (*models.Image, error) {
	return findImage(ctx, repo.avatars, id)
}

func (repo *MongoImageRepository) FindImageByID(ctx context.Context, id primitive.ObjectID) (*models.Image, error) {
	return findImage(ctx, repo.images, id)
}

func insertImage(ctx context.Context, coll *mongo.Collection, image *models.Image) error {
	if image.ID.IsZero() {
		image.ID = primitive.NewObjectID()
	}
	_, err := coll.InsertOne(ctx, image)
	return err
}

func findImage(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) (*models.Image, error) {
	var image models.Image
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&image)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

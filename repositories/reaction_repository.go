package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stevenhalase/vetrant-api/database"
	"github.com/stevenhalase/vetrant-api/models"
)

// MongoReactionRepository persists likes and dislikes. Nothing deduplicates:
// a user reacting to the same target twice stores two documents.
type MongoReactionRepository struct {
	likes    *mongo.Collection
	dislikes *mongo.Collection
}

func NewReactionRepository(db *database.DB) *MongoReactionRepository {
	return &MongoReactionRepository{
		likes:    db.Collection("likes"),
		dislikes: db.Collection("dislikes"),
	}
}

func (repo *MongoReactionRepository) Create(ctx context.Context, kind models.ReactionKind, reaction *models.Reaction) error {
	if reaction.ID.IsZero() {
		reaction.ID = primitive.NewObjectID()
	}
	_, err := repo.collection(kind).InsertOne(ctx, reaction)
	return err
}

func (repo *MongoReactionRepository) FindByPost(ctx context.Context, kind models.ReactionKind, postID primitive.ObjectID) ([]models.Reaction, error) {
	return repo.find(ctx, kind, bson.M{"post": postID})
}

func (repo *MongoReactionRepository) FindByComment(ctx context.Context, kind models.ReactionKind, commentID primitive.ObjectID) ([]models.Reaction, error) {
	return repo.find(ctx, kind, bson.M{"comment": commentID})
}

func (repo *MongoReactionRepository) collection(kind models.ReactionKind) *mongo.Collection {
	if kind == models.KindDislike {
		return repo.dislikes
	}
	return repo.likes
}

func (repo *MongoReactionRepository) find(ctx context.Context, kind models.ReactionKind, filter bson.M) ([]models.Reaction, error) {
	cursor, err := repo.collection(kind).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reactions := []models.Reaction{}
	if err := cursor.All(ctx, &reactions); err != nil {
		return nil, err
	}
	return reactions, nil
}

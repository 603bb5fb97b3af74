package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stevenhalase/vetrant-api/database"
	"github.com/stevenhalase/vetrant-api/models"
)

// MongoChannelRepository persists channels. Channel names are not unique.
type MongoChannelRepository struct {
	channels *mongo.Collection
}

func NewChannelRepository(db *database.DB) *MongoChannelRepository {
	return &MongoChannelRepository{channels: db.Collection("channels")}
}

func (repo *MongoChannelRepository) Create(ctx context.Context, channel *models.Channel) error {
	if channel.ID.IsZero() {
		channel.ID = primitive.NewObjectID()
	}
	_, err := repo.channels.InsertOne(ctx, channel)
	return err
}

func (repo *MongoChannelRepository) FindAll(ctx context.Context) ([]models.Channel, error) {
	cursor, err := repo.channels.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	channels := []models.Channel{}
	if err := cursor.All(ctx, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

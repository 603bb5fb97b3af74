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

// MongoUserRepository persists users and resolves their avatars.
type MongoUserRepository struct {
	users  *mongo.Collection
	images *MongoImageRepository
}

func NewUserRepository(db *database.DB, images *MongoImageRepository) *MongoUserRepository {
	return &MongoUserRepository{
		users:  db.Collection("users"),
		images: images,
	}
}

// Create inserts a new user and fills in its assigned id.
func (repo *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := repo.users.InsertOne(ctx, user)
	return err
}

// Exists reports whether a user with the given username is already stored.
// The existence check and any subsequent insert are separate operations;
// concurrent identical registrations can race past it (known, accepted).
func (repo *MongoUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	count, err := repo.users.CountDocuments(ctx, bson.M{"username": username})
	return count > 0, err
}

func (repo *MongoUserRepository) FindByUsername(ctx context.Context, username string, policy Expansion) (*models.UserView, error) {
	return repo.findOne(ctx, bson.M{"username": username}, policy)
}

func (repo *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID, policy Expansion) (*models.UserView, error) {
	return repo.findOne(ctx, bson.M{"_id": id}, policy)
}

// SetAvatar points the user's image reference at a new avatar document. The
// previous avatar, if any, is left in place.
func (repo *MongoUserRepository) SetAvatar(ctx context.Context, userID, avatarID primitive.ObjectID) error {
	result, err := repo.users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{"image": avatarID}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *MongoUserRepository) findOne(ctx context.Context, filter bson.M, policy Expansion) (*models.UserView, error) {
	var user models.User
	err := repo.users.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return repo.expand(ctx, &user, policy)
}

// expand resolves the avatar reference when the policy asks for it. A
// dangling reference resolves to null rather than failing the read.
func (repo *MongoUserRepository) expand(ctx context.Context, user *models.User, policy Expansion) (*models.UserView, error) {
	view := &models.UserView{User: *user}
	if policy == ExpandNone || user.Image == nil {
		return view, nil
	}

	avatar, err := repo.images.FindAvatarByID(ctx, *user.Image)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	view.Image = avatar
	return view, nil
}

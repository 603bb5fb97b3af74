package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stevenhalase/vetrant-api/models"
	"github.com/stevenhalase/vetrant-api/repositories"
)

// In-memory stand-ins for the mongo repositories. They share a fakeStore so
// expansion can follow references across collections the way the real
// implementations do.

type fakeStore struct {
	users    []models.User
	avatars  []models.Image
	images   []models.Image
	posts    []models.Post
	comments []models.Comment
	likes    []models.Reaction
	dislikes []models.Reaction
	channels []models.Channel
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

type fakeUserRepo struct{ store *fakeStore }

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.store.users = append(f.store.users, *user)
	return nil
}

func (f *fakeUserRepo) Exists(ctx context.Context, username string) (bool, error) {
	for i := range f.store.users {
		if f.store.users[i].Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string, policy repositories.Expansion) (*models.UserView, error) {
	for i := range f.store.users {
		if f.store.users[i].Username == username {
			return f.expand(f.store.users[i], policy), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID, policy repositories.Expansion) (*models.UserView, error) {
	for i := range f.store.users {
		if f.store.users[i].ID == id {
			return f.expand(f.store.users[i], policy), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) SetAvatar(ctx context.Context, userID, avatarID primitive.ObjectID) error {
	for i := range f.store.users {
		if f.store.users[i].ID == userID {
			f.store.users[i].Image = &avatarID
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeUserRepo) expand(user models.User, policy repositories.Expansion) *models.UserView {
	view := &models.UserView{User: user}
	if policy == repositories.ExpandNone || user.Image == nil {
		return view
	}
	for i := range f.store.avatars {
		if f.store.avatars[i].ID == *user.Image {
			avatar := f.store.avatars[i]
			view.Image = &avatar
		}
	}
	return view
}

type fakeImageRepo struct{ store *fakeStore }

func (f *fakeImageRepo) CreateAvatar(ctx context.Context, image *models.Image) error {
	if image.ID.IsZero() {
		image.ID = primitive.NewObjectID()
	}
	f.store.avatars = append(f.store.avatars, *image)
	return nil
}

func (f *fakeImageRepo) CreateImage(ctx context.Context, image *models.Image) error {
	if image.ID.IsZero() {
		image.ID = primitive.NewObjectID()
	}
	f.store.images = append(f.store.images, *image)
	return nil
}

func (f *fakeImageRepo) FindAvatarByID(ctx context.Context, id primitive.ObjectID) (*models.Image, error) {
	return findFakeImage(f.store.avatars, id)
}

func (f *fakeImageRepo) FindImageByID(ctx context.Context, id primitive.ObjectID) (*models.Image, error) {
	return findFakeImage(f.store.images, id)
}

func findFakeImage(images []models.Image, id primitive.ObjectID) (*models.Image, error) {
	for i := range images {
		if images[i].ID == id {
			image := images[i]
			return &image, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type fakeReactionRepo struct{ store *fakeStore }

func (f *fakeReactionRepo) Create(ctx context.Context, kind models.ReactionKind, reaction *models.Reaction) error {
	if reaction.ID.IsZero() {
		reaction.ID = primitive.NewObjectID()
	}
	if kind == models.KindDislike {
		f.store.dislikes = append(f.store.dislikes, *reaction)
	} else {
		f.store.likes = append(f.store.likes, *reaction)
	}
	return nil
}

func (f *fakeReactionRepo) FindByPost(ctx context.Context, kind models.ReactionKind, postID primitive.ObjectID) ([]models.Reaction, error) {
	return filterReactions(f.slice(kind), func(r models.Reaction) bool {
		return r.Post != nil && *r.Post == postID
	}), nil
}

func (f *fakeReactionRepo) FindByComment(ctx context.Context, kind models.ReactionKind, commentID primitive.ObjectID) ([]models.Reaction, error) {
	return filterReactions(f.slice(kind), func(r models.Reaction) bool {
		return r.Comment != nil && *r.Comment == commentID
	}), nil
}

func (f *fakeReactionRepo) slice(kind models.ReactionKind) []models.Reaction {
	if kind == models.KindDislike {
		return f.store.dislikes
	}
	return f.store.likes
}

func filterReactions(reactions []models.Reaction, keep func(models.Reaction) bool) []models.Reaction {
	matched := []models.Reaction{}
	for _, r := range reactions {
		if keep(r) {
			matched = append(matched, r)
		}
	}
	return matched
}

type fakeCommentRepo struct {
	store     *fakeStore
	users     *fakeUserRepo
	images    *fakeImageRepo
	reactions *fakeReactionRepo
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	f.store.comments = append(f.store.comments, *comment)
	return nil
}

func (f *fakeCommentRepo) FindByID(ctx context.Context, id primitive.ObjectID, policy repositories.Expansion) (*models.CommentView, error) {
	for i := range f.store.comments {
		if f.store.comments[i].ID == id {
			return f.expand(ctx, f.store.comments[i], policy), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCommentRepo) FindByUser(ctx context.Context, userID primitive.ObjectID, policy repositories.Expansion) ([]models.CommentView, error) {
	views := []models.CommentView{}
	for i := range f.store.comments {
		c := f.store.comments[i]
		if c.User != nil && *c.User == userID {
			views = append(views, *f.expand(ctx, c, policy))
		}
	}
	return views, nil
}

func (f *fakeCommentRepo) findByPost(ctx context.Context, postID primitive.ObjectID, policy repositories.Expansion) []models.CommentView {
	views := []models.CommentView{}
	for i := range f.store.comments {
		c := f.store.comments[i]
		if c.Post != nil && *c.Post == postID {
			views = append(views, *f.expand(ctx, c, policy))
		}
	}
	return views
}

func (f *fakeCommentRepo) expand(ctx context.Context, comment models.Comment, policy repositories.Expansion) *models.CommentView {
	view := &models.CommentView{
		Comment:  comment,
		Likes:    []models.Reaction{},
		Dislikes: []models.Reaction{},
	}
	if policy == repositories.ExpandNone {
		return view
	}
	if comment.User != nil {
		if user, err := f.users.FindByID(ctx, *comment.User, repositories.ExpandFull); err == nil {
			view.User = user
		}
	}
	if comment.Image != nil {
		if image, err := f.images.FindImageByID(ctx, *comment.Image); err == nil {
			view.Image = image
		}
	}
	view.Likes, _ = f.reactions.FindByComment(ctx, models.KindLike, comment.ID)
	view.Dislikes, _ = f.reactions.FindByComment(ctx, models.KindDislike, comment.ID)
	return view
}

type fakePostRepo struct {
	store     *fakeStore
	users     *fakeUserRepo
	images    *fakeImageRepo
	comments  *fakeCommentRepo
	reactions *fakeReactionRepo
}

func (f *fakePostRepo) Create(ctx context.Context, post *models.Post) error {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	f.store.posts = append(f.store.posts, *post)
	return nil
}

func (f *fakePostRepo) FindByID(ctx context.Context, id primitive.ObjectID, policy repositories.Expansion) (*models.PostView, error) {
	for i := range f.store.posts {
		if f.store.posts[i].ID == id {
			return f.expand(ctx, f.store.posts[i], policy), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakePostRepo) FindByUser(ctx context.Context, userID primitive.ObjectID, policy repositories.Expansion) ([]models.PostView, error) {
	views := []models.PostView{}
	for i := range f.store.posts {
		p := f.store.posts[i]
		if p.User != nil && *p.User == userID {
			views = append(views, *f.expand(ctx, p, policy))
		}
	}
	return views, nil
}

func (f *fakePostRepo) FindByChannel(ctx context.Context, channelID primitive.ObjectID, policy repositories.Expansion) ([]models.PostView, error) {
	views := []models.PostView{}
	for i := range f.store.posts {
		p := f.store.posts[i]
		if p.Channel != nil && *p.Channel == channelID {
			views = append(views, *f.expand(ctx, p, policy))
		}
	}
	return views, nil
}

func (f *fakePostRepo) expand(ctx context.Context, post models.Post, policy repositories.Expansion) *models.PostView {
	view := &models.PostView{
		Post:     post,
		Comments: []models.CommentView{},
		Likes:    []models.Reaction{},
		Dislikes: []models.Reaction{},
	}
	if policy == repositories.ExpandNone {
		return view
	}
	if post.User != nil {
		if user, err := f.users.FindByID(ctx, *post.User, repositories.ExpandFull); err == nil {
			view.User = user
		}
	}
	if post.Image != nil {
		if image, err := f.images.FindImageByID(ctx, *post.Image); err == nil {
			view.Image = image
		}
	}
	view.Comments = f.comments.findByPost(ctx, post.ID, repositories.ExpandFull)
	view.Likes, _ = f.reactions.FindByPost(ctx, models.KindLike, post.ID)
	view.Dislikes, _ = f.reactions.FindByPost(ctx, models.KindDislike, post.ID)
	return view
}

type fakeChannelRepo struct{ store *fakeStore }

func (f *fakeChannelRepo) Create(ctx context.Context, channel *models.Channel) error {
	if channel.ID.IsZero() {
		channel.ID = primitive.NewObjectID()
	}
	f.store.channels = append(f.store.channels, *channel)
	return nil
}

func (f *fakeChannelRepo) FindAll(ctx context.Context) ([]models.Channel, error) {
	return append([]models.Channel{}, f.store.channels...), nil
}

// newFakeRepos wires a fresh store into one of each repository fake.
func newFakeRepos() (*fakeStore, *fakeUserRepo, *fakeImageRepo, *fakePostRepo, *fakeCommentRepo, *fakeReactionRepo, *fakeChannelRepo) {
	store := newFakeStore()
	users := &fakeUserRepo{store: store}
	images := &fakeImageRepo{store: store}
	reactions := &fakeReactionRepo{store: store}
	comments := &fakeCommentRepo{store: store, users: users, images: images, reactions: reactions}
	posts := &fakePostRepo{store: store, users: users, images: images, comments: comments, reactions: reactions}
	channels := &fakeChannelRepo{store: store}
	return store, users, images, posts, comments, reactions, channels
}

package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stevenhalase/vetrant-api/dto"
	"github.com/stevenhalase/vetrant-api/models"
	"github.com/stevenhalase/vetrant-api/monitoring"
	"github.com/stevenhalase/vetrant-api/repositories"
)

// PostHandler handles posts, comments and reactions.
type PostHandler struct {
	PostRepo     repositories.PostRepository
	CommentRepo  repositories.CommentRepository
	ReactionRepo repositories.ReactionRepository
	ImageRepo    repositories.ImageRepository
}

func NewPostHandler(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, reactionRepo repositories.ReactionRepository, imageRepo repositories.ImageRepository) *PostHandler {
	return &PostHandler{
		PostRepo:     postRepo,
		CommentRepo:  commentRepo,
		ReactionRepo: reactionRepo,
		ImageRepo:    imageRepo,
	}
}

// CreatePost stores a post, attaching an image document first when a file is
// uploaded. The user and channel ids are stored as sent; their existence is
// not checked by the write path.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req dto.PostRequest
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			respondValidationError(w, "invalid multipart payload")
			return
		}
		file, err := formFileString(r, "file")
		if err != nil {
			respondValidationError(w, "invalid file part")
			return
		}
		req = dto.PostRequest{
			User:     r.FormValue("user"),
			Channel:  r.FormValue("channel"),
			Title:    r.FormValue("title"),
			Content:  r.FormValue("content"),
			File:     file,
			FileName: r.FormValue("fileName"),
			FileType: r.FormValue("fileType"),
			GiphyURL: r.FormValue("giphyUrl"),
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondValidationError(w, "invalid JSON payload")
			return
		}
	}

	userID, err := parseOptionalID(req.User)
	if err != nil {
		respondValidationError(w, "user must be a valid id")
		return
	}
	channelID, err := parseOptionalID(req.Channel)
	if err != nil {
		respondValidationError(w, "channel must be a valid id")
		return
	}

	post := models.Post{
		Title:    req.Title,
		Content:  req.Content,
		GiphyURL: req.GiphyURL,
		Date:     time.Now().UnixMilli(),
		User:     userID,
		Channel:  channelID,
	}

	if req.File != "" {
		image := models.Image{
			Data: encodeFileData(req.File),
			Type: req.FileType,
			Name: req.FileName,
			User: userID,
		}
		if err := h.ImageRepo.CreateImage(r.Context(), &image); err != nil {
			logrus.WithError(err).Error("post: image insert failed")
			respondMessage(w, "Failed to create post")
			return
		}
		post.Image = &image.ID
	}

	if err := h.PostRepo.Create(r.Context(), &post); err != nil {
		logrus.WithError(err).Error("post: insert failed")
		respondMessage(w, "Failed to create post")
		return
	}

	view, err := h.PostRepo.FindByID(r.Context(), post.ID, repositories.ExpandFull)
	if err != nil {
		logrus.WithError(err).Error("post: read-back failed")
		respondMessage(w, "Failed to create post")
		return
	}

	monitoring.PostsCreated.Inc()
	respondJSON(w, view)
}

// CreateComment stores a comment. The response is always the expanded
// comment (user, image, likes, dislikes resolved).
func (h *PostHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req dto.CommentRequest
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			respondValidationError(w, "invalid multipart payload")
			return
		}
		file, err := formFileString(r, "file")
		if err != nil {
			respondValidationError(w, "invalid file part")
			return
		}
		req = dto.CommentRequest{
			User:     r.FormValue("user"),
			Post:     r.FormValue("post"),
			Content:  r.FormValue("content"),
			File:     file,
			FileName: r.FormValue("fileName"),
			FileType: r.FormValue("fileType"),
			GiphyURL: r.FormValue("giphyUrl"),
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondValidationError(w, "invalid JSON payload")
			return
		}
	}

	userID, err := parseOptionalID(req.User)
	if err != nil {
		respondValidationError(w, "user must be a valid id")
		return
	}
	postID, err := parseOptionalID(req.Post)
	if err != nil {
		respondValidationError(w, "post must be a valid id")
		return
	}

	comment := models.Comment{
		Content:  req.Content,
		GiphyURL: req.GiphyURL,
		Date:     time.Now().UnixMilli(),
		User:     userID,
		Post:     postID,
	}

	if req.File != "" {
		image := models.Image{
			Data: encodeFileData(req.File),
			Type: req.FileType,
			Name: req.FileName,
			User: userID,
		}
		if err := h.ImageRepo.CreateImage(r.Context(), &image); err != nil {
			logrus.WithError(err).Error("comment: image insert failed")
			respondMessage(w, "Failed to create comment")
			return
		}
		comment.Image = &image.ID
	}

	if err := h.CommentRepo.Create(r.Context(), &comment); err != nil {
		logrus.WithError(err).Error("comment: insert failed")
		respondMessage(w, "Failed to create comment")
		return
	}

	view, err := h.CommentRepo.FindByID(r.Context(), comment.ID, repositories.ExpandFull)
	if err != nil {
		logrus.WithError(err).Error("comment: read-back failed")
		respondMessage(w, "Failed to create comment")
		return
	}

	monitoring.CommentsCreated.Inc()
	respondJSON(w, view)
}

// CreateLike records a like. Reacting to the same target repeatedly stores a
// new document each time.
func (h *PostHandler) CreateLike(w http.ResponseWriter, r *http.Request) {
	h.createReaction(w, r, models.KindLike, "Failed to create like")
}

// CreateDislike records a dislike.
func (h *PostHandler) CreateDislike(w http.ResponseWriter, r *http.Request) {
	h.createReaction(w, r, models.KindDislike, "Failed to create dislike")
}

func (h *PostHandler) createReaction(w http.ResponseWriter, r *http.Request, kind models.ReactionKind, failureMessage string) {
	var req dto.ReactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidationError(w, "invalid JSON payload")
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(w, err.Error())
		return
	}

	userID, err := parseOptionalID(req.User)
	if err != nil {
		respondValidationError(w, "user must be a valid id")
		return
	}
	postID, err := parseOptionalID(req.Post)
	if err != nil {
		respondValidationError(w, "post must be a valid id")
		return
	}
	commentID, err := parseOptionalID(req.Comment)
	if err != nil {
		respondValidationError(w, "comment must be a valid id")
		return
	}

	reaction := models.Reaction{
		Date:    time.Now().UnixMilli(),
		User:    userID,
		Post:    postID,
		Comment: commentID,
	}
	if err := h.ReactionRepo.Create(r.Context(), kind, &reaction); err != nil {
		logrus.WithError(err).Error("reaction: insert failed")
		respondMessage(w, failureMessage)
		return
	}

	monitoring.ReactionsCreated.WithLabelValues(string(kind)).Inc()
	respondJSON(w, reaction)
}

// ListPostsByUser returns a user's posts, fully expanded.
func (h *PostHandler) ListPostsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(mux.Vars(r)["userId"])
	if err != nil {
		respondValidationError(w, "userId must be a valid id")
		return
	}

	posts, err := h.PostRepo.FindByUser(r.Context(), userID, repositories.ExpandFull)
	if err != nil {
		logrus.WithError(err).Error("posts by user: query failed")
		respondMessage(w, "Failed to get posts")
		return
	}
	respondJSON(w, posts)
}

// ListCommentsByUser returns a user's comments, fully expanded.
func (h *PostHandler) ListCommentsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(mux.Vars(r)["userId"])
	if err != nil {
		respondValidationError(w, "userId must be a valid id")
		return
	}

	comments, err := h.CommentRepo.FindByUser(r.Context(), userID, repositories.ExpandFull)
	if err != nil {
		logrus.WithError(err).Error("comments by user: query failed")
		respondMessage(w, "Failed to get comments")
		return
	}
	respondJSON(w, comments)
}

// ListPostsByChannel returns a channel's posts, fully expanded.
func (h *PostHandler) ListPostsByChannel(w http.ResponseWriter, r *http.Request) {
	channelID, err := primitive.ObjectIDFromHex(mux.Vars(r)["channelId"])
	if err != nil {
		respondValidationError(w, "channelId must be a valid id")
		return
	}

	posts, err := h.PostRepo.FindByChannel(r.Context(), channelID, repositories.ExpandFull)
	if err != nil {
		logrus.WithError(err).Error("posts by channel: query failed")
		respondMessage(w, "Failed to get posts")
		return
	}
	respondJSON(w, posts)
}

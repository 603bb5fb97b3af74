package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/stevenhalase/vetrant-api/dto"
	"github.com/stevenhalase/vetrant-api/models"
	"github.com/stevenhalase/vetrant-api/monitoring"
	"github.com/stevenhalase/vetrant-api/repositories"
)

// UserHandler handles registration, login and avatar updates.
type UserHandler struct {
	UserRepo  repositories.UserRepository
	ImageRepo repositories.ImageRepository
}

func NewUserHandler(userRepo repositories.UserRepository, imageRepo repositories.ImageRepository) *UserHandler {
	return &UserHandler{UserRepo: userRepo, ImageRepo: imageRepo}
}

// Register creates a new user. The username existence check and the insert
// are not atomic; concurrent identical registrations can both pass the check
// (known race, accepted).
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidationError(w, "invalid JSON payload")
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(w, err.Error())
		return
	}

	exists, err := h.UserRepo.Exists(r.Context(), req.Username)
	if err != nil {
		logrus.WithError(err).Error("register: existence check failed")
		respondMessage(w, "Failed to create user")
		return
	}
	if exists {
		monitoring.RegisterFailure.WithLabelValues("username_taken").Inc()
		respondMessage(w, "Failed to create user")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("register: hashing failed")
		respondMessage(w, "Failed to create user")
		return
	}

	user := models.User{
		Username: req.Username,
		Password: string(hashedPassword),
	}
	if err := h.UserRepo.Create(r.Context(), &user); err != nil {
		logrus.WithError(err).Error("register: insert failed")
		respondMessage(w, "Failed to create user")
		return
	}

	view, err := h.UserRepo.FindByID(r.Context(), user.ID, repositories.ExpandFull)
	if err != nil {
		logrus.WithError(err).Error("register: read-back failed")
		respondMessage(w, "Failed to create user")
		return
	}

	monitoring.RegisterSuccess.Inc()
	respondJSON(w, view)
}

// Login verifies credentials and returns the expanded user. The response
// includes the stored password hash, matching the current contract.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidationError(w, "invalid JSON payload")
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(w, err.Error())
		return
	}

	view, err := h.UserRepo.FindByUsername(r.Context(), req.Username, repositories.ExpandFull)
	if errors.Is(err, repositories.ErrNotFound) {
		monitoring.LoginFailure.WithLabelValues("unknown_username").Inc()
		respondMessage(w, "Failed to login user")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("login: lookup failed")
		respondMessage(w, "Failed to login user")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(view.User.Password), []byte(req.Password)); err != nil {
		monitoring.LoginFailure.WithLabelValues("wrong_password").Inc()
		respondMessage(w, "Failed to login user")
		return
	}

	monitoring.LoginSuccess.Inc()
	respondJSON(w, view)
}

// UpdateAvatar stores a new avatar document and repoints the user's image
// reference at it. The previous avatar is orphaned, never deleted. The
// avatar insert and the user update are separate writes; a failure between
// them leaves an unreferenced avatar behind (known, accepted).
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	var req dto.AvatarRequest
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
		req.Username = r.FormValue("username")
		req.File = file
		req.FileName = r.FormValue("fileName")
		req.FileType = r.FormValue("fileType")
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondValidationError(w, "invalid JSON payload")
			return
		}
	}
	if err := req.Validate(); err != nil {
		respondValidationError(w, err.Error())
		return
	}

	user, err := h.UserRepo.FindByUsername(r.Context(), req.Username, repositories.ExpandNone)
	if errors.Is(err, repositories.ErrNotFound) {
		respondMessage(w, "Failed to update user")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("avatar: user lookup failed")
		respondMessage(w, "Failed to update user")
		return
	}

	avatar := models.Image{
		Data: encodeFileData(req.File),
		Type: req.FileType,
		Name: req.FileName,
		User: &user.User.ID,
	}
	if err := h.ImageRepo.CreateAvatar(r.Context(), &avatar); err != nil {
		logrus.WithError(err).Error("avatar: insert failed")
		respondMessage(w, "Failed to update user")
		return
	}

	if err := h.UserRepo.SetAvatar(r.Context(), user.User.ID, avatar.ID); err != nil {
		logrus.WithError(err).Error("avatar: user update failed")
		respondMessage(w, "Failed to update user")
		return
	}

	view, err := h.UserRepo.FindByID(r.Context(), user.User.ID, repositories.ExpandFull)
	if err != nil {
		logrus.WithError(err).Error("avatar: read-back failed")
		respondMessage(w, "Failed to update user")
		return
	}
	respondJSON(w, view)
}

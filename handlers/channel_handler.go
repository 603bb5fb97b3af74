package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/stevenhalase/vetrant-api/dto"
	"github.com/stevenhalase/vetrant-api/models"
	"github.com/stevenhalase/vetrant-api/repositories"
)

// ChannelHandler handles channel listing and creation.
type ChannelHandler struct {
	ChannelRepo repositories.ChannelRepository
}

func NewChannelHandler(channelRepo repositories.ChannelRepository) *ChannelHandler {
	return &ChannelHandler{ChannelRepo: channelRepo}
}

// ListChannels returns every channel.
func (h *ChannelHandler) ListChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.ChannelRepo.FindAll(r.Context())
	if err != nil {
		logrus.WithError(err).Error("channels: query failed")
		respondMessage(w, "Failed to get channels")
		return
	}
	respondJSON(w, channels)
}

// CreateChannel stores a new channel. Names are not checked for uniqueness.
func (h *ChannelHandler) CreateChannel(w http.ResponseWriter, r *http.Request) {
	var req dto.ChannelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidationError(w, "invalid JSON payload")
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(w, err.Error())
		return
	}

	channel := models.Channel{Name: req.Name}
	if err := h.ChannelRepo.Create(r.Context(), &channel); err != nil {
		logrus.WithError(err).Error("channel: insert failed")
		respondMessage(w, "Failed to create channel")
		return
	}
	respondJSON(w, channel)
}

package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/stevenhalase/vetrant-api/giphy"
	"github.com/stevenhalase/vetrant-api/monitoring"
)

// GiphyHandler proxies GIF searches to the external service.
type GiphyHandler struct {
	Client *giphy.Client
}

func NewGiphyHandler(client *giphy.Client) *GiphyHandler {
	return &GiphyHandler{Client: client}
}

// Search proxies the query and returns the service's data field. Failures
// come back as the standard message body rather than the raw error.
func (h *GiphyHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := mux.Vars(r)["query"]

	data, err := h.Client.Search(r.Context(), query)
	if err != nil {
		logrus.WithError(err).Error("giphy: search failed")
		monitoring.GiphySearches.WithLabelValues("failure").Inc()
		respondMessage(w, "Failed to search giphy")
		return
	}

	monitoring.GiphySearches.WithLabelValues("success").Inc()
	respondJSON(w, data)
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevenhalase/vetrant-api/giphy"
)

func newGiphyRouter(h *GiphyHandler) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/giphy/{query}", h.Search).Methods("GET")
	return router
}

func TestGiphySearch(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "funny cats", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":"abc123"}],"pagination":{"count":1}}`))
	}))
	defer upstream.Close()

	h := NewGiphyHandler(giphy.NewClient(upstream.URL + "/v1/gifs/search?q={0}"))
	router := newGiphyRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/giphy/funny%20cats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"abc123"}]`, rec.Body.String())
}

func TestGiphySearchUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	h := NewGiphyHandler(giphy.NewClient(upstream.URL + "/v1/gifs/search?q={0}"))
	router := newGiphyRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/giphy/anything", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Failed to search giphy", body["message"])
}

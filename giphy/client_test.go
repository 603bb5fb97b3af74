package giphy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchSubstitutesEncodedQuery(t *testing.T) {
	var gotQuery string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`{"data":[{"id":"one"},{"id":"two"}]}`))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL + "/v1/gifs/search?api_key=key&q={0}&limit=25")

	data, err := client.Search(context.Background(), "cats & dogs")
	require.NoError(t, err)
	assert.Equal(t, "cats & dogs", gotQuery)
	assert.JSONEq(t, `[{"id":"one"},{"id":"two"}]`, string(data))
}

func TestSearchNonOKStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL + "/search?q={0}")

	_, err := client.Search(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestSearchUnreachableService(t *testing.T) {
	client := NewClient("http://127.0.0.1:1/search?q={0}")

	_, err := client.Search(context.Background(), "anything")
	assert.Error(t, err)
}

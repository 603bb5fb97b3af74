package giphy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Client proxies searches to the external GIF service. The URL template
// carries a {0} token replaced with the URL-encoded query, e.g.
// https://api.giphy.com/v1/gifs/search?api_key=KEY&q={0}
type Client struct {
	// HTTPClient may be replaced before first use; requests carry no
	// client-side deadline beyond the caller's context.
	HTTPClient *http.Client

	urlTemplate string
}

func NewClient(urlTemplate string) *Client {
	return &Client{
		HTTPClient:  &http.Client{},
		urlTemplate: urlTemplate,
	}
}

// Search issues the templated request and returns the `data` field of the
// response body untouched.
func (c *Client) Search(ctx context.Context, query string) (json.RawMessage, error) {
	searchURL := strings.Replace(c.urlTemplate, "{0}", url.QueryEscape(query), 1)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build giphy request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("giphy request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("giphy returned status %d", resp.StatusCode)
	}

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode giphy response: %w", err)
	}
	return body.Data, nil
}

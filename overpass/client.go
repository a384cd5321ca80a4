// Package overpass fetches raw OSM elements from the Overpass API.
package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultEndpoint  = "https://overpass-api.de/api/interpreter"
	FallbackEndpoint = "https://overpass.kumi.systems/api/interpreter"

	userAgent = "osmbuildings/1.0"
)

// Client posts OverpassQL queries, retrying once against a fallback
// server when the primary fails. Both servers failing is fatal to the
// caller, there is no backoff loop.
type Client struct {
	Endpoint string
	Fallback string

	http *http.Client
	log  *slog.Logger
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		Endpoint: DefaultEndpoint,
		Fallback: FallbackEndpoint,
		http:     &http.Client{Timeout: timeout},
		log:      slog.With("component", "overpass"),
	}
}

// Query posts the query and decodes the element list out of the response.
func (c *Client) Query(ctx context.Context, query string) ([]Element, error) {
	resp, err := c.post(ctx, c.Endpoint, query)
	if err != nil {
		c.log.WarnContext(ctx, "primary overpass server failed, trying fallback",
			"endpoint", c.Endpoint, "error", err.Error())

		resp, err = c.post(ctx, c.Fallback, query)
		if err != nil {
			return nil, fmt.Errorf("fallback overpass server failed too: %w", err)
		}
	}
	return resp.Elements, nil
}

func (c *Client) post(ctx context.Context, endpoint, query string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(query))
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return nil, fmt.Errorf("overpass returned status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded Response
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding overpass response: %w", err)
	}
	return &decoded, nil
}

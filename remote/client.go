// Package remote is the HTTP client for the booking/admin API the
// editor persists to. Only the slice of the API the core depends on
// is modeled here.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"deskly/config"
	"deskly/models"
)

// ErrNotFound marks a floor the server has no record of.
var ErrNotFound = errors.New("not found")

// Client talks to the booking API with a bearer token.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient builds a client from the loaded application config.
func NewClient() *Client {
	return &Client{
		BaseURL:    config.AppConfig.BookingAPIBaseURL,
		Token:      config.AppConfig.BookingAPIToken,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request failed: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("booking API returned %d: %s", resp.StatusCode, string(msg))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response failed: %w", err)
	}
	return nil
}

// GetFloor fetches one floor's stored polygon and spaces. ErrNotFound
// means the floor does not exist server-side.
func (c *Client) GetFloor(ctx context.Context, locationID string, floorNumber int) (*models.RemoteFloorResponse, error) {
	var out models.RemoteFloorResponse
	path := fmt.Sprintf("/api/locations/%s/floors/%d", locationID, floorNumber)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateFloorSpaces persists one floor's polygon and spaces.
func (c *Client) CreateFloorSpaces(ctx context.Context, req models.CreateFloorSpacesRequest) error {
	return c.do(ctx, http.MethodPost, "/api/floors", req, nil)
}

// GetSpaceTypes fetches the bookable-space-type catalog of a location.
func (c *Client) GetSpaceTypes(ctx context.Context, locationID string) ([]models.SpaceType, error) {
	var out []models.SpaceType
	path := fmt.Sprintf("/api/locations/%s/space-types", locationID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// rawInterval mirrors the wire shape of one availability window. Older
// endpoints report a status string, newer ones a boolean flag; both
// are folded into SlotStatus here so nothing downstream double-checks.
type rawInterval struct {
	Start              string   `json:"start"`
	End                string   `json:"end"`
	Offset             string   `json:"offset,omitempty"`
	Status             string   `json:"status,omitempty"`
	Available          *bool    `json:"available,omitempty"`
	AvailableDurations []string `json:"availableDurations,omitempty"`
}

func (r rawInterval) normalize() models.TimeIntervalItem {
	status := models.SlotUnavailable
	if r.Status == "available" || (r.Available != nil && *r.Available) {
		status = models.SlotAvailable
	}
	return models.TimeIntervalItem{
		Start:              r.Start,
		End:                r.End,
		Offset:             r.Offset,
		Status:             status,
		AvailableDurations: r.AvailableDurations,
	}
}

// QueryAvailability fetches the coarse availability windows of one
// space on one date.
func (c *Client) QueryAvailability(ctx context.Context, date, spaceID string) ([]models.TimeIntervalItem, error) {
	body := models.AvailabilityQuery{Date: date, SpaceID: spaceID}
	var raw []rawInterval
	if err := c.do(ctx, http.MethodPost, "/api/availability", body, &raw); err != nil {
		return nil, err
	}
	items := make([]models.TimeIntervalItem, 0, len(raw))
	for _, r := range raw {
		items = append(items, r.normalize())
	}
	return items, nil
}

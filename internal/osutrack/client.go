// Package osutrack is a thin client for the upstream osu!track API. The
// upstream owns the actual refresh pipeline; this service only asks it to
// pull fresh data and relays the answer.
package osutrack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/osutrack/stats-api/internal/models"
)

var (
	// ErrUserNotFound signals the upstream does not know the player.
	ErrUserNotFound = errors.New("osutrack: user not found")
	// ErrMalformedResponse signals a 200 response whose body is not JSON.
	ErrMalformedResponse = errors.New("osutrack: malformed response")
)

// maxBodySize caps how much of an upstream response is read (1MB).
const maxBodySize = 1048576

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// GetChanges asks the upstream to refresh the player and returns the raw
// changes payload. The user value may be a numeric ID or a username, the
// upstream accepts both.
func (c *Client) GetChanges(ctx context.Context, user string, mode models.GameMode) (json.RawMessage, error) {
	body, status, err := c.get(ctx, "get_changes.php", user, mode)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusNotFound:
		return nil, ErrUserNotFound
	case status != http.StatusOK:
		return nil, fmt.Errorf("osutrack: get_changes status %d: %s", status, truncate(body))
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, truncate(body))
	}
	return json.RawMessage(body), nil
}

type userResponse struct {
	Exists   bool   `json:"exists"`
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// GetUser looks a player up by username, creating it upstream if necessary,
// and returns its canonical record.
func (c *Client) GetUser(ctx context.Context, username string, mode models.GameMode) (*models.Player, error) {
	body, status, err := c.get(ctx, "get_user.php", username, mode)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusNotFound:
		return nil, ErrUserNotFound
	case status != http.StatusOK:
		return nil, fmt.Errorf("osutrack: get_user status %d: %s", status, truncate(body))
	}

	var res userResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, truncate(body))
	}
	if !res.Exists || res.ID <= 0 {
		return nil, ErrUserNotFound
	}
	name := res.Username
	if name == "" {
		name = username
	}
	return &models.Player{OsuID: res.ID, Username: name}, nil
}

func (c *Client) get(ctx context.Context, endpoint, user string, mode models.GameMode) ([]byte, int, error) {
	q := url.Values{}
	q.Set("user", user)
	q.Set("mode", fmt.Sprintf("%d", int(mode)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, q.Encode()), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("osutrack: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("osutrack: %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, 0, fmt.Errorf("osutrack: read %s response: %w", endpoint, err)
	}
	return body, resp.StatusCode, nil
}

func truncate(body []byte) string {
	const max = 256
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}

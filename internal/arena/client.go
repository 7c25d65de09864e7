package arena

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"arenadash/internal/models"
)

// Client talks to the contest arena API. All reads return the server's JSON
// decoded into the models types; StartNonRating is fire-and-forget.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, params), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("arena request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("arena returned %d for %s - check the API key", resp.StatusCode, path)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("arena returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("arena response %s: %w", path, err)
	}
	return nil
}

func (c *Client) endpoint(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	if c.apiKey != "" {
		params.Set("apiKey", c.apiKey)
	}
	return c.baseURL + path + "?" + params.Encode()
}

// ListGames fetches one page of our non-rating games. An empty before cursor
// requests the newest page; otherwise the page older than the cursor.
func (c *Client) ListGames(ctx context.Context, before string) (*models.GamePage, error) {
	params := url.Values{}
	if before != "" {
		params.Set("before", before)
	}

	var page models.GamePage
	if err := c.get(ctx, "/games/non-rating", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListSubmissions fetches the full current submissions listing, newest first.
func (c *Client) ListSubmissions(ctx context.Context) ([]models.Submission, error) {
	var subs []models.Submission
	if err := c.get(ctx, "/submissions", nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (c *Client) Scoreboard(ctx context.Context) (*models.Scoreboard, error) {
	var board models.Scoreboard
	if err := c.get(ctx, "/scoreboard", nil, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// StartNonRating schedules a non-rating run between the two submissions. The
// arena gives no acknowledgment worth consulting; only transport-level
// failures are reported.
func (c *Client) StartNonRating(ctx context.Context, attackerID, defenderID int) error {
	params := url.Values{}
	params.Set("attackerSubmissionId", strconv.Itoa(attackerID))
	params.Set("defenderSubmissionId", strconv.Itoa(defenderID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/games/non-rating/run", params), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("start non-rating %d vs %d: %w", attackerID, defenderID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("start non-rating %d vs %d: status %d", attackerID, defenderID, resp.StatusCode)
	}
	return nil
}

package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/meltforce/splitfit/internal/models"
)

// Client sends workouts to a SplitFit server over HTTP.
type Client struct {
	serverURL  string
	apiKey     string
	login      string
	httpClient *http.Client
}

// NewClient creates an HTTP client for the given server. login scopes the
// imported workouts to a user; empty means the server's default.
func NewClient(serverURL, apiKey, login string) *Client {
	return &Client{
		serverURL: strings.TrimRight(serverURL, "/"),
		apiKey:    apiKey,
		login:     login,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// SendWorkout POSTs one workout to the server. Retries up to 3 times with
// exponential backoff on failure.
func (c *Client) SendWorkout(w models.Workout) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshaling workout: %w", err)
	}

	var lastErr error
	for attempt := range 3 {
		if attempt > 0 {
			time.Sleep(time.Duration(1<<uint(attempt-1)) * time.Second)
		}

		req, err := http.NewRequest(http.MethodPost,
			c.serverURL+"/api/v1/workouts", bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", c.apiKey)
		if c.login != "" {
			req.Header.Set("X-User-Login", c.login)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusCreated {
			return nil
		}
		lastErr = fmt.Errorf("server returned %d: %s", resp.StatusCode, body)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			// Client errors won't improve on retry.
			return lastErr
		}
	}
	return fmt.Errorf("sending workout after 3 attempts: %w", lastErr)
}

package events

import (
	"context"
	"fmt"
	"githubActivity/internal/logger"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.github.com"
	userAgent      = "github-activity"
)

// Response is the raw outcome of one events request.
type Response struct {
	StatusCode int
	Body       []byte
}

type Fetcher interface {
	Fetch(ctx context.Context, username string) (*Response, error)
}

// Client fetches a user's public events. It sends no credentials, never
// retries and does not follow redirects: a 3xx is returned as is.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient returns a client for baseURL; an empty baseURL means the public
// GitHub API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (c *Client) EventsURL(username string) string {
	return c.baseURL + "/users/" + url.PathEscape(username) + "/events"
}

func (c *Client) Fetch(ctx context.Context, username string) (*Response, error) {
	u := c.EventsURL(username)
	logger.Lg.Info("api_fetch_flight", zap.String("url", u))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := c.client.Do(req)
	if err != nil {
		logger.Lg.Error("api_fetch_error", zap.Error(err))
		return nil, fmt.Errorf("fetching events: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}

	logger.Lg.Info("api_fetch_done",
		zap.String("url", u),
		zap.Int("status", res.StatusCode),
		zap.Int("content_length", len(body)),
	)
	return &Response{StatusCode: res.StatusCode, Body: body}, nil
}

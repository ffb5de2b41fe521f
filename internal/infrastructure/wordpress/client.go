package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"article-generator/internal/domain"
)

const (
	// DefaultBaseURL is the publication's WordPress site.
	DefaultBaseURL = "https://hospitalityfn.com"

	defaultTimeout = 30 * time.Second
	// maxErrorBody bounds how much of an error response is kept for logs.
	maxErrorBody = 2048
)

// Config holds WordPress REST API settings. Password is an application
// password, not the account password.
type Config struct {
	BaseURL    string
	Username   string
	Password   string
	HTTPClient *http.Client
}

// Client creates posts through the WordPress REST API.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

// NewClient creates a Client. Credentials are required.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, errors.New("wordpress credentials not configured")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid wordpress base URL: %w", err)
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: cfg.HTTPClient,
	}, nil
}

type createdPostResponse struct {
	ID int64 `json:"id"`
}

// CreateDraft creates a post and returns its id with the admin edit URL.
func (c *Client) CreateDraft(ctx context.Context, post domain.DraftPost) (*domain.CreatedPost, error) {
	body, err := json.Marshal(post)
	if err != nil {
		return nil, fmt.Errorf("encode wordpress post: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/wp-json/wp/v2/posts", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build wordpress request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wordpress API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(msg)}
	}

	var created createdPostResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decode wordpress API response: %w", err)
	}
	if created.ID == 0 {
		return nil, errors.New("wordpress API response has no post id")
	}

	return &domain.CreatedPost{ID: created.ID, EditURL: c.EditURL(created.ID)}, nil
}

// EditURL returns the admin edit page for a post.
func (c *Client) EditURL(postID int64) string {
	return c.baseURL + "/wp-admin/post.php?post=" + strconv.FormatInt(postID, 10) + "&action=edit"
}

// APIError is a non-2xx WordPress response. Body is for server logs only.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wordpress API error: %d - %s", e.StatusCode, e.Body)
}

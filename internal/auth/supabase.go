package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"article-generator/internal/domain"
)

const defaultVerifyTimeout = 10 * time.Second

// SupabaseVerifier asks the Supabase auth API who owns a token. It is used
// when no JWT secret is configured.
type SupabaseVerifier struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// NewSupabaseVerifier creates a verifier against the project at baseURL.
// A nil httpClient gets a client with a ten second timeout.
func NewSupabaseVerifier(baseURL, anonKey string, httpClient *http.Client) *SupabaseVerifier {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultVerifyTimeout}
	}
	return &SupabaseVerifier{
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
		httpClient: httpClient,
	}
}

// Verify resolves the token through GET /auth/v1/user.
func (v *SupabaseVerifier) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("build auth request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", v.anonKey)
	req.Header.Set("Accept", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: auth API returned status %d", ErrInvalidToken, resp.StatusCode)
	}

	var user domain.Identity
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode auth user JSON: %w", err)
	}
	if user.UserID == "" {
		return nil, fmt.Errorf("%w: auth API returned no user id", ErrInvalidToken)
	}

	return &user, nil
}

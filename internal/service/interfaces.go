package service

import (
	"context"
	"io"

	"article-generator/internal/domain"
	"article-generator/internal/ratelimit"
)

// GenerateInput is one raw generation request as received by the handler.
type GenerateInput struct {
	RequestID string
	ClientID  string
	// ContentLength is the declared body size; -1 when unknown.
	ContentLength int64
	Body          io.Reader
}

// TextGenerator is the external text completion service.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, sc domain.SamplingConfig) (string, error)
}

// RateLimiter admits or rejects requests per client.
type RateLimiter interface {
	Admit(ctx context.Context, clientID string) (ratelimit.Decision, error)
}

// IdentityVerifier resolves a bearer token to a verified user.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Identity, error)
}

// CMSPublisher creates draft posts in the content management system.
type CMSPublisher interface {
	CreateDraft(ctx context.Context, post domain.DraftPost) (*domain.CreatedPost, error)
}

// GenerationServiceInterface defines the generation pipeline.
// Used for dependency injection and mocking in tests.
type GenerationServiceInterface interface {
	// Generate runs the full pipeline for one request.
	Generate(ctx context.Context, in GenerateInput) (*domain.GeneratedArticle, error)
}

// PublishServiceInterface defines publishing operations.
// Used for dependency injection and mocking in tests.
type PublishServiceInterface interface {
	// Publish sends an article to the CMS as a draft for the given user.
	Publish(ctx context.Context, user domain.Identity, req *domain.PublishRequest) (*domain.CreatedPost, error)
	// ListPublications returns the user's recorded drafts, newest first.
	ListPublications(ctx context.Context, userID string, limit int) ([]domain.Publication, error)
}

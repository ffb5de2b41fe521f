package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/time/rate"

	"article-generator/internal/apperror"
	"article-generator/internal/domain"
	"article-generator/internal/logger"
	"article-generator/internal/metrics"
	"article-generator/internal/repository"
	"article-generator/internal/validator"
)

const (
	// DefaultPublishRatePerMinute is the per-user publish allowance.
	DefaultPublishRatePerMinute = 3
	// DefaultListLimit caps publication listings.
	DefaultListLimit = 50

	draftStatus = "draft"

	// Idle user throttles are dropped after this long.
	throttleIdle  = 5 * time.Minute
	throttleSweep = 3 * time.Minute
)

var (
	errCMSNotConfigured    = errors.New("CMS credentials not configured")
	errLedgerNotConfigured = errors.New("publication ledger not configured")
)

// PublishConfig holds the publishing tunables.
type PublishConfig struct {
	RatePerMinute int
	AuthorID      int
}

type userThrottle struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// PublishService sends generated articles to the CMS as drafts and keeps a
// ledger of what each user published.
type PublishService struct {
	cms       CMSPublisher
	repo      repository.PublicationRepository
	validator *validator.Validator

	titlePolicy   *bluemonday.Policy
	contentPolicy *bluemonday.Policy

	mu        sync.Mutex
	throttles map[string]*userThrottle
	lastSweep time.Time
	limit     rate.Limit
	burst     int
	authorID  int
	now       func() time.Time
}

// NewPublishService creates a PublishService. cms is nil when CMS
// credentials are missing and repo is nil when no database is configured.
func NewPublishService(cms CMSPublisher, repo repository.PublicationRepository, v *validator.Validator, cfg PublishConfig) *PublishService {
	if cfg.RatePerMinute <= 0 {
		cfg.RatePerMinute = DefaultPublishRatePerMinute
	}
	if cfg.AuthorID <= 0 {
		cfg.AuthorID = 1
	}

	content := bluemonday.UGCPolicy()
	content.RequireNoFollowOnLinks(true)
	content.AddTargetBlankToFullyQualifiedLinks(true)

	return &PublishService{
		cms:           cms,
		repo:          repo,
		validator:     v,
		titlePolicy:   bluemonday.StrictPolicy(),
		contentPolicy: content,
		throttles:     make(map[string]*userThrottle),
		limit:         rate.Every(time.Minute / time.Duration(cfg.RatePerMinute)),
		burst:         cfg.RatePerMinute,
		authorID:      cfg.AuthorID,
		now:           time.Now,
	}
}

// Publish validates, sanitizes and throttles the request, then creates the
// draft post. The ledger write is best effort.
func (s *PublishService) Publish(ctx context.Context, user domain.Identity, req *domain.PublishRequest) (*domain.CreatedPost, error) {
	log := logger.Default().With(slog.String("user_id", user.UserID))

	post, err := s.publish(ctx, user, req, log)
	if err != nil {
		appErr := apperror.As(err)
		metrics.ObservePublication(string(appErr.Code))
		return nil, appErr
	}

	metrics.ObservePublication("success")
	log.Info("Draft post created", slog.Int64("post_id", post.ID))
	return post, nil
}

func (s *PublishService) publish(ctx context.Context, user domain.Identity, req *domain.PublishRequest, log *slog.Logger) (*domain.CreatedPost, error) {
	if err := s.validator.ValidatePublishRequest(req); err != nil {
		log.Warn("Publish rejected: validation failed", slog.String("error", apperror.RedactErr(err)))
		return nil, apperror.Validation(validator.ErrorMessages(err))
	}

	draft := domain.DraftPost{
		Title:   strings.TrimSpace(s.titlePolicy.Sanitize(req.Headline)),
		Content: strings.TrimSpace(s.contentPolicy.Sanitize(req.Article)),
		Excerpt: strings.TrimSpace(s.titlePolicy.Sanitize(req.Excerpt)),
		Status:  draftStatus,
		Author:  s.authorID,
	}
	if draft.Title == "" || draft.Content == "" || draft.Excerpt == "" {
		log.Warn("Publish rejected: fields empty after sanitizing")
		return nil, apperror.Validation([]string{"Fields must contain text, not only markup"})
	}

	if s.cms == nil {
		log.Error("CMS credentials not configured")
		return nil, apperror.ServiceMisconfigured(errCMSNotConfigured)
	}

	if reset, ok := s.allow(user.UserID); !ok {
		log.Warn("Publish rejected: rate limit exceeded")
		return nil, apperror.RateLimited(reset)
	}

	timer := metrics.NewTimer()
	created, err := s.cms.CreateDraft(ctx, draft)
	if err != nil {
		timer.ObserveDuration(metrics.UpstreamDuration.WithLabelValues("wordpress", "error"))
		log.Error("CMS draft creation failed", slog.String("error", apperror.RedactErr(err)))
		return nil, apperror.Wrap(apperror.CodePublish, err)
	}
	timer.ObserveDuration(metrics.UpstreamDuration.WithLabelValues("wordpress", "success"))

	s.record(ctx, user, req, created, log)
	return created, nil
}

// allow takes one token from the user's bucket. When the bucket is empty it
// reports when the next token becomes available.
func (s *PublishService) allow(userID string) (time.Time, bool) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) > throttleSweep {
		for id, t := range s.throttles {
			if now.Sub(t.lastSeen) > throttleIdle {
				delete(s.throttles, id)
			}
		}
		s.lastSweep = now
	}

	t, ok := s.throttles[userID]
	if !ok {
		t = &userThrottle{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.throttles[userID] = t
	}
	t.lastSeen = now

	r := t.limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return now.Add(delay), false
	}
	return time.Time{}, true
}

func (s *PublishService) record(ctx context.Context, user domain.Identity, req *domain.PublishRequest, created *domain.CreatedPost, log *slog.Logger) {
	if s.repo == nil {
		return
	}

	p := &domain.Publication{
		UserID:      user.UserID,
		UserEmail:   user.Email,
		PostID:      created.ID,
		EditURL:     created.EditURL,
		Headline:    req.Headline,
		ArticleType: req.ArticleType,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		log.Error("Failed to record publication", slog.Int64("post_id", created.ID), slog.String("error", apperror.RedactErr(err)))
	}
}

// ListPublications returns the user's recorded drafts, newest first.
func (s *PublishService) ListPublications(ctx context.Context, userID string, limit int) ([]domain.Publication, error) {
	if s.repo == nil {
		return nil, apperror.ServiceMisconfigured(errLedgerNotConfigured)
	}
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	pubs, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		logger.Error("Failed to list publications", slog.String("user_id", userID), slog.String("error", apperror.RedactErr(err)))
		return nil, apperror.Wrap(apperror.CodeService, err)
	}
	return pubs, nil
}

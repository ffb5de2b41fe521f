package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"article-generator/internal/apperror"
	"article-generator/internal/domain"
	"article-generator/internal/logger"
	"article-generator/internal/metrics"
	"article-generator/internal/moderation"
	"article-generator/internal/validator"
)

const (
	// DefaultMaxPayloadBytes is the request body ceiling.
	DefaultMaxPayloadBytes = 10 * 1024
	// DefaultGenerationTimeout bounds the upstream generation call.
	DefaultGenerationTimeout = 30 * time.Second
)

var errGeneratorNotConfigured = errors.New("generation API key not configured")

// GenerationConfig holds the tunables of the generation pipeline.
type GenerationConfig struct {
	MaxPayloadBytes int64
	Timeout         time.Duration
}

// GenerationService runs the generation pipeline: size check, rate limit,
// validation, input moderation, the upstream call, parsing and output
// moderation. Every failure leaves as an *apperror.Error.
type GenerationService struct {
	limiter   RateLimiter
	validator *validator.Validator
	moderator *moderation.Moderator
	generator TextGenerator

	maxPayloadBytes int64
	timeout         time.Duration
}

// NewGenerationService creates a GenerationService. generator may be nil when
// no API key is configured; requests then fail with SERVICE_ERROR.
func NewGenerationService(
	limiter RateLimiter,
	v *validator.Validator,
	moderator *moderation.Moderator,
	generator TextGenerator,
	cfg GenerationConfig,
) *GenerationService {
	if cfg.MaxPayloadBytes <= 0 {
		cfg.MaxPayloadBytes = DefaultMaxPayloadBytes
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultGenerationTimeout
	}
	return &GenerationService{
		limiter:         limiter,
		validator:       v,
		moderator:       moderator,
		generator:       generator,
		maxPayloadBytes: cfg.MaxPayloadBytes,
		timeout:         cfg.Timeout,
	}
}

// Generate runs the pipeline for one request.
func (s *GenerationService) Generate(ctx context.Context, in GenerateInput) (*domain.GeneratedArticle, error) {
	log := logger.WithRequest(in.RequestID, in.ClientID)

	article, err := s.generate(ctx, in, log)
	if err != nil {
		appErr := apperror.As(err)
		metrics.ObserveGeneration(string(appErr.Code))
		return nil, appErr
	}

	metrics.ObserveGeneration("success")
	log.Info("Content successfully generated")
	return article, nil
}

func (s *GenerationService) generate(ctx context.Context, in GenerateInput, log *slog.Logger) (*domain.GeneratedArticle, error) {
	if in.ContentLength > s.maxPayloadBytes {
		log.Warn("Request rejected: payload too large", slog.Int64("content_length", in.ContentLength))
		return nil, apperror.PayloadTooLarge()
	}

	decision, err := s.limiter.Admit(ctx, in.ClientID)
	if err != nil {
		// The store being unavailable must not take generation down with it.
		metrics.RateLimitStoreErrorsTotal.Inc()
		log.Error("Rate limit check failed, admitting request", slog.String("error", apperror.RedactErr(err)))
	} else if !decision.Allowed {
		metrics.ObserveRateLimitRejection(decision.Window)
		log.Warn("Request rejected: rate limit exceeded", slog.String("window", decision.Window))
		return nil, apperror.RateLimited(decision.ResetTime)
	}

	payload, err := s.readPayload(in.Body)
	if err != nil {
		log.Warn("Request rejected: unreadable body", slog.String("error", apperror.RedactErr(err)))
		return nil, err
	}

	result := s.validator.ValidateGenerationRequest(payload)
	if !result.Valid {
		log.Warn("Request rejected: validation failed", slog.Any("errors", result.Errors))
		return nil, apperror.Validation(result.Errors)
	}
	req := domain.GenerationRequest{
		Idea:        payload["idea"].(string),
		ArticleType: domain.ArticleType(payload["articleType"].(string)),
	}

	check := s.moderator.Check(req.Idea)
	metrics.ObserveModeration("input", len(check.Violations), len(check.Warnings))
	if !check.Appropriate {
		log.Warn("Request rejected: inappropriate content", slog.Any("violations", check.Violations))
		return nil, apperror.ContentViolation(check.Violations)
	}
	if len(check.Warnings) > 0 {
		log.Info("Borderline terms in idea", slog.Any("warnings", check.Warnings))
	}

	if s.generator == nil {
		log.Error("Generation service not configured")
		return nil, apperror.ServiceMisconfigured(errGeneratorNotConfigured)
	}

	log.Info("Generating content", slog.String("article_type", string(req.ArticleType)))
	raw, err := s.callGenerator(ctx, BuildPrompt(req))
	if err != nil {
		log.Error("Generation call failed", slog.String("error", apperror.RedactErr(err)))
		return nil, apperror.Wrap(apperror.CodeService, err)
	}

	article, err := ParseArticle(raw)
	if err != nil {
		log.Error("Content generation or parsing failed", slog.String("error", apperror.RedactErr(err)))
		return nil, apperror.Wrap(apperror.CodeGeneration, err)
	}

	serialized, err := json.Marshal(article)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeGeneration, fmt.Errorf("serialize generated article JSON: %w", err))
	}
	check = s.moderator.Check(string(serialized))
	metrics.ObserveModeration("output", len(check.Violations), len(check.Warnings))
	if len(check.Warnings) > 0 {
		log.Info("Borderline terms in generated content", slog.Any("warnings", check.Warnings))
	}
	if !check.Appropriate {
		log.Warn("Generated content rejected", slog.Any("violations", check.Violations))
		return nil, apperror.Wrap(apperror.CodeGeneration,
			fmt.Errorf("generated JSON rejected by moderation: %s", strings.Join(check.Violations, "; ")))
	}

	return article, nil
}

// readPayload reads at most the payload ceiling and decodes a JSON object.
// Bodies without a declared length are still capped here.
func (s *GenerationService) readPayload(body io.Reader) (map[string]interface{}, error) {
	if body == nil {
		return nil, apperror.Validation([]string{"Request body must be a JSON object"})
	}

	data, err := io.ReadAll(io.LimitReader(body, s.maxPayloadBytes+1))
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeValidation, fmt.Errorf("read request body: %w", err))
	}
	if int64(len(data)) > s.maxPayloadBytes {
		return nil, apperror.PayloadTooLarge()
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil || payload == nil {
		return nil, apperror.Validation([]string{"Request body must be a JSON object"})
	}
	return payload, nil
}

// callGenerator makes the single upstream attempt under the configured
// timeout. Timeouts are reported as API failures.
func (s *GenerationService) callGenerator(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	timer := metrics.NewTimer()
	text, err := s.generator.GenerateText(ctx, prompt, DefaultSampling)
	switch {
	case err == nil:
		timer.ObserveDuration(metrics.UpstreamDuration.WithLabelValues("gemini", "success"))
		return text, nil
	case errors.Is(err, context.DeadlineExceeded):
		timer.ObserveDuration(metrics.UpstreamDuration.WithLabelValues("gemini", "timeout"))
		return "", fmt.Errorf("generation API timed out after %s: %w", s.timeout, err)
	default:
		timer.ObserveDuration(metrics.UpstreamDuration.WithLabelValues("gemini", "error"))
		return "", fmt.Errorf("generation API call failed: %w", err)
	}
}

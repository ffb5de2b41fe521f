package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"article-generator/internal/apperror"
	"article-generator/internal/domain"
	"article-generator/internal/logger"
	"article-generator/internal/middleware"
	"article-generator/internal/service"
)

var errNoUser = errors.New("no authenticated user in context")

// PublishHandler handles CMS publishing and the publication ledger.
type PublishHandler struct {
	publishService service.PublishServiceInterface
}

// NewPublishHandler creates a new PublishHandler.
func NewPublishHandler(publishService service.PublishServiceInterface) *PublishHandler {
	return &PublishHandler{publishService: publishService}
}

// PublishResponse is returned when a draft was created.
type PublishResponse struct {
	Success bool   `json:"success"`
	PostID  int64  `json:"postId"`
	EditURL string `json:"editUrl"`
}

// PublicationResponse represents a ledger entry in the API response.
type PublicationResponse struct {
	ID          string `json:"id"`
	PostID      int64  `json:"post_id"`
	EditURL     string `json:"edit_url"`
	Headline    string `json:"headline"`
	ArticleType string `json:"article_type,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func toPublicationResponse(p domain.Publication) PublicationResponse {
	return PublicationResponse{
		ID:          p.ID,
		PostID:      p.PostID,
		EditURL:     p.EditURL,
		Headline:    p.Headline,
		ArticleType: p.ArticleType,
		CreatedAt:   p.CreatedAt.UTC().Format(TimeFormat),
	}
}

// Publish handles POST /api/v1/articles/publish and the legacy
// /functions/v1/upload-to-wordpress path. Requires RequireUser.
func (h *PublishHandler) Publish(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		writeError(c, apperror.Unauthorized(errNoUser))
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPublishBodyBytes)

	var req domain.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(c, apperror.PayloadTooLarge())
			return
		}
		logger.WithRequest(middleware.GetRequestID(c), middleware.GetClientID(c)).
			Warn("Publish rejected: invalid body", slog.String("error", apperror.RedactErr(err)))
		writeError(c, apperror.Validation([]string{"Request body must be a JSON object with headline, article and excerpt"}))
		return
	}

	post, err := h.publishService.Publish(c.Request.Context(), user, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, PublishResponse{Success: true, PostID: post.ID, EditURL: post.EditURL})
}

// ListPublications handles GET /api/v1/publications?limit=N. Requires RequireUser.
func (h *PublishHandler) ListPublications(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		writeError(c, apperror.Unauthorized(errNoUser))
		return
	}

	limit := service.DefaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(c, apperror.Validation([]string{"limit must be a positive integer"}))
			return
		}
		limit = n
	}

	pubs, err := h.publishService.ListPublications(c.Request.Context(), user.UserID, limit)
	if err != nil {
		appErr := apperror.As(err)
		if appErr.Code == apperror.CodeService {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: appErr.Message, Code: string(appErr.Code)})
			return
		}
		writeError(c, appErr)
		return
	}

	items := make([]PublicationResponse, 0, len(pubs))
	for _, p := range pubs {
		items = append(items, toPublicationResponse(p))
	}
	c.JSON(http.StatusOK, gin.H{"publications": items})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"article-generator/internal/middleware"
	"article-generator/internal/service"
)

// GenerateHandler handles article generation requests.
type GenerateHandler struct {
	generationService service.GenerationServiceInterface
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(generationService service.GenerationServiceInterface) *GenerateHandler {
	return &GenerateHandler{generationService: generationService}
}

// Generate handles POST /api/v1/articles/generate and the legacy
// /functions/v1/generate-article path.
func (h *GenerateHandler) Generate(c *gin.Context) {
	article, err := h.generationService.Generate(c.Request.Context(), service.GenerateInput{
		RequestID:     middleware.GetRequestID(c),
		ClientID:      middleware.GetClientID(c),
		ContentLength: c.Request.ContentLength,
		Body:          c.Request.Body,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

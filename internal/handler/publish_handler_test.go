package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"article-generator/internal/apperror"
	"article-generator/internal/domain"
	"article-generator/internal/handler"
	"article-generator/internal/middleware"
	"article-generator/internal/mocks"
)

var editor = domain.Identity{UserID: "user-1", Email: "editor@hospitalityfn.test"}

func setupPublishRouter(t *testing.T, h *handler.PublishHandler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	verifier := mocks.NewMockIdentityVerifier(t)
	verifier.EXPECT().Verify(mock.Anything, "good-token").Return(&editor, nil).Maybe()
	verifier.EXPECT().Verify(mock.Anything, mock.Anything).Return(nil, errors.New("invalid JWT")).Maybe()

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ClientID())
	authed := router.Group("", middleware.RequireUser(verifier))
	authed.POST("/api/v1/articles/publish", h.Publish)
	authed.GET("/api/v1/publications", h.ListPublications)
	return router
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer good-token")
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestPublishHandler_Publish(t *testing.T) {
	const body = `{"headline":"Goat Hired","article":"<p>Body</p>","excerpt":"Short","articleType":"breaking-news"}`

	t.Run("returns the created draft", func(t *testing.T) {
		svc := mocks.NewMockPublishServiceInterface(t)
		svc.EXPECT().
			Publish(mock.Anything, editor, &domain.PublishRequest{
				Headline: "Goat Hired", Article: "<p>Body</p>", Excerpt: "Short", ArticleType: "breaking-news",
			}).
			Return(&domain.CreatedPost{ID: 42, EditURL: "https://cms.test/wp-admin/post.php?post=42&action=edit"}, nil)

		router := setupPublishRouter(t, handler.NewPublishHandler(svc))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/articles/publish", body))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"postId":42,"editUrl":"https://cms.test/wp-admin/post.php?post=42&action=edit"}`, w.Body.String())
	})

	t.Run("requires a valid token", func(t *testing.T) {
		svc := mocks.NewMockPublishServiceInterface(t)
		router := setupPublishRouter(t, handler.NewPublishHandler(svc))

		req := authedRequest(http.MethodPost, "/api/v1/articles/publish", body)
		req.Header.Set("Authorization", "Bearer forged")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, w).Code)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		svc := mocks.NewMockPublishServiceInterface(t)
		router := setupPublishRouter(t, handler.NewPublishHandler(svc))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/articles/publish", `{"headline":`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeError(t, w).Code)
	})

	t.Run("rejects oversized body", func(t *testing.T) {
		svc := mocks.NewMockPublishServiceInterface(t)
		router := setupPublishRouter(t, handler.NewPublishHandler(svc))

		huge := `{"headline":"H","article":"` + strings.Repeat("a", 200*1024) + `","excerpt":"E"}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/articles/publish", huge))

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("CMS failure is a bad gateway", func(t *testing.T) {
		svc := mocks.NewMockPublishServiceInterface(t)
		svc.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperror.Wrap(apperror.CodePublish, errors.New("wordpress API error: 500 - stack trace")))

		router := setupPublishRouter(t, handler.NewPublishHandler(svc))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/articles/publish", body))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "PUBLISH_ERROR", resp.Code)
		assert.NotContains(t, w.Body.String(), "stack trace")
	})
}

func TestPublishHandler_ListPublications(t *testing.T) {
	t.Run("lists the caller's publications", func(t *testing.T) {
		svc := mocks.NewMockPublishServiceInterface(t)
		created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		svc.EXPECT().ListPublications(mock.Anything, "user-1", 10).Return([]domain.Publication{
			{ID: "p1", UserID: "user-1", PostID: 42, EditURL: "https://cms.test/edit/42", Headline: "Goat Hired", CreatedAt: created},
		}, nil)

		router := setupPublishRouter(t, handler.NewPublishHandler(svc))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/publications?limit=10", ""))

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Publications []handler.PublicationResponse `json:"publications"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Publications, 1)
		assert.Equal(t, int64(42), resp.Publications[0].PostID)
		assert.Equal(t, "2024-03-01T12:00:00Z", resp.Publications[0].CreatedAt)
	})

	t.Run("empty list is an empty array", func(t *testing.T) {
		svc := mocks.NewMockPublishServiceInterface(t)
		svc.EXPECT().ListPublications(mock.Anything, "user-1", 50).Return(nil, nil)

		router := setupPublishRouter(t, handler.NewPublishHandler(svc))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/publications", ""))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"publications":[]}`, w.Body.String())
	})

	t.Run("rejects a bad limit", func(t *testing.T) {
		svc := mocks.NewMockPublishServiceInterface(t)
		router := setupPublishRouter(t, handler.NewPublishHandler(svc))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/publications?limit=abc", ""))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ledger unavailable", func(t *testing.T) {
		svc := mocks.NewMockPublishServiceInterface(t)
		svc.EXPECT().ListPublications(mock.Anything, "user-1", 50).
			Return(nil, apperror.ServiceMisconfigured(errors.New("publication ledger not configured")))

		router := setupPublishRouter(t, handler.NewPublishHandler(svc))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/publications", ""))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "SERVICE_ERROR", decodeError(t, w).Code)
	})
}

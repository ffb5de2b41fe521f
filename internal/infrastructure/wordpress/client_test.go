package wordpress_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-generator/internal/domain"
	"article-generator/internal/infrastructure/wordpress"
)

func TestNewClient(t *testing.T) {
	t.Run("requires credentials", func(t *testing.T) {
		_, err := wordpress.NewClient(wordpress.Config{Username: "editor"})
		assert.Error(t, err)
	})

	t.Run("defaults base URL", func(t *testing.T) {
		c, err := wordpress.NewClient(wordpress.Config{Username: "editor", Password: "app-pass"})
		require.NoError(t, err)
		assert.Equal(t, "https://hospitalityfn.com/wp-admin/post.php?post=5&action=edit", c.EditURL(5))
	})
}

func TestClient_CreateDraft(t *testing.T) {
	ctx := context.Background()
	post := domain.DraftPost{Title: "Goat Hired", Content: "<p>Body</p>", Excerpt: "Short", Status: "draft", Author: 1}

	t.Run("creates the draft", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/wp-json/wp/v2/posts", r.URL.Path)

			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "editor", user)
			assert.Equal(t, "app-pass", pass)

			var got domain.DraftPost
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, post, got)

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":123,"status":"draft"}`))
		}))
		defer server.Close()

		c, err := wordpress.NewClient(wordpress.Config{BaseURL: server.URL + "/", Username: "editor", Password: "app-pass"})
		require.NoError(t, err)

		created, err := c.CreateDraft(ctx, post)

		require.NoError(t, err)
		assert.Equal(t, int64(123), created.ID)
		assert.Equal(t, server.URL+"/wp-admin/post.php?post=123&action=edit", created.EditURL)
	})

	t.Run("non-2xx returns API error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code":"rest_cannot_create"}`))
		}))
		defer server.Close()

		c, err := wordpress.NewClient(wordpress.Config{BaseURL: server.URL, Username: "editor", Password: "wrong"})
		require.NoError(t, err)

		_, err = c.CreateDraft(ctx, post)

		var apiErr *wordpress.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "rest_cannot_create")
	})

	t.Run("response without id is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		c, err := wordpress.NewClient(wordpress.Config{BaseURL: server.URL, Username: "editor", Password: "app-pass"})
		require.NoError(t, err)

		_, err = c.CreateDraft(ctx, post)
		assert.Error(t, err)
	})
}

package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-generator/internal/auth"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   "2c1b6f3e-1111-4c3a-9a59-8f0f1e2d3c4b",
		"email": "editor@hospitalityfn.test",
		"aud":   "authenticated",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func TestJWTVerifier_Verify(t *testing.T) {
	ctx := context.Background()
	v := auth.NewJWTVerifier(testSecret)

	t.Run("accepts a valid token", func(t *testing.T) {
		id, err := v.Verify(ctx, signToken(t, testSecret, jwt.SigningMethodHS256, validClaims()))

		require.NoError(t, err)
		assert.Equal(t, "2c1b6f3e-1111-4c3a-9a59-8f0f1e2d3c4b", id.UserID)
		assert.Equal(t, "editor@hospitalityfn.test", id.Email)
	})

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{"empty", func(t *testing.T) string { return "" }},
		{"garbage", func(t *testing.T) string { return "not.a.jwt" }},
		{"wrong secret", func(t *testing.T) string {
			return signToken(t, "another-secret-that-is-also-long-enough!!", jwt.SigningMethodHS256, validClaims())
		}},
		{"expired", func(t *testing.T) string {
			c := validClaims()
			c["exp"] = time.Now().Add(-time.Minute).Unix()
			return signToken(t, testSecret, jwt.SigningMethodHS256, c)
		}},
		{"no expiry", func(t *testing.T) string {
			c := validClaims()
			delete(c, "exp")
			return signToken(t, testSecret, jwt.SigningMethodHS256, c)
		}},
		{"anonymous audience", func(t *testing.T) string {
			c := validClaims()
			c["aud"] = "anon"
			return signToken(t, testSecret, jwt.SigningMethodHS256, c)
		}},
		{"other HMAC method", func(t *testing.T) string {
			return signToken(t, testSecret, jwt.SigningMethodHS512, validClaims())
		}},
		{"missing subject", func(t *testing.T) string {
			c := validClaims()
			delete(c, "sub")
			return signToken(t, testSecret, jwt.SigningMethodHS256, c)
		}},
	}

	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			id, err := v.Verify(ctx, tt.token(t))
			assert.Error(t, err)
			assert.Nil(t, id)
		})
	}
}

func TestSupabaseVerifier_Verify(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"msg":"invalid JWT"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":    "user-1",
			"email": "editor@hospitalityfn.test",
			"role":  "authenticated",
		})
	}))
	defer server.Close()

	v := auth.NewSupabaseVerifier(server.URL+"/", "anon-key", server.Client())

	t.Run("returns the user for a valid token", func(t *testing.T) {
		id, err := v.Verify(ctx, "good-token")

		require.NoError(t, err)
		assert.Equal(t, "user-1", id.UserID)
		assert.Equal(t, "editor@hospitalityfn.test", id.Email)
	})

	t.Run("rejects an invalid token", func(t *testing.T) {
		_, err := v.Verify(ctx, "bad-token")

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("rejects an empty token without calling the API", func(t *testing.T) {
		_, err := v.Verify(ctx, "")

		assert.ErrorIs(t, err, auth.ErrMissingToken)
	})
}

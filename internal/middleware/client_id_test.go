package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"article-generator/internal/middleware"
)

func TestClientID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:    "first forwarded address",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1, 10.0.0.2"},
			want:    "203.0.113.7",
		},
		{
			name: "forwarded address wins over Cloudflare header",
			headers: map[string]string{
				"X-Forwarded-For":  "203.0.113.7",
				"CF-Connecting-IP": "198.51.100.4",
			},
			want: "203.0.113.7",
		},
		{
			name:    "Cloudflare header",
			headers: map[string]string{"CF-Connecting-IP": "198.51.100.4"},
			want:    "198.51.100.4",
		},
		{
			name:    "blank forwarded entry falls through",
			headers: map[string]string{"X-Forwarded-For": " , 10.0.0.1", "CF-Connecting-IP": "198.51.100.4"},
			want:    "198.51.100.4",
		},
		{
			name:       "peer address",
			remoteAddr: "192.0.2.10:54321",
			want:       "192.0.2.10",
		},
		{
			name:       "unknown",
			remoteAddr: "garbage",
			want:       "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(middleware.ClientID())

			var got string
			router.POST("/generate", func(c *gin.Context) {
				got = middleware.GetClientID(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/generate", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			router.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetClientID_DefaultsToUnknown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Equal(t, "unknown", middleware.GetClientID(c))
}

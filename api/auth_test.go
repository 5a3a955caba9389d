package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func authedRouter() *gin.Engine {
	router := gin.New()
	router.POST("/hook", TokenAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestTokenAuthDisabledWhenUnset(t *testing.T) {
	viper.Set("relay.token", "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/hook", nil)
	authedRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTokenAuthSources(t *testing.T) {
	viper.Set("relay.token", "s3cret")
	t.Cleanup(func() { viper.Set("relay.token", "") })

	tests := []struct {
		name     string
		decorate func(*http.Request)
		want     int
	}{
		{"no token", func(r *http.Request) {}, http.StatusUnauthorized},
		{"bearer header", func(r *http.Request) { r.Header.Set("Authorization", "Bearer s3cret") }, http.StatusOK},
		{"bare authorization header", func(r *http.Request) { r.Header.Set("Authorization", "s3cret") }, http.StatusOK},
		{"wrong bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized},
		{"custom header", func(r *http.Request) { r.Header.Set("X-Relay-Token", "s3cret") }, http.StatusOK},
		{"wrong custom header", func(r *http.Request) { r.Header.Set("X-Relay-Token", "nope") }, http.StatusUnauthorized},
		{"query parameter", func(r *http.Request) { r.URL.RawQuery = "token=s3cret" }, http.StatusOK},
		{"wrong query parameter", func(r *http.Request) { r.URL.RawQuery = "token=nope" }, http.StatusUnauthorized},
	}

	router := authedRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/hook", nil)
			tt.decorate(req)
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestTokenAuthPrecedence(t *testing.T) {
	viper.Set("relay.token", "s3cret")
	t.Cleanup(func() { viper.Set("relay.token", "") })

	router := authedRouter()

	// A wrong Authorization header is not rescued by a correct later source.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/hook?token=s3cret", nil)
	req.Header.Set("Authorization", "Bearer nope")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Same for a wrong custom header over a correct query parameter.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/hook?token=s3cret", nil)
	req.Header.Set("X-Relay-Token", "nope")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

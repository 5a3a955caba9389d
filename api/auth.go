package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// TokenAuth guards the webhook endpoint with the shared secret from
// relay.token. The token may arrive as a bearer Authorization header, the
// X-Relay-Token header, or a token query parameter; the first source present
// wins, so a wrong Authorization header fails even if the query would match.
// An empty configured token disables the check entirely.
func TokenAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := viper.GetString("relay.token")
		if expected == "" {
			c.Next()
			return
		}

		provided := requestToken(c.Request)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func requestToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	if token := r.Header.Get("X-Relay-Token"); token != "" {
		return token
	}
	return r.URL.Query().Get("token")
}

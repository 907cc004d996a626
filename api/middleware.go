package api

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/reinvvay/airport-api/internal/auth"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// Authenticator resolves a raw bearer token to the acting user.
type Authenticator interface {
	Authenticate(ctx context.Context, raw string) (auth.Actor, error)
}

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.InfoContext(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"request_id", c.GetString(requestIDKey),
		)
	}
}

// Authenticate attaches the bearer token's actor to the request context.
// Requests without a token pass through as anonymous.
func Authenticate(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			respondError(c, auth.ErrInvalidToken)
			return
		}
		actor, err := authn.Authenticate(c.Request.Context(), strings.TrimSpace(raw))
		if err != nil {
			respondError(c, err)
			return
		}
		c.Request = c.Request.WithContext(auth.WithActor(c.Request.Context(), actor))
		c.Next()
	}
}

// Guard enforces the airport access policy for the route group it is attached to.
func Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		var actor *auth.Actor
		if a, ok := auth.ActorFrom(c.Request.Context()); ok {
			actor = &a
		}
		if err := auth.Authorize(auth.RoleOf(actor), c.Request.Method); err != nil {
			respondError(c, err)
			return
		}
		c.Next()
	}
}

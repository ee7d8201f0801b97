package httpapi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"volleyhub/internal/domain"
)

const (
	ctxRequestID  = "request_id"
	ctxUserID     = "user_id"
	ctxLocale     = "locale"
	ctxTranslator = "translator"
)

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(ctxRequestID, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger puts a request-scoped zerolog logger in the request context
// and writes one access line per request.
func StructuredLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		logger := log.With().Str("request_id", c.GetString(ctxRequestID)).Logger()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))

		c.Next()

		status := c.Writer.Status()
		evt := logger.Info()
		if status >= 500 {
			evt = logger.Error()
		}
		evt.Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("HTTP Request")
	}
}

// Localize resolves the caller's language from Accept-Language once per request.
func Localize(tr translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxTranslator, tr)
		c.Set(ctxLocale, tr.Match(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// TokenVerifier checks a bearer token and returns the subject it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// JWTVerifier validates HS256 tokens signed with a shared secret, or tokens
// whose keys are published at a JWKS endpoint.
type JWTVerifier struct {
	secret []byte
	jwks   *keyfunc.JWKS
}

// NewJWTVerifier prefers the JWKS endpoint when jwksURL is set.
func NewJWTVerifier(ctx context.Context, secret, jwksURL string) (*JWTVerifier, error) {
	v := &JWTVerifier{secret: []byte(secret)}
	if jwksURL == "" {
		if secret == "" {
			return nil, errors.New("jwt: neither secret nor JWKS URL configured")
		}
		return v, nil
	}
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		Ctx:             ctx,
		RefreshInterval: time.Hour,
		RefreshErrorHandler: func(err error) {
			log.Warn().Err(err).Str("jwks_url", jwksURL).Msg("⚠️ JWKS refresh failed")
		},
	})
	if err != nil {
		return nil, fmt.Errorf("jwt: load JWKS: %w", err)
	}
	v.jwks = jwks
	return v, nil
}

func (v *JWTVerifier) Verify(tokenStr string) (string, error) {
	var (
		token *jwt.Token
		err   error
	)
	if v.jwks != nil {
		token, err = jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, v.jwks.Keyfunc)
	} else {
		token, err = jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
			return v.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	}
	if err != nil {
		return "", fmt.Errorf("token validation failed: %w", err)
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid or expired token")
	}
	return claims.Subject, nil
}

// Close stops the background JWKS refresh.
func (v *JWTVerifier) Close() {
	if v.jwks != nil {
		v.jwks.EndBackground()
	}
}

// Auth rejects requests without a valid bearer token and stores the token
// subject as the acting user id. Browsers cannot set headers on websocket
// upgrades, so a token query parameter is accepted too.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" || token == c.GetHeader("Authorization") {
			token = c.Query("token")
		}
		if token == "" {
			fail(c, domain.ErrNotAuthorized)
			c.Abort()
			return
		}
		userID, err := verifier.Verify(token)
		if err != nil {
			log.Ctx(c.Request.Context()).Warn().Err(err).Msg("⚠️ rejected bearer token")
			fail(c, domain.ErrNotAuthorized)
			c.Abort()
			return
		}
		c.Set(ctxUserID, userID)
		logger := log.Ctx(c.Request.Context()).With().Str("user_id", userID).Logger()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))
		c.Next()
	}
}

func currentUser(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

package middleware

import (
  "strings"
  "github.com/gin-gonic/gin"
  "github.com/neuroscale/neuroscale-site/internal/logger"
  "github.com/neuroscale/neuroscale-site/internal/services"
  "github.com/neuroscale/neuroscale-site/internal/session"
)

type AuthMiddleware struct {
  log         *logger.Logger
  authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
  return &AuthMiddleware{log: log.With("middleware", "AuthMiddleware"), authService: authService}
}

// AttachSession parses a bearer token when one is present and attaches the
// session to the request context. A missing or invalid token is not an
// error here — most content queries are public, and the per-operation
// access rules decide what an anonymous request may do.
func (am *AuthMiddleware) AttachSession() gin.HandlerFunc {
  return func(c *gin.Context) {
    tokenString := extractBearerToken(c)
    if tokenString == "" {
      c.Next()
      return
    }
    sess, err := am.authService.ParseToken(tokenString)
    if err != nil {
      am.log.Debug("Bearer token rejected", "error", err)
      c.Next()
      return
    }
    c.Request = c.Request.WithContext(session.WithSession(c.Request.Context(), sess))
    c.Next()
  }
}

func extractBearerToken(c *gin.Context) string {
  authHeader := c.GetHeader("Authorization")
  if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
    return authHeader[7:]
  }
  return ""
}

package session

import (
	"context"

	"github.com/google/uuid"
)

// Session is the authenticated admin attached to a request. Public requests
// carry no session; access rules treat its absence as "anonymous".
type Session struct {
	UserID uuid.UUID
	Email  string
}

type ctxKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns nil when the request is anonymous.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}

// Package session holds the server-side session records referenced by the
// opaque id the client carries in its cookie.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rahadian/member-portal/internal/domain/entity"
)

// Record is the server-held session payload. Authenticated is set only
// after a successful password verification; signup populates the identity
// fields but leaves it false.
type Record struct {
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Authenticated bool        `json:"authenticated"`
	Role          entity.Role `json:"role"`
	ExpiresAt     time.Time   `json:"expires_at"`
}

// HasIdentity reports whether the record carries a logged-in user
// identity. This is what the login guard checks; the stricter
// Authenticated flag is reserved for the role guard.
func (r *Record) HasIdentity() bool {
	return r != nil && r.Name != ""
}

// Store is the session store contract. Implementations own expiry: a Get
// after the TTL has elapsed must behave as if the record never existed.
// Handlers receive a Store explicitly, never ambient global state.
type Store interface {
	Get(ctx context.Context, id string) (*Record, error)
	Put(ctx context.Context, id string, rec *Record, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// NewID returns a fresh opaque session identifier.
func NewID() string {
	return uuid.NewString()
}

// ABOUTME: Request-scoped identity for authenticated users
// ABOUTME: Provides WithPrincipal/FromContext for propagation via context

package auth

import (
	"context"

	"github.com/hatchboard/hatchboard/internal/store"
)

// Principal is the authenticated identity attached to a request. It is
// populated by the session resolver middleware and read by handlers.
type Principal struct {
	ID    string
	Name  string
	Email string
}

// PrincipalFromUser builds a Principal from a stored user record.
func PrincipalFromUser(u *store.User) *Principal {
	return &Principal{ID: u.ID, Name: u.Name, Email: u.Email}
}

// principalKey is the key type for storing a Principal in context.Context.
type principalKey struct{}

// WithPrincipal returns a new context with the Principal attached.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext retrieves the Principal from the context, returning nil
// for unauthenticated requests.
func FromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}

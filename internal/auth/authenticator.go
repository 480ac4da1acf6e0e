// ABOUTME: Credential verification against the user store
// ABOUTME: Burns a bcrypt compare on unknown emails to keep timing uniform

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/hatchboard/hatchboard/internal/store"
)

// Authentication errors. Handlers collapse both into one response so
// the API does not reveal which emails are registered.
var (
	ErrNoSuchUser  = errors.New("no user with that email")
	ErrBadPassword = errors.New("password does not match")
)

// dummyHash is compared against when the email has no account, so the
// unknown-email path costs a bcrypt verification too.
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("hatchboard-timing-pad"), bcryptCost)
	if err != nil {
		panic(fmt.Sprintf("auth: generating dummy hash: %v", err))
	}
	return h
}()

// Authenticator checks email/password credentials against stored users.
type Authenticator struct {
	users  store.Store
	logger *slog.Logger
}

// NewAuthenticator creates an authenticator backed by the given store.
func NewAuthenticator(users store.Store) *Authenticator {
	return &Authenticator{
		users:  users,
		logger: slog.Default().With("component", "auth"),
	}
}

// Authenticate verifies the credentials and returns the matching user.
// It returns ErrNoSuchUser or ErrBadPassword on credential failures and
// wraps anything else from the store.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (*store.User, error) {
	user, err := a.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, ErrNoSuchUser
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !VerifyPassword(user.Password, password) {
		a.logger.Warn("failed login attempt", "user_id", user.ID)
		return nil, ErrBadPassword
	}

	return user, nil
}

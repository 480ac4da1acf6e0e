// ABOUTME: Session store interface and shared session primitives
// ABOUTME: Defines the contract backed by memory and Redis implementations

package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session ID does not exist or
// has expired.
var ErrSessionNotFound = errors.New("session not found")

// ErrStoreClosed is returned when using a store after Close.
var ErrStoreClosed = errors.New("session store closed")

// Store persists the mapping from session ID to user ID. Sessions
// expire after a fixed TTL set at creation; reads never extend it.
type Store interface {
	// Create mints a new session for the user and returns its ID.
	Create(ctx context.Context, userID string) (string, error)

	// Read returns the user ID for a live session, or ErrSessionNotFound.
	Read(ctx context.Context, sessionID string) (string, error)

	// Destroy removes a session. Destroying an unknown session is not
	// an error.
	Destroy(ctx context.Context, sessionID string) error

	// Close releases any resources held by the store.
	Close() error
}

// newSessionID generates a 256-bit random session identifier.
func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

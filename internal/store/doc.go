// Package store provides persistent storage for hatchboard using SQLite.
//
// # Architecture
//
// The Store interface covers the three record families the HTTP surface
// needs:
//
//   - User: identity records with a unique email and a bcrypt password hash
//   - Project: user-owned listings, queried newest-first
//   - Message: direct messages between users about a project
//
// SQLiteStore implements the interface over a single database file with
// WAL mode enabled. The schema is created automatically on open.
//
// # Collaborator schema
//
// Column names mirror the hosted database the frontend was originally
// built against, including its camelCase foreign keys (userId, senderId,
// receiverId, projectId). Timestamps are stored as RFC3339 UTC strings.
//
// # Error Handling
//
// Lookups return sentinel errors (ErrUserNotFound, ErrProjectNotFound,
// ErrEmailExists) that callers match with errors.Is; everything else is
// wrapped with context via fmt.Errorf.
package store

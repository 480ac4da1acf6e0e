// Package session stores the server-side half of login sessions: an
// opaque random session ID mapped to a user ID with a fixed TTL.
//
// Two backends implement Store. MemoryStore is the default and keeps
// sessions in process memory; RedisStore shares them across instances
// through Redis with expiry handled by key TTLs. Neither backend
// extends a session on read; a login is good for exactly the
// configured TTL.
//
// Session IDs are 256-bit random values, hex encoded. The cookie layer
// in internal/auth wraps them in a signed token before they reach the
// client.
package session

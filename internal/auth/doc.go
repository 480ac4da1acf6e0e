// Package auth implements credential verification and cookie-session
// authentication for the HTTP API.
//
// Login flow: Authenticator checks email/password against bcrypt hashes
// in the store, the session package mints a server-side session, and
// CookieCodec signs the session ID into the hatchboard_session cookie.
// On later requests Resolver.Middleware reverses the chain and attaches
// a Principal to the request context; RequirePrincipal guards the
// routes that need one.
//
// Unknown emails burn a bcrypt comparison against a dummy hash so the
// two login failure modes take similar time.
package auth

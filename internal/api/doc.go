// Package api exposes the hatchboard HTTP surface: signup/login with a
// cookie session, project CRUD, and project messaging.
//
// The router is chi with request-id, real-ip, recoverer, metrics, CORS,
// and session-resolver middleware applied to every route. Routes that
// need a login sit behind RequirePrincipal; DELETE /delete/{id} and
// GET /edit/{id} additionally check that the principal owns the
// project. POST /newproject and PUT /edit/{id} intentionally skip those
// checks to stay compatible with the frontend contract.
//
// Response bodies use a "message" field on auth and mutation flows and
// an "error" field on reads, mirroring what the frontend parses.
package api

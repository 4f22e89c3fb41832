// Package services implements the HTTP client for the job application backend.
//
// # Backend Interface
//
// The [Backend] interface covers the five endpoints the client consumes:
//   - POST /users/ : create (or get-or-register) a user from a profile
//   - GET /users/{email} : fetch an existing user
//   - GET /jobs/search : keyword/location search, personalised when user_id is sent
//   - POST /apply/?user_id= : apply to a job; the backend emails HR or asks for a manual application
//   - GET /applications/{user_id} : application history
//
// [APIService] implements it over net/http. Every request is rate limited, carries an X-Request-ID header and is bound
// to the caller's context.
//
// # Error Handling
//
// Non-2xx answers come back as [*APIError], carrying the status code and the FastAPI "detail" string:
//   - errors.Is(err, [shared.ErrAPIRequest]) : any non-2xx answer
//   - errors.Is(err, [shared.ErrNotFound]) : 404
//
// Requests that never completed come back as [*NetworkError], which matches [shared.ErrNetwork].
package services

// Package input fetches Advent of Code puzzle inputs once and serves them
// from a local directory tree afterwards.
//
// What:
//
//   - Cache.Input(ctx, year, day) returns the puzzle text for (year, day).
//   - Hits read <data_root>/<year>/day<day>.txt and never touch the network.
//   - Misses GET the configured endpoint with the session cookie and a
//     User-Agent, then persist the body atomically (temp file + rename).
//   - Concurrent misses for the same key share one request (single-flight);
//     distinct keys proceed in parallel.
//
// Per-key lifecycle:
//
//	Missing ──Input──▶ Fetching ──ok──▶ Present (terminal)
//	                       │
//	                       └──error──▶ Missing (temp file removed)
//
// Configuration (LoadConfig): defaults, then an optional YAML file, then
// AOC_* environment variables (AOC_DATA_ROOT, AOC_COOKIE, AOC_ENDPOINT, ...).
// The session cookie comes from AOC_COOKIE when set, otherwise from the
// AOC_COOKIE entry of a KEY=VALUE credential file (".env" by default).
//
// Errors (match with errors.Is):
//
//   - ErrInvalidArgument: year < 2015 or day outside 1..25.
//   - ErrUnauthorized: 4xx from the remote, or no credential available (ErrNoCredential).
//   - ErrRemoteUnavailable: transport failure, 5xx, truncated body, a limiter that refuses the request.
//   - ErrStorageUnavailable: the data directory could not be written.
//   - ErrInvalidConfig: New or LoadConfig rejected the configuration.
//
// Nothing is retried. Collaborators (filesystem, HTTP client, credential
// source, logger, metrics registry, rate limiter) are injected via Option,
// so tests run against afero.NewMemMapFs and an httptest server.
package input

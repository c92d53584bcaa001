// Package client contains the remote side of the shop client.
//
// # Overview
//
// The package provides:
//  1. The Client contract for the Shopping World auth API: Login, Register,
//     Profile and Ping.
//  2. HTTPClient, a JSON-over-HTTP implementation. It tags each call with an
//     X-Request-ID, sends the session token as a bearer header where needed
//     and maps failures to the errors below.
//  3. Local storage bootstrap (InitDatabase, RunMigrations): an SQLite file
//     brought up to date with embedded goose migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx responses are *StatusError;
// 401 and 403 match ErrUnauthorized with errors.Is. ErrEmptyResponse and
// ErrMissingToken describe 2xx responses that lack what the caller needs.
//
// Calls are never retried and carry no timeout of their own unless one is
// configured; they honour context cancellation.
package client

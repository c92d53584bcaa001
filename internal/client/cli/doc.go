// Package cli provides the interactive shopkeeper command-line client.
//
// It wires configuration, local storage, the API client and the session
// model into a REPL. Each client-side route has a page that is printed when
// the user navigates to it; the /user page goes through the access gate.
//
// Key features:
//   - Register / Login / Logout
//   - Session restore from a stored token on start
//   - Background connectivity watcher (online / offline mode)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli

// Package session holds the client-side view of who is logged in.
//
// Three stores describe the same fact and must agree:
//
//   - the session token (package tokenstore), proof of identity for the API;
//   - Cache, the last user the server reported, keyed by UserKey;
//   - Identity, the logged-in user the pages read.
//
// Cache is authoritative over Identity. A Reconciler subscribes to the
// cache once and copies every newly cached user into Identity, skipping the
// write when both already name the same account. Gate turns the identity
// into the content of the protected page.
//
// A Session bundles one Cache, one Identity and their Reconciler. It is
// created at startup and handed to whoever needs it; there is no package
// level state.
package session

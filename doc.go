// Package portfolio provides the preference store behind the portfolio site.
//
// A Pref binds a named, JSON-serializable value to a browser-scoped LocalStore.
// It renders with its default first and reconciles with durable storage in a
// separate Sync step, so pre-rendered and live output agree on first paint.
// Durable media live in the storage package, optional read-through caches in
// the cache package.
package portfolio

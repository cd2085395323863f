// Package localstorage is a string key/value store persisted in the client's
// SQLite database (table local_storage).
//
// Contract: Get returns ("", false, nil) for a missing key; Set upserts;
// Delete is idempotent. Driver errors are wrapped with the key for context.
package localstorage

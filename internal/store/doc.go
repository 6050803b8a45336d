// Package store implements the persistence layer: a SQLite-backed
// key-value blob table with three fixed namespaces.
//
//   - [CredentialStore] : "users", the registered credential collection
//   - [Session] : "loggedInUser", the single active user identifier
//   - [PlaylistStore] : "playlists_<user>", one collection per user
//
// Every mutation is a full-collection read-modify-write of one key.
// That is O(n) per write but keeps the storage format trivially
// inspectable and makes "last write wins" the only consistency rule,
// which is all a single-user local store needs. Access is synchronous
// at the call site; nothing guards against a concurrent writer from a
// second process.
package store

// Package models defines the domain records the mixtape stores persist.
//
// The JSON tags mirror the storage blobs exactly: a [User] serializes to
// {email, password}, a [Playlist] to {id, name, description, songs}, and a
// [Track] to the catalog's {id, name, artists, album} shape. Collections are
// always serialized whole, so these types double as the storage schema.
package models

package models

import (
	"strings"

	"github.com/desertthunder/mixtape/internal/shared"
)

// User is a stored credential record. Records are append-only: there is
// no account update or deletion flow, and passwords are stored as
// entered (plaintext comparison on login is a deliberate non-goal).
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that both credential fields are present.
func (u User) Validate() error {
	if strings.TrimSpace(u.Email) == "" || u.Password == "" {
		return shared.ErrMissingCredentials
	}
	return nil
}

// Artist is a track's performing artist as returned by the catalog.
type Artist struct {
	Name string `json:"name"`
}

// Album is the album a track belongs to.
type Album struct {
	Name string `json:"name"`
}

// Track is a read-only song record sourced from the catalog. Once
// attached to a playlist it is stored by value and never mutated.
type Track struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Artists []Artist `json:"artists"`
	Album   Album    `json:"album"`
}

// ArtistNames joins the track's artist names for display.
func (t Track) ArtistNames() string {
	names := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

// Playlist is a user-owned named collection of tracks. IDs are
// generated once at creation and never change.
type Playlist struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Songs       []Track `json:"songs"`
}

// Validate checks structural invariants on a playlist record, used at
// the deserialization boundary to reject malformed stored data.
func (p Playlist) Validate() error {
	if p.ID == "" || strings.TrimSpace(p.Name) == "" {
		return shared.ErrMalformedData
	}
	return nil
}

// HasSong reports whether a track with the given id is already in the playlist.
func (p Playlist) HasSong(songID string) bool {
	for _, s := range p.Songs {
		if s.ID == songID {
			return true
		}
	}
	return false
}

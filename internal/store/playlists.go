package store

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mixtape/internal/models"
	"github.com/desertthunder/mixtape/internal/shared"
)

// PlaylistStore persists one user's playlist collection under
// "playlists_<user>" as a single JSON array. The owning user is fixed
// at construction: switching users means constructing a new store over
// a different key, never merging collections.
type PlaylistStore struct {
	kv     *KV
	user   string
	logger *log.Logger
}

// NewPlaylistStore creates a PlaylistStore scoped to the given user
// identifier. A nil logger discards soft-failure warnings.
func NewPlaylistStore(kv *KV, user string, logger *log.Logger) *PlaylistStore {
	if logger == nil {
		logger = shared.NewLogger(io.Discard)
	}
	return &PlaylistStore{kv: kv, user: user, logger: logger}
}

// User returns the identifier this store is scoped to.
func (s *PlaylistStore) User() string {
	return s.user
}

// Key returns the namespaced storage key for this user's collection.
func (s *PlaylistStore) Key() string {
	return PlaylistKey(s.user)
}

// Load reads and decodes the user's playlist collection in stored
// order. A missing or unparsable blob reads as empty; individual
// records that fail schema validation are dropped with a warning
// rather than poisoning the whole collection.
func (s *PlaylistStore) Load() ([]models.Playlist, error) {
	blob, err := s.kv.Get(s.Key())
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return nil, nil
	}

	var playlists []models.Playlist
	if err := json.Unmarshal(blob, &playlists); err != nil {
		s.logger.Warn("malformed playlist blob, treating as empty", "key", s.Key(), "error", err)
		return nil, nil
	}

	valid := playlists[:0]
	for _, p := range playlists {
		if err := p.Validate(); err != nil {
			s.logger.Warn("dropping malformed playlist record", "key", s.Key(), "error", err)
			continue
		}
		valid = append(valid, p)
	}

	return valid, nil
}

// Get returns the playlist with the given id, or
// [shared.ErrPlaylistNotFound].
func (s *PlaylistStore) Get(id string) (*models.Playlist, error) {
	playlists, err := s.Load()
	if err != nil {
		return nil, err
	}

	for i := range playlists {
		if playlists[i].ID == id {
			return &playlists[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
}

// Create appends a new playlist with a generated id and empty song
// list. The name must be non-blank and unique among the user's
// playlists, compared case-insensitively; [shared.ErrDuplicateName]
// aborts before anything is persisted.
func (s *PlaylistStore) Create(name, description string) (*models.Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: playlist name is required", shared.ErrInvalidInput)
	}

	playlists, err := s.Load()
	if err != nil {
		return nil, err
	}

	for _, p := range playlists {
		if strings.EqualFold(p.Name, name) {
			return nil, fmt.Errorf("%w: %s", shared.ErrDuplicateName, name)
		}
	}

	playlist := models.Playlist{
		ID:          shared.GenerateID(),
		Name:        name,
		Description: description,
		Songs:       []models.Track{},
	}

	if err := s.save(append(playlists, playlist)); err != nil {
		return nil, err
	}

	return &playlist, nil
}

// Delete removes the playlist with the given id. Unknown ids are a
// no-op; the collection is still re-persisted.
func (s *PlaylistStore) Delete(id string) error {
	playlists, err := s.Load()
	if err != nil {
		return err
	}

	kept := playlists[:0]
	for _, p := range playlists {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	return s.save(kept)
}

// AddSong appends the track to the identified playlist unless a track
// with the same id is already present (idempotent insert). Unknown
// playlist ids are a no-op.
func (s *PlaylistStore) AddSong(playlistID string, track models.Track) error {
	playlists, err := s.Load()
	if err != nil {
		return err
	}

	for i := range playlists {
		if playlists[i].ID != playlistID {
			continue
		}
		if playlists[i].HasSong(track.ID) {
			return nil
		}
		playlists[i].Songs = append(playlists[i].Songs, track)
		break
	}

	return s.save(playlists)
}

// RemoveSong removes the matching track from the identified playlist's
// song list. Unknown playlist or song ids are a no-op.
func (s *PlaylistStore) RemoveSong(playlistID, songID string) error {
	playlists, err := s.Load()
	if err != nil {
		return err
	}

	for i := range playlists {
		if playlists[i].ID != playlistID {
			continue
		}
		kept := playlists[i].Songs[:0]
		for _, song := range playlists[i].Songs {
			if song.ID != songID {
				kept = append(kept, song)
			}
		}
		playlists[i].Songs = kept
		break
	}

	return s.save(playlists)
}

// save re-serializes and overwrites the entire namespaced collection.
// Last write wins; there is no incremental persistence.
func (s *PlaylistStore) save(playlists []models.Playlist) error {
	blob, err := json.Marshal(playlists)
	if err != nil {
		return fmt.Errorf("failed to serialize playlists: %w", err)
	}
	return s.kv.Set(s.Key(), blob)
}

package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/mixtape/internal/models"
)

var (
	_ list.Item = playlistItem{}
	_ list.Item = songItem{}
)

// playlistItem wraps [models.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist models.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Name }
func (i playlistItem) Title() string       { return i.playlist.Name }
func (i playlistItem) Description() string {
	desc := fmt.Sprintf("%d song(s)", len(i.playlist.Songs))
	if i.playlist.Description != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.playlist.Description)
	}
	return desc
}

// songItem wraps [models.Track] to implement [list.Item].
type songItem struct {
	track models.Track
}

func (i songItem) FilterValue() string { return i.track.Name }
func (i songItem) Title() string       { return i.track.Name }
func (i songItem) Description() string {
	desc := i.track.ArtistNames()
	if i.track.Album.Name != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.track.Album.Name)
	}
	return desc
}

// newList builds a sized default-delegate list with a title. Zero
// dimensions mean the terminal size is not known yet; the resize
// handler sets it later.
func newList(items []list.Item, title string, width, height int) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	if width > 0 && height > 0 {
		l.SetSize(width-4, height-8)
	}
	return l
}

func playlistItems(playlists []models.Playlist) []list.Item {
	items := make([]list.Item, len(playlists))
	for i, p := range playlists {
		items[i] = playlistItem{playlist: p}
	}
	return items
}

func songItems(songs []models.Track) []list.Item {
	items := make([]list.Item, len(songs))
	for i, t := range songs {
		items[i] = songItem{track: t}
	}
	return items
}

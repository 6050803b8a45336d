// Package ui implements the interactive dashboard using bubbletea's Elm architecture.
//
// The dashboard mirrors the playlist manager workflow:
//  1. [PlaylistListView] : Browse the active user's playlists
//  2. [SongListView] : Inspect a playlist and remove songs
//  3. [CreateView] : Name/description form for a new playlist
//  4. [SearchView] : Free-text catalog search with a busy spinner
//  5. [SearchResultsView] : Pick a track from the results
//  6. [PickPlaylistView] : Choose the playlist that receives the track
//
// The [Model] implements bubbletea's standard Init/Update/View pattern. Search
// runs as an asynchronous command; while it is in flight the view shows a
// spinner. Keyboard navigation uses vim-style bindings (j/k, enter, esc, q)
// with contextual help displayed via charmbracelet/bubbles/help.
package ui

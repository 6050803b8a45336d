package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/mixtape/internal/models"
	"github.com/desertthunder/mixtape/internal/services"
	"github.com/desertthunder/mixtape/internal/store"
)

// ViewState represents the current view in the dashboard.
type ViewState int

const (
	PlaylistListView ViewState = iota
	SongListView
	CreateView
	SearchView
	SearchResultsView
	PickPlaylistView
)

// Model represents the dashboard state.
type Model struct {
	ctx       context.Context
	view      ViewState
	user      string
	playlists *store.PlaylistStore
	catalog   services.Catalog
	width     int
	height    int

	playlistList list.Model
	songList     list.Model
	resultList   list.Model
	pickList     list.Model

	collection []models.Playlist
	selectedID string
	results    []models.Track
	picked     *models.Track

	nameInput  textinput.Model
	descInput  textinput.Model
	queryInput textinput.Model

	spin      spinner.Model
	searching bool
	status    string
	err       error

	help help.Model
	keys keyMap
}

type collectionLoadedMsg struct {
	playlists []models.Playlist
	err       error
}

type searchDoneMsg struct {
	tracks []models.Track
	err    error
}

// mutationDoneMsg reports a store mutation; the collection is reloaded after it.
type mutationDoneMsg struct {
	status string
	err    error
}

// NewModel creates a new dashboard model for the session user.
func NewModel(ctx context.Context, user string, playlists *store.PlaylistStore, catalog services.Catalog) *Model {
	nameInput := textinput.New()
	nameInput.Placeholder = "Playlist name"
	nameInput.CharLimit = 120

	descInput := textinput.New()
	descInput.Placeholder = "Description"
	descInput.CharLimit = 240

	queryInput := textinput.New()
	queryInput.Placeholder = "Search for a song..."
	queryInput.CharLimit = 240

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &Model{
		ctx:       ctx,
		view:      PlaylistListView,
		user:      user,
		playlists: playlists,
		catalog:   catalog,

		playlistList: newList(nil, fmt.Sprintf("Your Playlists (%s)", user), 0, 0),
		songList:     newList(nil, "Songs", 0, 0),
		resultList:   newList(nil, "Results", 0, 0),
		pickList:     newList(nil, "Add to...", 0, 0),

		nameInput:  nameInput,
		descInput:  descInput,
		queryInput: queryInput,
		spin:       spin,
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

// Init loads the user's playlist collection.
func (m *Model) Init() tea.Cmd {
	return m.loadCollection()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, l := range []*list.Model{&m.playlistList, &m.songList, &m.resultList, &m.pickList} {
			l.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case PlaylistListView:
			return m.handlePlaylistListKeys(msg)
		case SongListView:
			return m.handleSongListKeys(msg)
		case CreateView:
			return m.handleCreateKeys(msg)
		case SearchView:
			return m.handleSearchKeys(msg)
		case SearchResultsView:
			return m.handleResultsKeys(msg)
		case PickPlaylistView:
			return m.handlePickKeys(msg)
		}

	case collectionLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.collection = msg.playlists
		m.playlistList = newList(playlistItems(msg.playlists), fmt.Sprintf("Your Playlists (%s)", m.user), m.width, m.height)
		if m.selectedID != "" {
			m.rebuildSongList()
		}
		return m, nil

	case searchDoneMsg:
		m.searching = false
		if msg.err != nil {
			m.err = msg.err
			m.view = SearchView
			return m, nil
		}
		m.results = msg.tracks
		m.resultList = newList(songItems(msg.tracks), fmt.Sprintf("Results for %q", m.queryInput.Value()), m.width, m.height)
		m.view = SearchResultsView
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = msg.status
		m.err = nil
		return m, m.loadCollection()

	case spinner.TickMsg:
		if m.searching {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	header := styles.title.Render("mixtape — " + m.user)

	var body string
	switch m.view {
	case PlaylistListView:
		body = m.renderPlaylistList()
	case SongListView:
		body = m.renderSongList()
	case CreateView:
		body = m.renderCreate()
	case SearchView:
		body = m.renderSearch()
	case SearchResultsView:
		body = m.renderResults()
	case PickPlaylistView:
		body = m.renderPick()
	}

	var notices string
	if m.err != nil {
		notices += "\n" + styles.err.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.status != "" {
		notices += "\n" + styles.ok.Render(m.status)
	}

	return fmt.Sprintf("%s\n%s%s", header, body, notices)
}

func (m *Model) handlePlaylistListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if pl, ok := m.selectedPlaylist(&m.playlistList); ok {
			m.selectedID = pl.ID
			m.rebuildSongList()
			m.view = SongListView
			m.status = ""
		}
		return m, nil
	case "n":
		m.nameInput.SetValue("")
		m.descInput.SetValue("")
		m.nameInput.Focus()
		m.descInput.Blur()
		m.view = CreateView
		m.status = ""
		m.err = nil
		return m, textinput.Blink
	case "d":
		if pl, ok := m.selectedPlaylist(&m.playlistList); ok {
			return m, m.deletePlaylist(pl.ID, pl.Name)
		}
		return m, nil
	case "s":
		m.queryInput.SetValue("")
		m.queryInput.Focus()
		m.view = SearchView
		m.status = ""
		m.err = nil
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.playlistList, cmd = m.playlistList.Update(msg)
	return m, cmd
}

func (m *Model) handleSongListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = PlaylistListView
		m.selectedID = ""
		return m, nil
	case "d", "x":
		if selected, ok := m.songList.SelectedItem().(songItem); ok {
			return m, m.removeSong(m.selectedID, selected.track)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.songList, cmd = m.songList.Update(msg)
	return m, cmd
}

func (m *Model) handleCreateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = PlaylistListView
		return m, nil
	case "tab", "shift+tab":
		if m.nameInput.Focused() {
			m.nameInput.Blur()
			m.descInput.Focus()
		} else {
			m.descInput.Blur()
			m.nameInput.Focus()
		}
		return m, textinput.Blink
	case "enter":
		name := m.nameInput.Value()
		desc := m.descInput.Value()
		m.view = PlaylistListView
		return m, m.createPlaylist(name, desc)
	}

	var cmd tea.Cmd
	if m.nameInput.Focused() {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		// No cancellation: the pending search resolves or fails on its own.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = PlaylistListView
		return m, nil
	case "enter":
		query := m.queryInput.Value()
		if query == "" {
			return m, nil
		}
		m.searching = true
		m.err = nil
		return m, tea.Batch(m.spin.Tick, m.runSearch(query))
	}

	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	return m, cmd
}

func (m *Model) handleResultsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = SearchView
		m.queryInput.Focus()
		return m, textinput.Blink
	case "enter":
		if selected, ok := m.resultList.SelectedItem().(songItem); ok {
			track := selected.track
			m.picked = &track
			m.pickList = newList(playlistItems(m.collection), fmt.Sprintf("Add %q to...", track.Name), m.width, m.height)
			m.view = PickPlaylistView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.resultList, cmd = m.resultList.Update(msg)
	return m, cmd
}

func (m *Model) handlePickKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = SearchResultsView
		return m, nil
	case "enter":
		if pl, ok := m.selectedPlaylist(&m.pickList); ok && m.picked != nil {
			track := *m.picked
			m.view = SearchResultsView
			return m, m.addSong(pl.ID, pl.Name, track)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.pickList, cmd = m.pickList.Update(msg)
	return m, cmd
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case PlaylistListView:
		m.playlistList, cmd = m.playlistList.Update(msg)
	case SongListView:
		m.songList, cmd = m.songList.Update(msg)
	case SearchResultsView:
		m.resultList, cmd = m.resultList.Update(msg)
	case PickPlaylistView:
		m.pickList, cmd = m.pickList.Update(msg)
	}
	return m, cmd
}

// selectedPlaylist returns the playlist highlighted in the given list.
func (m *Model) selectedPlaylist(l *list.Model) (models.Playlist, bool) {
	if item, ok := l.SelectedItem().(playlistItem); ok {
		return item.playlist, true
	}
	return models.Playlist{}, false
}

// rebuildSongList refreshes the song list for the selected playlist from the loaded collection.
func (m *Model) rebuildSongList() {
	for _, p := range m.collection {
		if p.ID == m.selectedID {
			m.songList = newList(songItems(p.Songs), fmt.Sprintf("Songs in %q", p.Name), m.width, m.height)
			return
		}
	}
	// Playlist vanished from the collection, fall back to the overview.
	m.selectedID = ""
	m.view = PlaylistListView
}

func (m *Model) loadCollection() tea.Cmd {
	return func() tea.Msg {
		playlists, err := m.playlists.Load()
		return collectionLoadedMsg{playlists: playlists, err: err}
	}
}

func (m *Model) runSearch(query string) tea.Cmd {
	return func() tea.Msg {
		tracks, err := m.catalog.SearchTracks(m.ctx, query)
		return searchDoneMsg{tracks: tracks, err: err}
	}
}

func (m *Model) createPlaylist(name, description string) tea.Cmd {
	return func() tea.Msg {
		playlist, err := m.playlists.Create(name, description)
		if err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{status: fmt.Sprintf("Created playlist %q", playlist.Name)}
	}
}

func (m *Model) deletePlaylist(id, name string) tea.Cmd {
	return func() tea.Msg {
		if err := m.playlists.Delete(id); err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{status: fmt.Sprintf("Deleted playlist %q", name)}
	}
}

func (m *Model) addSong(playlistID, playlistName string, track models.Track) tea.Cmd {
	return func() tea.Msg {
		if err := m.playlists.AddSong(playlistID, track); err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{status: fmt.Sprintf("Added %q to %q", track.Name, playlistName)}
	}
}

func (m *Model) removeSong(playlistID string, track models.Track) tea.Cmd {
	return func() tea.Msg {
		if err := m.playlists.RemoveSong(playlistID, track.ID); err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{status: fmt.Sprintf("Removed %q", track.Name)}
	}
}

func (m *Model) renderPlaylistList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.create, m.keys.delete, m.keys.search, m.keys.quit}
	return fmt.Sprintf("%s\n\n%s", m.playlistList.View(), m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderSongList() string {
	removeKey := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove song"))
	helpKeys := []key.Binding{removeKey, m.keys.back, m.keys.quit}
	return fmt.Sprintf("%s\n\n%s", m.songList.View(), m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderCreate() string {
	title := styles.title.Render("Create New Playlist")
	submitKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "create"))
	tabKey := key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field"))
	helpKeys := []key.Binding{submitKey, tabKey, m.keys.back}

	return fmt.Sprintf("%s\n%s\n%s\n\n%s",
		title, m.nameInput.View(), m.descInput.View(), m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderSearch() string {
	title := styles.title.Render("Search Songs (" + m.catalog.Name() + ")")

	if m.searching {
		return fmt.Sprintf("%s\n%s Searching for %q...", title, m.spin.View(), m.queryInput.Value())
	}

	searchKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search"))
	helpKeys := []key.Binding{searchKey, m.keys.back}
	return fmt.Sprintf("%s\n%s\n\n%s", title, m.queryInput.View(), m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderResults() string {
	addKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add to playlist"))
	helpKeys := []key.Binding{addKey, m.keys.back, m.keys.quit}
	return fmt.Sprintf("%s\n\n%s", m.resultList.View(), m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderPick() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.back, m.keys.quit}
	return fmt.Sprintf("%s\n\n%s", m.pickList.View(), m.help.ShortHelpView(helpKeys))
}

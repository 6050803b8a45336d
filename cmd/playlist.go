package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/desertthunder/mixtape/internal/formatter"
	"github.com/desertthunder/mixtape/internal/models"
	"github.com/desertthunder/mixtape/internal/shared"
	"github.com/desertthunder/mixtape/internal/tasks"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
)

// PlaylistCreate creates a new named playlist in the active user's namespace.
func (r *Runner) PlaylistCreate(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	description := cmd.String("description")

	playlists, closer, err := r.openPlaylists()
	if err != nil {
		return err
	}
	defer closer()

	playlist, err := playlists.Create(name, description)
	if err != nil {
		return err
	}

	r.logger.Info("playlist created", "id", playlist.ID, "name", playlist.Name)

	r.writePlain("✓ Created playlist %q\n", playlist.Name)
	r.writePlain("  ID: %s\n", playlist.ID)

	return nil
}

// PlaylistList prints the active user's playlists.
func (r *Runner) PlaylistList(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	playlists, closer, err := r.openPlaylists()
	if err != nil {
		return err
	}
	defer closer()

	collection, err := playlists.Load()
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(collection, pretty)
	}

	if len(collection) == 0 {
		r.writePlain("No playlists yet. Create one with 'mixtape playlist create <name>'.\n")
		return nil
	}

	r.writePlainHeader(fmt.Sprintf("Playlists for %s", playlists.User()))
	for _, p := range collection {
		r.writePlain("%s  %s (%d song(s))\n", p.ID, p.Name, len(p.Songs))
		if p.Description != "" {
			r.writePlain("%s  %s\n", spaces(len(p.ID)), p.Description)
		}
	}

	return nil
}

// PlaylistShow prints one playlist with its songs.
func (r *Runner) PlaylistShow(ctx context.Context, cmd *cli.Command) error {
	id := cmd.String("id")
	useJSON := cmd.Bool("json")

	playlists, closer, err := r.openPlaylists()
	if err != nil {
		return err
	}
	defer closer()

	playlist, err := playlists.Get(id)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(playlist, true)
	}

	r.writePlainHeader(playlist.Name)
	if playlist.Description != "" {
		r.writePlain("%s\n", playlist.Description)
	}
	r.writePlain("%d song(s)\n", len(playlist.Songs))

	for i, song := range playlist.Songs {
		r.writePlain("%d. %s — %s", i+1, song.Name, song.ArtistNames())
		if song.Album.Name != "" {
			r.writePlain(" (%s)", song.Album.Name)
		}
		r.writePlain("  [%s]\n", song.ID)
	}

	return nil
}

// PlaylistDelete removes a playlist by id.
func (r *Runner) PlaylistDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.String("id")

	playlists, closer, err := r.openPlaylists()
	if err != nil {
		return err
	}
	defer closer()

	playlist, err := playlists.Get(id)
	if err != nil {
		return err
	}

	if err := playlists.Delete(id); err != nil {
		return err
	}

	r.logger.Info("playlist deleted", "id", id, "name", playlist.Name)

	r.writePlain("✓ Deleted playlist %q\n", playlist.Name)
	return nil
}

// PlaylistAdd searches the catalog and appends the best match to a playlist.
func (r *Runner) PlaylistAdd(ctx context.Context, cmd *cli.Command) error {
	id := cmd.String("id")
	query := cmd.String("track")

	if r.catalog == nil {
		return fmt.Errorf("%w: catalog not configured, set Spotify credentials", shared.ErrServiceUnavailable)
	}

	playlists, closer, err := r.openPlaylists()
	if err != nil {
		return err
	}
	defer closer()

	playlist, err := playlists.Get(id)
	if err != nil {
		return err
	}

	tracks, err := r.searchWithSpinner(ctx, query)
	if err != nil {
		return err
	}
	if len(tracks) == 0 {
		return fmt.Errorf("%w: no match for %q", shared.ErrTrackNotFound, query)
	}

	track := tracks[0]
	if playlist.HasSong(track.ID) {
		r.writePlain("%q is already in %q\n", track.Name, playlist.Name)
		return nil
	}

	if err := playlists.AddSong(id, track); err != nil {
		return err
	}

	r.logger.Info("song added", "playlist", playlist.Name, "track", track.Name)

	r.writePlain("✓ Added %q — %s to %q\n", track.Name, track.ArtistNames(), playlist.Name)
	return nil
}

// PlaylistRemove removes a song by track id.
func (r *Runner) PlaylistRemove(ctx context.Context, cmd *cli.Command) error {
	id := cmd.String("id")
	songID := cmd.String("song")

	playlists, closer, err := r.openPlaylists()
	if err != nil {
		return err
	}
	defer closer()

	playlist, err := playlists.Get(id)
	if err != nil {
		return err
	}

	if !playlist.HasSong(songID) {
		r.writePlain("No song %s in %q, nothing to do\n", songID, playlist.Name)
		return nil
	}

	if err := playlists.RemoveSong(id, songID); err != nil {
		return err
	}

	r.writePlain("✓ Removed song %s from %q\n", songID, playlist.Name)
	return nil
}

// PlaylistExport renders one playlist to a file or stdout, or the whole
// collection to a directory with --all.
func (r *Runner) PlaylistExport(ctx context.Context, cmd *cli.Command) error {
	id := cmd.String("id")
	all := cmd.Bool("all")
	format := cmd.String("format")
	output := cmd.String("output")

	playlists, closer, err := r.openPlaylists()
	if err != nil {
		return err
	}
	defer closer()

	if all {
		result, err := tasks.ExportAll(playlists, tasks.ExportAllOpts{Format: format, OutputDir: output})
		if err != nil {
			return err
		}

		r.writePlain("✓ Exported %d/%d playlist(s) to %s\n", result.SuccessCount, result.TotalPlaylists, result.OutputDirectory)
		for _, res := range result.Results {
			if !res.Success {
				r.writePlain("  ✗ %s: %v\n", res.PlaylistName, res.Error)
			}
		}
		return nil
	}

	if id == "" {
		return fmt.Errorf("%w: either --id or --all is required", shared.ErrMissingArgument)
	}

	playlist, err := playlists.Get(id)
	if err != nil {
		return err
	}

	data, err := formatter.Export(playlist, format)
	if err != nil {
		return err
	}

	if output == "" {
		return r.writePlain("%s", string(data))
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	r.writePlain("✓ Exported %q to %s\n", playlist.Name, output)
	return nil
}

// searchWithSpinner runs a catalog search behind a busy spinner. The
// spinner needs a terminal, so non-interactive runs search directly.
func (r *Runner) searchWithSpinner(ctx context.Context, query string) ([]models.Track, error) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return r.catalog.SearchTracks(ctx, query)
	}

	var tracks []models.Track

	err := spinner.New().
		Title(fmt.Sprintf("Searching %s...", r.catalog.Name())).
		Context(ctx).
		ActionWithErr(func(ctx context.Context) error {
			var err error
			tracks, err = r.catalog.SearchTracks(ctx, query)
			return err
		}).
		Run()
	if err != nil {
		return nil, err
	}

	return tracks, nil
}

func spaces(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = ' '
	}
	return string(buf)
}

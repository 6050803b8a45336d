package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/mixtape/internal/shared"
	"github.com/urfave/cli/v3"
)

// Search queries the catalog and prints up to ten matching tracks.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if query == "" {
		return fmt.Errorf("%w: search query is required", shared.ErrMissingArgument)
	}

	if r.catalog == nil {
		return fmt.Errorf("%w: catalog not configured, set Spotify credentials", shared.ErrServiceUnavailable)
	}

	r.logger.Info("searching catalog", "query", query)

	tracks, err := r.searchWithSpinner(ctx, query)
	if err != nil {
		// A failed search is an empty result set plus the error.
		r.writePlain("No results\n")
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(tracks, pretty)
	}

	if len(tracks) == 0 {
		r.writePlain("No results for %q\n", query)
		return nil
	}

	r.writePlainHeader(fmt.Sprintf("Results for %q", query))
	for i, track := range tracks {
		r.writePlain("%d. %s — %s", i+1, track.Name, track.ArtistNames())
		if track.Album.Name != "" {
			r.writePlain(" (%s)", track.Album.Name)
		}
		r.writePlain("  [%s]\n", track.ID)
	}

	return nil
}

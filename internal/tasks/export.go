// package tasks implements multi-playlist operations built on the store and formatter.
package tasks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/desertthunder/mixtape/internal/formatter"
	"github.com/desertthunder/mixtape/internal/models"
	"github.com/desertthunder/mixtape/internal/store"
)

// ExportAllOpts contains configuration for bulk playlist exports.
type ExportAllOpts struct {
	Format    string // Export format: csv, md, txt (default: csv)
	OutputDir string // Base output directory (default: mixtape_export_{epoch})
}

// PlaylistExportResult records the outcome of exporting one playlist.
type PlaylistExportResult struct {
	PlaylistID   string
	PlaylistName string
	OutputPath   string
	SongCount    int
	Success      bool
	Error        error
}

// ExportAllResult summarizes a bulk export run.
type ExportAllResult struct {
	TotalPlaylists  int
	SuccessCount    int
	FailedCount     int
	OutputDirectory string
	Results         []PlaylistExportResult
}

// ExportAll writes every playlist in the user's collection to its own
// file in the output directory. Partial failures are recorded per
// playlist rather than aborting the run.
func ExportAll(playlists *store.PlaylistStore, opts ExportAllOpts) (*ExportAllResult, error) {
	if opts.Format == "" {
		opts.Format = formatter.FormatCSV
	}
	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("mixtape_export_%d", time.Now().Unix())
	}

	collection, err := playlists.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load playlists: %w", err)
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &ExportAllResult{
		TotalPlaylists:  len(collection),
		OutputDirectory: opts.OutputDir,
		Results:         make([]PlaylistExportResult, 0, len(collection)),
	}

	for i := range collection {
		res := exportOne(&collection[i], opts)
		if res.Success {
			result.SuccessCount++
		} else {
			result.FailedCount++
		}
		result.Results = append(result.Results, res)
	}

	return result, nil
}

func exportOne(playlist *models.Playlist, opts ExportAllOpts) PlaylistExportResult {
	res := PlaylistExportResult{
		PlaylistID:   playlist.ID,
		PlaylistName: playlist.Name,
		SongCount:    len(playlist.Songs),
	}

	data, err := formatter.Export(playlist, opts.Format)
	if err != nil {
		res.Error = fmt.Errorf("failed to format playlist: %w", err)
		return res
	}

	filename := sanitizeFilename(playlist.Name) + formatter.Extension(opts.Format)
	res.OutputPath = filepath.Join(opts.OutputDir, filename)

	if err := os.WriteFile(res.OutputPath, data, 0644); err != nil {
		res.Error = fmt.Errorf("failed to write export file: %w", err)
		return res
	}

	res.Success = true
	return res
}

// sanitizeFilename replaces path-hostile characters so playlist names
// can be used as file names.
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-", "|", "-",
	)
	cleaned := strings.TrimSpace(replacer.Replace(name))
	if cleaned == "" {
		cleaned = "playlist"
	}
	return cleaned
}

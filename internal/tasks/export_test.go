package tasks

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/mixtape/internal/shared"
	"github.com/desertthunder/mixtape/internal/store"
	itesting "github.com/desertthunder/mixtape/internal/testing"
)

func setupPlaylists(t *testing.T) (*sql.DB, *store.PlaylistStore) {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db, store.NewPlaylistStore(store.NewKV(db), "alice@example.com", nil)
}

func TestExportAll(t *testing.T) {
	t.Run("exports each playlist to its own file", func(t *testing.T) {
		_, playlists := setupPlaylists(t)

		gym, err := playlists.Create("Gym", "")
		if err != nil {
			t.Fatalf("failed to create: %v", err)
		}
		if err := playlists.AddSong(gym.ID, itesting.SampleTrack("t1", "Song A", "Artist", "Album")); err != nil {
			t.Fatalf("failed to add song: %v", err)
		}
		if _, err := playlists.Create("Road Trip", "songs for the drive"); err != nil {
			t.Fatalf("failed to create: %v", err)
		}

		dir := t.TempDir()
		result, err := ExportAll(playlists, ExportAllOpts{Format: "csv", OutputDir: dir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.TotalPlaylists != 2 || result.SuccessCount != 2 || result.FailedCount != 0 {
			t.Fatalf("unexpected summary: %+v", result)
		}

		itesting.AssertFileExists(t, filepath.Join(dir, "Gym.csv"))
		itesting.AssertFileExists(t, filepath.Join(dir, "Road Trip.csv"))

		content := itesting.MustReadFile(t, filepath.Join(dir, "Gym.csv"))
		if !strings.Contains(content, "t1,Song A,Artist,Album") {
			t.Errorf("export missing track row:\n%s", content)
		}
	})

	t.Run("empty collection", func(t *testing.T) {
		_, playlists := setupPlaylists(t)

		dir := t.TempDir()
		result, err := ExportAll(playlists, ExportAllOpts{OutputDir: dir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.TotalPlaylists != 0 {
			t.Errorf("expected empty summary, got %+v", result)
		}

		// The output directory is still created.
		itesting.AssertDirExists(t, dir)
	})

	t.Run("default format is csv", func(t *testing.T) {
		_, playlists := setupPlaylists(t)
		if _, err := playlists.Create("Gym", ""); err != nil {
			t.Fatalf("failed to create: %v", err)
		}

		dir := t.TempDir()
		if _, err := ExportAll(playlists, ExportAllOpts{OutputDir: dir}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		itesting.AssertFileExists(t, filepath.Join(dir, "Gym.csv"))
	})

	t.Run("unknown format fails per playlist", func(t *testing.T) {
		_, playlists := setupPlaylists(t)
		if _, err := playlists.Create("Gym", ""); err != nil {
			t.Fatalf("failed to create: %v", err)
		}

		dir := t.TempDir()
		result, err := ExportAll(playlists, ExportAllOpts{Format: "xml", OutputDir: dir})
		if err != nil {
			t.Fatalf("run should not abort: %v", err)
		}

		if result.FailedCount != 1 || result.SuccessCount != 0 {
			t.Fatalf("unexpected summary: %+v", result)
		}
		if result.Results[0].Error == nil {
			t.Error("per-playlist error should be recorded")
		}
	})

	t.Run("markdown format", func(t *testing.T) {
		_, playlists := setupPlaylists(t)
		if _, err := playlists.Create("Gym", "lifting"); err != nil {
			t.Fatalf("failed to create: %v", err)
		}

		dir := t.TempDir()
		if _, err := ExportAll(playlists, ExportAllOpts{Format: "md", OutputDir: dir}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content := itesting.MustReadFile(t, filepath.Join(dir, "Gym.md"))
		if !strings.Contains(content, "# Gym") {
			t.Errorf("markdown export missing heading:\n%s", content)
		}
	})
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean name", "Road Trip", "Road Trip"},
		{"path separators", "a/b\\c", "a-b-c"},
		{"windows reserved", `what? "really": yes*`, "what- -really-- yes-"},
		{"blank", "   ", "playlist"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := sanitizeFilename(tc.in); got != tc.want {
				t.Errorf("sanitizeFilename(%q) = %q, expected %q", tc.in, got, tc.want)
			}
		})
	}
}

package formatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/mixtape/internal/models"
	"github.com/desertthunder/mixtape/internal/shared"
	itesting "github.com/desertthunder/mixtape/internal/testing"
)

func samplePlaylist() *models.Playlist {
	return &models.Playlist{
		ID:          "p1",
		Name:        "Road Trip",
		Description: "songs for the drive",
		Songs: []models.Track{
			itesting.SampleTrack("t1", "Song A", "Artist One", "Album One"),
			{
				ID:      "t2",
				Name:    "Song B",
				Artists: []models.Artist{{Name: "Artist Two"}, {Name: "Artist Three"}},
				Album:   models.Album{Name: "Album Two"},
			},
		},
	}
}

func TestExportToCSV(t *testing.T) {
	data, err := ExportToCSV(samplePlaylist())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 records, got %d lines", len(lines))
	}
	if lines[0] != "ID,Title,Artists,Album" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "t1,Song A,Artist One,Album One" {
		t.Errorf("unexpected first record: %q", lines[1])
	}
	if !strings.Contains(lines[2], `"Artist Two, Artist Three"`) {
		t.Errorf("multi-artist field should be quoted: %q", lines[2])
	}
}

func TestExportToMarkdown(t *testing.T) {
	data, err := ExportToMarkdown(samplePlaylist())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content := string(data)
	for _, want := range []string{
		"# Road Trip",
		"**Description**: songs for the drive",
		"**Songs**: 2",
		"1. Artist One - Song A (Album One)",
		"2. Artist Two, Artist Three - Song B (Album Two)",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("markdown output missing %q:\n%s", want, content)
		}
	}
}

func TestExportToText(t *testing.T) {
	t.Run("with description", func(t *testing.T) {
		data, err := ExportToText(samplePlaylist())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content := string(data)
		for _, want := range []string{
			"Playlist: Road Trip",
			"Description: songs for the drive",
			"Songs: 2",
			"1. Artist One - Song A",
		} {
			if !strings.Contains(content, want) {
				t.Errorf("text output missing %q:\n%s", want, content)
			}
		}
	})

	t.Run("description omitted when empty", func(t *testing.T) {
		playlist := samplePlaylist()
		playlist.Description = ""

		data, _ := ExportToText(playlist)
		if strings.Contains(string(data), "Description:") {
			t.Error("empty description should not be rendered")
		}
	})
}

func TestExport(t *testing.T) {
	playlist := samplePlaylist()

	tests := []struct {
		format string
		want   string
	}{
		{"csv", "ID,Title,Artists,Album"},
		{"md", "# Road Trip"},
		{"markdown", "# Road Trip"},
		{"txt", "Playlist: Road Trip"},
		{"text", "Playlist: Road Trip"},
	}

	for _, tc := range tests {
		t.Run(tc.format, func(t *testing.T) {
			data, err := Export(playlist, tc.format)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(string(data), tc.want) {
				t.Errorf("output missing %q", tc.want)
			}
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		if _, err := Export(playlist, "xml"); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestExtension(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"csv", ".csv"},
		{"md", ".md"},
		{"markdown", ".md"},
		{"txt", ".txt"},
		{"text", ".txt"},
		{"anything else", ".csv"},
	}

	for _, tc := range tests {
		if got := Extension(tc.format); got != tc.want {
			t.Errorf("Extension(%q) = %q, expected %q", tc.format, got, tc.want)
		}
	}
}

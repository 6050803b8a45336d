package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Database.Path != "mixtape.db" {
		t.Errorf("unexpected default database path: %q", config.Database.Path)
	}
	if config.Credentials.Spotify.ClientID != "" {
		t.Error("default config should not ship credentials")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[credentials.spotify]
client_id = "my-id"
client_secret = "my-secret"

[database]
path = "custom.db"
max_open_conns = 5

[export]
dir = "exports"
format = "md"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if config.Credentials.Spotify.ClientID != "my-id" {
			t.Errorf("unexpected client_id: %q", config.Credentials.Spotify.ClientID)
		}
		if config.Database.Path != "custom.db" || config.Database.MaxOpenConns != 5 {
			t.Errorf("unexpected database config: %+v", config.Database)
		}
		if config.Export.Format != "md" {
			t.Errorf("unexpected export config: %+v", config.Export)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[broken"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadConfig(path); err == nil {
			t.Error("expected error for malformed TOML")
		}
	})
}

func TestCreateConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := CreateConfigFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("created file should parse: %v", err)
	}
	if config.Database.Path != "mixtape.db" {
		t.Errorf("unexpected database path: %q", config.Database.Path)
	}

	if err := CreateConfigFile(path); err == nil {
		t.Error("expected error when file already exists")
	}
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	config := DefaultConfig()
	config.Credentials.Spotify.ClientID = "saved-id"
	config.Database.Path = "saved.db"

	if err := SaveConfig(path, config); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Credentials.Spotify.ClientID != "saved-id" || loaded.Database.Path != "saved.db" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SPOTIFY_ID", "env-id")
	t.Setenv("SPOTIFY_SECRET", "env-secret")
	t.Setenv("MIXTAPE_DB", "env.db")

	config := DefaultConfig()
	config.Credentials.Spotify.ClientID = "file-id"
	config.ApplyEnv()

	if config.Credentials.Spotify.ClientID != "env-id" {
		t.Errorf("environment should win: %q", config.Credentials.Spotify.ClientID)
	}
	if config.Credentials.Spotify.ClientSecret != "env-secret" {
		t.Errorf("unexpected secret: %q", config.Credentials.Spotify.ClientSecret)
	}
	if config.Database.Path != "env.db" {
		t.Errorf("unexpected database path: %q", config.Database.Path)
	}

	t.Run("empty env values leave config alone", func(t *testing.T) {
		t.Setenv("SPOTIFY_ID", "")

		config := DefaultConfig()
		config.Credentials.Spotify.ClientID = "file-id"
		config.ApplyEnv()

		if config.Credentials.Spotify.ClientID != "file-id" {
			t.Errorf("empty env var should not override: %q", config.Credentials.Spotify.ClientID)
		}
	})
}

func TestSpotifyConfigMap(t *testing.T) {
	m := SpotifyConfig{ClientID: "id", ClientSecret: "secret"}.Map()
	if m["client_id"] != "id" || m["client_secret"] != "secret" {
		t.Errorf("unexpected map: %v", m)
	}
}

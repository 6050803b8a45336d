package shared

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateID()
		if len(id) != 36 {
			t.Fatalf("unexpected id shape: %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}

func TestMarshalJSON(t *testing.T) {
	payload := map[string]string{"key": "value"}

	compact, err := MarshalJSON(payload, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(compact) != `{"key":"value"}` {
		t.Errorf("unexpected compact output: %s", compact)
	}

	pretty, err := MarshalJSON(payload, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  \"key\"") {
		t.Errorf("expected indented output, got %s", pretty)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	logger.Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("expected log line in buffer, got %q", buf.String())
	}

	t.Run("level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		SetLogLevel(logger, log.ErrorLevel)

		logger.Info("filtered")
		logger.Error("kept")

		out := buf.String()
		if strings.Contains(out, "filtered") {
			t.Error("info line should be filtered at error level")
		}
		if !strings.Contains(out, "kept") {
			t.Error("error line should pass")
		}
	})

	t.Run("child logger fields", func(t *testing.T) {
		var buf bytes.Buffer
		logger := WithLogger(NewLogger(&buf), "component", "store")

		logger.Info("tagged")
		if !strings.Contains(buf.String(), "component") {
			t.Errorf("expected component field, got %q", buf.String())
		}
	})
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info("to file")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "to file") {
		t.Errorf("expected log line in file, got %q", content)
	}
}

func TestNewDatabase(t *testing.T) {
	t.Run("in-memory", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			t.Errorf("ping failed: %v", err)
		}
	})

	t.Run("file-backed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.db")

		db, err := NewDatabase(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer db.Close()

		if _, err := db.Exec("CREATE TABLE t (id INTEGER)"); err != nil {
			t.Errorf("exec failed: %v", err)
		}
	})
}

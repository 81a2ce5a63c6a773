package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "game.log")

	logger, closer, err := New(Options{Path: path, Level: "debug", Prefix: "test"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Debug("run started", "seed", 7)
	logger.Info("run ended", "score", 42)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	out := string(data)
	for _, want := range []string{"run started", "seed=7", "score=42", "test"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")

	logger, closer, err := New(Options{Path: path, Level: "warn"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	closer.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn message should be written")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, _, err := New(Options{Path: filepath.Join(t.TempDir(), "x.log"), Level: "chatty"}); err == nil {
		t.Error("New() should reject an unknown level")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := expandHome("~/.lavaescape/lavaescape.log")
	if err != nil {
		t.Fatalf("expandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".lavaescape", "lavaescape.log"); got != want {
		t.Errorf("expandHome() = %q, expected %q", got, want)
	}
}

package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	t.Setenv("LOG_FILE", path)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	closer, err := Init()
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	Component("test").Debug("hello")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(b)
	if !strings.Contains(out, `"component":"test"`) || !strings.Contains(out, `"msg":"hello"`) {
		t.Errorf("log output = %q, want a JSON entry for component test", out)
	}
}

func TestInitLevels(t *testing.T) {
	tests := []struct {
		env      string
		expected logrus.Level
	}{
		{"", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"debug", logrus.DebugLevel},
		{"nonsense", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Setenv("LOG_LEVEL", tt.env)
		t.Setenv("LOG_FILE", "-")
		if _, err := Init(); err != nil {
			t.Fatalf("Init() error: %v", err)
		}
		if got := Log.GetLevel(); got != tt.expected {
			t.Errorf("LOG_LEVEL=%q: level = %v, want %v", tt.env, got, tt.expected)
		}
	}
}

func TestInitBadPath(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "missing", "x.log"))
	if _, err := Init(); err == nil {
		t.Error("Init() should fail when the log directory does not exist")
	}
}

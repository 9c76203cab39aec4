package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skagedal/create-program/internal/templates"
)

// isolate points the config directory at a fresh temp dir. Empty env values
// are ignored by Viper, so blanking them masks the developer's own settings.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CREATE_PROGRAM_HOME", dir)
	t.Setenv("CREATE_PROGRAM_TEST_RUNNER", "")
	t.Setenv("CREATE_PROGRAM_QUIET", "")
	t.Setenv("CREATE_PROGRAM_LOG_LEVEL", "")
	return dir
}

func TestFilePath(t *testing.T) {
	dir := isolate(t)
	if got, want := FilePath(), filepath.Join(dir, "config.yaml"); got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	settings, err := s.Settings()
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	if settings.TestRunner != templates.Jest {
		t.Errorf("TestRunner = %q, want %q", settings.TestRunner, templates.Jest)
	}
	if settings.Quiet {
		t.Error("Quiet should default to false")
	}
	if settings.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", settings.LogLevel, "warn")
	}
}

func TestSetThenLoad(t *testing.T) {
	isolate(t)

	s, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set(KeyTestRunner, "nodejs"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set(KeyQuiet, "true"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	reloaded, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	settings, err := reloaded.Settings()
	if err != nil {
		t.Fatal(err)
	}
	if settings.TestRunner != templates.NodeJS {
		t.Errorf("TestRunner = %q, want %q", settings.TestRunner, templates.NodeJS)
	}
	if !settings.Quiet {
		t.Error("Quiet should be true after set")
	}
	if got, err := reloaded.Get(KeyTestRunner); err != nil || got != "nodejs" {
		t.Errorf("Get() = %q, %v; want %q", got, err, "nodejs")
	}
}

func TestSet_Rejects(t *testing.T) {
	isolate(t)
	s, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		key, value, wantErr string
	}{
		{"colour", "blue", "unknown config key"},
		{KeyTestRunner, "mocha", "invalid test runner"},
		{KeyQuiet, "sometimes", "invalid boolean"},
		{KeyLogLevel, "shout", "invalid log level"},
	}
	for _, tt := range tests {
		err := s.Set(tt.key, tt.value)
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("Set(%q, %q) error = %v, want %q", tt.key, tt.value, err, tt.wantErr)
		}
	}

	if _, err := os.Stat(FilePath()); !os.IsNotExist(err) {
		t.Error("rejected values should not create the config file")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("test_runner: jest\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CREATE_PROGRAM_TEST_RUNNER", "nodejs")

	s, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	settings, err := s.Settings()
	if err != nil {
		t.Fatal(err)
	}
	if settings.TestRunner != templates.NodeJS {
		t.Errorf("TestRunner = %q, want %q", settings.TestRunner, templates.NodeJS)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("test_runner: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestSettings_InvalidRunnerInFile(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("test_runner: mocha\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Settings(); err == nil {
		t.Fatal("expected error for invalid test runner in config")
	}
}

func TestGet_UnknownKey(t *testing.T) {
	isolate(t)
	s, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get("colour"); err == nil {
		t.Error("Get(colour) should fail")
	}
	if got, err := s.Get(KeyLogLevel); err != nil || got != "warn" {
		t.Errorf("Get(log_level) = %q, %v; want default %q", got, err, "warn")
	}
}

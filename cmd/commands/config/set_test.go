package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/hue/internal/config"

	"github.com/google/go-cmp/cmp"
)

// setupTestConfig points the config package at a temp file and returns its path.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns what was written to stdout and stderr.
func execConfig(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestSet_StorageBackend(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "storage-backend", "sqlite")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"sqlite"`) {
		t.Errorf("expected confirmation with backend name, got: %s", stdout)
	}

	// Verify it was persisted.
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.StorageBackend != "sqlite" {
		t.Errorf("expected StorageBackend %q, got %q", "sqlite", cfg.StorageBackend)
	}
}

func TestSet_StorageBackend_Unknown(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "storage-backend", "redis")

	if !strings.Contains(stderr, "unknown storage backend") {
		t.Errorf("expected 'unknown storage backend' error, got: %s", stderr)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.StorageBackend != "" {
		t.Errorf("invalid value was saved: %q", cfg.StorageBackend)
	}
}

func TestSet_ExportFormat_CaseInsensitive(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "Export-Format", "CSS")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `export-format set to "css"`) {
		t.Errorf("expected normalized format, got: %s", stdout)
	}
}

func TestSet_ExportFormat_Unknown(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "export-format", "sass")

	if !strings.Contains(stderr, "unknown export format") || !strings.Contains(stderr, "tailwind") {
		t.Errorf("expected error listing valid formats, got: %s", stderr)
	}
}

func TestSet_EmptyRestoresDefault(t *testing.T) {
	path := setupTestConfig(t)
	if err := (&config.Config{StorageBackend: "sqlite"}).SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	execConfig(t, "set", "storage-backend", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if got := cfg.Backend(); got != config.DefaultStorageBackend {
		t.Errorf("Backend() = %q, want default %q", got, config.DefaultStorageBackend)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "bogus-key", "value")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		key, value string
		wantErr    bool
	}{
		{"storage-backend", "file", false},
		{"storage-backend", "sqlite", false},
		{"storage-backend", "", false},
		{"storage-backend", "s3", true},
		{"export-format", "png", false},
		{"export-format", "svg", true},
		{"unvalidated-key", "anything", false},
	}
	for _, tt := range tests {
		err := validate(tt.key, tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("validate(%q, %q) error = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
		}
	}
}

func TestChoicesFor(t *testing.T) {
	if got := choicesFor("storage-backend"); !cmp.Equal(got, []string{"file", "sqlite"}) {
		t.Errorf("storage-backend choices = %v", got)
	}
	if got := choicesFor("unknown"); got != nil {
		t.Errorf("unknown key choices = %v, want nil", got)
	}
}

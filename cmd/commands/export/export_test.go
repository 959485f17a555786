package export

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/hue/internal/config"
	"nathanbeddoewebdev/hue/internal/palette/domain"
	"nathanbeddoewebdev/hue/internal/palette/storage"
)

// setupTestStorage points config and palette storage at a temp directory.
func setupTestStorage(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	storage.SetDir(dir)
	t.Cleanup(storage.ResetDir)
	config.SetPath(filepath.Join(dir, "config.json"))
	t.Cleanup(config.ResetPath)
	return dir
}

// stubClipboard replaces the clipboard writer for the test.
func stubClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := copyToClipboard
	copyToClipboard = fn
	t.Cleanup(func() { copyToClipboard = orig })
}

func execExport(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestExport_DefaultsToJSON(t *testing.T) {
	setupTestStorage(t)

	stdout, _, err := execExport(t)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.HasPrefix(stdout, "[\n  {\n    \"hex\": \"#") {
		t.Errorf("expected JSON array, got:\n%s", stdout)
	}
	if got := strings.Count(stdout, `"hex"`); got != 5 {
		t.Errorf("hex entries = %d, want 5", got)
	}
}

func TestExport_UsesConfiguredFormat(t *testing.T) {
	setupTestStorage(t)
	cfg := &config.Config{ExportFormat: "tailwind"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("save config: %v", err)
	}

	stdout, _, err := execExport(t)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.HasPrefix(stdout, "// tailwind.config.js\n") || !strings.Contains(stdout, "palette5: '#") {
		t.Errorf("expected tailwind output, got:\n%s", stdout)
	}

	// --format wins over the configured default.
	stdout, _, err = execExport(t, "--format", "css")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.HasPrefix(stdout, ":root {\n  --color-1: #") {
		t.Errorf("expected css output, got:\n%s", stdout)
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	setupTestStorage(t)

	_, _, err := execExport(t, "--format", "sass")
	if !errors.Is(err, domain.ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestExport_PNGToFile(t *testing.T) {
	dir := setupTestStorage(t)
	out := filepath.Join(dir, "palette.png")

	_, stderr, err := execExport(t, "--format", "png", "--output", out)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(stderr, "Wrote png") {
		t.Errorf("expected confirmation on stderr, got %q", stderr)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("output is not a PNG: %v", err)
	}
}

func TestExport_PNGRejectsCopy(t *testing.T) {
	setupTestStorage(t)

	_, _, err := execExport(t, "--format", "png", "--copy")
	if err == nil || !strings.Contains(err.Error(), "--copy") {
		t.Errorf("expected --copy error, got %v", err)
	}
}

func TestExport_Copy(t *testing.T) {
	setupTestStorage(t)
	var copied string
	stubClipboard(t, func(s string) error {
		copied = s
		return nil
	})

	stdout, stderr, err := execExport(t, "--format", "css", "--copy")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if copied == "" || !strings.HasPrefix(stdout, copied) {
		t.Errorf("clipboard = %q, stdout = %q", copied, stdout)
	}
	if !strings.Contains(stderr, "Copied to clipboard") {
		t.Errorf("expected copy confirmation, got %q", stderr)
	}
}

func TestExport_CopyFailure(t *testing.T) {
	setupTestStorage(t)
	stubClipboard(t, func(string) error { return errors.New("no xclip") })

	_, _, err := execExport(t, "--format", "css", "--copy")
	if err == nil || !strings.Contains(err.Error(), "no xclip") {
		t.Errorf("expected clipboard error, got %v", err)
	}
}

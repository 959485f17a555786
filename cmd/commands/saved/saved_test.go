package saved

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/hue/internal/config"
	"nathanbeddoewebdev/hue/internal/palette/domain"
	"nathanbeddoewebdev/hue/internal/palette/services/session"
	"nathanbeddoewebdev/hue/internal/palette/storage"

	"github.com/google/go-cmp/cmp"
)

// setupTestStorage points config and palette storage at a temp directory.
func setupTestStorage(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	storage.SetDir(dir)
	t.Cleanup(storage.ResetDir)
	config.SetPath(filepath.Join(dir, "config.json"))
	t.Cleanup(config.ResetPath)
}

// execSaved creates the saved command, wires up output buffers, runs with
// the given args, and returns stdout, stderr and the execution error.
func execSaved(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func listJSON(t *testing.T) []domain.Palette {
	t.Helper()
	stdout, _, err := execSaved(t, "list", "-o", "json")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	var saved []domain.Palette
	if err := json.Unmarshal([]byte(stdout), &saved); err != nil {
		t.Fatalf("list output is not JSON: %v\n%s", err, stdout)
	}
	return saved
}

func currentState(t *testing.T) domain.State {
	t.Helper()
	var state domain.State
	err := session.WithDefault(nil, func(s *session.Session) error {
		state = s.State()
		return nil
	})
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	return state
}

func TestAddAndList(t *testing.T) {
	setupTestStorage(t)

	for i, want := range []string{"Saved as palette 1", "Saved as palette 2"} {
		stdout, _, err := execSaved(t, "add")
		if err != nil {
			t.Fatalf("add %d failed: %v", i+1, err)
		}
		if !strings.Contains(stdout, want) {
			t.Errorf("add %d output = %q, want %q", i+1, stdout, want)
		}
	}

	saved := listJSON(t)
	if len(saved) != 2 {
		t.Fatalf("saved = %d, want 2", len(saved))
	}
	if diff := cmp.Diff(currentState(t).CurrentPalette, saved[1]); diff != "" {
		t.Errorf("saved palette differs from current (-want +got):\n%s", diff)
	}

	stdout, _, err := execSaved(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(stdout, "COLORS") || !strings.Contains(stdout, saved[0].Colors[0].Hex) {
		t.Errorf("unexpected table:\n%s", stdout)
	}
}

func TestList_Empty(t *testing.T) {
	setupTestStorage(t)

	stdout, stderr, err := execSaved(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if stdout != "" {
		t.Errorf("expected empty stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "No saved palettes") {
		t.Errorf("expected empty notice on stderr, got %q", stderr)
	}

	if got := listJSON(t); len(got) != 0 {
		t.Errorf("json list = %v, want []", got)
	}
}

func TestLoad_IsIndependentCopy(t *testing.T) {
	setupTestStorage(t)
	if _, _, err := execSaved(t, "add"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	savedPalette := listJSON(t)[0]

	// Change the current palette, then load the saved one back.
	err := session.WithDefault(nil, func(s *session.Session) error {
		s.Generate()
		return nil
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	stdout, _, err := execSaved(t, "load", "1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !strings.Contains(stdout, "Loaded palette 1") {
		t.Errorf("unexpected load output: %q", stdout)
	}
	if diff := cmp.Diff(savedPalette, currentState(t).CurrentPalette); diff != "" {
		t.Errorf("loaded palette mismatch (-want +got):\n%s", diff)
	}

	// Editing the loaded palette must not touch the saved copy.
	err = session.WithDefault(nil, func(s *session.Session) error {
		s.UpdateColor(savedPalette.Colors[0].ID, "#000000")
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if diff := cmp.Diff(savedPalette, listJSON(t)[0]); diff != "" {
		t.Errorf("saved palette changed after editing the current one (-want +got):\n%s", diff)
	}
}

func TestLoadAndDelete_Errors(t *testing.T) {
	setupTestStorage(t)
	if _, _, err := execSaved(t, "add"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	for _, args := range [][]string{{"load", "2"}, {"load", "0"}, {"delete", "5", "--yes"}} {
		_, _, err := execSaved(t, args...)
		if !errors.Is(err, domain.ErrIndexOutOfRange) {
			t.Errorf("%v: err = %v, want ErrIndexOutOfRange", args, err)
		}
	}

	_, _, err := execSaved(t, "load", "first")
	if err == nil || !strings.Contains(err.Error(), "must be an integer") {
		t.Errorf("non-numeric load: err = %v", err)
	}

	if got := len(listJSON(t)); got != 1 {
		t.Errorf("saved = %d after failed commands, want 1", got)
	}
}

func TestDelete_ShiftsLaterPalettes(t *testing.T) {
	setupTestStorage(t)
	for range 3 {
		if _, _, err := execSaved(t, "add"); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		err := session.WithDefault(nil, func(s *session.Session) error {
			s.Generate()
			return nil
		})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
	}
	before := listJSON(t)

	stdout, _, err := execSaved(t, "delete", "2", "--yes")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !strings.Contains(stdout, "Deleted palette 2") {
		t.Errorf("unexpected delete output: %q", stdout)
	}

	want := []domain.Palette{before[0], before[2]}
	if diff := cmp.Diff(want, listJSON(t)); diff != "" {
		t.Errorf("saved palettes after delete (-want +got):\n%s", diff)
	}
}

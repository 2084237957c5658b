package search

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenMissingFile(t *testing.T) {
	err := Open(filepath.Join(t.TempDir(), "gone.txt"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestOpenExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := os.WriteFile(path, []byte("%PDF"), 0o644); err != nil {
		t.Fatal(err)
	}

	var gotName string
	var gotArgs []string
	orig := startCommand
	startCommand = func(name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	}
	defer func() { startCommand = orig }()

	if err := Open(path); err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if gotName == "" || gotArgs[len(gotArgs)-1] != path {
		t.Errorf("opener called with %q %v", gotName, gotArgs)
	}

	startCommand = func(string, ...string) error { return errors.New("no opener") }
	if err := Open(path); err == nil {
		t.Error("expected error when the opener fails")
	}
}

func TestOpener(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"windows", "rundll32"},
		{"darwin", "open"},
		{"linux", "xdg-open"},
		{"freebsd", "xdg-open"},
	}
	for _, tt := range tests {
		if name, _ := opener(tt.goos, "/tmp/x"); name != tt.want {
			t.Errorf("opener(%s) = %s, want %s", tt.goos, name, tt.want)
		}
	}
}

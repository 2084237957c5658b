package search

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"runtime"
)

var ErrNotFound = errors.New("file not found")

// startCommand launches a detached process. Swapped in tests.
var startCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Open hands path to the platform's default application.
func Open(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	log.Printf("[Search] Opening: %s", path)
	name, args := opener(runtime.GOOS, path)
	if err := startCommand(name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}

func opener(goos, path string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}

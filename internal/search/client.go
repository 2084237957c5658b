// Package search talks to the external search process.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

var ErrEmptyQuery = errors.New("search: empty query")

// Result is one hit returned by the search process.
type Result struct {
	Path  string  `json:"path"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Client runs a query and returns ranked results.
type Client interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

// ProcessClient runs Command with the query appended as its last argument and
// reads a JSON array of results from stdout.
type ProcessClient struct {
	Command []string
	TopK    int
	Timeout time.Duration
}

func (c *ProcessClient) Search(ctx context.Context, query string) ([]Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if len(c.Command) == 0 {
		return nil, errors.New("search: no command configured")
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	args := append(append([]string{}, c.Command[1:]...), query)
	cmd := exec.CommandContext(ctx, c.Command[0], args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("search process failed: %w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("search process failed: %w", err)
	}

	var results []Result
	if err := json.Unmarshal(out, &results); err != nil {
		return nil, fmt.Errorf("failed to parse search output: %w", err)
	}

	for i := range results {
		if results[i].Name == "" {
			results[i].Name = filepath.Base(results[i].Path)
		}
	}
	if c.TopK > 0 && len(results) > c.TopK {
		results = results[:c.TopK]
	}
	return results, nil
}

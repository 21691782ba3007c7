package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/au-courses/internal/course"
)

// ErrWrite means the output could not be written
var ErrWrite = errors.New("could not write output")

// expandPath expands a leading ~/ to the home directory
func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	return path, nil
}

// WriteResult writes the scrape result as JSON, replacing any existing file.
// The document is compact unless pretty is set.
func WriteResult(path string, result *course.ScrapeResult, pretty bool) error {
	path, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	var data []byte
	if pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("%w: encoding result: %v", ErrWrite, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return nil
}

// LoadResult reads a result previously written by WriteResult
func LoadResult(path string) (*course.ScrapeResult, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result: %w", err)
	}

	var result course.ScrapeResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing result: %w", err)
	}

	if result.Campuses == nil {
		result.Campuses = make(map[string]*course.Campus)
	}

	return &result, nil
}

package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DirSource serves a corpus from a local directory of .json documents.
type DirSource struct {
	dir string
}

// NewDirSource creates a DirSource rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

func (s *DirSource) ID() string {
	if abs, err := filepath.Abs(s.dir); err == nil {
		return abs
	}
	return s.dir
}

func (s *DirSource) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnumeration, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() && strings.HasSuffix(entry.Name(), ".json") {
			names = append(names, entry.Name())
		}
	}
	// ReadDir already sorts, but "first seen" tie-breaks downstream depend
	// on a stable order, so be explicit.
	sort.Strings(names)

	return names, nil
}

func (s *DirSource) Get(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("error reading document: %w", err)
	}
	return data, nil
}

// Detect picks a Source implementation from a config value. http(s) URLs get
// the list-endpoint source, unless they end in a slash, which marks a plain
// directory index. Anything else is treated as a local directory.
func Detect(location string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		if strings.HasSuffix(location, "/") {
			return NewIndexSource(location)
		}
		return NewHTTPSource(location)
	}
	return NewDirSource(location)
}

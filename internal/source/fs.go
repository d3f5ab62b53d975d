package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotDir is returned when the playbook root is not a directory.
var ErrNotDir = errors.New("not a directory")

// maxLineSize bounds a single playbook line.
const maxLineSize = 1 << 20

// FSService implements Service on top of the local filesystem.
type FSService struct {
	root string
}

// Compile-time check that FSService implements Service.
var _ Service = (*FSService)(nil)

// NewFSService opens the playbook directory at path.
func NewFSService(path string) (*FSService, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", abs, ErrNotDir)
	}
	return &FSService{root: abs}, nil
}

// Root returns the playbook directory.
func (s *FSService) Root() string { return s.root }

// Files lists regular files of the root, skipping directories and dot-files.
func (s *FSService) Files(sorted bool) ([]File, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.root, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		// Follow symlinks so linked playbooks are listed too.
		info, err := os.Stat(filepath.Join(s.root, name))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		names = append(names, name)
	}
	if sorted {
		sort.Strings(names)
	}

	files := make([]File, len(names))
	for i, name := range names {
		files[i] = NewFile(i+1, name)
	}
	return files, nil
}

// Playbook reads name and returns its non-blank lines. With ignoreComments,
// lines starting with '#' (after leading whitespace) are dropped as well.
func (s *FSService) Playbook(name string, ignoreComments bool) ([]Line, error) {
	path := filepath.Join(s.root, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading playbook %s: %w", name, err)
	}
	lines, err := ParseLines(data, ignoreComments)
	if err != nil {
		return nil, fmt.Errorf("parsing playbook %s: %w", name, err)
	}
	return lines, nil
}

// ParseLines splits playbook content into Line records.
func ParseLines(data []byte, ignoreComments bool) ([]Line, error) {
	var lines []Line
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if ignoreComments && strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, NewLine(len(lines)+1, line))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

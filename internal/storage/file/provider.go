package file

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// Provider is the narrow file-like storage contract the profile store consumes.
// Paths are relative to the application-private directory.
type Provider interface {
	// Exists reports whether path exists
	Exists(path string) (bool, error)

	// ReadAllLines returns every line of path without line terminators
	ReadAllLines(path string) ([]string, error)

	// AppendLine appends line plus "\n" to path, creating the file if needed
	AppendLine(path, line string) error

	// MkdirsIfAbsent creates dir and all parents if they do not exist
	MkdirsIfAbsent(dir string) error
}

// AferoProvider implements Provider on top of an afero filesystem
type AferoProvider struct {
	fs afero.Fs
}

// Compile-time check that AferoProvider implements Provider
var _ Provider = (*AferoProvider)(nil)

// NewProvider creates a provider over an arbitrary afero filesystem
// (afero.NewMemMapFs() in tests)
func NewProvider(fsys afero.Fs) *AferoProvider {
	return &AferoProvider{fs: fsys}
}

// NewOSProvider creates a provider rooted at the application data directory
func NewOSProvider(root string) *AferoProvider {
	return NewProvider(afero.NewBasePathFs(afero.NewOsFs(), root))
}

// Exists reports whether path exists
func (p *AferoProvider) Exists(path string) (bool, error) {
	ok, err := afero.Exists(p.fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return ok, nil
}

// ReadAllLines reads path and splits it into lines ("\n" and "\r\n" terminators)
func (p *AferoProvider) ReadAllLines(path string) ([]string, error) {
	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	// Строка не может быть длиннее самого файла
	scanner.Buffer(make([]byte, 0, 4096), len(data)+1)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to split %s into lines: %w", path, err)
	}

	return lines, nil
}

// AppendLine appends a single newline-terminated line and syncs it to disk
func (p *AferoProvider) AppendLine(path, line string) error {
	f, err := p.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	if _, err := f.WriteString(line + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append to %s: %w", path, err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}

// MkdirsIfAbsent creates dir with 0700 permissions if it does not exist
func (p *AferoProvider) MkdirsIfAbsent(dir string) error {
	if err := p.fs.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

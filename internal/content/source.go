// Package content is the file-reading primitive shared by the duplication
// pipelines. Every read is addressed relative to a scan root on an afero
// filesystem so tests can run against an in-memory tree.
package content

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Source reads files below Root on Fs.
type Source struct {
	Fs   afero.Fs
	Root string
}

// NewSource returns a Source over the operating system filesystem.
func NewSource(root string) *Source {
	return &Source{Fs: afero.NewOsFs(), Root: root}
}

// NewMemSource returns a Source backed by an empty in-memory filesystem.
func NewMemSource() *Source {
	return &Source{Fs: afero.NewMemMapFs(), Root: "/"}
}

// Path joins a forward-slash relative path onto the root.
func (s *Source) Path(rel string) string {
	return filepath.Join(s.Root, filepath.FromSlash(rel))
}

// Size returns the byte size of rel.
func (s *Source) Size(rel string) (uint64, error) {
	info, err := s.Fs.Stat(s.Path(rel))
	if err != nil {
		return 0, err
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%s is not a regular file", rel)
	}
	return uint64(info.Size()), nil
}

// ReadFile returns the full contents of rel.
func (s *Source) ReadFile(rel string) ([]byte, error) {
	return afero.ReadFile(s.Fs, s.Path(rel))
}

// Open opens rel for streaming reads.
func (s *Source) Open(rel string) (afero.File, error) {
	return s.Fs.Open(s.Path(rel))
}

// WriteFile creates rel with data, making parent directories as needed.
func (s *Source) WriteFile(rel string, data []byte) error {
	full := s.Path(rel)
	if err := s.Fs.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(s.Fs, full, data, os.FileMode(0o644))
}

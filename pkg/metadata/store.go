package metadata

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
)

// FileName is the conventional name of the metadata file.
const FileName = "metadata.json"

// Store reads and writes the metadata document at a fixed path. It does not
// cache: every call to [Store.Read] loads the file from disk.
type Store struct {
	path string
}

// Bump describes a successful version increment.
type Bump struct {
	From *big.Int
	To   *big.Int
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Read loads and parses the metadata file. It fails with [ErrNotFound] if the
// file does not exist and [ErrMalformedDocument] if it is not a JSON object.
func (s *Store) Read() (*Document, error) {
	slog.Debug("reading metadata", slog.String("path", s.path))

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s %w at %s", s.name(), ErrNotFound, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, s.path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s %w", s.name(), err)
	}

	return doc, nil
}

// Write overwrites the metadata file with the indented document.
func (s *Store) Write(doc *Document) error {
	out, err := doc.MarshalIndent()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}

	err = os.WriteFile(s.path, out, 0o644) //nolint:gosec // Metadata is meant to be world-readable.
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}

	slog.Debug("wrote metadata",
		slog.String("path", s.path),
		slog.Int("bytes", len(out)),
	)

	return nil
}

// Bump reads the document, increments its version, and writes it back. The
// file is left untouched if validation fails.
func (s *Store) Bump() (*Bump, error) {
	doc, err := s.Read()
	if err != nil {
		return nil, err
	}

	from, to, err := doc.Bump()
	if err != nil {
		return nil, fmt.Errorf("%s %w", s.name(), err)
	}

	err = s.Write(doc)
	if err != nil {
		return nil, err
	}

	return &Bump{From: from, To: to}, nil
}

func (s *Store) name() string {
	return filepath.Base(s.path)
}

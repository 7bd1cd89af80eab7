package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
)

// FileStore keeps the document in a single JSON file. Writes go to a temp
// file in the same directory and are renamed over the original, so a crash
// never leaves a half-written document behind.
type FileStore struct {
	path  string
	codec codec
	mu    sync.Mutex
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates the parent directory and an empty document when the
// file does not exist yet.
func NewFileStore(path string, opts ...Option) (*FileStore, error) {
	s := &FileStore{path: path, codec: newCodec(opts)}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		empty := &diary.Document{}
		if err := s.write(empty); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	return s, nil
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load(ctx context.Context) (doc *diary.Document, err error) {
	_, span := startSpan(ctx, "store.load", "file")
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

func (s *FileStore) Update(ctx context.Context, fn func(doc *diary.Document) error) (err error) {
	_, span := startSpan(ctx, "store.update", "file")
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *FileStore) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.path)
	return err
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) read() (*diary.Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		doc := &diary.Document{}
		doc.EnsureCollections()
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return s.codec.decode(data)
}

func (s *FileStore) write(doc *diary.Document) error {
	data, err := s.codec.encode(doc)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// Package store persists phone book entries as a pretty-printed JSON array.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vortex-fintech/phonebook/contact"
)

var (
	// ErrNotExist is returned by Read when the backing file is missing.
	ErrNotExist = errors.New("store: backing file does not exist")
	// ErrCorrupt is returned by Read when the file is not a JSON array of entries.
	ErrCorrupt = errors.New("store: backing file is corrupt")

	errEmptyPath = errors.New("store: path is required")
)

const filePerm = 0o644

// FileStore reads and rewrites the whole backing file on every call.
// It does no locking; concurrent writers race and the last rename wins.
type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errEmptyPath
	}
	return &FileStore{path: path}, nil
}

// RecordError reports an array element that is well-formed JSON but does
// not decode into an entry, such as a number where a string belongs.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string { return fmt.Sprintf("store: record %d: %v", e.Index, e.Err) }
func (e *RecordError) Unwrap() error { return e.Err }

// Read decodes the backing file. Invalid JSON, a top-level value that is
// not an array, or trailing content after the array is ErrCorrupt. An
// element of the wrong shape is a *RecordError; the file is intact JSON
// and callers must not treat it as corrupt. Unknown keys are ignored.
func (s *FileStore) Read() ([]contact.Stored, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("store: open %s: %w", s.path, err)
	}
	defer f.Close()

	var raw []json.RawMessage
	dec := json.NewDecoder(f)
	if err := dec.Decode(&raw); err != nil {
		if isDecodeError(err) {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		return nil, fmt.Errorf("store: read %s: %w", s.path, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing content", ErrCorrupt)
	}
	if raw == nil {
		// "null" is valid JSON but not a collection.
		return nil, fmt.Errorf("%w: expected array, got null", ErrCorrupt)
	}

	out := make([]contact.Stored, 0, len(raw))
	for i, msg := range raw {
		var rec contact.Stored
		if err := json.Unmarshal(msg, &rec); err != nil {
			return nil, &RecordError{Index: i, Err: err}
		}
		out = append(out, rec)
	}
	return out, nil
}

// Write replaces the backing file with entries. The data goes to a temp
// file in the same directory which is synced and renamed over the target.
func (s *FileStore) Write(entries []contact.Stored) error {
	if entries == nil {
		entries = []contact.Stored{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal: %w", err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(s.path, data, filePerm); err != nil {
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}
	return nil
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return true
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return true
	}
	return false
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}

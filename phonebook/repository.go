// Package phonebook keeps an ordered set of contact entries in memory,
// mirrored to a JSON backing file that is rewritten after every mutation.
package phonebook

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/vortex-fintech/phonebook/contact"
	errs "github.com/vortex-fintech/phonebook/errors"
	"github.com/vortex-fintech/phonebook/logger"
	"github.com/vortex-fintech/phonebook/logutil"
	"github.com/vortex-fintech/phonebook/piiutil"
	"github.com/vortex-fintech/phonebook/store"
	"github.com/vortex-fintech/phonebook/timeutil"
)

// Store is the backing store contract. *store.FileStore implements it.
type Store interface {
	Read() ([]contact.Stored, error)
	Write([]contact.Stored) error
}

// Repository is not safe for concurrent use.
type Repository struct {
	store Store
	log   logger.LoggerInterface
	env   string
	clock timeutil.Clock

	entries []*contact.Entry
	loaded  bool
}

type Option func(*Repository)

func WithLogger(l logger.LoggerInterface) Option {
	return func(r *Repository) {
		if l != nil {
			r.log = l
		}
	}
}

// WithEnvironment sets the logger environment name. Rejected input is
// logged unredacted only in development and debug.
func WithEnvironment(env string) Option {
	return func(r *Repository) { r.env = env }
}

func WithClock(c timeutil.Clock) Option {
	return func(r *Repository) {
		if c != nil {
			r.clock = c
		}
	}
}

// WithStore replaces the file store built from the path.
func WithStore(s Store) Option {
	return func(r *Repository) {
		if s != nil {
			r.store = s
		}
	}
}

// New builds a repository bound to the JSON file at path. Call Load before use.
func New(path string, opts ...Option) (*Repository, error) {
	r := &Repository{
		log:   logger.Nop(),
		clock: timeutil.LocalClock{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.store == nil {
		fs, err := store.NewFileStore(path)
		if err != nil {
			return nil, err
		}
		r.store = fs
	}
	return r, nil
}

// Open is New followed by Load.
func Open(path string, opts ...Option) (*Repository, error) {
	r, err := New(path, opts...)
	if err != nil {
		return nil, err
	}
	if err := r.Load(); err != nil {
		return nil, err
	}
	return r, nil
}

// Load replaces the in-memory collection with the backing file contents.
// A missing file is created empty. A file that is not JSON, or not a JSON
// array, is logged as a warning, reset to an empty collection and is not
// an error. An entry that fails validation or has the wrong shape fails
// the whole load with a validation error and leaves file and repository
// unchanged.
func (r *Repository) Load() error {
	stored, err := r.store.Read()
	var recErr *store.RecordError
	switch {
	case errors.Is(err, store.ErrNotExist):
		r.log.Infow("backing file not found, creating an empty phone book")
		return r.reset()

	case errors.Is(err, store.ErrCorrupt):
		lost := errs.DataLoss().
			WithReason("corrupt_backing_file").
			WithMessage("Backing file is corrupt; its contents were discarded").
			WithDetail("cause", err.Error())
		r.log.Warnw("backing file is corrupt, resetting to an empty phone book", "err", lost)
		return r.reset()

	case errors.As(err, &recErr):
		verr := shapeViolation(recErr)
		r.log.Warnw("invalid entry in backing file", "index", recErr.Index, "err", verr.Human())
		return fmt.Errorf("phonebook: load entry %d: %w", recErr.Index, verr)

	case err != nil:
		return fmt.Errorf("phonebook: load: %w", err)
	}

	entries := make([]*contact.Entry, 0, len(stored))
	for i, s := range stored {
		e, err := contact.FromStorage(s)
		if err != nil {
			r.log.Warnw("invalid entry in backing file",
				"index", i,
				"entry", logutil.SanitizeFieldsStrict(storedFields(s), ""),
				"err", errs.ToErrorResponse(err).Human(),
			)
			return fmt.Errorf("phonebook: load entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}

	r.entries = entries
	r.loaded = true
	r.log.Debugw("phone book loaded", "entries", len(entries))
	return nil
}

func (r *Repository) reset() error {
	if err := r.store.Write(nil); err != nil {
		return fmt.Errorf("phonebook: reset: %w", err)
	}
	r.entries = nil
	r.loaded = true
	return nil
}

// Save rewrites the backing file from the in-memory collection.
func (r *Repository) Save() error {
	if err := r.ensureLoaded(); err != nil {
		return err
	}
	return r.persist(r.entries)
}

func (r *Repository) persist(entries []*contact.Entry) error {
	stored := make([]contact.Stored, 0, len(entries))
	for _, e := range entries {
		stored = append(stored, e.ToStorage())
	}
	if err := r.store.Write(stored); err != nil {
		return fmt.Errorf("phonebook: save: %w", err)
	}
	r.log.Debugw("phone book saved", "entries", len(stored))
	return nil
}

// commit persists next and only then makes it the current collection.
func (r *Repository) commit(next []*contact.Entry) error {
	if err := r.persist(next); err != nil {
		return err
	}
	r.entries = next
	return nil
}

func (r *Repository) ensureLoaded() error {
	if !r.loaded {
		return errs.Precondition("not_loaded", nil).WithMessage("Phone book is not loaded")
	}
	return nil
}

// index returns the position of the first entry matching name and surname, or -1.
func (r *Repository) index(name, surname string) int {
	return slices.IndexFunc(r.entries, func(e *contact.Entry) bool {
		return e.Matches(name, surname)
	})
}

func notFound(name, surname string) errs.ErrorResponse {
	return errs.NotFoundWith("entry", name+" "+surname)
}

func duplicate(name, surname string) errs.ErrorResponse {
	return errs.Conflict("entry", name+" "+surname).
		WithMessage("Entry with this name and surname already exists")
}

// shapeViolation turns a record of the wrong JSON shape into the same
// validation error kind a record with bad values gets.
func shapeViolation(e *store.RecordError) errs.ErrorResponse {
	field := "entry"
	var typeErr *json.UnmarshalTypeError
	if errors.As(e.Err, &typeErr) && typeErr.Field != "" {
		field = typeErr.Field
	}
	return errs.ValidationViolations([]errs.FieldViolation{{
		Field:       field,
		Reason:      "invalid_type",
		Description: e.Err.Error(),
	}})
}

func storedFields(s contact.Stored) map[string]string {
	out := map[string]string{"name": s.Name, "surname": s.Surname, "phone": s.Phone}
	if s.Birthdate != nil {
		out["birthdate"] = *s.Birthdate
	}
	return out
}

func maskedPhone(e *contact.Entry) string { return piiutil.MaskPhone(e.Phone) }

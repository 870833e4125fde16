package phonebook

import (
	"slices"
	"strings"

	"github.com/vortex-fintech/phonebook/contact"
	"github.com/vortex-fintech/phonebook/contactutil"
	errs "github.com/vortex-fintech/phonebook/errors"
	"github.com/vortex-fintech/phonebook/logutil"
	"github.com/vortex-fintech/phonebook/timeutil"
)

// Query holds search criteria; empty fields are not filtered on.
type Query struct {
	Name      string
	Surname   string
	Phone     string
	Birthdate string
}

func (q Query) IsEmpty() bool {
	return q.Name == "" && q.Surname == "" && q.Phone == "" && q.Birthdate == ""
}

func (q Query) match(e *contact.Entry) bool {
	if q.Name != "" && !strings.EqualFold(e.Name, q.Name) {
		return false
	}
	if q.Surname != "" && !strings.EqualFold(e.Surname, q.Surname) {
		return false
	}
	if q.Phone != "" && e.Phone != q.Phone {
		return false
	}
	if q.Birthdate != "" && e.Birthdate != q.Birthdate {
		return false
	}
	return true
}

// List returns copies of all entries in insertion order.
func (r *Repository) List() []*contact.Entry {
	return r.Find(Query{})
}

// Len is the number of stored entries.
func (r *Repository) Len() int { return len(r.entries) }

// Find returns copies of the entries matching every non-empty criterion,
// in insertion order. Name and surname compare case-insensitively, phone
// and birthdate as exact strings.
func (r *Repository) Find(q Query) []*contact.Entry {
	out := make([]*contact.Entry, 0)
	for _, e := range r.entries {
		if q.match(e) {
			out = append(out, e.Clone())
		}
	}
	return out
}

// Add appends a new entry. It fails with a duplicate error when an entry
// with the same name and surname exists, ignoring case.
func (r *Repository) Add(name, surname, phone, birthdate string) error {
	if err := r.ensureLoaded(); err != nil {
		return err
	}

	// Duplicates are reported before field errors, on the normalized key
	// so that "  ivan " collides with "Ivan".
	normName, normSurname := contactutil.NormalizeName(name), contactutil.NormalizeName(surname)
	if r.index(normName, normSurname) >= 0 {
		return duplicate(normName, normSurname)
	}

	e, err := contact.New(name, surname, phone, birthdate)
	if err != nil {
		r.log.Debugw("entry rejected",
			"input", logutil.SanitizeFields(map[string]string{
				"name": name, "surname": surname, "phone": phone, "birthdate": birthdate,
			}, r.env, ""),
			"err", errs.ToErrorResponse(err).Human(),
		)
		return err
	}

	next := append(slices.Clip(r.entries), e)
	if err := r.commit(next); err != nil {
		return err
	}
	r.log.Infow("entry added", "entry", e.FullName(), "phone", maskedPhone(e))
	return nil
}

// Delete removes the first entry matching name and surname.
func (r *Repository) Delete(name, surname string) error {
	if err := r.ensureLoaded(); err != nil {
		return err
	}

	i := r.index(name, surname)
	if i < 0 {
		return notFound(name, surname)
	}
	removed := r.entries[i]

	next := slices.Delete(slices.Clone(r.entries), i, i+1)
	if err := r.commit(next); err != nil {
		return err
	}
	r.log.Infow("entry deleted", "entry", removed.FullName())
	return nil
}

// Update applies the present fields of p to the first entry matching name
// and surname. Every changed field is revalidated; renaming onto another
// entry's name and surname is a duplicate error.
func (r *Repository) Update(name, surname string, p contact.Patch) error {
	if err := r.ensureLoaded(); err != nil {
		return err
	}

	i := r.index(name, surname)
	if i < 0 {
		return notFound(name, surname)
	}

	updated, err := r.entries[i].Apply(p)
	if err != nil {
		return err
	}
	if j := r.index(updated.Name, updated.Surname); j >= 0 && j != i {
		return duplicate(updated.Name, updated.Surname)
	}

	next := slices.Clone(r.entries)
	next[i] = updated
	if err := r.commit(next); err != nil {
		return err
	}
	r.log.Infow("entry updated", "entry", updated.FullName(), "phone", maskedPhone(updated))
	return nil
}

// GetAge returns the age in whole years of the first entry matching name
// and surname, as of the repository clock's current date.
func (r *Repository) GetAge(name, surname string) (int, error) {
	if err := r.ensureLoaded(); err != nil {
		return 0, err
	}

	i := r.index(name, surname)
	if i < 0 {
		return 0, notFound(name, surname)
	}
	birth, ok := r.entries[i].BirthTime()
	if !ok {
		return 0, notFound(name, surname).
			WithReason("birthdate_missing").
			WithMessage("Entry has no birthdate")
	}
	return timeutil.AgeAt(birth, r.clock.Now()), nil
}

// Package contact holds the phone book record and its field rules.
package contact

import (
	"errors"
	"fmt"
	"strings"
	"time"

	play "github.com/go-playground/validator/v10"

	"github.com/vortex-fintech/phonebook/contactutil"
	errs "github.com/vortex-fintech/phonebook/errors"
	"github.com/vortex-fintech/phonebook/validator"
)

// Entry is one contact. Values returned by New, FromStorage and Apply are
// always normalized and valid; Entry is not meant to be mutated directly.
type Entry struct {
	Name      string `json:"name" validate:"required,pb_name"`
	Surname   string `json:"surname" validate:"required,pb_name"`
	Phone     string `json:"phone" validate:"required,pb_phone"`
	Birthdate string `json:"birthdate" validate:"omitempty,datetime=02.01.2006"`
}

// New builds a validated entry. An empty birthdate means "not set".
func New(name, surname, phone, birthdate string) (*Entry, error) {
	e := &Entry{
		Name:      contactutil.NormalizeName(name),
		Surname:   contactutil.NormalizeName(surname),
		Phone:     contactutil.NormalizePhone(phone),
		Birthdate: contactutil.NormalizeBirthdate(birthdate),
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Entry) validate() error {
	err := validator.Struct(e)
	if err == nil {
		return nil
	}
	var ves play.ValidationErrors
	if errors.As(err, &ves) {
		resp := errs.FromPlayground(ves, validator.TagReasons())
		for i := range resp.Violations {
			resp.Violations[i].Hint = e.hint(resp.Violations[i].Field)
		}
		return resp
	}
	return errs.InvalidArgument().WithReason("validation_failed").WithMessage(err.Error())
}

// hint suggests a fix for a rejected field, or returns "".
func (e *Entry) hint(field string) string {
	var value string
	switch field {
	case "name":
		value = e.Name
	case "surname":
		value = e.Surname
	case "phone":
		if e.Phone == "" {
			return ""
		}
		return contactutil.PhoneHint(e.Phone)
	default:
		return ""
	}
	if s, ok := contactutil.SuggestName(value); ok {
		return fmt.Sprintf("try %q", s)
	}
	return ""
}

// Matches reports whether the entry has the given name and surname, ignoring case.
func (e *Entry) Matches(name, surname string) bool {
	return strings.EqualFold(e.Name, name) && strings.EqualFold(e.Surname, surname)
}

// HasBirthdate reports whether the birthdate is set.
func (e *Entry) HasBirthdate() bool { return e.Birthdate != "" }

// BirthTime returns the parsed birthdate.
func (e *Entry) BirthTime() (time.Time, bool) {
	if !e.HasBirthdate() {
		return time.Time{}, false
	}
	t, err := contactutil.ParseBirthdate(e.Birthdate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FullName is "Name Surname".
func (e *Entry) FullName() string { return e.Name + " " + e.Surname }

// Clone returns a copy the caller may hold on to.
func (e *Entry) Clone() *Entry {
	c := *e
	return &c
}

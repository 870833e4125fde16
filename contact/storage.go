package contact

// Stored is the flat persisted form of an entry. A nil Birthdate is
// written as JSON null.
type Stored struct {
	Name      string  `json:"name"`
	Surname   string  `json:"surname"`
	Phone     string  `json:"phone"`
	Birthdate *string `json:"birthdate"`
}

// ToStorage produces the flat mapping written to the backing file.
func (e *Entry) ToStorage() Stored {
	s := Stored{Name: e.Name, Surname: e.Surname, Phone: e.Phone}
	if e.HasBirthdate() {
		b := e.Birthdate
		s.Birthdate = &b
	}
	return s
}

// FromStorage rebuilds an entry, running the same validation as New.
func FromStorage(s Stored) (*Entry, error) {
	var birthdate string
	if s.Birthdate != nil {
		birthdate = *s.Birthdate
	}
	return New(s.Name, s.Surname, s.Phone, birthdate)
}

package contact

// Patch lists field changes for an update; nil fields are left untouched.
type Patch struct {
	Name      *string
	Surname   *string
	Phone     *string
	Birthdate *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Surname == nil && p.Phone == nil && p.Birthdate == nil
}

// Apply returns a new validated entry with the patch applied.
// The receiver is never modified, so a failed patch leaves no trace.
func (e *Entry) Apply(p Patch) (*Entry, error) {
	name, surname, phone, birthdate := e.Name, e.Surname, e.Phone, e.Birthdate
	if p.Name != nil {
		name = *p.Name
	}
	if p.Surname != nil {
		surname = *p.Surname
	}
	if p.Phone != nil {
		phone = *p.Phone
	}
	if p.Birthdate != nil {
		birthdate = *p.Birthdate
	}
	return New(name, surname, phone, birthdate)
}

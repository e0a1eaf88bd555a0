package domain

// Profile is a person who can give or receive skill endorsements.
type Profile struct {
	ID          int64   `json:"id"          db:"id"`
	FirstName   string  `json:"first_name"  db:"first_name"`
	LastName    string  `json:"last_name"   db:"last_name"`
	Location    *string `json:"location"    db:"location"`
	Description *string `json:"description" db:"description"`
	Contact     *int64  `json:"contact"     db:"contact"`
}

// NewProfile builds a validated, not yet persisted Profile.
func NewProfile(firstName, lastName string, location, description *string, contact *int64) (*Profile, error) {
	p := &Profile{
		FirstName:   firstName,
		LastName:    lastName,
		Location:    location,
		Description: description,
		Contact:     contact,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the required fields. Like Apply, it only rejects empty
// strings; whitespace counts as a value.
func (p *Profile) Validate() error {
	if p.FirstName == "" {
		return NewValidationError("first_name", "is required", ErrEmptyField)
	}
	if p.LastName == "" {
		return NewValidationError("last_name", "is required", ErrEmptyField)
	}
	return nil
}

// ProfilePatch carries the fields of a partial profile update.
// A nil field was not supplied by the client.
type ProfilePatch struct {
	FirstName   *string
	LastName    *string
	Location    *string
	Description *string
	Contact     *int64
}

// Apply overwrites every field whose new value is present and non-empty
// (non-zero for Contact). Empty strings and zero are treated like absent
// values, so a patch can never clear a field. Reports whether anything changed.
func (p *Profile) Apply(patch ProfilePatch) bool {
	changed := false
	if v, ok := nonEmpty(patch.FirstName); ok && v != p.FirstName {
		p.FirstName = v
		changed = true
	}
	if v, ok := nonEmpty(patch.LastName); ok && v != p.LastName {
		p.LastName = v
		changed = true
	}
	if v, ok := nonEmpty(patch.Location); ok && !equalString(p.Location, v) {
		p.Location = &v
		changed = true
	}
	if v, ok := nonEmpty(patch.Description); ok && !equalString(p.Description, v) {
		p.Description = &v
		changed = true
	}
	if patch.Contact != nil && *patch.Contact != 0 && (p.Contact == nil || *p.Contact != *patch.Contact) {
		v := *patch.Contact
		p.Contact = &v
		changed = true
	}
	return changed
}

func nonEmpty(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	return *s, true
}

func equalString(current *string, v string) bool {
	return current != nil && *current == v
}

package domain

// Skill is a named, endorsable competency. Names are expected to be unique
// but the store does not enforce it.
type Skill struct {
	ID          int64   `json:"id"          db:"id"`
	Name        string  `json:"name"        db:"name"`
	Description *string `json:"description" db:"description"`
}

// NewSkill builds a validated, not yet persisted Skill.
func NewSkill(name string, description *string) (*Skill, error) {
	s := &Skill{Name: name, Description: description}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the required fields.
func (s *Skill) Validate() error {
	if s.Name == "" {
		return NewValidationError("name", "is required", ErrEmptyField)
	}
	return nil
}

// SkillPatch carries the fields of a partial skill update.
type SkillPatch struct {
	Name        *string
	Description *string
}

// Apply follows the same rules as Profile.Apply.
func (s *Skill) Apply(patch SkillPatch) bool {
	changed := false
	if v, ok := nonEmpty(patch.Name); ok && v != s.Name {
		s.Name = v
		changed = true
	}
	if v, ok := nonEmpty(patch.Description); ok && !equalString(s.Description, v) {
		s.Description = &v
		changed = true
	}
	return changed
}

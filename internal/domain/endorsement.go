package domain

import "time"

// Endorsement records that a giver endorsed a receiver for a skill.
// CreationDate is assigned by the store on insert and never changes.
type Endorsement struct {
	ID           int64     `json:"id"            db:"id"`
	GiverID      int64     `json:"giver_id"      db:"giver_id"`
	ReceiverID   int64     `json:"receiver_id"   db:"receiver_id"`
	SkillID      int64     `json:"skill_id"      db:"skill_id"`
	CreationDate time.Time `json:"creation_date" db:"creation_date"`
}

// NewEndorsement builds a validated, not yet persisted Endorsement.
// Whether the referenced rows exist is only known to the store.
func NewEndorsement(giverID, receiverID, skillID int64) (*Endorsement, error) {
	e := &Endorsement{GiverID: giverID, ReceiverID: receiverID, SkillID: skillID}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks that every reference is a positive id.
func (e *Endorsement) Validate() error {
	if e.GiverID <= 0 {
		return NewValidationError("giver_id", "must be a positive integer", ErrInvalidID)
	}
	if e.ReceiverID <= 0 {
		return NewValidationError("receiver_id", "must be a positive integer", ErrInvalidID)
	}
	if e.SkillID <= 0 {
		return NewValidationError("skill_id", "must be a positive integer", ErrInvalidID)
	}
	return nil
}

// EndorsementDetail is an endorsement joined with the names of both
// profiles and the skill.
type EndorsementDetail struct {
	Endorsement
	GiverFirstName    string `json:"giver_first_name"    db:"giver_first_name"`
	GiverLastName     string `json:"giver_last_name"     db:"giver_last_name"`
	ReceiverFirstName string `json:"receiver_first_name" db:"receiver_first_name"`
	ReceiverLastName  string `json:"receiver_last_name"  db:"receiver_last_name"`
	SkillName         string `json:"skill_name"          db:"skill_name"`
}

// ReceivedEndorsement is one row of a profile's received endorsements:
// the giver's name and the skill name.
type ReceivedEndorsement struct {
	GiverID      int64     `json:"giver_id"      db:"giver_id"`
	SkillID      int64     `json:"skill_id"      db:"skill_id"`
	CreationDate time.Time `json:"creation_date" db:"creation_date"`
	FirstName    string    `json:"first_name"    db:"first_name"`
	LastName     string    `json:"last_name"     db:"last_name"`
	Name         string    `json:"name"          db:"name"`
}

// GivenEndorsement is one row of a profile's given endorsements:
// the receiver's name and the skill name.
type GivenEndorsement struct {
	ReceiverID   int64     `json:"receiver_id"   db:"receiver_id"`
	SkillID      int64     `json:"skill_id"      db:"skill_id"`
	CreationDate time.Time `json:"creation_date" db:"creation_date"`
	FirstName    string    `json:"first_name"    db:"first_name"`
	LastName     string    `json:"last_name"     db:"last_name"`
	Name         string    `json:"name"          db:"name"`
}

// SkillEndorsement is one endorsement of a skill with both profile names.
type SkillEndorsement struct {
	ID                int64     `json:"id"                  db:"id"`
	GiverID           int64     `json:"giver_id"            db:"giver_id"`
	GiverFirstName    string    `json:"giver_first_name"    db:"giver_first_name"`
	GiverLastName     string    `json:"giver_last_name"     db:"giver_last_name"`
	ReceiverID        int64     `json:"receiver_id"         db:"receiver_id"`
	ReceiverFirstName string    `json:"receiver_first_name" db:"receiver_first_name"`
	ReceiverLastName  string    `json:"receiver_last_name"  db:"receiver_last_name"`
	CreationDate      time.Time `json:"creation_date"       db:"creation_date"`
}

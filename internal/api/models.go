package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/endorsa/endorsa-api/internal/domain"
)

// FlexInt is an integer that also accepts its decimal string form, so both
// 123456789 and "123456789" decode to the same value. An empty string
// decodes to zero.
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
		if len(data) == 0 {
			*f = 0
			return nil
		}
	}

	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	*f = FlexInt(v)
	return nil
}

// Int64Ptr returns the value as an optional field. Only nil means unset,
// so an explicit zero is kept.
func (f *FlexInt) Int64Ptr() *int64 {
	if f == nil {
		return nil
	}
	v := int64(*f)
	return &v
}

// nonZeroInt64Ptr is Int64Ptr for patches, where zero is ignored too.
func (f *FlexInt) nonZeroInt64Ptr() *int64 {
	if f == nil || *f == 0 {
		return nil
	}
	return f.Int64Ptr()
}

// CreateProfileRequest defines the payload for POST /users.
type CreateProfileRequest struct {
	FirstName   string   `json:"first_name"  validate:"required"`
	LastName    string   `json:"last_name"   validate:"required"`
	Location    *string  `json:"location"`
	Description *string  `json:"description"`
	Contact     *FlexInt `json:"contact"`
}

// UpdateProfileRequest defines the payload for PATCH /users/{id}.
// Absent fields stay nil.
type UpdateProfileRequest struct {
	FirstName   *string  `json:"first_name"`
	LastName    *string  `json:"last_name"`
	Location    *string  `json:"location"`
	Description *string  `json:"description"`
	Contact     *FlexInt `json:"contact"`
}

func (req UpdateProfileRequest) patch() domain.ProfilePatch {
	return domain.ProfilePatch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Location:    req.Location,
		Description: req.Description,
		Contact:     req.Contact.nonZeroInt64Ptr(),
	}
}

// CreateSkillRequest defines the payload for POST /skills.
type CreateSkillRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description *string `json:"description"`
}

// UpdateSkillRequest defines the payload for PATCH /skills/{id}.
type UpdateSkillRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (req UpdateSkillRequest) patch() domain.SkillPatch {
	return domain.SkillPatch{Name: req.Name, Description: req.Description}
}

// CreateEndorsementRequest defines the payload for POST /endorsements.
type CreateEndorsementRequest struct {
	GiverID    FlexInt `json:"giver_id"    validate:"required,gt=0"`
	ReceiverID FlexInt `json:"receiver_id" validate:"required,gt=0"`
	SkillID    FlexInt `json:"skill_id"    validate:"required,gt=0"`
}

// ProfileListResponse is the body of GET /users.
type ProfileListResponse struct {
	Success  bool              `json:"success"`
	Users    []*domain.Profile `json:"users"`
	NumUsers int               `json:"num_users"`
}

// ProfileResponse is the body of single-profile mutations.
type ProfileResponse struct {
	Success bool            `json:"success"`
	User    *domain.Profile `json:"user"`
}

// ProfileDetailResponse is the body of GET /users/{id}.
type ProfileDetailResponse struct {
	Success              bool                          `json:"success"`
	User                 *domain.Profile               `json:"user"`
	EndorsementsReceived []*domain.ReceivedEndorsement `json:"endorsements_received"`
	EndorsementsGiven    []*domain.GivenEndorsement    `json:"endorsements_given"`
}

// ProfilesDeletedResponse is the body of DELETE /users.
type ProfilesDeletedResponse struct {
	Success         bool  `json:"success"`
	NumUsersDeleted int64 `json:"num_users_deleted"`
}

// SkillListResponse is the body of GET /skills.
type SkillListResponse struct {
	Success   bool            `json:"success"`
	Skills    []*domain.Skill `json:"skills"`
	NumSkills int             `json:"num_skills"`
}

// SkillResponse is the body of single-skill mutations.
type SkillResponse struct {
	Success bool          `json:"success"`
	Skill   *domain.Skill `json:"skill"`
}

// SkillDetailResponse is the body of GET /skills/{id}.
type SkillDetailResponse struct {
	Success      bool                       `json:"success"`
	Skill        *domain.Skill              `json:"skill"`
	Endorsements []*domain.SkillEndorsement `json:"endorsements"`
}

// SkillsDeletedResponse is the body of DELETE /skills.
type SkillsDeletedResponse struct {
	Success          bool  `json:"success"`
	NumSkillsDeleted int64 `json:"num_skills_deleted"`
}

// EndorsementListResponse is the body of GET /endorsements.
type EndorsementListResponse struct {
	Success         bool                        `json:"success"`
	Endorsements    []*domain.EndorsementDetail `json:"endorsements"`
	NumEndorsements int                         `json:"num_endorsements"`
}

// EndorsementResponse is the body of single-endorsement requests.
// Endorsement is either a plain or a detailed endorsement.
type EndorsementResponse struct {
	Success     bool `json:"success"`
	Endorsement any  `json:"endorsement"`
}

// EndorsementsDeletedResponse is the body of DELETE /endorsements.
type EndorsementsDeletedResponse struct {
	Success                bool  `json:"success"`
	NumEndorsementsDeleted int64 `json:"num_endorsements_deleted"`
}

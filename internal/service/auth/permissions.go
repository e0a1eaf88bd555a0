package auth

import (
	"fmt"
	"slices"
)

// Permission names carried in the "permissions" claim.
const (
	PermReadUser        = "read:user"
	PermEditUser        = "edit:user"
	PermReadSkill       = "read:skill"
	PermEditSkill       = "edit:skill"
	PermReadEndorsement = "read:endorsement"
	PermEditEndorsement = "edit:endorsement"
)

// AllPermissions lists every permission the API checks.
var AllPermissions = []string{
	PermReadUser,
	PermEditUser,
	PermReadSkill,
	PermEditSkill,
	PermReadEndorsement,
	PermEditEndorsement,
}

// ValidatePermissions reports the first name that is not a known permission.
func ValidatePermissions(perms []string) error {
	for _, p := range perms {
		if !slices.Contains(AllPermissions, p) {
			return fmt.Errorf("unknown permission %q", p)
		}
	}
	return nil
}

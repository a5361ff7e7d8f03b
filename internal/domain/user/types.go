package user

import "strconv"

// Role values are shared with the identity service and persisted as integers.
type Role int

const (
	RoleUnauthorized      Role = -1
	RoleAdmin             Role = 0
	RoleVolunteer         Role = 1
	RoleVets              Role = 2
	RoleCaregiver         Role = 3
	RoleVerifiedVolunteer Role = 4
)

var roleNames = map[Role]string{
	RoleUnauthorized:      "UNAUTHORIZED",
	RoleAdmin:             "ADMIN",
	RoleVolunteer:         "VOLUNTEER",
	RoleVets:              "VETS",
	RoleCaregiver:         "CAREGIVER",
	RoleVerifiedVolunteer: "VERIFIED_VOLUNTEER",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "ROLE(" + strconv.Itoa(int(r)) + ")"
}

func (r Role) IsValid() bool {
	_, ok := roleNames[r]
	return ok
}

// IsPrivileged reports whether the role manages slots and approves reservations.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleCaregiver
}

func NewRole(v int) (Role, error) {
	role := Role(v)
	if !role.IsValid() {
		return RoleUnauthorized, ErrInvalidRole
	}
	return role, nil
}

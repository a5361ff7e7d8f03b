// Package access holds the single table deciding which roles may run which
// scheduling operation.
package access

import (
	"errors"
	"slices"

	"shelter-scheduler/internal/domain/user"
)

var ErrForbidden = errors.New("operation not permitted for role")

type Operation string

const (
	OpListSlots    Operation = "slot:list"
	OpListAllSlots Operation = "slot:list_all"
	OpCreateSlot   Operation = "slot:create"
	OpUpdateSlot   Operation = "slot:update"
	OpDeleteSlot   Operation = "slot:delete"

	OpCreateReservation       Operation = "reservation:create"
	OpUpdateReservationStatus Operation = "reservation:update_status"
	OpManageReservations      Operation = "reservation:manage"
	OpDeleteReservation       Operation = "reservation:delete"
	OpReadReservations        Operation = "reservation:read"
	OpOverviewAll             Operation = "reservation:overview_all"
	OpListOngoing             Operation = "reservation:ongoing"
	OpListConcluded           Operation = "reservation:concluded"
)

var (
	privileged = []user.Role{user.RoleAdmin, user.RoleCaregiver}
	scheduling = []user.Role{user.RoleAdmin, user.RoleCaregiver, user.RoleVerifiedVolunteer}
)

var policy = map[Operation][]user.Role{
	OpListSlots:    scheduling,
	OpListAllSlots: privileged,
	OpCreateSlot:   privileged,
	OpUpdateSlot:   privileged,
	OpDeleteSlot:   privileged,

	OpCreateReservation:       scheduling,
	OpUpdateReservationStatus: scheduling,
	OpManageReservations:      privileged,
	OpDeleteReservation:       privileged,
	OpReadReservations:        scheduling,
	OpOverviewAll:             privileged,
	OpListOngoing:             privileged,
	OpListConcluded:           privileged,
}

// Allows reports whether role may perform op. Unknown operations are denied.
func Allows(role user.Role, op Operation) bool {
	roles, ok := policy[op]
	if !ok {
		return false
	}
	return slices.Contains(roles, role)
}

func Authorize(role user.Role, op Operation) error {
	if !Allows(role, op) {
		return ErrForbidden
	}
	return nil
}

// Roles returns a copy of the roles allowed to perform op.
func Roles(op Operation) []user.Role {
	return slices.Clone(policy[op])
}

func Operations() []Operation {
	ops := make([]Operation, 0, len(policy))
	for op := range policy {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}

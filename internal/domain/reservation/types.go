package reservation

import (
	"errors"
	"slices"
	"strconv"
)

var (
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrInvalidTransition = errors.New("reservation status transition not allowed")
)

// Status values are shared with the shelter clients and persisted as a smallint.
type Status int

const (
	StatusPending    Status = 0
	StatusApproved   Status = 1
	StatusRejected   Status = 2
	StatusCompleted  Status = 3
	StatusInProgress Status = 4
	StatusCancelled  Status = 5
)

var statusNames = map[Status]string{
	StatusPending:    "PENDING",
	StatusApproved:   "APPROVED",
	StatusRejected:   "REJECTED",
	StatusCompleted:  "COMPLETED",
	StatusInProgress: "IN_PROGRESS",
	StatusCancelled:  "CANCELLED",
}

// transitions lists, for every non-terminal status, where it may move next.
var transitions = map[Status][]Status{
	StatusPending:    {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved:   {StatusInProgress, StatusRejected, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusRejected, StatusCancelled},
}

func ParseStatus(v int) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return 0, ErrInvalidStatus
	}
	return s, nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "STATUS(" + strconv.Itoa(int(s)) + ")"
}

func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

// IsActive reports whether a reservation in this status holds its slot.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusApproved || s == StatusInProgress
}

func (s Status) IsTerminal() bool {
	return s.IsValid() && len(transitions[s]) == 0
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

// ActiveStatuses is ordered by lifecycle position.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusApproved, StatusInProgress}
}

func AllStatuses() []Status {
	return []Status{StatusPending, StatusApproved, StatusRejected, StatusCompleted, StatusInProgress, StatusCancelled}
}

func StatusValues(statuses []Status) []int16 {
	out := make([]int16, len(statuses))
	for i, s := range statuses {
		out[i] = int16(s)
	}
	return out
}

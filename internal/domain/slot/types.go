package slot

import "strconv"

// Status is persisted as a smallint.
type Status int

const (
	StatusAvailable Status = 0
	StatusReserved  Status = 1
)

func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "AVAILABLE"
	case StatusReserved:
		return "RESERVED"
	default:
		return "SLOT_STATUS(" + strconv.Itoa(int(s)) + ")"
	}
}

func (s Status) IsValid() bool {
	return s == StatusAvailable || s == StatusReserved
}

package queries

import (
	"time"

	"shelter-scheduler/internal/domain/reservation"
	"shelter-scheduler/internal/domain/slot"
)

// SlotView represents read-optimized slot data
type SlotView struct {
	ID        int64       `json:"id"`
	CatID     int64       `json:"cat_id"`
	StartTime time.Time   `json:"start_time"`
	EndTime   time.Time   `json:"end_time"`
	Status    slot.Status `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ReservationView represents read-optimized reservation request data
type ReservationView struct {
	ID          int64              `json:"id"`
	SlotID      int64              `json:"slot_id"`
	VolunteerID int64              `json:"volunteer_id"`
	RequestDate time.Time          `json:"request_date"`
	Status      reservation.Status `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// OverviewRow joins a reservation with its volunteer, slot and cat.
type OverviewRow struct {
	ReservationID     int64              `json:"reservation_id"`
	VolunteerUsername string             `json:"volunteer_username"`
	VolunteerFullName string             `json:"volunteer_full_name"`
	CatID             int64              `json:"cat_id"`
	CatName           string             `json:"cat_name"`
	SlotID            int64              `json:"slot_id"`
	StartTime         time.Time          `json:"start_time"`
	EndTime           time.Time          `json:"end_time"`
	ReservationStatus reservation.Status `json:"reservation_status"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      int    `json:"role"`
	IsActive  bool   `json:"is_active"`
}

func (u *AuthorizedUserView) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

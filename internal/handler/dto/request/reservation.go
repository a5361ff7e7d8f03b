package request

import (
	"shelter-scheduler/internal/pkg/timefmt"
	"shelter-scheduler/internal/usecase/commands"
)

type CreateReservationRequest struct {
	SlotID      int64         `json:"slot_id" binding:"required,gt=0"`
	VolunteerID *int64        `json:"volunteer_id,omitempty" binding:"omitempty,gt=0"`
	RequestDate *timefmt.Date `json:"request_date,omitempty" swaggertype:"string" example:"2025-03-01"`
}

func (r *CreateReservationRequest) ToInput() commands.CreateReservationInput {
	in := commands.CreateReservationInput{
		SlotID:      r.SlotID,
		VolunteerID: r.VolunteerID,
	}
	if r.RequestDate != nil {
		t := r.RequestDate.Time
		in.RequestDate = &t
	}
	return in
}

type UpdateReservationStatusRequest struct {
	Status *int `json:"status" binding:"required,reservation_status"`
}

type ListReservationsQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
	After string `form:"after"`
}

type OverviewQuery struct {
	UserID *int64 `form:"user_id" binding:"omitempty,gt=0"`
}

type ListSlotsQuery struct {
	CatID *int64 `form:"cat_id" binding:"omitempty,gt=0"`
}

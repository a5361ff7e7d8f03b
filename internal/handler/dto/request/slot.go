package request

import (
	"time"

	"shelter-scheduler/internal/pkg/timefmt"
	"shelter-scheduler/internal/usecase/commands"
)

type CreateSlotRequest struct {
	CatID     int64             `json:"cat_id" binding:"required,gt=0"`
	StartTime *timefmt.DateTime `json:"start_time" binding:"required" swaggertype:"string" example:"2025-03-02 10:00"`
	EndTime   *timefmt.DateTime `json:"end_time" binding:"required" swaggertype:"string" example:"2025-03-02 11:00"`
}

func (r *CreateSlotRequest) ToInput() commands.CreateSlotInput {
	return commands.CreateSlotInput{
		CatID:     r.CatID,
		StartTime: r.StartTime.Time,
		EndTime:   r.EndTime.Time,
	}
}

type CreateRecurringSlotsRequest struct {
	CatID           int64             `json:"cat_id" binding:"required,gt=0"`
	RRule           string            `json:"rrule" binding:"required,rrule" example:"FREQ=WEEKLY;BYDAY=MO,WE;COUNT=8"`
	StartTime       *timefmt.DateTime `json:"start_time" binding:"required" swaggertype:"string" example:"2025-03-03 10:00"`
	DurationMinutes int               `json:"duration_minutes" binding:"required,gt=0,lte=1440"`
}

func (r *CreateRecurringSlotsRequest) ToInput() commands.CreateRecurringSlotsInput {
	return commands.CreateRecurringSlotsInput{
		CatID:           r.CatID,
		RRule:           r.RRule,
		StartTime:       r.StartTime.Time,
		DurationMinutes: r.DurationMinutes,
	}
}

// UpdateSlotRequest is a partial update. Status is not writable.
type UpdateSlotRequest struct {
	CatID     *int64            `json:"cat_id" binding:"omitempty,gt=0"`
	StartTime *timefmt.DateTime `json:"start_time" swaggertype:"string"`
	EndTime   *timefmt.DateTime `json:"end_time" swaggertype:"string"`
}

func (r *UpdateSlotRequest) ToInput() commands.UpdateSlotInput {
	return commands.UpdateSlotInput{
		CatID:     r.CatID,
		StartTime: timeOf(r.StartTime),
		EndTime:   timeOf(r.EndTime),
	}
}

func timeOf(d *timefmt.DateTime) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

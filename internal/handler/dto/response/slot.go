package response

import (
	"shelter-scheduler/internal/pkg/timefmt"
	"shelter-scheduler/internal/usecase/queries"
)

type SlotResponse struct {
	ID        int64            `json:"id"`
	CatID     int64            `json:"cat_id"`
	StartTime timefmt.DateTime `json:"start_time" swaggertype:"string" example:"2025-03-02 10:00"`
	EndTime   timefmt.DateTime `json:"end_time" swaggertype:"string" example:"2025-03-02 11:00"`
	Status    int              `json:"status"`
}

type RecurringSlotsResponse struct {
	IDs   []int64 `json:"ids"`
	Count int     `json:"count"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:        v.ID,
		CatID:     v.CatID,
		StartTime: timefmt.NewDateTime(v.StartTime),
		EndTime:   timefmt.NewDateTime(v.EndTime),
		Status:    int(v.Status),
	}
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	out := make([]*SlotResponse, len(views))
	for i, v := range views {
		out[i] = FromSlotView(v)
	}
	return out
}

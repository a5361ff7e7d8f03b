package response

import (
	"shelter-scheduler/internal/pkg/timefmt"
	"shelter-scheduler/internal/usecase/queries"
)

type ReservationResponse struct {
	ID          int64        `json:"id"`
	SlotID      int64        `json:"slot_id"`
	VolunteerID int64        `json:"volunteer_id"`
	RequestDate timefmt.Date `json:"request_date" swaggertype:"string" example:"2025-03-01"`
	Status      int          `json:"status"`
}

type ReservationListResponse struct {
	Items      []*ReservationResponse `json:"items"`
	NextCursor string                 `json:"next_cursor,omitempty"`
}

type OverviewRowResponse struct {
	ReservationID     int64            `json:"reservation_id"`
	VolunteerUsername string           `json:"volunteer_username"`
	VolunteerFullName string           `json:"volunteer_full_name"`
	CatID             int64            `json:"cat_id"`
	CatName           string           `json:"cat_name"`
	SlotID            int64            `json:"slot_id"`
	StartTime         timefmt.DateTime `json:"start_time" swaggertype:"string"`
	EndTime           timefmt.DateTime `json:"end_time" swaggertype:"string"`
	ReservationStatus int              `json:"reservation_status"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:          v.ID,
		SlotID:      v.SlotID,
		VolunteerID: v.VolunteerID,
		RequestDate: timefmt.NewDate(v.RequestDate),
		Status:      int(v.Status),
	}
}

func FromReservationPage(views []*queries.ReservationView, next *queries.Cursor) *ReservationListResponse {
	res := &ReservationListResponse{Items: make([]*ReservationResponse, len(views))}
	for i, v := range views {
		res.Items[i] = FromReservationView(v)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

func FromOverviewRows(rows []*queries.OverviewRow) []*OverviewRowResponse {
	out := make([]*OverviewRowResponse, len(rows))
	for i, r := range rows {
		out[i] = &OverviewRowResponse{
			ReservationID:     r.ReservationID,
			VolunteerUsername: r.VolunteerUsername,
			VolunteerFullName: r.VolunteerFullName,
			CatID:             r.CatID,
			CatName:           r.CatName,
			SlotID:            r.SlotID,
			StartTime:         timefmt.NewDateTime(r.StartTime),
			EndTime:           timefmt.NewDateTime(r.EndTime),
			ReservationStatus: int(r.ReservationStatus),
		}
	}
	return out
}

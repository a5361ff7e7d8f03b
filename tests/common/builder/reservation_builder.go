//go:build unit || e2e

package builder

import (
	"time"

	"shelter-scheduler/internal/domain/reservation"
	reqdto "shelter-scheduler/internal/handler/dto/request"
	"shelter-scheduler/internal/pkg/timefmt"
	"shelter-scheduler/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID          int64
	SlotID      int64
	VolunteerID int64
	RequestDate time.Time
	Status      reservation.Status

	// overview columns
	VolunteerUsername string
	VolunteerFullName string
	CatID             int64
	CatName           string
	StartTime         time.Time
	EndTime           time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:                1,
		SlotID:            1,
		VolunteerID:       2,
		RequestDate:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:            reservation.StatusPending,
		VolunteerUsername: "mika",
		VolunteerFullName: "Mika Tanaka",
		CatID:             7,
		CatName:           "Tama",
		StartTime:         start,
		EndTime:           start.Add(time.Hour),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithSlotID(id int64) *ReservationBuilder {
	b.SlotID = id
	return b
}

func (b *ReservationBuilder) WithVolunteerID(id int64) *ReservationBuilder {
	b.VolunteerID = id
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) BuildDTO() reqdto.CreateReservationRequest {
	date := timefmt.NewDate(b.RequestDate)
	return reqdto.CreateReservationRequest{
		SlotID:      b.SlotID,
		RequestDate: &date,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:          b.ID,
		SlotID:      b.SlotID,
		VolunteerID: b.VolunteerID,
		RequestDate: b.RequestDate,
		Status:      b.Status,
		CreatedAt:   b.RequestDate,
		UpdatedAt:   b.RequestDate,
	}
}

func (b *ReservationBuilder) BuildOverviewRow() *queries.OverviewRow {
	return &queries.OverviewRow{
		ReservationID:     b.ID,
		VolunteerUsername: b.VolunteerUsername,
		VolunteerFullName: b.VolunteerFullName,
		CatID:             b.CatID,
		CatName:           b.CatName,
		SlotID:            b.SlotID,
		StartTime:         b.StartTime,
		EndTime:           b.EndTime,
		ReservationStatus: b.Status,
	}
}

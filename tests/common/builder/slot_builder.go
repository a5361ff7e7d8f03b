//go:build unit || e2e

package builder

import (
	"time"

	"shelter-scheduler/internal/domain/slot"
	reqdto "shelter-scheduler/internal/handler/dto/request"
	"shelter-scheduler/internal/pkg/timefmt"
	"shelter-scheduler/internal/usecase/queries"
)

type SlotBuilder struct {
	ID        int64
	CatID     int64
	StartTime time.Time
	EndTime   time.Time
	Status    slot.Status
}

func NewSlotBuilder() *SlotBuilder {
	start := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	return &SlotBuilder{
		ID:        1,
		CatID:     7,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    slot.StatusAvailable,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) WithID(id int64) *SlotBuilder {
	b.ID = id
	return b
}

func (b *SlotBuilder) WithCatID(catID int64) *SlotBuilder {
	b.CatID = catID
	return b
}

func (b *SlotBuilder) WithWindow(start time.Time, d time.Duration) *SlotBuilder {
	b.StartTime = start
	b.EndTime = start.Add(d)
	return b
}

func (b *SlotBuilder) AsReserved() *SlotBuilder {
	b.Status = slot.StatusReserved
	return b
}

func (b *SlotBuilder) BuildDTO() reqdto.CreateSlotRequest {
	start := timefmt.NewDateTime(b.StartTime)
	end := timefmt.NewDateTime(b.EndTime)
	return reqdto.CreateSlotRequest{
		CatID:     b.CatID,
		StartTime: &start,
		EndTime:   &end,
	}
}

func (b *SlotBuilder) BuildRecurringDTO(rule string) reqdto.CreateRecurringSlotsRequest {
	start := timefmt.NewDateTime(b.StartTime)
	return reqdto.CreateRecurringSlotsRequest{
		CatID:           b.CatID,
		RRule:           rule,
		StartTime:       &start,
		DurationMinutes: int(b.EndTime.Sub(b.StartTime).Minutes()),
	}
}

func (b *SlotBuilder) BuildView() *queries.SlotView {
	return &queries.SlotView{
		ID:        b.ID,
		CatID:     b.CatID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    b.Status,
		CreatedAt: b.StartTime.Add(-24 * time.Hour),
		UpdatedAt: b.StartTime.Add(-24 * time.Hour),
	}
}

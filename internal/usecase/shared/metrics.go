package shared

// Metrics records scheduling outcomes. Implementations must be safe for
// concurrent use.
type Metrics interface {
	SlotsCreated(n int)
	ReservationCreated()
	ReservationRejected(reason string)
	ReservationStatusChanged(from, to string)
	IdempotentReplay()
}

type NopMetrics struct{}

func (NopMetrics) SlotsCreated(int)                        {}
func (NopMetrics) ReservationCreated()                     {}
func (NopMetrics) ReservationRejected(string)              {}
func (NopMetrics) ReservationStatusChanged(string, string) {}
func (NopMetrics) IdempotentReplay()                       {}

package vsrtl

import (
	"fmt"
	"sync"
)

// Anomaly is a non-fatal runtime diagnostic: an overflowing value is
// reported, not raised, so simulation keeps running.
type Anomaly struct {
	Component string // dotted path of the offending component
	Port      string
	Width     uint
	Raw       uint64 // value produced by the value function, before masking
	Masked    uint64 // value actually stored on the port
}

func (a Anomaly) String() string {
	return fmt.Sprintf("%s.%s: value %#x overflows %d-bit port, truncated to %#x",
		a.Component, a.Port, a.Raw, a.Width, a.Masked)
}

// Diagnostics is a thread-safe sink for runtime anomalies, guarding its
// mutable state with a mutex rather than leaving it racy.
type Diagnostics struct {
	mu       sync.Mutex
	anomalies []Anomaly
}

func (d *Diagnostics) record(a Anomaly) {
	d.mu.Lock()
	d.anomalies = append(d.anomalies, a)
	d.mu.Unlock()
}

// Drain returns and clears all anomalies recorded so far.
func (d *Diagnostics) Drain() []Anomaly {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := d.anomalies
	d.anomalies = nil
	return out
}

// Len reports the number of anomalies currently queued.
func (d *Diagnostics) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.anomalies)
}

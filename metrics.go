package hoard

import (
	"sync/atomic"
	"time"
)

// Metrics passively counts cache activity. All counters are atomic so the
// recorder never extends the store's critical section; it observes and never
// influences control flow.
type Metrics struct {
	hits          atomic.Uint64
	misses        atomic.Uint64
	evictions     atomic.Uint64
	expirations   atomic.Uint64
	loadFailures  atomic.Uint64
	writeFailures atomic.Uint64

	getCount   atomic.Uint64
	getNanos   atomic.Int64
	loadCount  atomic.Uint64
	loadNanos  atomic.Int64
	writeCount atomic.Uint64
	writeNanos atomic.Int64
}

// Stats is a point-in-time snapshot of the recorder.
type Stats struct {
	Hits          uint64
	Misses        uint64
	Evictions     uint64
	Expirations   uint64
	LoadFailures  uint64
	WriteFailures uint64

	GetCount   uint64
	GetTime    time.Duration
	LoadCount  uint64
	LoadTime   time.Duration
	WriteCount uint64
	WriteTime  time.Duration
}

// HitRate returns hits/(hits+misses), or 0 before any traffic.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// AvgGetLatency returns the mean Get duration, or 0 before any Gets.
func (s Stats) AvgGetLatency() time.Duration {
	if s.GetCount == 0 {
		return 0
	}
	return s.GetTime / time.Duration(s.GetCount)
}

func (m *Metrics) hit()          { m.hits.Add(1) }
func (m *Metrics) miss()         { m.misses.Add(1) }
func (m *Metrics) eviction()     { m.evictions.Add(1) }
func (m *Metrics) expiration()   { m.expirations.Add(1) }
func (m *Metrics) loadFailure()  { m.loadFailures.Add(1) }
func (m *Metrics) writeFailure() { m.writeFailures.Add(1) }

func (m *Metrics) observeGet(d time.Duration) {
	m.getCount.Add(1)
	m.getNanos.Add(int64(d))
}

func (m *Metrics) observeLoad(d time.Duration) {
	m.loadCount.Add(1)
	m.loadNanos.Add(int64(d))
}

func (m *Metrics) observeWrite(d time.Duration) {
	m.writeCount.Add(1)
	m.writeNanos.Add(int64(d))
}

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() Stats {
	return Stats{
		Hits:          m.hits.Load(),
		Misses:        m.misses.Load(),
		Evictions:     m.evictions.Load(),
		Expirations:   m.expirations.Load(),
		LoadFailures:  m.loadFailures.Load(),
		WriteFailures: m.writeFailures.Load(),
		GetCount:      m.getCount.Load(),
		GetTime:       time.Duration(m.getNanos.Load()),
		LoadCount:     m.loadCount.Load(),
		LoadTime:      time.Duration(m.loadNanos.Load()),
		WriteCount:    m.writeCount.Load(),
		WriteTime:     time.Duration(m.writeNanos.Load()),
	}
}

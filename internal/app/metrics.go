package app

import (
	"fmt"
	"time"
)

// Metrics counts editor activity over a session. It is owned by the event
// loop and is not safe for concurrent use.
type Metrics struct {
	frameCount   uint64
	frameTotal   time.Duration
	frameMax     time.Duration
	keyCount     uint64
	saveCount    uint64
	saveFailures uint64
	bytesWritten int64
	searchCount  uint64
}

// NewMetrics creates an empty metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordFrame records the time spent composing and writing a frame.
func (m *Metrics) RecordFrame(d time.Duration) {
	m.frameCount++
	m.frameTotal += d
	m.frameMax = max(m.frameMax, d)
}

// RecordKey records a processed key.
func (m *Metrics) RecordKey() {
	m.keyCount++
}

// RecordSave records a save attempt and the bytes written by a successful
// one.
func (m *Metrics) RecordSave(n int, err error) {
	if err != nil {
		m.saveFailures++
		return
	}
	m.saveCount++
	m.bytesWritten += int64(n)
}

// RecordSearch records a search session.
func (m *Metrics) RecordSearch() {
	m.searchCount++
}

// Snapshot returns a copy of the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		FrameCount:   m.frameCount,
		FrameMax:     m.frameMax,
		KeyCount:     m.keyCount,
		SaveCount:    m.saveCount,
		SaveFailures: m.saveFailures,
		BytesWritten: m.bytesWritten,
		SearchCount:  m.searchCount,
	}
	if m.frameCount > 0 {
		s.FrameAvg = m.frameTotal / time.Duration(m.frameCount)
	}
	return s
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	FrameCount   uint64
	FrameAvg     time.Duration
	FrameMax     time.Duration
	KeyCount     uint64
	SaveCount    uint64
	SaveFailures uint64
	BytesWritten int64
	SearchCount  uint64
}

// String formats the snapshot for the log.
func (s MetricsSnapshot) String() string {
	return fmt.Sprintf("frames=%d avg=%s max=%s keys=%d saves=%d failed=%d bytes=%d searches=%d",
		s.FrameCount, s.FrameAvg, s.FrameMax, s.KeyCount, s.SaveCount, s.SaveFailures, s.BytesWritten, s.SearchCount)
}

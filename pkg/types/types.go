package types

import (
	"strings"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// ParseSeverity maps free-form severity strings to a known severity.
// Unknown or empty values default to info, which is never pushed.
func ParseSeverity(s string) Severity {
	switch Severity(strings.ToLower(s)) {
	case SeverityWarning:
		return SeverityWarning
	case SeverityError:
		return SeverityError
	case SeverityCritical:
		return SeverityCritical
	default:
		return SeverityInfo
	}
}

// LivenessState is the per-device heartbeat state. OfflineSince is the
// dedup latch for the current offline episode: non-zero iff the episode
// is open. Online is informational and must not be used for dedup.
// All timestamps are epoch milliseconds.
type LivenessState struct {
	DeviceID     string `json:"deviceID"`
	LastSeen     int64  `json:"lastSeen"`
	Online       bool   `json:"online"`
	OfflineSince int64  `json:"offlineSince,omitempty"`
	OnlineSince  int64  `json:"onlineSince,omitempty"`
}

type SensorLimit struct {
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
	Label string  `json:"label" yaml:"label"`
}

// SensorLatch records the last known range status for one (device, sensor)
// pair, for edge detection on the next write. LastSentAt is the timestamp
// of the last alert sent for this sensor (0 if never).
type SensorLatch struct {
	OutOfRange bool    `json:"outOfRange"`
	LastSentAt int64   `json:"lastSentAt"`
	LastValue  float64 `json:"lastValue"`
}

type Notification struct {
	ID        string   `json:"id,omitempty"`
	DeviceID  string   `json:"deviceID"`
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Severity  Severity `json:"severity"`
	Type      string   `json:"type"`
	Timestamp int64    `json:"ts"`

	SensorKey string   `json:"sensorKey,omitempty"`
	Value     *float64 `json:"value,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`

	PushedAt int64 `json:"pushedAt,omitempty"`
}

// DoseRun is one historical dosing record as reported by a controller.
// The alerting core never inspects these, they only exist to be stored
// and eventually pruned.
type DoseRun struct {
	ID        string  `json:"id,omitempty"`
	DeviceID  string  `json:"deviceID"`
	Pump      string  `json:"pump"`
	VolumeMl  float64 `json:"volumeMl"`
	Timestamp int64   `json:"ts"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}

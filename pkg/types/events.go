package types

import (
	"encoding/json"
	"time"
)

type SensorValueUpdated struct {
	DeviceID  string          `json:"deviceID"`
	SensorKey string          `json:"sensorKey"`
	Value     json.RawMessage `json:"value,omitempty"`
	Deleted   bool            `json:"deleted,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

func (s *SensorValueUpdated) ContentType() string {
	return "application/json"
}
func (s *SensorValueUpdated) TopicName() string {
	return "device.sensorValueUpdated"
}
func (s *SensorValueUpdated) Body() []byte {
	b, _ := json.Marshal(s)
	return b
}

type NotificationCreated struct {
	Notification Notification `json:"notification"`
	Timestamp    time.Time    `json:"timestamp"`
}

func (n *NotificationCreated) ContentType() string {
	return "application/json"
}
func (n *NotificationCreated) TopicName() string {
	return "notification.created"
}
func (n *NotificationCreated) Body() []byte {
	b, _ := json.Marshal(n)
	return b
}

type DoseRunRecorded struct {
	DoseRun   DoseRun   `json:"doseRun"`
	Timestamp time.Time `json:"timestamp"`
}

func (d *DoseRunRecorded) ContentType() string {
	return "application/json"
}
func (d *DoseRunRecorded) TopicName() string {
	return "device.doseRunRecorded"
}
func (d *DoseRunRecorded) Body() []byte {
	b, _ := json.Marshal(d)
	return b
}

package sensors

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/aquanet/fleet-alerting/internal/pkg/infrastructure/storage"
	"github.com/aquanet/fleet-alerting/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

type Config struct {
	Cooldown time.Duration
	Limits   map[string]types.SensorLimit
}

func DefaultConfig() *Config {
	return &Config{
		Cooldown: 30 * time.Minute,
		Limits: map[string]types.SensorLimit{
			"pH":    {Min: 7.5, Max: 10.5, Label: "pH"},
			"tempF": {Min: 75.0, Max: 82.0, Label: "Temp (°F)"},
			"sg":    {Min: 1.023, Max: 1.027, Label: "Salinity (SG)"},
		},
	}
}

//go:generate moq -rm -out latchstorage_mock.go . LatchStorage
type LatchStorage interface {
	UpdateLatch(ctx context.Context, deviceID, sensorKey string, fn storage.LatchUpdateFunc) (*types.Notification, error)
}

type SensorMonitor interface {
	HandleSensorValue(ctx context.Context, evt types.SensorValueUpdated, now time.Time) (*types.Notification, error)
	RegisterTopicMessageHandler(ctx context.Context) error
}

type monitor struct {
	storage   LatchStorage
	messenger messaging.MsgContext
	cfg       *Config
}

func New(storage LatchStorage, messenger messaging.MsgContext, cfg *Config) SensorMonitor {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &monitor{
		storage:   storage,
		messenger: messenger,
		cfg:       cfg,
	}
}

func (m *monitor) RegisterTopicMessageHandler(ctx context.Context) error {
	return m.messenger.RegisterTopicMessageHandler("device.sensorValueUpdated", NewSensorValueHandler(m))
}

// HandleSensorValue runs the range state machine for one sensor write.
// Unknown keys, deleted values and values that do not coerce to a
// finite number are ignored without touching the latch.
func (m *monitor) HandleSensorValue(ctx context.Context, evt types.SensorValueUpdated, now time.Time) (*types.Notification, error) {
	limit, ok := m.cfg.Limits[evt.SensorKey]
	if !ok {
		return nil, nil
	}

	if evt.Deleted {
		return nil, nil
	}

	value, ok := coerceValue(evt.Value)
	if !ok {
		return nil, nil
	}

	n, err := m.storage.UpdateLatch(ctx, evt.DeviceID, evt.SensorKey, func(latch types.SensorLatch, found bool) (types.SensorLatch, *types.Notification) {
		return decide(now, evt.DeviceID, evt.SensorKey, limit, latch, found, value, m.cfg.Cooldown)
	})
	if err != nil {
		return nil, fmt.Errorf("could not update latch for %s/%s: %w", evt.DeviceID, evt.SensorKey, err)
	}

	if n == nil {
		return nil, nil
	}

	log := logging.GetFromContext(ctx)
	log.Info("sensor alert", "device_id", evt.DeviceID, "sensor_key", evt.SensorKey, "type", n.Type, "value", value)

	err = m.messenger.PublishOnTopic(ctx, &types.NotificationCreated{
		Notification: *n,
		Timestamp:    now,
	})
	if err != nil {
		return n, err
	}

	return n, nil
}

// decide is the pure part of the state machine: given the persisted
// latch and the new value, it returns the new latch and at most one
// notification. Boundary values equal to min or max are in range.
func decide(now time.Time, deviceID, sensorKey string, limit types.SensorLimit, latch types.SensorLatch, found bool, value float64, cooldown time.Duration) (types.SensorLatch, *types.Notification) {
	nowMs := now.UnixMilli()

	outLow := value < limit.Min
	outHigh := value > limit.Max
	outOfRange := outLow || outHigh

	wasOut := found && latch.OutOfRange

	if !outOfRange {
		if wasOut {
			// edge back to normal, notify once
			return types.SensorLatch{OutOfRange: false, LastSentAt: nowMs, LastValue: value},
				backToNormalNotification(deviceID, sensorKey, limit, value, nowMs)
		}

		latch.OutOfRange = false
		latch.LastValue = value
		return latch, nil
	}

	shouldAlert := !wasOut || nowMs-latch.LastSentAt > cooldown.Milliseconds()

	if !shouldAlert {
		// still bad, within cooldown: remember the value, keep the timer
		latch.OutOfRange = true
		latch.LastValue = value
		return latch, nil
	}

	return types.SensorLatch{OutOfRange: true, LastSentAt: nowMs, LastValue: value},
		outOfRangeNotification(deviceID, sensorKey, limit, value, outLow, nowMs)
}

func outOfRangeNotification(deviceID, sensorKey string, limit types.SensorLimit, value float64, outLow bool, now int64) *types.Notification {
	which := "HIGH"
	if outLow {
		which = "LOW"
	}

	v, lo, hi := value, limit.Min, limit.Max

	return &types.Notification{
		DeviceID:  deviceID,
		Title:     fmt.Sprintf("%s %s %s", deviceID, limit.Label, which),
		Body:      fmt.Sprintf("%s is %s. Expected %s–%s.", limit.Label, formatValue(v), formatValue(lo), formatValue(hi)),
		Severity:  types.SeverityCritical,
		Type:      fmt.Sprintf("sensor_%s_out_of_range", sensorKey),
		Timestamp: now,
		SensorKey: sensorKey,
		Value:     &v,
		Min:       &lo,
		Max:       &hi,
	}
}

func backToNormalNotification(deviceID, sensorKey string, limit types.SensorLimit, value float64, now int64) *types.Notification {
	v, lo, hi := value, limit.Min, limit.Max

	return &types.Notification{
		DeviceID:  deviceID,
		Title:     fmt.Sprintf("%s %s normal", deviceID, limit.Label),
		Body:      fmt.Sprintf("%s is back in range at %s (expected %s–%s).", limit.Label, formatValue(v), formatValue(lo), formatValue(hi)),
		Severity:  types.SeverityWarning,
		Type:      fmt.Sprintf("sensor_%s_back_normal", sensorKey),
		Timestamp: now,
		SensorKey: sensorKey,
		Value:     &v,
		Min:       &lo,
		Max:       &hi,
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// coerceValue accepts a bare number, a quoted number, or an object
// with a value field, mirroring what controllers actually write.
func coerceValue(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}

	return coerceAny(v)
}

func coerceAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return finite(t)
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	case map[string]any:
		inner, ok := t["value"]
		if !ok {
			return 0, false
		}
		return coerceAny(inner)
	default:
		return 0, false
	}
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

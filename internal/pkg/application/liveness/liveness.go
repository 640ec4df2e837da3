package liveness

import (
	"context"
	"fmt"
	"time"

	"github.com/aquanet/fleet-alerting/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("fleet-alerting/liveness")

type Config struct {
	OfflineThreshold time.Duration
	SweepInterval    time.Duration
	NotifyBackOnline bool
}

func DefaultConfig() *Config {
	return &Config{
		OfflineThreshold: 4 * time.Minute,
		SweepInterval:    time.Minute,
		NotifyBackOnline: true,
	}
}

//go:generate moq -rm -out devicestorage_mock.go . DeviceStorage
type DeviceStorage interface {
	ListLivenessStates(ctx context.Context) ([]types.LivenessState, error)
	ApplyOfflineTransition(ctx context.Context, deviceID string, now int64, n types.Notification) (types.Notification, bool, error)
	ApplyOnlineTransition(ctx context.Context, deviceID string, now int64, n *types.Notification) (*types.Notification, bool, error)
}

type Sweeper interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)
	Sweep(ctx context.Context, now time.Time) error
}

type sweeper struct {
	storage   DeviceStorage
	messenger messaging.MsgContext
	cfg       *Config
	done      chan struct{}
}

func New(storage DeviceStorage, messenger messaging.MsgContext, cfg *Config) Sweeper {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &sweeper{
		storage:   storage,
		messenger: messenger,
		cfg:       cfg,
		done:      make(chan struct{}),
	}
}

func (s *sweeper) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *sweeper) Stop(ctx context.Context) {
	close(s.done)
}

func (s *sweeper) run(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := s.Sweep(ctx, time.Now().UTC())
			if err != nil {
				log.Error("liveness sweep failed", "err", err.Error())
			}
		}
	}
}

// Sweep re-evaluates the heartbeat state of every device. Each device
// commits independently, so a failure on one device does not keep the
// rest of the fleet from being evaluated.
func (s *sweeper) Sweep(ctx context.Context, now time.Time) error {
	var err error

	ctx, span := tracer.Start(ctx, "liveness-sweep")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	states, err := s.storage.ListLivenessStates(ctx)
	if err != nil {
		return fmt.Errorf("could not list device states: %w", err)
	}

	for _, state := range states {
		deviceErr := s.evaluateDevice(ctx, state, now)
		if deviceErr != nil {
			log.Error("could not evaluate device", "device_id", state.DeviceID, "err", deviceErr.Error())
			err = deviceErr
		}
	}

	return err
}

func (s *sweeper) evaluateDevice(ctx context.Context, state types.LivenessState, now time.Time) error {
	log := logging.GetFromContext(ctx)
	ms := now.UnixMilli()

	switch Evaluate(now, state, s.cfg.OfflineThreshold) {
	case WentOffline:
		n, applied, err := s.storage.ApplyOfflineTransition(ctx, state.DeviceID, ms, offlineNotification(state, ms))
		if err != nil {
			return err
		}
		if !applied {
			return nil
		}

		log.Info("device went offline", "device_id", state.DeviceID, "last_seen", state.LastSeen)

		return s.messenger.PublishOnTopic(ctx, &types.NotificationCreated{
			Notification: n,
			Timestamp:    now,
		})
	case CameBackOnline:
		var n *types.Notification
		if s.cfg.NotifyBackOnline {
			bn := onlineNotification(state, ms)
			n = &bn
		}

		n, applied, err := s.storage.ApplyOnlineTransition(ctx, state.DeviceID, ms, n)
		if err != nil {
			return err
		}
		if !applied || n == nil {
			return nil
		}

		log.Info("device back online", "device_id", state.DeviceID)

		return s.messenger.PublishOnTopic(ctx, &types.NotificationCreated{
			Notification: *n,
			Timestamp:    now,
		})
	}

	return nil
}

type Transition int

const (
	NoTransition Transition = iota
	WentOffline
	CameBackOnline
)

// Evaluate decides the liveness transition for one device. Pure: its
// only inputs are the clock and the persisted state, so re-evaluating
// the same state yields the same decision.
func Evaluate(now time.Time, state types.LivenessState, threshold time.Duration) Transition {
	if state.LastSeen == 0 {
		// device has never reported, silence alone is not an episode
		return NoTransition
	}

	stale := now.UnixMilli()-state.LastSeen > threshold.Milliseconds()

	if stale && state.OfflineSince == 0 {
		return WentOffline
	}

	if !stale && state.OfflineSince != 0 {
		return CameBackOnline
	}

	return NoTransition
}

func offlineNotification(state types.LivenessState, now int64) types.Notification {
	lastSeen := time.UnixMilli(state.LastSeen).UTC()

	return types.Notification{
		DeviceID:  state.DeviceID,
		Title:     fmt.Sprintf("%s offline", state.DeviceID),
		Body:      fmt.Sprintf("No heartbeat since %s", lastSeen.Format(time.RFC1123)),
		Severity:  types.SeverityCritical,
		Type:      "device_offline",
		Timestamp: now,
	}
}

func onlineNotification(state types.LivenessState, now int64) types.Notification {
	return types.Notification{
		DeviceID:  state.DeviceID,
		Title:     fmt.Sprintf("%s online", state.DeviceID),
		Body:      "Device is back online.",
		Severity:  types.SeverityWarning,
		Type:      "device_online",
		Timestamp: now,
	}
}

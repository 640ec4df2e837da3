package retention

import (
	"context"
	"fmt"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("fleet-alerting/retention")

type Config struct {
	Interval        time.Duration
	NotificationTTL time.Duration
	DoseRunTTL      time.Duration
	BatchSize       int
}

func DefaultConfig() *Config {
	return &Config{
		Interval:        24 * time.Hour,
		NotificationTTL: 30 * 24 * time.Hour,
		DoseRunTTL:      365 * 24 * time.Hour,
		BatchSize:       500,
	}
}

//go:generate moq -rm -out retentionstorage_mock.go . RetentionStorage
type RetentionStorage interface {
	ListDeviceIDs(ctx context.Context) ([]string, error)
	DeleteNotificationsBefore(ctx context.Context, deviceID string, cutoff int64, limit int) (int, error)
	DeleteDoseRunsBefore(ctx context.Context, deviceID string, cutoff int64, limit int) (int, error)
}

type Worker interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)
	Purge(ctx context.Context, now time.Time) error
}

type worker struct {
	storage RetentionStorage
	cfg     *Config
	done    chan struct{}
}

func New(storage RetentionStorage, cfg *Config) Worker {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &worker{
		storage: storage,
		cfg:     cfg,
		done:    make(chan struct{}),
	}
}

func (w *worker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *worker) Stop(ctx context.Context) {
	close(w.done)
}

func (w *worker) run(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := w.Purge(ctx, time.Now().UTC())
			if err != nil {
				log.Error("retention purge failed", "err", err.Error())
			}
		}
	}
}

// Purge deletes expired notifications and dose runs for every device.
// Deletion runs in batches so a device with a large backlog never holds
// one long-running transaction. A failure on one device does not stop
// the purge of the others.
func (w *worker) Purge(ctx context.Context, now time.Time) error {
	var err error

	ctx, span := tracer.Start(ctx, "retention-purge")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	deviceIDs, err := w.storage.ListDeviceIDs(ctx)
	if err != nil {
		return fmt.Errorf("could not list devices: %w", err)
	}

	notificationCutoff := now.Add(-w.cfg.NotificationTTL).UnixMilli()
	doseRunCutoff := now.Add(-w.cfg.DoseRunTTL).UnixMilli()

	for _, deviceID := range deviceIDs {
		deleted, deviceErr := w.purgeDevice(ctx, deviceID, notificationCutoff, doseRunCutoff)
		if deviceErr != nil {
			log.Error("could not purge device", "device_id", deviceID, "err", deviceErr.Error())
			err = deviceErr
			continue
		}

		if deleted > 0 {
			log.Info("purged expired records", "device_id", deviceID, "count", deleted)
		}
	}

	return err
}

func (w *worker) purgeDevice(ctx context.Context, deviceID string, notificationCutoff, doseRunCutoff int64) (int, error) {
	total := 0

	deleted, err := w.purgeBatches(ctx, deviceID, notificationCutoff, w.storage.DeleteNotificationsBefore)
	total += deleted
	if err != nil {
		return total, err
	}

	deleted, err = w.purgeBatches(ctx, deviceID, doseRunCutoff, w.storage.DeleteDoseRunsBefore)
	total += deleted

	return total, err
}

type deleteFunc func(ctx context.Context, deviceID string, cutoff int64, limit int) (int, error)

// purgeBatches deletes oldest-first until a batch comes back short,
// which means nothing older than the cutoff remains.
func (w *worker) purgeBatches(ctx context.Context, deviceID string, cutoff int64, del deleteFunc) (int, error) {
	total := 0

	for {
		n, err := del(ctx, deviceID, cutoff, w.cfg.BatchSize)
		total += n
		if err != nil {
			return total, err
		}

		if n < w.cfg.BatchSize {
			return total, nil
		}
	}
}

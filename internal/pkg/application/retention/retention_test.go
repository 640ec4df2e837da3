package retention

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestPurgeLoopsUntilShortBatch(t *testing.T) {
	is := is.New(t)

	// 1203 expired notifications: three full batches of 500 would
	// overshoot, so the mock hands out 500, 500, 203
	remaining := 1203

	storage := &RetentionStorageMock{
		ListDeviceIDsFunc: func(ctx context.Context) ([]string, error) {
			return []string{"doser-01"}, nil
		},
		DeleteNotificationsBeforeFunc: func(ctx context.Context, deviceID string, cutoff int64, limit int) (int, error) {
			n := min(remaining, limit)
			remaining -= n
			return n, nil
		},
		DeleteDoseRunsBeforeFunc: func(ctx context.Context, deviceID string, cutoff int64, limit int) (int, error) {
			return 0, nil
		},
	}

	w := New(storage, DefaultConfig())

	err := w.Purge(context.Background(), time.Now().UTC())
	is.NoErr(err)

	is.Equal(remaining, 0)
	is.Equal(len(storage.DeleteNotificationsBeforeCalls()), 3)
	is.Equal(len(storage.DeleteDoseRunsBeforeCalls()), 1)
}

func TestPurgeUsesConfiguredCutoffs(t *testing.T) {
	is := is.New(t)

	storage := &RetentionStorageMock{
		ListDeviceIDsFunc: func(ctx context.Context) ([]string, error) {
			return []string{"doser-01"}, nil
		},
		DeleteNotificationsBeforeFunc: func(ctx context.Context, deviceID string, cutoff int64, limit int) (int, error) {
			return 0, nil
		},
		DeleteDoseRunsBeforeFunc: func(ctx context.Context, deviceID string, cutoff int64, limit int) (int, error) {
			return 0, nil
		},
	}

	w := New(storage, DefaultConfig())
	now := time.Now().UTC()

	err := w.Purge(context.Background(), now)
	is.NoErr(err)

	nCall := storage.DeleteNotificationsBeforeCalls()[0]
	is.Equal(nCall.Cutoff, now.Add(-30*24*time.Hour).UnixMilli())
	is.Equal(nCall.Limit, 500)

	dCall := storage.DeleteDoseRunsBeforeCalls()[0]
	is.Equal(dCall.Cutoff, now.Add(-365*24*time.Hour).UnixMilli())
}

func TestPurgeContinuesPastFailingDevice(t *testing.T) {
	is := is.New(t)

	storage := &RetentionStorageMock{
		ListDeviceIDsFunc: func(ctx context.Context) ([]string, error) {
			return []string{"doser-01", "doser-02"}, nil
		},
		DeleteNotificationsBeforeFunc: func(ctx context.Context, deviceID string, cutoff int64, limit int) (int, error) {
			if deviceID == "doser-01" {
				return 0, errors.New("deadlock detected")
			}
			return 0, nil
		},
		DeleteDoseRunsBeforeFunc: func(ctx context.Context, deviceID string, cutoff int64, limit int) (int, error) {
			return 0, nil
		},
	}

	w := New(storage, DefaultConfig())

	err := w.Purge(context.Background(), time.Now().UTC())
	is.True(err != nil)

	// the second device was still purged
	is.Equal(len(storage.DeleteNotificationsBeforeCalls()), 2)
	is.Equal(len(storage.DeleteDoseRunsBeforeCalls()), 1)
}

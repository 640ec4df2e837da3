package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aquanet/fleet-alerting/pkg/types"
	"github.com/google/uuid"
	"github.com/matryer/is"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	ctx := context.Background()

	config := Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	}

	s, err := New(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = s.Initialize(ctx)
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func newDeviceID() string {
	return fmt.Sprintf("device-%s", uuid.NewString())
}

func TestOfflineTransitionIsAppliedOnce(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceID := newDeviceID()
	now := time.Now().UnixMilli()

	err := s.SetLastSeen(ctx, deviceID, now-10*60*1000)
	is.NoErr(err)

	n := types.Notification{
		DeviceID: deviceID,
		Title:    "offline",
		Body:     "no heartbeat",
		Severity: types.SeverityCritical,
		Type:     "device_offline",
	}

	stored, applied, err := s.ApplyOfflineTransition(ctx, deviceID, now, n)
	is.NoErr(err)
	is.True(applied)
	is.True(stored.ID != "")

	// still stale, episode already open
	_, applied, err = s.ApplyOfflineTransition(ctx, deviceID, now+60_000, n)
	is.NoErr(err)
	is.True(!applied)

	state, err := s.GetLivenessState(ctx, deviceID)
	is.NoErr(err)
	is.Equal(state.OfflineSince, now)
	is.True(!state.Online)
}

func TestOfflineTransitionIgnoresNeverSeenDevices(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceID := newDeviceID()

	err := s.SetLastSeen(ctx, deviceID, 0)
	is.NoErr(err)

	_, applied, err := s.ApplyOfflineTransition(ctx, deviceID, time.Now().UnixMilli(), types.Notification{DeviceID: deviceID})
	is.NoErr(err)
	is.True(!applied)
}

func TestOnlineTransitionClearsEpisode(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceID := newDeviceID()
	now := time.Now().UnixMilli()

	err := s.SetLastSeen(ctx, deviceID, now-10*60*1000)
	is.NoErr(err)

	_, applied, err := s.ApplyOfflineTransition(ctx, deviceID, now, types.Notification{DeviceID: deviceID, Type: "device_offline"})
	is.NoErr(err)
	is.True(applied)

	n := &types.Notification{DeviceID: deviceID, Type: "device_online", Severity: types.SeverityWarning}
	stored, applied, err := s.ApplyOnlineTransition(ctx, deviceID, now+60_000, n)
	is.NoErr(err)
	is.True(applied)
	is.True(stored != nil && stored.ID != "")

	state, err := s.GetLivenessState(ctx, deviceID)
	is.NoErr(err)
	is.Equal(state.OfflineSince, int64(0))
	is.True(state.Online)

	// no open episode, nothing to clear
	_, applied, err = s.ApplyOnlineTransition(ctx, deviceID, now+120_000, nil)
	is.NoErr(err)
	is.True(!applied)
}

func TestUpdateLatchCreatesAndStoresNotification(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceID := newDeviceID()
	now := time.Now().UnixMilli()

	n, err := s.UpdateLatch(ctx, deviceID, "pH", func(latch types.SensorLatch, found bool) (types.SensorLatch, *types.Notification) {
		is.True(!found)
		return types.SensorLatch{OutOfRange: true, LastSentAt: now, LastValue: 7.0},
			&types.Notification{DeviceID: deviceID, Type: "sensor_pH_out_of_range", Severity: types.SeverityCritical, Timestamp: now}
	})
	is.NoErr(err)
	is.True(n != nil && n.ID != "")

	latch, err := s.GetLatch(ctx, deviceID, "pH")
	is.NoErr(err)
	is.True(latch.OutOfRange)
	is.Equal(latch.LastSentAt, now)
	is.Equal(latch.LastValue, 7.0)

	// silent latch-only update keeps lastSentAt
	n, err = s.UpdateLatch(ctx, deviceID, "pH", func(latch types.SensorLatch, found bool) (types.SensorLatch, *types.Notification) {
		is.True(found)
		latch.LastValue = 7.1
		return latch, nil
	})
	is.NoErr(err)
	is.True(n == nil)

	latch, err = s.GetLatch(ctx, deviceID, "pH")
	is.NoErr(err)
	is.Equal(latch.LastSentAt, now)
	is.Equal(latch.LastValue, 7.1)
}

func TestConcurrentFirstWritesAlertOnce(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceID := newDeviceID()
	now := time.Now().UnixMilli()

	alert := func(latch types.SensorLatch, found bool) (types.SensorLatch, *types.Notification) {
		if latch.OutOfRange {
			// a previous writer already observed the edge
			return latch, nil
		}
		return types.SensorLatch{OutOfRange: true, LastSentAt: now, LastValue: 7.0},
			&types.Notification{DeviceID: deviceID, Type: "sensor_pH_out_of_range", Severity: types.SeverityCritical, Timestamp: now}
	}

	var wg sync.WaitGroup
	results := make([]*types.Notification, 2)
	errs := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.UpdateLatch(ctx, deviceID, "pH", alert)
		}(i)
	}
	wg.Wait()

	is.NoErr(errs[0])
	is.NoErr(errs[1])

	notified := 0
	for _, n := range results {
		if n != nil {
			notified++
		}
	}
	is.Equal(notified, 1)

	collection, err := s.QueryNotifications(ctx, WithDeviceID(deviceID))
	is.NoErr(err)
	is.Equal(collection.TotalCount, uint64(1))
}

func TestPushTokenLifecycle(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceID := newDeviceID()

	is.NoErr(s.RegisterPushToken(ctx, deviceID, "token-a"))
	is.NoErr(s.RegisterPushToken(ctx, deviceID, "token-b"))
	is.NoErr(s.RegisterPushToken(ctx, deviceID, "token-a")) // idempotent

	tokens, err := s.GetPushTokens(ctx, deviceID)
	is.NoErr(err)
	is.Equal(len(tokens), 2)

	is.NoErr(s.DeletePushToken(ctx, deviceID, "token-a"))

	tokens, err = s.GetPushTokens(ctx, deviceID)
	is.NoErr(err)
	is.Equal(tokens, []string{"token-b"})
}

func TestQueryNotifications(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceID := newDeviceID()
	now := time.Now().UnixMilli()

	for i := 0; i < 3; i++ {
		_, err := s.AddNotification(ctx, types.Notification{
			DeviceID:  deviceID,
			Title:     "t",
			Body:      "b",
			Severity:  types.SeverityInfo,
			Type:      "device_offline",
			Timestamp: now + int64(i),
		})
		is.NoErr(err)
	}

	collection, err := s.QueryNotifications(ctx, WithDeviceID(deviceID), WithSortDesc(true), WithLimit(2))
	is.NoErr(err)
	is.Equal(collection.Count, uint64(2))
	is.Equal(collection.TotalCount, uint64(3))
	is.Equal(collection.Data[0].Timestamp, now+2)
}

func TestDeleteNotificationsBefore(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceID := newDeviceID()
	cutoff := time.Now().UnixMilli()

	for i := 0; i < 5; i++ {
		_, err := s.AddNotification(ctx, types.Notification{
			DeviceID:  deviceID,
			Type:      "device_offline",
			Severity:  types.SeverityInfo,
			Timestamp: cutoff - int64(i) - 1,
		})
		is.NoErr(err)
	}

	deleted, err := s.DeleteNotificationsBefore(ctx, deviceID, cutoff, 3)
	is.NoErr(err)
	is.Equal(deleted, 3)

	deleted, err = s.DeleteNotificationsBefore(ctx, deviceID, cutoff, 3)
	is.NoErr(err)
	is.Equal(deleted, 2)
}

func TestMarkNotificationPushed(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	n, err := s.AddNotification(ctx, types.Notification{
		DeviceID:  newDeviceID(),
		Type:      "device_offline",
		Severity:  types.SeverityCritical,
		Timestamp: time.Now().UnixMilli(),
	})
	is.NoErr(err)

	pushedAt := time.Now().UnixMilli()
	is.NoErr(s.MarkNotificationPushed(ctx, n.ID, pushedAt))

	stored, err := s.GetNotification(ctx, n.ID)
	is.NoErr(err)
	is.Equal(stored.PushedAt, pushedAt)
}

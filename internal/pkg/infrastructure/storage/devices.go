package storage

import (
	"context"
	"errors"

	"github.com/aquanet/fleet-alerting/pkg/types"
	"github.com/jackc/pgx/v5"
)

// SetLastSeen records a heartbeat. The device row is created implicitly
// on the first write from the field.
func (s *Storage) SetLastSeen(ctx context.Context, deviceID string, ts int64) error {
	args := pgx.NamedArgs{
		"device_id": deviceID,
		"last_seen": ts,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO device_state (device_id, last_seen)
		VALUES (@device_id, @last_seen)
		ON CONFLICT (device_id) DO UPDATE
		SET last_seen = EXCLUDED.last_seen, modified_on = CURRENT_TIMESTAMP
	`, args)

	return err
}

func (s *Storage) GetLivenessState(ctx context.Context, deviceID string) (types.LivenessState, error) {
	var state types.LivenessState

	err := s.pool.QueryRow(ctx, `
		SELECT device_id, last_seen, online, offline_since, online_since
		FROM device_state
		WHERE device_id = @device_id
	`, pgx.NamedArgs{"device_id": deviceID}).Scan(
		&state.DeviceID, &state.LastSeen, &state.Online, &state.OfflineSince, &state.OnlineSince,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.LivenessState{}, ErrNoRows
		}
		return types.LivenessState{}, err
	}

	return state, nil
}

func (s *Storage) ListLivenessStates(ctx context.Context) ([]types.LivenessState, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT device_id, last_seen, online, offline_since, online_since
		FROM device_state
		ORDER BY device_id ASC
	`)
	if err != nil {
		return nil, err
	}

	states := make([]types.LivenessState, 0)

	var state types.LivenessState
	_, err = pgx.ForEachRow(rows, []any{&state.DeviceID, &state.LastSeen, &state.Online, &state.OfflineSince, &state.OnlineSince}, func() error {
		states = append(states, state)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return states, nil
}

// ApplyOfflineTransition opens the offline episode for a device and
// appends its notification in the same transaction. The conditional
// update is the compare-and-set: a second sweep observing the same
// staleness finds offline_since already set and commits nothing, so
// at most one notification exists per episode. Returns the stored
// notification, or false if the episode was already open.
func (s *Storage) ApplyOfflineTransition(ctx context.Context, deviceID string, now int64, n types.Notification) (types.Notification, bool, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return types.Notification{}, false, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE device_state
		SET online = FALSE, offline_since = @now, modified_on = CURRENT_TIMESTAMP
		WHERE device_id = @device_id AND offline_since = 0 AND last_seen > 0
	`, pgx.NamedArgs{"device_id": deviceID, "now": now})
	if err != nil {
		return types.Notification{}, false, err
	}

	if tag.RowsAffected() == 0 {
		return types.Notification{}, false, nil
	}

	n, err = addNotificationTx(ctx, tx, n)
	if err != nil {
		return types.Notification{}, false, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return types.Notification{}, false, err
	}

	return n, true, nil
}

// ApplyOnlineTransition closes the offline episode, resetting
// offline_since to its zero sentinel. The notification is optional
// (nil when back-online notifications are suppressed); the latch
// clear happens either way.
func (s *Storage) ApplyOnlineTransition(ctx context.Context, deviceID string, now int64, n *types.Notification) (*types.Notification, bool, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE device_state
		SET online = TRUE, online_since = @now, offline_since = 0, modified_on = CURRENT_TIMESTAMP
		WHERE device_id = @device_id AND offline_since <> 0
	`, pgx.NamedArgs{"device_id": deviceID, "now": now})
	if err != nil {
		return nil, false, err
	}

	if tag.RowsAffected() == 0 {
		return nil, false, nil
	}

	if n != nil {
		stored, err := addNotificationTx(ctx, tx, *n)
		if err != nil {
			return nil, false, err
		}
		n = &stored
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, false, err
	}

	return n, true, nil
}

func (s *Storage) SetSensorValue(ctx context.Context, deviceID, sensorKey string, value []byte, ts int64) error {
	args := pgx.NamedArgs{
		"device_id":  deviceID,
		"sensor_key": sensorKey,
		"value":      string(value),
		"ts":         ts,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO sensor_values (device_id, sensor_key, value, ts)
		VALUES (@device_id, @sensor_key, @value, @ts)
		ON CONFLICT (device_id, sensor_key) DO UPDATE
		SET value = EXCLUDED.value, ts = EXCLUDED.ts, modified_on = CURRENT_TIMESTAMP
	`, args)

	return err
}

func (s *Storage) DeleteSensorValue(ctx context.Context, deviceID, sensorKey string) error {
	_, err := s.pool.Exec(ctx, `
		DELETE FROM sensor_values
		WHERE device_id = @device_id AND sensor_key = @sensor_key
	`, pgx.NamedArgs{"device_id": deviceID, "sensor_key": sensorKey})

	return err
}

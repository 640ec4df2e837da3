package storage

import (
	"context"
	"errors"

	"github.com/aquanet/fleet-alerting/pkg/types"
	"github.com/jackc/pgx/v5"
)

// LatchUpdateFunc decides the new latch content given the current one.
// found is false when no latch exists yet for the sensor. A non-nil
// notification is appended in the same transaction as the latch write.
type LatchUpdateFunc func(latch types.SensorLatch, found bool) (types.SensorLatch, *types.Notification)

// UpdateLatch runs a read-modify-write of one sensor latch inside a
// single transaction, with the latch row locked for the duration. The
// row is created before it is locked: FOR UPDATE on a row that does
// not exist yet locks nothing, which would let two concurrent
// first-ever writes both observe the edge and both alert. With the
// insert first, the second writer blocks on the row until the first
// commits and then reads the committed latch.
func (s *Storage) UpdateLatch(ctx context.Context, deviceID, sensorKey string, fn LatchUpdateFunc) (*types.Notification, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{
		"device_id":  deviceID,
		"sensor_key": sensorKey,
	}

	tag, err := tx.Exec(ctx, `
		INSERT INTO sensor_latches (device_id, sensor_key)
		VALUES (@device_id, @sensor_key)
		ON CONFLICT (device_id, sensor_key) DO NOTHING
	`, args)
	if err != nil {
		return nil, err
	}

	found := tag.RowsAffected() == 0

	var latch types.SensorLatch

	err = tx.QueryRow(ctx, `
		SELECT out_of_range, last_sent_at, last_value
		FROM sensor_latches
		WHERE device_id = @device_id AND sensor_key = @sensor_key
		FOR UPDATE
	`, args).Scan(&latch.OutOfRange, &latch.LastSentAt, &latch.LastValue)
	if err != nil {
		return nil, err
	}

	newLatch, n := fn(latch, found)

	args["out_of_range"] = newLatch.OutOfRange
	args["last_sent_at"] = newLatch.LastSentAt
	args["last_value"] = newLatch.LastValue

	_, err = tx.Exec(ctx, `
		INSERT INTO sensor_latches (device_id, sensor_key, out_of_range, last_sent_at, last_value)
		VALUES (@device_id, @sensor_key, @out_of_range, @last_sent_at, @last_value)
		ON CONFLICT (device_id, sensor_key) DO UPDATE
		SET out_of_range = EXCLUDED.out_of_range, last_sent_at = EXCLUDED.last_sent_at,
			last_value = EXCLUDED.last_value, modified_on = CURRENT_TIMESTAMP
	`, args)
	if err != nil {
		return nil, err
	}

	if n != nil {
		stored, err := addNotificationTx(ctx, tx, *n)
		if err != nil {
			return nil, err
		}
		n = &stored
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, err
	}

	return n, nil
}

func (s *Storage) GetLatch(ctx context.Context, deviceID, sensorKey string) (types.SensorLatch, error) {
	var latch types.SensorLatch

	err := s.pool.QueryRow(ctx, `
		SELECT out_of_range, last_sent_at, last_value
		FROM sensor_latches
		WHERE device_id = @device_id AND sensor_key = @sensor_key
	`, pgx.NamedArgs{"device_id": deviceID, "sensor_key": sensorKey}).Scan(
		&latch.OutOfRange, &latch.LastSentAt, &latch.LastValue,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.SensorLatch{}, ErrNoRows
		}
		return types.SensorLatch{}, err
	}

	return latch, nil
}

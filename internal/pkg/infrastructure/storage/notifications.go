package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/aquanet/fleet-alerting/pkg/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func notificationArgs(n types.Notification) pgx.NamedArgs {
	return pgx.NamedArgs{
		"notification_id": n.ID,
		"device_id":       n.DeviceID,
		"title":           n.Title,
		"body":            n.Body,
		"severity":        string(n.Severity),
		"type":            n.Type,
		"ts":              n.Timestamp,
		"sensor_key":      n.SensorKey,
		"value":           n.Value,
		"min":             n.Min,
		"max":             n.Max,
	}
}

const insertNotificationSQL = `
	INSERT INTO notifications (notification_id, device_id, title, body, severity, type, ts, sensor_key, value, min, max)
	VALUES (@notification_id, @device_id, @title, @body, @severity, @type, @ts, @sensor_key, @value, @min, @max)
`

func addNotificationTx(ctx context.Context, tx pgx.Tx, n types.Notification) (types.Notification, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	_, err := tx.Exec(ctx, insertNotificationSQL, notificationArgs(n))
	if err != nil {
		return types.Notification{}, err
	}

	return n, nil
}

// AddNotification appends a notification record with a generated id.
func (s *Storage) AddNotification(ctx context.Context, n types.Notification) (types.Notification, error) {
	if n.DeviceID == "" {
		return types.Notification{}, ErrNoID
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	_, err := s.pool.Exec(ctx, insertNotificationSQL, notificationArgs(n))
	if err != nil {
		return types.Notification{}, err
	}

	return n, nil
}

func (s *Storage) GetNotification(ctx context.Context, notificationID string) (types.Notification, error) {
	var n types.Notification
	var sensorKey *string

	err := s.pool.QueryRow(ctx, `
		SELECT notification_id, device_id, title, body, severity, type, ts, sensor_key, value, min, max, pushed_at
		FROM notifications
		WHERE notification_id = @notification_id
	`, pgx.NamedArgs{"notification_id": notificationID}).Scan(
		&n.ID, &n.DeviceID, &n.Title, &n.Body, &n.Severity, &n.Type, &n.Timestamp,
		&sensorKey, &n.Value, &n.Min, &n.Max, &n.PushedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Notification{}, ErrNoRows
		}
		return types.Notification{}, err
	}

	if sensorKey != nil {
		n.SensorKey = *sensorKey
	}

	return n, nil
}

func (s *Storage) QueryNotifications(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Notification], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	args["offset"] = condition.Offset()
	args["limit"] = condition.Limit()

	query := fmt.Sprintf(`
		SELECT notification_id, device_id, title, body, severity, type, ts, sensor_key, value, min, max, pushed_at, count(*) OVER () AS total
		FROM notifications
		WHERE %s
		ORDER BY ts %s
		OFFSET @offset LIMIT @limit
	`, condition.Where(), condition.SortOrder())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Notification]{}, err
	}

	notifications := make([]types.Notification, 0)

	var n types.Notification
	var sensorKey *string
	var total int64

	_, err = pgx.ForEachRow(rows, []any{
		&n.ID, &n.DeviceID, &n.Title, &n.Body, &n.Severity, &n.Type, &n.Timestamp,
		&sensorKey, &n.Value, &n.Min, &n.Max, &n.PushedAt, &total,
	}, func() error {
		m := n
		if sensorKey != nil {
			m.SensorKey = *sensorKey
		}
		notifications = append(notifications, m)
		return nil
	})
	if err != nil {
		return types.Collection[types.Notification]{}, err
	}

	return types.Collection[types.Notification]{
		Data:       notifications,
		Count:      uint64(len(notifications)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}

// MarkNotificationPushed stamps the record after a dispatch attempt.
// Advisory only, it is not a dedup guard.
func (s *Storage) MarkNotificationPushed(ctx context.Context, notificationID string, pushedAt int64) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE notifications
		SET pushed_at = @pushed_at
		WHERE notification_id = @notification_id
	`, pgx.NamedArgs{"notification_id": notificationID, "pushed_at": pushedAt})

	return err
}

// DeleteNotificationsBefore removes at most limit notifications for a
// device with ts at or before the cutoff, oldest first, and reports how
// many went away. Callers loop until the batch comes back short.
func (s *Storage) DeleteNotificationsBefore(ctx context.Context, deviceID string, cutoff int64, limit int) (int, error) {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM notifications
		WHERE notification_id IN (
			SELECT notification_id FROM notifications
			WHERE device_id = @device_id AND ts <= @cutoff
			ORDER BY ts ASC
			LIMIT @limit
		)
	`, pgx.NamedArgs{"device_id": deviceID, "cutoff": cutoff, "limit": limit})
	if err != nil {
		return 0, err
	}

	return int(tag.RowsAffected()), nil
}

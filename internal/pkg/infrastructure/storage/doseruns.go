package storage

import (
	"context"

	"github.com/aquanet/fleet-alerting/pkg/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddDoseRun(ctx context.Context, run types.DoseRun) (types.DoseRun, error) {
	if run.DeviceID == "" {
		return types.DoseRun{}, ErrNoID
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO dose_runs (run_id, device_id, pump, volume_ml, ts)
		VALUES (@run_id, @device_id, @pump, @volume_ml, @ts)
	`, pgx.NamedArgs{
		"run_id":    run.ID,
		"device_id": run.DeviceID,
		"pump":      run.Pump,
		"volume_ml": run.VolumeMl,
		"ts":        run.Timestamp,
	})
	if err != nil {
		return types.DoseRun{}, err
	}

	return run, nil
}

func (s *Storage) DeleteDoseRunsBefore(ctx context.Context, deviceID string, cutoff int64, limit int) (int, error) {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM dose_runs
		WHERE run_id IN (
			SELECT run_id FROM dose_runs
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

func (s *Storage) ListDeviceIDs(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT device_id FROM device_state ORDER BY device_id ASC`)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0)

	var id string
	_, err = pgx.ForEachRow(rows, []any{&id}, func() error {
		ids = append(ids, id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}

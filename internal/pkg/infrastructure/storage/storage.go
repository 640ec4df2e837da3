package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows      = errors.New("no rows in result set")
	ErrQueryRow    = errors.New("could not execute query")
	ErrStoreFailed = errors.New("could not store data")
	ErrNoID        = errors.New("data contains no id")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.createTables(ctx)
}

func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS device_state (
			device_id		TEXT	NOT NULL,
			last_seen		BIGINT	NOT NULL DEFAULT 0,
			online			BOOLEAN	NOT NULL DEFAULT FALSE,
			offline_since	BIGINT	NOT NULL DEFAULT 0,
			online_since	BIGINT	NOT NULL DEFAULT 0,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_device_state PRIMARY KEY (device_id)
		);

		CREATE TABLE IF NOT EXISTS sensor_values (
			device_id	TEXT	NOT NULL,
			sensor_key	TEXT	NOT NULL,
			value		JSONB	NOT NULL,
			ts			BIGINT	NOT NULL DEFAULT 0,
			modified_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_sensor_values PRIMARY KEY (device_id, sensor_key)
		);

		CREATE TABLE IF NOT EXISTS sensor_latches (
			device_id		TEXT				NOT NULL,
			sensor_key		TEXT				NOT NULL,
			out_of_range	BOOLEAN				NOT NULL DEFAULT FALSE,
			last_sent_at	BIGINT				NOT NULL DEFAULT 0,
			last_value		DOUBLE PRECISION	NOT NULL DEFAULT 0,
			modified_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_sensor_latches PRIMARY KEY (device_id, sensor_key)
		);

		CREATE TABLE IF NOT EXISTS push_tokens (
			device_id	TEXT	NOT NULL,
			token		TEXT	NOT NULL,
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_push_tokens PRIMARY KEY (device_id, token)
		);

		CREATE TABLE IF NOT EXISTS notifications (
			notification_id	TEXT	NOT NULL,
			device_id		TEXT	NOT NULL,
			title			TEXT	NOT NULL,
			body			TEXT	NOT NULL,
			severity		TEXT	NOT NULL,
			type			TEXT	NOT NULL,
			ts				BIGINT	NOT NULL,
			sensor_key		TEXT	NULL,
			value			DOUBLE PRECISION NULL,
			min				DOUBLE PRECISION NULL,
			max				DOUBLE PRECISION NULL,
			pushed_at		BIGINT	NOT NULL DEFAULT 0,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_notifications PRIMARY KEY (notification_id)
		);

		CREATE TABLE IF NOT EXISTS dose_runs (
			run_id		TEXT	NOT NULL,
			device_id	TEXT	NOT NULL,
			pump		TEXT	NOT NULL,
			volume_ml	DOUBLE PRECISION NOT NULL DEFAULT 0,
			ts			BIGINT	NOT NULL,
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_dose_runs PRIMARY KEY (run_id)
		);

		CREATE INDEX IF NOT EXISTS notifications_device_ts_idx ON notifications (device_id, ts);
		CREATE INDEX IF NOT EXISTS dose_runs_device_ts_idx ON dose_runs (device_id, ts);
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) Close() {
	s.pool.Close()
}

package storage

import (
	"context"

	"github.com/jackc/pgx/v5"
)

func (s *Storage) RegisterPushToken(ctx context.Context, deviceID, token string) error {
	if token == "" {
		return ErrNoID
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO push_tokens (device_id, token)
		VALUES (@device_id, @token)
		ON CONFLICT (device_id, token) DO NOTHING
	`, pgx.NamedArgs{"device_id": deviceID, "token": token})

	return err
}

func (s *Storage) GetPushTokens(ctx context.Context, deviceID string) ([]string, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT token FROM push_tokens
		WHERE device_id = @device_id
		ORDER BY created_on ASC
	`, pgx.NamedArgs{"device_id": deviceID})
	if err != nil {
		return nil, err
	}

	tokens := make([]string, 0)

	var token string
	_, err = pgx.ForEachRow(rows, []any{&token}, func() error {
		tokens = append(tokens, token)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tokens, nil
}

func (s *Storage) DeletePushToken(ctx context.Context, deviceID, token string) error {
	_, err := s.pool.Exec(ctx, `
		DELETE FROM push_tokens
		WHERE device_id = @device_id AND token = @token
	`, pgx.NamedArgs{"device_id": deviceID, "token": token})

	return err
}

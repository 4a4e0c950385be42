package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
)

// SettingRepository handles per-user settings. Values are stored as strings,
// callers normalize them on read.
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// UserSettings returns the stored settings of a user, empty map if none
func (r *SettingRepository) UserSettings(ctx context.Context, userID string) (map[string]string, error) {
	var rows []struct {
		Key   string `db:"setting_key"`
		Value string `db:"setting_value"`
	}
	err := r.db.SelectContext(ctx, &rows,
		"SELECT setting_key, setting_value FROM user_prompt_settings WHERE user_id = ?", userID)
	if err != nil {
		return nil, fmt.Errorf("get user settings: %w", err)
	}

	res := make(map[string]string, len(rows))
	for _, row := range rows {
		res[row.Key] = row.Value
	}
	return res, nil
}

// SaveUserSettings upserts every given key in one transaction, either all land or none
func (r *SettingRepository) SaveUserSettings(ctx context.Context, userID string, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	err := withLockRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		now := time.Now().UTC()
		for _, k := range keys {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO user_prompt_settings (user_id, setting_key, setting_value, updated_at)
				VALUES (?, ?, ?, ?)
				ON CONFLICT(user_id, setting_key) DO UPDATE SET
					setting_value = excluded.setting_value,
					updated_at = excluded.updated_at`,
				userID, k, values[k], now)
			if err != nil {
				return fmt.Errorf("upsert %s: %w", k, err)
			}
		}
		return tx.Commit()
	})
	if err != nil {
		return fmt.Errorf("save user settings: %w", err)
	}
	return nil
}

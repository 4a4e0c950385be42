package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/newsdesk/newsdesk/pkg/domain"
)

// ErrNotFound is returned when a history record doesn't exist
var ErrNotFound = errors.New("not found")

// HistoryRepository handles processing history records
type HistoryRepository struct {
	db *sqlx.DB
}

type historyRow struct {
	ID            int64        `db:"id"`
	UserID        string       `db:"user_id"`
	OriginalText  string       `db:"original_text"`
	ProcessedText string       `db:"processed_text"`
	SettingsUsed  string       `db:"settings_used"`
	Status        string       `db:"status"`
	ErrorMessage  string       `db:"error_message"`
	DurationMs    int64        `db:"processing_time_ms"`
	CreatedAt     time.Time    `db:"created_at"`
	CompletedAt   sql.NullTime `db:"completed_at"`
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create records a pending processing of the given text and returns its id
func (r *HistoryRepository) Create(ctx context.Context, userID, originalText string, settings domain.Settings) (int64, error) {
	used, err := json.Marshal(settings)
	if err != nil {
		return 0, fmt.Errorf("marshal settings: %w", err)
	}

	var id int64
	err = withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, `
			INSERT INTO processing_history (user_id, original_text, settings_used, status, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			userID, originalText, string(used), string(domain.StatusPending), time.Now().UTC())
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("create history record: %w", err)
	}
	return id, nil
}

// Complete marks the record completed with the processed text
func (r *HistoryRepository) Complete(ctx context.Context, id int64, processedText string, duration time.Duration) error {
	return r.finish(ctx, id, domain.StatusCompleted, processedText, "", duration)
}

// Fail marks the record failed with the error message
func (r *HistoryRepository) Fail(ctx context.Context, id int64, errMsg string, duration time.Duration) error {
	return r.finish(ctx, id, domain.StatusFailed, "", errMsg, duration)
}

func (r *HistoryRepository) finish(ctx context.Context, id int64, status domain.ProcessingStatus, processed, errMsg string, duration time.Duration) error {
	var affected int64
	err := withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, `
			UPDATE processing_history
			SET status = ?, processed_text = ?, error_message = ?, processing_time_ms = ?, completed_at = ?
			WHERE id = ?`,
			string(status), processed, errMsg, duration.Milliseconds(), time.Now().UTC(), id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("update history record %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("history record %d: %w", id, ErrNotFound)
	}
	return nil
}

// List returns up to limit records of the user, newest first
func (r *HistoryRepository) List(ctx context.Context, userID string, limit int) ([]domain.HistoryRecord, error) {
	var rows []historyRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, user_id, original_text, processed_text, settings_used, status,
		       error_message, processing_time_ms, created_at, completed_at
		FROM processing_history
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	res := make([]domain.HistoryRecord, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

// Statistics summarizes the user's records, the average covers completed ones only
func (r *HistoryRepository) Statistics(ctx context.Context, userID string) (*domain.Statistics, error) {
	var stats domain.Statistics
	err := r.db.QueryRowxContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0),
			COALESCE(AVG(CASE WHEN status = 'completed' THEN processing_time_ms END), 0)
		FROM processing_history WHERE user_id = ?`, userID).
		Scan(&stats.Total, &stats.Completed, &stats.Failed, &stats.Pending, &stats.AvgDurationMs)
	if err != nil {
		return nil, fmt.Errorf("get statistics: %w", err)
	}
	return &stats, nil
}

// Prune deletes records created before the cutoff and returns how many were removed
func (r *HistoryRepository) Prune(ctx context.Context, before time.Time) (int64, error) {
	var removed int64
	err := withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "DELETE FROM processing_history WHERE created_at < ?", before.UTC())
		if err != nil {
			return err
		}
		removed, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("prune history: %w", err)
	}
	return removed, nil
}

func (row historyRow) toDomain() domain.HistoryRecord {
	rec := domain.HistoryRecord{
		ID:            row.ID,
		OriginalText:  row.OriginalText,
		ProcessedText: row.ProcessedText,
		Status:        domain.ProcessingStatus(row.Status),
		ErrorMessage:  row.ErrorMessage,
		DurationMs:    row.DurationMs,
		CreatedAt:     row.CreatedAt,
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(row.SettingsUsed), &raw); err == nil {
		rec.SettingsUsed = make(domain.Settings, len(raw))
		for k, v := range raw {
			if n, ok := v.(float64); ok {
				rec.SettingsUsed[k] = domain.NormalizeValue(n) // json numbers come back as float64
				continue
			}
			rec.SettingsUsed[k] = v
		}
	}
	if row.CompletedAt.Valid {
		t := row.CompletedAt.Time
		rec.CompletedAt = &t
	}
	return rec
}

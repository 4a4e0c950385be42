package server

import (
	"context"
	"time"

	"github.com/newsdesk/newsdesk/pkg/domain"
	"github.com/newsdesk/newsdesk/pkg/repository"
)

// RepositoryAdapter adapts repositories to server.Database interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// Schema returns active rules with options
func (r *RepositoryAdapter) Schema(ctx context.Context) (domain.Schema, error) {
	return r.repos.Rule.Schema(ctx)
}

// UserSettings returns stored settings of the user
func (r *RepositoryAdapter) UserSettings(ctx context.Context, userID string) (map[string]string, error) {
	return r.repos.Setting.UserSettings(ctx, userID)
}

// SaveUserSettings stores settings of the user
func (r *RepositoryAdapter) SaveUserSettings(ctx context.Context, userID string, values map[string]string) error {
	return r.repos.Setting.SaveUserSettings(ctx, userID, values)
}

// CreateRecord creates a pending history record
func (r *RepositoryAdapter) CreateRecord(ctx context.Context, userID, text string, settings domain.Settings) (int64, error) {
	return r.repos.History.Create(ctx, userID, text, settings)
}

// CompleteRecord marks a history record completed
func (r *RepositoryAdapter) CompleteRecord(ctx context.Context, id int64, processedText string, duration time.Duration) error {
	return r.repos.History.Complete(ctx, id, processedText, duration)
}

// FailRecord marks a history record failed
func (r *RepositoryAdapter) FailRecord(ctx context.Context, id int64, errMsg string, duration time.Duration) error {
	return r.repos.History.Fail(ctx, id, errMsg, duration)
}

// History returns the newest records of the user
func (r *RepositoryAdapter) History(ctx context.Context, userID string, limit int) ([]domain.HistoryRecord, error) {
	return r.repos.History.List(ctx, userID, limit)
}

// Statistics returns processing statistics of the user
func (r *RepositoryAdapter) Statistics(ctx context.Context, userID string) (*domain.Statistics, error) {
	return r.repos.History.Statistics(ctx, userID)
}

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdesk/newsdesk/pkg/domain"
	"github.com/newsdesk/newsdesk/pkg/repository"
	"github.com/newsdesk/newsdesk/server/mocks"
)

func setupAdapter(t *testing.T) *RepositoryAdapter {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	return NewRepositoryAdapter(repos)
}

func TestRepositoryAdapter_Settings(t *testing.T) {
	adapter := setupAdapter(t)
	ctx := context.Background()

	schema, err := adapter.Schema(ctx)
	require.NoError(t, err)
	assert.Len(t, schema, len(domain.DefaultSchema()))

	stored, err := adapter.UserSettings(ctx, "editor")
	require.NoError(t, err)
	assert.Empty(t, stored)

	require.NoError(t, adapter.SaveUserSettings(ctx, "editor", map[string]string{"writingStyle": "neutral"}))
	stored, err = adapter.UserSettings(ctx, "editor")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"writingStyle": "neutral"}, stored)
}

func TestRepositoryAdapter_History(t *testing.T) {
	adapter := setupAdapter(t)
	ctx := context.Background()

	okID, err := adapter.CreateRecord(ctx, "editor", "birinci", domain.Settings{"tagCount": 3})
	require.NoError(t, err)
	require.NoError(t, adapter.CompleteRecord(ctx, okID, "sonuç", 300*time.Millisecond))

	failID, err := adapter.CreateRecord(ctx, "editor", "ikinci", domain.Settings{})
	require.NoError(t, err)
	require.NoError(t, adapter.FailRecord(ctx, failID, "timeout", time.Second))

	records, err := adapter.History(ctx, "editor", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, failID, records[0].ID)
	assert.Equal(t, domain.StatusFailed, records[0].Status)
	assert.Equal(t, "sonuç", records[1].ProcessedText)
	assert.Equal(t, 3, records[1].SettingsUsed["tagCount"])

	stats, err := adapter.Statistics(ctx, "editor")
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Completed)
	assert.Equal(t, int64(1), stats.Failed)
	assert.InDelta(t, 300.0, stats.AvgDurationMs, 0.001)
}

// TestRepositoryAdapter_ServerRoundTrip saves settings through the API and builds a prompt from them
func TestRepositoryAdapter_ServerRoundTrip(t *testing.T) {
	adapter := setupAdapter(t)
	srv := New(testConfig(), adapter, &mocks.RewriterMock{}, "1.0.0", false)

	code, _ := do(t, srv, http.MethodPost, "/api/prompt/user-settings",
		`{"settings":{"outputFormat":"plain","removePlateInfo":false}}`, "X-User-ID", "editor")
	require.Equal(t, http.StatusOK, code)

	code, resp := do(t, srv, http.MethodGet, "/api/prompt/user-settings", "", "X-User-ID", "editor")
	require.Equal(t, http.StatusOK, code)
	var got struct {
		Settings map[string]any `json:"settings"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, "plain", got.Settings["outputFormat"])
	assert.Equal(t, "False", got.Settings["removePlateInfo"])

	code, resp = do(t, srv, http.MethodPost, "/api/prompt/build-complete-prompt", `{"news_text":"haber"}`, "X-User-ID", "editor")
	require.Equal(t, http.StatusOK, code)
	var built struct {
		SettingsUsed map[string]any `json:"settings_used"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &built))
	assert.Equal(t, "plain", built.SettingsUsed["outputFormat"])
	assert.Equal(t, false, built.SettingsUsed["removePlateInfo"])

	// other users keep defaults
	code, resp = do(t, srv, http.MethodGet, "/api/prompt/user-settings", "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, "json", got.Settings["outputFormat"])
}

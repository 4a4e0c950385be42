package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdesk/newsdesk/pkg/domain"
)

func TestClient_FetchConfig(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/prompt/config", r.URL.Path)
		assert.Equal(t, "user1", r.Header.Get("X-User-ID"))
		_, _ = w.Write([]byte(`{"success":true,"data":{
			"rules":{
				"tagCount":{"rule_key":"tagCount","rule_name":"Etiket Sayısı","rule_type":"range","rule_category":"output",
					"default_value":"5","display_order":2,"validation_rules":{"min":1,"max":10}},
				"outputFormat":{"rule_key":"outputFormat","rule_name":"Çıktı Formatı","rule_type":"select","rule_category":"output",
					"default_value":"json","display_order":1}
			},
			"rule_options":{"outputFormat":[{"option_key":"xml","option_label":"XML","display_order":2},
				{"option_key":"json","option_label":"JSON","display_order":1}]}
		}}`))
	}))
	defer ts.Close()

	client := New(Config{BaseURL: ts.URL + "/", UserID: "user1"})
	schema, err := client.FetchConfig(context.Background())
	require.NoError(t, err)
	require.Len(t, schema, 2)
	assert.Equal(t, "outputFormat", schema[0].Key)
	assert.Equal(t, "json", schema[0].Options[0].Key)
	assert.Equal(t, "tagCount", schema[1].Key)
	require.NotNil(t, schema[1].Bounds)
	assert.Equal(t, 10, *schema[1].Bounds.Max)
	assert.Equal(t, domain.Settings{"outputFormat": "json", "tagCount": 5}, schema.Defaults())
}

func TestClient_FetchUserSettings(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"config_id":1,"settings":{
			"removeCompanyInfo":"True","removePlateInfo":"false","tagCount":"7","writingStyle":"neutral",
			"customInstructions":"007","extra":"kept"}}}`))
	}))
	defer ts.Close()

	settings, err := New(Config{BaseURL: ts.URL}).FetchUserSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{
		"removeCompanyInfo":  "True",
		"removePlateInfo":    "false",
		"tagCount":           "7",
		"writingStyle":       "neutral",
		"customInstructions": "007",
		"extra":              "kept",
	}, settings, "values are passed through as sent")
}

func TestClient_SaveUserSettings(t *testing.T) {
	var received map[string]map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		_, _ = w.Write([]byte(`{"success":true,"message":"Settings saved successfully"}`))
	}))
	defer ts.Close()

	err := New(Config{BaseURL: ts.URL}).SaveUserSettings(context.Background(), domain.Settings{"tagCount": 3, "removePlateInfo": false})
	require.NoError(t, err)
	assert.InDelta(t, 3, received["settings"]["tagCount"], 0.001)
	assert.Equal(t, false, received["settings"]["removePlateInfo"])
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantNetwork  bool
		wantProtocol bool
		wantMsg      string
	}{
		{name: "server error with message", status: 500, body: `{"success":false,"error":"db down"}`, wantNetwork: true, wantMsg: "db down"},
		{name: "not found plain", status: 404, body: `nope`, wantNetwork: true, wantMsg: "Not Found"},
		{name: "success false", status: 200, body: `{"success":false,"error":"No active configuration found"}`,
			wantProtocol: true, wantMsg: "No active configuration found"},
		{name: "malformed body", status: 200, body: `{not json`, wantProtocol: true},
		{name: "missing data", status: 200, body: `{"success":true}`, wantProtocol: true, wantMsg: "missing data"},
		{name: "missing settings", status: 200, body: `{"success":true,"data":{}}`, wantProtocol: true, wantMsg: "missing settings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			_, err := New(Config{BaseURL: ts.URL}).FetchUserSettings(context.Background())
			require.Error(t, err)

			var netErr *NetworkError
			var protoErr *ProtocolError
			assert.Equal(t, tt.wantNetwork, errors.As(err, &netErr), "network error: %v", err)
			assert.Equal(t, tt.wantProtocol, errors.As(err, &protoErr), "protocol error: %v", err)
			if tt.wantNetwork {
				assert.Equal(t, tt.status, netErr.StatusCode)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := New(Config{BaseURL: url}).FetchConfig(context.Background())
	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, "fetch config", netErr.Op)
	assert.Equal(t, 0, netErr.StatusCode)
}

func TestClient_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer ts.Close()

	err := New(Config{BaseURL: ts.URL, Timeout: 20 * time.Millisecond}).SaveUserSettings(context.Background(), domain.Settings{})
	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr), "timeout is a network error, got %v", err)
}

func TestClient_BuildCompletePrompt(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Settings map[string]any `json:"settings"`
			NewsText string         `json:"news_text"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "haber", req.NewsText)
		assert.Equal(t, "xml", req.Settings["outputFormat"])
		_, _ = w.Write([]byte(`{"success":true,"data":{"prompt":"PROMPT"}}`))
	}))
	defer ts.Close()

	res, err := New(Config{BaseURL: ts.URL}).BuildCompletePrompt(context.Background(), domain.Settings{"outputFormat": "xml"}, "haber")
	require.NoError(t, err)
	assert.Equal(t, "PROMPT", res)
}

func TestClient_ProcessNewsHistoryStatistics(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/process-news", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"processing_id":12,"title":"Başlık","tags":["a","b"],"format":"json"}}`))
	})
	mux.HandleFunc("GET /api/history", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1,"status":"completed","settings_used":{"tagCount":3}}]}`))
	})
	mux.HandleFunc("GET /api/statistics", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"total":4,"completed":3,"failed":1,"avg_processing_time_ms":120.5}}`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := New(Config{BaseURL: ts.URL})
	ctx := context.Background()

	res, err := client.ProcessNews(ctx, "haber", domain.Settings{"tagCount": 3})
	require.NoError(t, err)
	assert.Equal(t, int64(12), res.ProcessingID)
	assert.Equal(t, []string{"a", "b"}, res.Tags)

	hist, err := client.History(ctx, 5)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, domain.StatusCompleted, hist[0].Status)

	stats, err := client.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Total)
	assert.InDelta(t, 120.5, stats.AvgDurationMs, 0.001)
}

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/newsdesk/newsdesk/pkg/domain"
	"github.com/newsdesk/newsdesk/pkg/prompt"
	"github.com/newsdesk/newsdesk/pkg/source"
)

// response is the envelope of every API answer
type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type configResponse struct {
	Rules       map[string]domain.RuleDefinition `json:"rules"`
	RuleOptions map[string][]domain.RuleOption   `json:"rule_options"`
}

type settingsRequest struct {
	Settings map[string]any `json:"settings"`
}

type promptRequest struct {
	Settings map[string]any `json:"settings"`
	NewsText string         `json:"news_text"`
}

type processRequest struct {
	NewsText  string         `json:"news_text"`
	Settings  map[string]any `json:"settings"`
	Timestamp *time.Time     `json:"timestamp,omitempty"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderData(w, r, status)
}

// promptConfigHandler returns rule definitions and their options, options keyed separately
func (s *Server) promptConfigHandler(w http.ResponseWriter, r *http.Request) {
	schema, err := s.db.Schema(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get rules: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if len(schema) == 0 {
		renderError(w, r, errors.New("no active configuration found"), http.StatusNotFound)
		return
	}

	resp := configResponse{
		Rules:       make(map[string]domain.RuleDefinition, len(schema)),
		RuleOptions: map[string][]domain.RuleOption{},
	}
	for _, rule := range schema {
		if len(rule.Options) > 0 {
			resp.RuleOptions[rule.Key] = rule.Options
		}
		rule.Options = nil
		resp.Rules[rule.Key] = rule
	}
	renderData(w, r, resp)
}

// getUserSettingsHandler returns the user's settings for every rule, defaults fill the gaps.
// Values are sent in their stored string form.
func (s *Server) getUserSettingsHandler(w http.ResponseWriter, r *http.Request) {
	schema, stored, err := s.loadSettings(r)
	if err != nil {
		log.Printf("[ERROR] failed to load user settings: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	complete := make(map[string]any, len(schema))
	for _, rule := range schema {
		if v, ok := stored[rule.Key]; ok {
			complete[rule.Key] = v
			continue
		}
		complete[rule.Key] = rule.Default
	}
	renderData(w, r, map[string]any{"settings": complete})
}

// saveUserSettingsHandler validates known keys and stores every value as a string
func (s *Server) saveUserSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}
	if req.Settings == nil {
		renderError(w, r, errors.New("settings data required"), http.StatusBadRequest)
		return
	}

	schema, err := s.db.Schema(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get rules: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	normalized := schema.Normalize(req.Settings)
	values := make(map[string]string, len(normalized))
	for key, v := range normalized {
		if rule, ok := schema.Rule(key); ok {
			if err := rule.Validate(v); err != nil {
				renderError(w, r, err, http.StatusBadRequest)
				return
			}
		}
		values[key] = storedValue(v)
	}

	userID := s.userID(r)
	if err := s.db.SaveUserSettings(r.Context(), userID, values); err != nil {
		log.Printf("[ERROR] failed to save settings of %s: %v", userID, err)
		renderError(w, r, errors.New("failed to save settings"), http.StatusInternalServerError)
		return
	}
	log.Printf("[DEBUG] saved %d settings of %s: %s", len(values), userID, strings.Join(sortedKeys(values), ","))
	renderJSON(w, r, http.StatusOK, response{Success: true, Data: map[string]any{"message": "settings saved"}})
}

// buildPromptHandler assembles the prompt from request settings, or from the stored ones if absent
func (s *Server) buildPromptHandler(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}

	settings, err := s.effectiveSettings(r, req.Settings)
	if err != nil {
		log.Printf("[ERROR] failed to resolve settings: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderData(w, r, map[string]any{
		"prompt":        prompt.Build(req.NewsText, settings),
		"settings_used": settings,
	})
}

// processNewsHandler validates and cleans the article, records it and rewrites it with the LLM
func (s *Server) processNewsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}
	// length limit applies to the cleaned text, the raw body is bounded by the size limiter
	text := source.CleanText(req.NewsText)
	if err := source.ValidateText(text); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	settings, err := s.effectiveSettings(r, req.Settings)
	if err != nil {
		log.Printf("[ERROR] failed to resolve settings: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	userID := s.userID(r)
	id, err := s.db.CreateRecord(ctx, userID, text, settings)
	if err != nil {
		log.Printf("[ERROR] failed to create history record: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	start := time.Now()
	format := prompt.Format(settings)
	res, err := s.rewriter.Rewrite(ctx, prompt.Build(text, settings), format)
	duration := time.Since(start)
	if err != nil {
		log.Printf("[WARN] processing %d failed: %v", id, err)
		if ferr := s.db.FailRecord(ctx, id, err.Error(), duration); ferr != nil {
			log.Printf("[ERROR] failed to mark record %d failed: %v", id, ferr)
		}
		renderError(w, r, fmt.Errorf("processing failed: %w", err), http.StatusBadGateway)
		return
	}

	if err := s.db.CompleteRecord(ctx, id, res.ProcessedText, duration); err != nil {
		log.Printf("[ERROR] failed to complete record %d: %v", id, err)
	}

	res.ProcessingID = id
	res.DurationMs = duration.Milliseconds()
	res.Timestamp = time.Now().UTC()
	log.Printf("[INFO] processed article %d for %s in %v, format %s", id, userID, duration, format)
	renderData(w, r, res)
}

// historyHandler returns the newest records, limit defaults to and is capped by the configured maximum
func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	limit := s.config.GetHistoryLimit()
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			renderError(w, r, fmt.Errorf("invalid limit %q", limitStr), http.StatusBadRequest)
			return
		}
		if n < limit {
			limit = n
		}
	}

	records, err := s.db.History(r.Context(), s.userID(r), limit)
	if err != nil {
		log.Printf("[ERROR] failed to get history: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []domain.HistoryRecord{}
	}
	renderData(w, r, records)
}

func (s *Server) statisticsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.Statistics(r.Context(), s.userID(r))
	if err != nil {
		log.Printf("[ERROR] failed to get statistics: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderData(w, r, stats)
}

// loadSettings fetches the rule schema and the user's stored values
func (s *Server) loadSettings(r *http.Request) (domain.Schema, map[string]string, error) {
	schema, err := s.db.Schema(r.Context())
	if err != nil {
		return nil, nil, fmt.Errorf("get rules: %w", err)
	}
	stored, err := s.db.UserSettings(r.Context(), s.userID(r))
	if err != nil {
		return nil, nil, fmt.Errorf("get user settings: %w", err)
	}
	return schema, stored, nil
}

// effectiveSettings merges schema defaults with the given settings, or with the stored ones if none given
func (s *Server) effectiveSettings(r *http.Request, given map[string]any) (domain.Settings, error) {
	schema, err := s.db.Schema(r.Context())
	if err != nil {
		return nil, fmt.Errorf("get rules: %w", err)
	}

	res := schema.Defaults()
	if given == nil {
		stored, err := s.db.UserSettings(r.Context(), s.userID(r))
		if err != nil {
			return nil, fmt.Errorf("get user settings: %w", err)
		}
		given = make(map[string]any, len(stored))
		for k, v := range stored {
			given[k] = v
		}
	}
	res.Apply(domain.Changes(schema.Normalize(given)))
	return res, nil
}

// userID takes the user from X-User-ID header, falls back to the configured default user
func (s *Server) userID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get("X-User-ID")); id != "" {
		return id
	}
	return s.config.GetDefaultUser()
}

// storedValue converts a normalized value into its stored string form, booleans as True/False
func storedValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		if val {
			return "True"
		}
		return "False"
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			items = append(items, storedValue(item))
		}
		return strings.Join(items, ",")
	default:
		return fmt.Sprint(val)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderData sends successful envelope with data
func renderData(w http.ResponseWriter, r *http.Request, data any) {
	renderJSON(w, r, http.StatusOK, response{Success: true, Data: data})
}

// renderError sends error envelope
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, response{Success: false, Error: errMsg})
}

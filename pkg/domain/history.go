package domain

import "time"

// ProcessingStatus is the lifecycle state of a processing record
type ProcessingStatus string

// enum of processing statuses
const (
	StatusPending   ProcessingStatus = "pending"
	StatusCompleted ProcessingStatus = "completed"
	StatusFailed    ProcessingStatus = "failed"
)

// ProcessResult is the rewritten article produced by the process-news endpoint.
// Structured fields are filled when the model output could be parsed in the requested
// format, ProcessedText always holds the raw output.
type ProcessResult struct {
	ProcessingID  int64     `json:"processing_id"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary"`
	Body          string    `json:"body"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	Format        string    `json:"format"`
	ProcessedText string    `json:"processed_text"`
	DurationMs    int64     `json:"processing_time_ms"`
	Timestamp     time.Time `json:"timestamp"`
}

// HistoryRecord is one processed article kept by the backend
type HistoryRecord struct {
	ID            int64            `json:"id"`
	OriginalText  string           `json:"original_text"`
	ProcessedText string           `json:"processed_text"`
	SettingsUsed  Settings         `json:"settings_used"`
	Status        ProcessingStatus `json:"status"`
	ErrorMessage  string           `json:"error_message,omitempty"`
	DurationMs    int64            `json:"processing_time_ms"`
	CreatedAt     time.Time        `json:"created_at"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty"`
}

// Statistics summarizes a user's processing history
type Statistics struct {
	Total         int64   `json:"total"`
	Completed     int64   `json:"completed"`
	Failed        int64   `json:"failed"`
	Pending       int64   `json:"pending"`
	AvgDurationMs float64 `json:"avg_processing_time_ms"`
}

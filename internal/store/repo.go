package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the reader's progress at a point in time.
type SnapshotData struct {
	Version int `json:"version"`

	// Level is the active comprehension level.
	Level string `json:"level,omitempty"`

	// QuizSessions counts completed quiz sessions.
	QuizSessions int `json:"quiz_sessions,omitempty"`

	// ChatTurns counts total chat exchanges.
	ChatTurns int `json:"chat_turns,omitempty"`
}

// Snapshot represents a point-in-time capture of reader progress.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages reader progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// ChatEventData captures one chat exchange for persistence.
type ChatEventData struct {
	SessionID   string
	StudentText string
	ReplyText   string
	Source      string
	Intent      string
	Confidence  float64
	Level       string
}

// QuizAnswerEventData captures one graded quiz answer.
type QuizAnswerEventData struct {
	SessionID     string
	QuestionID    int
	Prompt        string
	StudentAnswer string
	Correct       bool
	Skipped       bool
	Category      string
	Difficulty    string
}

// SessionEventData captures a session start or end.
type SessionEventData struct {
	SessionID      string
	Mode           string // "chat" or "quiz"
	Action         string // "start" or "end"
	Turns          int
	CorrectAnswers int
	SkippedAnswers int
	DurationSecs   int
	Level          string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a persisted LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates LLM usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// QuizCategoryStats aggregates quiz accuracy for one question category.
type QuizCategoryStats struct {
	Category string
	Answered int
	Correct  int
	Skipped  int
}

// SessionSummary aggregates lifetime usage per session mode.
type SessionSummary struct {
	Mode      string
	Sessions  int
	Turns     int
	TotalSecs int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendChatEvent records one chat exchange.
	AppendChatEvent(ctx context.Context, data ChatEventData) error

	// AppendQuizAnswer records one graded quiz answer.
	AppendQuizAnswer(ctx context.Context, data QuizAnswerEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QuizStatsByCategory aggregates quiz accuracy per question category.
	QuizStatsByCategory(ctx context.Context) ([]QuizCategoryStats, error)

	// SessionSummaries aggregates completed sessions per mode.
	SessionSummaries(ctx context.Context) ([]SessionSummary, error)

	// QueryLLMEvents returns recent LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates LLM usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates LLM usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

package store

import (
	"context"
	"time"
)

// Snapshot represents a point-in-time capture of progress state. Data holds
// the state as stored — the progress package owns the typed shape and decodes
// each field independently so partial corruption stays contained.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      map[string]any
}

// SnapshotRepo manages progress state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData captures one completed practice session.
type SessionEventData struct {
	ResultID       string
	Subject        string
	Mode           string
	Score          int
	Total          int
	MissedTopicIDs []string
}

// SessionEventRecord is a stored session event with its ordering fields.
type SessionEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// ReviewEventData captures a topic being marked reviewed.
type ReviewEventData struct {
	TopicID string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a completed session.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendReviewEvent records a topic-reviewed action.
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error

	// QuerySessionEvents returns session events newest first, up to limit
	// (0 = unlimited).
	QuerySessionEvents(ctx context.Context, limit int) ([]SessionEventRecord, error)
}

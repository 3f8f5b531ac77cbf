package progress

import "time"

// SessionResult records one completed practice session. Results are
// immutable once created and kept newest first in the history.
type SessionResult struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"`
	Subject        string    `json:"subject"`
	Mode           string    `json:"mode"`
	Score          int       `json:"score"`
	Total          int       `json:"total"`
	MissedTopicIDs []string  `json:"missedTopicIds,omitempty"`
}

// State is the full learner-progress aggregate.
type State struct {
	ReviewedTopicIDs map[string]bool
	SessionHistory   []SessionResult
	LastStudyDate    *time.Time
	CurrentStreak    int
	WrongCounts      map[string]int

	// missOrder tracks the order topics first entered WrongCounts. Go map
	// iteration is unordered, so weak-topic ties need an explicit record of
	// insertion order to stay stable across runs.
	missOrder []string
}

func newState() *State {
	return &State{
		ReviewedTopicIDs: make(map[string]bool),
		WrongCounts:      make(map[string]int),
	}
}

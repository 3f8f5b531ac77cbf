package progress

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/faraz/beestudy/internal/store"
)

// keepSnapshots bounds how many historical snapshots survive pruning.
const keepSnapshots = 10

// Service owns the learner-progress aggregate. All mutations persist a
// fresh snapshot and append a domain event before returning. Persistence
// failures are swallowed: the in-memory state stays authoritative for the
// running process and the next successful save catches up.
type Service struct {
	state  *State
	repo   store.SnapshotRepo
	events store.EventRepo
	subs   []func()
	now    func() time.Time
}

// NewService creates a progress service, loading state from the latest
// snapshot. A missing or partially corrupt snapshot yields a zero state
// for the affected fields.
func NewService(ctx context.Context, repo store.SnapshotRepo, events store.EventRepo) *Service {
	s := &Service{
		state:  newState(),
		repo:   repo,
		events: events,
		now:    time.Now,
	}

	if repo != nil {
		snap, err := repo.Latest(ctx)
		if err == nil && snap != nil {
			s.state = decodeState(snap.Data)
		}
	}

	return s
}

// Subscribe registers a callback invoked after every state mutation.
func (s *Service) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

func (s *Service) notify() {
	for _, fn := range s.subs {
		fn()
	}
}

// MarkReviewed inserts topicID into the reviewed set. Repeated calls for
// the same topic are no-ops apart from the streak update.
func (s *Service) MarkReviewed(ctx context.Context, topicID string) {
	if !s.state.ReviewedTopicIDs[topicID] {
		s.state.ReviewedTopicIDs[topicID] = true
		if s.events != nil {
			_ = s.events.AppendReviewEvent(ctx, store.ReviewEventData{TopicID: topicID})
		}
	}

	s.touchStreak()
	s.persist(ctx)
	s.notify()
}

// IsReviewed reports whether topicID has ever been marked reviewed.
func (s *Service) IsReviewed(topicID string) bool {
	return s.state.ReviewedTopicIDs[topicID]
}

// ReviewedCount returns the number of distinct reviewed topics.
func (s *Service) ReviewedCount() int {
	return len(s.state.ReviewedTopicIDs)
}

// RecordSession folds a completed session into the aggregate: a fresh
// SessionResult is prepended to the history, every missed topic increments
// its wrong count, and the streak updates.
func (s *Service) RecordSession(ctx context.Context, subject, mode string, score, total int, missedTopicIDs []string) SessionResult {
	result := SessionResult{
		ID:             uuid.NewString(),
		Date:           s.now(),
		Subject:        subject,
		Mode:           mode,
		Score:          score,
		Total:          total,
		MissedTopicIDs: append([]string(nil), missedTopicIDs...),
	}

	s.state.SessionHistory = append([]SessionResult{result}, s.state.SessionHistory...)

	for _, id := range missedTopicIDs {
		if _, seen := s.state.WrongCounts[id]; !seen {
			s.state.missOrder = append(s.state.missOrder, id)
		}
		s.state.WrongCounts[id]++
	}

	s.touchStreak()

	if s.events != nil {
		_ = s.events.AppendSessionEvent(ctx, store.SessionEventData{
			ResultID:       result.ID,
			Subject:        subject,
			Mode:           mode,
			Score:          score,
			Total:          total,
			MissedTopicIDs: missedTopicIDs,
		})
	}

	s.persist(ctx)
	s.notify()
	return result
}

// touchStreak applies the daily-streak rule. The day difference is taken
// against the previous lastStudyDate before it is overwritten: same day
// leaves the streak alone, the next day increments it, and any larger gap
// resets it to 1. The streak never drops to 0 once an action exists.
func (s *Service) touchStreak() {
	now := s.now()

	switch {
	case s.state.LastStudyDate == nil:
		s.state.CurrentStreak = 1
	default:
		switch dayDiff(*s.state.LastStudyDate, now) {
		case 0:
			// Same-day repeat, streak unchanged.
		case 1:
			s.state.CurrentStreak++
		default:
			s.state.CurrentStreak = 1
		}
	}

	s.state.LastStudyDate = &now
}

// dayDiff returns the whole-day difference between two timestamps in
// local time. Rounding absorbs DST shifts of an hour either way.
func dayDiff(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	fromDay := time.Date(fy, fm, fd, 0, 0, 0, 0, time.Local)
	toDay := time.Date(ty, tm, td, 0, 0, 0, 0, time.Local)
	return int(toDay.Sub(fromDay).Round(24*time.Hour) / (24 * time.Hour))
}

// CurrentStreak returns the consecutive-day study streak.
func (s *Service) CurrentStreak() int {
	return s.state.CurrentStreak
}

// LastStudyDate returns the time of the most recent study action, or nil.
func (s *Service) LastStudyDate() *time.Time {
	return s.state.LastStudyDate
}

// History returns the most recent session results, newest first. A limit
// of 0 or less returns the full history.
func (s *Service) History(limit int) []SessionResult {
	h := s.state.SessionHistory
	if limit > 0 && len(h) > limit {
		h = h[:limit]
	}
	return append([]SessionResult(nil), h...)
}

// WrongCount returns the recorded miss count for a topic.
func (s *Service) WrongCount(topicID string) int {
	return s.state.WrongCounts[topicID]
}

// WeakTopicIDs returns topic ids with at least one miss, ordered by
// descending miss count. Ties keep the order topics were first missed.
func (s *Service) WeakTopicIDs(limit int) []string {
	ids := make([]string, 0, len(s.state.missOrder))
	for _, id := range s.state.missOrder {
		if s.state.WrongCounts[id] > 0 {
			ids = append(ids, id)
		}
	}

	sort.SliceStable(ids, func(i, j int) bool {
		return s.state.WrongCounts[ids[i]] > s.state.WrongCounts[ids[j]]
	})

	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}

func (s *Service) persist(ctx context.Context) {
	if s.repo == nil {
		return
	}
	err := s.repo.Save(ctx, &store.Snapshot{
		Timestamp: s.now(),
		Data:      encodeState(s.state),
	})
	if err != nil {
		return
	}
	_ = s.repo.Prune(ctx, keepSnapshots)
}

package progress

import (
	"context"
	"testing"
	"time"

	"github.com/faraz/beestudy/internal/store"
)

// memSnapshotRepo is an in-memory SnapshotRepo for tests.
type memSnapshotRepo struct {
	snaps   []*store.Snapshot
	saveErr error
}

func (r *memSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.snaps = append(r.snaps, snap)
	return nil
}

func (r *memSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(r.snaps) == 0 {
		return nil, nil
	}
	return r.snaps[len(r.snaps)-1], nil
}

func (r *memSnapshotRepo) Prune(_ context.Context, keep int) error {
	if len(r.snaps) > keep {
		r.snaps = r.snaps[len(r.snaps)-keep:]
	}
	return nil
}

// memEventRepo records appended events for tests.
type memEventRepo struct {
	sessions []store.SessionEventData
	reviews  []store.ReviewEventData
}

func (r *memEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	r.sessions = append(r.sessions, data)
	return nil
}

func (r *memEventRepo) AppendReviewEvent(_ context.Context, data store.ReviewEventData) error {
	r.reviews = append(r.reviews, data)
	return nil
}

func (r *memEventRepo) QuerySessionEvents(_ context.Context, limit int) ([]store.SessionEventRecord, error) {
	var records []store.SessionEventRecord
	for i := len(r.sessions) - 1; i >= 0; i-- {
		records = append(records, store.SessionEventRecord{SessionEventData: r.sessions[i]})
		if limit > 0 && len(records) == limit {
			break
		}
	}
	return records, nil
}

func newTestService(t *testing.T) (*Service, *memSnapshotRepo, *memEventRepo) {
	t.Helper()
	snaps := &memSnapshotRepo{}
	events := &memEventRepo{}
	svc := NewService(context.Background(), snaps, events)
	return svc, snaps, events
}

func TestMarkReviewedIdempotent(t *testing.T) {
	svc, _, events := newTestService(t)
	ctx := context.Background()

	svc.MarkReviewed(ctx, "ls-cells")
	svc.MarkReviewed(ctx, "ls-cells")

	if !svc.IsReviewed("ls-cells") {
		t.Error("expected ls-cells reviewed")
	}
	if got := svc.ReviewedCount(); got != 1 {
		t.Errorf("reviewed count = %d, want 1", got)
	}
	if len(events.reviews) != 1 {
		t.Errorf("review events = %d, want 1 (second mark is a no-op)", len(events.reviews))
	}
}

func TestRecordSessionAccounting(t *testing.T) {
	svc, _, events := newTestService(t)
	ctx := context.Background()

	result := svc.RecordSession(ctx, "Life Science", "multipleChoice", 2, 3, []string{"t3"})

	if result.ID == "" {
		t.Error("expected non-empty result id")
	}
	if result.Score != 2 || result.Total != 3 {
		t.Errorf("result = %d/%d, want 2/3", result.Score, result.Total)
	}

	history := svc.History(0)
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	if history[0].ID != result.ID {
		t.Error("newest session should be at index 0")
	}
	if svc.WrongCount("t3") != 1 {
		t.Errorf("wrong count for t3 = %d, want 1", svc.WrongCount("t3"))
	}

	if len(events.sessions) != 1 {
		t.Fatalf("session events = %d, want 1", len(events.sessions))
	}
	if events.sessions[0].ResultID != result.ID {
		t.Error("event result id should match the session result")
	}
}

func TestRecordSessionPrependsNewest(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first := svc.RecordSession(ctx, "Chemistry", "tossUp", 10, 20, nil)
	second := svc.RecordSession(ctx, "Math", "freeResponse", 5, 10, nil)

	history := svc.History(0)
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if history[0].ID != second.ID || history[1].ID != first.ID {
		t.Error("history should be newest first")
	}
}

func TestHistoryLimit(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		svc.RecordSession(ctx, "Math", "multipleChoice", i, 10, nil)
	}

	if got := len(svc.History(3)); got != 3 {
		t.Errorf("limited history length = %d, want 3", got)
	}
	if got := len(svc.History(0)); got != 5 {
		t.Errorf("full history length = %d, want 5", got)
	}
}

func TestStreakFirstAction(t *testing.T) {
	svc, _, _ := newTestService(t)
	svc.MarkReviewed(context.Background(), "ls-cells")

	if got := svc.CurrentStreak(); got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
	if svc.LastStudyDate() == nil {
		t.Error("expected last study date to be set")
	}
}

func TestStreakSameDayRepeat(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return day }
	svc.RecordSession(ctx, "Math", "multipleChoice", 5, 10, nil)

	svc.now = func() time.Time { return day.Add(6 * time.Hour) }
	svc.RecordSession(ctx, "Math", "multipleChoice", 8, 10, nil)

	if got := svc.CurrentStreak(); got != 1 {
		t.Errorf("streak = %d, want 1 (same-day repeat)", got)
	}
}

func TestStreakConsecutiveDays(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 21, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return day }
	svc.RecordSession(ctx, "Math", "multipleChoice", 5, 10, nil)

	// Next calendar day, even though less than 24h elapsed.
	svc.now = func() time.Time { return day.Add(10 * time.Hour) }
	svc.MarkReviewed(ctx, "ls-cells")

	if got := svc.CurrentStreak(); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

func TestStreakResetOnGap(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return day }
	svc.RecordSession(ctx, "Math", "multipleChoice", 5, 10, nil)
	svc.now = func() time.Time { return day.AddDate(0, 0, 1) }
	svc.RecordSession(ctx, "Math", "multipleChoice", 5, 10, nil)
	if got := svc.CurrentStreak(); got != 2 {
		t.Fatalf("streak before gap = %d, want 2", got)
	}

	svc.now = func() time.Time { return day.AddDate(0, 0, 4) }
	svc.RecordSession(ctx, "Math", "multipleChoice", 5, 10, nil)
	if got := svc.CurrentStreak(); got != 1 {
		t.Errorf("streak after gap = %d, want 1 (reset, not 0)", got)
	}
}

func TestWeakTopicRankingStableTies(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	svc.RecordSession(ctx, "Mixed", "multipleChoice", 0, 3, []string{"a", "b", "a"})
	svc.RecordSession(ctx, "Mixed", "multipleChoice", 0, 1, []string{"b"})

	if svc.WrongCount("a") != 2 || svc.WrongCount("b") != 2 {
		t.Fatalf("counts = a:%d b:%d, want 2 each", svc.WrongCount("a"), svc.WrongCount("b"))
	}

	weak := svc.WeakTopicIDs(0)
	if len(weak) != 2 {
		t.Fatalf("weak topics = %v, want 2 entries", weak)
	}
	// a was first missed, so it wins the tie.
	if weak[0] != "a" || weak[1] != "b" {
		t.Errorf("weak topics = %v, want [a b]", weak)
	}
}

func TestWeakTopicRankingByCount(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	svc.RecordSession(ctx, "Mixed", "multipleChoice", 0, 4, []string{"a", "b", "b", "c"})
	svc.RecordSession(ctx, "Mixed", "multipleChoice", 0, 2, []string{"c", "c"})

	weak := svc.WeakTopicIDs(2)
	if len(weak) != 2 {
		t.Fatalf("weak topics = %v, want 2 entries", weak)
	}
	if weak[0] != "c" || weak[1] != "b" {
		t.Errorf("weak topics = %v, want [c b]", weak)
	}
}

func TestStateSurvivesReload(t *testing.T) {
	snaps := &memSnapshotRepo{}
	events := &memEventRepo{}
	ctx := context.Background()

	svc := NewService(ctx, snaps, events)
	svc.MarkReviewed(ctx, "ls-cells")
	svc.RecordSession(ctx, "Life Science", "multipleChoice", 7, 10, []string{"ls-genetics"})

	// Snapshot data round-trips through JSON on a real store.
	reloaded := NewService(ctx, snaps, events)
	if !reloaded.IsReviewed("ls-cells") {
		t.Error("reviewed set lost on reload")
	}
	if got := reloaded.CurrentStreak(); got != 1 {
		t.Errorf("streak after reload = %d, want 1", got)
	}
	if got := len(reloaded.History(0)); got != 1 {
		t.Errorf("history after reload = %d, want 1", got)
	}
	if got := reloaded.WrongCount("ls-genetics"); got != 1 {
		t.Errorf("wrong count after reload = %d, want 1", got)
	}
}

func TestCorruptSnapshotFieldIsolated(t *testing.T) {
	snaps := &memSnapshotRepo{snaps: []*store.Snapshot{{
		Data: map[string]any{
			"reviewedTopicIds": []any{"ls-cells", "ch-acids"},
			"currentStreak":    "not-a-number",
			"wrongCounts":      map[string]any{"a": 3.0},
			"missOrder":        []any{"a"},
		},
	}}}
	svc := NewService(context.Background(), snaps, &memEventRepo{})

	// Decodable fields survive.
	if got := svc.ReviewedCount(); got != 2 {
		t.Errorf("reviewed count = %d, want 2", got)
	}
	if got := svc.WrongCount("a"); got != 3 {
		t.Errorf("wrong count = %d, want 3", got)
	}
	// The corrupt field zeroes alone.
	if got := svc.CurrentStreak(); got != 0 {
		t.Errorf("streak = %d, want 0 for corrupt field", got)
	}
}

func TestPersistFailureKeepsMemoryState(t *testing.T) {
	snaps := &memSnapshotRepo{saveErr: context.DeadlineExceeded}
	svc := NewService(context.Background(), snaps, &memEventRepo{})
	ctx := context.Background()

	svc.RecordSession(ctx, "Math", "multipleChoice", 5, 10, []string{"t1"})

	if got := len(svc.History(0)); got != 1 {
		t.Errorf("history = %d, want 1 despite save failure", got)
	}
	if svc.WrongCount("t1") != 1 {
		t.Error("wrong count should update despite save failure")
	}
}

func TestSubscribeNotified(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	calls := 0
	svc.Subscribe(func() { calls++ })

	svc.MarkReviewed(ctx, "ls-cells")
	svc.RecordSession(ctx, "Math", "multipleChoice", 5, 10, nil)

	if calls != 2 {
		t.Errorf("subscriber calls = %d, want 2", calls)
	}
}

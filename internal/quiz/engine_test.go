package quiz

import (
	"context"
	"testing"

	"github.com/faraz/beestudy/internal/content"
	"github.com/faraz/beestudy/internal/progress"
)

type recordedSession struct {
	subject string
	mode    string
	score   int
	total   int
	missed  []string
}

type fakeRecorder struct {
	sessions []recordedSession
}

func (r *fakeRecorder) RecordSession(_ context.Context, subject, mode string, score, total int, missedTopicIDs []string) progress.SessionResult {
	r.sessions = append(r.sessions, recordedSession{
		subject: subject,
		mode:    mode,
		score:   score,
		total:   total,
		missed:  append([]string(nil), missedTopicIDs...),
	})
	return progress.SessionResult{Subject: subject, Mode: mode, Score: score, Total: total}
}

type fakeTopics struct {
	topics map[string]content.Topic
}

func (f *fakeTopics) TopicByID(id string) (content.Topic, bool) {
	t, ok := f.topics[id]
	return t, ok
}

func mcQuestion(id, topicID, correct string) content.Question {
	return content.Question{
		ID:           id,
		Subject:      "Life Science",
		Type:         content.TypeMultipleChoice,
		QuestionText: "Which organelle produces ATP?",
		AnswerChoices: map[string]string{
			"W": "Nucleus", "X": "Mitochondrion", "Y": "Ribosome", "Z": "Vacuole",
		},
		CorrectAnswer: correct,
		TopicID:       topicID,
	}
}

func frQuestion(id, topicID string) content.Question {
	return content.Question{
		ID:            id,
		Subject:       "Chemistry",
		Type:          content.TypeFreeResponse,
		QuestionText:  "Name the process by which a liquid becomes a gas.",
		CorrectAnswer: "Evaporation",
		TopicID:       topicID,
	}
}

func TestMultipleChoiceSessionAccounting(t *testing.T) {
	rec := &fakeRecorder{}
	questions := []content.Question{
		mcQuestion("q1", "t1", "X"),
		mcQuestion("q2", "t2", "W"),
		mcQuestion("q3", "t3", "Y"),
	}
	e := NewEngine(context.Background(), ModeMultipleChoice, questions, nil, rec)
	ctx := context.Background()

	e.SubmitChoice("X") // correct
	e.Advance(ctx)
	e.SubmitChoice("W") // correct
	e.Advance(ctx)
	e.SubmitChoice("Z") // wrong, topic t3
	e.Advance(ctx)

	if e.Phase() != PhaseComplete {
		t.Fatalf("phase = %v, want complete", e.Phase())
	}
	if e.Score() != 2 {
		t.Errorf("score = %d, want 2", e.Score())
	}

	if len(rec.sessions) != 1 {
		t.Fatalf("recorded sessions = %d, want 1", len(rec.sessions))
	}
	got := rec.sessions[0]
	if got.score != 2 || got.total != 3 {
		t.Errorf("recorded %d/%d, want 2/3", got.score, got.total)
	}
	if len(got.missed) != 1 || got.missed[0] != "t3" {
		t.Errorf("missed = %v, want [t3]", got.missed)
	}
	if got.subject != "Life Science" {
		t.Errorf("subject = %q, want Life Science", got.subject)
	}
}

func TestEmptySessionCompletesImmediately(t *testing.T) {
	rec := &fakeRecorder{}
	e := NewEngine(context.Background(), ModeMultipleChoice, nil, nil, rec)

	if e.Phase() != PhaseComplete {
		t.Fatalf("phase = %v, want complete", e.Phase())
	}
	if len(rec.sessions) != 1 {
		t.Fatalf("recorded sessions = %d, want 1", len(rec.sessions))
	}
	got := rec.sessions[0]
	if got.score != 0 || got.total != 0 {
		t.Errorf("recorded %d/%d, want 0/0", got.score, got.total)
	}
	if got.subject != "Mixed" {
		t.Errorf("subject = %q, want Mixed", got.subject)
	}
}

func TestReentrancyGuard(t *testing.T) {
	rec := &fakeRecorder{}
	questions := []content.Question{mcQuestion("q1", "t1", "X")}
	e := NewEngine(context.Background(), ModeMultipleChoice, questions, nil, rec)

	if !e.SubmitChoice("Z") {
		t.Fatal("first submission should be accepted")
	}
	if e.SubmitChoice("X") {
		t.Error("second submission should be rejected")
	}

	if e.Score() != 0 {
		t.Errorf("score = %d, want 0", e.Score())
	}
	if missed := e.MissedTopicIDs(); len(missed) != 1 {
		t.Errorf("missed = %v, want exactly one entry", missed)
	}
}

func TestRecordsOnlyOnce(t *testing.T) {
	rec := &fakeRecorder{}
	questions := []content.Question{mcQuestion("q1", "t1", "X")}
	e := NewEngine(context.Background(), ModeMultipleChoice, questions, nil, rec)
	ctx := context.Background()

	e.SubmitChoice("X")
	e.Advance(ctx)
	e.Advance(ctx) // no-op after complete

	if len(rec.sessions) != 1 {
		t.Errorf("recorded sessions = %d, want 1", len(rec.sessions))
	}
}

func TestExplainResolvesTopic(t *testing.T) {
	topics := &fakeTopics{topics: map[string]content.Topic{
		"t1": {ID: "t1", Title: "Cell Energy"},
	}}
	questions := []content.Question{mcQuestion("q1", "t1", "X")}
	e := NewEngine(context.Background(), ModeMultipleChoice, questions, topics, &fakeRecorder{})

	e.SubmitChoice("X")
	topic, ok := e.Explain()
	if !ok {
		t.Fatal("expected explanation to be available")
	}
	if topic.Title != "Cell Energy" {
		t.Errorf("topic = %q, want Cell Energy", topic.Title)
	}
	if e.Phase() != PhaseExplaining {
		t.Errorf("phase = %v, want explaining", e.Phase())
	}

	e.Advance(context.Background())
	if e.Phase() != PhaseComplete {
		t.Errorf("phase = %v, want complete", e.Phase())
	}
}

func TestExplainUnavailableForUnresolvableTopic(t *testing.T) {
	topics := &fakeTopics{topics: map[string]content.Topic{}}
	questions := []content.Question{
		mcQuestion("q1", "t-missing", "X"),
		mcQuestion("q2", "t2", "W"),
	}
	e := NewEngine(context.Background(), ModeMultipleChoice, questions, topics, &fakeRecorder{})

	e.SubmitChoice("X")
	if _, ok := e.Explain(); ok {
		t.Fatal("explanation should be unavailable")
	}
	if e.Phase() != PhaseResolved {
		t.Errorf("phase = %v, want resolved", e.Phase())
	}

	// Advance must still work from resolved.
	e.Advance(context.Background())
	if e.Phase() != PhasePresenting || e.Index() != 1 {
		t.Errorf("phase = %v index = %d, want presenting index 1", e.Phase(), e.Index())
	}
}

func TestFreeResponseSelfReport(t *testing.T) {
	rec := &fakeRecorder{}
	questions := []content.Question{
		frQuestion("q1", "t1"),
		frQuestion("q2", "t2"),
	}
	e := NewEngine(context.Background(), ModeFreeResponse, questions, nil, rec)
	ctx := context.Background()

	// Choice submission is invalid for a choiceless question.
	if e.SubmitChoice("W") {
		t.Error("choice submission should be rejected for free response")
	}

	e.Reveal()
	if !e.Revealed() {
		t.Error("expected answer to be revealed")
	}
	if !e.ReportSelf(true) {
		t.Fatal("self-report should be accepted")
	}
	e.Advance(ctx)

	e.Reveal()
	e.ReportSelf(false)
	e.Advance(ctx)

	if len(rec.sessions) != 1 {
		t.Fatalf("recorded sessions = %d, want 1", len(rec.sessions))
	}
	got := rec.sessions[0]
	if got.score != 1 || got.total != 2 {
		t.Errorf("recorded %d/%d, want 1/2", got.score, got.total)
	}
	if len(got.missed) != 1 || got.missed[0] != "t2" {
		t.Errorf("missed = %v, want [t2]", got.missed)
	}
}

func TestTossUpScoreIsSumOfCounters(t *testing.T) {
	rec := &fakeRecorder{}
	questions := []content.Question{
		mcQuestion("q1", "t1", "X"),
		mcQuestion("q2", "t2", "W"),
	}
	e := NewEngine(context.Background(), ModeTossUp, questions, nil, rec)
	ctx := context.Background()

	e.SubmitChoice("X")
	e.Advance(ctx)
	e.SubmitChoice("W")
	e.Advance(ctx)

	if e.TossUpScore() != 2 {
		t.Errorf("toss-up score = %d, want 2", e.TossUpScore())
	}
	if e.BonusScore() != 0 {
		t.Errorf("bonus score = %d, want 0", e.BonusScore())
	}
	if e.Score() != 2 {
		t.Errorf("score = %d, want 2 (sum of counters)", e.Score())
	}
	if rec.sessions[0].score != 2 {
		t.Errorf("recorded score = %d, want 2", rec.sessions[0].score)
	}
}

func TestMissedTopicAppendedEvenWhenEmpty(t *testing.T) {
	questions := []content.Question{mcQuestion("q1", "", "X")}
	e := NewEngine(context.Background(), ModeMultipleChoice, questions, nil, &fakeRecorder{})

	e.SubmitChoice("Z")
	missed := e.MissedTopicIDs()
	if len(missed) != 1 || missed[0] != "" {
		t.Errorf("missed = %v, want one empty entry", missed)
	}
}

func TestModeLabels(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeMultipleChoice, "Multiple Choice"},
		{ModeTossUp, "Toss-Up & Bonus"},
		{ModeFreeResponse, "Free Response"},
	}
	for _, tt := range tests {
		if got := tt.mode.Label(); got != tt.want {
			t.Errorf("%s label = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

package quiz

import (
	"context"

	"github.com/faraz/beestudy/internal/content"
	"github.com/faraz/beestudy/internal/progress"
)

// Phase is the engine's position in the per-question lifecycle.
type Phase int

const (
	// PhasePresenting shows the current question and accepts an answer.
	PhasePresenting Phase = iota
	// PhaseResolved shows the outcome of the submitted answer.
	PhaseResolved
	// PhaseExplaining shows the related topic for the resolved question.
	PhaseExplaining
	// PhaseComplete means every question has been resolved and the
	// session result has been recorded.
	PhaseComplete
)

// Mode selects one of the three practice formats.
type Mode string

const (
	ModeMultipleChoice Mode = "multipleChoice"
	ModeTossUp         Mode = "tossUp"
	ModeFreeResponse   Mode = "freeResponse"
)

// Label returns the display name for a mode.
func (m Mode) Label() string {
	switch m {
	case ModeTossUp:
		return "Toss-Up & Bonus"
	case ModeFreeResponse:
		return "Free Response"
	default:
		return "Multiple Choice"
	}
}

// mixedSubject labels a session result when no question supplied a subject.
const mixedSubject = "Mixed"

// TopicResolver looks up topics for post-answer explanations.
type TopicResolver interface {
	TopicByID(id string) (content.Topic, bool)
}

// Recorder receives the session result when the engine completes.
type Recorder interface {
	RecordSession(ctx context.Context, subject, mode string, score, total int, missedTopicIDs []string) progress.SessionResult
}

// Engine drives one practice session through its question list. It is a
// strictly turn-based state machine: the caller submits answers, views
// explanations, and advances. Only reaching PhaseComplete records a
// result; an abandoned engine persists nothing.
type Engine struct {
	mode      Mode
	questions []content.Question
	topics    TopicResolver
	recorder  Recorder

	phase    Phase
	index    int
	answered []bool
	revealed bool

	score          int
	tossUpScore    int
	bonusScore     int
	missedTopicIDs []string

	recorded bool
}

// NewEngine starts a session over the given questions. An empty question
// list completes immediately and records a 0/0 result.
func NewEngine(ctx context.Context, mode Mode, questions []content.Question, topics TopicResolver, recorder Recorder) *Engine {
	e := &Engine{
		mode:      mode,
		questions: questions,
		topics:    topics,
		recorder:  recorder,
		answered:  make([]bool, len(questions)),
	}

	if len(questions) == 0 {
		e.phase = PhaseComplete
		e.record(ctx)
		return e
	}

	e.phase = PhasePresenting
	return e
}

// Phase returns the engine's current lifecycle phase.
func (e *Engine) Phase() Phase { return e.phase }

// Mode returns the session's practice format.
func (e *Engine) Mode() Mode { return e.mode }

// Index returns the zero-based current question index.
func (e *Engine) Index() int { return e.index }

// Total returns the number of questions in the session.
func (e *Engine) Total() int { return len(e.questions) }

// Current returns the question at the current index, if the session is
// not complete.
func (e *Engine) Current() (content.Question, bool) {
	if e.phase == PhaseComplete || e.index >= len(e.questions) {
		return content.Question{}, false
	}
	return e.questions[e.index], true
}

// Revealed reports whether the current question's answer has been shown
// ahead of a self-reported resolution.
func (e *Engine) Revealed() bool { return e.revealed }

// SubmitChoice resolves the current question against a choice key. Exact
// key match scores the point; a miss appends the question's topic id to
// the missed list. A second submission for the same question is a no-op.
func (e *Engine) SubmitChoice(key string) bool {
	if e.phase != PhasePresenting || e.answered[e.index] {
		return false
	}
	q := e.questions[e.index]
	if !q.HasChoices() {
		return false
	}

	e.resolve(key == q.CorrectAnswer)
	return true
}

// Reveal shows the correct answer for a question that is graded by
// self-report. The question stays unresolved until ReportSelf.
func (e *Engine) Reveal() {
	if e.phase != PhasePresenting || e.answered[e.index] {
		return
	}
	e.revealed = true
}

// ReportSelf resolves the current question from the learner's own
// judgement after seeing the correct answer. Used for free response and
// choiceless toss-ups, where exact-match grading is unreliable.
func (e *Engine) ReportSelf(correct bool) bool {
	if e.phase != PhasePresenting || e.answered[e.index] {
		return false
	}

	e.resolve(correct)
	return true
}

func (e *Engine) resolve(correct bool) {
	q := e.questions[e.index]
	e.answered[e.index] = true
	e.revealed = false

	if correct {
		if e.mode == ModeTossUp {
			e.tossUpScore++
		} else {
			e.score++
		}
	} else {
		// Appended even when empty or unresolvable. Display layers filter.
		e.missedTopicIDs = append(e.missedTopicIDs, q.TopicID)
	}

	e.phase = PhaseResolved
}

// Explain moves to the explanation view for the resolved question. If the
// question's topic does not resolve, the transition is unavailable and the
// caller should Advance instead.
func (e *Engine) Explain() (content.Topic, bool) {
	if e.phase != PhaseResolved {
		return content.Topic{}, false
	}

	q := e.questions[e.index]
	if e.topics == nil {
		return content.Topic{}, false
	}
	topic, ok := e.topics.TopicByID(q.TopicID)
	if !ok {
		return content.Topic{}, false
	}

	e.phase = PhaseExplaining
	return topic, true
}

// Advance moves to the next question, or to PhaseComplete after the last
// one. Entering PhaseComplete records the session result exactly once.
func (e *Engine) Advance(ctx context.Context) {
	if e.phase != PhaseResolved && e.phase != PhaseExplaining {
		return
	}

	if e.index+1 < len(e.questions) {
		e.index++
		e.phase = PhasePresenting
		return
	}

	e.phase = PhaseComplete
	e.record(ctx)
}

// Score returns the running score. Toss-up mode reports the sum of the
// toss-up and bonus counters.
func (e *Engine) Score() int {
	if e.mode == ModeTossUp {
		return e.tossUpScore + e.bonusScore
	}
	return e.score
}

// TossUpScore returns the toss-up counter for toss-up mode.
func (e *Engine) TossUpScore() int { return e.tossUpScore }

// BonusScore returns the bonus counter. No documented flow increments it;
// the counter exists as an extension point for real bonus scoring.
func (e *Engine) BonusScore() int { return e.bonusScore }

// MissedTopicIDs returns the accumulated missed topic ids, in miss order,
// duplicates included.
func (e *Engine) MissedTopicIDs() []string {
	return append([]string(nil), e.missedTopicIDs...)
}

// Subject returns the label for the session result. The last question's
// subject wins; an empty session falls back to the mixed label.
func (e *Engine) Subject() string {
	if len(e.questions) == 0 {
		return mixedSubject
	}
	subject := e.questions[len(e.questions)-1].Subject
	if subject == "" {
		return mixedSubject
	}
	return subject
}

func (e *Engine) record(ctx context.Context) {
	if e.recorded || e.recorder == nil {
		return
	}
	e.recorded = true
	e.recorder.RecordSession(ctx, e.Subject(), string(e.mode), e.Score(), len(e.questions), e.missedTopicIDs)
}

package content

import (
	"os"
	"path/filepath"
	"testing"
)

const topicsJSON = `[
	{
		"id": "ls-cells",
		"subject": "Life Science",
		"title": "Cells",
		"whatIsIt": "The basic unit of life.",
		"howItWorks": "Organelles divide the labor.",
		"realWorldExample": "Your body has trillions.",
		"keyTerms": [{"term": "organelle", "definition": "a cell part with a job"}],
		"nsbTraps": ["Plant cells have mitochondria too."],
		"didYouKnow": ["Some cells are visible to the naked eye."],
		"relatedTopics": ["ls-photosynthesis", "ls-missing"]
	},
	{
		"id": "ls-photosynthesis",
		"subject": "Life Science",
		"title": "Photosynthesis",
		"whatIsIt": "How plants make food.",
		"howItWorks": "Light energy drives the reaction.",
		"realWorldExample": "Leaves in sunlight.",
		"keyTerms": [],
		"nsbTraps": [],
		"didYouKnow": [],
		"relatedTopics": []
	},
	{
		"id": "ch-atoms",
		"subject": "Chemistry",
		"title": "Atoms",
		"whatIsIt": "The building blocks of matter.",
		"howItWorks": "Protons, neutrons, electrons.",
		"realWorldExample": "Everything around you.",
		"keyTerms": [],
		"nsbTraps": [],
		"didYouKnow": [],
		"relatedTopics": []
	}
]`

const questionsJSON = `[
	{
		"id": "q1",
		"subject": "Life Science",
		"subtopic": "Cells",
		"type": "multipleChoice",
		"questionText": "Which organelle makes ATP?",
		"answerChoices": {"W": "Nucleus", "X": "Mitochondrion", "Y": "Ribosome", "Z": "Vacuole"},
		"correctAnswer": "X",
		"difficulty": "grade6",
		"topicId": "ls-cells"
	},
	{
		"id": "q2",
		"subject": "Life Science",
		"subtopic": "Photosynthesis",
		"type": "tossUp",
		"questionText": "Which gas do plants absorb?",
		"answerChoices": {"W": "Oxygen", "X": "Nitrogen", "Y": "Carbon dioxide", "Z": "Hydrogen"},
		"correctAnswer": "Y",
		"difficulty": "grade7",
		"topicId": "ls-photosynthesis"
	},
	{
		"id": "q3",
		"subject": "Chemistry",
		"subtopic": "Atoms",
		"type": "freeResponse",
		"questionText": "Name the positively charged particle in the nucleus.",
		"correctAnswer": "proton",
		"difficulty": "grade6",
		"topicId": "ch-atoms"
	}
]`

func writeBank(t *testing.T, topics, questions string) string {
	t.Helper()
	dir := t.TempDir()
	if topics != "" {
		if err := os.WriteFile(filepath.Join(dir, TopicsFile), []byte(topics), 0o644); err != nil {
			t.Fatalf("write topics: %v", err)
		}
	}
	if questions != "" {
		if err := os.WriteFile(filepath.Join(dir, QuestionsFile), []byte(questions), 0o644); err != nil {
			t.Fatalf("write questions: %v", err)
		}
	}
	return dir
}

func TestLoadFullBank(t *testing.T) {
	p := Load(writeBank(t, topicsJSON, questionsJSON))

	if got := len(p.Topics()); got != 3 {
		t.Fatalf("topics = %d, want 3", got)
	}
	if got := len(p.Questions()); got != 3 {
		t.Fatalf("questions = %d, want 3", got)
	}
}

func TestLoadMissingDir(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "does-not-exist"))

	if len(p.Topics()) != 0 || len(p.Questions()) != 0 {
		t.Fatal("expected empty collections for missing content dir")
	}
	// Queries must keep working against the empty bank.
	if qs := p.SelectQuestions(SelectOpts{Limit: 10}); len(qs) != 0 {
		t.Fatalf("selected %d questions from empty bank", len(qs))
	}
}

func TestLoadMalformedDegradesPerFile(t *testing.T) {
	tests := []struct {
		name      string
		topics    string
		questions string
		wantT     int
		wantQ     int
	}{
		{"invalid topics json", "{not json", questionsJSON, 0, 3},
		{"schema-invalid topics", `[{"title": "no id"}]`, questionsJSON, 0, 3},
		{"invalid questions json", topicsJSON, "[", 3, 0},
		{"schema-invalid questions", topicsJSON, `[{"id": "q1"}]`, 3, 0},
		{"both missing", "", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Load(writeBank(t, tt.topics, tt.questions))
			if got := len(p.Topics()); got != tt.wantT {
				t.Errorf("topics = %d, want %d", got, tt.wantT)
			}
			if got := len(p.Questions()); got != tt.wantQ {
				t.Errorf("questions = %d, want %d", got, tt.wantQ)
			}
		})
	}
}

func TestTopicQueries(t *testing.T) {
	p := Load(writeBank(t, topicsJSON, questionsJSON))

	life := p.TopicsBySubject(SubjectLifeScience)
	if len(life) != 2 {
		t.Fatalf("life science topics = %d, want 2", len(life))
	}
	if life[0].ID != "ls-cells" || life[1].ID != "ls-photosynthesis" {
		t.Errorf("unexpected order: %s, %s", life[0].ID, life[1].ID)
	}

	if _, ok := p.TopicByID("ch-atoms"); !ok {
		t.Error("expected ch-atoms to resolve")
	}
	if _, ok := p.TopicByID("nope"); ok {
		t.Error("expected unknown id to not resolve")
	}
}

func TestRelatedTopicsSkipsUnresolvable(t *testing.T) {
	p := Load(writeBank(t, topicsJSON, questionsJSON))

	cells, _ := p.TopicByID("ls-cells")
	related := p.RelatedTopics(cells)
	if len(related) != 1 {
		t.Fatalf("related = %d, want 1 (unresolvable id skipped)", len(related))
	}
	if related[0].ID != "ls-photosynthesis" {
		t.Errorf("related[0] = %s, want ls-photosynthesis", related[0].ID)
	}
}

func TestSelectQuestionsFilters(t *testing.T) {
	p := Load(writeBank(t, topicsJSON, questionsJSON))

	tests := []struct {
		name    string
		opts    SelectOpts
		wantIDs map[string]bool
	}{
		{
			"by subject",
			SelectOpts{Subject: SubjectLifeScience, Limit: 10},
			map[string]bool{"q1": true, "q2": true},
		},
		{
			"by difficulty",
			SelectOpts{Difficulty: DifficultyGrade6, Limit: 10},
			map[string]bool{"q1": true, "q3": true},
		},
		{
			"subject and difficulty",
			SelectOpts{Subject: SubjectLifeScience, Difficulty: DifficultyGrade7, Limit: 10},
			map[string]bool{"q2": true},
		},
		{
			"topic ids override other filters",
			SelectOpts{Subject: SubjectChemistry, TopicIDs: map[string]bool{"ls-cells": true}, Limit: 10},
			map[string]bool{"q1": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.SelectQuestions(tt.opts)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("selected %d questions, want %d", len(got), len(tt.wantIDs))
			}
			for _, q := range got {
				if !tt.wantIDs[q.ID] {
					t.Errorf("unexpected question %s", q.ID)
				}
			}
		})
	}
}

func TestSelectQuestionsLimit(t *testing.T) {
	p := Load(writeBank(t, topicsJSON, questionsJSON))

	// Limit above pool size never fabricates items.
	if got := p.SelectQuestions(SelectOpts{Limit: 5}); len(got) != 3 {
		t.Errorf("limit 5 over pool of 3 returned %d", len(got))
	}
	if got := p.SelectQuestions(SelectOpts{Limit: 2}); len(got) != 2 {
		t.Errorf("limit 2 returned %d", len(got))
	}
	if got := p.SelectQuestions(SelectOpts{Limit: 0}); got != nil {
		t.Errorf("limit 0 returned %d items, want none", len(got))
	}
	if got := p.SelectQuestions(SelectOpts{Limit: -3}); got != nil {
		t.Errorf("negative limit returned %d items, want none", len(got))
	}
}

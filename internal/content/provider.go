package content

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// TopicsFile and QuestionsFile are the bank file names inside the content dir.
const (
	TopicsFile    = "topics.json"
	QuestionsFile = "questions.json"
)

// Provider owns the loaded content bank and answers read-only queries over it.
// A missing or malformed bank degrades to empty collections; Provider methods
// never return errors.
type Provider struct {
	topics    []Topic
	topicByID map[string]*Topic
	questions []Question
}

// Load reads topics.json and questions.json from dir. Either file being
// absent, unreadable, invalid JSON, or failing schema validation yields an
// empty collection for that file only.
func Load(dir string) *Provider {
	p := &Provider{}
	loadFile(filepath.Join(dir, TopicsFile), topicsSchema, &p.topics)
	loadFile(filepath.Join(dir, QuestionsFile), questionsSchema, &p.questions)

	p.topicByID = make(map[string]*Topic, len(p.topics))
	for i := range p.topics {
		p.topicByID[p.topics[i].ID] = &p.topics[i]
	}
	return p
}

// loadFile decodes one bank file into out, leaving out untouched on any
// failure.
func loadFile[T any](path string, schema *jsonschema.Schema, out *[]T) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return
	}
	if err := schema.Validate(parsed); err != nil {
		return
	}

	var decoded []T
	if err := json.Unmarshal(data, &decoded); err != nil {
		return
	}
	*out = decoded
}

// Topics returns all loaded topics.
func (p *Provider) Topics() []Topic {
	return p.topics
}

// Questions returns all loaded questions.
func (p *Provider) Questions() []Question {
	return p.questions
}

// TopicsBySubject returns topics for a subject in file order.
func (p *Provider) TopicsBySubject(subject Subject) []Topic {
	var result []Topic
	for _, t := range p.topics {
		if t.Subject == string(subject) {
			result = append(result, t)
		}
	}
	return result
}

// TopicByID looks up a topic by id.
func (p *Provider) TopicByID(id string) (Topic, bool) {
	t, ok := p.topicByID[id]
	if !ok {
		return Topic{}, false
	}
	return *t, true
}

// RelatedTopics resolves a topic's related-topic ids, skipping any that do
// not resolve against the loaded set.
func (p *Provider) RelatedTopics(t Topic) []Topic {
	var result []Topic
	for _, id := range t.RelatedTopics {
		if related, ok := p.TopicByID(id); ok {
			result = append(result, related)
		}
	}
	return result
}

// SelectOpts filters question selection. Zero values mean "no filter".
type SelectOpts struct {
	Subject    Subject
	Difficulty Difficulty

	// TopicIDs, when non-empty, keeps only questions whose TopicID is in the
	// set and ignores the Subject/Difficulty filters. Used for "practice
	// weak topics".
	TopicIDs map[string]bool

	Limit int
}

// SelectQuestions returns a randomly shuffled subset of matching questions of
// size min(opts.Limit, matches). The shuffle is intentionally unseeded;
// sessions are not reproducible. Limit <= 0 or no matches yields nil.
func (p *Provider) SelectQuestions(opts SelectOpts) []Question {
	if opts.Limit <= 0 {
		return nil
	}

	var pool []Question
	for _, q := range p.questions {
		if len(opts.TopicIDs) > 0 {
			if opts.TopicIDs[q.TopicID] {
				pool = append(pool, q)
			}
			continue
		}
		if opts.Subject != "" && q.Subject != string(opts.Subject) {
			continue
		}
		if opts.Difficulty != "" && q.Difficulty != opts.Difficulty {
			continue
		}
		pool = append(pool, q)
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) > opts.Limit {
		pool = pool[:opts.Limit]
	}
	return pool
}

// DefaultDir resolves the content directory: BEESTUDY_CONTENT env var if set,
// otherwise ./content relative to the working directory.
func DefaultDir() string {
	if dir := os.Getenv("BEESTUDY_CONTENT"); dir != "" {
		return dir
	}
	return "content"
}

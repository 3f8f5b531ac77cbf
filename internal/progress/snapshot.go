package progress

import (
	"encoding/json"
	"time"
)

// Snapshot field keys. The stored shape is a flat JSON object so each field
// can be decoded independently: a corrupt value zeroes only its own field
// instead of discarding the whole snapshot.
const (
	keyReviewedTopicIDs = "reviewedTopicIds"
	keySessionHistory   = "sessionHistory"
	keyLastStudyDate    = "lastStudyDate"
	keyCurrentStreak    = "currentStreak"
	keyWrongCounts      = "wrongCounts"
	keyMissOrder        = "missOrder"
)

func encodeState(s *State) map[string]any {
	reviewed := make([]string, 0, len(s.ReviewedTopicIDs))
	for id := range s.ReviewedTopicIDs {
		reviewed = append(reviewed, id)
	}

	data := map[string]any{
		keyReviewedTopicIDs: reviewed,
		keySessionHistory:   s.SessionHistory,
		keyCurrentStreak:    s.CurrentStreak,
		keyWrongCounts:      s.WrongCounts,
		keyMissOrder:        s.missOrder,
	}
	if s.LastStudyDate != nil {
		data[keyLastStudyDate] = s.LastStudyDate.Format(time.RFC3339)
	}
	return data
}

func decodeState(data map[string]any) *State {
	s := newState()
	if data == nil {
		return s
	}

	var reviewed []string
	if decodeField(data, keyReviewedTopicIDs, &reviewed) {
		for _, id := range reviewed {
			s.ReviewedTopicIDs[id] = true
		}
	}

	decodeField(data, keySessionHistory, &s.SessionHistory)
	decodeField(data, keyCurrentStreak, &s.CurrentStreak)

	var counts map[string]int
	if decodeField(data, keyWrongCounts, &counts) && counts != nil {
		s.WrongCounts = counts
	}
	decodeField(data, keyMissOrder, &s.missOrder)

	var dateStr string
	if decodeField(data, keyLastStudyDate, &dateStr) {
		if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
			s.LastStudyDate = &t
		}
	}

	// Rebuild missOrder if it was lost but counts survived, so ranking
	// stays usable. Order within the rebuilt slice is arbitrary.
	if len(s.missOrder) == 0 && len(s.WrongCounts) > 0 {
		for id := range s.WrongCounts {
			s.missOrder = append(s.missOrder, id)
		}
	}

	return s
}

// decodeField round-trips one map entry through JSON into out. Reports
// whether the value was present and decodable.
func decodeField(data map[string]any, key string, out any) bool {
	raw, ok := data[key]
	if !ok || raw == nil {
		return false
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return false
	}
	return json.Unmarshal(b, out) == nil
}

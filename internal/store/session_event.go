package store

import (
	"context"
	"fmt"

	"github.com/faraz/beestudy/ent"
	"github.com/faraz/beestudy/ent/sessionevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetResultID(data.ResultID).
		SetSubject(data.Subject).
		SetMode(data.Mode).
		SetScore(data.Score).
		SetTotal(data.Total)

	if len(data.MissedTopicIDs) > 0 {
		builder = builder.SetMissedTopicIds(data.MissedTopicIDs)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, limit int) ([]SessionEventRecord, error) {
	q := r.client.SessionEvent.Query().
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	records := make([]SessionEventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			SessionEventData: SessionEventData{
				ResultID:       e.ResultID,
				Subject:        e.Subject,
				Mode:           e.Mode,
				Score:          e.Score,
				Total:          e.Total,
				MissedTopicIDs: e.MissedTopicIds,
			},
		})
	}
	return records, nil
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records one completed practice session.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("result_id").
			NotEmpty().
			Comment("UUID of the recorded SessionResult"),
		field.String("subject").
			NotEmpty().
			Comment("Subject label, or Mixed"),
		field.String("mode").
			NotEmpty().
			Comment("Practice mode label"),
		field.Int("score").
			Default(0).
			Comment("Correct answers"),
		field.Int("total").
			Default(0).
			Comment("Questions presented"),
		field.JSON("missed_topic_ids", []string{}).
			Optional().
			Comment("Topic ids of missed questions, duplicates preserved"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("result_id"),
		index.Fields("subject"),
	}
}

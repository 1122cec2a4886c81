package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end) for both
// chat and quiz sessions.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("mode").
			NotEmpty().
			Comment("chat or quiz"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("turns").
			Default(0).
			Comment("Total exchanges (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Quiz answers accepted (on end only)"),
		field.Int("skipped_answers").
			Default(0).
			Comment("Quiz questions the child skipped (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
		field.String("level").
			Default("").
			Comment("Comprehension level active for the session"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("mode"),
		index.Fields("action"),
	}
}

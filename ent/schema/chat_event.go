package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatEvent records one chat exchange between the child and Hipólito.
type ChatEvent struct {
	ent.Schema
}

func (ChatEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ChatEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("student_text").
			Comment("What the child typed"),
		field.String("reply_text").
			NotEmpty().
			Comment("The reply shown"),
		field.String("source").
			NotEmpty().
			Comment("topical, specific, vocabulary, intent, generic, or generated"),
		field.String("intent").
			Default("").
			Comment("Classified intent tag"),
		field.Float("confidence").
			Comment("Answer confidence, 0.0 to 1.0"),
		field.String("level").
			NotEmpty().
			Comment("Comprehension level: basico, intermedio, avanzado"),
	}
}

func (ChatEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("source"),
	}
}

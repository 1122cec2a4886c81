package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAnswerEvent records a single graded answer within a quiz session.
type QuizAnswerEvent struct {
	ent.Schema
}

func (QuizAnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizAnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.Int("question_id").
			Comment("Stable question number"),
		field.String("prompt").
			NotEmpty().
			Comment("The question shown"),
		field.String("student_answer").
			Comment("What the child entered"),
		field.Bool("correct").
			Comment("Whether the answer was accepted"),
		field.Bool("skipped").
			Comment("Whether the child said they didn't know"),
		field.String("category").
			NotEmpty().
			Comment("Question category: personajes, lugares, trama, ..."),
		field.String("difficulty").
			NotEmpty().
			Comment("fácil or medio"),
	}
}

func (QuizAnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_id"),
		index.Fields("correct"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicCounts holds the per-topic correct/total breakdown within a
// single quiz attempt, stored as JSON on the event.
type TopicCounts struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// AttemptEvent records a single completed quiz attempt within a session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Learner session this attempt belongs to"),
		field.String("topic").
			NotEmpty().
			Comment("Primary topic of the quiz"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.Int("total_questions").
			Comment("Number of questions in the quiz"),
		field.Int("correct_answers").
			Comment("Number answered correctly"),
		field.Float("score_percentage").
			Comment("Score on the 0-100 scale"),
		field.Float("time_spent_seconds").
			Default(0).
			Comment("Wall-clock time spent on the quiz"),
		field.JSON("questions_by_topic", map[string]TopicCounts{}).
			Optional().
			Comment("Per-topic correct/total breakdown"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic"),
		index.Fields("difficulty"),
	}
}

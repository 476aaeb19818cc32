package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Suggestion holds the schema definition for one scored candidate response
// document attached to a case event.
type Suggestion struct {
	ent.Schema
}

// Fields of the Suggestion.
func (Suggestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("suggestion_id").
			Unique().
			Immutable(),
		field.String("case_event_id").
			Immutable(),

		field.String("name"),
		field.Enum("doc_type").
			Values("response", "exceptions_response", "compromise",
				"demand_text_correction", "other"),

		field.JSON("content", map[string]any{}).
			Optional().
			Comment("Structured document; absent content disables submission"),
		field.String("storage_key").
			Optional().
			Nillable(),

		field.Float("score").
			Min(0).
			Max(1),

		field.Bool("submitted").
			Default(false),
		field.Time("submitted_at").
			Optional().
			Nillable(),

		field.Time("created_at").
			Immutable(),
	}
}

// Edges of the Suggestion.
func (Suggestion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("case_event", CaseEvent.Type).
			Ref("suggestions").
			Field("case_event_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Suggestion.
func (Suggestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_event_id", "created_at"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CaseEvent holds the schema definition for one milestone slot of a case
// timeline. A case owns at most one event per milestone; ordering is
// defined by the canonical milestone sequence, never by insertion order.
type CaseEvent struct {
	ent.Schema
}

// Fields of the CaseEvent.
func (CaseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("case_id").
			Immutable(),

		field.Enum("milestone").
			Values("documents", "demand_text", "dispatch", "notification",
				"defense", "plaintiff_answer", "finished"),

		field.Time("occurred_at").
			Optional().
			Nillable().
			Comment("Absent while the milestone is still pending"),
		field.String("detail").
			Optional(),

		field.Time("created_at").
			Immutable(),
		field.Time("updated_at"),
	}
}

// Edges of the CaseEvent.
func (CaseEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("case", CollectionCase.Type).
			Ref("events").
			Field("case_id").
			Unique().
			Required().
			Immutable(),
		edge.To("suggestions", Suggestion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the CaseEvent.
func (CaseEvent) Indexes() []ent.Index {
	return []ent.Index{
		// One slot per milestone per case.
		index.Fields("case_id", "milestone").
			Unique(),
	}
}

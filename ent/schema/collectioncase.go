package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CollectionCase holds the schema definition for one civil-collection suit.
type CollectionCase struct {
	ent.Schema
}

// Fields of the CollectionCase.
func (CollectionCase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("case_id").
			Unique().
			Immutable(),

		field.String("rol").
			Comment("Court docket number, e.g. C-1234-2026"),
		field.String("court"),
		field.String("debtor_name"),
		field.String("debtor_rut"),

		field.Enum("status").
			Values("active", "finished").
			Default("active"),

		field.Time("created_at").
			Immutable(),
		field.Time("updated_at"),
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

// Edges of the CollectionCase.
func (CollectionCase) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", CaseEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("documents", CaseDocument.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the CollectionCase.
func (CollectionCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("rol", "court").
			Unique(),
		index.Fields("debtor_rut"),
	}
}

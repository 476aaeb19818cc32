package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CaseDocument holds the schema definition for the metadata of one stored
// file: uploaded evidence or a rendered filing. The binary itself lives in
// object storage under storage_key.
type CaseDocument struct {
	ent.Schema
}

// Fields of the CaseDocument.
func (CaseDocument) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("document_id").
			Unique().
			Immutable(),
		field.String("case_id").
			Immutable(),

		field.Enum("kind").
			Values("evidence", "demand_text", "preliminary_measure", "response"),
		field.String("name"),
		field.String("storage_key"),
		field.Int("position").
			Default(0).
			Comment("User-chosen order within the case; drives submission labels"),
		field.String("content_type").
			Default("application/pdf"),
		field.Int64("size_bytes").
			Default(0),

		field.Time("uploaded_at").
			Immutable(),
	}
}

// Edges of the CaseDocument.
func (CaseDocument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("case", CollectionCase.Type).
			Ref("documents").
			Field("case_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CaseDocument.
func (CaseDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_id", "kind"),
	}
}

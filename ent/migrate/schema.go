// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CaseDocumentsColumns holds the columns for the "case_documents" table.
	CaseDocumentsColumns = []*schema.Column{
		{Name: "document_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"evidence", "demand_text", "preliminary_measure", "response"}},
		{Name: "name", Type: field.TypeString},
		{Name: "storage_key", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "content_type", Type: field.TypeString, Default: "application/pdf"},
		{Name: "size_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "case_id", Type: field.TypeString},
	}
	// CaseDocumentsTable holds the schema information for the "case_documents" table.
	CaseDocumentsTable = &schema.Table{
		Name:       "case_documents",
		Columns:    CaseDocumentsColumns,
		PrimaryKey: []*schema.Column{CaseDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "case_documents_collection_cases_documents",
				Columns:    []*schema.Column{CaseDocumentsColumns[8]},
				RefColumns: []*schema.Column{CollectionCasesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "casedocument_case_id_kind",
				Unique:  false,
				Columns: []*schema.Column{CaseDocumentsColumns[8], CaseDocumentsColumns[1]},
			},
		},
	}
	// CaseEventsColumns holds the columns for the "case_events" table.
	CaseEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "milestone", Type: field.TypeEnum, Enums: []string{"documents", "demand_text", "dispatch", "notification", "defense", "plaintiff_answer", "finished"}},
		{Name: "occurred_at", Type: field.TypeTime, Nullable: true},
		{Name: "detail", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "case_id", Type: field.TypeString},
	}
	// CaseEventsTable holds the schema information for the "case_events" table.
	CaseEventsTable = &schema.Table{
		Name:       "case_events",
		Columns:    CaseEventsColumns,
		PrimaryKey: []*schema.Column{CaseEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "case_events_collection_cases_events",
				Columns:    []*schema.Column{CaseEventsColumns[6]},
				RefColumns: []*schema.Column{CollectionCasesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "caseevent_case_id_milestone",
				Unique:  true,
				Columns: []*schema.Column{CaseEventsColumns[6], CaseEventsColumns[1]},
			},
		},
	}
	// CollectionCasesColumns holds the columns for the "collection_cases" table.
	CollectionCasesColumns = []*schema.Column{
		{Name: "case_id", Type: field.TypeString, Unique: true},
		{Name: "rol", Type: field.TypeString},
		{Name: "court", Type: field.TypeString},
		{Name: "debtor_name", Type: field.TypeString},
		{Name: "debtor_rut", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "finished"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// CollectionCasesTable holds the schema information for the "collection_cases" table.
	CollectionCasesTable = &schema.Table{
		Name:       "collection_cases",
		Columns:    CollectionCasesColumns,
		PrimaryKey: []*schema.Column{CollectionCasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "collectioncase_rol_court",
				Unique:  true,
				Columns: []*schema.Column{CollectionCasesColumns[1], CollectionCasesColumns[2]},
			},
			{
				Name:    "collectioncase_debtor_rut",
				Unique:  false,
				Columns: []*schema.Column{CollectionCasesColumns[4]},
			},
		},
	}
	// SuggestionsColumns holds the columns for the "suggestions" table.
	SuggestionsColumns = []*schema.Column{
		{Name: "suggestion_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "doc_type", Type: field.TypeEnum, Enums: []string{"response", "exceptions_response", "compromise", "demand_text_correction", "other"}},
		{Name: "content", Type: field.TypeJSON, Nullable: true},
		{Name: "storage_key", Type: field.TypeString, Nullable: true},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "submitted", Type: field.TypeBool, Default: false},
		{Name: "submitted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "case_event_id", Type: field.TypeString},
	}
	// SuggestionsTable holds the schema information for the "suggestions" table.
	SuggestionsTable = &schema.Table{
		Name:       "suggestions",
		Columns:    SuggestionsColumns,
		PrimaryKey: []*schema.Column{SuggestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "suggestions_case_events_suggestions",
				Columns:    []*schema.Column{SuggestionsColumns[9]},
				RefColumns: []*schema.Column{CaseEventsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "suggestion_case_event_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SuggestionsColumns[9], SuggestionsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CaseDocumentsTable,
		CaseEventsTable,
		CollectionCasesTable,
		SuggestionsTable,
	}
)

func init() {
	CaseDocumentsTable.ForeignKeys[0].RefTable = CollectionCasesTable
	CaseEventsTable.ForeignKeys[0].RefTable = CollectionCasesTable
	SuggestionsTable.ForeignKeys[0].RefTable = CaseEventsTable
}

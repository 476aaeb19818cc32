package models

import "io"

// DocumentKind classifies a stored case file.
type DocumentKind string

// Stored document kinds.
const (
	DocumentEvidence           DocumentKind = "evidence"
	DocumentDemandText         DocumentKind = "demand_text"
	DocumentPreliminaryMeasure DocumentKind = "preliminary_measure"
	DocumentResponse           DocumentKind = "response"
)

// Valid reports whether k names a known document kind.
func (k DocumentKind) Valid() bool {
	switch k {
	case DocumentEvidence, DocumentDemandText, DocumentPreliminaryMeasure, DocumentResponse:
		return true
	}
	return false
}

// UploadDocumentRequest carries the metadata and body of one file upload.
// Content is streamed to object storage; only the metadata row is kept in
// the database.
type UploadDocumentRequest struct {
	CaseID      string       `json:"case_id"`
	Kind        DocumentKind `json:"kind"`
	Name        string       `json:"name"`
	ContentType string       `json:"content_type"`
	SizeBytes   int64        `json:"size_bytes"`
	Body        io.Reader    `json:"-"`
}

// ReorderDocumentsRequest is the full new ordering of a case's documents of
// one kind. Partial orderings are rejected; the list names every document
// exactly once.
type ReorderDocumentsRequest struct {
	Kind        DocumentKind `json:"kind"`
	DocumentIDs []string     `json:"document_ids"`
}

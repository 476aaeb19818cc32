// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/andeslegal/cobranza/ent/casedocument"
	"github.com/andeslegal/cobranza/ent/caseevent"
	"github.com/andeslegal/cobranza/ent/collectioncase"
	"github.com/andeslegal/cobranza/ent/predicate"
	"github.com/andeslegal/cobranza/ent/suggestion"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCaseDocument   = "CaseDocument"
	TypeCaseEvent      = "CaseEvent"
	TypeCollectionCase = "CollectionCase"
	TypeSuggestion     = "Suggestion"
)

// CaseDocumentMutation represents an operation that mutates the CaseDocument nodes in the graph.
type CaseDocumentMutation struct {
	config
	op            Op
	typ           string
	id            *string
	kind          *casedocument.Kind
	name          *string
	storage_key   *string
	position      *int
	addposition   *int
	content_type  *string
	size_bytes    *int64
	addsize_bytes *int64
	uploaded_at   *time.Time
	clearedFields map[string]struct{}
	_case         *string
	cleared_case  bool
	done          bool
	oldValue      func(context.Context) (*CaseDocument, error)
	predicates    []predicate.CaseDocument
}

var _ ent.Mutation = (*CaseDocumentMutation)(nil)

// casedocumentOption allows management of the mutation configuration using functional options.
type casedocumentOption func(*CaseDocumentMutation)

// newCaseDocumentMutation creates new mutation for the CaseDocument entity.
func newCaseDocumentMutation(c config, op Op, opts ...casedocumentOption) *CaseDocumentMutation {
	m := &CaseDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeCaseDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCaseDocumentID sets the ID field of the mutation.
func withCaseDocumentID(id string) casedocumentOption {
	return func(m *CaseDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *CaseDocument
		)
		m.oldValue = func(ctx context.Context) (*CaseDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CaseDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCaseDocument sets the old CaseDocument of the mutation.
func withCaseDocument(node *CaseDocument) casedocumentOption {
	return func(m *CaseDocumentMutation) {
		m.oldValue = func(context.Context) (*CaseDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CaseDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CaseDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CaseDocument entities.
func (m *CaseDocumentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CaseDocumentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CaseDocumentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CaseDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *CaseDocumentMutation) SetCaseID(s string) {
	m._case = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *CaseDocumentMutation) CaseID() (r string, exists bool) {
	v := m._case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the CaseDocument entity.
// If the CaseDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseDocumentMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *CaseDocumentMutation) ResetCaseID() {
	m._case = nil
}

// SetKind sets the "kind" field.
func (m *CaseDocumentMutation) SetKind(c casedocument.Kind) {
	m.kind = &c
}

// Kind returns the value of the "kind" field in the mutation.
func (m *CaseDocumentMutation) Kind() (r casedocument.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the CaseDocument entity.
// If the CaseDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseDocumentMutation) OldKind(ctx context.Context) (v casedocument.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *CaseDocumentMutation) ResetKind() {
	m.kind = nil
}

// SetName sets the "name" field.
func (m *CaseDocumentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CaseDocumentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the CaseDocument entity.
// If the CaseDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseDocumentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CaseDocumentMutation) ResetName() {
	m.name = nil
}

// SetStorageKey sets the "storage_key" field.
func (m *CaseDocumentMutation) SetStorageKey(s string) {
	m.storage_key = &s
}

// StorageKey returns the value of the "storage_key" field in the mutation.
func (m *CaseDocumentMutation) StorageKey() (r string, exists bool) {
	v := m.storage_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageKey returns the old "storage_key" field's value of the CaseDocument entity.
// If the CaseDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseDocumentMutation) OldStorageKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageKey: %w", err)
	}
	return oldValue.StorageKey, nil
}

// ResetStorageKey resets all changes to the "storage_key" field.
func (m *CaseDocumentMutation) ResetStorageKey() {
	m.storage_key = nil
}

// SetPosition sets the "position" field.
func (m *CaseDocumentMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *CaseDocumentMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the CaseDocument entity.
// If the CaseDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseDocumentMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *CaseDocumentMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *CaseDocumentMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *CaseDocumentMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetContentType sets the "content_type" field.
func (m *CaseDocumentMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *CaseDocumentMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the CaseDocument entity.
// If the CaseDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseDocumentMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *CaseDocumentMutation) ResetContentType() {
	m.content_type = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *CaseDocumentMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *CaseDocumentMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the CaseDocument entity.
// If the CaseDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseDocumentMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *CaseDocumentMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *CaseDocumentMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *CaseDocumentMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *CaseDocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *CaseDocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the CaseDocument entity.
// If the CaseDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseDocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *CaseDocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearCase clears the "case" edge to the CollectionCase entity.
func (m *CaseDocumentMutation) ClearCase() {
	m.cleared_case = true
	m.clearedFields[casedocument.FieldCaseID] = struct{}{}
}

// CaseCleared reports if the "case" edge to the CollectionCase entity was cleared.
func (m *CaseDocumentMutation) CaseCleared() bool {
	return m.cleared_case
}

// CaseIDs returns the "case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CaseID instead. It exists only for internal usage by the builders.
func (m *CaseDocumentMutation) CaseIDs() (ids []string) {
	if id := m._case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCase resets all changes to the "case" edge.
func (m *CaseDocumentMutation) ResetCase() {
	m._case = nil
	m.cleared_case = false
}

// Where appends a list predicates to the CaseDocumentMutation builder.
func (m *CaseDocumentMutation) Where(ps ...predicate.CaseDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CaseDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CaseDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CaseDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CaseDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CaseDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CaseDocument).
func (m *CaseDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CaseDocumentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m._case != nil {
		fields = append(fields, casedocument.FieldCaseID)
	}
	if m.kind != nil {
		fields = append(fields, casedocument.FieldKind)
	}
	if m.name != nil {
		fields = append(fields, casedocument.FieldName)
	}
	if m.storage_key != nil {
		fields = append(fields, casedocument.FieldStorageKey)
	}
	if m.position != nil {
		fields = append(fields, casedocument.FieldPosition)
	}
	if m.content_type != nil {
		fields = append(fields, casedocument.FieldContentType)
	}
	if m.size_bytes != nil {
		fields = append(fields, casedocument.FieldSizeBytes)
	}
	if m.uploaded_at != nil {
		fields = append(fields, casedocument.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CaseDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case casedocument.FieldCaseID:
		return m.CaseID()
	case casedocument.FieldKind:
		return m.Kind()
	case casedocument.FieldName:
		return m.Name()
	case casedocument.FieldStorageKey:
		return m.StorageKey()
	case casedocument.FieldPosition:
		return m.Position()
	case casedocument.FieldContentType:
		return m.ContentType()
	case casedocument.FieldSizeBytes:
		return m.SizeBytes()
	case casedocument.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CaseDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case casedocument.FieldCaseID:
		return m.OldCaseID(ctx)
	case casedocument.FieldKind:
		return m.OldKind(ctx)
	case casedocument.FieldName:
		return m.OldName(ctx)
	case casedocument.FieldStorageKey:
		return m.OldStorageKey(ctx)
	case casedocument.FieldPosition:
		return m.OldPosition(ctx)
	case casedocument.FieldContentType:
		return m.OldContentType(ctx)
	case casedocument.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case casedocument.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CaseDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case casedocument.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case casedocument.FieldKind:
		v, ok := value.(casedocument.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case casedocument.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case casedocument.FieldStorageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageKey(v)
		return nil
	case casedocument.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case casedocument.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case casedocument.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case casedocument.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CaseDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CaseDocumentMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, casedocument.FieldPosition)
	}
	if m.addsize_bytes != nil {
		fields = append(fields, casedocument.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CaseDocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case casedocument.FieldPosition:
		return m.AddedPosition()
	case casedocument.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case casedocument.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case casedocument.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown CaseDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CaseDocumentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CaseDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CaseDocumentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CaseDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CaseDocumentMutation) ResetField(name string) error {
	switch name {
	case casedocument.FieldCaseID:
		m.ResetCaseID()
		return nil
	case casedocument.FieldKind:
		m.ResetKind()
		return nil
	case casedocument.FieldName:
		m.ResetName()
		return nil
	case casedocument.FieldStorageKey:
		m.ResetStorageKey()
		return nil
	case casedocument.FieldPosition:
		m.ResetPosition()
		return nil
	case casedocument.FieldContentType:
		m.ResetContentType()
		return nil
	case casedocument.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case casedocument.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown CaseDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CaseDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._case != nil {
		edges = append(edges, casedocument.EdgeCase)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CaseDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case casedocument.EdgeCase:
		if id := m._case; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CaseDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CaseDocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CaseDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_case {
		edges = append(edges, casedocument.EdgeCase)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CaseDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case casedocument.EdgeCase:
		return m.cleared_case
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CaseDocumentMutation) ClearEdge(name string) error {
	switch name {
	case casedocument.EdgeCase:
		m.ClearCase()
		return nil
	}
	return fmt.Errorf("unknown CaseDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CaseDocumentMutation) ResetEdge(name string) error {
	switch name {
	case casedocument.EdgeCase:
		m.ResetCase()
		return nil
	}
	return fmt.Errorf("unknown CaseDocument edge %s", name)
}

// CaseEventMutation represents an operation that mutates the CaseEvent nodes in the graph.
type CaseEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	milestone          *caseevent.Milestone
	occurred_at        *time.Time
	detail             *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	_case              *string
	cleared_case       bool
	suggestions        map[string]struct{}
	removedsuggestions map[string]struct{}
	clearedsuggestions bool
	done               bool
	oldValue           func(context.Context) (*CaseEvent, error)
	predicates         []predicate.CaseEvent
}

var _ ent.Mutation = (*CaseEventMutation)(nil)

// caseeventOption allows management of the mutation configuration using functional options.
type caseeventOption func(*CaseEventMutation)

// newCaseEventMutation creates new mutation for the CaseEvent entity.
func newCaseEventMutation(c config, op Op, opts ...caseeventOption) *CaseEventMutation {
	m := &CaseEventMutation{
		config:        c,
		op:            op,
		typ:           TypeCaseEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCaseEventID sets the ID field of the mutation.
func withCaseEventID(id string) caseeventOption {
	return func(m *CaseEventMutation) {
		var (
			err   error
			once  sync.Once
			value *CaseEvent
		)
		m.oldValue = func(ctx context.Context) (*CaseEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CaseEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCaseEvent sets the old CaseEvent of the mutation.
func withCaseEvent(node *CaseEvent) caseeventOption {
	return func(m *CaseEventMutation) {
		m.oldValue = func(context.Context) (*CaseEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CaseEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CaseEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CaseEvent entities.
func (m *CaseEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CaseEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CaseEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CaseEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *CaseEventMutation) SetCaseID(s string) {
	m._case = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *CaseEventMutation) CaseID() (r string, exists bool) {
	v := m._case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the CaseEvent entity.
// If the CaseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseEventMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *CaseEventMutation) ResetCaseID() {
	m._case = nil
}

// SetMilestone sets the "milestone" field.
func (m *CaseEventMutation) SetMilestone(c caseevent.Milestone) {
	m.milestone = &c
}

// Milestone returns the value of the "milestone" field in the mutation.
func (m *CaseEventMutation) Milestone() (r caseevent.Milestone, exists bool) {
	v := m.milestone
	if v == nil {
		return
	}
	return *v, true
}

// OldMilestone returns the old "milestone" field's value of the CaseEvent entity.
// If the CaseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseEventMutation) OldMilestone(ctx context.Context) (v caseevent.Milestone, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMilestone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMilestone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMilestone: %w", err)
	}
	return oldValue.Milestone, nil
}

// ResetMilestone resets all changes to the "milestone" field.
func (m *CaseEventMutation) ResetMilestone() {
	m.milestone = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *CaseEventMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *CaseEventMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the CaseEvent entity.
// If the CaseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseEventMutation) OldOccurredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ClearOccurredAt clears the value of the "occurred_at" field.
func (m *CaseEventMutation) ClearOccurredAt() {
	m.occurred_at = nil
	m.clearedFields[caseevent.FieldOccurredAt] = struct{}{}
}

// OccurredAtCleared returns if the "occurred_at" field was cleared in this mutation.
func (m *CaseEventMutation) OccurredAtCleared() bool {
	_, ok := m.clearedFields[caseevent.FieldOccurredAt]
	return ok
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *CaseEventMutation) ResetOccurredAt() {
	m.occurred_at = nil
	delete(m.clearedFields, caseevent.FieldOccurredAt)
}

// SetDetail sets the "detail" field.
func (m *CaseEventMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *CaseEventMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the CaseEvent entity.
// If the CaseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseEventMutation) OldDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *CaseEventMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[caseevent.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *CaseEventMutation) DetailCleared() bool {
	_, ok := m.clearedFields[caseevent.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *CaseEventMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, caseevent.FieldDetail)
}

// SetCreatedAt sets the "created_at" field.
func (m *CaseEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CaseEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CaseEvent entity.
// If the CaseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CaseEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CaseEventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CaseEventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CaseEvent entity.
// If the CaseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseEventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CaseEventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCase clears the "case" edge to the CollectionCase entity.
func (m *CaseEventMutation) ClearCase() {
	m.cleared_case = true
	m.clearedFields[caseevent.FieldCaseID] = struct{}{}
}

// CaseCleared reports if the "case" edge to the CollectionCase entity was cleared.
func (m *CaseEventMutation) CaseCleared() bool {
	return m.cleared_case
}

// CaseIDs returns the "case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CaseID instead. It exists only for internal usage by the builders.
func (m *CaseEventMutation) CaseIDs() (ids []string) {
	if id := m._case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCase resets all changes to the "case" edge.
func (m *CaseEventMutation) ResetCase() {
	m._case = nil
	m.cleared_case = false
}

// AddSuggestionIDs adds the "suggestions" edge to the Suggestion entity by ids.
func (m *CaseEventMutation) AddSuggestionIDs(ids ...string) {
	if m.suggestions == nil {
		m.suggestions = make(map[string]struct{})
	}
	for i := range ids {
		m.suggestions[ids[i]] = struct{}{}
	}
}

// ClearSuggestions clears the "suggestions" edge to the Suggestion entity.
func (m *CaseEventMutation) ClearSuggestions() {
	m.clearedsuggestions = true
}

// SuggestionsCleared reports if the "suggestions" edge to the Suggestion entity was cleared.
func (m *CaseEventMutation) SuggestionsCleared() bool {
	return m.clearedsuggestions
}

// RemoveSuggestionIDs removes the "suggestions" edge to the Suggestion entity by IDs.
func (m *CaseEventMutation) RemoveSuggestionIDs(ids ...string) {
	if m.removedsuggestions == nil {
		m.removedsuggestions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.suggestions, ids[i])
		m.removedsuggestions[ids[i]] = struct{}{}
	}
}

// RemovedSuggestions returns the removed IDs of the "suggestions" edge to the Suggestion entity.
func (m *CaseEventMutation) RemovedSuggestionsIDs() (ids []string) {
	for id := range m.removedsuggestions {
		ids = append(ids, id)
	}
	return
}

// SuggestionsIDs returns the "suggestions" edge IDs in the mutation.
func (m *CaseEventMutation) SuggestionsIDs() (ids []string) {
	for id := range m.suggestions {
		ids = append(ids, id)
	}
	return
}

// ResetSuggestions resets all changes to the "suggestions" edge.
func (m *CaseEventMutation) ResetSuggestions() {
	m.suggestions = nil
	m.clearedsuggestions = false
	m.removedsuggestions = nil
}

// Where appends a list predicates to the CaseEventMutation builder.
func (m *CaseEventMutation) Where(ps ...predicate.CaseEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CaseEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CaseEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CaseEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CaseEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CaseEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CaseEvent).
func (m *CaseEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CaseEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m._case != nil {
		fields = append(fields, caseevent.FieldCaseID)
	}
	if m.milestone != nil {
		fields = append(fields, caseevent.FieldMilestone)
	}
	if m.occurred_at != nil {
		fields = append(fields, caseevent.FieldOccurredAt)
	}
	if m.detail != nil {
		fields = append(fields, caseevent.FieldDetail)
	}
	if m.created_at != nil {
		fields = append(fields, caseevent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, caseevent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CaseEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case caseevent.FieldCaseID:
		return m.CaseID()
	case caseevent.FieldMilestone:
		return m.Milestone()
	case caseevent.FieldOccurredAt:
		return m.OccurredAt()
	case caseevent.FieldDetail:
		return m.Detail()
	case caseevent.FieldCreatedAt:
		return m.CreatedAt()
	case caseevent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CaseEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case caseevent.FieldCaseID:
		return m.OldCaseID(ctx)
	case caseevent.FieldMilestone:
		return m.OldMilestone(ctx)
	case caseevent.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case caseevent.FieldDetail:
		return m.OldDetail(ctx)
	case caseevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case caseevent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CaseEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case caseevent.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case caseevent.FieldMilestone:
		v, ok := value.(caseevent.Milestone)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMilestone(v)
		return nil
	case caseevent.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case caseevent.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case caseevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case caseevent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CaseEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CaseEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CaseEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CaseEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CaseEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(caseevent.FieldOccurredAt) {
		fields = append(fields, caseevent.FieldOccurredAt)
	}
	if m.FieldCleared(caseevent.FieldDetail) {
		fields = append(fields, caseevent.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CaseEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CaseEventMutation) ClearField(name string) error {
	switch name {
	case caseevent.FieldOccurredAt:
		m.ClearOccurredAt()
		return nil
	case caseevent.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown CaseEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CaseEventMutation) ResetField(name string) error {
	switch name {
	case caseevent.FieldCaseID:
		m.ResetCaseID()
		return nil
	case caseevent.FieldMilestone:
		m.ResetMilestone()
		return nil
	case caseevent.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case caseevent.FieldDetail:
		m.ResetDetail()
		return nil
	case caseevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case caseevent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CaseEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CaseEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m._case != nil {
		edges = append(edges, caseevent.EdgeCase)
	}
	if m.suggestions != nil {
		edges = append(edges, caseevent.EdgeSuggestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CaseEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case caseevent.EdgeCase:
		if id := m._case; id != nil {
			return []ent.Value{*id}
		}
	case caseevent.EdgeSuggestions:
		ids := make([]ent.Value, 0, len(m.suggestions))
		for id := range m.suggestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CaseEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsuggestions != nil {
		edges = append(edges, caseevent.EdgeSuggestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CaseEventMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case caseevent.EdgeSuggestions:
		ids := make([]ent.Value, 0, len(m.removedsuggestions))
		for id := range m.removedsuggestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CaseEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleared_case {
		edges = append(edges, caseevent.EdgeCase)
	}
	if m.clearedsuggestions {
		edges = append(edges, caseevent.EdgeSuggestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CaseEventMutation) EdgeCleared(name string) bool {
	switch name {
	case caseevent.EdgeCase:
		return m.cleared_case
	case caseevent.EdgeSuggestions:
		return m.clearedsuggestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CaseEventMutation) ClearEdge(name string) error {
	switch name {
	case caseevent.EdgeCase:
		m.ClearCase()
		return nil
	}
	return fmt.Errorf("unknown CaseEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CaseEventMutation) ResetEdge(name string) error {
	switch name {
	case caseevent.EdgeCase:
		m.ResetCase()
		return nil
	case caseevent.EdgeSuggestions:
		m.ResetSuggestions()
		return nil
	}
	return fmt.Errorf("unknown CaseEvent edge %s", name)
}

// CollectionCaseMutation represents an operation that mutates the CollectionCase nodes in the graph.
type CollectionCaseMutation struct {
	config
	op               Op
	typ              string
	id               *string
	rol              *string
	court            *string
	debtor_name      *string
	debtor_rut       *string
	status           *collectioncase.Status
	created_at       *time.Time
	updated_at       *time.Time
	deleted_at       *time.Time
	clearedFields    map[string]struct{}
	events           map[string]struct{}
	removedevents    map[string]struct{}
	clearedevents    bool
	documents        map[string]struct{}
	removeddocuments map[string]struct{}
	cleareddocuments bool
	done             bool
	oldValue         func(context.Context) (*CollectionCase, error)
	predicates       []predicate.CollectionCase
}

var _ ent.Mutation = (*CollectionCaseMutation)(nil)

// collectioncaseOption allows management of the mutation configuration using functional options.
type collectioncaseOption func(*CollectionCaseMutation)

// newCollectionCaseMutation creates new mutation for the CollectionCase entity.
func newCollectionCaseMutation(c config, op Op, opts ...collectioncaseOption) *CollectionCaseMutation {
	m := &CollectionCaseMutation{
		config:        c,
		op:            op,
		typ:           TypeCollectionCase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCollectionCaseID sets the ID field of the mutation.
func withCollectionCaseID(id string) collectioncaseOption {
	return func(m *CollectionCaseMutation) {
		var (
			err   error
			once  sync.Once
			value *CollectionCase
		)
		m.oldValue = func(ctx context.Context) (*CollectionCase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CollectionCase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCollectionCase sets the old CollectionCase of the mutation.
func withCollectionCase(node *CollectionCase) collectioncaseOption {
	return func(m *CollectionCaseMutation) {
		m.oldValue = func(context.Context) (*CollectionCase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CollectionCaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CollectionCaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CollectionCase entities.
func (m *CollectionCaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CollectionCaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CollectionCaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CollectionCase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRol sets the "rol" field.
func (m *CollectionCaseMutation) SetRol(s string) {
	m.rol = &s
}

// Rol returns the value of the "rol" field in the mutation.
func (m *CollectionCaseMutation) Rol() (r string, exists bool) {
	v := m.rol
	if v == nil {
		return
	}
	return *v, true
}

// OldRol returns the old "rol" field's value of the CollectionCase entity.
// If the CollectionCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionCaseMutation) OldRol(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRol is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRol requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRol: %w", err)
	}
	return oldValue.Rol, nil
}

// ResetRol resets all changes to the "rol" field.
func (m *CollectionCaseMutation) ResetRol() {
	m.rol = nil
}

// SetCourt sets the "court" field.
func (m *CollectionCaseMutation) SetCourt(s string) {
	m.court = &s
}

// Court returns the value of the "court" field in the mutation.
func (m *CollectionCaseMutation) Court() (r string, exists bool) {
	v := m.court
	if v == nil {
		return
	}
	return *v, true
}

// OldCourt returns the old "court" field's value of the CollectionCase entity.
// If the CollectionCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionCaseMutation) OldCourt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourt: %w", err)
	}
	return oldValue.Court, nil
}

// ResetCourt resets all changes to the "court" field.
func (m *CollectionCaseMutation) ResetCourt() {
	m.court = nil
}

// SetDebtorName sets the "debtor_name" field.
func (m *CollectionCaseMutation) SetDebtorName(s string) {
	m.debtor_name = &s
}

// DebtorName returns the value of the "debtor_name" field in the mutation.
func (m *CollectionCaseMutation) DebtorName() (r string, exists bool) {
	v := m.debtor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDebtorName returns the old "debtor_name" field's value of the CollectionCase entity.
// If the CollectionCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionCaseMutation) OldDebtorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDebtorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDebtorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDebtorName: %w", err)
	}
	return oldValue.DebtorName, nil
}

// ResetDebtorName resets all changes to the "debtor_name" field.
func (m *CollectionCaseMutation) ResetDebtorName() {
	m.debtor_name = nil
}

// SetDebtorRut sets the "debtor_rut" field.
func (m *CollectionCaseMutation) SetDebtorRut(s string) {
	m.debtor_rut = &s
}

// DebtorRut returns the value of the "debtor_rut" field in the mutation.
func (m *CollectionCaseMutation) DebtorRut() (r string, exists bool) {
	v := m.debtor_rut
	if v == nil {
		return
	}
	return *v, true
}

// OldDebtorRut returns the old "debtor_rut" field's value of the CollectionCase entity.
// If the CollectionCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionCaseMutation) OldDebtorRut(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDebtorRut is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDebtorRut requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDebtorRut: %w", err)
	}
	return oldValue.DebtorRut, nil
}

// ResetDebtorRut resets all changes to the "debtor_rut" field.
func (m *CollectionCaseMutation) ResetDebtorRut() {
	m.debtor_rut = nil
}

// SetStatus sets the "status" field.
func (m *CollectionCaseMutation) SetStatus(c collectioncase.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CollectionCaseMutation) Status() (r collectioncase.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CollectionCase entity.
// If the CollectionCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionCaseMutation) OldStatus(ctx context.Context) (v collectioncase.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CollectionCaseMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CollectionCaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CollectionCaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CollectionCase entity.
// If the CollectionCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionCaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CollectionCaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CollectionCaseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CollectionCaseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CollectionCase entity.
// If the CollectionCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionCaseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CollectionCaseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *CollectionCaseMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *CollectionCaseMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the CollectionCase entity.
// If the CollectionCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionCaseMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *CollectionCaseMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[collectioncase.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *CollectionCaseMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[collectioncase.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *CollectionCaseMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, collectioncase.FieldDeletedAt)
}

// AddEventIDs adds the "events" edge to the CaseEvent entity by ids.
func (m *CollectionCaseMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the CaseEvent entity.
func (m *CollectionCaseMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the CaseEvent entity was cleared.
func (m *CollectionCaseMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the CaseEvent entity by IDs.
func (m *CollectionCaseMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the CaseEvent entity.
func (m *CollectionCaseMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *CollectionCaseMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *CollectionCaseMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddDocumentIDs adds the "documents" edge to the CaseDocument entity by ids.
func (m *CollectionCaseMutation) AddDocumentIDs(ids ...string) {
	if m.documents == nil {
		m.documents = make(map[string]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the CaseDocument entity.
func (m *CollectionCaseMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the CaseDocument entity was cleared.
func (m *CollectionCaseMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the CaseDocument entity by IDs.
func (m *CollectionCaseMutation) RemoveDocumentIDs(ids ...string) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the CaseDocument entity.
func (m *CollectionCaseMutation) RemovedDocumentsIDs() (ids []string) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *CollectionCaseMutation) DocumentsIDs() (ids []string) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *CollectionCaseMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// Where appends a list predicates to the CollectionCaseMutation builder.
func (m *CollectionCaseMutation) Where(ps ...predicate.CollectionCase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CollectionCaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CollectionCaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CollectionCase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CollectionCaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CollectionCaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CollectionCase).
func (m *CollectionCaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CollectionCaseMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.rol != nil {
		fields = append(fields, collectioncase.FieldRol)
	}
	if m.court != nil {
		fields = append(fields, collectioncase.FieldCourt)
	}
	if m.debtor_name != nil {
		fields = append(fields, collectioncase.FieldDebtorName)
	}
	if m.debtor_rut != nil {
		fields = append(fields, collectioncase.FieldDebtorRut)
	}
	if m.status != nil {
		fields = append(fields, collectioncase.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, collectioncase.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, collectioncase.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, collectioncase.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CollectionCaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case collectioncase.FieldRol:
		return m.Rol()
	case collectioncase.FieldCourt:
		return m.Court()
	case collectioncase.FieldDebtorName:
		return m.DebtorName()
	case collectioncase.FieldDebtorRut:
		return m.DebtorRut()
	case collectioncase.FieldStatus:
		return m.Status()
	case collectioncase.FieldCreatedAt:
		return m.CreatedAt()
	case collectioncase.FieldUpdatedAt:
		return m.UpdatedAt()
	case collectioncase.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CollectionCaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case collectioncase.FieldRol:
		return m.OldRol(ctx)
	case collectioncase.FieldCourt:
		return m.OldCourt(ctx)
	case collectioncase.FieldDebtorName:
		return m.OldDebtorName(ctx)
	case collectioncase.FieldDebtorRut:
		return m.OldDebtorRut(ctx)
	case collectioncase.FieldStatus:
		return m.OldStatus(ctx)
	case collectioncase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case collectioncase.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case collectioncase.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CollectionCase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CollectionCaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case collectioncase.FieldRol:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRol(v)
		return nil
	case collectioncase.FieldCourt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourt(v)
		return nil
	case collectioncase.FieldDebtorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDebtorName(v)
		return nil
	case collectioncase.FieldDebtorRut:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDebtorRut(v)
		return nil
	case collectioncase.FieldStatus:
		v, ok := value.(collectioncase.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case collectioncase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case collectioncase.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case collectioncase.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CollectionCase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CollectionCaseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CollectionCaseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CollectionCaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CollectionCase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CollectionCaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(collectioncase.FieldDeletedAt) {
		fields = append(fields, collectioncase.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CollectionCaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CollectionCaseMutation) ClearField(name string) error {
	switch name {
	case collectioncase.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown CollectionCase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CollectionCaseMutation) ResetField(name string) error {
	switch name {
	case collectioncase.FieldRol:
		m.ResetRol()
		return nil
	case collectioncase.FieldCourt:
		m.ResetCourt()
		return nil
	case collectioncase.FieldDebtorName:
		m.ResetDebtorName()
		return nil
	case collectioncase.FieldDebtorRut:
		m.ResetDebtorRut()
		return nil
	case collectioncase.FieldStatus:
		m.ResetStatus()
		return nil
	case collectioncase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case collectioncase.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case collectioncase.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown CollectionCase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CollectionCaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.events != nil {
		edges = append(edges, collectioncase.EdgeEvents)
	}
	if m.documents != nil {
		edges = append(edges, collectioncase.EdgeDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CollectionCaseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case collectioncase.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case collectioncase.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CollectionCaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedevents != nil {
		edges = append(edges, collectioncase.EdgeEvents)
	}
	if m.removeddocuments != nil {
		edges = append(edges, collectioncase.EdgeDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CollectionCaseMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case collectioncase.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case collectioncase.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CollectionCaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedevents {
		edges = append(edges, collectioncase.EdgeEvents)
	}
	if m.cleareddocuments {
		edges = append(edges, collectioncase.EdgeDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CollectionCaseMutation) EdgeCleared(name string) bool {
	switch name {
	case collectioncase.EdgeEvents:
		return m.clearedevents
	case collectioncase.EdgeDocuments:
		return m.cleareddocuments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CollectionCaseMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown CollectionCase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CollectionCaseMutation) ResetEdge(name string) error {
	switch name {
	case collectioncase.EdgeEvents:
		m.ResetEvents()
		return nil
	case collectioncase.EdgeDocuments:
		m.ResetDocuments()
		return nil
	}
	return fmt.Errorf("unknown CollectionCase edge %s", name)
}

// SuggestionMutation represents an operation that mutates the Suggestion nodes in the graph.
type SuggestionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	name              *string
	doc_type          *suggestion.DocType
	content           *map[string]interface{}
	storage_key       *string
	score             *float64
	addscore          *float64
	submitted         *bool
	submitted_at      *time.Time
	created_at        *time.Time
	clearedFields     map[string]struct{}
	case_event        *string
	clearedcase_event bool
	done              bool
	oldValue          func(context.Context) (*Suggestion, error)
	predicates        []predicate.Suggestion
}

var _ ent.Mutation = (*SuggestionMutation)(nil)

// suggestionOption allows management of the mutation configuration using functional options.
type suggestionOption func(*SuggestionMutation)

// newSuggestionMutation creates new mutation for the Suggestion entity.
func newSuggestionMutation(c config, op Op, opts ...suggestionOption) *SuggestionMutation {
	m := &SuggestionMutation{
		config:        c,
		op:            op,
		typ:           TypeSuggestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSuggestionID sets the ID field of the mutation.
func withSuggestionID(id string) suggestionOption {
	return func(m *SuggestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Suggestion
		)
		m.oldValue = func(ctx context.Context) (*Suggestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Suggestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSuggestion sets the old Suggestion of the mutation.
func withSuggestion(node *Suggestion) suggestionOption {
	return func(m *SuggestionMutation) {
		m.oldValue = func(context.Context) (*Suggestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SuggestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SuggestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Suggestion entities.
func (m *SuggestionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SuggestionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SuggestionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Suggestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseEventID sets the "case_event_id" field.
func (m *SuggestionMutation) SetCaseEventID(s string) {
	m.case_event = &s
}

// CaseEventID returns the value of the "case_event_id" field in the mutation.
func (m *SuggestionMutation) CaseEventID() (r string, exists bool) {
	v := m.case_event
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseEventID returns the old "case_event_id" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldCaseEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseEventID: %w", err)
	}
	return oldValue.CaseEventID, nil
}

// ResetCaseEventID resets all changes to the "case_event_id" field.
func (m *SuggestionMutation) ResetCaseEventID() {
	m.case_event = nil
}

// SetName sets the "name" field.
func (m *SuggestionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SuggestionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SuggestionMutation) ResetName() {
	m.name = nil
}

// SetDocType sets the "doc_type" field.
func (m *SuggestionMutation) SetDocType(st suggestion.DocType) {
	m.doc_type = &st
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *SuggestionMutation) DocType() (r suggestion.DocType, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldDocType(ctx context.Context) (v suggestion.DocType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *SuggestionMutation) ResetDocType() {
	m.doc_type = nil
}

// SetContent sets the "content" field.
func (m *SuggestionMutation) SetContent(value map[string]interface{}) {
	m.content = &value
}

// Content returns the value of the "content" field in the mutation.
func (m *SuggestionMutation) Content() (r map[string]interface{}, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldContent(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *SuggestionMutation) ClearContent() {
	m.content = nil
	m.clearedFields[suggestion.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *SuggestionMutation) ContentCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *SuggestionMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, suggestion.FieldContent)
}

// SetStorageKey sets the "storage_key" field.
func (m *SuggestionMutation) SetStorageKey(s string) {
	m.storage_key = &s
}

// StorageKey returns the value of the "storage_key" field in the mutation.
func (m *SuggestionMutation) StorageKey() (r string, exists bool) {
	v := m.storage_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageKey returns the old "storage_key" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldStorageKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageKey: %w", err)
	}
	return oldValue.StorageKey, nil
}

// ClearStorageKey clears the value of the "storage_key" field.
func (m *SuggestionMutation) ClearStorageKey() {
	m.storage_key = nil
	m.clearedFields[suggestion.FieldStorageKey] = struct{}{}
}

// StorageKeyCleared returns if the "storage_key" field was cleared in this mutation.
func (m *SuggestionMutation) StorageKeyCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldStorageKey]
	return ok
}

// ResetStorageKey resets all changes to the "storage_key" field.
func (m *SuggestionMutation) ResetStorageKey() {
	m.storage_key = nil
	delete(m.clearedFields, suggestion.FieldStorageKey)
}

// SetScore sets the "score" field.
func (m *SuggestionMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *SuggestionMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *SuggestionMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *SuggestionMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *SuggestionMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetSubmitted sets the "submitted" field.
func (m *SuggestionMutation) SetSubmitted(b bool) {
	m.submitted = &b
}

// Submitted returns the value of the "submitted" field in the mutation.
func (m *SuggestionMutation) Submitted() (r bool, exists bool) {
	v := m.submitted
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmitted returns the old "submitted" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldSubmitted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmitted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmitted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmitted: %w", err)
	}
	return oldValue.Submitted, nil
}

// ResetSubmitted resets all changes to the "submitted" field.
func (m *SuggestionMutation) ResetSubmitted() {
	m.submitted = nil
}

// SetSubmittedAt sets the "submitted_at" field.
func (m *SuggestionMutation) SetSubmittedAt(t time.Time) {
	m.submitted_at = &t
}

// SubmittedAt returns the value of the "submitted_at" field in the mutation.
func (m *SuggestionMutation) SubmittedAt() (r time.Time, exists bool) {
	v := m.submitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedAt returns the old "submitted_at" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldSubmittedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedAt: %w", err)
	}
	return oldValue.SubmittedAt, nil
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (m *SuggestionMutation) ClearSubmittedAt() {
	m.submitted_at = nil
	m.clearedFields[suggestion.FieldSubmittedAt] = struct{}{}
}

// SubmittedAtCleared returns if the "submitted_at" field was cleared in this mutation.
func (m *SuggestionMutation) SubmittedAtCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldSubmittedAt]
	return ok
}

// ResetSubmittedAt resets all changes to the "submitted_at" field.
func (m *SuggestionMutation) ResetSubmittedAt() {
	m.submitted_at = nil
	delete(m.clearedFields, suggestion.FieldSubmittedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *SuggestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SuggestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SuggestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCaseEvent clears the "case_event" edge to the CaseEvent entity.
func (m *SuggestionMutation) ClearCaseEvent() {
	m.clearedcase_event = true
	m.clearedFields[suggestion.FieldCaseEventID] = struct{}{}
}

// CaseEventCleared reports if the "case_event" edge to the CaseEvent entity was cleared.
func (m *SuggestionMutation) CaseEventCleared() bool {
	return m.clearedcase_event
}

// CaseEventIDs returns the "case_event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CaseEventID instead. It exists only for internal usage by the builders.
func (m *SuggestionMutation) CaseEventIDs() (ids []string) {
	if id := m.case_event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCaseEvent resets all changes to the "case_event" edge.
func (m *SuggestionMutation) ResetCaseEvent() {
	m.case_event = nil
	m.clearedcase_event = false
}

// Where appends a list predicates to the SuggestionMutation builder.
func (m *SuggestionMutation) Where(ps ...predicate.Suggestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SuggestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SuggestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Suggestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SuggestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SuggestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Suggestion).
func (m *SuggestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SuggestionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.case_event != nil {
		fields = append(fields, suggestion.FieldCaseEventID)
	}
	if m.name != nil {
		fields = append(fields, suggestion.FieldName)
	}
	if m.doc_type != nil {
		fields = append(fields, suggestion.FieldDocType)
	}
	if m.content != nil {
		fields = append(fields, suggestion.FieldContent)
	}
	if m.storage_key != nil {
		fields = append(fields, suggestion.FieldStorageKey)
	}
	if m.score != nil {
		fields = append(fields, suggestion.FieldScore)
	}
	if m.submitted != nil {
		fields = append(fields, suggestion.FieldSubmitted)
	}
	if m.submitted_at != nil {
		fields = append(fields, suggestion.FieldSubmittedAt)
	}
	if m.created_at != nil {
		fields = append(fields, suggestion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SuggestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case suggestion.FieldCaseEventID:
		return m.CaseEventID()
	case suggestion.FieldName:
		return m.Name()
	case suggestion.FieldDocType:
		return m.DocType()
	case suggestion.FieldContent:
		return m.Content()
	case suggestion.FieldStorageKey:
		return m.StorageKey()
	case suggestion.FieldScore:
		return m.Score()
	case suggestion.FieldSubmitted:
		return m.Submitted()
	case suggestion.FieldSubmittedAt:
		return m.SubmittedAt()
	case suggestion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SuggestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case suggestion.FieldCaseEventID:
		return m.OldCaseEventID(ctx)
	case suggestion.FieldName:
		return m.OldName(ctx)
	case suggestion.FieldDocType:
		return m.OldDocType(ctx)
	case suggestion.FieldContent:
		return m.OldContent(ctx)
	case suggestion.FieldStorageKey:
		return m.OldStorageKey(ctx)
	case suggestion.FieldScore:
		return m.OldScore(ctx)
	case suggestion.FieldSubmitted:
		return m.OldSubmitted(ctx)
	case suggestion.FieldSubmittedAt:
		return m.OldSubmittedAt(ctx)
	case suggestion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Suggestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SuggestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case suggestion.FieldCaseEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseEventID(v)
		return nil
	case suggestion.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case suggestion.FieldDocType:
		v, ok := value.(suggestion.DocType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case suggestion.FieldContent:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case suggestion.FieldStorageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageKey(v)
		return nil
	case suggestion.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case suggestion.FieldSubmitted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmitted(v)
		return nil
	case suggestion.FieldSubmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedAt(v)
		return nil
	case suggestion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Suggestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SuggestionMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, suggestion.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SuggestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case suggestion.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SuggestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case suggestion.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown Suggestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SuggestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(suggestion.FieldContent) {
		fields = append(fields, suggestion.FieldContent)
	}
	if m.FieldCleared(suggestion.FieldStorageKey) {
		fields = append(fields, suggestion.FieldStorageKey)
	}
	if m.FieldCleared(suggestion.FieldSubmittedAt) {
		fields = append(fields, suggestion.FieldSubmittedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SuggestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SuggestionMutation) ClearField(name string) error {
	switch name {
	case suggestion.FieldContent:
		m.ClearContent()
		return nil
	case suggestion.FieldStorageKey:
		m.ClearStorageKey()
		return nil
	case suggestion.FieldSubmittedAt:
		m.ClearSubmittedAt()
		return nil
	}
	return fmt.Errorf("unknown Suggestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SuggestionMutation) ResetField(name string) error {
	switch name {
	case suggestion.FieldCaseEventID:
		m.ResetCaseEventID()
		return nil
	case suggestion.FieldName:
		m.ResetName()
		return nil
	case suggestion.FieldDocType:
		m.ResetDocType()
		return nil
	case suggestion.FieldContent:
		m.ResetContent()
		return nil
	case suggestion.FieldStorageKey:
		m.ResetStorageKey()
		return nil
	case suggestion.FieldScore:
		m.ResetScore()
		return nil
	case suggestion.FieldSubmitted:
		m.ResetSubmitted()
		return nil
	case suggestion.FieldSubmittedAt:
		m.ResetSubmittedAt()
		return nil
	case suggestion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Suggestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SuggestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.case_event != nil {
		edges = append(edges, suggestion.EdgeCaseEvent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SuggestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case suggestion.EdgeCaseEvent:
		if id := m.case_event; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SuggestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SuggestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SuggestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcase_event {
		edges = append(edges, suggestion.EdgeCaseEvent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SuggestionMutation) EdgeCleared(name string) bool {
	switch name {
	case suggestion.EdgeCaseEvent:
		return m.clearedcase_event
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SuggestionMutation) ClearEdge(name string) error {
	switch name {
	case suggestion.EdgeCaseEvent:
		m.ClearCaseEvent()
		return nil
	}
	return fmt.Errorf("unknown Suggestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SuggestionMutation) ResetEdge(name string) error {
	switch name {
	case suggestion.EdgeCaseEvent:
		m.ResetCaseEvent()
		return nil
	}
	return fmt.Errorf("unknown Suggestion edge %s", name)
}

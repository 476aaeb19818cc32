// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/andeslegal/cobranza/ent/casedocument"
	"github.com/andeslegal/cobranza/ent/collectioncase"
	"github.com/andeslegal/cobranza/ent/predicate"
)

// CaseDocumentQuery is the builder for querying CaseDocument entities.
type CaseDocumentQuery struct {
	config
	ctx        *QueryContext
	order      []casedocument.OrderOption
	inters     []Interceptor
	predicates []predicate.CaseDocument
	withCase   *CollectionCaseQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CaseDocumentQuery builder.
func (_q *CaseDocumentQuery) Where(ps ...predicate.CaseDocument) *CaseDocumentQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CaseDocumentQuery) Limit(limit int) *CaseDocumentQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CaseDocumentQuery) Offset(offset int) *CaseDocumentQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CaseDocumentQuery) Unique(unique bool) *CaseDocumentQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CaseDocumentQuery) Order(o ...casedocument.OrderOption) *CaseDocumentQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCase chains the current query on the "case" edge.
func (_q *CaseDocumentQuery) QueryCase() *CollectionCaseQuery {
	query := (&CollectionCaseClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(casedocument.Table, casedocument.FieldID, selector),
			sqlgraph.To(collectioncase.Table, collectioncase.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, casedocument.CaseTable, casedocument.CaseColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CaseDocument entity from the query.
// Returns a *NotFoundError when no CaseDocument was found.
func (_q *CaseDocumentQuery) First(ctx context.Context) (*CaseDocument, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{casedocument.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CaseDocumentQuery) FirstX(ctx context.Context) *CaseDocument {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CaseDocument ID from the query.
// Returns a *NotFoundError when no CaseDocument ID was found.
func (_q *CaseDocumentQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{casedocument.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CaseDocumentQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CaseDocument entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CaseDocument entity is found.
// Returns a *NotFoundError when no CaseDocument entities are found.
func (_q *CaseDocumentQuery) Only(ctx context.Context) (*CaseDocument, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{casedocument.Label}
	default:
		return nil, &NotSingularError{casedocument.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CaseDocumentQuery) OnlyX(ctx context.Context) *CaseDocument {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CaseDocument ID in the query.
// Returns a *NotSingularError when more than one CaseDocument ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CaseDocumentQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{casedocument.Label}
	default:
		err = &NotSingularError{casedocument.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CaseDocumentQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CaseDocuments.
func (_q *CaseDocumentQuery) All(ctx context.Context) ([]*CaseDocument, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CaseDocument, *CaseDocumentQuery]()
	return withInterceptors[[]*CaseDocument](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CaseDocumentQuery) AllX(ctx context.Context) []*CaseDocument {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CaseDocument IDs.
func (_q *CaseDocumentQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(casedocument.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CaseDocumentQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CaseDocumentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CaseDocumentQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CaseDocumentQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CaseDocumentQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *CaseDocumentQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CaseDocumentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CaseDocumentQuery) Clone() *CaseDocumentQuery {
	if _q == nil {
		return nil
	}
	return &CaseDocumentQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]casedocument.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.CaseDocument{}, _q.predicates...),
		withCase:   _q.withCase.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCase tells the query-builder to eager-load the nodes that are connected to
// the "case" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CaseDocumentQuery) WithCase(opts ...func(*CollectionCaseQuery)) *CaseDocumentQuery {
	query := (&CollectionCaseClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCase = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CaseID string `json:"case_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CaseDocument.Query().
//		GroupBy(casedocument.FieldCaseID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CaseDocumentQuery) GroupBy(field string, fields ...string) *CaseDocumentGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CaseDocumentGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = casedocument.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CaseID string `json:"case_id,omitempty"`
//	}
//
//	client.CaseDocument.Query().
//		Select(casedocument.FieldCaseID).
//		Scan(ctx, &v)
func (_q *CaseDocumentQuery) Select(fields ...string) *CaseDocumentSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CaseDocumentSelect{CaseDocumentQuery: _q}
	sbuild.label = casedocument.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CaseDocumentSelect configured with the given aggregations.
func (_q *CaseDocumentQuery) Aggregate(fns ...AggregateFunc) *CaseDocumentSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CaseDocumentQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !casedocument.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *CaseDocumentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CaseDocument, error) {
	var (
		nodes       = []*CaseDocument{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withCase != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CaseDocument).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CaseDocument{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withCase; query != nil {
		if err := _q.loadCase(ctx, query, nodes, nil,
			func(n *CaseDocument, e *CollectionCase) { n.Edges.Case = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CaseDocumentQuery) loadCase(ctx context.Context, query *CollectionCaseQuery, nodes []*CaseDocument, init func(*CaseDocument), assign func(*CaseDocument, *CollectionCase)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CaseDocument)
	for i := range nodes {
		fk := nodes[i].CaseID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(collectioncase.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "case_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *CaseDocumentQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CaseDocumentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(casedocument.Table, casedocument.Columns, sqlgraph.NewFieldSpec(casedocument.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, casedocument.FieldID)
		for i := range fields {
			if fields[i] != casedocument.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCase != nil {
			_spec.Node.AddColumnOnce(casedocument.FieldCaseID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *CaseDocumentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(casedocument.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = casedocument.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// CaseDocumentGroupBy is the group-by builder for CaseDocument entities.
type CaseDocumentGroupBy struct {
	selector
	build *CaseDocumentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CaseDocumentGroupBy) Aggregate(fns ...AggregateFunc) *CaseDocumentGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CaseDocumentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CaseDocumentQuery, *CaseDocumentGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CaseDocumentGroupBy) sqlScan(ctx context.Context, root *CaseDocumentQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CaseDocumentSelect is the builder for selecting fields of CaseDocument entities.
type CaseDocumentSelect struct {
	*CaseDocumentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CaseDocumentSelect) Aggregate(fns ...AggregateFunc) *CaseDocumentSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CaseDocumentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CaseDocumentQuery, *CaseDocumentSelect](ctx, _s.CaseDocumentQuery, _s, _s.inters, v)
}

func (_s *CaseDocumentSelect) sqlScan(ctx context.Context, root *CaseDocumentQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

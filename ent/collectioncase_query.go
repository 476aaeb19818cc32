// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/andeslegal/cobranza/ent/casedocument"
	"github.com/andeslegal/cobranza/ent/caseevent"
	"github.com/andeslegal/cobranza/ent/collectioncase"
	"github.com/andeslegal/cobranza/ent/predicate"
)

// CollectionCaseQuery is the builder for querying CollectionCase entities.
type CollectionCaseQuery struct {
	config
	ctx           *QueryContext
	order         []collectioncase.OrderOption
	inters        []Interceptor
	predicates    []predicate.CollectionCase
	withEvents    *CaseEventQuery
	withDocuments *CaseDocumentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CollectionCaseQuery builder.
func (_q *CollectionCaseQuery) Where(ps ...predicate.CollectionCase) *CollectionCaseQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CollectionCaseQuery) Limit(limit int) *CollectionCaseQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CollectionCaseQuery) Offset(offset int) *CollectionCaseQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CollectionCaseQuery) Unique(unique bool) *CollectionCaseQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CollectionCaseQuery) Order(o ...collectioncase.OrderOption) *CollectionCaseQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryEvents chains the current query on the "events" edge.
func (_q *CollectionCaseQuery) QueryEvents() *CaseEventQuery {
	query := (&CaseEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(collectioncase.Table, collectioncase.FieldID, selector),
			sqlgraph.To(caseevent.Table, caseevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, collectioncase.EventsTable, collectioncase.EventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDocuments chains the current query on the "documents" edge.
func (_q *CollectionCaseQuery) QueryDocuments() *CaseDocumentQuery {
	query := (&CaseDocumentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(collectioncase.Table, collectioncase.FieldID, selector),
			sqlgraph.To(casedocument.Table, casedocument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, collectioncase.DocumentsTable, collectioncase.DocumentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CollectionCase entity from the query.
// Returns a *NotFoundError when no CollectionCase was found.
func (_q *CollectionCaseQuery) First(ctx context.Context) (*CollectionCase, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{collectioncase.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CollectionCaseQuery) FirstX(ctx context.Context) *CollectionCase {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CollectionCase ID from the query.
// Returns a *NotFoundError when no CollectionCase ID was found.
func (_q *CollectionCaseQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{collectioncase.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CollectionCaseQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CollectionCase entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CollectionCase entity is found.
// Returns a *NotFoundError when no CollectionCase entities are found.
func (_q *CollectionCaseQuery) Only(ctx context.Context) (*CollectionCase, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{collectioncase.Label}
	default:
		return nil, &NotSingularError{collectioncase.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CollectionCaseQuery) OnlyX(ctx context.Context) *CollectionCase {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CollectionCase ID in the query.
// Returns a *NotSingularError when more than one CollectionCase ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CollectionCaseQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{collectioncase.Label}
	default:
		err = &NotSingularError{collectioncase.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CollectionCaseQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CollectionCases.
func (_q *CollectionCaseQuery) All(ctx context.Context) ([]*CollectionCase, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CollectionCase, *CollectionCaseQuery]()
	return withInterceptors[[]*CollectionCase](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CollectionCaseQuery) AllX(ctx context.Context) []*CollectionCase {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CollectionCase IDs.
func (_q *CollectionCaseQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(collectioncase.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CollectionCaseQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CollectionCaseQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CollectionCaseQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CollectionCaseQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CollectionCaseQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CollectionCaseQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CollectionCaseQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CollectionCaseQuery) Clone() *CollectionCaseQuery {
	if _q == nil {
		return nil
	}
	return &CollectionCaseQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]collectioncase.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.CollectionCase{}, _q.predicates...),
		withEvents:    _q.withEvents.Clone(),
		withDocuments: _q.withDocuments.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CollectionCaseQuery) WithEvents(opts ...func(*CaseEventQuery)) *CollectionCaseQuery {
	query := (&CaseEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// WithDocuments tells the query-builder to eager-load the nodes that are connected to
// the "documents" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CollectionCaseQuery) WithDocuments(opts ...func(*CaseDocumentQuery)) *CollectionCaseQuery {
	query := (&CaseDocumentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDocuments = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Rol string `json:"rol,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CollectionCase.Query().
//		GroupBy(collectioncase.FieldRol).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CollectionCaseQuery) GroupBy(field string, fields ...string) *CollectionCaseGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CollectionCaseGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = collectioncase.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Rol string `json:"rol,omitempty"`
//	}
//
//	client.CollectionCase.Query().
//		Select(collectioncase.FieldRol).
//		Scan(ctx, &v)
func (_q *CollectionCaseQuery) Select(fields ...string) *CollectionCaseSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CollectionCaseSelect{CollectionCaseQuery: _q}
	sbuild.label = collectioncase.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CollectionCaseSelect configured with the given aggregations.
func (_q *CollectionCaseQuery) Aggregate(fns ...AggregateFunc) *CollectionCaseSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CollectionCaseQuery) prepareQuery(ctx context.Context) error {
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
		if !collectioncase.ValidColumn(f) {
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

func (_q *CollectionCaseQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CollectionCase, error) {
	var (
		nodes       = []*CollectionCase{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withEvents != nil,
			_q.withDocuments != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CollectionCase).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CollectionCase{config: _q.config}
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
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *CollectionCase) { n.Edges.Events = []*CaseEvent{} },
			func(n *CollectionCase, e *CaseEvent) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDocuments; query != nil {
		if err := _q.loadDocuments(ctx, query, nodes,
			func(n *CollectionCase) { n.Edges.Documents = []*CaseDocument{} },
			func(n *CollectionCase, e *CaseDocument) { n.Edges.Documents = append(n.Edges.Documents, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CollectionCaseQuery) loadEvents(ctx context.Context, query *CaseEventQuery, nodes []*CollectionCase, init func(*CollectionCase), assign func(*CollectionCase, *CaseEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CollectionCase)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(caseevent.FieldCaseID)
	}
	query.Where(predicate.CaseEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(collectioncase.EventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CaseID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "case_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *CollectionCaseQuery) loadDocuments(ctx context.Context, query *CaseDocumentQuery, nodes []*CollectionCase, init func(*CollectionCase), assign func(*CollectionCase, *CaseDocument)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CollectionCase)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(casedocument.FieldCaseID)
	}
	query.Where(predicate.CaseDocument(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(collectioncase.DocumentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CaseID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "case_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *CollectionCaseQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CollectionCaseQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(collectioncase.Table, collectioncase.Columns, sqlgraph.NewFieldSpec(collectioncase.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, collectioncase.FieldID)
		for i := range fields {
			if fields[i] != collectioncase.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *CollectionCaseQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(collectioncase.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = collectioncase.Columns
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

// CollectionCaseGroupBy is the group-by builder for CollectionCase entities.
type CollectionCaseGroupBy struct {
	selector
	build *CollectionCaseQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CollectionCaseGroupBy) Aggregate(fns ...AggregateFunc) *CollectionCaseGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CollectionCaseGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CollectionCaseQuery, *CollectionCaseGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CollectionCaseGroupBy) sqlScan(ctx context.Context, root *CollectionCaseQuery, v any) error {
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

// CollectionCaseSelect is the builder for selecting fields of CollectionCase entities.
type CollectionCaseSelect struct {
	*CollectionCaseQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CollectionCaseSelect) Aggregate(fns ...AggregateFunc) *CollectionCaseSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CollectionCaseSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CollectionCaseQuery, *CollectionCaseSelect](ctx, _s.CollectionCaseQuery, _s, _s.inters, v)
}

func (_s *CollectionCaseSelect) sqlScan(ctx context.Context, root *CollectionCaseQuery, v any) error {
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

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
	"github.com/andeslegal/cobranza/ent/caseevent"
	"github.com/andeslegal/cobranza/ent/predicate"
	"github.com/andeslegal/cobranza/ent/suggestion"
)

// SuggestionQuery is the builder for querying Suggestion entities.
type SuggestionQuery struct {
	config
	ctx           *QueryContext
	order         []suggestion.OrderOption
	inters        []Interceptor
	predicates    []predicate.Suggestion
	withCaseEvent *CaseEventQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SuggestionQuery builder.
func (_q *SuggestionQuery) Where(ps ...predicate.Suggestion) *SuggestionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SuggestionQuery) Limit(limit int) *SuggestionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SuggestionQuery) Offset(offset int) *SuggestionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SuggestionQuery) Unique(unique bool) *SuggestionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SuggestionQuery) Order(o ...suggestion.OrderOption) *SuggestionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCaseEvent chains the current query on the "case_event" edge.
func (_q *SuggestionQuery) QueryCaseEvent() *CaseEventQuery {
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
			sqlgraph.From(suggestion.Table, suggestion.FieldID, selector),
			sqlgraph.To(caseevent.Table, caseevent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, suggestion.CaseEventTable, suggestion.CaseEventColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Suggestion entity from the query.
// Returns a *NotFoundError when no Suggestion was found.
func (_q *SuggestionQuery) First(ctx context.Context) (*Suggestion, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{suggestion.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SuggestionQuery) FirstX(ctx context.Context) *Suggestion {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Suggestion ID from the query.
// Returns a *NotFoundError when no Suggestion ID was found.
func (_q *SuggestionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{suggestion.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SuggestionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Suggestion entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Suggestion entity is found.
// Returns a *NotFoundError when no Suggestion entities are found.
func (_q *SuggestionQuery) Only(ctx context.Context) (*Suggestion, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{suggestion.Label}
	default:
		return nil, &NotSingularError{suggestion.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SuggestionQuery) OnlyX(ctx context.Context) *Suggestion {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Suggestion ID in the query.
// Returns a *NotSingularError when more than one Suggestion ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SuggestionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{suggestion.Label}
	default:
		err = &NotSingularError{suggestion.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SuggestionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Suggestions.
func (_q *SuggestionQuery) All(ctx context.Context) ([]*Suggestion, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Suggestion, *SuggestionQuery]()
	return withInterceptors[[]*Suggestion](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SuggestionQuery) AllX(ctx context.Context) []*Suggestion {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Suggestion IDs.
func (_q *SuggestionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(suggestion.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SuggestionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SuggestionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SuggestionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SuggestionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SuggestionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *SuggestionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SuggestionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SuggestionQuery) Clone() *SuggestionQuery {
	if _q == nil {
		return nil
	}
	return &SuggestionQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]suggestion.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.Suggestion{}, _q.predicates...),
		withCaseEvent: _q.withCaseEvent.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCaseEvent tells the query-builder to eager-load the nodes that are connected to
// the "case_event" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SuggestionQuery) WithCaseEvent(opts ...func(*CaseEventQuery)) *SuggestionQuery {
	query := (&CaseEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCaseEvent = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CaseEventID string `json:"case_event_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Suggestion.Query().
//		GroupBy(suggestion.FieldCaseEventID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SuggestionQuery) GroupBy(field string, fields ...string) *SuggestionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SuggestionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = suggestion.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CaseEventID string `json:"case_event_id,omitempty"`
//	}
//
//	client.Suggestion.Query().
//		Select(suggestion.FieldCaseEventID).
//		Scan(ctx, &v)
func (_q *SuggestionQuery) Select(fields ...string) *SuggestionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SuggestionSelect{SuggestionQuery: _q}
	sbuild.label = suggestion.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SuggestionSelect configured with the given aggregations.
func (_q *SuggestionQuery) Aggregate(fns ...AggregateFunc) *SuggestionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SuggestionQuery) prepareQuery(ctx context.Context) error {
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
		if !suggestion.ValidColumn(f) {
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

func (_q *SuggestionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Suggestion, error) {
	var (
		nodes       = []*Suggestion{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withCaseEvent != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Suggestion).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Suggestion{config: _q.config}
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
	if query := _q.withCaseEvent; query != nil {
		if err := _q.loadCaseEvent(ctx, query, nodes, nil,
			func(n *Suggestion, e *CaseEvent) { n.Edges.CaseEvent = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SuggestionQuery) loadCaseEvent(ctx context.Context, query *CaseEventQuery, nodes []*Suggestion, init func(*Suggestion), assign func(*Suggestion, *CaseEvent)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Suggestion)
	for i := range nodes {
		fk := nodes[i].CaseEventID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(caseevent.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "case_event_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *SuggestionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SuggestionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(suggestion.Table, suggestion.Columns, sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, suggestion.FieldID)
		for i := range fields {
			if fields[i] != suggestion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCaseEvent != nil {
			_spec.Node.AddColumnOnce(suggestion.FieldCaseEventID)
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

func (_q *SuggestionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(suggestion.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = suggestion.Columns
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

// SuggestionGroupBy is the group-by builder for Suggestion entities.
type SuggestionGroupBy struct {
	selector
	build *SuggestionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SuggestionGroupBy) Aggregate(fns ...AggregateFunc) *SuggestionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SuggestionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SuggestionQuery, *SuggestionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SuggestionGroupBy) sqlScan(ctx context.Context, root *SuggestionQuery, v any) error {
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

// SuggestionSelect is the builder for selecting fields of Suggestion entities.
type SuggestionSelect struct {
	*SuggestionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SuggestionSelect) Aggregate(fns ...AggregateFunc) *SuggestionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SuggestionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SuggestionQuery, *SuggestionSelect](ctx, _s.SuggestionQuery, _s, _s.inters, v)
}

func (_s *SuggestionSelect) sqlScan(ctx context.Context, root *SuggestionQuery, v any) error {
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

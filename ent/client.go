// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/andeslegal/cobranza/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/andeslegal/cobranza/ent/casedocument"
	"github.com/andeslegal/cobranza/ent/caseevent"
	"github.com/andeslegal/cobranza/ent/collectioncase"
	"github.com/andeslegal/cobranza/ent/suggestion"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CaseDocument is the client for interacting with the CaseDocument builders.
	CaseDocument *CaseDocumentClient
	// CaseEvent is the client for interacting with the CaseEvent builders.
	CaseEvent *CaseEventClient
	// CollectionCase is the client for interacting with the CollectionCase builders.
	CollectionCase *CollectionCaseClient
	// Suggestion is the client for interacting with the Suggestion builders.
	Suggestion *SuggestionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CaseDocument = NewCaseDocumentClient(c.config)
	c.CaseEvent = NewCaseEventClient(c.config)
	c.CollectionCase = NewCollectionCaseClient(c.config)
	c.Suggestion = NewSuggestionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		CaseDocument:   NewCaseDocumentClient(cfg),
		CaseEvent:      NewCaseEventClient(cfg),
		CollectionCase: NewCollectionCaseClient(cfg),
		Suggestion:     NewSuggestionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		CaseDocument:   NewCaseDocumentClient(cfg),
		CaseEvent:      NewCaseEventClient(cfg),
		CollectionCase: NewCollectionCaseClient(cfg),
		Suggestion:     NewSuggestionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CaseDocument.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.CaseDocument.Use(hooks...)
	c.CaseEvent.Use(hooks...)
	c.CollectionCase.Use(hooks...)
	c.Suggestion.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CaseDocument.Intercept(interceptors...)
	c.CaseEvent.Intercept(interceptors...)
	c.CollectionCase.Intercept(interceptors...)
	c.Suggestion.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CaseDocumentMutation:
		return c.CaseDocument.mutate(ctx, m)
	case *CaseEventMutation:
		return c.CaseEvent.mutate(ctx, m)
	case *CollectionCaseMutation:
		return c.CollectionCase.mutate(ctx, m)
	case *SuggestionMutation:
		return c.Suggestion.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CaseDocumentClient is a client for the CaseDocument schema.
type CaseDocumentClient struct {
	config
}

// NewCaseDocumentClient returns a client for the CaseDocument from the given config.
func NewCaseDocumentClient(c config) *CaseDocumentClient {
	return &CaseDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `casedocument.Hooks(f(g(h())))`.
func (c *CaseDocumentClient) Use(hooks ...Hook) {
	c.hooks.CaseDocument = append(c.hooks.CaseDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `casedocument.Intercept(f(g(h())))`.
func (c *CaseDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.CaseDocument = append(c.inters.CaseDocument, interceptors...)
}

// Create returns a builder for creating a CaseDocument entity.
func (c *CaseDocumentClient) Create() *CaseDocumentCreate {
	mutation := newCaseDocumentMutation(c.config, OpCreate)
	return &CaseDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CaseDocument entities.
func (c *CaseDocumentClient) CreateBulk(builders ...*CaseDocumentCreate) *CaseDocumentCreateBulk {
	return &CaseDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CaseDocumentClient) MapCreateBulk(slice any, setFunc func(*CaseDocumentCreate, int)) *CaseDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CaseDocumentCreateBulk{err: fmt.Errorf("calling to CaseDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CaseDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CaseDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CaseDocument.
func (c *CaseDocumentClient) Update() *CaseDocumentUpdate {
	mutation := newCaseDocumentMutation(c.config, OpUpdate)
	return &CaseDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CaseDocumentClient) UpdateOne(_m *CaseDocument) *CaseDocumentUpdateOne {
	mutation := newCaseDocumentMutation(c.config, OpUpdateOne, withCaseDocument(_m))
	return &CaseDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CaseDocumentClient) UpdateOneID(id string) *CaseDocumentUpdateOne {
	mutation := newCaseDocumentMutation(c.config, OpUpdateOne, withCaseDocumentID(id))
	return &CaseDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CaseDocument.
func (c *CaseDocumentClient) Delete() *CaseDocumentDelete {
	mutation := newCaseDocumentMutation(c.config, OpDelete)
	return &CaseDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CaseDocumentClient) DeleteOne(_m *CaseDocument) *CaseDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CaseDocumentClient) DeleteOneID(id string) *CaseDocumentDeleteOne {
	builder := c.Delete().Where(casedocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CaseDocumentDeleteOne{builder}
}

// Query returns a query builder for CaseDocument.
func (c *CaseDocumentClient) Query() *CaseDocumentQuery {
	return &CaseDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCaseDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a CaseDocument entity by its id.
func (c *CaseDocumentClient) Get(ctx context.Context, id string) (*CaseDocument, error) {
	return c.Query().Where(casedocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CaseDocumentClient) GetX(ctx context.Context, id string) *CaseDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCase queries the case edge of a CaseDocument.
func (c *CaseDocumentClient) QueryCase(_m *CaseDocument) *CollectionCaseQuery {
	query := (&CollectionCaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(casedocument.Table, casedocument.FieldID, id),
			sqlgraph.To(collectioncase.Table, collectioncase.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, casedocument.CaseTable, casedocument.CaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CaseDocumentClient) Hooks() []Hook {
	return c.hooks.CaseDocument
}

// Interceptors returns the client interceptors.
func (c *CaseDocumentClient) Interceptors() []Interceptor {
	return c.inters.CaseDocument
}

func (c *CaseDocumentClient) mutate(ctx context.Context, m *CaseDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CaseDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CaseDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CaseDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CaseDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CaseDocument mutation op: %q", m.Op())
	}
}

// CaseEventClient is a client for the CaseEvent schema.
type CaseEventClient struct {
	config
}

// NewCaseEventClient returns a client for the CaseEvent from the given config.
func NewCaseEventClient(c config) *CaseEventClient {
	return &CaseEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `caseevent.Hooks(f(g(h())))`.
func (c *CaseEventClient) Use(hooks ...Hook) {
	c.hooks.CaseEvent = append(c.hooks.CaseEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `caseevent.Intercept(f(g(h())))`.
func (c *CaseEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CaseEvent = append(c.inters.CaseEvent, interceptors...)
}

// Create returns a builder for creating a CaseEvent entity.
func (c *CaseEventClient) Create() *CaseEventCreate {
	mutation := newCaseEventMutation(c.config, OpCreate)
	return &CaseEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CaseEvent entities.
func (c *CaseEventClient) CreateBulk(builders ...*CaseEventCreate) *CaseEventCreateBulk {
	return &CaseEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CaseEventClient) MapCreateBulk(slice any, setFunc func(*CaseEventCreate, int)) *CaseEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CaseEventCreateBulk{err: fmt.Errorf("calling to CaseEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CaseEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CaseEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CaseEvent.
func (c *CaseEventClient) Update() *CaseEventUpdate {
	mutation := newCaseEventMutation(c.config, OpUpdate)
	return &CaseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CaseEventClient) UpdateOne(_m *CaseEvent) *CaseEventUpdateOne {
	mutation := newCaseEventMutation(c.config, OpUpdateOne, withCaseEvent(_m))
	return &CaseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CaseEventClient) UpdateOneID(id string) *CaseEventUpdateOne {
	mutation := newCaseEventMutation(c.config, OpUpdateOne, withCaseEventID(id))
	return &CaseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CaseEvent.
func (c *CaseEventClient) Delete() *CaseEventDelete {
	mutation := newCaseEventMutation(c.config, OpDelete)
	return &CaseEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CaseEventClient) DeleteOne(_m *CaseEvent) *CaseEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CaseEventClient) DeleteOneID(id string) *CaseEventDeleteOne {
	builder := c.Delete().Where(caseevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CaseEventDeleteOne{builder}
}

// Query returns a query builder for CaseEvent.
func (c *CaseEventClient) Query() *CaseEventQuery {
	return &CaseEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCaseEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CaseEvent entity by its id.
func (c *CaseEventClient) Get(ctx context.Context, id string) (*CaseEvent, error) {
	return c.Query().Where(caseevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CaseEventClient) GetX(ctx context.Context, id string) *CaseEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCase queries the case edge of a CaseEvent.
func (c *CaseEventClient) QueryCase(_m *CaseEvent) *CollectionCaseQuery {
	query := (&CollectionCaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(caseevent.Table, caseevent.FieldID, id),
			sqlgraph.To(collectioncase.Table, collectioncase.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, caseevent.CaseTable, caseevent.CaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySuggestions queries the suggestions edge of a CaseEvent.
func (c *CaseEventClient) QuerySuggestions(_m *CaseEvent) *SuggestionQuery {
	query := (&SuggestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(caseevent.Table, caseevent.FieldID, id),
			sqlgraph.To(suggestion.Table, suggestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, caseevent.SuggestionsTable, caseevent.SuggestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CaseEventClient) Hooks() []Hook {
	return c.hooks.CaseEvent
}

// Interceptors returns the client interceptors.
func (c *CaseEventClient) Interceptors() []Interceptor {
	return c.inters.CaseEvent
}

func (c *CaseEventClient) mutate(ctx context.Context, m *CaseEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CaseEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CaseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CaseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CaseEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CaseEvent mutation op: %q", m.Op())
	}
}

// CollectionCaseClient is a client for the CollectionCase schema.
type CollectionCaseClient struct {
	config
}

// NewCollectionCaseClient returns a client for the CollectionCase from the given config.
func NewCollectionCaseClient(c config) *CollectionCaseClient {
	return &CollectionCaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `collectioncase.Hooks(f(g(h())))`.
func (c *CollectionCaseClient) Use(hooks ...Hook) {
	c.hooks.CollectionCase = append(c.hooks.CollectionCase, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `collectioncase.Intercept(f(g(h())))`.
func (c *CollectionCaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.CollectionCase = append(c.inters.CollectionCase, interceptors...)
}

// Create returns a builder for creating a CollectionCase entity.
func (c *CollectionCaseClient) Create() *CollectionCaseCreate {
	mutation := newCollectionCaseMutation(c.config, OpCreate)
	return &CollectionCaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CollectionCase entities.
func (c *CollectionCaseClient) CreateBulk(builders ...*CollectionCaseCreate) *CollectionCaseCreateBulk {
	return &CollectionCaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CollectionCaseClient) MapCreateBulk(slice any, setFunc func(*CollectionCaseCreate, int)) *CollectionCaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CollectionCaseCreateBulk{err: fmt.Errorf("calling to CollectionCaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CollectionCaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CollectionCaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CollectionCase.
func (c *CollectionCaseClient) Update() *CollectionCaseUpdate {
	mutation := newCollectionCaseMutation(c.config, OpUpdate)
	return &CollectionCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CollectionCaseClient) UpdateOne(_m *CollectionCase) *CollectionCaseUpdateOne {
	mutation := newCollectionCaseMutation(c.config, OpUpdateOne, withCollectionCase(_m))
	return &CollectionCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CollectionCaseClient) UpdateOneID(id string) *CollectionCaseUpdateOne {
	mutation := newCollectionCaseMutation(c.config, OpUpdateOne, withCollectionCaseID(id))
	return &CollectionCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CollectionCase.
func (c *CollectionCaseClient) Delete() *CollectionCaseDelete {
	mutation := newCollectionCaseMutation(c.config, OpDelete)
	return &CollectionCaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CollectionCaseClient) DeleteOne(_m *CollectionCase) *CollectionCaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CollectionCaseClient) DeleteOneID(id string) *CollectionCaseDeleteOne {
	builder := c.Delete().Where(collectioncase.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CollectionCaseDeleteOne{builder}
}

// Query returns a query builder for CollectionCase.
func (c *CollectionCaseClient) Query() *CollectionCaseQuery {
	return &CollectionCaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCollectionCase},
		inters: c.Interceptors(),
	}
}

// Get returns a CollectionCase entity by its id.
func (c *CollectionCaseClient) Get(ctx context.Context, id string) (*CollectionCase, error) {
	return c.Query().Where(collectioncase.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CollectionCaseClient) GetX(ctx context.Context, id string) *CollectionCase {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvents queries the events edge of a CollectionCase.
func (c *CollectionCaseClient) QueryEvents(_m *CollectionCase) *CaseEventQuery {
	query := (&CaseEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(collectioncase.Table, collectioncase.FieldID, id),
			sqlgraph.To(caseevent.Table, caseevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, collectioncase.EventsTable, collectioncase.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocuments queries the documents edge of a CollectionCase.
func (c *CollectionCaseClient) QueryDocuments(_m *CollectionCase) *CaseDocumentQuery {
	query := (&CaseDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(collectioncase.Table, collectioncase.FieldID, id),
			sqlgraph.To(casedocument.Table, casedocument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, collectioncase.DocumentsTable, collectioncase.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CollectionCaseClient) Hooks() []Hook {
	return c.hooks.CollectionCase
}

// Interceptors returns the client interceptors.
func (c *CollectionCaseClient) Interceptors() []Interceptor {
	return c.inters.CollectionCase
}

func (c *CollectionCaseClient) mutate(ctx context.Context, m *CollectionCaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CollectionCaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CollectionCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CollectionCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CollectionCaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CollectionCase mutation op: %q", m.Op())
	}
}

// SuggestionClient is a client for the Suggestion schema.
type SuggestionClient struct {
	config
}

// NewSuggestionClient returns a client for the Suggestion from the given config.
func NewSuggestionClient(c config) *SuggestionClient {
	return &SuggestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `suggestion.Hooks(f(g(h())))`.
func (c *SuggestionClient) Use(hooks ...Hook) {
	c.hooks.Suggestion = append(c.hooks.Suggestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `suggestion.Intercept(f(g(h())))`.
func (c *SuggestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Suggestion = append(c.inters.Suggestion, interceptors...)
}

// Create returns a builder for creating a Suggestion entity.
func (c *SuggestionClient) Create() *SuggestionCreate {
	mutation := newSuggestionMutation(c.config, OpCreate)
	return &SuggestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Suggestion entities.
func (c *SuggestionClient) CreateBulk(builders ...*SuggestionCreate) *SuggestionCreateBulk {
	return &SuggestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SuggestionClient) MapCreateBulk(slice any, setFunc func(*SuggestionCreate, int)) *SuggestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SuggestionCreateBulk{err: fmt.Errorf("calling to SuggestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SuggestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SuggestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Suggestion.
func (c *SuggestionClient) Update() *SuggestionUpdate {
	mutation := newSuggestionMutation(c.config, OpUpdate)
	return &SuggestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SuggestionClient) UpdateOne(_m *Suggestion) *SuggestionUpdateOne {
	mutation := newSuggestionMutation(c.config, OpUpdateOne, withSuggestion(_m))
	return &SuggestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SuggestionClient) UpdateOneID(id string) *SuggestionUpdateOne {
	mutation := newSuggestionMutation(c.config, OpUpdateOne, withSuggestionID(id))
	return &SuggestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Suggestion.
func (c *SuggestionClient) Delete() *SuggestionDelete {
	mutation := newSuggestionMutation(c.config, OpDelete)
	return &SuggestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SuggestionClient) DeleteOne(_m *Suggestion) *SuggestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SuggestionClient) DeleteOneID(id string) *SuggestionDeleteOne {
	builder := c.Delete().Where(suggestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SuggestionDeleteOne{builder}
}

// Query returns a query builder for Suggestion.
func (c *SuggestionClient) Query() *SuggestionQuery {
	return &SuggestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSuggestion},
		inters: c.Interceptors(),
	}
}

// Get returns a Suggestion entity by its id.
func (c *SuggestionClient) Get(ctx context.Context, id string) (*Suggestion, error) {
	return c.Query().Where(suggestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SuggestionClient) GetX(ctx context.Context, id string) *Suggestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCaseEvent queries the case_event edge of a Suggestion.
func (c *SuggestionClient) QueryCaseEvent(_m *Suggestion) *CaseEventQuery {
	query := (&CaseEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(suggestion.Table, suggestion.FieldID, id),
			sqlgraph.To(caseevent.Table, caseevent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, suggestion.CaseEventTable, suggestion.CaseEventColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SuggestionClient) Hooks() []Hook {
	return c.hooks.Suggestion
}

// Interceptors returns the client interceptors.
func (c *SuggestionClient) Interceptors() []Interceptor {
	return c.inters.Suggestion
}

func (c *SuggestionClient) mutate(ctx context.Context, m *SuggestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SuggestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SuggestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SuggestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SuggestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Suggestion mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CaseDocument, CaseEvent, CollectionCase, Suggestion []ent.Hook
	}
	inters struct {
		CaseDocument, CaseEvent, CollectionCase, Suggestion []ent.Interceptor
	}
)

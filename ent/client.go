// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/loreweave/loreweave/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loreweave/loreweave/ent/checkpoint"
	"github.com/loreweave/loreweave/ent/event"
	"github.com/loreweave/loreweave/ent/llmcall"
	"github.com/loreweave/loreweave/ent/lorepackage"
	"github.com/loreweave/loreweave/ent/researchjob"
	"github.com/loreweave/loreweave/ent/steprun"
	"github.com/loreweave/loreweave/ent/toolcall"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Checkpoint is the client for interacting with the Checkpoint builders.
	Checkpoint *CheckpointClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// LLMCall is the client for interacting with the LLMCall builders.
	LLMCall *LLMCallClient
	// LorePackage is the client for interacting with the LorePackage builders.
	LorePackage *LorePackageClient
	// ResearchJob is the client for interacting with the ResearchJob builders.
	ResearchJob *ResearchJobClient
	// StepRun is the client for interacting with the StepRun builders.
	StepRun *StepRunClient
	// ToolCall is the client for interacting with the ToolCall builders.
	ToolCall *ToolCallClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Checkpoint = NewCheckpointClient(c.config)
	c.Event = NewEventClient(c.config)
	c.LLMCall = NewLLMCallClient(c.config)
	c.LorePackage = NewLorePackageClient(c.config)
	c.ResearchJob = NewResearchJobClient(c.config)
	c.StepRun = NewStepRunClient(c.config)
	c.ToolCall = NewToolCallClient(c.config)
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
		ctx:         ctx,
		config:      cfg,
		Checkpoint:  NewCheckpointClient(cfg),
		Event:       NewEventClient(cfg),
		LLMCall:     NewLLMCallClient(cfg),
		LorePackage: NewLorePackageClient(cfg),
		ResearchJob: NewResearchJobClient(cfg),
		StepRun:     NewStepRunClient(cfg),
		ToolCall:    NewToolCallClient(cfg),
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
		ctx:         ctx,
		config:      cfg,
		Checkpoint:  NewCheckpointClient(cfg),
		Event:       NewEventClient(cfg),
		LLMCall:     NewLLMCallClient(cfg),
		LorePackage: NewLorePackageClient(cfg),
		ResearchJob: NewResearchJobClient(cfg),
		StepRun:     NewStepRunClient(cfg),
		ToolCall:    NewToolCallClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Checkpoint.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.Checkpoint, c.Event, c.LLMCall, c.LorePackage, c.ResearchJob, c.StepRun,
		c.ToolCall,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Checkpoint, c.Event, c.LLMCall, c.LorePackage, c.ResearchJob, c.StepRun,
		c.ToolCall,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CheckpointMutation:
		return c.Checkpoint.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *LLMCallMutation:
		return c.LLMCall.mutate(ctx, m)
	case *LorePackageMutation:
		return c.LorePackage.mutate(ctx, m)
	case *ResearchJobMutation:
		return c.ResearchJob.mutate(ctx, m)
	case *StepRunMutation:
		return c.StepRun.mutate(ctx, m)
	case *ToolCallMutation:
		return c.ToolCall.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CheckpointClient is a client for the Checkpoint schema.
type CheckpointClient struct {
	config
}

// NewCheckpointClient returns a client for the Checkpoint from the given config.
func NewCheckpointClient(c config) *CheckpointClient {
	return &CheckpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checkpoint.Hooks(f(g(h())))`.
func (c *CheckpointClient) Use(hooks ...Hook) {
	c.hooks.Checkpoint = append(c.hooks.Checkpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checkpoint.Intercept(f(g(h())))`.
func (c *CheckpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.Checkpoint = append(c.inters.Checkpoint, interceptors...)
}

// Create returns a builder for creating a Checkpoint entity.
func (c *CheckpointClient) Create() *CheckpointCreate {
	mutation := newCheckpointMutation(c.config, OpCreate)
	return &CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Checkpoint entities.
func (c *CheckpointClient) CreateBulk(builders ...*CheckpointCreate) *CheckpointCreateBulk {
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CheckpointClient) MapCreateBulk(slice any, setFunc func(*CheckpointCreate, int)) *CheckpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CheckpointCreateBulk{err: fmt.Errorf("calling to CheckpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CheckpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Checkpoint.
func (c *CheckpointClient) Update() *CheckpointUpdate {
	mutation := newCheckpointMutation(c.config, OpUpdate)
	return &CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CheckpointClient) UpdateOne(_m *Checkpoint) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpoint(_m))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CheckpointClient) UpdateOneID(id string) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpointID(id))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Checkpoint.
func (c *CheckpointClient) Delete() *CheckpointDelete {
	mutation := newCheckpointMutation(c.config, OpDelete)
	return &CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CheckpointClient) DeleteOne(_m *Checkpoint) *CheckpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CheckpointClient) DeleteOneID(id string) *CheckpointDeleteOne {
	builder := c.Delete().Where(checkpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CheckpointDeleteOne{builder}
}

// Query returns a query builder for Checkpoint.
func (c *CheckpointClient) Query() *CheckpointQuery {
	return &CheckpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCheckpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a Checkpoint entity by its id.
func (c *CheckpointClient) Get(ctx context.Context, id string) (*Checkpoint, error) {
	return c.Query().Where(checkpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CheckpointClient) GetX(ctx context.Context, id string) *Checkpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a Checkpoint.
func (c *CheckpointClient) QueryJob(_m *Checkpoint) *ResearchJobQuery {
	query := (&ResearchJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(checkpoint.Table, checkpoint.FieldID, id),
			sqlgraph.To(researchjob.Table, researchjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, checkpoint.JobTable, checkpoint.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CheckpointClient) Hooks() []Hook {
	return c.hooks.Checkpoint
}

// Interceptors returns the client interceptors.
func (c *CheckpointClient) Interceptors() []Interceptor {
	return c.inters.Checkpoint
}

func (c *CheckpointClient) mutate(ctx context.Context, m *CheckpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Checkpoint mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// LLMCallClient is a client for the LLMCall schema.
type LLMCallClient struct {
	config
}

// NewLLMCallClient returns a client for the LLMCall from the given config.
func NewLLMCallClient(c config) *LLMCallClient {
	return &LLMCallClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmcall.Hooks(f(g(h())))`.
func (c *LLMCallClient) Use(hooks ...Hook) {
	c.hooks.LLMCall = append(c.hooks.LLMCall, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmcall.Intercept(f(g(h())))`.
func (c *LLMCallClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMCall = append(c.inters.LLMCall, interceptors...)
}

// Create returns a builder for creating a LLMCall entity.
func (c *LLMCallClient) Create() *LLMCallCreate {
	mutation := newLLMCallMutation(c.config, OpCreate)
	return &LLMCallCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMCall entities.
func (c *LLMCallClient) CreateBulk(builders ...*LLMCallCreate) *LLMCallCreateBulk {
	return &LLMCallCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMCallClient) MapCreateBulk(slice any, setFunc func(*LLMCallCreate, int)) *LLMCallCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMCallCreateBulk{err: fmt.Errorf("calling to LLMCallClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMCallCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMCallCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMCall.
func (c *LLMCallClient) Update() *LLMCallUpdate {
	mutation := newLLMCallMutation(c.config, OpUpdate)
	return &LLMCallUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMCallClient) UpdateOne(_m *LLMCall) *LLMCallUpdateOne {
	mutation := newLLMCallMutation(c.config, OpUpdateOne, withLLMCall(_m))
	return &LLMCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMCallClient) UpdateOneID(id string) *LLMCallUpdateOne {
	mutation := newLLMCallMutation(c.config, OpUpdateOne, withLLMCallID(id))
	return &LLMCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMCall.
func (c *LLMCallClient) Delete() *LLMCallDelete {
	mutation := newLLMCallMutation(c.config, OpDelete)
	return &LLMCallDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMCallClient) DeleteOne(_m *LLMCall) *LLMCallDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMCallClient) DeleteOneID(id string) *LLMCallDeleteOne {
	builder := c.Delete().Where(llmcall.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMCallDeleteOne{builder}
}

// Query returns a query builder for LLMCall.
func (c *LLMCallClient) Query() *LLMCallQuery {
	return &LLMCallQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMCall},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMCall entity by its id.
func (c *LLMCallClient) Get(ctx context.Context, id string) (*LLMCall, error) {
	return c.Query().Where(llmcall.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMCallClient) GetX(ctx context.Context, id string) *LLMCall {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a LLMCall.
func (c *LLMCallClient) QueryJob(_m *LLMCall) *ResearchJobQuery {
	query := (&ResearchJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(llmcall.Table, llmcall.FieldID, id),
			sqlgraph.To(researchjob.Table, researchjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, llmcall.JobTable, llmcall.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LLMCallClient) Hooks() []Hook {
	return c.hooks.LLMCall
}

// Interceptors returns the client interceptors.
func (c *LLMCallClient) Interceptors() []Interceptor {
	return c.inters.LLMCall
}

func (c *LLMCallClient) mutate(ctx context.Context, m *LLMCallMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMCallCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMCallUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMCallDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMCall mutation op: %q", m.Op())
	}
}

// LorePackageClient is a client for the LorePackage schema.
type LorePackageClient struct {
	config
}

// NewLorePackageClient returns a client for the LorePackage from the given config.
func NewLorePackageClient(c config) *LorePackageClient {
	return &LorePackageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lorepackage.Hooks(f(g(h())))`.
func (c *LorePackageClient) Use(hooks ...Hook) {
	c.hooks.LorePackage = append(c.hooks.LorePackage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lorepackage.Intercept(f(g(h())))`.
func (c *LorePackageClient) Intercept(interceptors ...Interceptor) {
	c.inters.LorePackage = append(c.inters.LorePackage, interceptors...)
}

// Create returns a builder for creating a LorePackage entity.
func (c *LorePackageClient) Create() *LorePackageCreate {
	mutation := newLorePackageMutation(c.config, OpCreate)
	return &LorePackageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LorePackage entities.
func (c *LorePackageClient) CreateBulk(builders ...*LorePackageCreate) *LorePackageCreateBulk {
	return &LorePackageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LorePackageClient) MapCreateBulk(slice any, setFunc func(*LorePackageCreate, int)) *LorePackageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LorePackageCreateBulk{err: fmt.Errorf("calling to LorePackageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LorePackageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LorePackageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LorePackage.
func (c *LorePackageClient) Update() *LorePackageUpdate {
	mutation := newLorePackageMutation(c.config, OpUpdate)
	return &LorePackageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LorePackageClient) UpdateOne(_m *LorePackage) *LorePackageUpdateOne {
	mutation := newLorePackageMutation(c.config, OpUpdateOne, withLorePackage(_m))
	return &LorePackageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LorePackageClient) UpdateOneID(id string) *LorePackageUpdateOne {
	mutation := newLorePackageMutation(c.config, OpUpdateOne, withLorePackageID(id))
	return &LorePackageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LorePackage.
func (c *LorePackageClient) Delete() *LorePackageDelete {
	mutation := newLorePackageMutation(c.config, OpDelete)
	return &LorePackageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LorePackageClient) DeleteOne(_m *LorePackage) *LorePackageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LorePackageClient) DeleteOneID(id string) *LorePackageDeleteOne {
	builder := c.Delete().Where(lorepackage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LorePackageDeleteOne{builder}
}

// Query returns a query builder for LorePackage.
func (c *LorePackageClient) Query() *LorePackageQuery {
	return &LorePackageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLorePackage},
		inters: c.Interceptors(),
	}
}

// Get returns a LorePackage entity by its id.
func (c *LorePackageClient) Get(ctx context.Context, id string) (*LorePackage, error) {
	return c.Query().Where(lorepackage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LorePackageClient) GetX(ctx context.Context, id string) *LorePackage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a LorePackage.
func (c *LorePackageClient) QueryJob(_m *LorePackage) *ResearchJobQuery {
	query := (&ResearchJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lorepackage.Table, lorepackage.FieldID, id),
			sqlgraph.To(researchjob.Table, researchjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, lorepackage.JobTable, lorepackage.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LorePackageClient) Hooks() []Hook {
	return c.hooks.LorePackage
}

// Interceptors returns the client interceptors.
func (c *LorePackageClient) Interceptors() []Interceptor {
	return c.inters.LorePackage
}

func (c *LorePackageClient) mutate(ctx context.Context, m *LorePackageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LorePackageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LorePackageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LorePackageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LorePackageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LorePackage mutation op: %q", m.Op())
	}
}

// ResearchJobClient is a client for the ResearchJob schema.
type ResearchJobClient struct {
	config
}

// NewResearchJobClient returns a client for the ResearchJob from the given config.
func NewResearchJobClient(c config) *ResearchJobClient {
	return &ResearchJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `researchjob.Hooks(f(g(h())))`.
func (c *ResearchJobClient) Use(hooks ...Hook) {
	c.hooks.ResearchJob = append(c.hooks.ResearchJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `researchjob.Intercept(f(g(h())))`.
func (c *ResearchJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResearchJob = append(c.inters.ResearchJob, interceptors...)
}

// Create returns a builder for creating a ResearchJob entity.
func (c *ResearchJobClient) Create() *ResearchJobCreate {
	mutation := newResearchJobMutation(c.config, OpCreate)
	return &ResearchJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResearchJob entities.
func (c *ResearchJobClient) CreateBulk(builders ...*ResearchJobCreate) *ResearchJobCreateBulk {
	return &ResearchJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResearchJobClient) MapCreateBulk(slice any, setFunc func(*ResearchJobCreate, int)) *ResearchJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResearchJobCreateBulk{err: fmt.Errorf("calling to ResearchJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResearchJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResearchJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResearchJob.
func (c *ResearchJobClient) Update() *ResearchJobUpdate {
	mutation := newResearchJobMutation(c.config, OpUpdate)
	return &ResearchJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResearchJobClient) UpdateOne(_m *ResearchJob) *ResearchJobUpdateOne {
	mutation := newResearchJobMutation(c.config, OpUpdateOne, withResearchJob(_m))
	return &ResearchJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResearchJobClient) UpdateOneID(id string) *ResearchJobUpdateOne {
	mutation := newResearchJobMutation(c.config, OpUpdateOne, withResearchJobID(id))
	return &ResearchJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResearchJob.
func (c *ResearchJobClient) Delete() *ResearchJobDelete {
	mutation := newResearchJobMutation(c.config, OpDelete)
	return &ResearchJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResearchJobClient) DeleteOne(_m *ResearchJob) *ResearchJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResearchJobClient) DeleteOneID(id string) *ResearchJobDeleteOne {
	builder := c.Delete().Where(researchjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResearchJobDeleteOne{builder}
}

// Query returns a query builder for ResearchJob.
func (c *ResearchJobClient) Query() *ResearchJobQuery {
	return &ResearchJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResearchJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ResearchJob entity by its id.
func (c *ResearchJobClient) Get(ctx context.Context, id string) (*ResearchJob, error) {
	return c.Query().Where(researchjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResearchJobClient) GetX(ctx context.Context, id string) *ResearchJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCheckpoint queries the checkpoint edge of a ResearchJob.
func (c *ResearchJobClient) QueryCheckpoint(_m *ResearchJob) *CheckpointQuery {
	query := (&CheckpointClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchjob.Table, researchjob.FieldID, id),
			sqlgraph.To(checkpoint.Table, checkpoint.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, researchjob.CheckpointTable, researchjob.CheckpointColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStepRuns queries the step_runs edge of a ResearchJob.
func (c *ResearchJobClient) QueryStepRuns(_m *ResearchJob) *StepRunQuery {
	query := (&StepRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchjob.Table, researchjob.FieldID, id),
			sqlgraph.To(steprun.Table, steprun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchjob.StepRunsTable, researchjob.StepRunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLlmCalls queries the llm_calls edge of a ResearchJob.
func (c *ResearchJobClient) QueryLlmCalls(_m *ResearchJob) *LLMCallQuery {
	query := (&LLMCallClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchjob.Table, researchjob.FieldID, id),
			sqlgraph.To(llmcall.Table, llmcall.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchjob.LlmCallsTable, researchjob.LlmCallsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryToolCalls queries the tool_calls edge of a ResearchJob.
func (c *ResearchJobClient) QueryToolCalls(_m *ResearchJob) *ToolCallQuery {
	query := (&ToolCallClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchjob.Table, researchjob.FieldID, id),
			sqlgraph.To(toolcall.Table, toolcall.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchjob.ToolCallsTable, researchjob.ToolCallsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPackage queries the package edge of a ResearchJob.
func (c *ResearchJobClient) QueryPackage(_m *ResearchJob) *LorePackageQuery {
	query := (&LorePackageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchjob.Table, researchjob.FieldID, id),
			sqlgraph.To(lorepackage.Table, lorepackage.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, researchjob.PackageTable, researchjob.PackageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ResearchJobClient) Hooks() []Hook {
	return c.hooks.ResearchJob
}

// Interceptors returns the client interceptors.
func (c *ResearchJobClient) Interceptors() []Interceptor {
	return c.inters.ResearchJob
}

func (c *ResearchJobClient) mutate(ctx context.Context, m *ResearchJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResearchJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResearchJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResearchJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResearchJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResearchJob mutation op: %q", m.Op())
	}
}

// StepRunClient is a client for the StepRun schema.
type StepRunClient struct {
	config
}

// NewStepRunClient returns a client for the StepRun from the given config.
func NewStepRunClient(c config) *StepRunClient {
	return &StepRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `steprun.Hooks(f(g(h())))`.
func (c *StepRunClient) Use(hooks ...Hook) {
	c.hooks.StepRun = append(c.hooks.StepRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `steprun.Intercept(f(g(h())))`.
func (c *StepRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.StepRun = append(c.inters.StepRun, interceptors...)
}

// Create returns a builder for creating a StepRun entity.
func (c *StepRunClient) Create() *StepRunCreate {
	mutation := newStepRunMutation(c.config, OpCreate)
	return &StepRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StepRun entities.
func (c *StepRunClient) CreateBulk(builders ...*StepRunCreate) *StepRunCreateBulk {
	return &StepRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepRunClient) MapCreateBulk(slice any, setFunc func(*StepRunCreate, int)) *StepRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepRunCreateBulk{err: fmt.Errorf("calling to StepRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StepRun.
func (c *StepRunClient) Update() *StepRunUpdate {
	mutation := newStepRunMutation(c.config, OpUpdate)
	return &StepRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepRunClient) UpdateOne(_m *StepRun) *StepRunUpdateOne {
	mutation := newStepRunMutation(c.config, OpUpdateOne, withStepRun(_m))
	return &StepRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepRunClient) UpdateOneID(id string) *StepRunUpdateOne {
	mutation := newStepRunMutation(c.config, OpUpdateOne, withStepRunID(id))
	return &StepRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StepRun.
func (c *StepRunClient) Delete() *StepRunDelete {
	mutation := newStepRunMutation(c.config, OpDelete)
	return &StepRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepRunClient) DeleteOne(_m *StepRun) *StepRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepRunClient) DeleteOneID(id string) *StepRunDeleteOne {
	builder := c.Delete().Where(steprun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepRunDeleteOne{builder}
}

// Query returns a query builder for StepRun.
func (c *StepRunClient) Query() *StepRunQuery {
	return &StepRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStepRun},
		inters: c.Interceptors(),
	}
}

// Get returns a StepRun entity by its id.
func (c *StepRunClient) Get(ctx context.Context, id string) (*StepRun, error) {
	return c.Query().Where(steprun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepRunClient) GetX(ctx context.Context, id string) *StepRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a StepRun.
func (c *StepRunClient) QueryJob(_m *StepRun) *ResearchJobQuery {
	query := (&ResearchJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(steprun.Table, steprun.FieldID, id),
			sqlgraph.To(researchjob.Table, researchjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, steprun.JobTable, steprun.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StepRunClient) Hooks() []Hook {
	return c.hooks.StepRun
}

// Interceptors returns the client interceptors.
func (c *StepRunClient) Interceptors() []Interceptor {
	return c.inters.StepRun
}

func (c *StepRunClient) mutate(ctx context.Context, m *StepRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StepRun mutation op: %q", m.Op())
	}
}

// ToolCallClient is a client for the ToolCall schema.
type ToolCallClient struct {
	config
}

// NewToolCallClient returns a client for the ToolCall from the given config.
func NewToolCallClient(c config) *ToolCallClient {
	return &ToolCallClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toolcall.Hooks(f(g(h())))`.
func (c *ToolCallClient) Use(hooks ...Hook) {
	c.hooks.ToolCall = append(c.hooks.ToolCall, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toolcall.Intercept(f(g(h())))`.
func (c *ToolCallClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolCall = append(c.inters.ToolCall, interceptors...)
}

// Create returns a builder for creating a ToolCall entity.
func (c *ToolCallClient) Create() *ToolCallCreate {
	mutation := newToolCallMutation(c.config, OpCreate)
	return &ToolCallCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolCall entities.
func (c *ToolCallClient) CreateBulk(builders ...*ToolCallCreate) *ToolCallCreateBulk {
	return &ToolCallCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolCallClient) MapCreateBulk(slice any, setFunc func(*ToolCallCreate, int)) *ToolCallCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolCallCreateBulk{err: fmt.Errorf("calling to ToolCallClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolCallCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolCallCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolCall.
func (c *ToolCallClient) Update() *ToolCallUpdate {
	mutation := newToolCallMutation(c.config, OpUpdate)
	return &ToolCallUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolCallClient) UpdateOne(_m *ToolCall) *ToolCallUpdateOne {
	mutation := newToolCallMutation(c.config, OpUpdateOne, withToolCall(_m))
	return &ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolCallClient) UpdateOneID(id string) *ToolCallUpdateOne {
	mutation := newToolCallMutation(c.config, OpUpdateOne, withToolCallID(id))
	return &ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolCall.
func (c *ToolCallClient) Delete() *ToolCallDelete {
	mutation := newToolCallMutation(c.config, OpDelete)
	return &ToolCallDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolCallClient) DeleteOne(_m *ToolCall) *ToolCallDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolCallClient) DeleteOneID(id string) *ToolCallDeleteOne {
	builder := c.Delete().Where(toolcall.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolCallDeleteOne{builder}
}

// Query returns a query builder for ToolCall.
func (c *ToolCallClient) Query() *ToolCallQuery {
	return &ToolCallQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolCall},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolCall entity by its id.
func (c *ToolCallClient) Get(ctx context.Context, id string) (*ToolCall, error) {
	return c.Query().Where(toolcall.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolCallClient) GetX(ctx context.Context, id string) *ToolCall {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a ToolCall.
func (c *ToolCallClient) QueryJob(_m *ToolCall) *ResearchJobQuery {
	query := (&ResearchJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(toolcall.Table, toolcall.FieldID, id),
			sqlgraph.To(researchjob.Table, researchjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, toolcall.JobTable, toolcall.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ToolCallClient) Hooks() []Hook {
	return c.hooks.ToolCall
}

// Interceptors returns the client interceptors.
func (c *ToolCallClient) Interceptors() []Interceptor {
	return c.inters.ToolCall
}

func (c *ToolCallClient) mutate(ctx context.Context, m *ToolCallMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolCallCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolCallUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolCallDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolCall mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Checkpoint, Event, LLMCall, LorePackage, ResearchJob, StepRun,
		ToolCall []ent.Hook
	}
	inters struct {
		Checkpoint, Event, LLMCall, LorePackage, ResearchJob, StepRun,
		ToolCall []ent.Interceptor
	}
)

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loreweave/loreweave/ent/checkpoint"
	"github.com/loreweave/loreweave/ent/llmcall"
	"github.com/loreweave/loreweave/ent/lorepackage"
	"github.com/loreweave/loreweave/ent/predicate"
	"github.com/loreweave/loreweave/ent/researchjob"
	"github.com/loreweave/loreweave/ent/steprun"
	"github.com/loreweave/loreweave/ent/toolcall"
)

// ResearchJobQuery is the builder for querying ResearchJob entities.
type ResearchJobQuery struct {
	config
	ctx            *QueryContext
	order          []researchjob.OrderOption
	inters         []Interceptor
	predicates     []predicate.ResearchJob
	withCheckpoint *CheckpointQuery
	withStepRuns   *StepRunQuery
	withLlmCalls   *LLMCallQuery
	withToolCalls  *ToolCallQuery
	withPackage    *LorePackageQuery
	modifiers      []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ResearchJobQuery builder.
func (_q *ResearchJobQuery) Where(ps ...predicate.ResearchJob) *ResearchJobQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ResearchJobQuery) Limit(limit int) *ResearchJobQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ResearchJobQuery) Offset(offset int) *ResearchJobQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ResearchJobQuery) Unique(unique bool) *ResearchJobQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ResearchJobQuery) Order(o ...researchjob.OrderOption) *ResearchJobQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCheckpoint chains the current query on the "checkpoint" edge.
func (_q *ResearchJobQuery) QueryCheckpoint() *CheckpointQuery {
	query := (&CheckpointClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchjob.Table, researchjob.FieldID, selector),
			sqlgraph.To(checkpoint.Table, checkpoint.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, researchjob.CheckpointTable, researchjob.CheckpointColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStepRuns chains the current query on the "step_runs" edge.
func (_q *ResearchJobQuery) QueryStepRuns() *StepRunQuery {
	query := (&StepRunClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchjob.Table, researchjob.FieldID, selector),
			sqlgraph.To(steprun.Table, steprun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchjob.StepRunsTable, researchjob.StepRunsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLlmCalls chains the current query on the "llm_calls" edge.
func (_q *ResearchJobQuery) QueryLlmCalls() *LLMCallQuery {
	query := (&LLMCallClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchjob.Table, researchjob.FieldID, selector),
			sqlgraph.To(llmcall.Table, llmcall.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchjob.LlmCallsTable, researchjob.LlmCallsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryToolCalls chains the current query on the "tool_calls" edge.
func (_q *ResearchJobQuery) QueryToolCalls() *ToolCallQuery {
	query := (&ToolCallClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchjob.Table, researchjob.FieldID, selector),
			sqlgraph.To(toolcall.Table, toolcall.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchjob.ToolCallsTable, researchjob.ToolCallsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPackage chains the current query on the "package" edge.
func (_q *ResearchJobQuery) QueryPackage() *LorePackageQuery {
	query := (&LorePackageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchjob.Table, researchjob.FieldID, selector),
			sqlgraph.To(lorepackage.Table, lorepackage.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, researchjob.PackageTable, researchjob.PackageColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ResearchJob entity from the query.
// Returns a *NotFoundError when no ResearchJob was found.
func (_q *ResearchJobQuery) First(ctx context.Context) (*ResearchJob, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{researchjob.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ResearchJobQuery) FirstX(ctx context.Context) *ResearchJob {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ResearchJob ID from the query.
// Returns a *NotFoundError when no ResearchJob ID was found.
func (_q *ResearchJobQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{researchjob.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ResearchJobQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ResearchJob entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ResearchJob entity is found.
// Returns a *NotFoundError when no ResearchJob entities are found.
func (_q *ResearchJobQuery) Only(ctx context.Context) (*ResearchJob, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{researchjob.Label}
	default:
		return nil, &NotSingularError{researchjob.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ResearchJobQuery) OnlyX(ctx context.Context) *ResearchJob {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ResearchJob ID in the query.
// Returns a *NotSingularError when more than one ResearchJob ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ResearchJobQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{researchjob.Label}
	default:
		err = &NotSingularError{researchjob.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ResearchJobQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ResearchJobs.
func (_q *ResearchJobQuery) All(ctx context.Context) ([]*ResearchJob, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ResearchJob, *ResearchJobQuery]()
	return withInterceptors[[]*ResearchJob](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ResearchJobQuery) AllX(ctx context.Context) []*ResearchJob {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ResearchJob IDs.
func (_q *ResearchJobQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(researchjob.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ResearchJobQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ResearchJobQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ResearchJobQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ResearchJobQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ResearchJobQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ResearchJobQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ResearchJobQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ResearchJobQuery) Clone() *ResearchJobQuery {
	if _q == nil {
		return nil
	}
	return &ResearchJobQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]researchjob.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.ResearchJob{}, _q.predicates...),
		withCheckpoint: _q.withCheckpoint.Clone(),
		withStepRuns:   _q.withStepRuns.Clone(),
		withLlmCalls:   _q.withLlmCalls.Clone(),
		withToolCalls:  _q.withToolCalls.Clone(),
		withPackage:    _q.withPackage.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCheckpoint tells the query-builder to eager-load the nodes that are connected to
// the "checkpoint" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchJobQuery) WithCheckpoint(opts ...func(*CheckpointQuery)) *ResearchJobQuery {
	query := (&CheckpointClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCheckpoint = query
	return _q
}

// WithStepRuns tells the query-builder to eager-load the nodes that are connected to
// the "step_runs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchJobQuery) WithStepRuns(opts ...func(*StepRunQuery)) *ResearchJobQuery {
	query := (&StepRunClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStepRuns = query
	return _q
}

// WithLlmCalls tells the query-builder to eager-load the nodes that are connected to
// the "llm_calls" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchJobQuery) WithLlmCalls(opts ...func(*LLMCallQuery)) *ResearchJobQuery {
	query := (&LLMCallClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLlmCalls = query
	return _q
}

// WithToolCalls tells the query-builder to eager-load the nodes that are connected to
// the "tool_calls" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchJobQuery) WithToolCalls(opts ...func(*ToolCallQuery)) *ResearchJobQuery {
	query := (&ToolCallClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withToolCalls = query
	return _q
}

// WithPackage tells the query-builder to eager-load the nodes that are connected to
// the "package" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchJobQuery) WithPackage(opts ...func(*LorePackageQuery)) *ResearchJobQuery {
	query := (&LorePackageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPackage = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ZoneName string `json:"zone_name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ResearchJob.Query().
//		GroupBy(researchjob.FieldZoneName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ResearchJobQuery) GroupBy(field string, fields ...string) *ResearchJobGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ResearchJobGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = researchjob.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ZoneName string `json:"zone_name,omitempty"`
//	}
//
//	client.ResearchJob.Query().
//		Select(researchjob.FieldZoneName).
//		Scan(ctx, &v)
func (_q *ResearchJobQuery) Select(fields ...string) *ResearchJobSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ResearchJobSelect{ResearchJobQuery: _q}
	sbuild.label = researchjob.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ResearchJobSelect configured with the given aggregations.
func (_q *ResearchJobQuery) Aggregate(fns ...AggregateFunc) *ResearchJobSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ResearchJobQuery) prepareQuery(ctx context.Context) error {
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
		if !researchjob.ValidColumn(f) {
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

func (_q *ResearchJobQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ResearchJob, error) {
	var (
		nodes       = []*ResearchJob{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withCheckpoint != nil,
			_q.withStepRuns != nil,
			_q.withLlmCalls != nil,
			_q.withToolCalls != nil,
			_q.withPackage != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ResearchJob).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ResearchJob{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
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
	if query := _q.withCheckpoint; query != nil {
		if err := _q.loadCheckpoint(ctx, query, nodes, nil,
			func(n *ResearchJob, e *Checkpoint) { n.Edges.Checkpoint = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStepRuns; query != nil {
		if err := _q.loadStepRuns(ctx, query, nodes,
			func(n *ResearchJob) { n.Edges.StepRuns = []*StepRun{} },
			func(n *ResearchJob, e *StepRun) { n.Edges.StepRuns = append(n.Edges.StepRuns, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLlmCalls; query != nil {
		if err := _q.loadLlmCalls(ctx, query, nodes,
			func(n *ResearchJob) { n.Edges.LlmCalls = []*LLMCall{} },
			func(n *ResearchJob, e *LLMCall) { n.Edges.LlmCalls = append(n.Edges.LlmCalls, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withToolCalls; query != nil {
		if err := _q.loadToolCalls(ctx, query, nodes,
			func(n *ResearchJob) { n.Edges.ToolCalls = []*ToolCall{} },
			func(n *ResearchJob, e *ToolCall) { n.Edges.ToolCalls = append(n.Edges.ToolCalls, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPackage; query != nil {
		if err := _q.loadPackage(ctx, query, nodes, nil,
			func(n *ResearchJob, e *LorePackage) { n.Edges.Package = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ResearchJobQuery) loadCheckpoint(ctx context.Context, query *CheckpointQuery, nodes []*ResearchJob, init func(*ResearchJob), assign func(*ResearchJob, *Checkpoint)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ResearchJob)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(checkpoint.FieldJobID)
	}
	query.Where(predicate.Checkpoint(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchjob.CheckpointColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.JobID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "job_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResearchJobQuery) loadStepRuns(ctx context.Context, query *StepRunQuery, nodes []*ResearchJob, init func(*ResearchJob), assign func(*ResearchJob, *StepRun)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ResearchJob)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(steprun.FieldJobID)
	}
	query.Where(predicate.StepRun(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchjob.StepRunsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.JobID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "job_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResearchJobQuery) loadLlmCalls(ctx context.Context, query *LLMCallQuery, nodes []*ResearchJob, init func(*ResearchJob), assign func(*ResearchJob, *LLMCall)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ResearchJob)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(llmcall.FieldJobID)
	}
	query.Where(predicate.LLMCall(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchjob.LlmCallsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.JobID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "job_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResearchJobQuery) loadToolCalls(ctx context.Context, query *ToolCallQuery, nodes []*ResearchJob, init func(*ResearchJob), assign func(*ResearchJob, *ToolCall)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ResearchJob)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(toolcall.FieldJobID)
	}
	query.Where(predicate.ToolCall(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchjob.ToolCallsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.JobID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "job_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResearchJobQuery) loadPackage(ctx context.Context, query *LorePackageQuery, nodes []*ResearchJob, init func(*ResearchJob), assign func(*ResearchJob, *LorePackage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ResearchJob)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(lorepackage.FieldJobID)
	}
	query.Where(predicate.LorePackage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchjob.PackageColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.JobID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "job_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ResearchJobQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ResearchJobQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(researchjob.Table, researchjob.Columns, sqlgraph.NewFieldSpec(researchjob.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchjob.FieldID)
		for i := range fields {
			if fields[i] != researchjob.FieldID {
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

func (_q *ResearchJobQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(researchjob.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = researchjob.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
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

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *ResearchJobQuery) ForUpdate(opts ...sql.LockOption) *ResearchJobQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *ResearchJobQuery) ForShare(opts ...sql.LockOption) *ResearchJobQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// ResearchJobGroupBy is the group-by builder for ResearchJob entities.
type ResearchJobGroupBy struct {
	selector
	build *ResearchJobQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ResearchJobGroupBy) Aggregate(fns ...AggregateFunc) *ResearchJobGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ResearchJobGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ResearchJobQuery, *ResearchJobGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ResearchJobGroupBy) sqlScan(ctx context.Context, root *ResearchJobQuery, v any) error {
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

// ResearchJobSelect is the builder for selecting fields of ResearchJob entities.
type ResearchJobSelect struct {
	*ResearchJobQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ResearchJobSelect) Aggregate(fns ...AggregateFunc) *ResearchJobSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ResearchJobSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ResearchJobQuery, *ResearchJobSelect](ctx, _s.ResearchJobQuery, _s, _s.inters, v)
}

func (_s *ResearchJobSelect) sqlScan(ctx context.Context, root *ResearchJobQuery, v any) error {
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

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
	"github.com/loreweave/loreweave/ent/checkpoint"
	"github.com/loreweave/loreweave/ent/event"
	"github.com/loreweave/loreweave/ent/llmcall"
	"github.com/loreweave/loreweave/ent/lorepackage"
	"github.com/loreweave/loreweave/ent/predicate"
	"github.com/loreweave/loreweave/ent/researchjob"
	"github.com/loreweave/loreweave/ent/steprun"
	"github.com/loreweave/loreweave/ent/toolcall"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCheckpoint  = "Checkpoint"
	TypeEvent       = "Event"
	TypeLLMCall     = "LLMCall"
	TypeLorePackage = "LorePackage"
	TypeResearchJob = "ResearchJob"
	TypeStepRun     = "StepRun"
	TypeToolCall    = "ToolCall"
)

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	current_step_index         *int
	addcurrent_step_index      *int
	completed_step_names       *[]string
	appendcompleted_step_names []string
	accumulated_content        *map[string][]string
	accumulated_sources        *map[string]interface{}
	topic_summaries            *map[string]string
	partial_extractions        *map[string]interface{}
	step_errors                *[]map[string]interface{}
	appendstep_errors          []map[string]interface{}
	tokens_used                *int64
	addtokens_used             *int64
	status                     *checkpoint.Status
	schema_version             *int
	addschema_version          *int
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	job                        *string
	clearedjob                 bool
	done                       bool
	oldValue                   func(context.Context) (*Checkpoint, error)
	predicates                 []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id string) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *CheckpointMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *CheckpointMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *CheckpointMutation) ResetJobID() {
	m.job = nil
}

// SetCurrentStepIndex sets the "current_step_index" field.
func (m *CheckpointMutation) SetCurrentStepIndex(i int) {
	m.current_step_index = &i
	m.addcurrent_step_index = nil
}

// CurrentStepIndex returns the value of the "current_step_index" field in the mutation.
func (m *CheckpointMutation) CurrentStepIndex() (r int, exists bool) {
	v := m.current_step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStepIndex returns the old "current_step_index" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCurrentStepIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStepIndex: %w", err)
	}
	return oldValue.CurrentStepIndex, nil
}

// AddCurrentStepIndex adds i to the "current_step_index" field.
func (m *CheckpointMutation) AddCurrentStepIndex(i int) {
	if m.addcurrent_step_index != nil {
		*m.addcurrent_step_index += i
	} else {
		m.addcurrent_step_index = &i
	}
}

// AddedCurrentStepIndex returns the value that was added to the "current_step_index" field in this mutation.
func (m *CheckpointMutation) AddedCurrentStepIndex() (r int, exists bool) {
	v := m.addcurrent_step_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentStepIndex resets all changes to the "current_step_index" field.
func (m *CheckpointMutation) ResetCurrentStepIndex() {
	m.current_step_index = nil
	m.addcurrent_step_index = nil
}

// SetCompletedStepNames sets the "completed_step_names" field.
func (m *CheckpointMutation) SetCompletedStepNames(s []string) {
	m.completed_step_names = &s
	m.appendcompleted_step_names = nil
}

// CompletedStepNames returns the value of the "completed_step_names" field in the mutation.
func (m *CheckpointMutation) CompletedStepNames() (r []string, exists bool) {
	v := m.completed_step_names
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedStepNames returns the old "completed_step_names" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCompletedStepNames(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedStepNames is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedStepNames requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedStepNames: %w", err)
	}
	return oldValue.CompletedStepNames, nil
}

// AppendCompletedStepNames adds s to the "completed_step_names" field.
func (m *CheckpointMutation) AppendCompletedStepNames(s []string) {
	m.appendcompleted_step_names = append(m.appendcompleted_step_names, s...)
}

// AppendedCompletedStepNames returns the list of values that were appended to the "completed_step_names" field in this mutation.
func (m *CheckpointMutation) AppendedCompletedStepNames() ([]string, bool) {
	if len(m.appendcompleted_step_names) == 0 {
		return nil, false
	}
	return m.appendcompleted_step_names, true
}

// ResetCompletedStepNames resets all changes to the "completed_step_names" field.
func (m *CheckpointMutation) ResetCompletedStepNames() {
	m.completed_step_names = nil
	m.appendcompleted_step_names = nil
}

// SetAccumulatedContent sets the "accumulated_content" field.
func (m *CheckpointMutation) SetAccumulatedContent(value map[string][]string) {
	m.accumulated_content = &value
}

// AccumulatedContent returns the value of the "accumulated_content" field in the mutation.
func (m *CheckpointMutation) AccumulatedContent() (r map[string][]string, exists bool) {
	v := m.accumulated_content
	if v == nil {
		return
	}
	return *v, true
}

// OldAccumulatedContent returns the old "accumulated_content" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldAccumulatedContent(ctx context.Context) (v map[string][]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccumulatedContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccumulatedContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccumulatedContent: %w", err)
	}
	return oldValue.AccumulatedContent, nil
}

// ClearAccumulatedContent clears the value of the "accumulated_content" field.
func (m *CheckpointMutation) ClearAccumulatedContent() {
	m.accumulated_content = nil
	m.clearedFields[checkpoint.FieldAccumulatedContent] = struct{}{}
}

// AccumulatedContentCleared returns if the "accumulated_content" field was cleared in this mutation.
func (m *CheckpointMutation) AccumulatedContentCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldAccumulatedContent]
	return ok
}

// ResetAccumulatedContent resets all changes to the "accumulated_content" field.
func (m *CheckpointMutation) ResetAccumulatedContent() {
	m.accumulated_content = nil
	delete(m.clearedFields, checkpoint.FieldAccumulatedContent)
}

// SetAccumulatedSources sets the "accumulated_sources" field.
func (m *CheckpointMutation) SetAccumulatedSources(value map[string]interface{}) {
	m.accumulated_sources = &value
}

// AccumulatedSources returns the value of the "accumulated_sources" field in the mutation.
func (m *CheckpointMutation) AccumulatedSources() (r map[string]interface{}, exists bool) {
	v := m.accumulated_sources
	if v == nil {
		return
	}
	return *v, true
}

// OldAccumulatedSources returns the old "accumulated_sources" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldAccumulatedSources(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccumulatedSources is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccumulatedSources requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccumulatedSources: %w", err)
	}
	return oldValue.AccumulatedSources, nil
}

// ClearAccumulatedSources clears the value of the "accumulated_sources" field.
func (m *CheckpointMutation) ClearAccumulatedSources() {
	m.accumulated_sources = nil
	m.clearedFields[checkpoint.FieldAccumulatedSources] = struct{}{}
}

// AccumulatedSourcesCleared returns if the "accumulated_sources" field was cleared in this mutation.
func (m *CheckpointMutation) AccumulatedSourcesCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldAccumulatedSources]
	return ok
}

// ResetAccumulatedSources resets all changes to the "accumulated_sources" field.
func (m *CheckpointMutation) ResetAccumulatedSources() {
	m.accumulated_sources = nil
	delete(m.clearedFields, checkpoint.FieldAccumulatedSources)
}

// SetTopicSummaries sets the "topic_summaries" field.
func (m *CheckpointMutation) SetTopicSummaries(value map[string]string) {
	m.topic_summaries = &value
}

// TopicSummaries returns the value of the "topic_summaries" field in the mutation.
func (m *CheckpointMutation) TopicSummaries() (r map[string]string, exists bool) {
	v := m.topic_summaries
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicSummaries returns the old "topic_summaries" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldTopicSummaries(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicSummaries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicSummaries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicSummaries: %w", err)
	}
	return oldValue.TopicSummaries, nil
}

// ClearTopicSummaries clears the value of the "topic_summaries" field.
func (m *CheckpointMutation) ClearTopicSummaries() {
	m.topic_summaries = nil
	m.clearedFields[checkpoint.FieldTopicSummaries] = struct{}{}
}

// TopicSummariesCleared returns if the "topic_summaries" field was cleared in this mutation.
func (m *CheckpointMutation) TopicSummariesCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldTopicSummaries]
	return ok
}

// ResetTopicSummaries resets all changes to the "topic_summaries" field.
func (m *CheckpointMutation) ResetTopicSummaries() {
	m.topic_summaries = nil
	delete(m.clearedFields, checkpoint.FieldTopicSummaries)
}

// SetPartialExtractions sets the "partial_extractions" field.
func (m *CheckpointMutation) SetPartialExtractions(value map[string]interface{}) {
	m.partial_extractions = &value
}

// PartialExtractions returns the value of the "partial_extractions" field in the mutation.
func (m *CheckpointMutation) PartialExtractions() (r map[string]interface{}, exists bool) {
	v := m.partial_extractions
	if v == nil {
		return
	}
	return *v, true
}

// OldPartialExtractions returns the old "partial_extractions" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldPartialExtractions(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartialExtractions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartialExtractions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartialExtractions: %w", err)
	}
	return oldValue.PartialExtractions, nil
}

// ClearPartialExtractions clears the value of the "partial_extractions" field.
func (m *CheckpointMutation) ClearPartialExtractions() {
	m.partial_extractions = nil
	m.clearedFields[checkpoint.FieldPartialExtractions] = struct{}{}
}

// PartialExtractionsCleared returns if the "partial_extractions" field was cleared in this mutation.
func (m *CheckpointMutation) PartialExtractionsCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldPartialExtractions]
	return ok
}

// ResetPartialExtractions resets all changes to the "partial_extractions" field.
func (m *CheckpointMutation) ResetPartialExtractions() {
	m.partial_extractions = nil
	delete(m.clearedFields, checkpoint.FieldPartialExtractions)
}

// SetStepErrors sets the "step_errors" field.
func (m *CheckpointMutation) SetStepErrors(value []map[string]interface{}) {
	m.step_errors = &value
	m.appendstep_errors = nil
}

// StepErrors returns the value of the "step_errors" field in the mutation.
func (m *CheckpointMutation) StepErrors() (r []map[string]interface{}, exists bool) {
	v := m.step_errors
	if v == nil {
		return
	}
	return *v, true
}

// OldStepErrors returns the old "step_errors" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldStepErrors(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepErrors: %w", err)
	}
	return oldValue.StepErrors, nil
}

// AppendStepErrors adds value to the "step_errors" field.
func (m *CheckpointMutation) AppendStepErrors(value []map[string]interface{}) {
	m.appendstep_errors = append(m.appendstep_errors, value...)
}

// AppendedStepErrors returns the list of values that were appended to the "step_errors" field in this mutation.
func (m *CheckpointMutation) AppendedStepErrors() ([]map[string]interface{}, bool) {
	if len(m.appendstep_errors) == 0 {
		return nil, false
	}
	return m.appendstep_errors, true
}

// ClearStepErrors clears the value of the "step_errors" field.
func (m *CheckpointMutation) ClearStepErrors() {
	m.step_errors = nil
	m.appendstep_errors = nil
	m.clearedFields[checkpoint.FieldStepErrors] = struct{}{}
}

// StepErrorsCleared returns if the "step_errors" field was cleared in this mutation.
func (m *CheckpointMutation) StepErrorsCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldStepErrors]
	return ok
}

// ResetStepErrors resets all changes to the "step_errors" field.
func (m *CheckpointMutation) ResetStepErrors() {
	m.step_errors = nil
	m.appendstep_errors = nil
	delete(m.clearedFields, checkpoint.FieldStepErrors)
}

// SetTokensUsed sets the "tokens_used" field.
func (m *CheckpointMutation) SetTokensUsed(i int64) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *CheckpointMutation) TokensUsed() (r int64, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldTokensUsed(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *CheckpointMutation) AddTokensUsed(i int64) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *CheckpointMutation) AddedTokensUsed() (r int64, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *CheckpointMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetStatus sets the "status" field.
func (m *CheckpointMutation) SetStatus(c checkpoint.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CheckpointMutation) Status() (r checkpoint.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldStatus(ctx context.Context) (v checkpoint.Status, err error) {
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
func (m *CheckpointMutation) ResetStatus() {
	m.status = nil
}

// SetSchemaVersion sets the "schema_version" field.
func (m *CheckpointMutation) SetSchemaVersion(i int) {
	m.schema_version = &i
	m.addschema_version = nil
}

// SchemaVersion returns the value of the "schema_version" field in the mutation.
func (m *CheckpointMutation) SchemaVersion() (r int, exists bool) {
	v := m.schema_version
	if v == nil {
		return
	}
	return *v, true
}

// OldSchemaVersion returns the old "schema_version" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldSchemaVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchemaVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchemaVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchemaVersion: %w", err)
	}
	return oldValue.SchemaVersion, nil
}

// AddSchemaVersion adds i to the "schema_version" field.
func (m *CheckpointMutation) AddSchemaVersion(i int) {
	if m.addschema_version != nil {
		*m.addschema_version += i
	} else {
		m.addschema_version = &i
	}
}

// AddedSchemaVersion returns the value that was added to the "schema_version" field in this mutation.
func (m *CheckpointMutation) AddedSchemaVersion() (r int, exists bool) {
	v := m.addschema_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetSchemaVersion resets all changes to the "schema_version" field.
func (m *CheckpointMutation) ResetSchemaVersion() {
	m.schema_version = nil
	m.addschema_version = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CheckpointMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CheckpointMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CheckpointMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearJob clears the "job" edge to the ResearchJob entity.
func (m *CheckpointMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[checkpoint.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ResearchJob entity was cleared.
func (m *CheckpointMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *CheckpointMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *CheckpointMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.job != nil {
		fields = append(fields, checkpoint.FieldJobID)
	}
	if m.current_step_index != nil {
		fields = append(fields, checkpoint.FieldCurrentStepIndex)
	}
	if m.completed_step_names != nil {
		fields = append(fields, checkpoint.FieldCompletedStepNames)
	}
	if m.accumulated_content != nil {
		fields = append(fields, checkpoint.FieldAccumulatedContent)
	}
	if m.accumulated_sources != nil {
		fields = append(fields, checkpoint.FieldAccumulatedSources)
	}
	if m.topic_summaries != nil {
		fields = append(fields, checkpoint.FieldTopicSummaries)
	}
	if m.partial_extractions != nil {
		fields = append(fields, checkpoint.FieldPartialExtractions)
	}
	if m.step_errors != nil {
		fields = append(fields, checkpoint.FieldStepErrors)
	}
	if m.tokens_used != nil {
		fields = append(fields, checkpoint.FieldTokensUsed)
	}
	if m.status != nil {
		fields = append(fields, checkpoint.FieldStatus)
	}
	if m.schema_version != nil {
		fields = append(fields, checkpoint.FieldSchemaVersion)
	}
	if m.created_at != nil {
		fields = append(fields, checkpoint.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, checkpoint.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldJobID:
		return m.JobID()
	case checkpoint.FieldCurrentStepIndex:
		return m.CurrentStepIndex()
	case checkpoint.FieldCompletedStepNames:
		return m.CompletedStepNames()
	case checkpoint.FieldAccumulatedContent:
		return m.AccumulatedContent()
	case checkpoint.FieldAccumulatedSources:
		return m.AccumulatedSources()
	case checkpoint.FieldTopicSummaries:
		return m.TopicSummaries()
	case checkpoint.FieldPartialExtractions:
		return m.PartialExtractions()
	case checkpoint.FieldStepErrors:
		return m.StepErrors()
	case checkpoint.FieldTokensUsed:
		return m.TokensUsed()
	case checkpoint.FieldStatus:
		return m.Status()
	case checkpoint.FieldSchemaVersion:
		return m.SchemaVersion()
	case checkpoint.FieldCreatedAt:
		return m.CreatedAt()
	case checkpoint.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldJobID:
		return m.OldJobID(ctx)
	case checkpoint.FieldCurrentStepIndex:
		return m.OldCurrentStepIndex(ctx)
	case checkpoint.FieldCompletedStepNames:
		return m.OldCompletedStepNames(ctx)
	case checkpoint.FieldAccumulatedContent:
		return m.OldAccumulatedContent(ctx)
	case checkpoint.FieldAccumulatedSources:
		return m.OldAccumulatedSources(ctx)
	case checkpoint.FieldTopicSummaries:
		return m.OldTopicSummaries(ctx)
	case checkpoint.FieldPartialExtractions:
		return m.OldPartialExtractions(ctx)
	case checkpoint.FieldStepErrors:
		return m.OldStepErrors(ctx)
	case checkpoint.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case checkpoint.FieldStatus:
		return m.OldStatus(ctx)
	case checkpoint.FieldSchemaVersion:
		return m.OldSchemaVersion(ctx)
	case checkpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case checkpoint.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case checkpoint.FieldCurrentStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStepIndex(v)
		return nil
	case checkpoint.FieldCompletedStepNames:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedStepNames(v)
		return nil
	case checkpoint.FieldAccumulatedContent:
		v, ok := value.(map[string][]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccumulatedContent(v)
		return nil
	case checkpoint.FieldAccumulatedSources:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccumulatedSources(v)
		return nil
	case checkpoint.FieldTopicSummaries:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicSummaries(v)
		return nil
	case checkpoint.FieldPartialExtractions:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartialExtractions(v)
		return nil
	case checkpoint.FieldStepErrors:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepErrors(v)
		return nil
	case checkpoint.FieldTokensUsed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case checkpoint.FieldStatus:
		v, ok := value.(checkpoint.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case checkpoint.FieldSchemaVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchemaVersion(v)
		return nil
	case checkpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case checkpoint.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_step_index != nil {
		fields = append(fields, checkpoint.FieldCurrentStepIndex)
	}
	if m.addtokens_used != nil {
		fields = append(fields, checkpoint.FieldTokensUsed)
	}
	if m.addschema_version != nil {
		fields = append(fields, checkpoint.FieldSchemaVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldCurrentStepIndex:
		return m.AddedCurrentStepIndex()
	case checkpoint.FieldTokensUsed:
		return m.AddedTokensUsed()
	case checkpoint.FieldSchemaVersion:
		return m.AddedSchemaVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldCurrentStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStepIndex(v)
		return nil
	case checkpoint.FieldTokensUsed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case checkpoint.FieldSchemaVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSchemaVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkpoint.FieldAccumulatedContent) {
		fields = append(fields, checkpoint.FieldAccumulatedContent)
	}
	if m.FieldCleared(checkpoint.FieldAccumulatedSources) {
		fields = append(fields, checkpoint.FieldAccumulatedSources)
	}
	if m.FieldCleared(checkpoint.FieldTopicSummaries) {
		fields = append(fields, checkpoint.FieldTopicSummaries)
	}
	if m.FieldCleared(checkpoint.FieldPartialExtractions) {
		fields = append(fields, checkpoint.FieldPartialExtractions)
	}
	if m.FieldCleared(checkpoint.FieldStepErrors) {
		fields = append(fields, checkpoint.FieldStepErrors)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	switch name {
	case checkpoint.FieldAccumulatedContent:
		m.ClearAccumulatedContent()
		return nil
	case checkpoint.FieldAccumulatedSources:
		m.ClearAccumulatedSources()
		return nil
	case checkpoint.FieldTopicSummaries:
		m.ClearTopicSummaries()
		return nil
	case checkpoint.FieldPartialExtractions:
		m.ClearPartialExtractions()
		return nil
	case checkpoint.FieldStepErrors:
		m.ClearStepErrors()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldJobID:
		m.ResetJobID()
		return nil
	case checkpoint.FieldCurrentStepIndex:
		m.ResetCurrentStepIndex()
		return nil
	case checkpoint.FieldCompletedStepNames:
		m.ResetCompletedStepNames()
		return nil
	case checkpoint.FieldAccumulatedContent:
		m.ResetAccumulatedContent()
		return nil
	case checkpoint.FieldAccumulatedSources:
		m.ResetAccumulatedSources()
		return nil
	case checkpoint.FieldTopicSummaries:
		m.ResetTopicSummaries()
		return nil
	case checkpoint.FieldPartialExtractions:
		m.ResetPartialExtractions()
		return nil
	case checkpoint.FieldStepErrors:
		m.ResetStepErrors()
		return nil
	case checkpoint.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case checkpoint.FieldStatus:
		m.ResetStatus()
		return nil
	case checkpoint.FieldSchemaVersion:
		m.ResetSchemaVersion()
		return nil
	case checkpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case checkpoint.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, checkpoint.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkpoint.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, checkpoint.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case checkpoint.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	switch name {
	case checkpoint.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	switch name {
	case checkpoint.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	job_id        *string
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *EventMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *EventMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *EventMutation) ResetJobID() {
	m.job_id = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.job_id != nil {
		fields = append(fields, event.FieldJobID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldJobID:
		return m.JobID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldJobID:
		return m.OldJobID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldJobID:
		m.ResetJobID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// LLMCallMutation represents an operation that mutates the LLMCall nodes in the graph.
type LLMCallMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	step_name            *string
	purpose              *llmcall.Purpose
	provider             *string
	model                *string
	prompt_tokens        *int64
	addprompt_tokens     *int64
	completion_tokens    *int64
	addcompletion_tokens *int64
	total_tokens         *int64
	addtotal_tokens      *int64
	duration_ms          *int
	addduration_ms       *int
	status               *llmcall.Status
	error_message        *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	job                  *string
	clearedjob           bool
	done                 bool
	oldValue             func(context.Context) (*LLMCall, error)
	predicates           []predicate.LLMCall
}

var _ ent.Mutation = (*LLMCallMutation)(nil)

// llmcallOption allows management of the mutation configuration using functional options.
type llmcallOption func(*LLMCallMutation)

// newLLMCallMutation creates new mutation for the LLMCall entity.
func newLLMCallMutation(c config, op Op, opts ...llmcallOption) *LLMCallMutation {
	m := &LLMCallMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMCall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMCallID sets the ID field of the mutation.
func withLLMCallID(id string) llmcallOption {
	return func(m *LLMCallMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMCall
		)
		m.oldValue = func(ctx context.Context) (*LLMCall, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMCall.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMCall sets the old LLMCall of the mutation.
func withLLMCall(node *LLMCall) llmcallOption {
	return func(m *LLMCallMutation) {
		m.oldValue = func(context.Context) (*LLMCall, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMCallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMCallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LLMCall entities.
func (m *LLMCallMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMCallMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMCallMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMCall.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *LLMCallMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *LLMCallMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *LLMCallMutation) ResetJobID() {
	m.job = nil
}

// SetStepName sets the "step_name" field.
func (m *LLMCallMutation) SetStepName(s string) {
	m.step_name = &s
}

// StepName returns the value of the "step_name" field in the mutation.
func (m *LLMCallMutation) StepName() (r string, exists bool) {
	v := m.step_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStepName returns the old "step_name" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldStepName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepName: %w", err)
	}
	return oldValue.StepName, nil
}

// ResetStepName resets all changes to the "step_name" field.
func (m *LLMCallMutation) ResetStepName() {
	m.step_name = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMCallMutation) SetPurpose(l llmcall.Purpose) {
	m.purpose = &l
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMCallMutation) Purpose() (r llmcall.Purpose, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldPurpose(ctx context.Context) (v llmcall.Purpose, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMCallMutation) ResetPurpose() {
	m.purpose = nil
}

// SetProvider sets the "provider" field.
func (m *LLMCallMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMCallMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMCallMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMCallMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMCallMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMCallMutation) ResetModel() {
	m.model = nil
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *LLMCallMutation) SetPromptTokens(i int64) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *LLMCallMutation) PromptTokens() (r int64, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldPromptTokens(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *LLMCallMutation) AddPromptTokens(i int64) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *LLMCallMutation) AddedPromptTokens() (r int64, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (m *LLMCallMutation) ClearPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
	m.clearedFields[llmcall.FieldPromptTokens] = struct{}{}
}

// PromptTokensCleared returns if the "prompt_tokens" field was cleared in this mutation.
func (m *LLMCallMutation) PromptTokensCleared() bool {
	_, ok := m.clearedFields[llmcall.FieldPromptTokens]
	return ok
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *LLMCallMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
	delete(m.clearedFields, llmcall.FieldPromptTokens)
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *LLMCallMutation) SetCompletionTokens(i int64) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *LLMCallMutation) CompletionTokens() (r int64, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldCompletionTokens(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *LLMCallMutation) AddCompletionTokens(i int64) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *LLMCallMutation) AddedCompletionTokens() (r int64, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (m *LLMCallMutation) ClearCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
	m.clearedFields[llmcall.FieldCompletionTokens] = struct{}{}
}

// CompletionTokensCleared returns if the "completion_tokens" field was cleared in this mutation.
func (m *LLMCallMutation) CompletionTokensCleared() bool {
	_, ok := m.clearedFields[llmcall.FieldCompletionTokens]
	return ok
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *LLMCallMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
	delete(m.clearedFields, llmcall.FieldCompletionTokens)
}

// SetTotalTokens sets the "total_tokens" field.
func (m *LLMCallMutation) SetTotalTokens(i int64) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *LLMCallMutation) TotalTokens() (r int64, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldTotalTokens(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *LLMCallMutation) AddTotalTokens(i int64) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *LLMCallMutation) AddedTotalTokens() (r int64, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (m *LLMCallMutation) ClearTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
	m.clearedFields[llmcall.FieldTotalTokens] = struct{}{}
}

// TotalTokensCleared returns if the "total_tokens" field was cleared in this mutation.
func (m *LLMCallMutation) TotalTokensCleared() bool {
	_, ok := m.clearedFields[llmcall.FieldTotalTokens]
	return ok
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *LLMCallMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
	delete(m.clearedFields, llmcall.FieldTotalTokens)
}

// SetDurationMs sets the "duration_ms" field.
func (m *LLMCallMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *LLMCallMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *LLMCallMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *LLMCallMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *LLMCallMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[llmcall.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *LLMCallMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[llmcall.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *LLMCallMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, llmcall.FieldDurationMs)
}

// SetStatus sets the "status" field.
func (m *LLMCallMutation) SetStatus(l llmcall.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LLMCallMutation) Status() (r llmcall.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldStatus(ctx context.Context) (v llmcall.Status, err error) {
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
func (m *LLMCallMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMCallMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMCallMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LLMCallMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[llmcall.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LLMCallMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[llmcall.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMCallMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, llmcall.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMCallMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMCallMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *LLMCallMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the ResearchJob entity.
func (m *LLMCallMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[llmcall.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ResearchJob entity was cleared.
func (m *LLMCallMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *LLMCallMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *LLMCallMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the LLMCallMutation builder.
func (m *LLMCallMutation) Where(ps ...predicate.LLMCall) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMCallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMCallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMCall, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMCallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMCallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMCall).
func (m *LLMCallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMCallMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.job != nil {
		fields = append(fields, llmcall.FieldJobID)
	}
	if m.step_name != nil {
		fields = append(fields, llmcall.FieldStepName)
	}
	if m.purpose != nil {
		fields = append(fields, llmcall.FieldPurpose)
	}
	if m.provider != nil {
		fields = append(fields, llmcall.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmcall.FieldModel)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, llmcall.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, llmcall.FieldCompletionTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, llmcall.FieldTotalTokens)
	}
	if m.duration_ms != nil {
		fields = append(fields, llmcall.FieldDurationMs)
	}
	if m.status != nil {
		fields = append(fields, llmcall.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, llmcall.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, llmcall.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMCallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmcall.FieldJobID:
		return m.JobID()
	case llmcall.FieldStepName:
		return m.StepName()
	case llmcall.FieldPurpose:
		return m.Purpose()
	case llmcall.FieldProvider:
		return m.Provider()
	case llmcall.FieldModel:
		return m.Model()
	case llmcall.FieldPromptTokens:
		return m.PromptTokens()
	case llmcall.FieldCompletionTokens:
		return m.CompletionTokens()
	case llmcall.FieldTotalTokens:
		return m.TotalTokens()
	case llmcall.FieldDurationMs:
		return m.DurationMs()
	case llmcall.FieldStatus:
		return m.Status()
	case llmcall.FieldErrorMessage:
		return m.ErrorMessage()
	case llmcall.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMCallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmcall.FieldJobID:
		return m.OldJobID(ctx)
	case llmcall.FieldStepName:
		return m.OldStepName(ctx)
	case llmcall.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmcall.FieldProvider:
		return m.OldProvider(ctx)
	case llmcall.FieldModel:
		return m.OldModel(ctx)
	case llmcall.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case llmcall.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case llmcall.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case llmcall.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case llmcall.FieldStatus:
		return m.OldStatus(ctx)
	case llmcall.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmcall.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LLMCall field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMCallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmcall.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case llmcall.FieldStepName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepName(v)
		return nil
	case llmcall.FieldPurpose:
		v, ok := value.(llmcall.Purpose)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmcall.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmcall.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmcall.FieldPromptTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case llmcall.FieldCompletionTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case llmcall.FieldTotalTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case llmcall.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case llmcall.FieldStatus:
		v, ok := value.(llmcall.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case llmcall.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmcall.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LLMCall field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMCallMutation) AddedFields() []string {
	var fields []string
	if m.addprompt_tokens != nil {
		fields = append(fields, llmcall.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, llmcall.FieldCompletionTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, llmcall.FieldTotalTokens)
	}
	if m.addduration_ms != nil {
		fields = append(fields, llmcall.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMCallMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmcall.FieldPromptTokens:
		return m.AddedPromptTokens()
	case llmcall.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	case llmcall.FieldTotalTokens:
		return m.AddedTotalTokens()
	case llmcall.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMCallMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmcall.FieldPromptTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case llmcall.FieldCompletionTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	case llmcall.FieldTotalTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case llmcall.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMCall numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMCallMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llmcall.FieldPromptTokens) {
		fields = append(fields, llmcall.FieldPromptTokens)
	}
	if m.FieldCleared(llmcall.FieldCompletionTokens) {
		fields = append(fields, llmcall.FieldCompletionTokens)
	}
	if m.FieldCleared(llmcall.FieldTotalTokens) {
		fields = append(fields, llmcall.FieldTotalTokens)
	}
	if m.FieldCleared(llmcall.FieldDurationMs) {
		fields = append(fields, llmcall.FieldDurationMs)
	}
	if m.FieldCleared(llmcall.FieldErrorMessage) {
		fields = append(fields, llmcall.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMCallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMCallMutation) ClearField(name string) error {
	switch name {
	case llmcall.FieldPromptTokens:
		m.ClearPromptTokens()
		return nil
	case llmcall.FieldCompletionTokens:
		m.ClearCompletionTokens()
		return nil
	case llmcall.FieldTotalTokens:
		m.ClearTotalTokens()
		return nil
	case llmcall.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case llmcall.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMCall nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMCallMutation) ResetField(name string) error {
	switch name {
	case llmcall.FieldJobID:
		m.ResetJobID()
		return nil
	case llmcall.FieldStepName:
		m.ResetStepName()
		return nil
	case llmcall.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmcall.FieldProvider:
		m.ResetProvider()
		return nil
	case llmcall.FieldModel:
		m.ResetModel()
		return nil
	case llmcall.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case llmcall.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case llmcall.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case llmcall.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case llmcall.FieldStatus:
		m.ResetStatus()
		return nil
	case llmcall.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmcall.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMCall field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMCallMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, llmcall.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMCallMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case llmcall.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMCallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMCallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMCallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, llmcall.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMCallMutation) EdgeCleared(name string) bool {
	switch name {
	case llmcall.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMCallMutation) ClearEdge(name string) error {
	switch name {
	case llmcall.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown LLMCall unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMCallMutation) ResetEdge(name string) error {
	switch name {
	case llmcall.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown LLMCall edge %s", name)
}

// LorePackageMutation represents an operation that mutates the LorePackage nodes in the graph.
type LorePackageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	zone_name     *string
	document      *map[string]interface{}
	published_at  *time.Time
	clearedFields map[string]struct{}
	job           *string
	clearedjob    bool
	done          bool
	oldValue      func(context.Context) (*LorePackage, error)
	predicates    []predicate.LorePackage
}

var _ ent.Mutation = (*LorePackageMutation)(nil)

// lorepackageOption allows management of the mutation configuration using functional options.
type lorepackageOption func(*LorePackageMutation)

// newLorePackageMutation creates new mutation for the LorePackage entity.
func newLorePackageMutation(c config, op Op, opts ...lorepackageOption) *LorePackageMutation {
	m := &LorePackageMutation{
		config:        c,
		op:            op,
		typ:           TypeLorePackage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLorePackageID sets the ID field of the mutation.
func withLorePackageID(id string) lorepackageOption {
	return func(m *LorePackageMutation) {
		var (
			err   error
			once  sync.Once
			value *LorePackage
		)
		m.oldValue = func(ctx context.Context) (*LorePackage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LorePackage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLorePackage sets the old LorePackage of the mutation.
func withLorePackage(node *LorePackage) lorepackageOption {
	return func(m *LorePackageMutation) {
		m.oldValue = func(context.Context) (*LorePackage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LorePackageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LorePackageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LorePackage entities.
func (m *LorePackageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LorePackageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LorePackageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LorePackage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *LorePackageMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *LorePackageMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the LorePackage entity.
// If the LorePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LorePackageMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *LorePackageMutation) ResetJobID() {
	m.job = nil
}

// SetZoneName sets the "zone_name" field.
func (m *LorePackageMutation) SetZoneName(s string) {
	m.zone_name = &s
}

// ZoneName returns the value of the "zone_name" field in the mutation.
func (m *LorePackageMutation) ZoneName() (r string, exists bool) {
	v := m.zone_name
	if v == nil {
		return
	}
	return *v, true
}

// OldZoneName returns the old "zone_name" field's value of the LorePackage entity.
// If the LorePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LorePackageMutation) OldZoneName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZoneName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZoneName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZoneName: %w", err)
	}
	return oldValue.ZoneName, nil
}

// ResetZoneName resets all changes to the "zone_name" field.
func (m *LorePackageMutation) ResetZoneName() {
	m.zone_name = nil
}

// SetDocument sets the "document" field.
func (m *LorePackageMutation) SetDocument(value map[string]interface{}) {
	m.document = &value
}

// Document returns the value of the "document" field in the mutation.
func (m *LorePackageMutation) Document() (r map[string]interface{}, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocument returns the old "document" field's value of the LorePackage entity.
// If the LorePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LorePackageMutation) OldDocument(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocument is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocument requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocument: %w", err)
	}
	return oldValue.Document, nil
}

// ResetDocument resets all changes to the "document" field.
func (m *LorePackageMutation) ResetDocument() {
	m.document = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *LorePackageMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *LorePackageMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the LorePackage entity.
// If the LorePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LorePackageMutation) OldPublishedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *LorePackageMutation) ResetPublishedAt() {
	m.published_at = nil
}

// ClearJob clears the "job" edge to the ResearchJob entity.
func (m *LorePackageMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[lorepackage.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ResearchJob entity was cleared.
func (m *LorePackageMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *LorePackageMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *LorePackageMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the LorePackageMutation builder.
func (m *LorePackageMutation) Where(ps ...predicate.LorePackage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LorePackageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LorePackageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LorePackage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LorePackageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LorePackageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LorePackage).
func (m *LorePackageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LorePackageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.job != nil {
		fields = append(fields, lorepackage.FieldJobID)
	}
	if m.zone_name != nil {
		fields = append(fields, lorepackage.FieldZoneName)
	}
	if m.document != nil {
		fields = append(fields, lorepackage.FieldDocument)
	}
	if m.published_at != nil {
		fields = append(fields, lorepackage.FieldPublishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LorePackageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lorepackage.FieldJobID:
		return m.JobID()
	case lorepackage.FieldZoneName:
		return m.ZoneName()
	case lorepackage.FieldDocument:
		return m.Document()
	case lorepackage.FieldPublishedAt:
		return m.PublishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LorePackageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lorepackage.FieldJobID:
		return m.OldJobID(ctx)
	case lorepackage.FieldZoneName:
		return m.OldZoneName(ctx)
	case lorepackage.FieldDocument:
		return m.OldDocument(ctx)
	case lorepackage.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LorePackage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LorePackageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lorepackage.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case lorepackage.FieldZoneName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZoneName(v)
		return nil
	case lorepackage.FieldDocument:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocument(v)
		return nil
	case lorepackage.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LorePackage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LorePackageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LorePackageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LorePackageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LorePackage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LorePackageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LorePackageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LorePackageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LorePackage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LorePackageMutation) ResetField(name string) error {
	switch name {
	case lorepackage.FieldJobID:
		m.ResetJobID()
		return nil
	case lorepackage.FieldZoneName:
		m.ResetZoneName()
		return nil
	case lorepackage.FieldDocument:
		m.ResetDocument()
		return nil
	case lorepackage.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	}
	return fmt.Errorf("unknown LorePackage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LorePackageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, lorepackage.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LorePackageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lorepackage.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LorePackageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LorePackageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LorePackageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, lorepackage.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LorePackageMutation) EdgeCleared(name string) bool {
	switch name {
	case lorepackage.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LorePackageMutation) ClearEdge(name string) error {
	switch name {
	case lorepackage.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown LorePackage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LorePackageMutation) ResetEdge(name string) error {
	switch name {
	case lorepackage.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown LorePackage edge %s", name)
}

// ResearchJobMutation represents an operation that mutates the ResearchJob nodes in the graph.
type ResearchJobMutation struct {
	config
	op                Op
	typ               string
	id                *string
	zone_name         *string
	depth             *int
	adddepth          *int
	budget_tokens     *int64
	addbudget_tokens  *int64
	model             *string
	status            *researchjob.Status
	cancel_requested  *bool
	requested_by      *string
	parent_job_id     *string
	claimed_by        *string
	last_heartbeat_at *time.Time
	resume_at         *time.Time
	resume_count      *int
	addresume_count   *int
	error_kind        *string
	error_message     *string
	created_at        *time.Time
	started_at        *time.Time
	completed_at      *time.Time
	clearedFields     map[string]struct{}
	checkpoint        *string
	clearedcheckpoint bool
	step_runs         map[string]struct{}
	removedstep_runs  map[string]struct{}
	clearedstep_runs  bool
	llm_calls         map[string]struct{}
	removedllm_calls  map[string]struct{}
	clearedllm_calls  bool
	tool_calls        map[string]struct{}
	removedtool_calls map[string]struct{}
	clearedtool_calls bool
	_package          *string
	cleared_package   bool
	done              bool
	oldValue          func(context.Context) (*ResearchJob, error)
	predicates        []predicate.ResearchJob
}

var _ ent.Mutation = (*ResearchJobMutation)(nil)

// researchjobOption allows management of the mutation configuration using functional options.
type researchjobOption func(*ResearchJobMutation)

// newResearchJobMutation creates new mutation for the ResearchJob entity.
func newResearchJobMutation(c config, op Op, opts ...researchjobOption) *ResearchJobMutation {
	m := &ResearchJobMutation{
		config:        c,
		op:            op,
		typ:           TypeResearchJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResearchJobID sets the ID field of the mutation.
func withResearchJobID(id string) researchjobOption {
	return func(m *ResearchJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ResearchJob
		)
		m.oldValue = func(ctx context.Context) (*ResearchJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResearchJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResearchJob sets the old ResearchJob of the mutation.
func withResearchJob(node *ResearchJob) researchjobOption {
	return func(m *ResearchJobMutation) {
		m.oldValue = func(context.Context) (*ResearchJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResearchJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResearchJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ResearchJob entities.
func (m *ResearchJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResearchJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResearchJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResearchJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetZoneName sets the "zone_name" field.
func (m *ResearchJobMutation) SetZoneName(s string) {
	m.zone_name = &s
}

// ZoneName returns the value of the "zone_name" field in the mutation.
func (m *ResearchJobMutation) ZoneName() (r string, exists bool) {
	v := m.zone_name
	if v == nil {
		return
	}
	return *v, true
}

// OldZoneName returns the old "zone_name" field's value of the ResearchJob entity.
// If the ResearchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchJobMutation) OldZoneName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZoneName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZoneName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZoneName: %w", err)
	}
	return oldValue.ZoneName, nil
}

// ResetZoneName resets all changes to the "zone_name" field.
func (m *ResearchJobMutation) ResetZoneName() {
	m.zone_name = nil
}

// SetDepth sets the "depth" field.
func (m *ResearchJobMutation) SetDepth(i int) {
	m.depth = &i
	m.adddepth = nil
}

// Depth returns the value of the "depth" field in the mutation.
func (m *ResearchJobMutation) Depth() (r int, exists bool) {
	v := m.depth
	if v == nil {
		return
	}
	return *v, true
}

// OldDepth returns the old "depth" field's value of the ResearchJob entity.
// If the ResearchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchJobMutation) OldDepth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepth: %w", err)
	}
	return oldValue.Depth, nil
}

// AddDepth adds i to the "depth" field.
func (m *ResearchJobMutation) AddDepth(i int) {
	if m.adddepth != nil {
		*m.adddepth += i
	} else {
		m.adddepth = &i
	}
}

// AddedDepth returns the value that was added to the "depth" field in this mutation.
func (m *ResearchJobMutation) AddedDepth() (r int, exists bool) {
	v := m.adddepth
	if v == nil {
		return
	}
	return *v, true
}

// ResetDepth resets all changes to the "depth" field.
func (m *ResearchJobMutation) ResetDepth() {
	m.depth = nil
	m.adddepth = nil
}

// SetBudgetTokens sets the "budget_tokens" field.
func (m *ResearchJobMutation) SetBudgetTokens(i int64) {
	m.budget_tokens = &i
	m.addbudget_tokens = nil
}

// BudgetTokens returns the value of the "budget_tokens" field in the mutation.
func (m *ResearchJobMutation) BudgetTokens() (r int64, exists bool) {
	v := m.budget_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldBudgetTokens returns the old "budget_tokens" field's value of the ResearchJob entity.
// If the ResearchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchJobMutation) OldBudgetTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBudgetTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBudgetTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBudgetTokens: %w", err)
	}
	return oldValue.BudgetTokens, nil
}

// AddBudgetTokens adds i to the "budget_tokens" field.
func (m *ResearchJobMutation) AddBudgetTokens(i int64) {
	if m.addbudget_tokens != nil {
		*m.addbudget_tokens += i
	} else {
		m.addbudget_tokens = &i
	}
}

// AddedBudgetTokens returns the value that was added to the "budget_tokens" field in this mutation.
func (m *ResearchJobMutation) AddedBudgetTokens() (r int64, exists bool) {
	v := m.addbudget_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetBudgetTokens resets all changes to the "budget_tokens" field.
func (m *ResearchJobMutation) ResetBudgetTokens() {
	m.budget_tokens = nil
	m.addbudget_tokens = nil
}

// SetModel sets the "model" field.
func (m *ResearchJobMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ResearchJobMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the ResearchJob entity.
// If the ResearchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchJobMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *ResearchJobMutation) ClearModel() {
	m.model = nil
	m.clearedFields[researchjob.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *ResearchJobMutation) ModelCleared() bool {
	_, ok := m.clearedFields[researchjob.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *ResearchJobMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, researchjob.FieldModel)
}

// SetStatus sets the "status" field.
func (m *ResearchJobMutation) SetStatus(r researchjob.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ResearchJobMutation) Status() (r researchjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ResearchJob entity.
// If the ResearchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchJobMutation) OldStatus(ctx context.Context) (v researchjob.Status, err error) {
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
func (m *ResearchJobMutation) ResetStatus() {
	m.status = nil
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *ResearchJobMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *ResearchJobMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the ResearchJob entity.
// If the ResearchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchJobMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *ResearchJobMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetRequestedBy sets the "requested_by" field.
func (m *ResearchJobMutation) SetRequestedBy(s string) {
	m.requested_by = &s
}

// RequestedBy returns the value of the "requested_by" field in the mutation.
func (m *ResearchJobMutation) RequestedBy() (r string, exists bool) {
	v := m.requested_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedBy returns the old "requested_by" field's value of the ResearchJob entity.
// If the ResearchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchJobMutation) OldRequestedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedBy: %w", err)
	}
	return oldValue.RequestedBy, nil
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (m *ResearchJobMutation) ClearRequestedBy() {
	m.requested_by = nil
	m.clearedFields[researchjob.FieldRequestedBy] = struct{}{}
}

// RequestedByCleared returns if the "requested_by" field was cleared in this mutation.
func (m *ResearchJobMutation) RequestedByCleared() bool {
	_, ok := m.clearedFields[researchjob.FieldRequestedBy]
	return ok
}

// ResetRequestedBy resets all changes to the "requested_by" field.
func (m *ResearchJobMutation) ResetRequestedBy() {
	m.requested_by = nil
	delete(m.clearedFields, researchjob.FieldRequestedBy)
}

// SetParentJobID sets the "parent_job_id" field.
func (m *ResearchJobMutation) SetParentJobID(s string) {
	m.parent_job_id = &s
}

// ParentJobID returns the value of the "parent_job_id" field in the mutation.
func (m *ResearchJobMutation) ParentJobID() (r string, exists bool) {
	v := m.parent_job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentJobID returns the old "parent_job_id" field's value of the ResearchJob entity.
// If the ResearchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchJobMutation) OldParentJobID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentJobID: %w", err)
	}
	return oldValue.ParentJobID, nil
}

// ClearParentJobID clears the value of the "parent_job_id" field.
func (m *ResearchJobMutation) ClearParentJobID() {
	m.parent_job_id = nil
	m.clearedFields[researchjob.FieldParentJobID] = struct{}{}
}

// ParentJobIDCleared returns if the "parent_job_id" field was cleared in this mutation.
func (m *ResearchJobMutation) ParentJobIDCleared() bool {
	_, ok := m.clearedFields[researchjob.FieldParentJobID]
	return ok
}

// ResetParentJobID resets all changes to the "parent_job_id" field.
func (m *ResearchJobMutation) ResetParentJobID() {
	m.parent_job_id = nil
	delete(m.clearedFields, researchjob.FieldParentJobID)
}

// SetClaimedBy sets the "claimed_by" field.
func (m *ResearchJobMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *ResearchJobMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the ResearchJob entity.
// If the ResearchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchJobMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *ResearchJobMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[researchjob.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *ResearchJobMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[researchjob.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *ResearchJobMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, researchjob.FieldClaimedBy)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *ResearchJobMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *ResearchJobMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the ResearchJob entity.
// If the ResearchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchJobMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *ResearchJobMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[researchjob.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *ResearchJobMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[researchjob.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *ResearchJobMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, researchjob.FieldLastHeartbeatAt)
}

// SetResumeAt sets the "resume_at" field.
func (m *ResearchJobMutation) SetResumeAt(t time.Time) {
	m.resume_at = &t
}

// ResumeAt returns the value of the "resume_at" field in the mutation.
func (m *ResearchJobMutation) ResumeAt() (r time.Time, exists bool) {
	v := m.resume_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResumeAt returns the old "resume_at" field's value of the ResearchJob entity.
// If the ResearchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchJobMutation) OldResumeAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumeAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumeAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumeAt: %w", err)
	}
	return oldValue.ResumeAt, nil
}

// ClearResumeAt clears the value of the "resume_at" field.
func (m *ResearchJobMutation) ClearResumeAt() {
	m.resume_at = nil
	m.clearedFields[researchjob.FieldResumeAt] = struct{}{}
}

// ResumeAtCleared returns if the "resume_at" field was cleared in this mutation.
func (m *ResearchJobMutation) ResumeAtCleared() bool {
	_, ok := m.clearedFields[researchjob.FieldResumeAt]
	return ok
}

// ResetResumeAt resets all changes to the "resume_at" field.
func (m *ResearchJobMutation) ResetResumeAt() {
	m.resume_at = nil
	delete(m.clearedFields, researchjob.FieldResumeAt)
}

// SetResumeCount sets the "resume_count" field.
func (m *ResearchJobMutation) SetResumeCount(i int) {
	m.resume_count = &i
	m.addresume_count = nil
}

// ResumeCount returns the value of the "resume_count" field in the mutation.
func (m *ResearchJobMutation) ResumeCount() (r int, exists bool) {
	v := m.resume_count
	if v == nil {
		return
	}
	return *v, true
}

// OldResumeCount returns the old "resume_count" field's value of the ResearchJob entity.
// If the ResearchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchJobMutation) OldResumeCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumeCount: %w", err)
	}
	return oldValue.ResumeCount, nil
}

// AddResumeCount adds i to the "resume_count" field.
func (m *ResearchJobMutation) AddResumeCount(i int) {
	if m.addresume_count != nil {
		*m.addresume_count += i
	} else {
		m.addresume_count = &i
	}
}

// AddedResumeCount returns the value that was added to the "resume_count" field in this mutation.
func (m *ResearchJobMutation) AddedResumeCount() (r int, exists bool) {
	v := m.addresume_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetResumeCount resets all changes to the "resume_count" field.
func (m *ResearchJobMutation) ResetResumeCount() {
	m.resume_count = nil
	m.addresume_count = nil
}

// SetErrorKind sets the "error_kind" field.
func (m *ResearchJobMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *ResearchJobMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the ResearchJob entity.
// If the ResearchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchJobMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *ResearchJobMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[researchjob.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *ResearchJobMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[researchjob.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *ResearchJobMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, researchjob.FieldErrorKind)
}

// SetErrorMessage sets the "error_message" field.
func (m *ResearchJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ResearchJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ResearchJob entity.
// If the ResearchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ResearchJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[researchjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ResearchJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[researchjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ResearchJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, researchjob.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *ResearchJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResearchJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ResearchJob entity.
// If the ResearchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ResearchJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ResearchJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ResearchJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ResearchJob entity.
// If the ResearchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ResearchJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[researchjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ResearchJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[researchjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ResearchJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, researchjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ResearchJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ResearchJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ResearchJob entity.
// If the ResearchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ResearchJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[researchjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ResearchJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[researchjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ResearchJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, researchjob.FieldCompletedAt)
}

// SetCheckpointID sets the "checkpoint" edge to the Checkpoint entity by id.
func (m *ResearchJobMutation) SetCheckpointID(id string) {
	m.checkpoint = &id
}

// ClearCheckpoint clears the "checkpoint" edge to the Checkpoint entity.
func (m *ResearchJobMutation) ClearCheckpoint() {
	m.clearedcheckpoint = true
}

// CheckpointCleared reports if the "checkpoint" edge to the Checkpoint entity was cleared.
func (m *ResearchJobMutation) CheckpointCleared() bool {
	return m.clearedcheckpoint
}

// CheckpointID returns the "checkpoint" edge ID in the mutation.
func (m *ResearchJobMutation) CheckpointID() (id string, exists bool) {
	if m.checkpoint != nil {
		return *m.checkpoint, true
	}
	return
}

// CheckpointIDs returns the "checkpoint" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CheckpointID instead. It exists only for internal usage by the builders.
func (m *ResearchJobMutation) CheckpointIDs() (ids []string) {
	if id := m.checkpoint; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCheckpoint resets all changes to the "checkpoint" edge.
func (m *ResearchJobMutation) ResetCheckpoint() {
	m.checkpoint = nil
	m.clearedcheckpoint = false
}

// AddStepRunIDs adds the "step_runs" edge to the StepRun entity by ids.
func (m *ResearchJobMutation) AddStepRunIDs(ids ...string) {
	if m.step_runs == nil {
		m.step_runs = make(map[string]struct{})
	}
	for i := range ids {
		m.step_runs[ids[i]] = struct{}{}
	}
}

// ClearStepRuns clears the "step_runs" edge to the StepRun entity.
func (m *ResearchJobMutation) ClearStepRuns() {
	m.clearedstep_runs = true
}

// StepRunsCleared reports if the "step_runs" edge to the StepRun entity was cleared.
func (m *ResearchJobMutation) StepRunsCleared() bool {
	return m.clearedstep_runs
}

// RemoveStepRunIDs removes the "step_runs" edge to the StepRun entity by IDs.
func (m *ResearchJobMutation) RemoveStepRunIDs(ids ...string) {
	if m.removedstep_runs == nil {
		m.removedstep_runs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.step_runs, ids[i])
		m.removedstep_runs[ids[i]] = struct{}{}
	}
}

// RemovedStepRuns returns the removed IDs of the "step_runs" edge to the StepRun entity.
func (m *ResearchJobMutation) RemovedStepRunsIDs() (ids []string) {
	for id := range m.removedstep_runs {
		ids = append(ids, id)
	}
	return
}

// StepRunsIDs returns the "step_runs" edge IDs in the mutation.
func (m *ResearchJobMutation) StepRunsIDs() (ids []string) {
	for id := range m.step_runs {
		ids = append(ids, id)
	}
	return
}

// ResetStepRuns resets all changes to the "step_runs" edge.
func (m *ResearchJobMutation) ResetStepRuns() {
	m.step_runs = nil
	m.clearedstep_runs = false
	m.removedstep_runs = nil
}

// AddLlmCallIDs adds the "llm_calls" edge to the LLMCall entity by ids.
func (m *ResearchJobMutation) AddLlmCallIDs(ids ...string) {
	if m.llm_calls == nil {
		m.llm_calls = make(map[string]struct{})
	}
	for i := range ids {
		m.llm_calls[ids[i]] = struct{}{}
	}
}

// ClearLlmCalls clears the "llm_calls" edge to the LLMCall entity.
func (m *ResearchJobMutation) ClearLlmCalls() {
	m.clearedllm_calls = true
}

// LlmCallsCleared reports if the "llm_calls" edge to the LLMCall entity was cleared.
func (m *ResearchJobMutation) LlmCallsCleared() bool {
	return m.clearedllm_calls
}

// RemoveLlmCallIDs removes the "llm_calls" edge to the LLMCall entity by IDs.
func (m *ResearchJobMutation) RemoveLlmCallIDs(ids ...string) {
	if m.removedllm_calls == nil {
		m.removedllm_calls = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.llm_calls, ids[i])
		m.removedllm_calls[ids[i]] = struct{}{}
	}
}

// RemovedLlmCalls returns the removed IDs of the "llm_calls" edge to the LLMCall entity.
func (m *ResearchJobMutation) RemovedLlmCallsIDs() (ids []string) {
	for id := range m.removedllm_calls {
		ids = append(ids, id)
	}
	return
}

// LlmCallsIDs returns the "llm_calls" edge IDs in the mutation.
func (m *ResearchJobMutation) LlmCallsIDs() (ids []string) {
	for id := range m.llm_calls {
		ids = append(ids, id)
	}
	return
}

// ResetLlmCalls resets all changes to the "llm_calls" edge.
func (m *ResearchJobMutation) ResetLlmCalls() {
	m.llm_calls = nil
	m.clearedllm_calls = false
	m.removedllm_calls = nil
}

// AddToolCallIDs adds the "tool_calls" edge to the ToolCall entity by ids.
func (m *ResearchJobMutation) AddToolCallIDs(ids ...string) {
	if m.tool_calls == nil {
		m.tool_calls = make(map[string]struct{})
	}
	for i := range ids {
		m.tool_calls[ids[i]] = struct{}{}
	}
}

// ClearToolCalls clears the "tool_calls" edge to the ToolCall entity.
func (m *ResearchJobMutation) ClearToolCalls() {
	m.clearedtool_calls = true
}

// ToolCallsCleared reports if the "tool_calls" edge to the ToolCall entity was cleared.
func (m *ResearchJobMutation) ToolCallsCleared() bool {
	return m.clearedtool_calls
}

// RemoveToolCallIDs removes the "tool_calls" edge to the ToolCall entity by IDs.
func (m *ResearchJobMutation) RemoveToolCallIDs(ids ...string) {
	if m.removedtool_calls == nil {
		m.removedtool_calls = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tool_calls, ids[i])
		m.removedtool_calls[ids[i]] = struct{}{}
	}
}

// RemovedToolCalls returns the removed IDs of the "tool_calls" edge to the ToolCall entity.
func (m *ResearchJobMutation) RemovedToolCallsIDs() (ids []string) {
	for id := range m.removedtool_calls {
		ids = append(ids, id)
	}
	return
}

// ToolCallsIDs returns the "tool_calls" edge IDs in the mutation.
func (m *ResearchJobMutation) ToolCallsIDs() (ids []string) {
	for id := range m.tool_calls {
		ids = append(ids, id)
	}
	return
}

// ResetToolCalls resets all changes to the "tool_calls" edge.
func (m *ResearchJobMutation) ResetToolCalls() {
	m.tool_calls = nil
	m.clearedtool_calls = false
	m.removedtool_calls = nil
}

// SetPackageID sets the "package" edge to the LorePackage entity by id.
func (m *ResearchJobMutation) SetPackageID(id string) {
	m._package = &id
}

// ClearPackage clears the "package" edge to the LorePackage entity.
func (m *ResearchJobMutation) ClearPackage() {
	m.cleared_package = true
}

// PackageCleared reports if the "package" edge to the LorePackage entity was cleared.
func (m *ResearchJobMutation) PackageCleared() bool {
	return m.cleared_package
}

// PackageID returns the "package" edge ID in the mutation.
func (m *ResearchJobMutation) PackageID() (id string, exists bool) {
	if m._package != nil {
		return *m._package, true
	}
	return
}

// PackageIDs returns the "package" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PackageID instead. It exists only for internal usage by the builders.
func (m *ResearchJobMutation) PackageIDs() (ids []string) {
	if id := m._package; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPackage resets all changes to the "package" edge.
func (m *ResearchJobMutation) ResetPackage() {
	m._package = nil
	m.cleared_package = false
}

// Where appends a list predicates to the ResearchJobMutation builder.
func (m *ResearchJobMutation) Where(ps ...predicate.ResearchJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResearchJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResearchJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResearchJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResearchJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResearchJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResearchJob).
func (m *ResearchJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResearchJobMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.zone_name != nil {
		fields = append(fields, researchjob.FieldZoneName)
	}
	if m.depth != nil {
		fields = append(fields, researchjob.FieldDepth)
	}
	if m.budget_tokens != nil {
		fields = append(fields, researchjob.FieldBudgetTokens)
	}
	if m.model != nil {
		fields = append(fields, researchjob.FieldModel)
	}
	if m.status != nil {
		fields = append(fields, researchjob.FieldStatus)
	}
	if m.cancel_requested != nil {
		fields = append(fields, researchjob.FieldCancelRequested)
	}
	if m.requested_by != nil {
		fields = append(fields, researchjob.FieldRequestedBy)
	}
	if m.parent_job_id != nil {
		fields = append(fields, researchjob.FieldParentJobID)
	}
	if m.claimed_by != nil {
		fields = append(fields, researchjob.FieldClaimedBy)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, researchjob.FieldLastHeartbeatAt)
	}
	if m.resume_at != nil {
		fields = append(fields, researchjob.FieldResumeAt)
	}
	if m.resume_count != nil {
		fields = append(fields, researchjob.FieldResumeCount)
	}
	if m.error_kind != nil {
		fields = append(fields, researchjob.FieldErrorKind)
	}
	if m.error_message != nil {
		fields = append(fields, researchjob.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, researchjob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, researchjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, researchjob.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResearchJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case researchjob.FieldZoneName:
		return m.ZoneName()
	case researchjob.FieldDepth:
		return m.Depth()
	case researchjob.FieldBudgetTokens:
		return m.BudgetTokens()
	case researchjob.FieldModel:
		return m.Model()
	case researchjob.FieldStatus:
		return m.Status()
	case researchjob.FieldCancelRequested:
		return m.CancelRequested()
	case researchjob.FieldRequestedBy:
		return m.RequestedBy()
	case researchjob.FieldParentJobID:
		return m.ParentJobID()
	case researchjob.FieldClaimedBy:
		return m.ClaimedBy()
	case researchjob.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case researchjob.FieldResumeAt:
		return m.ResumeAt()
	case researchjob.FieldResumeCount:
		return m.ResumeCount()
	case researchjob.FieldErrorKind:
		return m.ErrorKind()
	case researchjob.FieldErrorMessage:
		return m.ErrorMessage()
	case researchjob.FieldCreatedAt:
		return m.CreatedAt()
	case researchjob.FieldStartedAt:
		return m.StartedAt()
	case researchjob.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResearchJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case researchjob.FieldZoneName:
		return m.OldZoneName(ctx)
	case researchjob.FieldDepth:
		return m.OldDepth(ctx)
	case researchjob.FieldBudgetTokens:
		return m.OldBudgetTokens(ctx)
	case researchjob.FieldModel:
		return m.OldModel(ctx)
	case researchjob.FieldStatus:
		return m.OldStatus(ctx)
	case researchjob.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case researchjob.FieldRequestedBy:
		return m.OldRequestedBy(ctx)
	case researchjob.FieldParentJobID:
		return m.OldParentJobID(ctx)
	case researchjob.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case researchjob.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case researchjob.FieldResumeAt:
		return m.OldResumeAt(ctx)
	case researchjob.FieldResumeCount:
		return m.OldResumeCount(ctx)
	case researchjob.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case researchjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case researchjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case researchjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case researchjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResearchJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case researchjob.FieldZoneName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZoneName(v)
		return nil
	case researchjob.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepth(v)
		return nil
	case researchjob.FieldBudgetTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBudgetTokens(v)
		return nil
	case researchjob.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case researchjob.FieldStatus:
		v, ok := value.(researchjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case researchjob.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case researchjob.FieldRequestedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedBy(v)
		return nil
	case researchjob.FieldParentJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentJobID(v)
		return nil
	case researchjob.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case researchjob.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case researchjob.FieldResumeAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumeAt(v)
		return nil
	case researchjob.FieldResumeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumeCount(v)
		return nil
	case researchjob.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case researchjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case researchjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case researchjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case researchjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResearchJobMutation) AddedFields() []string {
	var fields []string
	if m.adddepth != nil {
		fields = append(fields, researchjob.FieldDepth)
	}
	if m.addbudget_tokens != nil {
		fields = append(fields, researchjob.FieldBudgetTokens)
	}
	if m.addresume_count != nil {
		fields = append(fields, researchjob.FieldResumeCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResearchJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case researchjob.FieldDepth:
		return m.AddedDepth()
	case researchjob.FieldBudgetTokens:
		return m.AddedBudgetTokens()
	case researchjob.FieldResumeCount:
		return m.AddedResumeCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case researchjob.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDepth(v)
		return nil
	case researchjob.FieldBudgetTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBudgetTokens(v)
		return nil
	case researchjob.FieldResumeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResumeCount(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResearchJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(researchjob.FieldModel) {
		fields = append(fields, researchjob.FieldModel)
	}
	if m.FieldCleared(researchjob.FieldRequestedBy) {
		fields = append(fields, researchjob.FieldRequestedBy)
	}
	if m.FieldCleared(researchjob.FieldParentJobID) {
		fields = append(fields, researchjob.FieldParentJobID)
	}
	if m.FieldCleared(researchjob.FieldClaimedBy) {
		fields = append(fields, researchjob.FieldClaimedBy)
	}
	if m.FieldCleared(researchjob.FieldLastHeartbeatAt) {
		fields = append(fields, researchjob.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(researchjob.FieldResumeAt) {
		fields = append(fields, researchjob.FieldResumeAt)
	}
	if m.FieldCleared(researchjob.FieldErrorKind) {
		fields = append(fields, researchjob.FieldErrorKind)
	}
	if m.FieldCleared(researchjob.FieldErrorMessage) {
		fields = append(fields, researchjob.FieldErrorMessage)
	}
	if m.FieldCleared(researchjob.FieldStartedAt) {
		fields = append(fields, researchjob.FieldStartedAt)
	}
	if m.FieldCleared(researchjob.FieldCompletedAt) {
		fields = append(fields, researchjob.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResearchJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResearchJobMutation) ClearField(name string) error {
	switch name {
	case researchjob.FieldModel:
		m.ClearModel()
		return nil
	case researchjob.FieldRequestedBy:
		m.ClearRequestedBy()
		return nil
	case researchjob.FieldParentJobID:
		m.ClearParentJobID()
		return nil
	case researchjob.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case researchjob.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case researchjob.FieldResumeAt:
		m.ClearResumeAt()
		return nil
	case researchjob.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case researchjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case researchjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case researchjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ResearchJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResearchJobMutation) ResetField(name string) error {
	switch name {
	case researchjob.FieldZoneName:
		m.ResetZoneName()
		return nil
	case researchjob.FieldDepth:
		m.ResetDepth()
		return nil
	case researchjob.FieldBudgetTokens:
		m.ResetBudgetTokens()
		return nil
	case researchjob.FieldModel:
		m.ResetModel()
		return nil
	case researchjob.FieldStatus:
		m.ResetStatus()
		return nil
	case researchjob.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case researchjob.FieldRequestedBy:
		m.ResetRequestedBy()
		return nil
	case researchjob.FieldParentJobID:
		m.ResetParentJobID()
		return nil
	case researchjob.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case researchjob.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case researchjob.FieldResumeAt:
		m.ResetResumeAt()
		return nil
	case researchjob.FieldResumeCount:
		m.ResetResumeCount()
		return nil
	case researchjob.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case researchjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case researchjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case researchjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case researchjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ResearchJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResearchJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.checkpoint != nil {
		edges = append(edges, researchjob.EdgeCheckpoint)
	}
	if m.step_runs != nil {
		edges = append(edges, researchjob.EdgeStepRuns)
	}
	if m.llm_calls != nil {
		edges = append(edges, researchjob.EdgeLlmCalls)
	}
	if m.tool_calls != nil {
		edges = append(edges, researchjob.EdgeToolCalls)
	}
	if m._package != nil {
		edges = append(edges, researchjob.EdgePackage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResearchJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case researchjob.EdgeCheckpoint:
		if id := m.checkpoint; id != nil {
			return []ent.Value{*id}
		}
	case researchjob.EdgeStepRuns:
		ids := make([]ent.Value, 0, len(m.step_runs))
		for id := range m.step_runs {
			ids = append(ids, id)
		}
		return ids
	case researchjob.EdgeLlmCalls:
		ids := make([]ent.Value, 0, len(m.llm_calls))
		for id := range m.llm_calls {
			ids = append(ids, id)
		}
		return ids
	case researchjob.EdgeToolCalls:
		ids := make([]ent.Value, 0, len(m.tool_calls))
		for id := range m.tool_calls {
			ids = append(ids, id)
		}
		return ids
	case researchjob.EdgePackage:
		if id := m._package; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResearchJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedstep_runs != nil {
		edges = append(edges, researchjob.EdgeStepRuns)
	}
	if m.removedllm_calls != nil {
		edges = append(edges, researchjob.EdgeLlmCalls)
	}
	if m.removedtool_calls != nil {
		edges = append(edges, researchjob.EdgeToolCalls)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResearchJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case researchjob.EdgeStepRuns:
		ids := make([]ent.Value, 0, len(m.removedstep_runs))
		for id := range m.removedstep_runs {
			ids = append(ids, id)
		}
		return ids
	case researchjob.EdgeLlmCalls:
		ids := make([]ent.Value, 0, len(m.removedllm_calls))
		for id := range m.removedllm_calls {
			ids = append(ids, id)
		}
		return ids
	case researchjob.EdgeToolCalls:
		ids := make([]ent.Value, 0, len(m.removedtool_calls))
		for id := range m.removedtool_calls {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResearchJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedcheckpoint {
		edges = append(edges, researchjob.EdgeCheckpoint)
	}
	if m.clearedstep_runs {
		edges = append(edges, researchjob.EdgeStepRuns)
	}
	if m.clearedllm_calls {
		edges = append(edges, researchjob.EdgeLlmCalls)
	}
	if m.clearedtool_calls {
		edges = append(edges, researchjob.EdgeToolCalls)
	}
	if m.cleared_package {
		edges = append(edges, researchjob.EdgePackage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResearchJobMutation) EdgeCleared(name string) bool {
	switch name {
	case researchjob.EdgeCheckpoint:
		return m.clearedcheckpoint
	case researchjob.EdgeStepRuns:
		return m.clearedstep_runs
	case researchjob.EdgeLlmCalls:
		return m.clearedllm_calls
	case researchjob.EdgeToolCalls:
		return m.clearedtool_calls
	case researchjob.EdgePackage:
		return m.cleared_package
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResearchJobMutation) ClearEdge(name string) error {
	switch name {
	case researchjob.EdgeCheckpoint:
		m.ClearCheckpoint()
		return nil
	case researchjob.EdgePackage:
		m.ClearPackage()
		return nil
	}
	return fmt.Errorf("unknown ResearchJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResearchJobMutation) ResetEdge(name string) error {
	switch name {
	case researchjob.EdgeCheckpoint:
		m.ResetCheckpoint()
		return nil
	case researchjob.EdgeStepRuns:
		m.ResetStepRuns()
		return nil
	case researchjob.EdgeLlmCalls:
		m.ResetLlmCalls()
		return nil
	case researchjob.EdgeToolCalls:
		m.ResetToolCalls()
		return nil
	case researchjob.EdgePackage:
		m.ResetPackage()
		return nil
	}
	return fmt.Errorf("unknown ResearchJob edge %s", name)
}

// StepRunMutation represents an operation that mutates the StepRun nodes in the graph.
type StepRunMutation struct {
	config
	op               Op
	typ              string
	id               *string
	step_name        *string
	step_index       *int
	addstep_index    *int
	attempt          *int
	addattempt       *int
	status           *steprun.Status
	duration_ms      *int
	addduration_ms   *int
	tokens_used      *int64
	addtokens_used   *int64
	sources_added    *int
	addsources_added *int
	content_bytes    *int
	addcontent_bytes *int
	error_kind       *string
	error_message    *string
	started_at       *time.Time
	completed_at     *time.Time
	clearedFields    map[string]struct{}
	job              *string
	clearedjob       bool
	done             bool
	oldValue         func(context.Context) (*StepRun, error)
	predicates       []predicate.StepRun
}

var _ ent.Mutation = (*StepRunMutation)(nil)

// steprunOption allows management of the mutation configuration using functional options.
type steprunOption func(*StepRunMutation)

// newStepRunMutation creates new mutation for the StepRun entity.
func newStepRunMutation(c config, op Op, opts ...steprunOption) *StepRunMutation {
	m := &StepRunMutation{
		config:        c,
		op:            op,
		typ:           TypeStepRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepRunID sets the ID field of the mutation.
func withStepRunID(id string) steprunOption {
	return func(m *StepRunMutation) {
		var (
			err   error
			once  sync.Once
			value *StepRun
		)
		m.oldValue = func(ctx context.Context) (*StepRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StepRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStepRun sets the old StepRun of the mutation.
func withStepRun(node *StepRun) steprunOption {
	return func(m *StepRunMutation) {
		m.oldValue = func(context.Context) (*StepRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StepRun entities.
func (m *StepRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StepRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *StepRunMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *StepRunMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the StepRun entity.
// If the StepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRunMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *StepRunMutation) ResetJobID() {
	m.job = nil
}

// SetStepName sets the "step_name" field.
func (m *StepRunMutation) SetStepName(s string) {
	m.step_name = &s
}

// StepName returns the value of the "step_name" field in the mutation.
func (m *StepRunMutation) StepName() (r string, exists bool) {
	v := m.step_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStepName returns the old "step_name" field's value of the StepRun entity.
// If the StepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRunMutation) OldStepName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepName: %w", err)
	}
	return oldValue.StepName, nil
}

// ResetStepName resets all changes to the "step_name" field.
func (m *StepRunMutation) ResetStepName() {
	m.step_name = nil
}

// SetStepIndex sets the "step_index" field.
func (m *StepRunMutation) SetStepIndex(i int) {
	m.step_index = &i
	m.addstep_index = nil
}

// StepIndex returns the value of the "step_index" field in the mutation.
func (m *StepRunMutation) StepIndex() (r int, exists bool) {
	v := m.step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStepIndex returns the old "step_index" field's value of the StepRun entity.
// If the StepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRunMutation) OldStepIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepIndex: %w", err)
	}
	return oldValue.StepIndex, nil
}

// AddStepIndex adds i to the "step_index" field.
func (m *StepRunMutation) AddStepIndex(i int) {
	if m.addstep_index != nil {
		*m.addstep_index += i
	} else {
		m.addstep_index = &i
	}
}

// AddedStepIndex returns the value that was added to the "step_index" field in this mutation.
func (m *StepRunMutation) AddedStepIndex() (r int, exists bool) {
	v := m.addstep_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepIndex resets all changes to the "step_index" field.
func (m *StepRunMutation) ResetStepIndex() {
	m.step_index = nil
	m.addstep_index = nil
}

// SetAttempt sets the "attempt" field.
func (m *StepRunMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *StepRunMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the StepRun entity.
// If the StepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRunMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *StepRunMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *StepRunMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *StepRunMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetStatus sets the "status" field.
func (m *StepRunMutation) SetStatus(s steprun.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StepRunMutation) Status() (r steprun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StepRun entity.
// If the StepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRunMutation) OldStatus(ctx context.Context) (v steprun.Status, err error) {
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
func (m *StepRunMutation) ResetStatus() {
	m.status = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *StepRunMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *StepRunMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the StepRun entity.
// If the StepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRunMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *StepRunMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *StepRunMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *StepRunMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[steprun.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *StepRunMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[steprun.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *StepRunMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, steprun.FieldDurationMs)
}

// SetTokensUsed sets the "tokens_used" field.
func (m *StepRunMutation) SetTokensUsed(i int64) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *StepRunMutation) TokensUsed() (r int64, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the StepRun entity.
// If the StepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRunMutation) OldTokensUsed(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *StepRunMutation) AddTokensUsed(i int64) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *StepRunMutation) AddedTokensUsed() (r int64, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokensUsed clears the value of the "tokens_used" field.
func (m *StepRunMutation) ClearTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
	m.clearedFields[steprun.FieldTokensUsed] = struct{}{}
}

// TokensUsedCleared returns if the "tokens_used" field was cleared in this mutation.
func (m *StepRunMutation) TokensUsedCleared() bool {
	_, ok := m.clearedFields[steprun.FieldTokensUsed]
	return ok
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *StepRunMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
	delete(m.clearedFields, steprun.FieldTokensUsed)
}

// SetSourcesAdded sets the "sources_added" field.
func (m *StepRunMutation) SetSourcesAdded(i int) {
	m.sources_added = &i
	m.addsources_added = nil
}

// SourcesAdded returns the value of the "sources_added" field in the mutation.
func (m *StepRunMutation) SourcesAdded() (r int, exists bool) {
	v := m.sources_added
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcesAdded returns the old "sources_added" field's value of the StepRun entity.
// If the StepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRunMutation) OldSourcesAdded(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcesAdded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcesAdded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcesAdded: %w", err)
	}
	return oldValue.SourcesAdded, nil
}

// AddSourcesAdded adds i to the "sources_added" field.
func (m *StepRunMutation) AddSourcesAdded(i int) {
	if m.addsources_added != nil {
		*m.addsources_added += i
	} else {
		m.addsources_added = &i
	}
}

// AddedSourcesAdded returns the value that was added to the "sources_added" field in this mutation.
func (m *StepRunMutation) AddedSourcesAdded() (r int, exists bool) {
	v := m.addsources_added
	if v == nil {
		return
	}
	return *v, true
}

// ClearSourcesAdded clears the value of the "sources_added" field.
func (m *StepRunMutation) ClearSourcesAdded() {
	m.sources_added = nil
	m.addsources_added = nil
	m.clearedFields[steprun.FieldSourcesAdded] = struct{}{}
}

// SourcesAddedCleared returns if the "sources_added" field was cleared in this mutation.
func (m *StepRunMutation) SourcesAddedCleared() bool {
	_, ok := m.clearedFields[steprun.FieldSourcesAdded]
	return ok
}

// ResetSourcesAdded resets all changes to the "sources_added" field.
func (m *StepRunMutation) ResetSourcesAdded() {
	m.sources_added = nil
	m.addsources_added = nil
	delete(m.clearedFields, steprun.FieldSourcesAdded)
}

// SetContentBytes sets the "content_bytes" field.
func (m *StepRunMutation) SetContentBytes(i int) {
	m.content_bytes = &i
	m.addcontent_bytes = nil
}

// ContentBytes returns the value of the "content_bytes" field in the mutation.
func (m *StepRunMutation) ContentBytes() (r int, exists bool) {
	v := m.content_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldContentBytes returns the old "content_bytes" field's value of the StepRun entity.
// If the StepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRunMutation) OldContentBytes(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentBytes: %w", err)
	}
	return oldValue.ContentBytes, nil
}

// AddContentBytes adds i to the "content_bytes" field.
func (m *StepRunMutation) AddContentBytes(i int) {
	if m.addcontent_bytes != nil {
		*m.addcontent_bytes += i
	} else {
		m.addcontent_bytes = &i
	}
}

// AddedContentBytes returns the value that was added to the "content_bytes" field in this mutation.
func (m *StepRunMutation) AddedContentBytes() (r int, exists bool) {
	v := m.addcontent_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ClearContentBytes clears the value of the "content_bytes" field.
func (m *StepRunMutation) ClearContentBytes() {
	m.content_bytes = nil
	m.addcontent_bytes = nil
	m.clearedFields[steprun.FieldContentBytes] = struct{}{}
}

// ContentBytesCleared returns if the "content_bytes" field was cleared in this mutation.
func (m *StepRunMutation) ContentBytesCleared() bool {
	_, ok := m.clearedFields[steprun.FieldContentBytes]
	return ok
}

// ResetContentBytes resets all changes to the "content_bytes" field.
func (m *StepRunMutation) ResetContentBytes() {
	m.content_bytes = nil
	m.addcontent_bytes = nil
	delete(m.clearedFields, steprun.FieldContentBytes)
}

// SetErrorKind sets the "error_kind" field.
func (m *StepRunMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *StepRunMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the StepRun entity.
// If the StepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRunMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *StepRunMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[steprun.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *StepRunMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[steprun.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *StepRunMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, steprun.FieldErrorKind)
}

// SetErrorMessage sets the "error_message" field.
func (m *StepRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *StepRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the StepRun entity.
// If the StepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *StepRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[steprun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *StepRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[steprun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *StepRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, steprun.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *StepRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StepRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the StepRun entity.
// If the StepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StepRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *StepRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StepRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the StepRun entity.
// If the StepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StepRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[steprun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StepRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[steprun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StepRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, steprun.FieldCompletedAt)
}

// ClearJob clears the "job" edge to the ResearchJob entity.
func (m *StepRunMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[steprun.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ResearchJob entity was cleared.
func (m *StepRunMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *StepRunMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *StepRunMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the StepRunMutation builder.
func (m *StepRunMutation) Where(ps ...predicate.StepRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StepRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StepRun).
func (m *StepRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepRunMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.job != nil {
		fields = append(fields, steprun.FieldJobID)
	}
	if m.step_name != nil {
		fields = append(fields, steprun.FieldStepName)
	}
	if m.step_index != nil {
		fields = append(fields, steprun.FieldStepIndex)
	}
	if m.attempt != nil {
		fields = append(fields, steprun.FieldAttempt)
	}
	if m.status != nil {
		fields = append(fields, steprun.FieldStatus)
	}
	if m.duration_ms != nil {
		fields = append(fields, steprun.FieldDurationMs)
	}
	if m.tokens_used != nil {
		fields = append(fields, steprun.FieldTokensUsed)
	}
	if m.sources_added != nil {
		fields = append(fields, steprun.FieldSourcesAdded)
	}
	if m.content_bytes != nil {
		fields = append(fields, steprun.FieldContentBytes)
	}
	if m.error_kind != nil {
		fields = append(fields, steprun.FieldErrorKind)
	}
	if m.error_message != nil {
		fields = append(fields, steprun.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, steprun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, steprun.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case steprun.FieldJobID:
		return m.JobID()
	case steprun.FieldStepName:
		return m.StepName()
	case steprun.FieldStepIndex:
		return m.StepIndex()
	case steprun.FieldAttempt:
		return m.Attempt()
	case steprun.FieldStatus:
		return m.Status()
	case steprun.FieldDurationMs:
		return m.DurationMs()
	case steprun.FieldTokensUsed:
		return m.TokensUsed()
	case steprun.FieldSourcesAdded:
		return m.SourcesAdded()
	case steprun.FieldContentBytes:
		return m.ContentBytes()
	case steprun.FieldErrorKind:
		return m.ErrorKind()
	case steprun.FieldErrorMessage:
		return m.ErrorMessage()
	case steprun.FieldStartedAt:
		return m.StartedAt()
	case steprun.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case steprun.FieldJobID:
		return m.OldJobID(ctx)
	case steprun.FieldStepName:
		return m.OldStepName(ctx)
	case steprun.FieldStepIndex:
		return m.OldStepIndex(ctx)
	case steprun.FieldAttempt:
		return m.OldAttempt(ctx)
	case steprun.FieldStatus:
		return m.OldStatus(ctx)
	case steprun.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case steprun.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case steprun.FieldSourcesAdded:
		return m.OldSourcesAdded(ctx)
	case steprun.FieldContentBytes:
		return m.OldContentBytes(ctx)
	case steprun.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case steprun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case steprun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case steprun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StepRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case steprun.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case steprun.FieldStepName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepName(v)
		return nil
	case steprun.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepIndex(v)
		return nil
	case steprun.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case steprun.FieldStatus:
		v, ok := value.(steprun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case steprun.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case steprun.FieldTokensUsed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case steprun.FieldSourcesAdded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcesAdded(v)
		return nil
	case steprun.FieldContentBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentBytes(v)
		return nil
	case steprun.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case steprun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case steprun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case steprun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StepRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepRunMutation) AddedFields() []string {
	var fields []string
	if m.addstep_index != nil {
		fields = append(fields, steprun.FieldStepIndex)
	}
	if m.addattempt != nil {
		fields = append(fields, steprun.FieldAttempt)
	}
	if m.addduration_ms != nil {
		fields = append(fields, steprun.FieldDurationMs)
	}
	if m.addtokens_used != nil {
		fields = append(fields, steprun.FieldTokensUsed)
	}
	if m.addsources_added != nil {
		fields = append(fields, steprun.FieldSourcesAdded)
	}
	if m.addcontent_bytes != nil {
		fields = append(fields, steprun.FieldContentBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case steprun.FieldStepIndex:
		return m.AddedStepIndex()
	case steprun.FieldAttempt:
		return m.AddedAttempt()
	case steprun.FieldDurationMs:
		return m.AddedDurationMs()
	case steprun.FieldTokensUsed:
		return m.AddedTokensUsed()
	case steprun.FieldSourcesAdded:
		return m.AddedSourcesAdded()
	case steprun.FieldContentBytes:
		return m.AddedContentBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case steprun.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepIndex(v)
		return nil
	case steprun.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case steprun.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case steprun.FieldTokensUsed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case steprun.FieldSourcesAdded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSourcesAdded(v)
		return nil
	case steprun.FieldContentBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContentBytes(v)
		return nil
	}
	return fmt.Errorf("unknown StepRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(steprun.FieldDurationMs) {
		fields = append(fields, steprun.FieldDurationMs)
	}
	if m.FieldCleared(steprun.FieldTokensUsed) {
		fields = append(fields, steprun.FieldTokensUsed)
	}
	if m.FieldCleared(steprun.FieldSourcesAdded) {
		fields = append(fields, steprun.FieldSourcesAdded)
	}
	if m.FieldCleared(steprun.FieldContentBytes) {
		fields = append(fields, steprun.FieldContentBytes)
	}
	if m.FieldCleared(steprun.FieldErrorKind) {
		fields = append(fields, steprun.FieldErrorKind)
	}
	if m.FieldCleared(steprun.FieldErrorMessage) {
		fields = append(fields, steprun.FieldErrorMessage)
	}
	if m.FieldCleared(steprun.FieldCompletedAt) {
		fields = append(fields, steprun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepRunMutation) ClearField(name string) error {
	switch name {
	case steprun.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case steprun.FieldTokensUsed:
		m.ClearTokensUsed()
		return nil
	case steprun.FieldSourcesAdded:
		m.ClearSourcesAdded()
		return nil
	case steprun.FieldContentBytes:
		m.ClearContentBytes()
		return nil
	case steprun.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case steprun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case steprun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown StepRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepRunMutation) ResetField(name string) error {
	switch name {
	case steprun.FieldJobID:
		m.ResetJobID()
		return nil
	case steprun.FieldStepName:
		m.ResetStepName()
		return nil
	case steprun.FieldStepIndex:
		m.ResetStepIndex()
		return nil
	case steprun.FieldAttempt:
		m.ResetAttempt()
		return nil
	case steprun.FieldStatus:
		m.ResetStatus()
		return nil
	case steprun.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case steprun.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case steprun.FieldSourcesAdded:
		m.ResetSourcesAdded()
		return nil
	case steprun.FieldContentBytes:
		m.ResetContentBytes()
		return nil
	case steprun.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case steprun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case steprun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case steprun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown StepRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, steprun.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case steprun.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, steprun.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepRunMutation) EdgeCleared(name string) bool {
	switch name {
	case steprun.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepRunMutation) ClearEdge(name string) error {
	switch name {
	case steprun.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown StepRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepRunMutation) ResetEdge(name string) error {
	switch name {
	case steprun.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown StepRun edge %s", name)
}

// ToolCallMutation represents an operation that mutates the ToolCall nodes in the graph.
type ToolCallMutation struct {
	config
	op             Op
	typ            string
	id             *string
	step_name      *string
	tool_set       *string
	tool_name      *string
	arguments      *map[string]interface{}
	result_text    *string
	is_error       *bool
	duration_ms    *int
	addduration_ms *int
	created_at     *time.Time
	clearedFields  map[string]struct{}
	job            *string
	clearedjob     bool
	done           bool
	oldValue       func(context.Context) (*ToolCall, error)
	predicates     []predicate.ToolCall
}

var _ ent.Mutation = (*ToolCallMutation)(nil)

// toolcallOption allows management of the mutation configuration using functional options.
type toolcallOption func(*ToolCallMutation)

// newToolCallMutation creates new mutation for the ToolCall entity.
func newToolCallMutation(c config, op Op, opts ...toolcallOption) *ToolCallMutation {
	m := &ToolCallMutation{
		config:        c,
		op:            op,
		typ:           TypeToolCall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolCallID sets the ID field of the mutation.
func withToolCallID(id string) toolcallOption {
	return func(m *ToolCallMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolCall
		)
		m.oldValue = func(ctx context.Context) (*ToolCall, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolCall.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolCall sets the old ToolCall of the mutation.
func withToolCall(node *ToolCall) toolcallOption {
	return func(m *ToolCallMutation) {
		m.oldValue = func(context.Context) (*ToolCall, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolCallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolCallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ToolCall entities.
func (m *ToolCallMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolCallMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolCallMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolCall.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *ToolCallMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ToolCallMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ToolCallMutation) ResetJobID() {
	m.job = nil
}

// SetStepName sets the "step_name" field.
func (m *ToolCallMutation) SetStepName(s string) {
	m.step_name = &s
}

// StepName returns the value of the "step_name" field in the mutation.
func (m *ToolCallMutation) StepName() (r string, exists bool) {
	v := m.step_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStepName returns the old "step_name" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldStepName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepName: %w", err)
	}
	return oldValue.StepName, nil
}

// ResetStepName resets all changes to the "step_name" field.
func (m *ToolCallMutation) ResetStepName() {
	m.step_name = nil
}

// SetToolSet sets the "tool_set" field.
func (m *ToolCallMutation) SetToolSet(s string) {
	m.tool_set = &s
}

// ToolSet returns the value of the "tool_set" field in the mutation.
func (m *ToolCallMutation) ToolSet() (r string, exists bool) {
	v := m.tool_set
	if v == nil {
		return
	}
	return *v, true
}

// OldToolSet returns the old "tool_set" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldToolSet(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolSet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolSet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolSet: %w", err)
	}
	return oldValue.ToolSet, nil
}

// ResetToolSet resets all changes to the "tool_set" field.
func (m *ToolCallMutation) ResetToolSet() {
	m.tool_set = nil
}

// SetToolName sets the "tool_name" field.
func (m *ToolCallMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *ToolCallMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *ToolCallMutation) ResetToolName() {
	m.tool_name = nil
}

// SetArguments sets the "arguments" field.
func (m *ToolCallMutation) SetArguments(value map[string]interface{}) {
	m.arguments = &value
}

// Arguments returns the value of the "arguments" field in the mutation.
func (m *ToolCallMutation) Arguments() (r map[string]interface{}, exists bool) {
	v := m.arguments
	if v == nil {
		return
	}
	return *v, true
}

// OldArguments returns the old "arguments" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldArguments(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArguments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArguments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArguments: %w", err)
	}
	return oldValue.Arguments, nil
}

// ClearArguments clears the value of the "arguments" field.
func (m *ToolCallMutation) ClearArguments() {
	m.arguments = nil
	m.clearedFields[toolcall.FieldArguments] = struct{}{}
}

// ArgumentsCleared returns if the "arguments" field was cleared in this mutation.
func (m *ToolCallMutation) ArgumentsCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldArguments]
	return ok
}

// ResetArguments resets all changes to the "arguments" field.
func (m *ToolCallMutation) ResetArguments() {
	m.arguments = nil
	delete(m.clearedFields, toolcall.FieldArguments)
}

// SetResultText sets the "result_text" field.
func (m *ToolCallMutation) SetResultText(s string) {
	m.result_text = &s
}

// ResultText returns the value of the "result_text" field in the mutation.
func (m *ToolCallMutation) ResultText() (r string, exists bool) {
	v := m.result_text
	if v == nil {
		return
	}
	return *v, true
}

// OldResultText returns the old "result_text" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldResultText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultText: %w", err)
	}
	return oldValue.ResultText, nil
}

// ClearResultText clears the value of the "result_text" field.
func (m *ToolCallMutation) ClearResultText() {
	m.result_text = nil
	m.clearedFields[toolcall.FieldResultText] = struct{}{}
}

// ResultTextCleared returns if the "result_text" field was cleared in this mutation.
func (m *ToolCallMutation) ResultTextCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldResultText]
	return ok
}

// ResetResultText resets all changes to the "result_text" field.
func (m *ToolCallMutation) ResetResultText() {
	m.result_text = nil
	delete(m.clearedFields, toolcall.FieldResultText)
}

// SetIsError sets the "is_error" field.
func (m *ToolCallMutation) SetIsError(b bool) {
	m.is_error = &b
}

// IsError returns the value of the "is_error" field in the mutation.
func (m *ToolCallMutation) IsError() (r bool, exists bool) {
	v := m.is_error
	if v == nil {
		return
	}
	return *v, true
}

// OldIsError returns the old "is_error" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldIsError(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsError: %w", err)
	}
	return oldValue.IsError, nil
}

// ResetIsError resets all changes to the "is_error" field.
func (m *ToolCallMutation) ResetIsError() {
	m.is_error = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *ToolCallMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ToolCallMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ToolCallMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ToolCallMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *ToolCallMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[toolcall.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *ToolCallMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ToolCallMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, toolcall.FieldDurationMs)
}

// SetCreatedAt sets the "created_at" field.
func (m *ToolCallMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ToolCallMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ToolCallMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the ResearchJob entity.
func (m *ToolCallMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[toolcall.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ResearchJob entity was cleared.
func (m *ToolCallMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *ToolCallMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *ToolCallMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the ToolCallMutation builder.
func (m *ToolCallMutation) Where(ps ...predicate.ToolCall) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolCallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolCallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolCall, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolCallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolCallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolCall).
func (m *ToolCallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolCallMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.job != nil {
		fields = append(fields, toolcall.FieldJobID)
	}
	if m.step_name != nil {
		fields = append(fields, toolcall.FieldStepName)
	}
	if m.tool_set != nil {
		fields = append(fields, toolcall.FieldToolSet)
	}
	if m.tool_name != nil {
		fields = append(fields, toolcall.FieldToolName)
	}
	if m.arguments != nil {
		fields = append(fields, toolcall.FieldArguments)
	}
	if m.result_text != nil {
		fields = append(fields, toolcall.FieldResultText)
	}
	if m.is_error != nil {
		fields = append(fields, toolcall.FieldIsError)
	}
	if m.duration_ms != nil {
		fields = append(fields, toolcall.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, toolcall.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolCallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolcall.FieldJobID:
		return m.JobID()
	case toolcall.FieldStepName:
		return m.StepName()
	case toolcall.FieldToolSet:
		return m.ToolSet()
	case toolcall.FieldToolName:
		return m.ToolName()
	case toolcall.FieldArguments:
		return m.Arguments()
	case toolcall.FieldResultText:
		return m.ResultText()
	case toolcall.FieldIsError:
		return m.IsError()
	case toolcall.FieldDurationMs:
		return m.DurationMs()
	case toolcall.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolCallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolcall.FieldJobID:
		return m.OldJobID(ctx)
	case toolcall.FieldStepName:
		return m.OldStepName(ctx)
	case toolcall.FieldToolSet:
		return m.OldToolSet(ctx)
	case toolcall.FieldToolName:
		return m.OldToolName(ctx)
	case toolcall.FieldArguments:
		return m.OldArguments(ctx)
	case toolcall.FieldResultText:
		return m.OldResultText(ctx)
	case toolcall.FieldIsError:
		return m.OldIsError(ctx)
	case toolcall.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case toolcall.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolCall field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolCallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolcall.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case toolcall.FieldStepName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepName(v)
		return nil
	case toolcall.FieldToolSet:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolSet(v)
		return nil
	case toolcall.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case toolcall.FieldArguments:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArguments(v)
		return nil
	case toolcall.FieldResultText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultText(v)
		return nil
	case toolcall.FieldIsError:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsError(v)
		return nil
	case toolcall.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case toolcall.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolCall field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolCallMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, toolcall.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolCallMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case toolcall.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolCallMutation) AddField(name string, value ent.Value) error {
	switch name {
	case toolcall.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ToolCall numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolCallMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolcall.FieldArguments) {
		fields = append(fields, toolcall.FieldArguments)
	}
	if m.FieldCleared(toolcall.FieldResultText) {
		fields = append(fields, toolcall.FieldResultText)
	}
	if m.FieldCleared(toolcall.FieldDurationMs) {
		fields = append(fields, toolcall.FieldDurationMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolCallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolCallMutation) ClearField(name string) error {
	switch name {
	case toolcall.FieldArguments:
		m.ClearArguments()
		return nil
	case toolcall.FieldResultText:
		m.ClearResultText()
		return nil
	case toolcall.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	}
	return fmt.Errorf("unknown ToolCall nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolCallMutation) ResetField(name string) error {
	switch name {
	case toolcall.FieldJobID:
		m.ResetJobID()
		return nil
	case toolcall.FieldStepName:
		m.ResetStepName()
		return nil
	case toolcall.FieldToolSet:
		m.ResetToolSet()
		return nil
	case toolcall.FieldToolName:
		m.ResetToolName()
		return nil
	case toolcall.FieldArguments:
		m.ResetArguments()
		return nil
	case toolcall.FieldResultText:
		m.ResetResultText()
		return nil
	case toolcall.FieldIsError:
		m.ResetIsError()
		return nil
	case toolcall.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case toolcall.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolCall field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolCallMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, toolcall.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolCallMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case toolcall.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolCallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolCallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolCallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, toolcall.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolCallMutation) EdgeCleared(name string) bool {
	switch name {
	case toolcall.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolCallMutation) ClearEdge(name string) error {
	switch name {
	case toolcall.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown ToolCall unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolCallMutation) ResetEdge(name string) error {
	switch name {
	case toolcall.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown ToolCall edge %s", name)
}

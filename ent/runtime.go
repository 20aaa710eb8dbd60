// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/loreweave/loreweave/ent/checkpoint"
	"github.com/loreweave/loreweave/ent/event"
	"github.com/loreweave/loreweave/ent/llmcall"
	"github.com/loreweave/loreweave/ent/lorepackage"
	"github.com/loreweave/loreweave/ent/researchjob"
	"github.com/loreweave/loreweave/ent/schema"
	"github.com/loreweave/loreweave/ent/steprun"
	"github.com/loreweave/loreweave/ent/toolcall"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescCurrentStepIndex is the schema descriptor for current_step_index field.
	checkpointDescCurrentStepIndex := checkpointFields[2].Descriptor()
	// checkpoint.DefaultCurrentStepIndex holds the default value on creation for the current_step_index field.
	checkpoint.DefaultCurrentStepIndex = checkpointDescCurrentStepIndex.Default.(int)
	// checkpointDescTokensUsed is the schema descriptor for tokens_used field.
	checkpointDescTokensUsed := checkpointFields[9].Descriptor()
	// checkpoint.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	checkpoint.DefaultTokensUsed = checkpointDescTokensUsed.Default.(int64)
	// checkpointDescSchemaVersion is the schema descriptor for schema_version field.
	checkpointDescSchemaVersion := checkpointFields[11].Descriptor()
	// checkpoint.DefaultSchemaVersion holds the default value on creation for the schema_version field.
	checkpoint.DefaultSchemaVersion = checkpointDescSchemaVersion.Default.(int)
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[12].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	// checkpointDescUpdatedAt is the schema descriptor for updated_at field.
	checkpointDescUpdatedAt := checkpointFields[13].Descriptor()
	// checkpoint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	checkpoint.DefaultUpdatedAt = checkpointDescUpdatedAt.Default.(func() time.Time)
	// checkpoint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	checkpoint.UpdateDefaultUpdatedAt = checkpointDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	llmcallFields := schema.LLMCall{}.Fields()
	_ = llmcallFields
	// llmcallDescCreatedAt is the schema descriptor for created_at field.
	llmcallDescCreatedAt := llmcallFields[12].Descriptor()
	// llmcall.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmcall.DefaultCreatedAt = llmcallDescCreatedAt.Default.(func() time.Time)
	lorepackageFields := schema.LorePackage{}.Fields()
	_ = lorepackageFields
	// lorepackageDescPublishedAt is the schema descriptor for published_at field.
	lorepackageDescPublishedAt := lorepackageFields[4].Descriptor()
	// lorepackage.DefaultPublishedAt holds the default value on creation for the published_at field.
	lorepackage.DefaultPublishedAt = lorepackageDescPublishedAt.Default.(func() time.Time)
	researchjobFields := schema.ResearchJob{}.Fields()
	_ = researchjobFields
	// researchjobDescDepth is the schema descriptor for depth field.
	researchjobDescDepth := researchjobFields[2].Descriptor()
	// researchjob.DefaultDepth holds the default value on creation for the depth field.
	researchjob.DefaultDepth = researchjobDescDepth.Default.(int)
	// researchjobDescCancelRequested is the schema descriptor for cancel_requested field.
	researchjobDescCancelRequested := researchjobFields[6].Descriptor()
	// researchjob.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	researchjob.DefaultCancelRequested = researchjobDescCancelRequested.Default.(bool)
	// researchjobDescResumeCount is the schema descriptor for resume_count field.
	researchjobDescResumeCount := researchjobFields[12].Descriptor()
	// researchjob.DefaultResumeCount holds the default value on creation for the resume_count field.
	researchjob.DefaultResumeCount = researchjobDescResumeCount.Default.(int)
	// researchjobDescCreatedAt is the schema descriptor for created_at field.
	researchjobDescCreatedAt := researchjobFields[15].Descriptor()
	// researchjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	researchjob.DefaultCreatedAt = researchjobDescCreatedAt.Default.(func() time.Time)
	steprunFields := schema.StepRun{}.Fields()
	_ = steprunFields
	// steprunDescAttempt is the schema descriptor for attempt field.
	steprunDescAttempt := steprunFields[4].Descriptor()
	// steprun.DefaultAttempt holds the default value on creation for the attempt field.
	steprun.DefaultAttempt = steprunDescAttempt.Default.(int)
	// steprunDescStartedAt is the schema descriptor for started_at field.
	steprunDescStartedAt := steprunFields[12].Descriptor()
	// steprun.DefaultStartedAt holds the default value on creation for the started_at field.
	steprun.DefaultStartedAt = steprunDescStartedAt.Default.(func() time.Time)
	toolcallFields := schema.ToolCall{}.Fields()
	_ = toolcallFields
	// toolcallDescIsError is the schema descriptor for is_error field.
	toolcallDescIsError := toolcallFields[7].Descriptor()
	// toolcall.DefaultIsError holds the default value on creation for the is_error field.
	toolcall.DefaultIsError = toolcallDescIsError.Default.(bool)
	// toolcallDescCreatedAt is the schema descriptor for created_at field.
	toolcallDescCreatedAt := toolcallFields[9].Descriptor()
	// toolcall.DefaultCreatedAt holds the default value on creation for the created_at field.
	toolcall.DefaultCreatedAt = toolcallDescCreatedAt.Default.(func() time.Time)
}

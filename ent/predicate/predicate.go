// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// LLMCall is the predicate function for llmcall builders.
type LLMCall func(*sql.Selector)

// LorePackage is the predicate function for lorepackage builders.
type LorePackage func(*sql.Selector)

// ResearchJob is the predicate function for researchjob builders.
type ResearchJob func(*sql.Selector)

// StepRun is the predicate function for steprun builders.
type StepRun func(*sql.Selector)

// ToolCall is the predicate function for toolcall builders.
type ToolCall func(*sql.Selector)

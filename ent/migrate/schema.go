// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "current_step_index", Type: field.TypeInt, Default: 0},
		{Name: "completed_step_names", Type: field.TypeJSON},
		{Name: "accumulated_content", Type: field.TypeJSON, Nullable: true},
		{Name: "accumulated_sources", Type: field.TypeJSON, Nullable: true},
		{Name: "topic_summaries", Type: field.TypeJSON, Nullable: true},
		{Name: "partial_extractions", Type: field.TypeJSON, Nullable: true},
		{Name: "step_errors", Type: field.TypeJSON, Nullable: true},
		{Name: "tokens_used", Type: field.TypeInt64, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "paused", "completed", "failed"}, Default: "running"},
		{Name: "schema_version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString, Unique: true},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_research_jobs_checkpoint",
				Columns:    []*schema.Column{CheckpointsColumns[13]},
				RefColumns: []*schema.Column{ResearchJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[9], CheckpointsColumns[12]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "job_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_job_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// LlmCallsColumns holds the columns for the "llm_calls" table.
	LlmCallsColumns = []*schema.Column{
		{Name: "llm_call_id", Type: field.TypeString, Unique: true},
		{Name: "step_name", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeEnum, Enums: []string{"research", "extraction", "repair", "cross_reference", "discovery", "summarize_map", "summarize_reduce"}},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "prompt_tokens", Type: field.TypeInt64, Nullable: true},
		{Name: "completion_tokens", Type: field.TypeInt64, Nullable: true},
		{Name: "total_tokens", Type: field.TypeInt64, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"completed", "failed"}, Default: "completed"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// LlmCallsTable holds the schema information for the "llm_calls" table.
	LlmCallsTable = &schema.Table{
		Name:       "llm_calls",
		Columns:    LlmCallsColumns,
		PrimaryKey: []*schema.Column{LlmCallsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "llm_calls_research_jobs_llm_calls",
				Columns:    []*schema.Column{LlmCallsColumns[12]},
				RefColumns: []*schema.Column{ResearchJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "llmcall_job_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmCallsColumns[12], LlmCallsColumns[11]},
			},
		},
	}
	// LorePackagesColumns holds the columns for the "lore_packages" table.
	LorePackagesColumns = []*schema.Column{
		{Name: "package_id", Type: field.TypeString, Unique: true},
		{Name: "zone_name", Type: field.TypeString},
		{Name: "document", Type: field.TypeJSON},
		{Name: "published_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString, Unique: true},
	}
	// LorePackagesTable holds the schema information for the "lore_packages" table.
	LorePackagesTable = &schema.Table{
		Name:       "lore_packages",
		Columns:    LorePackagesColumns,
		PrimaryKey: []*schema.Column{LorePackagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lore_packages_research_jobs_package",
				Columns:    []*schema.Column{LorePackagesColumns[4]},
				RefColumns: []*schema.Column{ResearchJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lorepackage_zone_name",
				Unique:  false,
				Columns: []*schema.Column{LorePackagesColumns[1]},
			},
		},
	}
	// ResearchJobsColumns holds the columns for the "research_jobs" table.
	ResearchJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "zone_name", Type: field.TypeString},
		{Name: "depth", Type: field.TypeInt, Default: 0},
		{Name: "budget_tokens", Type: field.TypeInt64},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "paused", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "requested_by", Type: field.TypeString, Nullable: true},
		{Name: "parent_job_id", Type: field.TypeString, Nullable: true},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "resume_at", Type: field.TypeTime, Nullable: true},
		{Name: "resume_count", Type: field.TypeInt, Default: 0},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// ResearchJobsTable holds the schema information for the "research_jobs" table.
	ResearchJobsTable = &schema.Table{
		Name:       "research_jobs",
		Columns:    ResearchJobsColumns,
		PrimaryKey: []*schema.Column{ResearchJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "researchjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchJobsColumns[5], ResearchJobsColumns[15]},
			},
			{
				Name:    "researchjob_status_resume_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchJobsColumns[5], ResearchJobsColumns[11]},
			},
			{
				Name:    "researchjob_parent_job_id",
				Unique:  false,
				Columns: []*schema.Column{ResearchJobsColumns[8]},
			},
		},
	}
	// StepRunsColumns holds the columns for the "step_runs" table.
	StepRunsColumns = []*schema.Column{
		{Name: "step_run_id", Type: field.TypeString, Unique: true},
		{Name: "step_name", Type: field.TypeString},
		{Name: "step_index", Type: field.TypeInt},
		{Name: "attempt", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "skipped", "failed_transient", "failed_permanent"}, Default: "running"},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "tokens_used", Type: field.TypeInt64, Nullable: true},
		{Name: "sources_added", Type: field.TypeInt, Nullable: true},
		{Name: "content_bytes", Type: field.TypeInt, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "job_id", Type: field.TypeString},
	}
	// StepRunsTable holds the schema information for the "step_runs" table.
	StepRunsTable = &schema.Table{
		Name:       "step_runs",
		Columns:    StepRunsColumns,
		PrimaryKey: []*schema.Column{StepRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "step_runs_research_jobs_step_runs",
				Columns:    []*schema.Column{StepRunsColumns[13]},
				RefColumns: []*schema.Column{ResearchJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "steprun_job_id_step_index_attempt",
				Unique:  true,
				Columns: []*schema.Column{StepRunsColumns[13], StepRunsColumns[2], StepRunsColumns[3]},
			},
			{
				Name:    "steprun_job_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{StepRunsColumns[13], StepRunsColumns[11]},
			},
		},
	}
	// ToolCallsColumns holds the columns for the "tool_calls" table.
	ToolCallsColumns = []*schema.Column{
		{Name: "tool_call_id", Type: field.TypeString, Unique: true},
		{Name: "step_name", Type: field.TypeString},
		{Name: "tool_set", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "arguments", Type: field.TypeJSON, Nullable: true},
		{Name: "result_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_error", Type: field.TypeBool, Default: false},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// ToolCallsTable holds the schema information for the "tool_calls" table.
	ToolCallsTable = &schema.Table{
		Name:       "tool_calls",
		Columns:    ToolCallsColumns,
		PrimaryKey: []*schema.Column{ToolCallsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tool_calls_research_jobs_tool_calls",
				Columns:    []*schema.Column{ToolCallsColumns[9]},
				RefColumns: []*schema.Column{ResearchJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "toolcall_job_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ToolCallsColumns[9], ToolCallsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CheckpointsTable,
		EventsTable,
		LlmCallsTable,
		LorePackagesTable,
		ResearchJobsTable,
		StepRunsTable,
		ToolCallsTable,
	}
)

func init() {
	CheckpointsTable.ForeignKeys[0].RefTable = ResearchJobsTable
	LlmCallsTable.ForeignKeys[0].RefTable = ResearchJobsTable
	LorePackagesTable.ForeignKeys[0].RefTable = ResearchJobsTable
	StepRunsTable.ForeignKeys[0].RefTable = ResearchJobsTable
	ToolCallsTable.ForeignKeys[0].RefTable = ResearchJobsTable
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/ent/llmcall"
	"github.com/loreweave/loreweave/pkg/models"
)

// InteractionService records LLM and tool call audit rows. Callers treat
// writes as best-effort: a failed audit write is logged by the caller, never
// allowed to fail the step that produced it.
type InteractionService struct {
	client *ent.Client
}

// NewInteractionService creates a new InteractionService
func NewInteractionService(client *ent.Client) *InteractionService {
	return &InteractionService{client: client}
}

// RecordLLMCall creates an audit row for one provider call
func (s *InteractionService) RecordLLMCall(httpCtx context.Context, rec models.LLMCallRecord) (*ent.LLMCall, error) {
	if rec.JobID == "" {
		return nil, NewValidationError("job_id", "required")
	}
	if rec.Provider == "" {
		return nil, NewValidationError("provider", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.LLMCall.Create().
		SetID(uuid.New().String()).
		SetJobID(rec.JobID).
		SetStepName(rec.StepName).
		SetPurpose(llmcall.Purpose(rec.Purpose)).
		SetProvider(rec.Provider).
		SetModel(rec.Model).
		SetStatus(llmcall.StatusCompleted)

	if rec.PromptTokens != nil {
		builder.SetPromptTokens(*rec.PromptTokens)
	}
	if rec.CompletionTokens != nil {
		builder.SetCompletionTokens(*rec.CompletionTokens)
	}
	if rec.TotalTokens != nil {
		builder.SetTotalTokens(*rec.TotalTokens)
	}
	if rec.DurationMS != nil {
		builder.SetDurationMs(*rec.DurationMS)
	}
	if rec.ErrorMessage != nil {
		builder.SetStatus(llmcall.StatusFailed).
			SetErrorMessage(*rec.ErrorMessage)
	}

	call, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record llm call: %w", err)
	}
	return call, nil
}

// RecordToolCall creates an audit row for one remote tool invocation
func (s *InteractionService) RecordToolCall(httpCtx context.Context, rec models.ToolCallRecord) (*ent.ToolCall, error) {
	if rec.JobID == "" {
		return nil, NewValidationError("job_id", "required")
	}
	if rec.ToolSet == "" {
		return nil, NewValidationError("tool_set", "required")
	}
	if rec.ToolName == "" {
		return nil, NewValidationError("tool_name", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.ToolCall.Create().
		SetID(uuid.New().String()).
		SetJobID(rec.JobID).
		SetStepName(rec.StepName).
		SetToolSet(rec.ToolSet).
		SetToolName(rec.ToolName).
		SetIsError(rec.IsError)

	if rec.Arguments != nil {
		builder.SetArguments(rec.Arguments)
	}
	if rec.ResultText != nil {
		builder.SetResultText(*rec.ResultText)
	}
	if rec.DurationMS != nil {
		builder.SetDurationMs(*rec.DurationMS)
	}

	call, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record tool call: %w", err)
	}
	return call, nil
}

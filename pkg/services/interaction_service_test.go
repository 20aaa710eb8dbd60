package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/ent/llmcall"
	"github.com/loreweave/loreweave/pkg/models"
	testdb "github.com/loreweave/loreweave/test/database"
)

func TestInteractionService_RecordLLMCall(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client)
	service := NewInteractionService(client.Client)
	ctx := context.Background()

	job, err := jobs.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)

	t.Run("records successful call with usage", func(t *testing.T) {
		prompt, completion, total := int64(1200), int64(800), int64(2000)
		duration := 5400

		call, err := service.RecordLLMCall(ctx, models.LLMCallRecord{
			JobID:            job.ID,
			StepName:         "npc_research",
			Purpose:          "research",
			Provider:         "anthropic",
			Model:            "claude-sonnet-4-5",
			PromptTokens:     &prompt,
			CompletionTokens: &completion,
			TotalTokens:      &total,
			DurationMS:       &duration,
		})
		require.NoError(t, err)
		assert.Equal(t, llmcall.StatusCompleted, call.Status)
		assert.Equal(t, llmcall.PurposeResearch, call.Purpose)
		require.NotNil(t, call.TotalTokens)
		assert.Equal(t, int64(2000), *call.TotalTokens)
		assert.Nil(t, call.ErrorMessage)
	})

	t.Run("error message marks the call failed", func(t *testing.T) {
		msg := "connection reset by peer"
		call, err := service.RecordLLMCall(ctx, models.LLMCallRecord{
			JobID:        job.ID,
			StepName:     "extract_all",
			Purpose:      "extraction",
			Provider:     "anthropic",
			Model:        "claude-sonnet-4-5",
			ErrorMessage: &msg,
		})
		require.NoError(t, err)
		assert.Equal(t, llmcall.StatusFailed, call.Status)
		require.NotNil(t, call.ErrorMessage)
		assert.Equal(t, msg, *call.ErrorMessage)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.RecordLLMCall(ctx, models.LLMCallRecord{Provider: "anthropic"})
		assert.True(t, IsValidationError(err))

		_, err = service.RecordLLMCall(ctx, models.LLMCallRecord{JobID: job.ID})
		assert.True(t, IsValidationError(err))
	})
}

func TestInteractionService_RecordToolCall(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client)
	service := NewInteractionService(client.Client)
	ctx := context.Background()

	job, err := jobs.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)

	t.Run("records call with arguments and truncated result", func(t *testing.T) {
		result := "lighthouse keeper: Maro\n[truncated]"
		duration := 640

		call, err := service.RecordToolCall(ctx, models.ToolCallRecord{
			JobID:      job.ID,
			StepName:   "npc_research",
			ToolSet:    "search",
			ToolName:   "web_search",
			Arguments:  map[string]any{"query": "Emberfall Reach lighthouse keeper"},
			ResultText: &result,
			DurationMS: &duration,
		})
		require.NoError(t, err)
		assert.Equal(t, "search", call.ToolSet)
		assert.Equal(t, "web_search", call.ToolName)
		assert.Equal(t, "Emberfall Reach lighthouse keeper", call.Arguments["query"])
		assert.False(t, call.IsError)
		require.NotNil(t, call.ResultText)
		assert.Equal(t, result, *call.ResultText)
	})

	t.Run("records tool-reported errors", func(t *testing.T) {
		call, err := service.RecordToolCall(ctx, models.ToolCallRecord{
			JobID:    job.ID,
			StepName: "lore_research",
			ToolSet:  "wiki",
			ToolName: "fetch_page",
			IsError:  true,
		})
		require.NoError(t, err)
		assert.True(t, call.IsError)
		assert.Nil(t, call.ResultText)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.RecordToolCall(ctx, models.ToolCallRecord{ToolSet: "search", ToolName: "web_search"})
		assert.True(t, IsValidationError(err))

		_, err = service.RecordToolCall(ctx, models.ToolCallRecord{JobID: job.ID, ToolName: "web_search"})
		assert.True(t, IsValidationError(err))

		_, err = service.RecordToolCall(ctx, models.ToolCallRecord{JobID: job.ID, ToolSet: "search"})
		assert.True(t, IsValidationError(err))
	})
}

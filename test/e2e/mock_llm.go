package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	oa "github.com/sashabaranov/go-openai"
)

// ScriptEntry defines one scripted chat completion. Exactly one response
// mode applies: Status returns an HTTP error, otherwise Text is wrapped in
// a chat.completion body with the entry's usage numbers.
type ScriptEntry struct {
	// Text is the assistant message content.
	Text string

	// Usage reported back to the caller; zero values default to 120/40 so
	// the budget ledger always sees real consumption.
	PromptTokens     int
	CompletionTokens int

	// Status, when non-zero, makes the entry an HTTP error response with
	// an OpenAI-style error body. 429 exercises the rate-limit path.
	Status       int
	ErrorMessage string

	// Test control: OnBlock is notified when the request arrives, then the
	// handler holds the response until WaitCh is closed (or the client
	// gives up). Lets tests act while a step is provably in flight.
	WaitCh  <-chan struct{}
	OnBlock chan<- struct{}
}

// ScriptedLLM is an OpenAI-compatible chat completions server that replays
// a script. The pipeline runs a real provider against it over HTTP, so the
// full translate/classify/retry surface is exercised, not a stub interface.
// Entries are consumed strictly in request order; the zone pipeline is
// sequential per job, so order is deterministic with a single worker.
type ScriptedLLM struct {
	mu       sync.Mutex
	entries  []ScriptEntry
	index    int
	requests []oa.ChatCompletionRequest

	server *httptest.Server
}

// NewScriptedLLM starts the mock server; shutdown is registered on t.
func NewScriptedLLM(t *testing.T) *ScriptedLLM {
	t.Helper()
	s := &ScriptedLLM{}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat/completions", s.handleChatCompletion)
	s.server = httptest.NewServer(mux)
	t.Cleanup(s.server.Close)
	return s
}

// Add appends entries to the script.
func (s *ScriptedLLM) Add(entries ...ScriptEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entries...)
}

// BaseURL is the value for the provider config's base_url; the go-openai
// client appends /chat/completions to it.
func (s *ScriptedLLM) BaseURL() string {
	return s.server.URL + "/v1"
}

// CallCount returns how many completion requests have arrived.
func (s *ScriptedLLM) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Requests returns a copy of the decoded requests in arrival order, for
// prompt-content assertions.
func (s *ScriptedLLM) Requests() []oa.ChatCompletionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]oa.ChatCompletionRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *ScriptedLLM) handleChatCompletion(w http.ResponseWriter, r *http.Request) {
	var req oa.ChatCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeOpenAIError(w, http.StatusBadRequest, "invalid_request_error", "scripted llm: undecodable request: "+err.Error())
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	call := len(s.requests)
	if s.index >= len(s.entries) {
		s.mu.Unlock()
		// A 400 classifies as permanent, so a broken script fails the job
		// immediately with this message instead of pausing and retrying.
		writeOpenAIError(w, http.StatusBadRequest, "invalid_request_error",
			fmt.Sprintf("scripted llm: no scripted responses left (call %d)", call))
		return
	}
	entry := s.entries[s.index]
	s.index++
	s.mu.Unlock()

	if entry.OnBlock != nil {
		entry.OnBlock <- struct{}{}
	}
	if entry.WaitCh != nil {
		select {
		case <-entry.WaitCh:
		case <-r.Context().Done():
			return
		}
	}

	if entry.Status != 0 {
		msg := entry.ErrorMessage
		if msg == "" {
			msg = http.StatusText(entry.Status)
		}
		errType := "api_error"
		if entry.Status == http.StatusTooManyRequests {
			errType = "rate_limit_error"
		}
		writeOpenAIError(w, entry.Status, errType, msg)
		return
	}

	promptTokens := entry.PromptTokens
	if promptTokens == 0 {
		promptTokens = 120
	}
	completionTokens := entry.CompletionTokens
	if completionTokens == 0 {
		completionTokens = 40
	}
	resp := oa.ChatCompletionResponse{
		ID:     fmt.Sprintf("chatcmpl-scripted-%d", call),
		Object: "chat.completion",
		Model:  req.Model,
		Choices: []oa.ChatCompletionChoice{
			{
				Index:        0,
				Message:      oa.ChatCompletionMessage{Role: oa.ChatMessageRoleAssistant, Content: entry.Text},
				FinishReason: oa.FinishReasonStop,
			},
		},
		Usage: oa.Usage{
			PromptTokens:     promptTokens,
			CompletionTokens: completionTokens,
			TotalTokens:      promptTokens + completionTokens,
		},
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// writeOpenAIError writes the error body shape the go-openai client decodes
// into an APIError carrying the HTTP status.
func writeOpenAIError(w http.ResponseWriter, status int, errType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": message,
			"type":    errType,
		},
	})
}

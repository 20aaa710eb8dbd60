package budget

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// Counter estimates token counts for budget reservations. Counts are
// estimates: providers report authoritative usage after the call, and the
// ledger settles on those numbers.
type Counter struct {
	encoding *tiktoken.Tiktoken
	model    string
}

var (
	// Cache encodings to avoid repeated initialization
	encodingCache = make(map[string]*tiktoken.Tiktoken)
	cacheMu       sync.RWMutex
)

// NewCounter creates a counter for a specific model. Models without a
// registered tiktoken encoding (Claude, Gemini) fall back to cl100k_base,
// which is close enough for pre-flight estimates.
func NewCounter(model string) *Counter {
	cacheMu.RLock()
	cached, exists := encodingCache[model]
	cacheMu.RUnlock()

	if exists {
		return &Counter{encoding: cached, model: model}
	}

	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		encoding, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			// Offline builds without the embedded BPE data still get the
			// chars/4 estimate path.
			return &Counter{model: model}
		}
	}

	cacheMu.Lock()
	encodingCache[model] = encoding
	cacheMu.Unlock()

	return &Counter{encoding: encoding, model: model}
}

// Count returns the token count for text, estimating at four characters
// per token when no encoding is available.
func (c *Counter) Count(text string) int {
	if c == nil || c.encoding == nil {
		return len(text) / 4
	}
	return len(c.encoding.Encode(text, nil, nil))
}

// EstimateCall returns the reservation estimate for an LLM call: counted
// prompt tokens plus the expected completion size.
func (c *Counter) EstimateCall(prompt string, expectedCompletion int64) int64 {
	return int64(c.Count(prompt)) + expectedCompletion
}

// Encode returns the token ids for text, or nil when no encoding is
// available. Callers that need exact token slicing (window chunking)
// check for nil and fall back to approximate splitting.
func (c *Counter) Encode(text string) []int {
	if c == nil || c.encoding == nil {
		return nil
	}
	return c.encoding.Encode(text, nil, nil)
}

// Decode reconstructs text from token ids produced by Encode.
func (c *Counter) Decode(ids []int) string {
	if c == nil || c.encoding == nil {
		return ""
	}
	return c.encoding.Decode(ids)
}

// Model returns the model name this counter is configured for
func (c *Counter) Model() string {
	return c.model
}

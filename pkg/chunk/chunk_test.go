package chunk

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/pkg/budget"
	"github.com/loreweave/loreweave/pkg/config"
)

// estOpts pins the four-characters-per-token estimate so splits are
// deterministic regardless of whether tokenizer data is available.
func estOpts(size, overlap int) Options {
	return Options{ChunkSize: size, Overlap: overlap}
}

func estCount(s string) int { return len(s) / 4 }

func TestSplit_EmptyInput(t *testing.T) {
	assert.Nil(t, Split("", estOpts(100, 10)))
	assert.Nil(t, Split("   \n\n\t  ", estOpts(100, 10)))
}

func TestSplit_SingleChunkWhenContentFits(t *testing.T) {
	content := "# Guide\n\nShort body."

	chunks := Split(content, estOpts(1000, 100))

	require.Len(t, chunks, 1)
	assert.Equal(t, content, chunks[0])
}

func TestSplit_FirstChunkKeepsLeadingHeader(t *testing.T) {
	content := "# Ruins of Ashenvale\n\nThe zone endured five ages of upheaval.\n\n" +
		"### First Age\n\n" + strings.Repeat("ancient conflict detail ", 10) + "\n\n" +
		"### Second Age\n\n" + strings.Repeat("imperial expansion detail ", 10)

	chunks := Split(content, estOpts(80, 0))

	require.NotEmpty(t, chunks)
	assert.True(t, strings.HasPrefix(chunks[0], "# Ruins of Ashenvale"))
}

func TestSplit_HeaderPropagatesToLaterChunks(t *testing.T) {
	content := "# Zone History\n\nThe zone endured five ages of upheaval.\n\n" +
		"### First Age\n\n" + strings.Repeat("ancient conflict detail ", 10) + "\n\n" +
		"### Second Age\n\n" + strings.Repeat("imperial expansion detail ", 10) + "\n\n" +
		"### Third Age\n\n" + strings.Repeat("plague quarantine detail ", 10)

	chunks := Split(content, estOpts(80, 0))

	require.Len(t, chunks, 3)
	for i, c := range chunks {
		assert.True(t, strings.HasPrefix(c, "# Zone History"), "chunk %d missing header context", i)
		assert.LessOrEqual(t, estCount(c), 80, "chunk %d over size", i)
	}
	assert.Contains(t, chunks[0], "First Age")
	assert.Contains(t, chunks[1], "Second Age")
	assert.Contains(t, chunks[2], "Third Age")
}

func TestSplit_HorizontalRuleEndsSection(t *testing.T) {
	content := strings.Repeat("alpha section prose ", 12) + "\n\n---\n\n" +
		strings.Repeat("beta section prose ", 12)

	chunks := Split(content, estOpts(70, 0))

	require.Len(t, chunks, 2)
	assert.True(t, strings.HasSuffix(chunks[0], "---"))
	assert.Contains(t, chunks[0], "alpha")
	assert.Contains(t, chunks[1], "beta")
	assert.NotContains(t, chunks[1], "---")
}

func TestSplit_ParagraphStrategy(t *testing.T) {
	content := strings.Repeat("first passage words ", 8) + "\n\n" +
		strings.Repeat("second passage words ", 8) + "\n\n" +
		strings.Repeat("third passage words ", 8)

	opts := estOpts(90, 0)
	opts.Strategy = config.ChunkStrategyParagraph
	chunks := Split(content, opts)

	require.Len(t, chunks, 2)
	assert.Contains(t, chunks[0], "first")
	assert.Contains(t, chunks[0], "second")
	assert.Contains(t, chunks[1], "third")
	for i, c := range chunks {
		assert.LessOrEqual(t, estCount(c), 90, "chunk %d over size", i)
	}
}

func TestSplit_TokenStrategyWindowsWithOverlap(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 120; i++ {
		fmt.Fprintf(&sb, "token%03d ", i)
	}

	opts := estOpts(30, 6)
	opts.Strategy = config.ChunkStrategyToken
	chunks := Split(sb.String(), opts)

	require.Greater(t, len(chunks), 2)
	joined := strings.Join(chunks, " ")
	for i := 0; i < 120; i++ {
		assert.Contains(t, joined, fmt.Sprintf("token%03d", i))
	}
	for i, c := range chunks {
		assert.LessOrEqual(t, estCount(c), 30, "chunk %d over size", i)
	}

	// Adjacent windows share their boundary words.
	prev := strings.Fields(chunks[0])
	next := strings.Fields(chunks[1])
	require.GreaterOrEqual(t, len(prev), 3)
	require.GreaterOrEqual(t, len(next), 3)
	assert.Equal(t, prev[len(prev)-3:], next[:3])
}

func TestSplit_OverlapClampedBelowChunkSize(t *testing.T) {
	content := strings.Repeat("word ", 30)

	opts := estOpts(1, 5)
	opts.Strategy = config.ChunkStrategyToken
	chunks := Split(content, opts)

	require.Len(t, chunks, 30)
	for _, c := range chunks {
		assert.Equal(t, "word", c)
	}
}

func TestSplit_OversizedParagraphFallsToWindows(t *testing.T) {
	content := "# Archive\n\n" + strings.Repeat("relic catalog entry ", 60)

	chunks := Split(content, estOpts(60, 10))

	require.Greater(t, len(chunks), 2)
	assert.Equal(t, "# Archive", chunks[0])
	for i, c := range chunks[1:] {
		assert.True(t, strings.HasPrefix(c, "# Archive\n\n"), "window %d missing header prefix", i)
		assert.LessOrEqual(t, estCount(c), 60, "window %d over size", i)
	}
}

func TestSplit_UnbrokenRunSlicedAtRuneBoundaries(t *testing.T) {
	content := strings.Repeat("x", 500)

	chunks := Split(content, estOpts(20, 0))

	require.Len(t, chunks, 7)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 80)
	}
	assert.Equal(t, content, strings.Join(chunks, ""))
}

func TestSplit_UnbrokenMultibyteRunStaysValid(t *testing.T) {
	content := strings.Repeat("é", 300)

	chunks := Split(content, estOpts(20, 0))

	require.Greater(t, len(chunks), 1)
	for i, c := range chunks {
		assert.True(t, utf8.ValidString(c), "chunk %d broke a rune", i)
	}
	assert.Equal(t, content, strings.Join(chunks, ""))
}

func TestSplit_OrderPreserved(t *testing.T) {
	content := strings.Repeat("opening marker words ", 10) + "\n\n" +
		strings.Repeat("middle marker words ", 10) + "\n\n" +
		strings.Repeat("closing marker words ", 10)

	chunks := Split(content, estOpts(60, 0))

	require.Greater(t, len(chunks), 1)
	joined := strings.Join(chunks, "\n")
	assert.Less(t, strings.Index(joined, "opening"), strings.Index(joined, "middle"))
	assert.Less(t, strings.Index(joined, "middle"), strings.Index(joined, "closing"))
}

func TestSplit_WithTokenizerCounter(t *testing.T) {
	counter := budget.NewCounter("gpt-4")
	content := "# Ancient Fortress\n\nGuardian spirits defended bastion ramparts.\n\n" +
		"### Outer Walls\n\nWeathered granite towers overlooked frozen moorland expanse beyond measure.\n\n" +
		"### Inner Keep\n\nVaulted chambers sheltered forgotten archives beneath crumbling ceilings.\n\n" +
		"### Catacombs\n\nNarrow passages connected burial alcoves carved generations earlier."

	opts := Options{ChunkSize: 40, Overlap: 0, Counter: counter}
	require.Greater(t, counter.Count(content), opts.ChunkSize)

	chunks := Split(content, opts)

	require.Greater(t, len(chunks), 1)
	assert.True(t, strings.HasPrefix(chunks[0], "# Ancient Fortress"))
	for i, c := range chunks {
		assert.LessOrEqual(t, counter.Count(c), opts.ChunkSize, "chunk %d over size", i)
		assert.True(t, strings.HasPrefix(c, "# Ancient Fortress"), "chunk %d missing header context", i)
	}
}

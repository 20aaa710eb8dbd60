// Package chunk splits oversized text into token-bounded pieces for
// map-reduce summarization. Splitting is tiered: markdown structure first,
// paragraph boundaries for oversized sections, fixed token windows for
// pathological paragraphs. The most recent top-level header is carried
// into new chunks so each piece keeps its topical anchoring.
package chunk

import (
	"regexp"
	"strings"

	"github.com/loreweave/loreweave/pkg/budget"
	"github.com/loreweave/loreweave/pkg/config"
)

// Options controls how Split divides content.
type Options struct {
	// Strategy selects the first tier: semantic (default), paragraph,
	// or token.
	Strategy config.ChunkStrategy

	// ChunkSize is the per-chunk token ceiling.
	ChunkSize int

	// Overlap is the carryover between adjacent token windows. Clamped
	// to ChunkSize-1 so windowing always advances.
	Overlap int

	// Counter provides token counts. A nil counter estimates at four
	// characters per token and disables exact window slicing.
	Counter *budget.Counter
}

var (
	// ATX headers # through ####; deeper levels split nothing.
	headerLine = regexp.MustCompile(`^#{1,4}\s`)
	// Top-level headers propagated into new chunks.
	topHeaderLine = regexp.MustCompile(`^#{1,2}\s`)
	// Horizontal rule: three or more dashes alone on a line.
	ruleLine = regexp.MustCompile(`^-{3,}\s*$`)
	// Paragraph boundary: a run of two or more newlines.
	paragraphBreak = regexp.MustCompile(`\n{2,}`)
)

// section is a structural slice of the input plus the top-level header in
// effect where it starts.
type section struct {
	text   string
	header string
}

// Split divides content into ordered chunks of at most Options.ChunkSize
// tokens each, except single tokens nothing can subdivide. Empty and
// whitespace-only input yield no chunks.
func Split(content string, opts Options) []string {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	if opts.ChunkSize < 1 {
		opts.ChunkSize = 1
	}
	if opts.Overlap < 0 {
		opts.Overlap = 0
	}
	if opts.Overlap >= opts.ChunkSize {
		opts.Overlap = opts.ChunkSize - 1
	}

	switch opts.Strategy {
	case config.ChunkStrategyToken:
		return tokenWindows(content, "", opts)
	case config.ChunkStrategyParagraph:
		return packSections(splitParagraphs(content, ""), opts)
	default:
		return packSections(splitStructural(content), opts)
	}
}

// splitStructural breaks content at ATX headers and horizontal rules,
// tracking the prevailing top-level header for each section.
func splitStructural(content string) []section {
	lines := strings.Split(content, "\n")

	var sections []section
	var current []string
	header := ""

	flush := func() {
		text := strings.Trim(strings.Join(current, "\n"), "\n")
		if strings.TrimSpace(text) != "" {
			sections = append(sections, section{text: text, header: header})
		}
		current = current[:0]
	}

	for _, line := range lines {
		switch {
		case headerLine.MatchString(line):
			flush()
			if topHeaderLine.MatchString(line) {
				header = strings.TrimSpace(line)
			}
			current = append(current, line)
		case ruleLine.MatchString(line):
			// The rule terminates the section and stays with it.
			current = append(current, line)
			flush()
		default:
			current = append(current, line)
		}
	}
	flush()

	return sections
}

// splitParagraphs breaks text at runs of two or more newlines. Every
// paragraph inherits the given header context.
func splitParagraphs(text, header string) []section {
	var sections []section
	for _, para := range paragraphBreak.Split(text, -1) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		sections = append(sections, section{text: para, header: header})
	}
	return sections
}

// packSections accumulates consecutive sections into chunks while the
// assembled text stays within the ceiling, recursing through the paragraph
// and window tiers for sections too large to stand alone. Candidates are
// verified against the counter as whole strings, so acceptance means the
// emitted chunk measures within ChunkSize by the same counter.
func packSections(sections []section, opts Options) []string {
	var chunks []string
	current := ""

	flush := func() {
		if current != "" {
			chunks = append(chunks, current)
			current = ""
		}
	}

	for _, sec := range sections {
		if current != "" {
			candidate := current + "\n\n" + sec.text
			if opts.Counter.Count(candidate) <= opts.ChunkSize {
				current = candidate
				continue
			}
			flush()
		}

		solo := sec.text
		if needsHeader(sec) {
			solo = sec.header + "\n\n" + sec.text
		}
		if opts.Counter.Count(solo) <= opts.ChunkSize {
			current = solo
			continue
		}
		chunks = append(chunks, splitOversized(sec, opts)...)
	}
	flush()

	return chunks
}

// needsHeader reports whether a chunk opened at sec should carry the
// prevailing header: there is one, and the section doesn't begin with it.
func needsHeader(sec section) bool {
	return sec.header != "" && !strings.HasPrefix(strings.TrimSpace(sec.text), sec.header)
}

// splitOversized handles a section that cannot open a chunk on its own:
// paragraph repacking first, token windows for single paragraphs nothing
// else splits.
func splitOversized(sec section, opts Options) []string {
	paragraphs := splitParagraphs(sec.text, sec.header)
	if len(paragraphs) > 1 {
		return packSections(paragraphs, opts)
	}
	return tokenWindows(sec.text, sec.header, opts)
}

// tokenWindows splits text into fixed windows of ChunkSize tokens with
// Overlap tokens of carryover. When the prevailing header fits, each
// window is prefixed with it and the window shrinks to compensate.
func tokenWindows(text, header string, opts Options) []string {
	size := opts.ChunkSize
	prefix := ""
	if header != "" && !strings.HasPrefix(strings.TrimSpace(text), header) {
		headerCost := opts.Counter.Count(header) + 1
		if headerCost < size {
			prefix = header + "\n\n"
			size -= headerCost
		}
	}
	overlap := opts.Overlap
	if overlap >= size {
		overlap = size - 1
	}

	var windows []string
	if ids := opts.Counter.Encode(text); len(ids) > 0 {
		windows = sliceTokenIDs(ids, size, overlap, opts.Counter)
	} else {
		windows = sliceWords(text, size, overlap)
	}

	if prefix == "" {
		return windows
	}
	prefixed := make([]string, len(windows))
	for i, w := range windows {
		prefixed[i] = prefix + w
	}
	return prefixed
}

// sliceTokenIDs windows over exact token ids.
func sliceTokenIDs(ids []int, size, overlap int, counter *budget.Counter) []string {
	step := size - overlap
	var out []string
	for start := 0; start < len(ids); start += step {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		out = append(out, counter.Decode(ids[start:end]))
		if end == len(ids) {
			break
		}
	}
	return out
}

// sliceWords approximates token windows when no encoding is loaded,
// packing whitespace-delimited words against the four-characters-per-token
// estimate the counter falls back to. Window acceptance mirrors the
// counter's arithmetic on the joined string, so emitted windows measure
// within size by the same estimate.
func sliceWords(text string, size, overlap int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	est := func(chars int) int { return chars / 4 }

	var out []string
	var window []string
	windowLen := 0 // byte length of the joined window
	fresh := 0     // words added since the last flush

	flush := func() {
		if len(window) == 0 {
			return
		}
		out = append(out, strings.Join(window, " "))

		// Carry back trailing words totaling at most overlap tokens.
		var carried []string
		carriedLen := 0
		for i := len(window) - 1; i >= 0; i-- {
			addLen := len(window[i])
			if len(carried) > 0 {
				addLen++
			}
			if est(carriedLen+addLen) > overlap {
				break
			}
			carried = append([]string{window[i]}, carried...)
			carriedLen += addLen
		}
		window = carried
		windowLen = carriedLen
		fresh = 0
	}

	for _, w := range words {
		if est(len(w)) > size {
			// A run no whitespace can break: emit it in rune-boundary
			// slices of its own, dropping any carryover.
			flush()
			window = window[:0]
			windowLen = 0
			fresh = 0
			out = append(out, splitLongRun(w, size*4)...)
			continue
		}

		candLen := windowLen + len(w)
		if len(window) > 0 {
			candLen++
		}
		if len(window) > 0 && est(candLen) > size {
			flush()
			candLen = windowLen + len(w)
			if len(window) > 0 {
				candLen++
			}
			if est(candLen) > size {
				// Even the carried tail is too much company.
				window = window[:0]
				windowLen = 0
				candLen = len(w)
			}
		}
		window = append(window, w)
		windowLen = candLen
		fresh++
	}
	// A trailing window of pure carryover repeats content already emitted.
	if fresh > 0 && len(window) > 0 {
		out = append(out, strings.Join(window, " "))
	}

	return out
}

// splitLongRun cuts a string at rune boundaries into pieces of at most
// maxBytes each. A single rune wider than maxBytes stays whole.
func splitLongRun(s string, maxBytes int) []string {
	if maxBytes < 1 {
		maxBytes = 1
	}
	var pieces []string
	start := 0
	last := 0
	for i := range s {
		if i-start > maxBytes && last > start {
			pieces = append(pieces, s[start:last])
			start = last
		}
		last = i
	}
	if len(s)-start > maxBytes && last > start {
		pieces = append(pieces, s[start:last])
		start = last
	}
	return append(pieces, s[start:])
}

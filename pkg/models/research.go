package models

// ResearchResult is the parsed outcome of one research step: the raw
// findings the agent gathered, the sources it consulted, and a compact
// summary suitable for checkpoint storage.
type ResearchResult struct {
	RawContent []string    `json:"raw_content"`
	Sources    []SourceRef `json:"sources"`
	Summary    string      `json:"summary"`
}

// ResearchReport is the wire shape research agents are instructed to
// produce. Fields are tolerant: a report with only findings text is
// still usable, missing sources just means nothing to merge.
type ResearchReport struct {
	Findings string         `json:"findings"`
	Summary  string         `json:"summary"`
	Sources  []ReportSource `json:"sources"`
}

// ReportSource is one source entry inside a ResearchReport. Tier is kept
// as a raw string here because agents occasionally emit values outside
// the known set; normalization happens when converting to SourceRef.
type ReportSource struct {
	URI  string `json:"uri"`
	Tier string `json:"tier"`
}

// ToResult converts a report to a ResearchResult, normalizing source
// tiers. Unknown tiers are demoted to tertiary rather than dropped so
// the URI still participates in dedup.
func (r *ResearchReport) ToResult() ResearchResult {
	res := ResearchResult{Summary: r.Summary}
	if r.Findings != "" {
		res.RawContent = []string{r.Findings}
	}
	for _, src := range r.Sources {
		if src.URI == "" {
			continue
		}
		tier := SourceTier(src.Tier)
		if !tier.Valid() {
			tier = TierTertiary
		}
		res.Sources = append(res.Sources, SourceRef{URI: src.URI, Tier: tier})
	}
	return res
}

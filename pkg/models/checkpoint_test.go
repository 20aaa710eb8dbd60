package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendContent_EvictsOldestBeyondCap(t *testing.T) {
	cp := NewCheckpoint("job-1")

	for i := 0; i < MaxContentBlocksPerTopic; i++ {
		cp.AppendContent("npc_research", fmt.Sprintf("block-%d", i))
	}
	require.Len(t, cp.AccumulatedContent["npc_research"], MaxContentBlocksPerTopic)

	cp.AppendContent("npc_research", "block-new")

	blocks := cp.AccumulatedContent["npc_research"]
	assert.Len(t, blocks, MaxContentBlocksPerTopic)
	assert.Equal(t, "block-1", blocks[0], "oldest block should be evicted")
	assert.Equal(t, "block-new", blocks[len(blocks)-1])
}

func TestAppendContent_BatchLargerThanCap(t *testing.T) {
	cp := NewCheckpoint("job-1")

	var blocks []string
	for i := 0; i < MaxContentBlocksPerTopic+5; i++ {
		blocks = append(blocks, fmt.Sprintf("block-%d", i))
	}
	cp.AppendContent("lore_research", blocks...)

	got := cp.AccumulatedContent["lore_research"]
	require.Len(t, got, MaxContentBlocksPerTopic)
	assert.Equal(t, "block-5", got[0])
	assert.Equal(t, fmt.Sprintf("block-%d", MaxContentBlocksPerTopic+4), got[len(got)-1])
}

func TestAppendContent_TopicsIndependent(t *testing.T) {
	cp := NewCheckpoint("job-1")

	cp.AppendContent("npc_research", "npc content")
	cp.AppendContent("faction_research", "faction content")

	assert.Len(t, cp.AccumulatedContent["npc_research"], 1)
	assert.Len(t, cp.AccumulatedContent["faction_research"], 1)
}

func TestMergeSources(t *testing.T) {
	tests := []struct {
		name     string
		existing []SourceRef
		incoming []SourceRef
		want     []SourceRef
		added    int
	}{
		{
			name:     "new URIs appended in order",
			existing: []SourceRef{{URI: "wiki/eldoria", Tier: TierPrimary}},
			incoming: []SourceRef{
				{URI: "official/eldoria", Tier: TierOfficial},
				{URI: "forum/eldoria", Tier: TierTertiary},
			},
			want: []SourceRef{
				{URI: "wiki/eldoria", Tier: TierPrimary},
				{URI: "official/eldoria", Tier: TierOfficial},
				{URI: "forum/eldoria", Tier: TierTertiary},
			},
			added: 2,
		},
		{
			name:     "duplicate URI upgrades to higher tier",
			existing: []SourceRef{{URI: "wiki/eldoria", Tier: TierTertiary}},
			incoming: []SourceRef{{URI: "wiki/eldoria", Tier: TierOfficial}},
			want:     []SourceRef{{URI: "wiki/eldoria", Tier: TierOfficial}},
			added:    0,
		},
		{
			name:     "duplicate URI never downgrades",
			existing: []SourceRef{{URI: "wiki/eldoria", Tier: TierOfficial}},
			incoming: []SourceRef{{URI: "wiki/eldoria", Tier: TierTertiary}},
			want:     []SourceRef{{URI: "wiki/eldoria", Tier: TierOfficial}},
			added:    0,
		},
		{
			name:     "empty URIs skipped",
			existing: nil,
			incoming: []SourceRef{{URI: "", Tier: TierOfficial}, {URI: "wiki/a", Tier: TierPrimary}},
			want:     []SourceRef{{URI: "wiki/a", Tier: TierPrimary}},
			added:    1,
		},
		{
			name: "duplicates within the incoming batch",
			incoming: []SourceRef{
				{URI: "wiki/a", Tier: TierTertiary},
				{URI: "wiki/a", Tier: TierPrimary},
			},
			want:  []SourceRef{{URI: "wiki/a", Tier: TierPrimary}},
			added: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp := NewCheckpoint("job-1")
			if tt.existing != nil {
				cp.AccumulatedSources["zone_overview_research"] = tt.existing
			}

			added := cp.MergeSources("zone_overview_research", tt.incoming)

			assert.Equal(t, tt.added, added)
			assert.Equal(t, tt.want, cp.AccumulatedSources["zone_overview_research"])
		})
	}
}

func TestAllSources_DeduplicatesAcrossTopics(t *testing.T) {
	cp := NewCheckpoint("job-1")
	cp.MergeSources("npc_research", []SourceRef{
		{URI: "wiki/shared", Tier: TierTertiary},
		{URI: "wiki/npc-only", Tier: TierPrimary},
	})
	cp.MergeSources("faction_research", []SourceRef{
		{URI: "wiki/shared", Tier: TierOfficial},
	})

	flat := cp.AllSources()

	require.Len(t, flat, 2)
	byURI := map[string]SourceTier{}
	for _, ref := range flat {
		byURI[ref.URI] = ref.Tier
	}
	assert.Equal(t, TierOfficial, byURI["wiki/shared"], "higher tier should win across topics")
	assert.Equal(t, TierPrimary, byURI["wiki/npc-only"])
}

func TestSourceTierRank(t *testing.T) {
	assert.Greater(t, TierOfficial.Rank(), TierPrimary.Rank())
	assert.Greater(t, TierPrimary.Rank(), TierTertiary.Rank())
	assert.Greater(t, TierTertiary.Rank(), SourceTier("unknown").Rank())
	assert.False(t, SourceTier("unknown").Valid())
}

func TestRecordError_AndLastError(t *testing.T) {
	cp := NewCheckpoint("job-1")
	assert.Nil(t, cp.LastError())

	cp.RecordError("npc_research", "transient_timeout", "deadline exceeded")
	cp.RecordError("npc_research", "transient_transport", "connection reset")

	last := cp.LastError()
	require.NotNil(t, last)
	assert.Equal(t, "transient_transport", last.Kind)
	assert.Len(t, cp.StepErrors, 2)
}

func TestResearchReportToResult(t *testing.T) {
	report := ResearchReport{
		Findings: "The zone is ruled by the Ashen Court.",
		Summary:  "Ashen Court rules.",
		Sources: []ReportSource{
			{URI: "official/zone", Tier: "official"},
			{URI: "blog/zone", Tier: "community"}, // unknown tier
			{URI: "", Tier: "primary"},
		},
	}

	result := report.ToResult()

	assert.Equal(t, []string{"The zone is ruled by the Ashen Court."}, result.RawContent)
	assert.Equal(t, "Ashen Court rules.", result.Summary)
	require.Len(t, result.Sources, 2)
	assert.Equal(t, TierOfficial, result.Sources[0].Tier)
	assert.Equal(t, TierTertiary, result.Sources[1].Tier, "unknown tier demoted to tertiary")
}

func TestGroupSourcesByTier(t *testing.T) {
	grouped := GroupSourcesByTier([]SourceRef{
		{URI: "a", Tier: TierOfficial},
		{URI: "b", Tier: TierTertiary},
		{URI: "c", Tier: TierOfficial},
	})

	assert.Equal(t, []string{"a", "c"}, grouped["official"])
	assert.Equal(t, []string{"b"}, grouped["tertiary"])
	assert.NotContains(t, grouped, "primary")
}

package zone

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/loreweave/loreweave/pkg/events"
	"github.com/loreweave/loreweave/pkg/models"
	"github.com/loreweave/loreweave/pkg/pipeline"
)

// maxChildJobs bounds the fan-out of one discovery step. A zone with more
// claimed connections than this gets its closest ones only.
const maxChildJobs = 8

// discoverZones asks the model which zones connect to this one, then
// enqueues a child research job per connected zone at depth-1 with a fresh
// default budget. Zones that already have a child job from this parent are
// skipped, so a resumed step never double-enqueues.
func (s *Steps) discoverZones(ctx context.Context, sc *pipeline.StepContext) (pipeline.StepResult, error) {
	prompt, err := s.library.Render("discover_connected_zones", map[string]string{
		"zone_name":     sc.Job.ZoneName,
		"known_context": discoveryContext(sc.Checkpoint),
	})
	if err != nil {
		return pipeline.StepResult{}, pipeline.NewError(pipeline.KindPermanentInternal, err)
	}

	out, err := s.runRepairable(ctx, sc, StepDiscoverZones, "discovery", prompt, discoverySchema, map[string]string{
		"category":  "connected_zones",
		"zone_name": sc.Job.ZoneName,
		"content":   discoveryContext(sc.Checkpoint),
	})
	if err != nil {
		return pipeline.StepResult{}, err
	}

	var discovery ZoneDiscovery
	if err := json.Unmarshal(out.Structured, &discovery); err != nil {
		return pipeline.StepResult{}, pipeline.NewError(pipeline.KindPermanentSchema,
			fmt.Errorf("decoding validated discovery: %w", err))
	}

	existing, err := s.existingChildZones(ctx, sc.Job.ID)
	if err != nil {
		return pipeline.StepResult{}, err
	}

	seen := map[string]struct{}{}
	var discovered []string
	created := 0
	for _, connected := range discovery.ConnectedZones {
		name := strings.TrimSpace(connected.Name)
		if name == "" || strings.EqualFold(name, sc.Job.ZoneName) {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if len(discovered) >= maxChildJobs {
			s.logger.WarnContext(ctx, "discovery fan-out capped",
				"zone", sc.Job.ZoneName, "dropped", connected.Name)
			break
		}
		discovered = append(discovered, name)

		if _, has := existing[key]; has {
			continue
		}
		request := models.CreateJobRequest{
			ZoneName:     name,
			Depth:        sc.Job.Depth - 1,
			BudgetTokens: s.cfg.Budget.DefaultJobBudgetTokens,
			ParentJobID:  &sc.Job.ID,
		}
		if sc.Job.Model != "" {
			model := sc.Job.Model
			request.Model = &model
		}
		child, err := s.jobs.CreateJob(ctx, request)
		if err != nil {
			return pipeline.StepResult{}, fmt.Errorf("enqueueing child job for zone %q: %w", name, err)
		}
		created++

		s.publisher.PublishZoneDiscovered(ctx, sc.Job.ID, events.ZoneDiscoveredPayload{
			ZoneName:       sc.Job.ZoneName,
			DiscoveredZone: name,
			ChildJobID:     child.ID,
			ChildDepth:     child.Depth,
		})
		s.publisher.PublishJobQueued(ctx, child.ID, events.JobQueuedPayload{
			ZoneName: name,
			Depth:    child.Depth,
		})
	}

	if sc.Checkpoint.PartialExtractions == nil {
		sc.Checkpoint.PartialExtractions = map[string]any{}
	}
	zones := make([]any, 0, len(discovered))
	for _, name := range discovered {
		zones = append(zones, name)
	}
	sc.Checkpoint.PartialExtractions[discoveredZonesKey] = map[string]any{"zones": zones}

	s.logger.InfoContext(ctx, "zone discovery complete",
		"zone", sc.Job.ZoneName,
		"discovered", len(discovered),
		"children_enqueued", created)
	return pipeline.StepResult{}, nil
}

// existingChildZones returns the lowercased zone names that already have a
// child job under this parent.
func (s *Steps) existingChildZones(ctx context.Context, parentJobID string) (map[string]struct{}, error) {
	children, err := s.jobs.ListJobs(ctx, models.JobFilters{
		ParentJobID: &parentJobID,
		PageSize:    maxChildJobs * 2,
	})
	if err != nil {
		return nil, fmt.Errorf("listing child jobs: %w", err)
	}
	zones := make(map[string]struct{}, len(children.Jobs))
	for _, child := range children.Jobs {
		zones[strings.ToLower(child.ZoneName)] = struct{}{}
	}
	return zones, nil
}

// discoveryContext prefers the extracted overview and lore documents as
// evidence; before extraction has run it falls back to topic summaries.
func discoveryContext(cp *models.Checkpoint) string {
	evidence := map[string]any{}
	for _, category := range []string{CategoryOverview, CategoryLore} {
		if doc, ok := cp.PartialExtractions[category]; ok {
			evidence[category] = doc
		}
	}
	if len(evidence) > 0 {
		if blob, err := json.MarshalIndent(evidence, "", "  "); err == nil {
			return string(blob)
		}
	}
	return knownContext(cp)
}

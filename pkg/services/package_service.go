package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/ent/lorepackage"
	"github.com/loreweave/loreweave/pkg/models"
)

// PackageService persists and serves assembled lore packages.
type PackageService struct {
	client *ent.Client
}

// NewPackageService creates a new PackageService
func NewPackageService(client *ent.Client) *PackageService {
	return &PackageService{client: client}
}

// Publish stores the assembled document for a job, replacing any earlier
// version. Replacement keeps package_and_send idempotent: a step retried
// after a crash mid-publish leaves exactly one package.
func (s *PackageService) Publish(httpCtx context.Context, doc *models.PackageDocument) (*ent.LorePackage, error) {
	if doc.JobID == "" {
		return nil, NewValidationError("job_id", "required")
	}
	if doc.ZoneName == "" {
		return nil, NewValidationError("zone_name", "required")
	}

	var document map[string]interface{}
	if err := remarshal(doc, &document); err != nil {
		return nil, fmt.Errorf("failed to encode package document: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start package transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.LorePackage.Delete().
		Where(lorepackage.JobIDEQ(doc.JobID)).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to clear existing package: %w", err)
	}

	pkg, err := tx.LorePackage.Create().
		SetID(uuid.New().String()).
		SetJobID(doc.JobID).
		SetZoneName(doc.ZoneName).
		SetDocument(document).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create package: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit package: %w", err)
	}
	return pkg, nil
}

// GetByJobID retrieves the package produced by a job
func (s *PackageService) GetByJobID(ctx context.Context, jobID string) (*ent.LorePackage, error) {
	pkg, err := s.client.LorePackage.Query().
		Where(lorepackage.JobIDEQ(jobID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	return pkg, nil
}

// LatestForZone returns the most recently published package for a zone
func (s *PackageService) LatestForZone(ctx context.Context, zoneName string) (*ent.LorePackage, error) {
	pkg, err := s.client.LorePackage.Query().
		Where(lorepackage.ZoneNameEQ(zoneName)).
		Order(ent.Desc(lorepackage.FieldPublishedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest package for zone: %w", err)
	}
	return pkg, nil
}

// FindContaining returns packages whose document contains the given JSON
// fragment, newest first. Containment (@>) rides the GIN jsonb_path_ops
// index, e.g. {"categories":{"npcs":[{"name":"Maro"}]}} finds packages
// mentioning that NPC.
func (s *PackageService) FindContaining(ctx context.Context, fragment map[string]any, limit int) ([]*ent.LorePackage, error) {
	if len(fragment) == 0 {
		return nil, NewValidationError("fragment", "required")
	}
	fragmentJSON, err := json.Marshal(fragment)
	if err != nil {
		return nil, fmt.Errorf("failed to encode fragment: %w", err)
	}
	if limit <= 0 {
		limit = 20
	}

	pkgs, err := s.client.LorePackage.Query().
		Where(func(sel *sql.Selector) {
			sel.Where(sql.ExprP("document @> $1::jsonb", string(fragmentJSON)))
		}).
		Order(ent.Desc(lorepackage.FieldPublishedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search packages: %w", err)
	}
	return pkgs, nil
}

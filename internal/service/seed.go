package service

import (
	"context"
	"fmt"
	"slices"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/deppfellow/hotel-booking/internal/repository"
)

type columnStore interface {
	EnsureColumn(ctx context.Context, name string, sample any) (string, error)
	Insert(ctx context.Context, doc map[string]any) (bool, error)
}

// SeedReport summarises a seed run.
type SeedReport struct {
	Total    int `json:"total"`
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// SeedService loads hotel documents of arbitrary shape, adding columns to
// the hotels table as new keys appear.
type SeedService struct {
	columns columnStore
}

func NewSeedService(columns columnStore) *SeedService {
	return &SeedService{columns: columns}
}

// Seed inserts every document in data, a JSON array of objects. Existing ids
// are skipped.
func (s *SeedService) Seed(ctx context.Context, data []byte) (*SeedReport, error) {
	var docs []map[string]any
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("seed data must be a JSON array of objects: %w", err)
	}

	logger := zerolog.Ctx(ctx)
	report := &SeedReport{Total: len(docs)}

	for i, doc := range docs {
		id, _ := doc["id"].(string)
		if id == "" {
			return report, fmt.Errorf("hotel #%d has no string id", i)
		}

		keys := make([]string, 0, len(doc))
		for k := range doc {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		for _, k := range keys {
			if !repository.ValidColumnName(k) {
				return report, fmt.Errorf("hotel %s: invalid column name %q", id, k)
			}
			if _, err := s.columns.EnsureColumn(ctx, k, doc[k]); err != nil {
				return report, fmt.Errorf("hotel %s: %w", id, err)
			}
		}

		inserted, err := s.columns.Insert(ctx, doc)
		if err != nil {
			return report, fmt.Errorf("hotel %s: %w", id, err)
		}

		if inserted {
			report.Inserted++
			logger.Info().Str("hotel_id", id).Msg("seeded hotel")
		} else {
			report.Skipped++
			logger.Info().Str("hotel_id", id).Msg("hotel already exists, skipped")
		}
	}

	return report, nil
}

package services

import (
	"context"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/openvocab/vocab-cli/internal/core/domain"
	"github.com/openvocab/vocab-cli/internal/core/ports/driven"
	"github.com/openvocab/vocab-cli/internal/core/ports/driving"
	"github.com/openvocab/vocab-cli/internal/logger"
)

// Ensure BatchConverter implements the interface.
var _ driving.Converter = (*BatchConverter)(nil)

// BatchConverter maps a full record collection through the mapper selected
// for a vocabulary type. Records convert independently and in parallel;
// results and failures are reassembled in input order.
type BatchConverter struct {
	registry driven.MapperRegistry
	workers  int
}

// NewBatchConverter creates a batch converter running at most workers
// concurrent record mappings. A non-positive workers falls back to the
// number of CPUs.
func NewBatchConverter(registry driven.MapperRegistry, workers int) *BatchConverter {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &BatchConverter{registry: registry, workers: workers}
}

// Convert maps every record in order, isolating per-record failures.
func (c *BatchConverter) Convert(ctx context.Context, vocab domain.VocabularyType, records []domain.SourceRecord) (*driving.ConversionReport, error) {
	mapper, err := c.registry.Lookup(vocab)
	if err != nil {
		return nil, err
	}
	if records == nil {
		return nil, fmt.Errorf("%w: nil record collection", domain.ErrMalformedInput)
	}

	runID := uuid.New().String()
	logger.Debug("Conversion %s: %d %s records, %d workers", runID, len(records), vocab, c.workers)

	// Index-addressed slices keep the merge stable without sorting.
	results := make([]*driven.MapResult, len(records))
	failures := make([]error, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i := range records {
		i := i
		g.Go(func() error {
			result, err := mapper.Map(gctx, records[i])
			if err != nil {
				failures[i] = err
				return nil
			}
			results[i] = result
			return nil
		})
	}
	// Mapping errors are captured per record, never returned to the group.
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &driving.ConversionReport{
		RunID:          runID,
		VocabularyType: vocab,
		Records:        make([]domain.OutputRecord, 0, len(records)),
	}
	for i := range records {
		if failures[i] != nil {
			report.Failures = append(report.Failures, driving.RecordFailure{
				Index:    i,
				RecordID: originalID(records[i]),
				Err:      failures[i],
			})
			continue
		}
		report.Records = append(report.Records, *results[i].Record)
		for _, warning := range results[i].Warnings {
			report.Warnings = append(report.Warnings, driving.RecordWarning{Index: i, Message: warning})
		}
	}

	logger.Info("Conversion %s complete: %d converted, %d failed, %d warnings",
		runID, len(report.Records), len(report.Failures), len(report.Warnings))
	return report, nil
}

// originalID makes a best-effort attempt to name a failed record in the
// failure report without re-running identifier normalisation.
func originalID(record domain.SourceRecord) string {
	if record == nil {
		return ""
	}
	if id := record.String("id"); id != "" {
		return id
	}
	if m := record.Map("id"); m != nil {
		if value, ok := m["value"].(string); ok {
			return value
		}
	}
	return ""
}

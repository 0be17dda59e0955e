package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/edudata/tcc-insights/models"
	"github.com/edudata/tcc-insights/pkg/record"
	"github.com/edudata/tcc-insights/pkg/source"
)

// Load fetches every document the source enumerates and processes each into a
// record. workers <= 1 loads sequentially; otherwise a worker pool fetches
// concurrently with results reassembled in enumeration order, so "first seen"
// tie-breaks stay deterministic either way.
//
// An enumeration failure returns an error wrapping source.ErrEnumeration and
// no partial corpus. An empty enumeration is not an error: callers get an
// empty, renderable corpus.
func Load(ctx context.Context, logger *slog.Logger, src source.Source, workers int) (*Corpus, error) {
	names, err := src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate documents: %w", err)
	}

	if len(names) == 0 {
		logger.Warn("Source returned no documents", "source", src.ID())
		return New(nil), nil
	}

	logger.Info("Loading corpus", "source", src.ID(), "documents", len(names), "workers", workers)

	loaded := make([]*models.ProcessedRecord, len(names))
	if workers <= 1 {
		for i, name := range names {
			loaded[i] = loadOne(ctx, logger, src, name)
		}
	} else {
		loadPool(ctx, logger, src, names, loaded, workers)
	}

	corpus := collect(loaded)
	logger.Info("Corpus loaded", "records", len(corpus.Records), "skipped", corpus.Skipped, "themes", len(corpus.Frequencies))
	return corpus, nil
}

// loadOne fetches and parses a single document. Any failure is a skip: it
// logs a warning and returns nil.
func loadOne(ctx context.Context, logger *slog.Logger, src source.Source, name string) *models.ProcessedRecord {
	body, err := src.Get(ctx, name)
	if err != nil {
		logger.Warn("Failed to fetch document, skipping", "document", name, "error", err)
		return nil
	}

	var raw models.RawRecord
	if err := json.Unmarshal(body, &raw); err != nil {
		logger.Warn("Failed to parse document, skipping", "document", name, "error", err)
		return nil
	}

	rec := record.Process(name, raw)
	return &rec
}

// loadPool fans names out to workers. Each slot of out is written by exactly
// one worker, so no locking is needed and output order matches names.
func loadPool(ctx context.Context, logger *slog.Logger, src source.Source, names []string, out []*models.ProcessedRecord, workers int) {
	type job struct {
		idx  int
		name string
	}

	jobs := make(chan job, len(names))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				out[j.idx] = loadOne(ctx, logger, src, j.name)
			}
		}()
	}

	for i, name := range names {
		jobs <- job{idx: i, name: name}
	}
	close(jobs)
	wg.Wait()
}

func collect(loaded []*models.ProcessedRecord) *Corpus {
	records := make([]models.ProcessedRecord, 0, len(loaded))
	skipped := 0
	for _, rec := range loaded {
		if rec == nil {
			skipped++
			continue
		}
		records = append(records, *rec)
	}

	corpus := New(records)
	corpus.Skipped = skipped
	return corpus
}

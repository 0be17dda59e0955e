package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/edudata/tcc-insights/models"
	"github.com/edudata/tcc-insights/pkg/corpus"
)

// setupTestCache creates an in-memory SQLite cache for testing.
func setupTestCache(t *testing.T) *Cache {
	t.Helper()

	c, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to create test cache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func sampleCorpus() *corpus.Corpus {
	crp := corpus.New([]models.ProcessedRecord{
		{ID: "1.json", Title: "A", Summary: "Resumo A", Year: "2020", Themes: []string{"rede"}},
		{ID: "2.json", Title: "B", Summary: "Resumo B", Year: "2021", Themes: []string{"rede", "iot"}},
	})
	crp.Skipped = 3
	return crp
}

func TestCacheMissOnEmpty(t *testing.T) {
	c := setupTestCache(t)

	_, err := c.Get("src", time.Hour)
	if !errors.Is(err, ErrMiss) {
		t.Errorf("Get() on empty cache = %v, want ErrMiss", err)
	}
}

func TestCachePutGetRoundTrip(t *testing.T) {
	c := setupTestCache(t)

	if err := c.Put("src", sampleCorpus()); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	got, err := c.Get("src", time.Hour)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	if len(got.Records) != 2 {
		t.Errorf("Records = %d, want 2", len(got.Records))
	}
	if got.Skipped != 3 {
		t.Errorf("Skipped = %d, want 3", got.Skipped)
	}
	// Derived views are rebuilt on read
	if len(got.Display) != 3 {
		t.Errorf("Display = %d entries, want 3", len(got.Display))
	}
	if len(got.Frequencies) != 2 {
		t.Errorf("Frequencies = %d entries, want 2", len(got.Frequencies))
	}
	if got.Frequencies[0].Theme != "rede" || got.Frequencies[0].Count != 2 {
		t.Errorf("top frequency = %+v, want rede/2", got.Frequencies[0])
	}
}

func TestCacheKeyedBySource(t *testing.T) {
	c := setupTestCache(t)

	if err := c.Put("src-a", sampleCorpus()); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	if _, err := c.Get("src-b", time.Hour); !errors.Is(err, ErrMiss) {
		t.Errorf("Get() for a different source = %v, want ErrMiss", err)
	}
}

func TestCacheZeroTTLNeverHits(t *testing.T) {
	c := setupTestCache(t)

	if err := c.Put("src", sampleCorpus()); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	if _, err := c.Get("src", 0); !errors.Is(err, ErrMiss) {
		t.Errorf("Get() with zero TTL = %v, want ErrMiss", err)
	}
}

func TestCachePutReplaces(t *testing.T) {
	c := setupTestCache(t)

	if err := c.Put("src", sampleCorpus()); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	smaller := corpus.New([]models.ProcessedRecord{
		{ID: "solo.json", Title: "Solo", Themes: []string{"iot"}},
	})
	if err := c.Put("src", smaller); err != nil {
		t.Fatalf("second Put() error: %v", err)
	}

	got, err := c.Get("src", time.Hour)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if len(got.Records) != 1 || got.Records[0].ID != "solo.json" {
		t.Errorf("Records = %+v, want the replacement corpus", got.Records)
	}
}

func TestCacheInvalidate(t *testing.T) {
	c := setupTestCache(t)

	if err := c.Put("src", sampleCorpus()); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if err := c.Invalidate("src"); err != nil {
		t.Fatalf("Invalidate() error: %v", err)
	}
	if _, err := c.Get("src", time.Hour); !errors.Is(err, ErrMiss) {
		t.Errorf("Get() after Invalidate = %v, want ErrMiss", err)
	}
}

// Package corpus loads the full set of TCC documents from a source and turns
// them into the in-memory collection every aggregator consumes. Loading is
// best-effort: a document that fails to fetch or parse is skipped with a
// warning, only enumeration failure is fatal.
package corpus

import (
	"github.com/edudata/tcc-insights/models"
	"github.com/edudata/tcc-insights/pkg/stats"
)

// Corpus is the result of one load cycle. It is treated as immutable once
// produced; aggregators only read it.
type Corpus struct {
	Records     []models.ProcessedRecord `json:"records" yaml:"records"`
	Display     []models.DisplayItem     `json:"display" yaml:"display"`
	Frequencies []models.ThemeFrequency  `json:"frequencies" yaml:"frequencies"`

	// Skipped counts documents dropped by per-document failures. Invisible
	// to aggregates except via reduced totals.
	Skipped int `json:"skipped" yaml:"skipped"`
}

// New derives the display list and global theme frequencies from a set of
// processed records. The cache layer reuses it to rebuild a Corpus from
// stored records.
func New(records []models.ProcessedRecord) *Corpus {
	return &Corpus{
		Records:     records,
		Display:     Flatten(records),
		Frequencies: stats.ThemesByFrequency(records),
	}
}

// Flatten produces one DisplayItem per (record, theme) pair, in record order.
// Components browsing TCCs by a selected theme filter this list.
func Flatten(records []models.ProcessedRecord) []models.DisplayItem {
	items := make([]models.DisplayItem, 0, len(records))
	for _, rec := range records {
		for _, theme := range rec.Themes {
			items = append(items, models.DisplayItem{
				Theme:   theme,
				Title:   rec.Title,
				Summary: rec.Summary,
			})
		}
	}
	return items
}

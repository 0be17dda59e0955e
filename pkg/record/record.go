// Package record turns one raw TCC document into a processed record with
// defaulted fields and normalized, deduplicated themes.
package record

import (
	"strings"

	"github.com/edudata/tcc-insights/models"
	"github.com/edudata/tcc-insights/pkg/normalize"
)

// Placeholder values for absent or empty fields. A malformed field degrades
// to its placeholder; it never fails the record.
const (
	NoTitle   = "Sem título"
	NoSummary = "Sem resumo"
	NoAuthor  = "Não informado"
	NoYear    = "N/A"
)

// Process converts a RawRecord into exactly one ProcessedRecord. id is the
// source document identifier (filename), unique within a corpus.
func Process(id string, raw models.RawRecord) models.ProcessedRecord {
	rec := models.ProcessedRecord{
		ID:      id,
		Title:   defaultIfEmpty(raw.Title.String(), NoTitle),
		Summary: defaultIfEmpty(raw.Summary.String(), NoSummary),
		Author:  defaultIfEmpty(raw.Advisor.String(), NoAuthor),
		Year:    defaultIfEmpty(strings.TrimSpace(raw.Year.String()), NoYear),
	}

	rec.Keywords = cleanKeywords(raw.Keywords)
	rec.Themes = normalizeThemes(rec.Keywords)

	return rec
}

// cleanKeywords trims each raw keyword and drops empties, preserving order
// and original casing for display.
func cleanKeywords(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, kw := range raw {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// normalizeThemes maps keywords through the theme normalizer, dropping
// results that come out empty and deduplicating while preserving
// first-occurrence order. A record contributes each distinct key once no
// matter how many raw variants mapped to it.
func normalizeThemes(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		key := normalize.Theme(kw)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

func defaultIfEmpty(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

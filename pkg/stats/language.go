package stats

import (
	"sort"
	"sync"

	"github.com/pemistahl/lingua-go"

	"github.com/edudata/tcc-insights/models"
)

// summaryPlaceholder mirrors the record processor's default; placeholder
// summaries carry no signal and are skipped.
const summaryPlaceholder = "Sem resumo"

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// summaryDetector builds the language detector once; construction loads the
// language models and is far more expensive than detection.
func summaryDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.Portuguese, lingua.English, lingua.Spanish).
			Build()
	})
	return detector
}

// DetectSummaryLanguages counts records per detected summary language.
// Abstracts in this corpus are mostly Portuguese with occasional English or
// Spanish. Records with empty, placeholder, or undetectable summaries are
// skipped. Output is sorted descending by count, ties in first-encounter
// order.
func DetectSummaryLanguages(records []models.ProcessedRecord) []models.LanguageCount {
	det := summaryDetector()

	counts := make(map[string]int)
	var order []string

	for _, rec := range records {
		if rec.Summary == "" || rec.Summary == summaryPlaceholder {
			continue
		}
		lang, ok := det.DetectLanguageOf(rec.Summary)
		if !ok {
			continue
		}
		name := lang.String()
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	out := make([]models.LanguageCount, 0, len(order))
	for _, name := range order {
		out = append(out, models.LanguageCount{Language: name, Count: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	return out
}

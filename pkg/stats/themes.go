// Package stats holds the aggregators: pure functions over processed records
// producing chart-ready values. Nothing here suspends, errors, or touches
// shared state; empty input yields an empty result.
package stats

import (
	"sort"

	"github.com/edudata/tcc-insights/models"
)

// OtherLabel is the synthetic bucket for themes beyond the top N.
const OtherLabel = "Outros"

// ThemesByFrequency counts (record, theme) pairs per theme key across the
// corpus. The result is sorted descending by count; ties keep first-encounter
// order.
func ThemesByFrequency(records []models.ProcessedRecord) []models.ThemeFrequency {
	counts := make(map[string]int)
	var order []string

	for _, rec := range records {
		for _, theme := range rec.Themes {
			if _, seen := counts[theme]; !seen {
				order = append(order, theme)
			}
			counts[theme]++
		}
	}

	freqs := make([]models.ThemeFrequency, 0, len(order))
	for _, theme := range order {
		freqs = append(freqs, models.ThemeFrequency{Theme: theme, Count: counts[theme]})
	}

	sort.SliceStable(freqs, func(i, j int) bool {
		return freqs[i].Count > freqs[j].Count
	})

	return freqs
}

// TopThemesProportion keeps the top n frequencies verbatim and collapses the
// remainder into a single trailing "Outros" slice. No "Outros" entry is
// emitted when nothing remains, not even a zero-valued one.
func TopThemesProportion(freqs []models.ThemeFrequency, n int) []models.ProportionSlice {
	if len(freqs) == 0 {
		return []models.ProportionSlice{}
	}
	if n < 0 {
		n = 0
	}
	if n > len(freqs) {
		n = len(freqs)
	}

	slices := make([]models.ProportionSlice, 0, n+1)
	for _, tf := range freqs[:n] {
		slices = append(slices, models.ProportionSlice{Name: tf.Theme, Value: tf.Count})
	}

	other := 0
	for _, tf := range freqs[n:] {
		other += tf.Count
	}
	if other > 0 {
		slices = append(slices, models.ProportionSlice{Name: OtherLabel, Value: other})
	}

	return slices
}

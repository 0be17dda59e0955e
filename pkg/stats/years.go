package stats

import (
	"sort"
	"strconv"
	"strings"

	"github.com/edudata/tcc-insights/models"
)

// parseYear reports a year's integer value and whether it parsed.
func parseYear(year string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(year))
	return n, err == nil
}

// CountByYear groups records by the string form of their year field. Output
// is sorted ascending by integer value; years that do not parse as integers
// (the "N/A" placeholder included) are kept and pushed after all numeric
// years, ordered lexicographically among themselves.
func CountByYear(records []models.ProcessedRecord) []models.YearCount {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.Year]++
	}

	out := make([]models.YearCount, 0, len(counts))
	for year, count := range counts {
		out = append(out, models.YearCount{Year: year, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		yi, okI := parseYear(out[i].Year)
		yj, okJ := parseYear(out[j].Year)
		switch {
		case okI && okJ:
			return yi < yj
		case okI != okJ:
			return okI // numeric years first
		default:
			return out[i].Year < out[j].Year
		}
	})

	return out
}

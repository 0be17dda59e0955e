package stats

import (
	"sort"

	"github.com/edudata/tcc-insights/models"
)

// TrackThemeTrends produces one row per distinct parseable year in the
// corpus, counting per year the records whose theme set contains each tracked
// theme. Every row carries every tracked theme, zero-filled.
//
// Years that fail integer parsing are excluded entirely here, unlike
// CountByYear which buckets them; the trend chart's x axis is numeric.
func TrackThemeTrends(records []models.ProcessedRecord, themesToTrack []string) []models.TrendRow {
	if len(themesToTrack) == 0 {
		return []models.TrendRow{}
	}

	yearly := make(map[int]map[string]int)

	for _, rec := range records {
		year, ok := parseYear(rec.Year)
		if !ok {
			continue
		}

		row, seen := yearly[year]
		if !seen {
			row = make(map[string]int, len(themesToTrack))
			for _, theme := range themesToTrack {
				row[theme] = 0
			}
			yearly[year] = row
		}

		for _, theme := range themesToTrack {
			if hasTheme(rec, theme) {
				row[theme]++
			}
		}
	}

	rows := make([]models.TrendRow, 0, len(yearly))
	for year, counts := range yearly {
		rows = append(rows, models.TrendRow{Year: year, Counts: counts})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Year < rows[j].Year
	})

	return rows
}

func hasTheme(rec models.ProcessedRecord, theme string) bool {
	for _, t := range rec.Themes {
		if t == theme {
			return true
		}
	}
	return false
}

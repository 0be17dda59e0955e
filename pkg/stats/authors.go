package stats

import (
	"sort"

	"github.com/edudata/tcc-insights/models"
	"github.com/edudata/tcc-insights/pkg/normalize"
)

// maxAuthors bounds the by-advisor ranking to what the bar chart displays.
const maxAuthors = 10

// CountByAuthor groups records by normalized advisor name, so "Dr. Ana Paula
// Souza" and "ana paula souza" land in one group. The display label is the
// uppercase initials of the first original spelling encountered. Output is
// the top 10 groups sorted descending by count, ties in first-encounter
// order.
func CountByAuthor(records []models.ProcessedRecord) []models.AuthorCount {
	type group struct {
		originalName string
		count        int
	}

	groups := make(map[string]*group)
	var order []string

	for _, rec := range records {
		if rec.Author == "" {
			continue
		}
		key := normalize.AuthorName(rec.Author)
		if key == "" {
			continue
		}
		g, seen := groups[key]
		if !seen {
			g = &group{originalName: rec.Author}
			groups[key] = g
			order = append(order, key)
		}
		g.count++
	}

	out := make([]models.AuthorCount, 0, len(order))
	for _, key := range order {
		g := groups[key]
		out = append(out, models.AuthorCount{
			Name:  normalize.Initials(g.originalName),
			Total: g.count,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})

	if len(out) > maxAuthors {
		out = out[:maxAuthors]
	}
	return out
}

// Package normalize reduces free-text labels (theme keywords, advisor names)
// to canonical comparison keys. All functions are pure and total: empty or
// garbage input yields an empty result, never an error.
//
// The plural collapse and title-word stripping are deliberate heuristics, not
// linguistics. They are pinned by unit tests and should only change with a
// product decision.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents is an NFD decomposition followed by removal of combining
// marks, so "Tecnología" and "tecnologia" compare equal.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// themePunct is the fixed punctuation set removed from theme keys.
const themePunct = ".,/#!$%^&*;:{}=-_`~()"

// titleWords are academic titles stripped from author names as whole tokens.
var titleWords = map[string]struct{}{
	"professor":  {},
	"professora": {},
	"prof":       {},
	"profa":      {},
	"doutor":     {},
	"doutora":    {},
	"dr":         {},
	"dra":        {},
	"mestre":     {},
	"mestra":     {},
	"ms":         {},
	"msc":        {},
	"phd":        {},
	"esp":        {},
}

// connectives are Portuguese prepositions/articles skipped when deriving
// display initials from a name.
var connectives = map[string]struct{}{
	"da": {}, "de": {}, "do": {}, "dos": {}, "das": {},
}

func removeDiacritics(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		// transform errors only on malformed UTF-8; fall back to the input
		return s
	}
	return out
}

// Theme normalizes a raw theme keyword into its grouping key: lowercase,
// accent-stripped, trimmed, punctuation removed, and a single trailing "s"
// dropped to collapse common plurals ("redes" -> "rede"). Idempotent.
func Theme(raw string) string {
	normalized := removeDiacritics(strings.TrimSpace(strings.ToLower(raw)))

	normalized = strings.Map(func(r rune) rune {
		if strings.ContainsRune(themePunct, r) {
			return -1
		}
		return r
	}, normalized)

	// Punctuation removal can expose trailing whitespace; trim again so the
	// function stays idempotent.
	normalized = strings.TrimSpace(normalized)

	normalized = strings.TrimSuffix(normalized, "s")

	return normalized
}

// AuthorName normalizes an advisor name into its grouping key: lowercase,
// accent-stripped, restricted to [a-z0-9 ], academic titles removed as whole
// tokens, whitespace collapsed. "Prof. Dr. João Silva" and "joao silva" both
// map to "joao silva".
func AuthorName(raw string) string {
	normalized := removeDiacritics(strings.ToLower(raw))

	normalized = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, normalized)

	var kept []string
	for _, token := range strings.Fields(normalized) {
		if _, isTitle := titleWords[token]; isTitle {
			continue
		}
		kept = append(kept, token)
	}

	return strings.Join(kept, " ")
}

// Initials derives an uppercase display label from a name's original casing,
// skipping connective words: "Juarez Bento da Silva" -> "JBS". Returns "N/I"
// when nothing identifiable remains.
func Initials(fullName string) string {
	var sb strings.Builder
	for _, word := range strings.Fields(fullName) {
		if _, skip := connectives[strings.ToLower(word)]; skip {
			continue
		}
		first := []rune(word)[0]
		sb.WriteRune(unicode.ToUpper(first))
	}

	if sb.Len() == 0 {
		return "N/I"
	}
	return sb.String()
}

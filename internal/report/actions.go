// Package report implements the CLI actions that print one aggregate view of
// the corpus: counts by year, top advisors, theme frequencies, the top-N
// proportion breakdown, theme trends over time, and summary languages.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/edudata/tcc-insights/internal/common"
	"github.com/edudata/tcc-insights/internal/load"
	"github.com/edudata/tcc-insights/pkg/corpus"
	"github.com/edudata/tcc-insights/pkg/stats"
)

// View names double as the report subcommand names.
const (
	ViewYear       = "year"
	ViewAuthors    = "authors"
	ViewThemes     = "themes"
	ViewProportion = "proportion"
	ViewTrends     = "trends"
	ViewLanguages  = "languages"
)

// defaultTrendThemes is how many top themes the trends view tracks when
// neither --themes nor the config names any.
const defaultTrendThemes = 3

// Action dispatches on the subcommand name and prints the requested view.
func Action(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := load.Configure(c)
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(2)
	}

	crp, _, err := load.LoadCorpus(c, logger, cfg)
	if err != nil {
		logger.Error("failed to load corpus", "error", err)
		os.Exit(2)
	}

	topN := cfg.TopN
	if c.IsSet("top") {
		topN = c.Int("top")
	}

	var data interface{}
	switch c.Command.Name {
	case ViewYear:
		data = stats.CountByYear(crp.Records)
	case ViewAuthors:
		data = stats.CountByAuthor(crp.Records)
	case ViewThemes:
		data = crp.Frequencies
	case ViewProportion:
		data = stats.TopThemesProportion(crp.Frequencies, topN)
	case ViewTrends:
		data = stats.TrackThemeTrends(crp.Records, trackedThemes(c, cfg.TrackedThemes, crp))
	case ViewLanguages:
		data = stats.DetectSummaryLanguages(crp.Records)
	default:
		return fmt.Errorf("unknown report view: %s", c.Command.Name)
	}

	out, err := common.MarshalOutput(data, c.String("format"))
	if err != nil {
		logger.Error("failed to marshal output", "error", err)
		os.Exit(2)
	}
	fmt.Println(string(out))
	return nil
}

// trackedThemes resolves which themes the trends view follows: the --themes
// flag, then the config, then the corpus's top themes by frequency.
func trackedThemes(c *cli.Context, configured []string, crp *corpus.Corpus) []string {
	if c.IsSet("themes") {
		var themes []string
		for _, t := range strings.Split(c.String("themes"), ",") {
			t = strings.TrimSpace(t)
			if t != "" {
				themes = append(themes, t)
			}
		}
		return themes
	}

	if len(configured) > 0 {
		return configured
	}

	limit := defaultTrendThemes
	if len(crp.Frequencies) < limit {
		limit = len(crp.Frequencies)
	}
	themes := make([]string, 0, limit)
	for _, tf := range crp.Frequencies[:limit] {
		themes = append(themes, tf.Theme)
	}
	return themes
}

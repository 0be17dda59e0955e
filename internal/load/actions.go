// Package load implements the CLI action that fetches the corpus into the
// cache and reports load statistics.
package load

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/edudata/tcc-insights/internal/common"
	"github.com/edudata/tcc-insights/models"
	"github.com/edudata/tcc-insights/pkg/cache"
	"github.com/edudata/tcc-insights/pkg/corpus"
	"github.com/edudata/tcc-insights/pkg/source"
)

// Stats is the load command's printed result.
type Stats struct {
	Source   string `json:"source" yaml:"source"`
	Records  int    `json:"records" yaml:"records"`
	Skipped  int    `json:"skipped" yaml:"skipped"`
	Themes   int    `json:"themes" yaml:"themes"`
	CacheHit bool   `json:"cache_hit" yaml:"cache_hit"`
}

// Action loads the corpus (through the cache unless --no-cache) and prints
// stats. Exit code 1 signals a partial load (documents skipped), 2 a fatal
// failure.
func Action(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := Configure(c)
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(2)
	}

	crp, hit, err := LoadCorpus(c, logger, cfg)
	if err != nil {
		logger.Error("failed to load corpus", "error", err)
		os.Exit(2)
	}

	stats := Stats{
		Source:   cfg.Source,
		Records:  len(crp.Records),
		Skipped:  crp.Skipped,
		Themes:   len(crp.Frequencies),
		CacheHit: hit,
	}

	out, err := common.MarshalOutput(stats, c.String("format"))
	if err != nil {
		logger.Error("failed to marshal output", "error", err)
		os.Exit(2)
	}
	fmt.Println(string(out))

	if crp.Skipped > 0 {
		os.Exit(1)
	}
	return nil
}

// Configure resolves the runtime configuration: the YAML file when --config
// is set, defaults otherwise, with flag overrides on top.
func Configure(c *cli.Context) (*models.Config, error) {
	cfg := models.DefaultConfig()
	if c.IsSet("config") {
		loaded, err := models.LoadConfig(c.String("config"))
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.IsSet("source") {
		cfg.Source = c.String("source")
	}
	if c.IsSet("workers") {
		cfg.WorkerCount = c.Int("workers")
	}
	if cfg.Source == "" {
		return nil, fmt.Errorf("no source configured; set --source or the source field in the config file")
	}
	return cfg, nil
}

// LoadCorpus loads through the cache when enabled. The bool reports a cache
// hit. The report actions share this path so every view sees the same corpus.
func LoadCorpus(c *cli.Context, logger *slog.Logger, cfg *models.Config) (*corpus.Corpus, bool, error) {
	src := source.Detect(cfg.Source)

	useCache := !c.Bool("no-cache") && cfg.CachePath != ""
	var store *cache.Cache
	if useCache {
		var err error
		store, err = cache.Open(cfg.CachePath)
		if err != nil {
			logger.Warn("Failed to open cache, loading without it", "path", cfg.CachePath, "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	if store != nil {
		if crp, err := store.Get(src.ID(), cfg.MaxAge()); err == nil {
			logger.Info("Cache hit", "source", src.ID())
			return crp, true, nil
		}
	}

	crp, err := corpus.Load(c.Context, logger, src, cfg.WorkerCount)
	if err != nil {
		return nil, false, err
	}

	if store != nil {
		if err := store.Put(src.ID(), crp); err != nil {
			logger.Warn("Failed to store corpus in cache", "error", err)
		}
	}
	return crp, false, nil
}

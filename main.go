package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/edudata/tcc-insights/internal/load"
	"github.com/edudata/tcc-insights/internal/report"
)

func sharedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to YAML config file",
		},
		&cli.StringFlag{
			Name:  "source",
			Usage: "Corpus location: base URL of the TCC API, a directory-index URL (trailing slash), or a local directory of .json documents",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "Concurrent document fetches (1 = sequential)",
		},
		&cli.BoolFlag{
			Name:  "no-cache",
			Usage: "Bypass the corpus cache and always refetch",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: "json",
			Usage: "Output format: json or yaml",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "Only log errors",
		},
	}
}

func reportCommand(name, usage string, extra ...cli.Flag) *cli.Command {
	return &cli.Command{
		Name:   name,
		Usage:  usage,
		Flags:  append(sharedFlags(), extra...),
		Action: report.Action,
	}
}

func main() {
	topFlag := &cli.IntFlag{
		Name:  "top",
		Usage: "How many themes to keep before bucketing the rest as Outros",
	}
	themesFlag := &cli.StringFlag{
		Name:  "themes",
		Usage: "Comma-separated normalized theme keys to track (default: top 3 by frequency)",
	}

	app := &cli.App{
		Name:  "tcc-insights",
		Usage: "Aggregate statistics over a corpus of TCC documents",
		Commands: []*cli.Command{
			{
				Name:   "load",
				Usage:  "Fetch the corpus into the cache and print load stats",
				Flags:  sharedFlags(),
				Action: load.Action,
			},
			{
				Name:  "report",
				Usage: "Print one aggregate view of the corpus",
				Subcommands: []*cli.Command{
					reportCommand(report.ViewYear, "Record counts per publication year"),
					reportCommand(report.ViewAuthors, "Top 10 advisors by record count"),
					reportCommand(report.ViewThemes, "Theme frequency ranking"),
					reportCommand(report.ViewProportion, "Top themes with an Outros bucket", topFlag),
					reportCommand(report.ViewTrends, "Per-year counts for tracked themes", themesFlag),
					reportCommand(report.ViewLanguages, "Summary language breakdown"),
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

// Command oplview is a terminal browser over an oplcore rankings
// database: point it at a directory holding lifters.csv, meets.csv,
// and entries.csv, and it opens a scrollable, filterable leaderboard.
// When stdout is not a terminal it instead writes the current query's
// results as CSV, so the same binary works in a pipeline.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"

	"golang.org/x/term"

	"github.com/oplcore/oplcore/cache"
	"github.com/oplcore/oplcore/config"
	"github.com/oplcore/oplcore/csvload"
	"github.com/oplcore/oplcore/export"
	"github.com/oplcore/oplcore/query"
	"github.com/oplcore/oplcore/store"
)

var (
	logpath    = flag.String("log", "", "log to file")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	noconfig   = flag.Bool("noconfig", false, "force default configuration")
	orderFlag  = flag.String("order", "Total", "ranking metric: Squat, Bench, Deadlift, Total, Wilks, Wilks2020, Dots, Glossbrenner, IPF, Goodlift, McCulloch")
	filterFlag = flag.String("filter", "", "initial filter bar line, e.g. \"sex:M equipment:Raw year:2023\"")
	limitFlag  = flag.Int("limit", 0, "in plain-CSV mode, number of rows to print (0 uses the configured page size)")
)

func main() {
	flag.Usage = printUsage
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	if *logpath != "" {
		logFile, err := os.Create(*logpath)
		if err != nil {
			exitWithError(err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			exitWithError(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	dir := flag.Arg(0)
	if dir == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(dir); err != nil {
		exitWithError(err)
	}
}

func printUsage() {
	f := flag.CommandLine.Output()
	fmt.Fprintf(f, "Usage: %s [options...] data-dir\n", os.Args[0])
	flag.PrintDefaults()
}

func run(dir string) error {
	cfg, err := config.LoadOrCreate(*noconfig)
	if err != nil {
		return err
	}

	log.Printf("loading CSVs from %q\n", dir)
	s, err := csvload.Load(dir)
	if err != nil {
		return err
	}
	log.Printf("loaded %d lifters, %d meets, %d entries\n", s.NumLifters(), s.NumMeets(), s.NumEntries())

	c := cache.Build(s, cfg)

	order, ok := parseOrderBy(*orderFlag)
	if !ok {
		return fmt.Errorf("unrecognized -order value %q", *orderFlag)
	}

	f, err := parseFilterLine(*filterFlag)
	if err != nil {
		return fmt.Errorf("parsing -filter: %w", err)
	}

	q := query.RankingsQuery{Filter: f, OrderBy: order}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return dumpCSV(s, c, q, cfg)
	}

	return runBrowser(s, c, q, cfg)
}

// dumpCSV writes the first -limit rows of the current query's result
// (the configured page size when -limit is not positive) as CSV to
// stdout, for use in pipelines and scripts.
func dumpCSV(s *store.Store, c *cache.Cache, q query.RankingsQuery, cfg config.Config) error {
	limit := *limitFlag
	if limit <= 0 {
		limit = cfg.PageSize
	}

	ranking := query.Query(s, c, q, 0, limit-1)
	return export.WriteTo(os.Stdout, s, ranking.EntryIDs)
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}

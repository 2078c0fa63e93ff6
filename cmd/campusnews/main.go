// Command campusnews crawls a university news listing and writes the
// extracted article records to the configured outputs.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mzerrouki/campusnews/config"
	"github.com/mzerrouki/campusnews/crawl"
	"github.com/mzerrouki/campusnews/fetch"
	"github.com/mzerrouki/campusnews/sink"
	"github.com/mzerrouki/campusnews/store"
)

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration parses a duration from environment variable or returns default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvInt parses an int from environment variable or returns default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func main() {
	configPath := flag.String("config", getEnv("CAMPUSNEWS_CONFIG", ""), "Path to config file (CAMPUSNEWS_CONFIG)")
	startURL := flag.String("url", getEnv("CAMPUSNEWS_START_URL", ""), "Listing page to start crawling from (CAMPUSNEWS_START_URL)")
	maxPages := flag.Int("max-pages", getEnvInt("CAMPUSNEWS_MAX_PAGES", 1), "Maximum listing pages to traverse, 0 for all (CAMPUSNEWS_MAX_PAGES)")
	fetchTimeout := flag.Duration("timeout", getEnvDuration("CAMPUSNEWS_FETCH_TIMEOUT", 15*time.Second), "Timeout per page fetch (CAMPUSNEWS_FETCH_TIMEOUT)")
	concurrency := flag.Int("concurrency", getEnvInt("CAMPUSNEWS_CONCURRENCY", 1), "Parallel article fetches per listing page (CAMPUSNEWS_CONCURRENCY)")
	csvPath := flag.String("csv", getEnv("CAMPUSNEWS_CSV", "activities.csv"), "CSV output path, empty to disable (CAMPUSNEWS_CSV)")
	excelPath := flag.String("excel", getEnv("CAMPUSNEWS_EXCEL", ""), "Excel output path (CAMPUSNEWS_EXCEL)")
	archiveDir := flag.String("archive", getEnv("CAMPUSNEWS_ARCHIVE", ""), "JSON archive directory (CAMPUSNEWS_ARCHIVE)")
	storePath := flag.String("store", getEnv("CAMPUSNEWS_STORE", ""), "SQLite record store path (CAMPUSNEWS_STORE)")
	separator := flag.String("separator", getEnv("CAMPUSNEWS_SEPARATOR", ";"), "CSV field separator (CAMPUSNEWS_SEPARATOR)")

	flag.Parse()

	// Flags and environment variables win; the config file fills in
	// anything not set explicitly.
	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	path := *configPath
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err == nil {
			path = defaultPath
		}
	}
	fileCfg, err := config.LoadConfigFile(path)
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}
	if fileCfg != nil {
		if !explicit["url"] && fileCfg.Crawl.StartURL != "" {
			*startURL = fileCfg.Crawl.StartURL
		}
		if !explicit["max-pages"] && fileCfg.Crawl.MaxPages != 0 {
			*maxPages = fileCfg.Crawl.MaxPages
		}
		if !explicit["timeout"] && fileCfg.Crawl.FetchTimeout != "" {
			if d, err := time.ParseDuration(fileCfg.Crawl.FetchTimeout); err == nil {
				*fetchTimeout = d
			}
		}
		if !explicit["concurrency"] && fileCfg.Crawl.Concurrency != 0 {
			*concurrency = fileCfg.Crawl.Concurrency
		}
		if !explicit["csv"] && fileCfg.Output.CSV != "" {
			*csvPath = fileCfg.Output.CSV
		}
		if !explicit["excel"] && fileCfg.Output.Excel != "" {
			*excelPath = fileCfg.Output.Excel
		}
		if !explicit["archive"] && fileCfg.Output.Archive != "" {
			*archiveDir = fileCfg.Output.Archive
		}
		if !explicit["store"] && fileCfg.Output.Store != "" {
			*storePath = fileCfg.Output.Store
		}
		if !explicit["separator"] && fileCfg.Output.Separator != "" {
			*separator = fileCfg.Output.Separator
		}
	}

	if *startURL == "" {
		log.Fatal("No start URL configured (use -url or the config file)")
	}

	sep := sink.SeparatorOrDefault(*separator)

	var sinks []sink.Sink
	if *csvPath != "" {
		csvSink, err := sink.NewCSVSink(*csvPath, sep)
		if err != nil {
			log.Fatalf("Failed to open CSV output: %v", err)
		}
		sinks = append(sinks, csvSink)
	}
	if *excelPath != "" {
		excelSink, err := sink.NewExcelSink(*excelPath)
		if err != nil {
			log.Fatalf("Failed to open Excel output: %v", err)
		}
		sinks = append(sinks, excelSink)
	}
	if *archiveDir != "" {
		archive, err := sink.NewJSONDirSink(*archiveDir)
		if err != nil {
			log.Fatalf("Failed to open archive: %v", err)
		}
		sinks = append(sinks, archive)
	}
	// With a persistent store, articles collected by earlier runs are
	// skipped before fetching rather than deduplicated on insert.
	var skipLink func(string) bool
	if *storePath != "" {
		recordStore, err := store.NewRecordStore(*storePath)
		if err != nil {
			log.Fatalf("Failed to open record store: %v", err)
		}
		sinks = append(sinks, recordStore)
		skipLink = func(link string) bool {
			known, err := recordStore.HasLink(link)
			if err != nil {
				log.Printf("WARN: Failed to check record store for %s: %v", link, err)
				return false
			}
			return known
		}
	}

	output := sink.NewMultiSink(sinks...)
	fetcher := fetch.NewHTTPFetcher(*fetchTimeout)
	crawler := crawl.New(fetcher, output, crawl.Config{
		StartURL:    *startURL,
		MaxPages:    *maxPages,
		Concurrency: *concurrency,
		SkipLink:    skipLink,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("Starting crawl: %s", *startURL)
	result, runErr := crawler.Run(ctx)
	if runErr != nil {
		log.Printf("WARN: Crawl stopped early: %v", runErr)
	}

	if err := output.Close(); err != nil {
		log.Fatalf("Failed to finalize output: %v", err)
	}

	log.Printf("Crawl finished: %d page(s) processed, %d record(s) extracted", result.Pages, len(result.Records))
}

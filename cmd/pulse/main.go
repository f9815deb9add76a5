package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/pulse/internal/aggregate"
	"github.com/tinytelemetry/pulse/internal/ingest"
	"github.com/tinytelemetry/pulse/internal/logsource"
	"github.com/tinytelemetry/pulse/internal/model"
	"github.com/tinytelemetry/pulse/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// feedBatchInterval is how often buffered records are flushed to the
// dashboard, which re-runs the full aggregation per batch.
const feedBatchInterval = 250 * time.Millisecond

func main() {
	var configPath string
	var filePath string
	var jsonOut bool
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/pulse/config.yml)")
	flag.StringVar(&filePath, "file", "", "read log lines from a file instead of stdin")
	flag.BoolVar(&jsonOut, "json", false, "print the aggregation as JSON instead of starting the dashboard")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Pulse - HTTP Status Dashboard\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if filePath != "" {
		cfg.File = filePath
	}

	if err := run(cfg, jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg cliConfig, jsonOut bool) error {
	loc, err := cfg.location()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer src.Stop()

	if jsonOut {
		return dumpJSON(src, loc)
	}
	return runTUI(ctx, cfg, src, loc)
}

func openSource(ctx context.Context, cfg cliConfig) (logsource.LogSource, error) {
	conf := logsource.Config{BufferSize: cfg.LineBuffer}
	if cfg.File != "" {
		return logsource.NewFileSource(ctx, cfg.File, conf)
	}
	return logsource.NewStdinSource(ctx, conf), nil
}

// dumpJSON drains the source to EOF, runs the pipeline once, and prints
// the result. Used for scripting and non-TTY environments.
func dumpJSON(src logsource.LogSource, loc *time.Location) error {
	extractor := ingest.NewExtractor()
	var records []*model.LogRecord
	for env := range src.Lines() {
		if record := extractor.ParseEnvelope(env); record != nil {
			records = append(records, record)
		}
	}

	result := aggregate.Aggregate(records, loc)
	series := aggregate.BuildSeries(result.Buckets, result.CodeSet)

	out := jsonResult{
		CodeSet:       result.CodeSet,
		PerCodeTotals: result.PerCodeTotals,
		GrandTotal:    result.GrandTotal,
		GlobalMax:     result.GlobalMax,
	}
	for _, bucket := range result.Buckets {
		jb := jsonBucket{
			Date:    bucket.Date.Format("2006-01-02"),
			Total:   bucket.Total,
			PerCode: make(map[int]int, len(bucket.PerCode)),
		}
		for code, group := range bucket.PerCode {
			jb.PerCode[code] = len(group)
		}
		out.Buckets = append(out.Buckets, jb)
	}
	for code, points := range series {
		jsonSeries := make([]jsonPoint, 0, len(points))
		for _, point := range points {
			jsonSeries = append(jsonSeries, jsonPoint{
				Date:  point.Date.Format(time.RFC3339),
				Count: point.Count,
			})
		}
		if out.Series == nil {
			out.Series = make(map[int][]jsonPoint, len(series))
		}
		out.Series[code] = jsonSeries
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

type jsonResult struct {
	Buckets       []jsonBucket        `json:"buckets"`
	CodeSet       []int               `json:"codeSet"`
	PerCodeTotals map[int]int         `json:"perCodeTotals"`
	GrandTotal    int                 `json:"grandTotal"`
	GlobalMax     int                 `json:"globalMaxBucketTotal"`
	Series        map[int][]jsonPoint `json:"series,omitempty"`
}

type jsonBucket struct {
	Date    string      `json:"date"`
	Total   int         `json:"total"`
	PerCode map[int]int `json:"perCode"`
}

type jsonPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

func runTUI(ctx context.Context, cfg cliConfig, src logsource.LogSource, loc *time.Location) error {
	if err := tui.InitializeSkin(cfg.Skin, defaultConfigDir()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load skin %q: %v (using default)\n", cfg.Skin, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	feed := make(chan []*model.LogRecord, 16)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(feed)
		feedRecords(ctx, src, feed)
		return nil
	})

	dashboard := tui.NewDashboardModel(nil, feed, loc)
	dashboard.SetZoom(cfg.Zoom)

	p := tea.NewProgram(dashboard, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, runErr := p.Run()

	src.Stop()
	cancel()
	_ = g.Wait()

	if runErr != nil {
		if strings.Contains(runErr.Error(), "TTY") || strings.Contains(runErr.Error(), "/dev/tty") {
			return fmt.Errorf("the dashboard requires a real terminal (use --json for pipelines)")
		}
		return fmt.Errorf("error running dashboard: %w", runErr)
	}
	return nil
}

// feedRecords parses envelopes as they arrive and flushes them to the
// dashboard in batches, so a fast producer triggers one recomputation
// per interval rather than one per record.
func feedRecords(ctx context.Context, src logsource.LogSource, feed chan<- []*model.LogRecord) {
	extractor := ingest.NewExtractor()
	ticker := time.NewTicker(feedBatchInterval)
	defer ticker.Stop()

	var batch []*model.LogRecord
	flush := func() {
		if len(batch) == 0 {
			return
		}
		select {
		case feed <- batch:
			batch = nil
		case <-ctx.Done():
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case env, ok := <-src.Lines():
			if !ok {
				flush()
				return
			}
			if record := extractor.ParseEnvelope(env); record != nil {
				batch = append(batch, record)
			}
		case <-ticker.C:
			flush()
		}
	}
}

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pulse")
}

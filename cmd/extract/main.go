// Command extract runs one offline extraction against a downloaded .xlsx
// copy of the dashboard spreadsheet. It needs no credentials, which makes it
// useful for checking catalog changes against a real workbook snapshot.
//
// Usage:
//
//	go run ./cmd/extract -xlsx dashboard.xlsx -out data
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/freightdash/dashboard-etl/internal/adapter/jsonstore"
	"github.com/freightdash/dashboard-etl/internal/adapter/xlsxfile"
	"github.com/freightdash/dashboard-etl/internal/catalog"
	"github.com/freightdash/dashboard-etl/internal/observability"
	"github.com/freightdash/dashboard-etl/internal/pipeline"
)

func main() {
	xlsxPath := flag.String("xlsx", "", "path to a downloaded .xlsx copy of the spreadsheet")
	outDir := flag.String("out", "data", "output directory for the dataset JSON files")
	timeout := flag.Duration("timeout", 30*time.Second, "per-worksheet read timeout")
	flag.Parse()

	if *xlsxPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := catalog.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid section catalog: %v\n", err)
		os.Exit(1)
	}

	store, err := jsonstore.NewStore(*outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create dataset store: %v\n", err)
		os.Exit(1)
	}

	p := pipeline.New(
		xlsxfile.NewReader(*xlsxPath), store, nil,
		logger, observability.NewMetrics(),
		*timeout, 0,
	)

	if err := p.RunOnce(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "extraction failed: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jname/internal/config"
	"jname/internal/report"
	"jname/internal/scan"
)

var (
	configPath  = flag.String("config", "./jname.toml", "Path to config file")
	tsvPath     = flag.String("tsv", "", "Write a TSV report to this path (overrides config)")
	metricsAddr = flag.String("metrics-addr", "", "Serve Prometheus metrics on this address (overrides config)")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	version     = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("jname v%s\n", VERSION)
		os.Exit(0)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Load config; fall back to defaults when the default path is absent.
	cfg, err := config.Load(*configPath)
	if err != nil {
		if *configPath != "./jname.toml" {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}

	if flag.NArg() > 0 {
		cfg.ScanPaths = flag.Args()
	}
	if *tsvPath != "" {
		cfg.Output.TSV = *tsvPath
	}
	if *metricsAddr != "" {
		cfg.Metrics.Addr = *metricsAddr
	}

	if cfg.Metrics.Addr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				slog.Error("metrics server failed", "addr", cfg.Metrics.Addr, "error", err)
			}
		}()
		slog.Info("serving metrics", "addr", cfg.Metrics.Addr)
	}

	scanner, err := scan.New(cfg)
	if err != nil {
		slog.Error("failed to initialize scanner", "error", err)
		os.Exit(1)
	}

	result, err := scanner.Run(cfg.ScanPaths)
	if err != nil {
		slog.Error("scan failed", "error", err)
		os.Exit(1)
	}

	text, err := report.GenerateText(result)
	if err != nil {
		slog.Error("failed to render report", "error", err)
		os.Exit(1)
	}
	fmt.Print(text)

	if cfg.Output.TSV != "" {
		tsv, err := report.GenerateTSV(result)
		if err != nil {
			slog.Error("failed to render TSV report", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(cfg.Output.TSV, []byte(tsv), 0644); err != nil {
			slog.Error("failed to write TSV report", "path", cfg.Output.TSV, "error", err)
			os.Exit(1)
		}
		slog.Info("wrote TSV report", "path", cfg.Output.TSV)
	}
}

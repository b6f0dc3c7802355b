package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"pullrefresh/internal/collector"
	"pullrefresh/internal/config"
	"pullrefresh/internal/history"
	"pullrefresh/internal/logging"
	"pullrefresh/ui/tui"
)

func main() {
	configPath := flag.String("config", "pullrefresh.toml", "path to the TOML config file")
	logPath := flag.String("log", "", "log file (overrides [log] path, empty keeps the config value)")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logPath != "" {
		cfg.Log.Path = logPath
	}

	if err := logging.Init(cfg.Log.Path, cfg.Log.Level); err != nil {
		return err
	}
	defer logging.Close()

	collCfg := collector.DefaultCollectorConfig().WithTimeout(cfg.Collector.Timeout.Duration)
	if err := collCfg.Validate(); err != nil {
		return err
	}
	// Use the interface to allow for different collector implementations
	var provider collector.StatsProvider = collector.NewSystemCollector(collCfg)

	store, err := history.Open(cfg.History.DSN, history.WithTimeout(5*time.Second))
	if err != nil {
		return fmt.Errorf("failed to open refresh history: %w", err)
	}
	defer store.Close()

	logging.Info("starting ui", "config", configPath, "history", cfg.History.DSN)
	return tui.Start(provider, cfg, store)
}

// Command import loads the vNEST word and combination dataset from a CSV
// file into the database. It is a one-shot tool: when combinations already
// exist the import is skipped, so re-running it is safe.
//
// Flags:
//
//	--file       path to the CSV file (overrides config)
//	--delimiter  CSV field delimiter (overrides config)
//
// Exit codes: 0 = success (including skip), 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/vnest-fi/vnest-backend/internal/adapter/postgres"
	combinationrepo "github.com/vnest-fi/vnest-backend/internal/adapter/postgres/combination"
	wordrepo "github.com/vnest-fi/vnest-backend/internal/adapter/postgres/word"
	wordgrouprepo "github.com/vnest-fi/vnest-backend/internal/adapter/postgres/wordgroup"
	"github.com/vnest-fi/vnest-backend/internal/app"
	"github.com/vnest-fi/vnest-backend/internal/app/importer"
	"github.com/vnest-fi/vnest-backend/internal/config"
)

func main() {
	fileFlag := flag.String("file", "", "path to the CSV file (overrides config)")
	delimiterFlag := flag.String("delimiter", "", "CSV field delimiter (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	// CLI flags override config; the tool always runs regardless of
	// the import.enabled setting.
	importCfg := cfg.Import
	importCfg.Enabled = true
	if *fileFlag != "" {
		importCfg.Path = *fileFlag
	}
	if *delimiterFlag != "" {
		importCfg.Delimiter = *delimiterFlag
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		logger.Error("run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	words := wordrepo.New(pool)
	groups := wordgrouprepo.New(pool)
	combinations := combinationrepo.New(pool)

	imp := importer.New(logger, words, groups, combinations, importCfg)
	result, err := imp.Run(ctx)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import finished",
		slog.Int("rows", result.Rows),
		slog.Int("words_created", result.WordsCreated),
		slog.Int("groups_created", result.GroupsCreated),
		slog.Int("combinations_created", result.CombinationsCreated),
	)
}

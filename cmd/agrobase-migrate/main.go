package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agrobase-io/agrobase/constants"
	"github.com/agrobase-io/agrobase/gen/ent"
	"github.com/agrobase-io/agrobase/internal/common"
	"github.com/agrobase-io/agrobase/internal/export"
	"github.com/agrobase-io/agrobase/internal/legacy"
	repo "github.com/agrobase-io/agrobase/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem  = flag.Bool("inmem", false, "use in-memory SQLite database")
		dryRun = flag.Bool("dry-run", false, "tokenize and map only, never persist")
		dir    = flag.String("dir", "", "directory holding per-table dump files (required)")
		out    = flag.String("out", "", "output XLSX report path (optional, defaults to parent directory)")
		seeds  = flag.String("seeds", "", "farm seed JSON file (optional, defaults to built-in seed list)")
	)
	flag.Parse()

	cfg := common.LoadConfig()

	// Flags win; env vars (DUMP_DIR, REPORT_PATH, FARM_SEED_FILE) fill in
	// anything left unset.
	if *dir == "" {
		*dir = cfg.Migration.DumpDir
	}
	if *out == "" {
		*out = cfg.Migration.ReportPath
	}
	if *seeds == "" {
		*seeds = cfg.Migration.SeedFile
	}

	if *dir == "" {
		printError("Error: --dir (or DUMP_DIR) is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "migration-report.xlsx")
	}

	// Setup loggers: zap for process lifecycle, slog inside the packages
	zlog, _ := zap.NewProduction()
	defer func() { _ = zlog.Sync() }()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	runID := uuid.NewString()
	ctx := common.WithRunID(context.Background(), runID)
	logger = logger.With("run_id", runID)

	farmSeeds, err := loadFarmSeeds(*seeds)
	if err != nil {
		zlog.Fatal("failed to load farm seeds", zap.Error(err))
	}

	dumps, err := readDumps(*dir)
	if err != nil {
		zlog.Fatal("failed to read dump directory", zap.Error(err))
	}
	if len(dumps) == 0 {
		zlog.Fatal("no recognized dump files in directory", zap.String("dir", *dir))
	}

	var opts []legacy.Option
	if !*dryRun {
		client, cleanup, err := openStore(ctx, cfg, *inmem, logger)
		if err != nil {
			zlog.Fatal("failed to open canonical store", zap.Error(err))
		}
		defer cleanup()

		if err := repo.NewFarmRepository(client, logger).EnsureSeeds(ctx, farmSeeds); err != nil {
			zlog.Fatal("failed to seed farms", zap.Error(err))
		}
		catalog := repo.NewCropCatalog(client, logger)
		if err := catalog.Seed(ctx, defaultCropSeeds()); err != nil {
			zlog.Fatal("failed to seed crop catalog", zap.Error(err))
		}

		opts = append(opts,
			legacy.WithSink(repo.NewCanonicalStore(client, logger)),
			legacy.WithCatalog(catalog),
		)
	}

	startedAt := time.Now().UTC()
	runner := legacy.NewRunner(farmSeeds, logger, opts...)
	result, err := runner.Run(ctx, dumps)
	if err != nil {
		zlog.Fatal("migration run failed", zap.Error(err))
	}

	report, err := export.NewService(logger).RunReportXLSX(result, startedAt)
	if err != nil {
		zlog.Fatal("failed to render report", zap.Error(err))
	}
	if err := os.WriteFile(*out, report, 0o644); err != nil {
		zlog.Fatal("failed to write report", zap.String("path", *out), zap.Error(err))
	}

	totals := result.Summary.Totals()
	logger.Info("done",
		"entities", len(result.Entities),
		"parsed", totals.Parsed,
		"mapped", totals.Mapped,
		"report", *out,
	)
}

// openStore opens postgres from DB_URL, or a self-contained in-memory SQLite
// store when -inmem is set (or no DB_URL is configured).
func openStore(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*ent.Client, func(), error) {
	if inmem || cfg.Database.DSN == "" {
		client, err := repo.OpenSQLite(ctx, "", logger)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { _ = client.Close() }, nil
	}

	client, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { repo.Close(client, pool, logger) }, nil
}

// readDumps loads every recognized per-table dump file under dir. The file
// stem names the table (for example blocks.sql); unknown stems are ignored.
func readDumps(dir string) ([]legacy.TableDump, error) {
	var dumps []legacy.TableDump
	for _, table := range constants.KnownTables {
		path := filepath.Join(dir, string(table)+".sql")
		text, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		dumps = append(dumps, legacy.TableDump{Table: table, Text: string(text)})
	}
	return dumps, nil
}

// loadFarmSeeds reads the farm seed list, falling back to the built-in set
// the legacy deployment shipped with.
func loadFarmSeeds(path string) ([]legacy.FarmSeed, error) {
	if path == "" {
		return defaultFarmSeeds(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seeds []legacy.FarmSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return seeds, nil
}

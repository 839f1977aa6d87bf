package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/tradecrm/backend/internal/application/exportapp"
	"github.com/tradecrm/backend/internal/application/importapp"
	"github.com/tradecrm/backend/internal/infrastructure/config"
	"github.com/tradecrm/backend/internal/infrastructure/logger"
	"github.com/tradecrm/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate schema", zap.Error(err))
	}

	ctx := context.Background()

	switch command {
	case "import":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: ordersheet import <workbook.xlsx>")
			os.Exit(1)
		}
		runImport(ctx, log, db, args[1])
	case "export":
		out := ""
		if len(args) >= 2 {
			out = args[1]
		}
		runExport(ctx, log, db, cfg, out)
	default:
		printUsage()
		os.Exit(1)
	}
}

func runImport(ctx context.Context, log *zap.Logger, db *persistence.Database, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal("Failed to read workbook", zap.String("path", path), zap.Error(err))
	}

	svc := importapp.NewOrderImportService(persistence.NewOrderStore(db.DB), nil, log)
	result, err := svc.Import(ctx, data)
	if err != nil {
		log.Fatal("Import failed", zap.Error(err))
	}

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal("Failed to encode result", zap.Error(err))
	}
	fmt.Println(string(payload))
}

func runExport(ctx context.Context, log *zap.Logger, db *persistence.Database, cfg *config.Config, out string) {
	svc := exportapp.NewOrderExportService(
		persistence.NewGormOrderRepository(db.DB),
		nil,
		cfg.Export.SheetName,
		cfg.Export.FilePrefix,
	)

	data, err := svc.Export(ctx)
	if err != nil {
		log.Fatal("Export failed", zap.Error(err))
	}

	if out == "" {
		out = svc.FileName()
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		log.Fatal("Failed to write workbook", zap.String("path", out), zap.Error(err))
	}

	log.Info("Export written", zap.String("path", out), zap.Int("bytes", len(data)))
}

func printUsage() {
	fmt.Println("Usage: ordersheet [flags] <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  import <workbook.xlsx>   Import orders from a workbook")
	fmt.Println("  export [out.xlsx]        Export all orders to a workbook")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ecomrecon/internal/config"
	"ecomrecon/internal/gateway"
	"ecomrecon/internal/logging"
	"ecomrecon/internal/metrics"
	"ecomrecon/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config.toml", "Path to the TOML configuration file")
	unitsFlag := flag.String("units", "", "Comma-separated reconciliation type names to run (default: all)")
	parallel := flag.Bool("parallel", true, "Run the selected units concurrently")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.Setup(cfg.Logging.Service, cfg.Logging.Env)

	db, err := openDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	if err := gateway.AutoMigrate(db); err != nil {
		log.Fatalf("auto migrate error: %v", err)
	}

	// --- Dependency wiring ---
	store := gateway.NewStore(db)

	tolerance, err := cfg.Reconciliation.DefaultTolerance()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	tolerances, err := cfg.Reconciliation.UnitTolerances()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	pattern, err := cfg.Reconciliation.Pattern()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	engine, err := usecase.NewEngine(store, usecase.Options{
		DefaultTolerance:   tolerance,
		Tolerances:         tolerances,
		OrderNumberPattern: pattern,
		Logger:             logger,
		Metrics:            metrics.Reconciliation(),
	})
	if err != nil {
		log.Fatalf("engine init error: %v", err)
	}

	units, err := selectUnits(engine, *unitsFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if addr := cfg.Metrics.ListenAddress; addr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())
			if err := http.ListenAndServe(addr, mux); err != nil {
				logger.Error("metrics listener stopped", "error", err)
			}
		}()
	}

	failures := engine.RunMany(context.Background(), units, *parallel)
	if len(failures) > 0 {
		for name, err := range failures {
			logger.Error("unit failed", "reconciliation_type", name, "error", err)
		}
		os.Exit(1)
	}
}

func openDatabase(cfg config.Database) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
	switch cfg.Driver {
	case config.DriverPostgres:
		return gorm.Open(postgres.Open(cfg.DSN), gormCfg)
	default:
		return gorm.Open(sqlite.Open(cfg.DSN), gormCfg)
	}
}

func selectUnits(engine *usecase.Engine, names string) ([]*usecase.Unit, error) {
	if strings.TrimSpace(names) == "" {
		return engine.Units(), nil
	}
	var units []*usecase.Unit
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		unit, ok := engine.Unit(name)
		if !ok {
			return nil, fmt.Errorf("unknown reconciliation type %q", name)
		}
		units = append(units, unit)
	}
	if len(units) == 0 {
		return nil, fmt.Errorf("no reconciliation types selected")
	}
	return units, nil
}

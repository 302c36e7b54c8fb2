// Package main - Entry point for the cable sizing server
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"cablesizer/api"
	"cablesizer/db"
	"cablesizer/internal/config"
	"cablesizer/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", ":8080", "Server address")
	cfgPath := flag.String("config", "", "Path to config file")
	dsn := flag.String("dsn", "", "Postgres DSN for calculation history (overrides config)")
	flag.Parse()

	cfg := config.Get()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			logging.Fatal("failed to load config", zap.Error(err))
		}
		config.Set(loaded)
		cfg = loaded
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Fatal("failed to initialize logging", zap.Error(err))
	}
	defer logging.Sync()

	// Calculation history is optional; the engine works without it.
	var store db.CalculationStore
	connString := *dsn
	if connString == "" {
		connString = cfg.Database.DSN
	}
	if connString != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pg, err := db.OpenPostgres(ctx, connString, cfg.Database.MaxOpenConns)
		cancel()
		if err != nil {
			logging.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pg.Close()
		store = pg
		logging.Info("calculation history store connected")
	}

	apiServer := api.NewServerWithStore(version, store)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))

	fmt.Printf("Cable Sizing Server v%s\n", version)
	fmt.Printf("   API: http://localhost%s/api\n", *addr)
	fmt.Println()

	logging.Info("server listening", zap.String("addr", *addr))
	if err := http.ListenAndServe(*addr, mux); err != nil {
		logging.Fatal("server failed", zap.Error(err))
	}
}

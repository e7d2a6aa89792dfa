package main

import (
	"context"
	"database/sql"
	"delivery-analytics-service/internal/adapters/csvfile"
	"delivery-analytics-service/internal/adapters/repositories"
	"delivery-analytics-service/internal/api"
	"delivery-analytics-service/internal/config"
	"delivery-analytics-service/internal/platform/db"
	"delivery-analytics-service/internal/ports"
	"delivery-analytics-service/internal/services"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
)

// main is the application composition root.
// It wires the dataset source (CSV file or SQL mirror) behind a port and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	source, closeSource, err := openSource(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeSource()

	loader := services.NewDatasetLoader(source)

	// Load once at startup. A missing dataset is not fatal: data endpoints
	// report it to the user while /health keeps answering.
	if _, err := loader.Load(context.Background()); err != nil {
		log.Printf("dataset unavailable source=%s err=%v", cfg.DatasetSource, err)
	}

	router := api.NewRouter(services.NewDashboard(loader))

	log.Printf("Server listening addr=:%s source=%s", cfg.Port, cfg.DatasetSource)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown failed: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	log.Println("Server stopped")
}

// openSource returns the configured dataset source and a cleanup func.
func openSource(cfg *config.Config) (ports.DeliverySource, func(), error) {
	if cfg.DatasetSource == config.SourceCSV {
		return csvfile.NewSource(cfg.DatasetPath), func() {}, nil
	}

	dialect, err := db.ParseDialect(cfg.DBDriver)
	if err != nil {
		return nil, nil, fmt.Errorf("open source: %w", err)
	}
	if dialect == db.Postgres && strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, nil, errors.New("open source: DATABASE_URL is required for postgres")
	}

	conn, err := db.Open(dialect, cfg.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("open source: %w", err)
	}

	return repositories.NewSQLDeliveryRepository(conn, dialect), func() { closeDB(conn) }, nil
}

func closeDB(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		log.Printf("close database: %v", err)
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/i-satyam007/IPM/internal/config"
	"github.com/i-satyam007/IPM/internal/server"
)

var (
	port          = flag.Int("port", 0, "server port (overrides config.toml)")
	devMode       = flag.Bool("dev", false, "development mode")
	spreadsheetID = flag.String("spreadsheet", "", "workbook spreadsheet id (overrides config.toml)")
)

func main() {
	flag.Parse()

	// .env is optional; used for local runs.
	_ = godotenv.Load()

	fmt.Println("==========================================")
	fmt.Println("  IPM Tracker - schedule & attendance")
	fmt.Println("==========================================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *spreadsheetID != "" {
		cfg.Google.SpreadsheetID = *spreadsheetID
	}

	if cfg.Google.SpreadsheetID == "" {
		log.Printf("warning: no spreadsheet id configured; schedule endpoints will fail")
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("failed to create data directory: %v", err)
	} else {
		fmt.Printf("data directory: %s\n", dataDir)
	}

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		fmt.Printf("listening on port %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()

	fmt.Println("\npress Ctrl+C to stop...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nshutting down...")
	if err := srv.Close(); err != nil {
		log.Printf("close failed: %v", err)
	}
}

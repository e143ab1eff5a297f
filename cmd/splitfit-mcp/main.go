package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/splitfit/internal/config"
	splitmcp "github.com/meltforce/splitfit/internal/mcp"
	"github.com/meltforce/splitfit/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	dsnFlag := flag.String("dsn", "", "Postgres DSN (overrides config)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("splitfit-mcp", Version)
		return
	}

	// Logs go to stderr: stdout carries the MCP protocol stream.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	dsn := *dsnFlag
	if dsn == "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		dsn = cfg.Database.DSN()
	}

	ctx := context.Background()
	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	srv := splitmcp.New(db, Version, log)

	log.Info("MCP server starting on stdio", "version", Version)
	if err := server.ServeStdio(srv); err != nil {
		log.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/meltforce/splitfit/internal/backup"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "SplitFit server URL (e.g. https://splitfit.tail1234.ts.net)")
	exportPath := flag.String("path", "", "path to a directory of exported workout JSON files")
	apiKey := flag.String("api-key", "", "API key for the SplitFit server (or SPLITFIT_API_KEY)")
	login := flag.String("login", "", "user login to import workouts under (default: server default)")
	dryRun := flag.Bool("dry-run", false, "parse and validate but don't send to server")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("splitfit-import", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *exportPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: splitfit-import -server <URL> -path <export dir> [-api-key KEY] [-login NAME] [-dry-run]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *serverURL == "" && !*dryRun {
		fmt.Fprintf(os.Stderr, "Error: -server is required (or use -dry-run)\n")
		os.Exit(1)
	}

	if *apiKey == "" {
		*apiKey = os.Getenv("SPLITFIT_API_KEY")
	}

	// Strip trailing slash from server URL
	*serverURL = strings.TrimRight(*serverURL, "/")

	info, err := os.Stat(*exportPath)
	if err != nil || !info.IsDir() {
		log.Error("export directory not found", "path", *exportPath)
		os.Exit(1)
	}
	log.Info("using export directory", "path", *exportPath)

	// Open state database
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Error("failed to get home directory", "error", err)
		os.Exit(1)
	}
	stateDir := filepath.Join(homeDir, ".splitfit-import")

	state, err := backup.OpenStateDB(stateDir)
	if err != nil {
		log.Error("failed to open state database", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	// Create client (nil-safe in dry-run mode)
	var client *backup.Client
	if !*dryRun {
		client = backup.NewClient(*serverURL, *apiKey, *login)
	}

	if *dryRun {
		log.Info("DRY RUN mode — files will be parsed and validated but not sent")
	}

	// Run import
	importer := backup.New(client, state, *exportPath, *dryRun, log)
	stats, err := importer.Run()
	if err != nil {
		log.Error("import failed", "error", err)
		printStats(stats)
		os.Exit(1)
	}

	printStats(stats)
	log.Info("import complete")
}

func printStats(stats backup.Stats) {
	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("  Files scanned:    %d\n", stats.FilesScanned)
	fmt.Printf("  Files imported:   %d\n", stats.FilesImported)
	fmt.Printf("  Files skipped:    %d (already imported)\n", stats.FilesSkipped)
	fmt.Printf("  Files errored:    %d\n", stats.Errors)
	fmt.Println()
	fmt.Printf("  Workouts:         %d\n", stats.Workouts)
	fmt.Println()
}

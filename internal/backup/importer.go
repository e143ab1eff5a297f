package backup

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Stats summarizes one import run.
type Stats struct {
	FilesScanned  int
	FilesSkipped  int
	FilesImported int
	Workouts      int
	Errors        int
}

// Importer walks a directory of export files and sends their workouts to the
// server, tracking completed files in the state database.
type Importer struct {
	client *Client
	state  *StateDB
	dir    string
	dryRun bool
	log    *slog.Logger
}

// New creates an Importer. client may be nil in dry-run mode.
func New(client *Client, state *StateDB, dir string, dryRun bool, log *slog.Logger) *Importer {
	return &Importer{client: client, state: state, dir: dir, dryRun: dryRun, log: log}
}

// Run processes every .json file under the directory, in name order. A file
// is marked imported only after every workout in it was accepted, so a
// partial failure retries the whole file on the next run.
func (im *Importer) Run() (Stats, error) {
	var stats Stats

	var files []string
	err := filepath.WalkDir(im.dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("scanning %s: %w", im.dir, err)
	}
	sort.Strings(files)

	for _, path := range files {
		stats.FilesScanned++
		rel, err := filepath.Rel(im.dir, path)
		if err != nil {
			rel = path
		}

		info, err := os.Stat(path)
		if err != nil {
			im.log.Error("stat failed", "file", rel, "error", err)
			stats.Errors++
			continue
		}
		hash, err := HashFile(path)
		if err != nil {
			im.log.Error("hashing failed", "file", rel, "error", err)
			stats.Errors++
			continue
		}

		done, err := im.state.IsImported(rel, info.Size(), hash)
		if err != nil {
			return stats, fmt.Errorf("checking state for %s: %w", rel, err)
		}
		if done {
			stats.FilesSkipped++
			continue
		}

		f, err := os.Open(path)
		if err != nil {
			im.log.Error("open failed", "file", rel, "error", err)
			stats.Errors++
			continue
		}
		workouts, err := ParseExport(f)
		f.Close()
		if err != nil {
			im.log.Error("parse failed", "file", rel, "error", err)
			stats.Errors++
			continue
		}

		if im.dryRun {
			im.log.Info("would import", "file", rel, "workouts", len(workouts))
			stats.Workouts += len(workouts)
			continue
		}

		sent := 0
		for _, w := range workouts {
			if err := im.client.SendWorkout(w); err != nil {
				im.log.Error("send failed", "file", rel, "error", err)
				break
			}
			sent++
		}
		if sent < len(workouts) {
			stats.Errors++
			continue
		}

		if err := im.state.MarkImported(rel, info.Size(), hash, sent); err != nil {
			return stats, fmt.Errorf("marking %s imported: %w", rel, err)
		}
		im.log.Info("imported", "file", rel, "workouts", sent)
		stats.FilesImported++
		stats.Workouts += sent
	}

	return stats, nil
}

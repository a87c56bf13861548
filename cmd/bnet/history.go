package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SIZMW/bayesian-network/storage"
)

func history(args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	dbPath := fs.String("db", "", "SQLite database of recorded runs (required)")
	model := fs.String("model", "", "Filter by model name")
	limit := fs.Int("limit", 20, "Maximum number of runs to show")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: bnet history [options]

List previously recorded estimation runs, newest first.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *dbPath == "" {
		fs.Usage()
		return fmt.Errorf("--db required")
	}

	store, err := storage.Open(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(context.Background(), *model, *limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	fmt.Printf("%-36s  %-12s  %-10s  %8s  %11s  %s\n",
		"RUN", "MODEL", "ALGORITHM", "DRAWS", "PROBABILITY", "CREATED")
	for _, run := range runs {
		fmt.Printf("%-36s  %-12s  %-10s  %8d  %11.6f  %s\n",
			run.ID, run.Model, run.Algorithm, run.Draws, run.Probability,
			run.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "estimate":
		if err := estimate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := validate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "history":
		if err := history(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("bnet version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`bnet - Bayesian network approximate inference tool

Usage:
  bnet <command> [options]

Commands:
  estimate   Estimate a marginal probability by Monte Carlo sampling
  validate   Validate network structure and print a summary
  history    Show previously recorded estimation runs
  help       Show this help message
  version    Show version information

Examples:
  # Estimate with both algorithms
  bnet estimate network.txt --query query.txt --samples 10000

  # Record runs to a history database
  bnet estimate network.txt --query query.txt --db runs.db

  # Inspect network structure
  bnet validate network.txt

  # List recorded runs
  bnet history --db runs.db

For command-specific help, run:
  bnet <command> --help`)
}

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/SIZMW/bayesian-network/parser"
)

func validate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	verbose := fs.Bool("verbose", false, "Print per-node parent lists and CPTs")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: bnet validate <network.txt> [options]

Parse a network definition and print a structural summary.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("network file required")
	}

	net, err := parser.LoadNetwork(fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Printf("Network: %d nodes, %d leaves\n", len(net.Nodes), len(net.Leaves()))

	var leaves []string
	for _, leaf := range net.Leaves() {
		leaves = append(leaves, leaf.Name)
	}
	fmt.Printf("Leaves: %s\n", strings.Join(leaves, ", "))

	if *verbose {
		for _, node := range net.Nodes {
			fmt.Printf("  %s: parents=%v cpt=%v\n", node.Name, node.ParentNames, node.CPT)
		}
	}

	fmt.Println("OK")
	return nil
}

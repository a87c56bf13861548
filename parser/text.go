// Package parser handles the textual definition format for Bayesian networks.
// Each line defines one node:
//
//	name: [parent1 parent2 ...] [p0 p1 ... p_{2^k-1}]
//
// where name and parents are word characters, and the CPT holds 2^k
// fixed-point probabilities for k distinct parents. CPT index i encodes the
// parent truth assignment with parent j (in listed order) contributing bit j.
package parser

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/SIZMW/bayesian-network/bayes"
)

var (
	parentPattern = regexp.MustCompile(`\w+`)
	cptPattern    = regexp.MustCompile(`\d\.\d+`)
	linePattern   = regexp.MustCompile(`^(?P<name>\w+): \[(?P<parents>(?:\w+ ?)*)\] \[(?P<cpt>(?:\d\.\d+ ?)+)\]$`)
)

// FromText parses a Bayesian network from its textual definition.
// Blank lines are skipped; any other line that does not match the grammar
// aborts parsing with bayes.ErrMalformedInput. Parent references are
// resolved after all lines are read, so definition order relative to
// children does not matter.
func FromText(data []byte) (*bayes.Network, error) {
	var nodes []*bayes.Node
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := linePattern.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", bayes.ErrMalformedInput, i+1, line)
		}
		name := m[linePattern.SubexpIndex("name")]
		parents := parentPattern.FindAllString(m[linePattern.SubexpIndex("parents")], -1)

		var cpt []float64
		for _, entry := range cptPattern.FindAllString(m[linePattern.SubexpIndex("cpt")], -1) {
			p, err := strconv.ParseFloat(entry, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: bad probability %q", bayes.ErrMalformedInput, i+1, entry)
			}
			cpt = append(cpt, p)
		}

		nodes = append(nodes, bayes.NewNode(name, parents, cpt))
	}

	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: no node definitions", bayes.ErrMalformedInput)
	}

	return bayes.NewNetwork(nodes)
}

// LoadNetwork reads and parses a network definition file.
func LoadNetwork(path string) (*bayes.Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read network: %w", err)
	}
	net, err := FromText(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return net, nil
}

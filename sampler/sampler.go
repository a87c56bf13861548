// Package sampler implements approximate inference over Bayesian networks
// by Monte Carlo sampling. It provides the recursive, event-memoized
// sampling primitive shared by rejection sampling and likelihood weighting.
package sampler

import (
	"math/rand"

	"github.com/SIZMW/bayesian-network/bayes"
)

// Event is one Monte Carlo draw: a partial or full assignment of truth
// values to nodes. Events are owned by the sampling call that creates them
// and discarded after each draw.
type Event map[*bayes.Node]bool

// Clone returns an independent copy of the event.
func (e Event) Clone() Event {
	out := make(Event, len(e))
	for node, value := range e {
		out[node] = value
	}
	return out
}

// cptIndex builds the CPT index for a node from its parents' values in the
// event: bit j is set when Parents[j] sampled true. All parents must
// already have values in the event.
func cptIndex(node *bayes.Node, ev Event) int {
	index := 0
	for j, parent := range node.Parents {
		if ev[parent] {
			index |= 1 << j
		}
	}
	return index
}

// SampleValue samples a truth value for node into the event, recursively
// sampling all ancestors first. A node that already has a value in the
// event is returned as-is, so each variable is drawn at most once per
// event even when multiple descendants request the same ancestor.
//
// The parent graph must be acyclic; a cyclic network recurses without bound.
func SampleValue(node *bayes.Node, ev Event, rng *rand.Rand) bool {
	if value, ok := ev[node]; ok {
		return value
	}
	for _, parent := range node.Parents {
		SampleValue(parent, ev, rng)
	}
	value := rng.Float64() < node.Prob(cptIndex(node, ev))
	ev[node] = value
	return value
}

// PriorSample draws a full event from the network's prior distribution by
// sampling every leaf node. Memoized recursion to parents means this
// single pass assigns a value to every node reachable from a leaf.
func PriorSample(net *bayes.Network, rng *rand.Rand) Event {
	ev := make(Event, len(net.Nodes))
	for _, leaf := range net.Leaves() {
		SampleValue(leaf, ev, rng)
	}
	return ev
}

// evidenceProb returns P(node = declared evidence value | its parents'
// sampled values), read from the node's CPT. Used for likelihood weights,
// where evidence nodes are pinned rather than sampled. Parents not yet
// settled by the query traversal are sampled on demand.
func evidenceProb(node *bayes.Node, ev Event, rng *rand.Rand) float64 {
	for _, parent := range node.Parents {
		SampleValue(parent, ev, rng)
	}
	p := node.Prob(cptIndex(node, ev))
	if node.EvidenceValue() {
		return p
	}
	return 1 - p
}

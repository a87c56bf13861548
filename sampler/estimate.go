package sampler

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/SIZMW/bayesian-network/bayes"
)

// Algorithm names reported in estimates.
const (
	AlgorithmRejection  = "rejection"
	AlgorithmLikelihood = "likelihood"
)

// Options contains estimator configuration parameters.
type Options struct {
	Draws   int   // Number of independent sample draws
	Seed    int64 // Seed for the run's random source
	Workers int   // Parallel workers; values below 2 run sequentially
}

// DefaultOptions returns balanced settings suitable for most networks.
func DefaultOptions() *Options {
	return &Options{
		Draws:   10000,
		Seed:    1,
		Workers: 1,
	}
}

// FastOptions returns options optimized for speed over accuracy.
// Use these for interactive exploration of a network.
func FastOptions() *Options {
	return &Options{
		Draws:   1000,
		Seed:    1,
		Workers: 1,
	}
}

// AccurateOptions returns options for low-variance estimates.
// Use these when publishing results or comparing estimators.
func AccurateOptions() *Options {
	return &Options{
		Draws:   1000000,
		Seed:    1,
		Workers: 4,
	}
}

// Estimate is the result of one estimation run: the query node's
// true-state probability given the asserted evidence.
type Estimate struct {
	Algorithm   string
	Probability float64
	Draws       int
	Seed        int64
	Consistent  int     // Evidence-consistent draws (rejection sampling only)
	TotalWeight float64 // Accumulated likelihood weight (likelihood weighting only)
}

// tally holds one worker's running sums. trueSum and acceptSum are counts
// for rejection sampling and weights for likelihood weighting; addition is
// commutative, so combining per-worker tallies in any order is exact up to
// floating-point rounding.
type tally struct {
	trueSum   float64
	acceptSum float64
	accepted  int
}

// RejectionSampling estimates P(query = true | evidence) by drawing full
// prior samples and discarding draws inconsistent with the evidence.
// It fails with bayes.ErrNoConsistentSamples when every draw was rejected;
// the caller may retry with a larger draw count.
func RejectionSampling(net *bayes.Network, opts *Options) (*Estimate, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	query, err := net.QueryNode()
	if err != nil {
		return nil, err
	}
	evidence := net.EvidenceNodes()

	sum := runDraws(opts, func(rng *rand.Rand, t *tally) {
		ev := PriorSample(net, rng)
		for _, node := range evidence {
			if ev[node] != node.EvidenceValue() {
				return
			}
		}
		t.accepted++
		t.acceptSum++
		if ev[query] {
			t.trueSum++
		}
	})

	if sum.accepted == 0 {
		return nil, fmt.Errorf("%w after %d draws", bayes.ErrNoConsistentSamples, opts.Draws)
	}
	return &Estimate{
		Algorithm:   AlgorithmRejection,
		Probability: sum.trueSum / sum.acceptSum,
		Draws:       opts.Draws,
		Seed:        opts.Seed,
		Consistent:  sum.accepted,
	}, nil
}

// LikelihoodWeighting estimates P(query = true | evidence) by pinning
// evidence nodes to their asserted values and weighting each draw by how
// probable that evidence is given the sampled ancestors. It fails with
// bayes.ErrZeroTotalWeight when every draw carried zero weight.
func LikelihoodWeighting(net *bayes.Network, opts *Options) (*Estimate, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	query, err := net.QueryNode()
	if err != nil {
		return nil, err
	}
	evidence := net.EvidenceNodes()

	// Evidence is never resampled: every draw starts from this base event.
	base := make(Event, len(evidence))
	for _, node := range evidence {
		base[node] = node.EvidenceValue()
	}

	sum := runDraws(opts, func(rng *rand.Rand, t *tally) {
		ev := base.Clone()
		SampleValue(query, ev, rng)
		weight := 1.0
		for _, node := range evidence {
			weight *= evidenceProb(node, ev, rng)
		}
		if weight > 0 {
			t.accepted++
		}
		t.acceptSum += weight
		if ev[query] {
			t.trueSum += weight
		}
	})

	if sum.acceptSum == 0 {
		return nil, fmt.Errorf("%w after %d draws", bayes.ErrZeroTotalWeight, opts.Draws)
	}
	return &Estimate{
		Algorithm:   AlgorithmLikelihood,
		Probability: sum.trueSum / sum.acceptSum,
		Draws:       opts.Draws,
		Seed:        opts.Seed,
		TotalWeight: sum.acceptSum,
	}, nil
}

// runDraws executes draw once per requested sample and returns the combined
// tally. With Workers > 1 the draws are partitioned across goroutines, each
// with its own random source seeded from the run seed, so no locking is
// needed during sampling.
func runDraws(opts *Options, draw func(rng *rand.Rand, t *tally)) tally {
	if opts.Workers < 2 {
		rng := rand.New(rand.NewSource(opts.Seed))
		var t tally
		for i := 0; i < opts.Draws; i++ {
			draw(rng, &t)
		}
		return t
	}

	workers := opts.Workers
	if workers > opts.Draws {
		workers = opts.Draws
	}
	tallies := make([]tally, workers)
	var wg sync.WaitGroup

	per := opts.Draws / workers
	extra := opts.Draws % workers
	for w := 0; w < workers; w++ {
		draws := per
		if w < extra {
			draws++
		}
		wg.Add(1)
		go func(w, draws int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(opts.Seed + int64(w)))
			for i := 0; i < draws; i++ {
				draw(rng, &tallies[w])
			}
		}(w, draws)
	}
	wg.Wait()

	var sum tally
	for _, t := range tallies {
		sum.trueSum += t.trueSum
		sum.acceptSum += t.acceptSum
		sum.accepted += t.accepted
	}
	return sum
}

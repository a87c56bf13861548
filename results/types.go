// Package results defines the structured output format for estimation runs.
package results

import (
	"time"

	"github.com/google/uuid"

	"github.com/SIZMW/bayesian-network/bayes"
	"github.com/SIZMW/bayesian-network/sampler"
)

const SchemaVersion = "1.0.0"

// Results contains complete estimation output for one run.
type Results struct {
	Version    string     `json:"version"`
	Metadata   Metadata   `json:"metadata"`
	Model      Model      `json:"model"`
	Estimation Estimation `json:"estimation"`
}

// Metadata contains run execution information.
type Metadata struct {
	RunID       string    `json:"runId"`
	Timestamp   time.Time `json:"timestamp"`
	Algorithm   string    `json:"algorithm"`
	Status      string    `json:"status"` // success, error
	Error       string    `json:"error,omitempty"`
	ComputeTime float64   `json:"computeTime"` // seconds
}

// Model summarizes the network structure and the query it was asked.
type Model struct {
	Name     string          `json:"name,omitempty"`
	Nodes    []string        `json:"nodes"`
	Leaves   []string        `json:"leaves"`
	Query    string          `json:"query,omitempty"`
	Evidence map[string]bool `json:"evidence,omitempty"`
}

// Estimation contains the parameters used and the resulting probability.
type Estimation struct {
	Draws       int     `json:"draws"`
	Seed        int64   `json:"seed"`
	Workers     int     `json:"workers,omitempty"`
	Probability float64 `json:"probability"`
	Consistent  int     `json:"consistent,omitempty"`
	TotalWeight float64 `json:"totalWeight,omitempty"`
}

// Build assembles a Results record from an estimation run. est may be nil
// when the run failed; runErr may be nil when it succeeded.
func Build(name string, net *bayes.Network, opts *sampler.Options, algorithm string,
	est *sampler.Estimate, runErr error, elapsed time.Duration) *Results {

	r := &Results{
		Version: SchemaVersion,
		Metadata: Metadata{
			RunID:       uuid.New().String(),
			Timestamp:   time.Now().UTC(),
			Algorithm:   algorithm,
			Status:      "success",
			ComputeTime: elapsed.Seconds(),
		},
		Model: Model{Name: name},
		Estimation: Estimation{
			Draws:   opts.Draws,
			Seed:    opts.Seed,
			Workers: opts.Workers,
		},
	}

	for _, node := range net.Nodes {
		r.Model.Nodes = append(r.Model.Nodes, node.Name)
	}
	for _, leaf := range net.Leaves() {
		r.Model.Leaves = append(r.Model.Leaves, leaf.Name)
	}
	if query, err := net.QueryNode(); err == nil {
		r.Model.Query = query.Name
	}
	if evidence := net.EvidenceNodes(); len(evidence) > 0 {
		r.Model.Evidence = make(map[string]bool, len(evidence))
		for _, node := range evidence {
			r.Model.Evidence[node.Name] = node.EvidenceValue()
		}
	}

	if runErr != nil {
		r.Metadata.Status = "error"
		r.Metadata.Error = runErr.Error()
		return r
	}
	r.Estimation.Probability = est.Probability
	r.Estimation.Consistent = est.Consistent
	r.Estimation.TotalWeight = est.TotalWeight
	return r
}

package results

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/SIZMW/bayesian-network/bayes"
	"github.com/SIZMW/bayesian-network/sampler"
)

func testNetwork(t *testing.T) *bayes.Network {
	t.Helper()
	a := bayes.NewNode("a", nil, []float64{0.5})
	b := bayes.NewNode("b", []string{"a"}, []float64{0.1, 0.9})
	net, err := bayes.NewNetwork([]*bayes.Node{a, b})
	if err != nil {
		t.Fatalf("NewNetwork failed: %v", err)
	}
	a.Role = bayes.RoleEvidenceTrue
	b.Role = bayes.RoleQuery
	return net
}

func TestBuild(t *testing.T) {
	net := testNetwork(t)
	opts := &sampler.Options{Draws: 1000, Seed: 42, Workers: 2}
	est := &sampler.Estimate{
		Algorithm:   sampler.AlgorithmRejection,
		Probability: 0.9,
		Draws:       1000,
		Consistent:  512,
	}

	r := Build("twonode", net, opts, sampler.AlgorithmRejection, est, nil, 150*time.Millisecond)

	if r.Version != SchemaVersion {
		t.Errorf("Expected version %s, got %s", SchemaVersion, r.Version)
	}
	if r.Metadata.RunID == "" {
		t.Error("Expected a run ID")
	}
	if r.Metadata.Status != "success" {
		t.Errorf("Expected status success, got %s", r.Metadata.Status)
	}
	if r.Metadata.ComputeTime != 0.15 {
		t.Errorf("Expected computeTime 0.15, got %f", r.Metadata.ComputeTime)
	}
	if r.Model.Query != "b" {
		t.Errorf("Expected query b, got %s", r.Model.Query)
	}
	if v, ok := r.Model.Evidence["a"]; !ok || !v {
		t.Errorf("Expected evidence a=true, got %v", r.Model.Evidence)
	}
	if len(r.Model.Nodes) != 2 || len(r.Model.Leaves) != 1 {
		t.Errorf("Model summary wrong: nodes=%v leaves=%v", r.Model.Nodes, r.Model.Leaves)
	}
	if r.Estimation.Probability != 0.9 || r.Estimation.Consistent != 512 {
		t.Error("Estimate values not carried over")
	}

	// Two runs get distinct IDs.
	r2 := Build("twonode", net, opts, sampler.AlgorithmRejection, est, nil, 0)
	if r2.Metadata.RunID == r.Metadata.RunID {
		t.Error("Expected unique run IDs")
	}
}

func TestBuildError(t *testing.T) {
	net := testNetwork(t)
	opts := sampler.DefaultOptions()

	r := Build("twonode", net, opts, sampler.AlgorithmRejection, nil, bayes.ErrNoConsistentSamples, time.Second)

	if r.Metadata.Status != "error" {
		t.Errorf("Expected status error, got %s", r.Metadata.Status)
	}
	if r.Metadata.Error == "" {
		t.Error("Expected error message")
	}
	if r.Estimation.Probability != 0 {
		t.Error("Failed run should not carry a probability")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	net := testNetwork(t)
	est := &sampler.Estimate{Algorithm: sampler.AlgorithmLikelihood, Probability: 0.5, TotalWeight: 500}
	r := Build("twonode", net, sampler.DefaultOptions(), sampler.AlgorithmLikelihood, est, nil, time.Second)

	s, err := ToJSON(r)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	parsed, err := FromJSON(s)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if parsed.Metadata.RunID != r.Metadata.RunID {
		t.Error("Run ID lost in round trip")
	}
	if parsed.Estimation.Probability != 0.5 || parsed.Estimation.TotalWeight != 500 {
		t.Error("Estimation lost in round trip")
	}

	path := filepath.Join(t.TempDir(), "results.json")
	if err := WriteJSON(r, path); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	fromFile, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if fromFile.Model.Query != "b" {
		t.Error("Model lost in file round trip")
	}
}

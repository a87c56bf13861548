package bayes

import "errors"

// Error types for the bayes package.
var (
	// ErrMalformedInput is returned when a network definition cannot be parsed,
	// including a CPT whose length is not 2^(parent count).
	ErrMalformedInput = errors.New("malformed network definition")

	// ErrUnknownParent is returned when a node references a parent that was never defined.
	ErrUnknownParent = errors.New("unknown parent node")

	// ErrNoQueryNode is returned when estimation starts with no node marked as the query.
	ErrNoQueryNode = errors.New("no query node assigned")

	// ErrMultipleQueryNodes is returned when more than one node is marked as the query.
	ErrMultipleQueryNodes = errors.New("multiple query nodes assigned")

	// ErrRoleCountMismatch is returned when a role assignment has a different
	// number of entries than the network has nodes.
	ErrRoleCountMismatch = errors.New("role count does not match node count")

	// ErrNoConsistentSamples is returned by rejection sampling when no draw
	// agreed with the evidence. Retry with a larger draw count.
	ErrNoConsistentSamples = errors.New("no evidence-consistent samples")

	// ErrZeroTotalWeight is returned by likelihood weighting when every draw
	// carried zero weight. Retry with a larger draw count.
	ErrZeroTotalWeight = errors.New("zero total likelihood weight")
)

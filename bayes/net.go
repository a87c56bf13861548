// Package bayes implements core Bayesian network data structures.
// A network is a directed acyclic graph of binary random variables (Nodes),
// each owning a conditional probability table (CPT) indexed by a bitmask
// of its parents' truth values.
package bayes

import "fmt"

// Role marks how a node participates in a query: as the queried variable,
// as asserted evidence, or as neither.
type Role int

const (
	// RoleUnassigned is the default role. Unassigned nodes are neither
	// observed nor queried but are still sampled as ancestors.
	RoleUnassigned Role = iota
	// RoleQuery marks the single node whose true-state probability is estimated.
	RoleQuery
	// RoleEvidenceTrue asserts the node was observed true.
	RoleEvidenceTrue
	// RoleEvidenceFalse asserts the node was observed false.
	RoleEvidenceFalse
)

// String returns the role-assignment symbol for this role.
func (r Role) String() string {
	switch r {
	case RoleQuery:
		return "?"
	case RoleEvidenceTrue:
		return "t"
	case RoleEvidenceFalse:
		return "f"
	default:
		return "-"
	}
}

// ParseRole maps a role-assignment symbol to a Role.
// Recognized symbols: "?" or "q" (query), "t" (evidence true),
// "f" (evidence false), "-" (unassigned).
func ParseRole(symbol string) (Role, error) {
	switch symbol {
	case "?", "q":
		return RoleQuery, nil
	case "t":
		return RoleEvidenceTrue, nil
	case "f":
		return RoleEvidenceFalse, nil
	case "-":
		return RoleUnassigned, nil
	default:
		return RoleUnassigned, fmt.Errorf("%w: unrecognized role symbol %q", ErrMalformedInput, symbol)
	}
}

// Node represents a single binary random variable in a Bayesian network.
type Node struct {
	Name        string
	Role        Role
	ParentNames []string // Parent identifiers in order of first appearance, deduplicated
	Parents     []*Node  // Resolved by NewNetwork, same order as ParentNames
	CPT         []float64
}

// NewNode creates an unresolved node. parentNames is deduplicated while
// preserving order of first appearance; that order fixes CPT bit positions.
func NewNode(name string, parentNames []string, cpt []float64) *Node {
	seen := make(map[string]bool, len(parentNames))
	parents := make([]string, 0, len(parentNames))
	for _, p := range parentNames {
		if !seen[p] {
			seen[p] = true
			parents = append(parents, p)
		}
	}
	return &Node{
		Name:        name,
		Role:        RoleUnassigned,
		ParentNames: parents,
		CPT:         cpt,
	}
}

// Observed reports whether this node carries an evidence role.
func (n *Node) Observed() bool {
	return n.Role == RoleEvidenceTrue || n.Role == RoleEvidenceFalse
}

// EvidenceValue returns the asserted truth value for an evidence node.
// Only meaningful when Observed() is true.
func (n *Node) EvidenceValue() bool {
	return n.Role == RoleEvidenceTrue
}

// Prob returns P(node = true) for the parent assignment encoded by index,
// where bit j of index corresponds to Parents[j] being true.
func (n *Node) Prob(index int) float64 {
	return n.CPT[index]
}

// Network represents a complete Bayesian network. It is immutable after
// construction except for node roles, which are set once before estimation.
type Network struct {
	Nodes  []*Node // Definition order; positional role assignment follows this order
	leaves []*Node
}

// NewNetwork builds a network from parsed nodes using two-phase construction:
// CPT sizes are validated, parent names are resolved into node references,
// and leaf nodes (nodes that are not a parent of any other node) are computed.
// No partial network is returned on error.
func NewNetwork(nodes []*Node) (*Network, error) {
	byName := make(map[string]*Node, len(nodes))
	for _, node := range nodes {
		if len(node.CPT) != 1<<len(node.ParentNames) {
			return nil, fmt.Errorf("%w: node %q has %d parents but CPT of length %d",
				ErrMalformedInput, node.Name, len(node.ParentNames), len(node.CPT))
		}
		byName[node.Name] = node
	}

	for _, node := range nodes {
		node.Parents = make([]*Node, len(node.ParentNames))
		for i, name := range node.ParentNames {
			parent, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("%w: node %q references %q", ErrUnknownParent, node.Name, name)
			}
			node.Parents[i] = parent
		}
	}

	net := &Network{Nodes: nodes}
	net.leaves = computeLeaves(nodes)
	return net, nil
}

// computeLeaves returns the nodes that no other node lists as a parent.
func computeLeaves(nodes []*Node) []*Node {
	hasChild := make(map[*Node]bool, len(nodes))
	for _, node := range nodes {
		for _, parent := range node.Parents {
			hasChild[parent] = true
		}
	}
	var leaves []*Node
	for _, node := range nodes {
		if !hasChild[node] {
			leaves = append(leaves, node)
		}
	}
	return leaves
}

// Node returns the node with the given name, or nil if it does not exist.
func (n *Network) Node(name string) *Node {
	for _, node := range n.Nodes {
		if node.Name == name {
			return node
		}
	}
	return nil
}

// Leaves returns the childless nodes, in definition order. These are the
// traversal roots for prior sampling: sampling a leaf recursively samples
// its entire ancestor chain.
func (n *Network) Leaves() []*Node {
	return n.leaves
}

// AssignRole sets the role of the node at the given positional index
// (0-based, definition order).
func (n *Network) AssignRole(index int, role Role) error {
	if index < 0 || index >= len(n.Nodes) {
		return fmt.Errorf("%w: index %d with %d nodes", ErrRoleCountMismatch, index, len(n.Nodes))
	}
	n.Nodes[index].Role = role
	return nil
}

// ApplyRoles assigns one role per node, positionally aligned with
// definition order. The role count must match the node count.
func (n *Network) ApplyRoles(roles []Role) error {
	if len(roles) != len(n.Nodes) {
		return fmt.Errorf("%w: %d roles for %d nodes", ErrRoleCountMismatch, len(roles), len(n.Nodes))
	}
	for i, role := range roles {
		n.Nodes[i].Role = role
	}
	return nil
}

// QueryNode returns the unique node with RoleQuery. It fails if no node
// or more than one node carries the query role.
func (n *Network) QueryNode() (*Node, error) {
	var query *Node
	for _, node := range n.Nodes {
		if node.Role != RoleQuery {
			continue
		}
		if query != nil {
			return nil, fmt.Errorf("%w: %q and %q", ErrMultipleQueryNodes, query.Name, node.Name)
		}
		query = node
	}
	if query == nil {
		return nil, ErrNoQueryNode
	}
	return query, nil
}

// EvidenceNodes returns all nodes with an evidence role, in definition order.
func (n *Network) EvidenceNodes() []*Node {
	var evidence []*Node
	for _, node := range n.Nodes {
		if node.Observed() {
			evidence = append(evidence, node)
		}
	}
	return evidence
}

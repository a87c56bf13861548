package bayes

import (
	"errors"
	"testing"
)

func TestNewNodeDeduplicatesParents(t *testing.T) {
	node := NewNode("c", []string{"a", "b", "a", "b"}, []float64{0.1, 0.2, 0.3, 0.4})

	if len(node.ParentNames) != 2 {
		t.Fatalf("Expected 2 distinct parents, got %d", len(node.ParentNames))
	}
	if node.ParentNames[0] != "a" || node.ParentNames[1] != "b" {
		t.Errorf("Expected first-appearance order [a b], got %v", node.ParentNames)
	}
	if node.Role != RoleUnassigned {
		t.Errorf("Expected new node to be unassigned, got %v", node.Role)
	}
}

func TestNewNetworkResolvesParents(t *testing.T) {
	a := NewNode("a", nil, []float64{0.5})
	b := NewNode("b", []string{"a"}, []float64{0.1, 0.9})
	net, err := NewNetwork([]*Node{a, b})
	if err != nil {
		t.Fatalf("NewNetwork failed: %v", err)
	}

	if len(b.Parents) != 1 || b.Parents[0] != a {
		t.Errorf("Expected b's parent resolved to a, got %v", b.Parents)
	}
	if net.Node("a") != a || net.Node("b") != b {
		t.Error("Node lookup by name failed")
	}
	if net.Node("missing") != nil {
		t.Error("Expected nil for unknown node name")
	}
}

func TestNewNetworkForwardReference(t *testing.T) {
	// Children may be defined before their parents; resolution happens
	// after the full node list is known.
	b := NewNode("b", []string{"a"}, []float64{0.1, 0.9})
	a := NewNode("a", nil, []float64{0.5})
	if _, err := NewNetwork([]*Node{b, a}); err != nil {
		t.Errorf("Forward reference should resolve, got %v", err)
	}
}

func TestNewNetworkWrongCPTSize(t *testing.T) {
	x := NewNode("x", nil, []float64{0.3, 0.4})
	_, err := NewNetwork([]*Node{x})
	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Expected ErrMalformedInput for 2-entry CPT on parentless node, got %v", err)
	}

	y := NewNode("y", []string{"x"}, []float64{0.3})
	x = NewNode("x", nil, []float64{0.5})
	_, err = NewNetwork([]*Node{x, y})
	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Expected ErrMalformedInput for 1-entry CPT with one parent, got %v", err)
	}
}

func TestNewNetworkUnknownParent(t *testing.T) {
	b := NewNode("b", []string{"ghost"}, []float64{0.1, 0.9})
	_, err := NewNetwork([]*Node{b})
	if !errors.Is(err, ErrUnknownParent) {
		t.Errorf("Expected ErrUnknownParent, got %v", err)
	}
}

func TestLeaves(t *testing.T) {
	// a -> b -> d, a -> c; leaves (childless nodes) are c and d.
	a := NewNode("a", nil, []float64{0.5})
	b := NewNode("b", []string{"a"}, []float64{0.1, 0.9})
	c := NewNode("c", []string{"a"}, []float64{0.2, 0.8})
	d := NewNode("d", []string{"b"}, []float64{0.3, 0.7})
	net, err := NewNetwork([]*Node{a, b, c, d})
	if err != nil {
		t.Fatalf("NewNetwork failed: %v", err)
	}

	leaves := net.Leaves()
	if len(leaves) != 2 {
		t.Fatalf("Expected 2 leaves, got %d", len(leaves))
	}
	// Definition order is preserved.
	if leaves[0] != c || leaves[1] != d {
		t.Errorf("Expected leaves [c d], got [%s %s]", leaves[0].Name, leaves[1].Name)
	}
}

func TestLeavesSingleNode(t *testing.T) {
	a := NewNode("a", nil, []float64{0.5})
	net, err := NewNetwork([]*Node{a})
	if err != nil {
		t.Fatalf("NewNetwork failed: %v", err)
	}
	if len(net.Leaves()) != 1 || net.Leaves()[0] != a {
		t.Error("A parentless, childless node is itself a leaf")
	}
}

func TestApplyRoles(t *testing.T) {
	a := NewNode("a", nil, []float64{0.5})
	b := NewNode("b", []string{"a"}, []float64{0.1, 0.9})
	net, _ := NewNetwork([]*Node{a, b})

	if err := net.ApplyRoles([]Role{RoleEvidenceTrue, RoleQuery}); err != nil {
		t.Fatalf("ApplyRoles failed: %v", err)
	}
	if a.Role != RoleEvidenceTrue || b.Role != RoleQuery {
		t.Error("Roles not assigned positionally")
	}

	err := net.ApplyRoles([]Role{RoleQuery})
	if !errors.Is(err, ErrRoleCountMismatch) {
		t.Errorf("Expected ErrRoleCountMismatch for 1 role on 2 nodes, got %v", err)
	}
}

func TestAssignRole(t *testing.T) {
	a := NewNode("a", nil, []float64{0.5})
	net, _ := NewNetwork([]*Node{a})

	if err := net.AssignRole(0, RoleQuery); err != nil {
		t.Fatalf("AssignRole failed: %v", err)
	}
	if a.Role != RoleQuery {
		t.Error("Role not set")
	}
	if err := net.AssignRole(1, RoleQuery); err == nil {
		t.Error("Expected error for out-of-range index")
	}
}

func TestQueryNode(t *testing.T) {
	a := NewNode("a", nil, []float64{0.5})
	b := NewNode("b", []string{"a"}, []float64{0.1, 0.9})
	net, _ := NewNetwork([]*Node{a, b})

	if _, err := net.QueryNode(); !errors.Is(err, ErrNoQueryNode) {
		t.Errorf("Expected ErrNoQueryNode, got %v", err)
	}

	b.Role = RoleQuery
	query, err := net.QueryNode()
	if err != nil {
		t.Fatalf("QueryNode failed: %v", err)
	}
	if query != b {
		t.Errorf("Expected query node b, got %s", query.Name)
	}

	a.Role = RoleQuery
	if _, err := net.QueryNode(); !errors.Is(err, ErrMultipleQueryNodes) {
		t.Errorf("Expected ErrMultipleQueryNodes, got %v", err)
	}
}

func TestEvidenceNodes(t *testing.T) {
	a := NewNode("a", nil, []float64{0.5})
	b := NewNode("b", []string{"a"}, []float64{0.1, 0.9})
	c := NewNode("c", []string{"a"}, []float64{0.2, 0.8})
	net, _ := NewNetwork([]*Node{a, b, c})

	if len(net.EvidenceNodes()) != 0 {
		t.Error("Expected no evidence nodes before assignment")
	}

	a.Role = RoleEvidenceFalse
	c.Role = RoleEvidenceTrue

	evidence := net.EvidenceNodes()
	if len(evidence) != 2 {
		t.Fatalf("Expected 2 evidence nodes, got %d", len(evidence))
	}
	if evidence[0] != a || evidence[1] != c {
		t.Error("Evidence nodes not in definition order")
	}
	if evidence[0].EvidenceValue() || !evidence[1].EvidenceValue() {
		t.Error("Evidence values don't match roles")
	}
}

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"?": RoleQuery,
		"q": RoleQuery,
		"t": RoleEvidenceTrue,
		"f": RoleEvidenceFalse,
		"-": RoleUnassigned,
	}
	for symbol, want := range cases {
		got, err := ParseRole(symbol)
		if err != nil {
			t.Errorf("ParseRole(%q) failed: %v", symbol, err)
		}
		if got != want {
			t.Errorf("ParseRole(%q) = %v, want %v", symbol, got, want)
		}
	}

	if _, err := ParseRole("x"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Expected ErrMalformedInput for unknown symbol, got %v", err)
	}
}

func TestProb(t *testing.T) {
	node := NewNode("c", []string{"a", "b"}, []float64{0.1, 0.2, 0.3, 0.4})
	// Bit 0 is parent a, bit 1 is parent b.
	if node.Prob(0) != 0.1 || node.Prob(1) != 0.2 || node.Prob(2) != 0.3 || node.Prob(3) != 0.4 {
		t.Error("CPT lookup by bitmask index is wrong")
	}
}

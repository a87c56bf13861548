package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/SIZMW/bayesian-network/bayes"
)

// ParseRoles parses a role-assignment line: comma-separated symbols,
// positionally aligned with node definition order. Recognized symbols:
// "?" or "q" (query), "t" (evidence true), "f" (evidence false),
// "-" (unassigned).
func ParseRoles(line string) ([]bayes.Role, error) {
	symbols := strings.Split(strings.TrimSpace(line), ",")
	roles := make([]bayes.Role, len(symbols))
	for i, symbol := range symbols {
		role, err := bayes.ParseRole(strings.TrimSpace(symbol))
		if err != nil {
			return nil, fmt.Errorf("role %d: %w", i+1, err)
		}
		roles[i] = role
	}
	return roles, nil
}

// LoadRoles reads a role-assignment file and applies its first line to the
// network. The symbol count must match the node count.
func LoadRoles(path string, net *bayes.Network) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read roles: %w", err)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	roles, err := ParseRoles(line)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return net.ApplyRoles(roles)
}

package config

import "fmt"

// DomainConfig holds all configurable editor rules and the seed graph
type DomainConfig struct {
	// Graph constraints
	MaxNodesPerGraph int `yaml:"max_nodes_per_graph"`
	MaxEdgesPerGraph int `yaml:"max_edges_per_graph"`

	// Node constraints
	MaxLabelLength int `yaml:"max_label_length"`

	// Where createNode places new nodes
	DefaultNodeX float64 `yaml:"default_node_x"`
	DefaultNodeY float64 `yaml:"default_node_y"`

	// Graph every new session starts with
	SeedNodes []SeedNode `yaml:"seed_nodes"`
	SeedEdges []SeedEdge `yaml:"seed_edges"`
}

// SeedNode describes a node present when a session starts
type SeedNode struct {
	ID    string  `yaml:"id"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Label string  `yaml:"label"`
}

// SeedEdge describes an edge present when a session starts
type SeedEdge struct {
	ID     string `yaml:"id"`
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		MaxNodesPerGraph: 10000,
		MaxEdgesPerGraph: 50000,
		MaxLabelLength:   200,
		DefaultNodeX:     100,
		DefaultNodeY:     100,
		SeedNodes: []SeedNode{
			{ID: "1", X: 10, Y: 10, Label: "1"},
			{ID: "2", X: 10, Y: 100, Label: "2"},
		},
		SeedEdges: []SeedEdge{
			{ID: "e1-2", Source: "1", Target: "2"},
		},
	}
}

// Validate checks the rules are usable and the seed graph is consistent
func (c *DomainConfig) Validate() error {
	if c.MaxNodesPerGraph <= 0 {
		return fmt.Errorf("max nodes per graph must be positive")
	}
	if c.MaxEdgesPerGraph <= 0 {
		return fmt.Errorf("max edges per graph must be positive")
	}
	if len(c.SeedNodes) > c.MaxNodesPerGraph {
		return fmt.Errorf("seed graph has %d nodes, limit is %d", len(c.SeedNodes), c.MaxNodesPerGraph)
	}
	if len(c.SeedEdges) > c.MaxEdgesPerGraph {
		return fmt.Errorf("seed graph has %d edges, limit is %d", len(c.SeedEdges), c.MaxEdgesPerGraph)
	}

	ids := make(map[string]struct{}, len(c.SeedNodes))
	for _, n := range c.SeedNodes {
		if n.ID == "" {
			return fmt.Errorf("seed node with empty id")
		}
		if _, dup := ids[n.ID]; dup {
			return fmt.Errorf("duplicate seed node %q", n.ID)
		}
		ids[n.ID] = struct{}{}
	}
	for _, e := range c.SeedEdges {
		if e.ID == "" {
			return fmt.Errorf("seed edge with empty id")
		}
		if _, ok := ids[e.Source]; !ok {
			return fmt.Errorf("seed edge %q references unknown source %q", e.ID, e.Source)
		}
		if _, ok := ids[e.Target]; !ok {
			return fmt.Errorf("seed edge %q references unknown target %q", e.ID, e.Target)
		}
	}
	return nil
}

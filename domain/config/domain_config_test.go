package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *DomainConfig)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *DomainConfig) {}},
		{name: "empty seed", mutate: func(c *DomainConfig) { c.SeedNodes, c.SeedEdges = nil, nil }},
		{name: "zero node limit", mutate: func(c *DomainConfig) { c.MaxNodesPerGraph = 0 }, wantErr: "max nodes"},
		{name: "zero edge limit", mutate: func(c *DomainConfig) { c.MaxEdgesPerGraph = 0 }, wantErr: "max edges"},
		{name: "seed over limit", mutate: func(c *DomainConfig) { c.MaxNodesPerGraph = 1 }, wantErr: "seed graph has 2 nodes"},
		{name: "duplicate seed node", mutate: func(c *DomainConfig) { c.SeedNodes[1].ID = "1" }, wantErr: "duplicate seed node"},
		{name: "dangling seed edge", mutate: func(c *DomainConfig) { c.SeedEdges[0].Target = "9" }, wantErr: "unknown target"},
		{name: "unnamed seed edge", mutate: func(c *DomainConfig) { c.SeedEdges[0].ID = "" }, wantErr: "empty id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDomainConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

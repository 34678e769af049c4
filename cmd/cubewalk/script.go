package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/cubenet/internal/core/agent"
	"github.com/zeusync/cubenet/internal/core/cube"
	"github.com/zeusync/cubenet/internal/core/geometry"
)

// Script describes a batch of agents to spawn and walk. Start points are
// global net coordinates.
type Script struct {
	MaxHops       *int          `yaml:"max_hops"`
	VerifyResults *bool         `yaml:"verify_results"`
	Concurrency   int           `yaml:"concurrency"`
	Agents        []AgentScript `yaml:"agents"`
}

type AgentScript struct {
	Name  string            `yaml:"name"`
	Start geometry.Point    `yaml:"start"`
	Steps []geometry.Vector `yaml:"steps"`
}

func LoadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open walk script")
	}
	defer f.Close()
	return ReadScript(f)
}

func ReadScript(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "failed to decode walk script")
	}
	if len(s.Agents) == 0 {
		return nil, errors.New("walk script has no agents")
	}
	for i, a := range s.Agents {
		if a.Name == "" {
			return nil, errors.Errorf("agent %d has no name", i)
		}
	}
	if s.MaxHops != nil && *s.MaxHops < 0 {
		return nil, errors.Errorf("max_hops %d is negative", *s.MaxHops)
	}
	return &s, nil
}

// Config applies the script's overrides to base.
func (s *Script) Config(base cube.Config) cube.Config {
	if s.MaxHops != nil {
		base.MaxHops = *s.MaxHops
	}
	if s.VerifyResults != nil {
		base.VerifyResults = *s.VerifyResults
	}
	return base
}

// Spawn places every scripted agent and returns their plans in script order.
func (s *Script) Spawn(c *agent.Controller) ([]agent.Plan, error) {
	plans := make([]agent.Plan, 0, len(s.Agents))
	for _, a := range s.Agents {
		spawned, err := c.Spawn(a.Name, a.Start)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		plans = append(plans, agent.Plan{ID: spawned.ID, Steps: a.Steps})
	}
	return plans, nil
}

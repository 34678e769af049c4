// Package agent places and moves agents on the current cube surface.
// Agents never interact; each one only depends on the surface it walks.
package agent

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/zeusync/cubenet/internal/core/cube"
	"github.com/zeusync/cubenet/internal/core/geometry"
	"github.com/zeusync/cubenet/internal/core/observability/log"
	"github.com/zeusync/cubenet/pkg/concurrent"
)

var (
	ErrAgentNotFound = errors.New("agent not found")
	ErrNoSurface     = errors.New("no surface loaded")
)

// Agent is a snapshot of one agent.
type Agent struct {
	ID       uuid.UUID
	Name     string
	Position cube.Position
	// Moves counts successful steps.
	Moves int
}

// Plan is a sequence of steps for one agent.
type Plan struct {
	ID    uuid.UUID
	Steps []geometry.Vector
}

// Result is the outcome of one Plan. Agent holds the last good state even
// when Err is set.
type Result struct {
	Agent Agent
	Err   error
}

type entry struct {
	mu    sync.Mutex
	agent Agent
}

// Controller tracks agents on the surface published by a cube.Holder.
// Steps of one agent are serialised; different agents move in parallel.
type Controller struct {
	surfaces *cube.Holder
	logger   log.Log

	mu     sync.RWMutex
	agents map[uuid.UUID]*entry
}

func NewController(surfaces *cube.Holder, logger log.Log) *Controller {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Controller{
		surfaces: surfaces,
		logger:   logger.With(log.String("component", "agent")),
		agents:   make(map[uuid.UUID]*entry),
	}
}

func (c *Controller) surface() (*cube.Surface, error) {
	s := c.surfaces.Load()
	if s == nil {
		return nil, ErrNoSurface
	}
	return s, nil
}

// Spawn places a new agent at a global net point.
func (c *Controller) Spawn(name string, p geometry.Point) (Agent, error) {
	s, err := c.surface()
	if err != nil {
		return Agent{}, err
	}
	pos, err := s.ToLocal(p)
	if err != nil {
		return Agent{}, fmt.Errorf("spawn %q at %v: %w", name, p, err)
	}
	return c.add(name, pos), nil
}

// SpawnAt places a new agent at a face-local position.
func (c *Controller) SpawnAt(name string, pos cube.Position) (Agent, error) {
	s, err := c.surface()
	if err != nil {
		return Agent{}, err
	}
	// A zero step validates the position without moving it.
	settled, err := s.TakeStep(pos.Face, pos.Local, geometry.Vector{})
	if err != nil {
		return Agent{}, fmt.Errorf("spawn %q at %v: %w", name, pos, err)
	}
	return c.add(name, settled), nil
}

func (c *Controller) add(name string, pos cube.Position) Agent {
	a := Agent{ID: uuid.New(), Name: name, Position: pos}

	c.mu.Lock()
	c.agents[a.ID] = &entry{agent: a}
	c.mu.Unlock()

	c.logger.Info("agent spawned",
		log.Stringer("id", a.ID),
		log.String("name", name),
		log.Stringer("position", pos),
	)
	return a
}

func (c *Controller) lookup(id uuid.UUID) (*entry, error) {
	c.mu.RLock()
	e, ok := c.agents[id]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAgentNotFound, id)
	}
	return e, nil
}

// Get returns the current state of an agent.
func (c *Controller) Get(id uuid.UUID) (Agent, error) {
	e, err := c.lookup(id)
	if err != nil {
		return Agent{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.agent, nil
}

// Remove forgets an agent.
func (c *Controller) Remove(id uuid.UUID) error {
	c.mu.Lock()
	_, ok := c.agents[id]
	delete(c.agents, id)
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrAgentNotFound, id)
	}
	c.logger.Info("agent removed", log.Stringer("id", id))
	return nil
}

// List returns all agents ordered by name, then ID.
func (c *Controller) List() []Agent {
	c.mu.RLock()
	entries := make([]*entry, 0, len(c.agents))
	for _, e := range c.agents {
		entries = append(entries, e)
	}
	c.mu.RUnlock()

	out := make([]Agent, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		out = append(out, e.agent)
		e.mu.Unlock()
	}
	slices.SortFunc(out, func(a, b Agent) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID.String(), b.ID.String()))
	})
	return out
}

// Move applies one step. On failure the agent stays where it was.
func (c *Controller) Move(id uuid.UUID, step geometry.Vector) (Agent, error) {
	e, err := c.lookup(id)
	if err != nil {
		return Agent{}, err
	}
	s, err := c.surface()
	if err != nil {
		return Agent{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return c.move(s, e, step)
}

func (c *Controller) move(s *cube.Surface, e *entry, step geometry.Vector) (Agent, error) {
	from := e.agent.Position
	to, err := s.TakeStep(from.Face, from.Local, step)
	if err != nil {
		c.logger.Warn("agent move failed",
			log.Stringer("id", e.agent.ID),
			log.Stringer("from", from),
			log.Stringer("step", step),
			log.Error(err),
		)
		return e.agent, fmt.Errorf("move %s: %w", e.agent.ID, err)
	}
	e.agent.Position = to
	e.agent.Moves++
	c.logger.Debug("agent moved",
		log.Stringer("id", e.agent.ID),
		log.Stringer("from", from),
		log.Stringer("to", to),
	)
	return e.agent, nil
}

// Walk applies steps in order and stops at the first failure or when ctx
// is done. All steps use the surface current at the start of the walk.
func (c *Controller) Walk(ctx context.Context, id uuid.UUID, steps ...geometry.Vector) (Agent, error) {
	e, err := c.lookup(id)
	if err != nil {
		return Agent{}, err
	}
	s, err := c.surface()
	if err != nil {
		return Agent{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return e.agent, err
		}
		if _, err := c.move(s, e, step); err != nil {
			return e.agent, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return e.agent, nil
}

// WalkAll walks every plan concurrently, at most limit at a time. A failing
// plan does not stop the others. Results keep the order of plans.
func (c *Controller) WalkAll(ctx context.Context, plans []Plan, limit int) []Result {
	agents, errs := concurrent.ParallelMap(ctx, plans, limit, concurrent.ContinueOnError,
		func(ctx context.Context, _ int, p Plan) (Agent, error) {
			return c.Walk(ctx, p.ID, p.Steps...)
		})

	out := make([]Result, len(plans))
	for i := range plans {
		out[i] = Result{Agent: agents[i], Err: errs[i]}
	}
	return out
}

package metrics

import (
	"maps"
	"slices"
	"strings"
	"sync"
)

type value struct {
	mu sync.Mutex
	v  float64
}

func (x *value) load() float64 {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.v
}

func (x *value) update(fn func(float64) float64) {
	x.mu.Lock()
	x.v = fn(x.v)
	x.mu.Unlock()
}

type counter struct{ value }

func (c *counter) Inc() { c.Add(1) }
func (c *counter) Add(d float64) {
	if d < 0 {
		return
	}
	c.update(func(v float64) float64 { return v + d })
}
func (c *counter) Value() float64 { return c.load() }

type gauge struct{ value }

func (g *gauge) Set(v float64) { g.update(func(float64) float64 { return v }) }
func (g *gauge) SetMax(v float64) {
	g.update(func(cur float64) float64 { return max(cur, v) })
}
func (g *gauge) Add(d float64)   { g.update(func(v float64) float64 { return v + d }) }
func (g *gauge) Value() float64 { return g.load() }

type instrument struct {
	name  string
	tags  map[string]string
	value func() float64
}

type inMemory struct {
	mu          sync.Mutex
	counters    map[string]*counter
	gauges      map[string]*gauge
	instruments map[string]instrument
}

// NewCollector returns a Collector that keeps everything in memory.
func NewCollector() Collector {
	return &inMemory{
		counters:    make(map[string]*counter),
		gauges:      make(map[string]*gauge),
		instruments: make(map[string]instrument),
	}
}

func (m *inMemory) Counter(name string, tags map[string]string) Counter {
	k := key(name, tags)
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.counters[k]; ok {
		return c
	}
	c := &counter{}
	m.counters[k] = c
	m.instruments[k] = instrument{name: name, tags: maps.Clone(tags), value: c.Value}
	return c
}

func (m *inMemory) Gauge(name string, tags map[string]string) Gauge {
	k := key(name, tags)
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.gauges[k]; ok {
		return g
	}
	g := &gauge{}
	m.gauges[k] = g
	m.instruments[k] = instrument{name: name, tags: maps.Clone(tags), value: g.Value}
	return g
}

func (m *inMemory) Export() []Family {
	m.mu.Lock()
	keys := slices.Sorted(maps.Keys(m.instruments))
	list := make([]instrument, 0, len(keys))
	for _, k := range keys {
		list = append(list, m.instruments[k])
	}
	m.mu.Unlock()

	out := make([]Family, 0, len(list))
	for _, in := range list {
		out = append(out, Family{Name: in.name, Tags: in.tags, Value: in.value()})
	}
	return out
}

// key renders name{k=v,...} with sorted tag keys.
func key(name string, tags map[string]string) string {
	if len(tags) == 0 {
		return name
	}
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	for i, k := range slices.Sorted(maps.Keys(tags)) {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(tags[k])
	}
	b.WriteByte('}')
	return b.String()
}

// String renders the family the way it is keyed.
func (f Family) String() string {
	return key(f.Name, f.Tags)
}

package cube

import "sync/atomic"

type snapshot struct {
	surface *Surface
	version uint64
}

// Holder publishes the current Surface of a level. Rebuilding a level with
// new sizes builds a fresh Surface and swaps it in; steps already running
// finish on the surface they loaded. A surface and its version are
// published together.
type Holder struct {
	current atomic.Pointer[snapshot]
}

// NewHolder creates a Holder at version 1 with an initial surface, which
// may be nil.
func NewHolder(initial *Surface) *Holder {
	h := &Holder{}
	h.current.Store(&snapshot{surface: initial, version: 1})
	return h
}

// Load returns the current surface, or nil when none was published.
func (h *Holder) Load() *Surface {
	return h.current.Load().surface
}

// Current returns the current surface with the version it was published
// under.
func (h *Holder) Current() (*Surface, uint64) {
	snap := h.current.Load()
	return snap.surface, snap.version
}

// Replace publishes s and returns the surface it replaced.
func (h *Holder) Replace(s *Surface) *Surface {
	for {
		old := h.current.Load()
		if h.current.CompareAndSwap(old, &snapshot{surface: s, version: old.version + 1}) {
			return old.surface
		}
	}
}

// Rebuild constructs a surface from src and publishes it. The current
// surface stays in place when construction fails.
func (h *Holder) Rebuild(src SizeSource, opts ...Option) (*Surface, error) {
	s, err := New(src, opts...)
	if err != nil {
		return nil, err
	}
	h.Replace(s)
	return s, nil
}

// Version increases on every Replace.
func (h *Holder) Version() uint64 {
	return h.current.Load().version
}

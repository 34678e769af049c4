package metrics

// Collector hands out named, tagged instruments. Asking twice for the same
// name and tags returns the same instrument.
type Collector interface {
	Counter(name string, tags map[string]string) Counter
	Gauge(name string, tags map[string]string) Gauge

	// Export returns every instrument, sorted by name then tags.
	Export() []Family
}

// Family is one exported instrument value.
type Family struct {
	Name  string
	Tags  map[string]string
	Value float64
}

type Counter interface {
	Inc()
	// Add ignores negative deltas.
	Add(float64)
	Value() float64
}

type Gauge interface {
	Set(float64)
	// SetMax raises the gauge to v when v is larger.
	SetMax(float64)
	Add(float64)
	Value() float64
}

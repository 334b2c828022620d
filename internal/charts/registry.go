package charts

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// FallbackChartKey is the default registry key of the generic chart used
// whenever a venue-specific chart is absent or unusable. The bundled chart
// set must always contain it; its absence is a deployment error.
const FallbackChartKey = "_general"

// NormalizeVenueName strips characters not permitted in registry keys.
func NormalizeVenueName(name string) string {
	return strings.ReplaceAll(name, "&", "")
}

// Registry is a read-only index of seating charts keyed by normalized venue
// name. Built once at startup from a bundled document set; immutable
// afterwards, so concurrent lookups need no locking.
type Registry struct {
	charts map[string]*Chart
}

// NewRegistry builds a registry from every .svg file at the root of fsys.
// The registry key is the filename without extension, normalized.
func NewRegistry(fsys fs.FS) (*Registry, error) {
	names, err := fs.Glob(fsys, "*.svg")
	if err != nil {
		return nil, fmt.Errorf("failed to list charts: %w", err)
	}

	charts := make(map[string]*Chart, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read chart %s: %w", name, err)
		}

		key := NormalizeVenueName(strings.TrimSuffix(path.Base(name), ".svg"))
		charts[key] = &Chart{
			Name: key,
			Raw:  string(data),
		}
	}

	return &Registry{charts: charts}, nil
}

// Get returns the chart registered under the exact key, or nil.
func (r *Registry) Get(name string) *Chart {
	return r.charts[name]
}

// Has reports whether a chart is registered under the exact key.
func (r *Registry) Has(name string) bool {
	_, ok := r.charts[name]
	return ok
}

// Names returns all registry keys in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.charts))
	for name := range r.charts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered charts.
func (r *Registry) Len() int {
	return len(r.charts)
}

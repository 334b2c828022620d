package assets

import (
	"testing"

	"courtside/internal/charts"
)

func TestBundledChartsLoad(t *testing.T) {
	registry, err := charts.NewRegistry(ChartsFS())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	if registry.Len() == 0 {
		t.Fatal("no bundled charts loaded")
	}

	// The fallback chart must always ship and must parse to usable sections
	chart := registry.Get(charts.FallbackChartKey)
	if chart == nil {
		t.Fatalf("bundled chart set missing fallback %q", charts.FallbackChartKey)
	}
	if sections := charts.ParseSections(chart.Raw); len(sections) == 0 {
		t.Errorf("fallback chart parses to zero sections")
	}
}

func TestBundledVenueChartsParse(t *testing.T) {
	registry, err := charts.NewRegistry(ChartsFS())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	resolver := charts.NewResolver(registry, "")

	// Every bundled chart must resolve to something usable, directly or via
	// the fallback (deliberately unannotated charts included).
	for _, name := range registry.Names() {
		resolved, err := resolver.Resolve(name)
		if err != nil {
			t.Errorf("Resolve(%q): %v", name, err)
			continue
		}
		if len(resolved.Sections) == 0 {
			t.Errorf("Resolve(%q): no sections", name)
		}
	}
}

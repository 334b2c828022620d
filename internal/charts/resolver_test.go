package charts

import (
	"errors"
	"testing"
	"testing/fstest"
)

const usableChart = `<svg xmlns="http://www.w3.org/2000/svg">
  <g data-section-id="101"><title>Section 101</title><rect/></g>
  <g data-section-id="102"><title>Section 102</title><rect/></g>
</svg>`

const unusableChart = `<svg xmlns="http://www.w3.org/2000/svg">
  <g id="no-annotations"><rect/></g>
</svg>`

func newTestResolver(t *testing.T, files map[string]string) *Resolver {
	t.Helper()

	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(data)}
	}

	registry, err := NewRegistry(fsys)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return NewResolver(registry, "")
}

func TestResolveVenueChart(t *testing.T) {
	resolver := newTestResolver(t, map[string]string{
		"_general.svg": usableChart,
		"The Park.svg": usableChart,
	})

	resolved, err := resolver.Resolve("The Park")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if resolved.Venue != "The Park" {
		t.Errorf("Venue = %q, want %q", resolved.Venue, "The Park")
	}
	if resolved.IsFallback {
		t.Error("IsFallback = true, want false for a venue with its own chart")
	}
	if len(resolved.Sections) != 2 {
		t.Errorf("got %d sections, want 2", len(resolved.Sections))
	}
}

func TestResolveFallsBackWhenChartMissing(t *testing.T) {
	resolver := newTestResolver(t, map[string]string{
		"_general.svg": usableChart,
	})

	resolved, err := resolver.Resolve("Unknown Arena")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if !resolved.IsFallback {
		t.Error("IsFallback = false, want true for missing venue chart")
	}
	if resolved.Venue != "Unknown Arena" {
		t.Errorf("Venue = %q, want requested venue name", resolved.Venue)
	}
	if len(resolved.Sections) == 0 {
		t.Error("fallback resolution returned no sections")
	}
}

func TestResolveFallsBackWhenChartUnusable(t *testing.T) {
	// Chart exists but parses to zero sections; treated like a missing chart
	resolver := newTestResolver(t, map[string]string{
		"_general.svg":  usableChart,
		"Bad Arena.svg": unusableChart,
	})

	resolved, err := resolver.Resolve("Bad Arena")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !resolved.IsFallback {
		t.Error("IsFallback = false, want true for unusable venue chart")
	}
}

func TestResolveTerminalWhenFallbackUnusable(t *testing.T) {
	resolver := newTestResolver(t, map[string]string{
		"_general.svg": unusableChart,
	})

	_, err := resolver.Resolve("Unknown Arena")
	if !errors.Is(err, ErrVenueMapUnavailable) {
		t.Fatalf("Resolve error = %v, want ErrVenueMapUnavailable", err)
	}
}

func TestResolveFallbackKeyItselfFailsWithoutRetry(t *testing.T) {
	// Asking for the fallback chart directly and failing must not loop
	resolver := newTestResolver(t, map[string]string{})

	_, err := resolver.Resolve("_general")
	if !errors.Is(err, ErrVenueMapUnavailable) {
		t.Fatalf("Resolve error = %v, want ErrVenueMapUnavailable", err)
	}
}

func TestResolveEmptyVenueName(t *testing.T) {
	resolver := newTestResolver(t, map[string]string{
		"_general.svg": usableChart,
	})

	resolved, err := resolver.Resolve("")
	if err != nil {
		t.Fatalf("Resolve(\"\") error = %v, want nil", err)
	}
	if resolved != nil {
		t.Fatalf("Resolve(\"\") = %+v, want nil (no venue, nothing to load)", resolved)
	}
}

func TestResolveNormalizesVenueName(t *testing.T) {
	resolver := newTestResolver(t, map[string]string{
		"_general.svg":     unusableChart,
		"Barclays  Co.svg": usableChart,
	})

	resolved, err := resolver.Resolve("Barclays & Co")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.IsFallback {
		t.Error("IsFallback = true, want false (normalized key should match)")
	}
}

package venuemaps

import (
	"context"
	"encoding/json"
	"testing"
	"testing/fstest"
	"time"

	"courtside/internal/charts"
	"courtside/internal/shared/constants"
	"courtside/pkg/cache"
)

const venueChart = `<svg xmlns="http://www.w3.org/2000/svg">
  <g data-section-id="101"><title>Section 101</title><rect/></g>
  <g data-section-id="102"><title>Section 102</title><rect/></g>
</svg>`

type fakeCache struct {
	data map[string][]byte
	sets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := f.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	f.sets++
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func (f *fakeCache) DeletePattern(ctx context.Context, pattern string) error { return nil }

func (f *fakeCache) Ping(ctx context.Context) error { return nil }

func newChartService(t *testing.T) (Service, *fakeCache) {
	t.Helper()

	fsys := fstest.MapFS{
		"_general.svg":     &fstest.MapFile{Data: []byte(venueChart)},
		"Barclays  Co.svg": &fstest.MapFile{Data: []byte(venueChart)},
	}
	registry, err := charts.NewRegistry(fsys)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	svc := NewService(charts.NewResolver(registry, ""), nil, nil)
	fc := newFakeCache()
	svc.SetCacheService(fc)
	return svc, fc
}

func TestGetVenueMapCachesChartByNormalizedName(t *testing.T) {
	svc, fc := newChartService(t)
	ctx := context.Background()

	first, err := svc.GetVenueMap(ctx, "Barclays & Co")
	if err != nil {
		t.Fatalf("GetVenueMap: %v", err)
	}
	if first.IsFallback {
		t.Error("IsFallback = true, want false for a venue with its own chart")
	}
	if fc.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", fc.sets)
	}

	// The key drops the ampersand so aliases share one entry
	wantKey := constants.BuildVenueChartKey("Barclays  Co")
	if _, ok := fc.data[wantKey]; !ok {
		t.Errorf("cache key %q not written", wantKey)
	}

	second, err := svc.GetVenueMap(ctx, "Barclays & Co")
	if err != nil {
		t.Fatalf("GetVenueMap (cached): %v", err)
	}
	if fc.sets != 1 {
		t.Errorf("cache sets = %d after second lookup, want 1", fc.sets)
	}
	if len(second.Sections) != len(first.Sections) || second.Venue != first.Venue {
		t.Errorf("cached response differs: got %q/%d sections, want %q/%d",
			second.Venue, len(second.Sections), first.Venue, len(first.Sections))
	}
}

func TestGetVenueMapRequiresName(t *testing.T) {
	svc, _ := newChartService(t)

	if _, err := svc.GetVenueMap(context.Background(), ""); err == nil {
		t.Error("expected error for empty venue name")
	}
}

package pricing

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"courtside/internal/charts"

	"github.com/google/uuid"
)

type fakeRepo struct {
	mu        sync.Mutex
	stored    map[string]EventSectionPricing
	failOn    map[string]bool
	listErr   error
	overrides []EventSectionPricing
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		stored: make(map[string]EventSectionPricing),
		failOn: make(map[string]bool),
	}
}

func (f *fakeRepo) GetByEventID(ctx context.Context, eventID uuid.UUID) ([]EventSectionPricing, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.overrides, nil
}

func (f *fakeRepo) Upsert(ctx context.Context, override *EventSectionPricing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn[override.SectionID] {
		return errors.New("store unavailable")
	}
	f.stored[override.ID] = *override
	return nil
}

func newTestService(repo Repository) *service {
	return NewService(repo, nil, nil).(*service)
}

func TestApplyOverrides(t *testing.T) {
	sections := []charts.SVGSection{
		{ID: "101", PriceMin: 50, PriceMax: 200, CurrentPrice: 100, Available: true},
		{ID: "102", PriceMin: 50, PriceMax: 200, CurrentPrice: 100, Available: true},
	}
	overrides := map[string]EventSectionPricing{
		"101": {SectionID: "101", PriceMin: 80, PriceMax: 400, CurrentPrice: 220, Available: false},
	}

	svc := newTestService(newFakeRepo())
	merged := svc.ApplyOverrides(sections, overrides)

	if merged[0].CurrentPrice != 220 || merged[0].PriceMin != 80 || merged[0].PriceMax != 400 {
		t.Errorf("overridden section prices = (%v, %v, %v), want (80, 400, 220)",
			merged[0].PriceMin, merged[0].PriceMax, merged[0].CurrentPrice)
	}
	if merged[0].Available {
		t.Error("overridden section Available = true, want false")
	}

	// Section without an override keeps its chart values
	if merged[1].CurrentPrice != 100 || !merged[1].Available {
		t.Errorf("untouched section changed: %+v", merged[1])
	}

	// Input slice is never mutated
	if sections[0].CurrentPrice != 100 || !sections[0].Available {
		t.Errorf("input sections mutated: %+v", sections[0])
	}
}

func TestApplyOverridesEmptyShortCircuits(t *testing.T) {
	sections := []charts.SVGSection{{ID: "101", CurrentPrice: 100}}
	svc := newTestService(newFakeRepo())

	merged := svc.ApplyOverrides(sections, nil)
	if len(merged) != 1 || merged[0].CurrentPrice != 100 {
		t.Errorf("ApplyOverrides(nil) = %+v, want untouched input", merged)
	}
}

func TestSynthesizeFromEventRange(t *testing.T) {
	eventID := uuid.New()
	sections := []charts.SVGSection{
		{ID: "floor", PriceMin: 50, PriceMax: 200, CurrentPrice: 125, Available: true},
		{ID: "upper", PriceMin: 50, PriceMax: 200, CurrentPrice: 50, Available: false},
	}

	svc := newTestService(newFakeRepo())

	// Chart span [50, 200] maps onto event span [100, 400]: the midpoint
	// price 125 lands at 250, the bottom at 100, the top at 400.
	overrides := svc.SynthesizeFromEventRange(eventID, sections, 100, 400)
	if len(overrides) != 2 {
		t.Fatalf("got %d overrides, want 2", len(overrides))
	}

	floor := overrides[0]
	if floor.ID != OverrideKey(eventID, "floor") {
		t.Errorf("override ID = %q, want composite key", floor.ID)
	}
	if floor.PriceMin != 100 || floor.PriceMax != 400 || floor.CurrentPrice != 250 {
		t.Errorf("floor prices = (%v, %v, %v), want (100, 400, 250)",
			floor.PriceMin, floor.PriceMax, floor.CurrentPrice)
	}

	upper := overrides[1]
	if upper.CurrentPrice != 100 {
		t.Errorf("upper.CurrentPrice = %v, want 100", upper.CurrentPrice)
	}
	if upper.Available {
		t.Error("upper.Available = true, want false (availability preserved)")
	}
}

func TestSynthesizeFromEventRangeDegenerateSpans(t *testing.T) {
	eventID := uuid.New()

	// All sections share one price point; the chart span is floored so the
	// remap stays finite.
	uniform := []charts.SVGSection{
		{ID: "a", PriceMin: 100, PriceMax: 100, CurrentPrice: 100, Available: true},
	}
	svc := newTestService(newFakeRepo())

	overrides := svc.SynthesizeFromEventRange(eventID, uniform, 50, 50)
	if len(overrides) != 1 {
		t.Fatalf("got %d overrides, want 1", len(overrides))
	}
	if overrides[0].CurrentPrice != 50 {
		t.Errorf("CurrentPrice = %v, want 50", overrides[0].CurrentPrice)
	}

	if got := svc.SynthesizeFromEventRange(eventID, nil, 100, 400); got != nil {
		t.Errorf("SynthesizeFromEventRange(no sections) = %+v, want nil", got)
	}
}

func TestSaveOverridesAllSucceed(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	eventID := uuid.New()

	overrides := []EventSectionPricing{
		{ID: OverrideKey(eventID, "101"), EventID: eventID, SectionID: "101", CurrentPrice: 100},
		{ID: OverrideKey(eventID, "102"), EventID: eventID, SectionID: "102", CurrentPrice: 150},
	}

	results, err := svc.SaveOverrides(context.Background(), eventID, overrides, "admin")
	if err != nil {
		t.Fatalf("SaveOverrides: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, res := range results {
		if !res.Saved {
			t.Errorf("result for %s not saved: %s", res.SectionID, res.Error)
		}
	}
	if len(repo.stored) != 2 {
		t.Errorf("stored %d rows, want 2", len(repo.stored))
	}
}

func TestSaveOverridesPartialFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.failOn["102"] = true
	svc := newTestService(repo)
	eventID := uuid.New()

	overrides := []EventSectionPricing{
		{ID: OverrideKey(eventID, "101"), EventID: eventID, SectionID: "101"},
		{ID: OverrideKey(eventID, "102"), EventID: eventID, SectionID: "102"},
		{ID: OverrideKey(eventID, "103"), EventID: eventID, SectionID: "103"},
	}

	results, err := svc.SaveOverrides(context.Background(), eventID, overrides, "admin")
	if err == nil {
		t.Fatal("SaveOverrides: want error on partial failure")
	}
	if !strings.Contains(err.Error(), "1 of 3") {
		t.Errorf("error = %v, want failure count 1 of 3", err)
	}

	// Results keep input order and report the individual outcomes
	if results[0].SectionID != "101" || !results[0].Saved {
		t.Errorf("results[0] = %+v, want saved 101", results[0])
	}
	if results[1].SectionID != "102" || results[1].Saved || results[1].Error == "" {
		t.Errorf("results[1] = %+v, want failed 102 with error", results[1])
	}
	if results[2].SectionID != "103" || !results[2].Saved {
		t.Errorf("results[2] = %+v, want saved 103", results[2])
	}

	// Successful rows stay written; the batch has no atomicity
	if len(repo.stored) != 2 {
		t.Errorf("stored %d rows, want 2", len(repo.stored))
	}
}

func TestSaveOverridesEmptyBatch(t *testing.T) {
	svc := newTestService(newFakeRepo())

	if _, err := svc.SaveOverrides(context.Background(), uuid.New(), nil, "admin"); err == nil {
		t.Fatal("SaveOverrides(empty): want error")
	}
}

func TestFetchOverridesSwallowsStoreFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("connection refused")
	svc := newTestService(repo)

	got := svc.FetchOverrides(context.Background(), uuid.New().String())
	if len(got) != 0 {
		t.Errorf("FetchOverrides on store failure = %+v, want empty map", got)
	}
}

func TestFetchOverridesKeysBySection(t *testing.T) {
	eventID := uuid.New()
	repo := newFakeRepo()
	repo.overrides = []EventSectionPricing{
		{ID: OverrideKey(eventID, "101"), EventID: eventID, SectionID: "101", CurrentPrice: 80},
		{ID: OverrideKey(eventID, "102"), EventID: eventID, SectionID: "102", CurrentPrice: 90},
	}
	svc := newTestService(repo)

	got := svc.FetchOverrides(context.Background(), eventID.String())
	if len(got) != 2 {
		t.Fatalf("got %d overrides, want 2", len(got))
	}
	if got["101"].CurrentPrice != 80 {
		t.Errorf("overrides[101].CurrentPrice = %v, want 80", got["101"].CurrentPrice)
	}
}

func TestFetchOverridesInvalidEventID(t *testing.T) {
	svc := newTestService(newFakeRepo())

	if got := svc.FetchOverrides(context.Background(), "not-a-uuid"); len(got) != 0 {
		t.Errorf("FetchOverrides(bad id) = %+v, want empty map", got)
	}
}

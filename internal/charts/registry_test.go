package charts

import (
	"testing"
	"testing/fstest"
)

func TestNormalizeVenueName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Madison Square Garden", "Madison Square Garden"},
		{"Barclays & Co Arena", "Barclays  Co Arena"},
		{"A&B&C", "ABC"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := NormalizeVenueName(tc.in); got != tc.want {
			t.Errorf("NormalizeVenueName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewRegistryKeysFromFilenames(t *testing.T) {
	fsys := fstest.MapFS{
		"_general.svg":              {Data: []byte("<svg/>")},
		"Madison Square Garden.svg": {Data: []byte("<svg/>")},
		"Barclays & Co Arena.svg":   {Data: []byte("<svg/>")},
		"notes.txt":                 {Data: []byte("ignored")},
	}

	registry, err := NewRegistry(fsys)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	if registry.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (non-svg files ignored)", registry.Len())
	}

	if !registry.Has("_general") {
		t.Error("Has(_general) = false, want true")
	}
	if !registry.Has("Madison Square Garden") {
		t.Error("Has(Madison Square Garden) = false, want true")
	}

	// Keys are normalized, so the chart registered from an ampersand
	// filename is only reachable under the stripped key.
	if !registry.Has("Barclays  Co Arena") {
		t.Error("Has(Barclays  Co Arena) = false, want true")
	}
	if registry.Has("Barclays & Co Arena") {
		t.Error("Has(Barclays & Co Arena) = true, want false")
	}

	if chart := registry.Get("_general"); chart == nil || chart.Name != "_general" {
		t.Errorf("Get(_general) = %+v, want chart named _general", chart)
	}
	if chart := registry.Get("missing"); chart != nil {
		t.Errorf("Get(missing) = %+v, want nil", chart)
	}
}

func TestBundledChartsIncludeFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"_general.svg": {Data: []byte("<svg/>")},
	}

	registry, err := NewRegistry(fsys)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	if !registry.Has(FallbackChartKey) {
		t.Fatalf("registry missing fallback chart %q", FallbackChartKey)
	}
}

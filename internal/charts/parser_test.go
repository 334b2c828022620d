package charts

import (
	"testing"
)

const annotatedChart = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1000 800">
  <g data-section-id="floor-a" data-rows="12" data-seats-per-row="30" data-price-min="150" data-price-max="400" data-price="250">
    <title>Section Floor A | Premium floor seating</title>
    <rect x="100" y="100" width="200" height="150"/>
  </g>
  <g data-section-id="101" data-rows="20" data-seats-per-row="24" data-price-min="80" data-price-max="160" data-price="110">
    <title>Section 101</title>
    <rect x="350" y="100" width="200" height="150"/>
  </g>
  <g data-section-id="vip-lounge" data-section-role="hospitality" data-available="false">
    <title>Section VIP Lounge</title>
    <rect x="600" y="100" width="200" height="150"/>
  </g>
  <g id="decoration">
    <rect x="0" y="0" width="1000" height="10"/>
  </g>
</svg>`

func TestParseSectionsDocumentOrder(t *testing.T) {
	sections := ParseSections(annotatedChart)

	if len(sections) != 3 {
		t.Fatalf("ParseSections: got %d sections, want 3", len(sections))
	}

	wantIDs := []string{"floor-a", "101", "vip-lounge"}
	for i, want := range wantIDs {
		if sections[i].ID != want {
			t.Errorf("sections[%d].ID = %q, want %q", i, sections[i].ID, want)
		}
	}
}

func TestParseSectionsAttributes(t *testing.T) {
	sections := ParseSections(annotatedChart)
	if len(sections) != 3 {
		t.Fatalf("ParseSections: got %d sections, want 3", len(sections))
	}

	floor := sections[0]
	if floor.Name != "Floor" {
		t.Errorf("floor.Name = %q, want %q", floor.Name, "Floor")
	}
	if floor.Rows != 12 || floor.SeatsPerRow != 30 {
		t.Errorf("floor layout = %dx%d, want 12x30", floor.Rows, floor.SeatsPerRow)
	}
	if floor.TotalSeats != 360 {
		t.Errorf("floor.TotalSeats = %d, want 360 (rows*seats when unannotated)", floor.TotalSeats)
	}
	if floor.PriceMin != 150 || floor.PriceMax != 400 || floor.CurrentPrice != 250 {
		t.Errorf("floor prices = (%v, %v, %v), want (150, 400, 250)",
			floor.PriceMin, floor.PriceMax, floor.CurrentPrice)
	}
	if !floor.Available {
		t.Error("floor.Available = false, want true")
	}

	numbered := sections[1]
	if numbered.Name != "Section 101" {
		t.Errorf("numbered.Name = %q, want %q", numbered.Name, "Section 101")
	}

	vip := sections[2]
	if vip.Name != "VIP" {
		t.Errorf("vip.Name = %q, want %q", vip.Name, "VIP")
	}
	if vip.Role != "hospitality" {
		t.Errorf("vip.Role = %q, want %q", vip.Role, "hospitality")
	}
	if vip.Available {
		t.Error("vip.Available = true, want false (data-available annotation)")
	}
}

func TestParseSectionsDefaults(t *testing.T) {
	raw := `<svg xmlns="http://www.w3.org/2000/svg">
  <g data-section-id="bare"><rect/></g>
</svg>`

	sections := ParseSections(raw)
	if len(sections) != 1 {
		t.Fatalf("ParseSections: got %d sections, want 1", len(sections))
	}

	sec := sections[0]
	if sec.Rows != 10 || sec.SeatsPerRow != 20 {
		t.Errorf("default layout = %dx%d, want 10x20", sec.Rows, sec.SeatsPerRow)
	}
	if sec.TotalSeats != 200 {
		t.Errorf("default TotalSeats = %d, want 200", sec.TotalSeats)
	}
	if sec.PriceMin != 50 || sec.PriceMax != 200 || sec.CurrentPrice != 100 {
		t.Errorf("default prices = (%v, %v, %v), want (50, 200, 100)",
			sec.PriceMin, sec.PriceMax, sec.CurrentPrice)
	}
	if !sec.Available {
		t.Error("default Available = false, want true")
	}
	if sec.Name != "BARE" {
		t.Errorf("Name without title = %q, want %q", sec.Name, "BARE")
	}
}

func TestParseSectionsMalformedAttributesFallBack(t *testing.T) {
	raw := `<svg xmlns="http://www.w3.org/2000/svg">
  <g data-section-id="s1" data-rows="abc" data-seats-per-row="-4" data-price-min="oops" data-price="-1"><rect/></g>
</svg>`

	sections := ParseSections(raw)
	if len(sections) != 1 {
		t.Fatalf("ParseSections: got %d sections, want 1", len(sections))
	}

	sec := sections[0]
	if sec.Rows != 10 {
		t.Errorf("malformed rows = %d, want default 10", sec.Rows)
	}
	if sec.SeatsPerRow != 20 {
		t.Errorf("negative seats-per-row = %d, want default 20", sec.SeatsPerRow)
	}
	if sec.PriceMin != 50 {
		t.Errorf("malformed price-min = %v, want default 50", sec.PriceMin)
	}
	if sec.CurrentPrice != 100 {
		t.Errorf("negative price = %v, want default 100", sec.CurrentPrice)
	}
}

func TestParseSectionsEmptyInputs(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"unparseable document", "not xml at all <<<"},
		{"no annotated groups", `<svg xmlns="http://www.w3.org/2000/svg"><g id="x"><rect/></g></svg>`},
		{"empty document", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseSections(tc.raw); len(got) != 0 {
				t.Errorf("ParseSections(%q): got %d sections, want 0", tc.name, len(got))
			}
		})
	}
}

func TestFormatSectionName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"101", "Section 101"},
		{"212", "Section 212"},
		{"floor-a", "Floor"},
		{"Main Floor", "Floor"},
		{"vip-lounge", "VIP"},
		{"VIP Suite", "VIP"}, // vip check wins over suite
		{"suite-12b", "Suite 12B"},
		{"executive_suite", "Executive Suite"},
		{"balcony", "BALCONY"},
		{"upper212", "UPPER212"},
	}

	for _, tc := range cases {
		if got := FormatSectionName(tc.in); got != tc.want {
			t.Errorf("FormatSectionName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSectionLabelPrefersTitle(t *testing.T) {
	raw := `<svg xmlns="http://www.w3.org/2000/svg">
  <g data-section-id="sec-a"><title>Section 300 | Upper bowl</title><rect/></g>
  <g data-section-id="sec-b"><title>Not a section label</title><rect/></g>
</svg>`

	sections := ParseSections(raw)
	if len(sections) != 2 {
		t.Fatalf("ParseSections: got %d sections, want 2", len(sections))
	}

	// Title matching "Section <label>" supplies the label
	if sections[0].Name != "Section 300" {
		t.Errorf("titled section Name = %q, want %q", sections[0].Name, "Section 300")
	}

	// Non-matching title falls back to the id
	if sections[1].Name != "SEC-B" {
		t.Errorf("untitled section Name = %q, want %q", sections[1].Name, "SEC-B")
	}
}

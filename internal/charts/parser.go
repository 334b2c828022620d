package charts

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Section-group attribute defaults, applied per-attribute when an annotation
// is missing or malformed.
const (
	defaultRows         = 10
	defaultSeatsPerRow  = 20
	defaultPriceMin     = 50
	defaultPriceMax     = 200
	defaultCurrentPrice = 100
)

const (
	attrSectionID   = "data-section-id"
	attrSectionRole = "data-section-role"
	attrRows        = "data-rows"
	attrSeatsPerRow = "data-seats-per-row"
	attrTotalSeats  = "data-total-seats"
	attrPriceMin    = "data-price-min"
	attrPriceMax    = "data-price-max"
	attrPrice       = "data-price"
	attrAvailable   = "data-available"
)

var (
	titlePattern  = regexp.MustCompile(`^Section\s+(.+)$`)
	allDigits     = regexp.MustCompile(`^\d+$`)
	wordSeparator = strings.NewReplacer("-", " ", "_", " ")
)

// ParseSections extracts section records from a chart document, in document
// order. Malformed individual attributes fall back to their defaults; only
// the total absence of annotated section groups (or an unreadable document)
// yields an empty result. An empty result signals failure to the resolver,
// it is never an error here.
func ParseSections(raw string) []SVGSection {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(raw); err != nil {
		return nil
	}

	var sections []SVGSection
	for _, el := range doc.FindElements("//g[@" + attrSectionID + "]") {
		id := el.SelectAttrValue(attrSectionID, "")
		if id == "" {
			continue
		}

		rows := intAttr(el, attrRows, defaultRows)
		seatsPerRow := intAttr(el, attrSeatsPerRow, defaultSeatsPerRow)

		sections = append(sections, SVGSection{
			ID:           id,
			Name:         FormatSectionName(sectionLabel(el, id)),
			Role:         el.SelectAttrValue(attrSectionRole, ""),
			Rows:         rows,
			SeatsPerRow:  seatsPerRow,
			TotalSeats:   intAttr(el, attrTotalSeats, rows*seatsPerRow),
			PriceMin:     floatAttr(el, attrPriceMin, defaultPriceMin),
			PriceMax:     floatAttr(el, attrPriceMax, defaultPriceMax),
			CurrentPrice: floatAttr(el, attrPrice, defaultCurrentPrice),
			Available:    el.SelectAttrValue(attrAvailable, "") != "false",
		})
	}

	return sections
}

// sectionLabel resolves the raw display label for a section group: an
// explicit <title> annotation of the form "Section <label>" wins (text before
// a "|" delimiter, trimmed); otherwise the raw section identifier is used.
func sectionLabel(el *etree.Element, id string) string {
	title := el.SelectElement("title")
	if title == nil {
		return id
	}

	text := strings.TrimSpace(strings.SplitN(title.Text(), "|", 2)[0])
	if m := titlePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	return id
}

// FormatSectionName applies the display formatting rules to a raw section
// label. Order matters: the vip check precedes the suite check so that
// "vip-suite-a" renders as "VIP".
func FormatSectionName(name string) string {
	lower := strings.ToLower(name)
	switch {
	case allDigits.MatchString(name):
		return "Section " + name
	case strings.Contains(lower, "floor"):
		return "Floor"
	case strings.Contains(lower, "vip"):
		return "VIP"
	case strings.Contains(lower, "suite"):
		return cases.Title(language.English).String(wordSeparator.Replace(lower))
	default:
		return strings.ToUpper(name)
	}
}

func intAttr(el *etree.Element, name string, fallback int) int {
	raw := el.SelectAttrValue(name, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func floatAttr(el *etree.Element, name string, fallback float64) float64 {
	raw := el.SelectAttrValue(name, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

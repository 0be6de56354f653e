package landing

import (
	"sort"
	"strconv"
	"strings"
)

const (
	// ScrolledThreshold is the scroll offset after which the navbar turns solid
	ScrolledThreshold = 60.0
	// HeaderAllowance is subtracted from section tops so a section counts as
	// active once it reaches the bottom edge of the fixed navbar
	HeaderAllowance = 80.0
)

// NavItem is one entry of the top navigation
type NavItem struct {
	ID       string
	LabelKey string
}

// NavItems are the anchors on the page, top to bottom
var NavItems = []NavItem{
	{ID: "home", LabelKey: "nav.home"},
	{ID: "features", LabelKey: "nav.features"},
	{ID: "industries", LabelKey: "nav.industries"},
	{ID: "contact", LabelKey: "nav.contact"},
}

// SectionOffset is the measured top offset of a page section
type SectionOffset struct {
	ID  string
	Top float64
}

// NavState is the navbar appearance derived from one scroll position
type NavState struct {
	Scrolled bool
	Active   string
}

// ComputeNavState derives the navbar state from the scroll position and the
// section offsets observed by the browser. It has no side effects.
func ComputeNavState(scrollY float64, sections []SectionOffset) NavState {
	state := NavState{
		Scrolled: scrollY > ScrolledThreshold,
		Active:   NavItems[0].ID,
	}

	ordered := make([]SectionOffset, 0, len(sections))
	for _, s := range sections {
		if isNavSection(s.ID) {
			ordered = append(ordered, s)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Top < ordered[j].Top })

	for _, s := range ordered {
		if s.Top-HeaderAllowance <= scrollY {
			state.Active = s.ID
		}
	}
	return state
}

// ParseSectionOffsets reads "id:offset" pairs, skipping malformed entries
func ParseSectionOffsets(pairs []string) []SectionOffset {
	var offsets []SectionOffset
	for _, pair := range pairs {
		id, raw, ok := strings.Cut(pair, ":")
		if !ok || id == "" {
			continue
		}
		top, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			continue
		}
		offsets = append(offsets, SectionOffset{ID: strings.TrimSpace(id), Top: top})
	}
	return offsets
}

func isNavSection(id string) bool {
	for _, item := range NavItems {
		if item.ID == id {
			return true
		}
	}
	return false
}

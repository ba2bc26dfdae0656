package domain

import "slices"

var regionMembers = map[Region]map[StateCode]bool{
	RegionSouth: setOf([]StateCode{
		"FL", "TX", "GA", "SC", "NC", "TN", "VA", "AR", "KY", "AL", "MD", "DC", "PR",
	}),
	RegionNortheast: setOf([]StateCode{"NY", "MA", "CT", "NJ", "PA", "ME"}),
	RegionMidwest:   setOf([]StateCode{"IL", "IN", "OH", "MI", "WI", "MO", "IA"}),
	RegionWest: setOf([]StateCode{
		"CA", "CO", "WA", "OR", "NV", "AZ", "ID", "MT", "NM", "UT",
	}),
}

// regionOrder fixes the lookup order; the sets are disjoint so it only
// matters for determinism.
var regionOrder = []Region{RegionSouth, RegionNortheast, RegionMidwest, RegionWest}

// ClassifyRegion maps a state code to its region. Matching is exact and
// case-sensitive; anything outside the four sets is RegionUnknown.
func ClassifyRegion(code StateCode) Region {
	for _, r := range regionOrder {
		if regionMembers[r][code] {
			return r
		}
	}
	return RegionUnknown
}

// RegionStates returns the member codes of r in sorted order, or nil for
// RegionUnknown.
func RegionStates(r Region) []StateCode {
	members, ok := regionMembers[r]
	if !ok {
		return nil
	}
	out := make([]StateCode, 0, len(members))
	for code := range members {
		out = append(out, code)
	}
	slices.Sort(out)
	return out
}

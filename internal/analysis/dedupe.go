package analysis

// Deduplicate reconciles findings that collide on (line number, category).
//
// Within a collision group, ai-sourced findings beat keyword/custom ones
// (the ai finding is assumed to carry richer context). Among survivors
// the first-seen source wins, and findings from that source are kept one
// per distinct matched text, first occurrence surviving. Two distinct
// rules matching the same phrase on the same line therefore collapse to
// one finding; the same rule matching different phrases keeps both.
//
// The algorithm is an explicit two-pass: group, resolve within group,
// flatten in first-appearance order.
func Deduplicate(findings []Finding) []Finding {
	type key struct {
		line     int
		category string
	}

	groups := make(map[key][]Finding)
	var order []key
	for _, f := range findings {
		k := key{f.LineNumber, f.Category}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], f)
	}

	result := make([]Finding, 0, len(findings))
	for _, k := range order {
		result = append(result, resolveGroup(groups[k])...)
	}
	return result
}

func resolveGroup(group []Finding) []Finding {
	// AI findings displace everything else in the group.
	var ai []Finding
	for _, f := range group {
		if f.Source == SourceAI {
			ai = append(ai, f)
		}
	}
	if ai != nil {
		group = ai
	}

	winner := group[0].Source
	seenText := make(map[string]bool)
	var kept []Finding
	for _, f := range group {
		if f.Source != winner || seenText[f.MatchedText] {
			continue
		}
		seenText[f.MatchedText] = true
		kept = append(kept, f)
	}
	return kept
}

package salescope

import "sort"

// CategoryPair is a count of orders in which two distinct categories
// co-occur. Pairs are canonical: A <= B lexicographically, so (A,B) and
// (B,A) accumulate into the same bucket.
type CategoryPair struct {
	A     string `json:"categoryA"`
	B     string `json:"categoryB"`
	Count int    `json:"count"`
}

// PairCounts counts cross-category co-occurrence per order. Duplicate
// categories within an order collapse to one; orders with fewer than two
// distinct categories contribute nothing. The result is sorted by count
// descending, ties broken by pair lexicographic order, and is an empty
// (non-nil-safe) typed slice when no pair exists.
func PairCounts(items []ItemLine) []CategoryPair {
	byOrder := make(map[string]map[string]bool)
	for _, l := range items {
		if l.Category == "" {
			continue
		}
		if byOrder[l.OrderID] == nil {
			byOrder[l.OrderID] = make(map[string]bool)
		}
		byOrder[l.OrderID][l.Category] = true
	}

	type key struct{ a, b string }
	counts := make(map[key]int)
	for _, set := range byOrder {
		if len(set) < 2 {
			continue
		}
		cats := make([]string, 0, len(set))
		for c := range set {
			cats = append(cats, c)
		}
		sort.Strings(cats)
		for i := 0; i < len(cats); i++ {
			for j := i + 1; j < len(cats); j++ {
				counts[key{cats[i], cats[j]}]++
			}
		}
	}

	pairs := make([]CategoryPair, 0, len(counts))
	for k, n := range counts {
		pairs = append(pairs, CategoryPair{A: k.a, B: k.b, Count: n})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs
}

// CategoryPairs counts co-occurring categories over the filtered item-lines.
func (v *View) CategoryPairs() []CategoryPair { return PairCounts(v.Items) }

package sapling

import "sort"

/*
Split holds the outcome of scanning one feature vector for its best
binary threshold: every candidate threshold with the weighted Gini
impurity of the two-way partition it induces, aligned one to one and in
ascending threshold order, plus the impurity-minimizing pair.
*/
type Split struct {
	Thresholds    []float64
	Impurities    []float64
	BestThreshold float64
	BestImpurity  float64
}

/*
FindBestSplit takes a feature vector and an equal-length label vector and
scores every admissible threshold on the feature by the weighted Gini
impurity of the partition it induces (values <= threshold on the left,
the rest on the right). Candidate thresholds are the midpoints between
adjacent distinct feature values, so every candidate splits off two
non-empty groups. The impurity of a group is 1 - sum of the squared
class proportions, over the classes observed in the whole label vector,
and a split's impurity is the size-weighted sum of its two groups'.

The boolean result is false when the feature vector has fewer than two
distinct values and no threshold exists; the Split is then empty. On
equal impurities the smallest threshold is kept: candidates are scanned
in ascending order and only a strictly lower impurity displaces the
incumbent.

The scan sorts once and then scores all thresholds with cumulative class
counts in a single pass.
*/
func FindBestSplit(values []float64, labels []int) (Split, bool) {
	n := len(values)
	if n < 2 || len(labels) != n {
		return Split{}, false
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return values[order[i]] < values[order[j]]
	})

	sorted := make([]float64, n)
	classOf := make(map[int]int)
	for i, o := range order {
		sorted[i] = values[o]
		if _, seen := classOf[labels[o]]; !seen {
			classOf[labels[o]] = len(classOf)
		}
	}
	totals := make([]int, len(classOf))
	for _, l := range labels {
		totals[classOf[l]]++
	}

	var s Split
	found := false
	left := make([]int, len(classOf))
	for i := 0; i < n-1; i++ {
		left[classOf[labels[order[i]]]]++
		if sorted[i+1] == sorted[i] {
			continue
		}
		threshold := (sorted[i] + sorted[i+1]) / 2
		nl, nr := i+1, n-i-1
		hl, hr := 1.0, 1.0
		for c, t := range totals {
			pl := float64(left[c]) / float64(nl)
			pr := float64(t-left[c]) / float64(nr)
			hl -= pl * pl
			hr -= pr * pr
		}
		impurity := (float64(nl)*hl + float64(nr)*hr) / float64(n)
		s.Thresholds = append(s.Thresholds, threshold)
		s.Impurities = append(s.Impurities, impurity)
		if !found || impurity < s.BestImpurity {
			found = true
			s.BestThreshold = threshold
			s.BestImpurity = impurity
		}
	}
	if !found {
		return Split{}, false
	}
	return s, true
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deltae

import (
	"cmp"
	"fmt"
	"slices"
)

// Match is a candidate color and its difference from a reference.
type Match struct {

	// Index of the candidate.
	Index int

	// DeltaE is the difference of the candidate from the reference.
	DeltaE float64
}

// Rank returns the candidates ordered by increasing color difference
// from the reference, keeping the candidate order for equal differences.
func Rank(ref Sample, candidates []Sample, f Formulas, v Variants) ([]Match, error) {
	ms := make([]Match, len(candidates))
	for i, c := range candidates {
		de, err := Difference(ref, c, f, v)
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		ms[i] = Match{Index: i, DeltaE: de}
	}
	slices.SortStableFunc(ms, func(a, b Match) int {
		return cmp.Compare(a.DeltaE, b.DeltaE)
	})
	return ms, nil
}

// Closest returns the index of the candidate with the smallest color
// difference from the reference, or -1 if there are no candidates.
func Closest(ref Sample, candidates []Sample, f Formulas, v Variants) (int, error) {
	ms, err := Rank(ref, candidates, f, v)
	if err != nil || len(ms) == 0 {
		return -1, err
	}
	return ms[0].Index, nil
}

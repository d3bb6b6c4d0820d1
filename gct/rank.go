package gct

import (
	"fmt"
	"math"
	"sort"
)

// RankOptions configures Rank.
type RankOptions struct {
	// Obs receives telemetry for the call; nil is silent.
	Obs *Observer
}

// DefaultRankOptions returns the default (unobserved) configuration.
func DefaultRankOptions() RankOptions { return RankOptions{} }

// Rank replaces every value along the chosen axis with its descending rank
// within that row (axis=DimRow) or column (axis=DimCol) independently: the
// largest value ranks 1, and tied values receive the average of the ranks
// they jointly occupy (fractional tie-breaking). NaN cells stay NaN and do
// not consume ranks. Ids and descriptors are unchanged.
//
// Errors: ErrNilDataset, ErrAxis.
// Complexity: O(rows·cols·log(axis length)).
func Rank(d *Dataset, axis Dim, opts *RankOptions) (*Dataset, []Diagnostic, error) {
	o := DefaultRankOptions()
	if opts != nil {
		o = *opts
	}
	var diags []Diagnostic
	defer o.Obs.begin(SpanRank, MetricRankTotal, &diags)()

	if d == nil {
		return nil, nil, fmt.Errorf("Rank: %w", ErrNilDataset)
	}
	if !axis.valid() {
		return nil, nil, fmt.Errorf("Rank: axis %d: %w", uint8(axis), ErrAxis)
	}

	out := d.mat.Clone()
	if axis == DimRow {
		vec := make([]float64, out.c)
		for i := 0; i < out.r; i++ {
			copy(vec, out.data[i*out.c:(i+1)*out.c])
			rankDescending(vec)
			copy(out.data[i*out.c:(i+1)*out.c], vec)
		}
	} else {
		vec := make([]float64, out.r)
		for j := 0; j < out.c; j++ {
			for i := 0; i < out.r; i++ {
				vec[i] = out.data[i*out.c+j]
			}
			rankDescending(vec)
			for i := 0; i < out.r; i++ {
				out.data[i*out.c+j] = vec[i]
			}
		}
	}

	o.Obs.report(diags)

	return newUnchecked(out, d.rowIDs, d.colIDs, d.rowDesc, d.colDesc), diags, nil
}

// rankDescending replaces vec in place with descending fractional ranks.
// NaN entries are left as NaN and excluded from the rank sequence.
func rankDescending(vec []float64) {
	ord := make([]int, 0, len(vec))
	for i, v := range vec {
		if !math.IsNaN(v) {
			ord = append(ord, i)
		}
	}
	// Largest first; index order breaks exact ties deterministically.
	sort.SliceStable(ord, func(a, b int) bool { return vec[ord[a]] > vec[ord[b]] })

	// Walk runs of equal values and assign each the average of the 1-based
	// ranks the run occupies.
	for s := 0; s < len(ord); {
		e := s + 1
		for e < len(ord) && vec[ord[e]] == vec[ord[s]] {
			e++
		}
		avg := float64(s+e+1) / 2 // mean of ranks s+1 .. e
		for k := s; k < e; k++ {
			vec[ord[k]] = avg
		}
		s = e
	}
}

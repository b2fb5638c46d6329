package district

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Allocations is the region × district ownership table. It is the only
// place population shares are stored; district totals are derived from it.
type Allocations struct {
	rows map[string]map[int]float64
	eps  float64
}

func newAllocations(n int, eps float64) *Allocations {
	return &Allocations{rows: make(map[string]map[int]float64, n), eps: eps}
}

// Get returns the fraction of region held by district (0 when none).
func (a *Allocations) Get(region string, district int) float64 {
	return a.rows[region][district]
}

// Row returns a copy of the region's non-zero allocations.
func (a *Allocations) Row(region string) map[int]float64 {
	row := a.rows[region]
	out := make(map[int]float64, len(row))
	for d, f := range row {
		out[d] = f
	}

	return out
}

// Districts returns the sorted IDs of districts holding part of region.
func (a *Allocations) Districts(region string) []int {
	row := a.rows[region]
	out := make([]int, 0, len(row))
	for d := range row {
		out = append(out, d)
	}
	sort.Ints(out)

	return out
}

// Holds reports whether district holds a non-zero share of region.
func (a *Allocations) Holds(region string, district int) bool {
	_, ok := a.rows[region][district]

	return ok
}

// Sum returns the total of the region's fractions.
func (a *Allocations) Sum(region string) float64 {
	row := a.rows[region]
	fs := make([]float64, 0, len(row))
	for _, f := range row {
		fs = append(fs, f)
	}

	return floats.Sum(fs)
}

// IsSplit reports whether more than one district holds part of region.
func (a *Allocations) IsSplit(region string) bool {
	return len(a.rows[region]) > 1
}

// assign gives the whole region to district.
func (a *Allocations) assign(region string, district int) {
	a.rows[region] = map[int]float64{district: 1}
}

// transfer moves up to frac of region from one district to another and
// returns the fraction actually moved. A donor share left within eps of zero
// is moved in full so no dust allocations survive.
func (a *Allocations) transfer(region string, from, to int, frac float64) float64 {
	row := a.rows[region]
	have := row[from]
	if frac > have {
		frac = have
	}
	if have-frac <= a.eps {
		frac = have
		delete(row, from)
	} else {
		row[from] = have - frac
	}
	row[to] += frac

	return frac
}

// seehuhn.de/go/fuzzy - a library for type-1 fuzzy membership functions
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fuzzy

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/slices"
)

// defaultAlphaCutLevel is the number of probe steps used by the
// approximate alpha-cut search.
const defaultAlphaCutLevel = 60

// defaultAlphaCutPrecision is the distance below which the two bounds
// found by the alpha-cut search are collapsed to a single point.
const defaultAlphaCutPrecision = 0.01

// Discretised is a membership function defined point-wise by a set of
// (x, degree) samples.  Between samples the membership degree is
// obtained by linear interpolation.
//
// Samples may be added at any time.  The sample set is kept sorted by
// x lazily: any query re-establishes the sorted order, merging samples
// with equal x by keeping the maximum degree.
//
// A Discretised must not be used concurrently from multiple
// goroutines, since queries may reorder the sample set.
type Discretised struct {
	name   string
	points []SamplePoint
	sorted bool

	leftShoulder       bool
	rightShoulder      bool
	leftShoulderStart  float64
	rightShoulderStart float64

	alphaCutLevel     int
	alphaCutPrecision float64

	support Interval
}

// NewDiscretised creates a new discretised membership function with
// the given initial sample points.
func NewDiscretised(name string, points ...SamplePoint) *Discretised {
	d := &Discretised{
		name:              name,
		alphaCutLevel:     defaultAlphaCutLevel,
		alphaCutPrecision: defaultAlphaCutPrecision,
	}
	if len(points) > 0 {
		d.AddPoints(points...)
		d.sort()
	}
	return d
}

// Name returns the name of the membership function.
func (d *Discretised) Name() string {
	return d.name
}

// AddPoint adds a single sample point.
func (d *Discretised) AddPoint(p SamplePoint) {
	d.points = append(d.points, p)
	d.sorted = false
}

// AddPoints adds sample points.
func (d *Discretised) AddPoints(points ...SamplePoint) {
	d.points = append(d.points, points...)
	d.sorted = false
}

// NumPoints returns the number of sample points after merging
// duplicates.
func (d *Discretised) NumPoints() int {
	d.sort()
	return len(d.points)
}

// Points returns the sample points, sorted by x.  The returned slice
// is owned by d and must not be modified.
func (d *Discretised) Points() []SamplePoint {
	d.sort()
	return d.points
}

// PointAt returns the i-th sample point in sorted order.  The second
// return value is false if i is out of range.
func (d *Discretised) PointAt(i int) (SamplePoint, bool) {
	d.sort()
	if i < 0 || i >= len(d.points) {
		return SamplePoint{}, false
	}
	return d.points[i], true
}

// AlphaCutLevel returns the number of probe steps used by the
// approximate alpha-cut search.
func (d *Discretised) AlphaCutLevel() int {
	return d.alphaCutLevel
}

// SetAlphaCutLevel sets the number of probe steps used by the
// approximate alpha-cut search.
func (d *Discretised) SetAlphaCutLevel(level int) {
	d.alphaCutLevel = level
}

// IsLeftShoulder reports whether the set has been converted to a left
// shoulder set.
func (d *Discretised) IsLeftShoulder() bool {
	return d.leftShoulder
}

// IsRightShoulder reports whether the set has been converted to a
// right shoulder set.
func (d *Discretised) IsRightShoulder() bool {
	return d.rightShoulder
}

// SetLeftShoulder converts the set to a left shoulder set: all values
// left of start have membership degree 1, and the lower support bound
// becomes negative infinity.  The conversion is intended to happen at
// most once; a repeated call overwrites the threshold.
func (d *Discretised) SetLeftShoulder(start float64) {
	d.leftShoulder = true
	d.leftShoulderStart = start
	d.support.Lo = math.Inf(-1)
}

// SetRightShoulder converts the set to a right shoulder set: all
// values right of start have membership degree 1, and the upper
// support bound becomes positive infinity.  The conversion is intended
// to happen at most once; a repeated call overwrites the threshold.
func (d *Discretised) SetRightShoulder(start float64) {
	d.rightShoulder = true
	d.rightShoulderStart = start
	d.support.Hi = math.Inf(1)
}

// Membership returns the degree of membership of x, interpolating
// linearly between the two neighbouring sample points.  The second
// return value is false if the set contains no sample points.
func (d *Discretised) Membership(x float64) (float64, bool) {
	if len(d.points) == 0 {
		return 0, false
	}

	// The shoulder checks come before the support check, so a shoulder
	// saturates even outside the finite sample span.
	if d.leftShoulder && x < d.leftShoulderStart {
		return 1, true
	}
	if d.rightShoulder && x > d.rightShoulderStart {
		return 1, true
	}

	supp := d.Support()
	if x < supp.Lo || x > supp.Hi {
		return 0, true
	}

	d.sort()
	for i, p := range d.points {
		if almostEqual(p.X, x) {
			return p.Degree, true
		}
		if p.X > x {
			if i == 0 {
				return p.Degree, true
			}
			prev := d.points[i-1]
			return interpolate(x, prev.X, p.X, prev.Degree, p.Degree), true
		}
	}

	// unreachable while x is within the support
	return 0, false
}

// AlphaCut returns the domain interval where the membership degree is
// at least alpha.  The second return value is false if the set
// contains no sample points.
//
// For 0 < alpha < 1 the bounds are found by a two-sided threshold
// search over AlphaCutLevel evenly spaced probe points.  The search
// assumes that the set is unimodal (rises, then falls); for
// multi-modal sets the returned interval is an approximation.  If no
// sample has degree exactly 1, AlphaCut(1) returns [0, 0].
func (d *Discretised) AlphaCut(alpha float64) (Interval, bool) {
	if len(d.points) == 0 {
		return Interval{}, false
	}

	if almostEqual(alpha, 0) {
		return d.Support(), true
	}

	if almostEqual(alpha, 1) {
		d.sort()
		var cut Interval
		for _, p := range d.points {
			if almostEqual(p.Degree, 1) {
				cut.Lo = p.X
				break
			}
		}
		for i := len(d.points) - 1; i >= 0; i-- {
			if almostEqual(d.points[i].Degree, 1) {
				cut.Hi = d.points[i].X
				break
			}
		}
		return cut, true
	}

	supp := d.Support()
	step := supp.Length() / float64(d.alphaCutLevel-1)

	cut := supp
	probe := supp.Lo
	for i := 0; i < d.alphaCutLevel; i++ {
		fs, _ := d.Membership(probe)
		if fs-alpha >= 0 {
			cut.Lo = probe
			break
		}
		probe += step
	}
	probe = supp.Hi
	for i := 0; i < d.alphaCutLevel; i++ {
		fs, _ := d.Membership(probe)
		if fs-alpha >= 0 {
			cut.Hi = probe
			break
		}
		probe -= step
	}

	if math.Abs(cut.Lo-cut.Hi) < d.alphaCutPrecision {
		cut.Hi = cut.Lo
	}
	return cut, true
}

// Peak returns the domain value of maximum membership degree.  A run
// of consecutive samples sharing the maximum degree is reduced to its
// midpoint.  The second return value is false if the set contains no
// sample points.
//
// Only the first run of samples tying the running maximum is merged,
// so disjoint plateaus at the same degree give an order-dependent
// result.
func (d *Discretised) Peak() (float64, bool) {
	if len(d.points) == 0 {
		return 0, false
	}
	d.sort()

	best := d.points[0].Degree
	x := d.points[0].X
	for i := 1; i < len(d.points); i++ {
		p := d.points[i]
		if p.Degree > best {
			best = p.Degree
			x = p.X
		} else if almostEqual(p.Degree, best) {
			secondX := p.X
			for i < len(d.points) && almostEqual(d.points[i].Degree, best) {
				secondX = d.points[i].X
				i++
			}
			return (x + secondX) / 2, true
		}
	}
	return x, true
}

// Support returns the domain interval covered by the sample points,
// with the corresponding bound replaced by infinity for shoulder sets.
// An empty set has support [0, 0].
func (d *Discretised) Support() Interval {
	if len(d.points) == 0 {
		return Interval{}
	}
	d.sort()
	if d.leftShoulder {
		return Interval{Lo: math.Inf(-1), Hi: d.points[len(d.points)-1].X}
	}
	if d.rightShoulder {
		return Interval{Lo: d.points[0].X, Hi: math.Inf(1)}
	}
	return Interval{Lo: d.points[0].X, Hi: d.points[len(d.points)-1].X}
}

// Centroid returns the defuzzified centroid of the set, the
// degree-weighted average of the sample x values.  A set whose degrees
// sum to zero has centroid 0.
func (d *Discretised) Centroid() float64 {
	d.sort()
	var num, den float64
	for _, p := range d.points {
		num += p.X * p.Degree
		den += p.Degree
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// Compare is not supported for discretised membership functions.
func (d *Discretised) Compare(other MF) (int, error) {
	return 0, &NotSupportedError{Variant: "Discretised", Op: "Compare"}
}

// String returns one "degree / x" line per sample point.
func (d *Discretised) String() string {
	d.sort()
	b := &strings.Builder{}
	for _, p := range d.points {
		fmt.Fprintf(b, "%g / %g\n", p.Degree, p.X)
	}
	return b.String()
}

// sort establishes the sorted, duplicate-free sample order.  Samples
// are ordered ascending by x; adjacent samples with equal x are merged,
// keeping the maximum degree.  The cached support bounds are updated
// from the first and last sample.
func (d *Discretised) sort() {
	if d.sorted || len(d.points) == 0 {
		return
	}

	slices.SortFunc(d.points, func(a, b SamplePoint) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		default:
			return 0
		}
	})

	merged := d.points[:1]
	for _, p := range d.points[1:] {
		last := &merged[len(merged)-1]
		if almostEqual(p.X, last.X) {
			if p.Degree > last.Degree {
				last.Degree = p.Degree
			}
		} else {
			merged = append(merged, p)
		}
	}
	d.points = merged

	d.support.Lo = d.points[0].X
	d.support.Hi = d.points[len(d.points)-1].X
	if d.leftShoulder {
		d.support.Lo = math.Inf(-1)
	}
	if d.rightShoulder {
		d.support.Hi = math.Inf(1)
	}

	d.sorted = true
}

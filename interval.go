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

import "fmt"

// Interval is a closed interval [Lo, Hi] on the real line.  Either
// bound may be infinite, as in the support of a shoulder set.
type Interval struct {
	Lo, Hi float64
}

// Length returns Hi - Lo.
func (v Interval) Length() float64 {
	return v.Hi - v.Lo
}

// Contains reports whether x lies within the interval, bounds included.
func (v Interval) Contains(x float64) bool {
	return x >= v.Lo && x <= v.Hi
}

// IsDegenerate reports whether the interval has collapsed to a single
// point.
func (v Interval) IsDegenerate() bool {
	return v.Lo == v.Hi
}

func (v Interval) String() string {
	return fmt.Sprintf("[%g, %g]", v.Lo, v.Hi)
}

// SamplePoint is a single sample of a membership function: the degree
// of membership of the domain value X.
type SamplePoint struct {
	X      float64
	Degree float64
}

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

// MF is a type-1 fuzzy membership function.
type MF interface {
	// Name returns the name given to the membership function at
	// construction time.
	Name() string

	// Support returns the domain interval where the membership degree
	// is greater than zero.
	Support() Interval

	// IsLeftShoulder reports whether the function saturates to degree
	// 1 towards negative infinity.
	IsLeftShoulder() bool

	// IsRightShoulder reports whether the function saturates to degree
	// 1 towards positive infinity.
	IsRightShoulder() bool

	// Membership returns the degree of membership of x.  The second
	// return value is false if the function has no defined value, for
	// example when a discretised set contains no sample points.
	Membership(x float64) (float64, bool)

	// AlphaCut returns the domain interval where the membership degree
	// is at least alpha.  The second return value is false if no such
	// interval can be determined.
	AlphaCut(alpha float64) (Interval, bool)

	// Peak returns the domain value of maximum membership degree.  The
	// second return value is false if the function has no peak.
	Peak() (float64, bool)

	// String returns a human-readable description of the function.
	String() string

	// Compare orders the function relative to other.  No current
	// variant implements this; the call always fails with a
	// [NotSupportedError].
	Compare(other MF) (int, error)
}

var (
	_ MF = (*Discretised)(nil)
	_ MF = (*Gaussian)(nil)
	_ MF = (*Cylinder)(nil)
)

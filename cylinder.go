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
)

// Cylinder is the cylindrical extension of a firing strength: a
// membership function with a constant degree over the whole real line.
type Cylinder struct {
	name   string
	degree float64
}

// NewCylinder creates a new cylindrical extension with the given
// constant membership degree.  The degree must lie in [0, 1].
func NewCylinder(name string, degree float64) (*Cylinder, error) {
	if !(degree >= 0 && degree <= 1) {
		return nil, newInvalidParameterError("Cylinder", "degree",
			"must be between 0 and 1, got %g", degree)
	}
	return &Cylinder{name: name, degree: degree}, nil
}

// Name returns the name of the membership function.
func (c *Cylinder) Name() string {
	return c.name
}

// Degree returns the constant membership degree.
func (c *Cylinder) Degree() float64 {
	return c.degree
}

// Support returns the whole real line.
func (c *Cylinder) Support() Interval {
	return Interval{Lo: math.Inf(-1), Hi: math.Inf(1)}
}

// IsLeftShoulder always returns false for cylindrical extensions.
func (c *Cylinder) IsLeftShoulder() bool {
	return false
}

// IsRightShoulder always returns false for cylindrical extensions.
func (c *Cylinder) IsRightShoulder() bool {
	return false
}

// Membership returns the constant membership degree, for any x.
func (c *Cylinder) Membership(x float64) (float64, bool) {
	return c.degree, true
}

// AlphaCut returns the whole real line if alpha does not exceed the
// membership degree, and no interval otherwise.
func (c *Cylinder) AlphaCut(alpha float64) (Interval, bool) {
	if alpha <= c.degree {
		return c.Support(), true
	}
	return Interval{}, false
}

// Peak is undefined for cylindrical extensions.
func (c *Cylinder) Peak() (float64, bool) {
	return 0, false
}

// Compare is not supported for cylindrical extensions.
func (c *Cylinder) Compare(other MF) (int, error) {
	return 0, &NotSupportedError{Variant: "Cylinder", Op: "Compare"}
}

func (c *Cylinder) String() string {
	return fmt.Sprintf("%s - Cylindrical extension at: %g", c.name, c.degree)
}

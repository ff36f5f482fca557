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

// Gaussian is a membership function of the form
// exp(-0.5*((x-mean)/spread)^2), restricted to the support interval
// [mean-4*spread, mean+4*spread].
type Gaussian struct {
	name    string
	mean    float64
	spread  float64
	support Interval
}

// NewGaussian creates a new Gaussian membership function.  The mean
// must be finite and the spread must be positive.
func NewGaussian(name string, mean, spread float64) (*Gaussian, error) {
	if !isFinite(mean) {
		return nil, newInvalidParameterError("Gaussian", "mean",
			"must be a finite number, got %g", mean)
	}
	if !(spread > 0) || !isFinite(spread) {
		return nil, newInvalidParameterError("Gaussian", "spread",
			"must be positive, got %g", spread)
	}
	return &Gaussian{
		name:    name,
		mean:    mean,
		spread:  spread,
		support: Interval{Lo: mean - 4*spread, Hi: mean + 4*spread},
	}, nil
}

// Name returns the name of the membership function.
func (g *Gaussian) Name() string {
	return g.name
}

// Mean returns the mean of the Gaussian.
func (g *Gaussian) Mean() float64 {
	return g.mean
}

// Spread returns the standard deviation of the Gaussian.
func (g *Gaussian) Spread() float64 {
	return g.spread
}

// Support returns the interval [mean-4*spread, mean+4*spread].
func (g *Gaussian) Support() Interval {
	return g.support
}

// IsLeftShoulder always returns false for Gaussian membership functions.
func (g *Gaussian) IsLeftShoulder() bool {
	return false
}

// IsRightShoulder always returns false for Gaussian membership functions.
func (g *Gaussian) IsRightShoulder() bool {
	return false
}

// Membership returns the degree of membership of x.  Outside the
// support interval the degree is 0.
func (g *Gaussian) Membership(x float64) (float64, bool) {
	if !g.support.Contains(x) {
		return 0, true
	}
	z := (x - g.mean) / g.spread
	return math.Exp(-0.5 * z * z), true
}

// AlphaCut returns the domain interval where the membership degree is
// at least alpha, using the closed-form inverse of the Gaussian.  The
// bounds are clipped to the support interval.  Alpha values outside
// [0, 1] give no interval.
func (g *Gaussian) AlphaCut(alpha float64) (Interval, bool) {
	if alpha < 0 || alpha > 1 {
		return Interval{}, false
	}
	if almostEqual(alpha, 0) {
		return g.support, true
	}
	delta := g.spread * math.Sqrt(-2*math.Log(alpha))
	return Interval{
		Lo: clip(g.mean-delta, g.support.Lo, g.support.Hi),
		Hi: clip(g.mean+delta, g.support.Lo, g.support.Hi),
	}, true
}

// Peak returns the mean of the Gaussian.
func (g *Gaussian) Peak() (float64, bool) {
	return g.mean, true
}

// Compare is not supported for Gaussian membership functions.
func (g *Gaussian) Compare(other MF) (int, error) {
	return 0, &NotSupportedError{Variant: "Gaussian", Op: "Compare"}
}

func (g *Gaussian) String() string {
	return fmt.Sprintf("%s - Gaussian with mean %g, standard deviation: %g",
		g.name, g.mean, g.spread)
}

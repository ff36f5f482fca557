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
	"errors"
	"math"
	"testing"
)

func TestGaussianMembership(t *testing.T) {
	g, err := NewGaussian("test", 2, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		x    float64
		want float64
	}{
		{2, 1},
		{1.5, math.Exp(-0.5)},
		{2.5, math.Exp(-0.5)},
		{1, math.Exp(-2)},
		{3, math.Exp(-2)},
		{-1, 0},  // left of the support
		{4.5, 0}, // right of the support
	}
	for _, tt := range tests {
		fs, ok := g.Membership(tt.x)
		if !ok {
			t.Fatalf("Membership(%g) reported undefined", tt.x)
		}
		if math.Abs(fs-tt.want) > 1e-12 {
			t.Errorf("Membership(%g) = %g, want %g", tt.x, fs, tt.want)
		}
	}
}

func TestGaussianSupport(t *testing.T) {
	g, err := NewGaussian("test", 2, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	want := Interval{Lo: 0, Hi: 4}
	if g.Support() != want {
		t.Errorf("Support = %v, want %v", g.Support(), want)
	}
	if g.IsLeftShoulder() || g.IsRightShoulder() {
		t.Error("Gaussian should not be a shoulder set")
	}
}

func TestGaussianPeak(t *testing.T) {
	g, err := NewGaussian("test", -3, 1)
	if err != nil {
		t.Fatal(err)
	}
	peak, ok := g.Peak()
	if !ok || peak != -3 {
		t.Errorf("Peak = %g, %t, want -3, true", peak, ok)
	}
}

func TestGaussianAlphaCut(t *testing.T) {
	g, err := NewGaussian("test", 0, 1)
	if err != nil {
		t.Fatal(err)
	}

	cut, ok := g.AlphaCut(0)
	if !ok || cut != g.Support() {
		t.Errorf("AlphaCut(0) = %v, %t, want the support", cut, ok)
	}

	cut, ok = g.AlphaCut(1)
	if !ok || !cut.IsDegenerate() || cut.Lo != 0 {
		t.Errorf("AlphaCut(1) = %v, %t, want [0, 0]", cut, ok)
	}

	// at alpha = exp(-0.5) the bounds are mean +- spread
	alpha := math.Exp(-0.5)
	cut, ok = g.AlphaCut(alpha)
	if !ok {
		t.Fatal("AlphaCut reported undefined")
	}
	if math.Abs(cut.Lo+1) > 1e-12 || math.Abs(cut.Hi-1) > 1e-12 {
		t.Errorf("AlphaCut(%g) = %v, want [-1, 1]", alpha, cut)
	}
	fs, _ := g.Membership(cut.Lo)
	if math.Abs(fs-alpha) > 1e-12 {
		t.Errorf("membership at left bound = %g, want %g", fs, alpha)
	}

	// very small alpha values are clipped to the support
	cut, ok = g.AlphaCut(1e-12)
	if !ok || cut != g.Support() {
		t.Errorf("AlphaCut(1e-12) = %v, %t, want the support", cut, ok)
	}

	if _, ok := g.AlphaCut(1.5); ok {
		t.Error("AlphaCut(1.5) should be undefined")
	}
	if _, ok := g.AlphaCut(-0.5); ok {
		t.Error("AlphaCut(-0.5) should be undefined")
	}
}

func TestGaussianConstruction(t *testing.T) {
	tests := []struct {
		name   string
		mean   float64
		spread float64
		ok     bool
	}{
		{"valid", 0, 1, true},
		{"negative mean", -10, 0.1, true},
		{"zero spread", 0, 0, false},
		{"negative spread", 0, -1, false},
		{"NaN mean", math.NaN(), 1, false},
		{"infinite mean", math.Inf(1), 1, false},
		{"NaN spread", 0, math.NaN(), false},
		{"infinite spread", 0, math.Inf(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGaussian("test", tt.mean, tt.spread)
			if tt.ok && err != nil {
				t.Errorf("NewGaussian(%g, %g) failed: %v", tt.mean, tt.spread, err)
			}
			if !tt.ok {
				if !errors.Is(err, &InvalidParameterError{}) {
					t.Errorf("NewGaussian(%g, %g) returned %v, want InvalidParameterError",
						tt.mean, tt.spread, err)
				}
			}
		})
	}
}

func TestGaussianString(t *testing.T) {
	g, err := NewGaussian("warm", 20, 5)
	if err != nil {
		t.Fatal(err)
	}
	want := "warm - Gaussian with mean 20, standard deviation: 5"
	if g.String() != want {
		t.Errorf("String = %q, want %q", g.String(), want)
	}
}

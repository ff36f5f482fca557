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
	"testing"
)

// allVariants returns one instance of every membership function
// representation.
func allVariants(t *testing.T) []MF {
	t.Helper()

	g, err := NewGaussian("gaussian", 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewCylinder("cylinder", 0.5)
	if err != nil {
		t.Fatal(err)
	}
	return []MF{triangle(), g, c}
}

func TestVariantNames(t *testing.T) {
	want := []string{"triangular", "gaussian", "cylinder"}
	for i, mf := range allVariants(t) {
		if mf.Name() != want[i] {
			t.Errorf("Name = %q, want %q", mf.Name(), want[i])
		}
	}
}

func TestMembershipRange(t *testing.T) {
	// every defined membership degree lies in [0, 1]
	for _, mf := range allVariants(t) {
		for x := -5.0; x <= 5.0; x += 0.25 {
			fs, ok := mf.Membership(x)
			if !ok {
				t.Fatalf("%s: Membership(%g) reported undefined", mf.Name(), x)
			}
			if fs < 0 || fs > 1 {
				t.Errorf("%s: Membership(%g) = %g outside [0, 1]", mf.Name(), x, fs)
			}
		}
	}
}

func TestCompareNotSupported(t *testing.T) {
	variants := allVariants(t)
	for _, mf := range variants {
		_, err := mf.Compare(variants[0])
		if !errors.Is(err, &NotSupportedError{}) {
			t.Errorf("%s: Compare returned %v, want NotSupportedError", mf.Name(), err)
		}
	}
}

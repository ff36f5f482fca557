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

// Package fuzzy implements type-1 fuzzy membership functions, which map
// real-valued domain values to membership degrees in the range [0, 1].
//
// Membership functions represent linguistic categories such as "warm"
// or "tall".  Three representations are provided:
//
//   - [Discretised]: a piecewise-linear function built from arbitrary
//     (x, degree) sample points, with interpolated lookup, approximate
//     alpha-cuts, peak detection and centroid defuzzification
//   - [Gaussian]: a closed-form bell curve given by mean and spread
//   - [Cylinder]: a constant membership degree over the whole real
//     line, the cylindrical extension of a firing strength
//
// All representations implement the [MF] interface.
package fuzzy

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
	"io"
	"os"
)

// WritePoints writes one "x,degree" line per sorted and merged sample
// point to w.
func (d *Discretised) WritePoints(w io.Writer) error {
	d.sort()
	for _, p := range d.points {
		_, err := fmt.Fprintf(w, "%g,%g\n", p.X, p.Degree)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteHighRes resamples the support interval into resolution evenly
// spaced domain points and writes one "x,degree" line per point to w,
// using [Discretised.Membership] for the degrees.  The resolution must
// be at least 2.
func (d *Discretised) WriteHighRes(w io.Writer, resolution int) error {
	if resolution < 2 {
		return newInvalidParameterError("Discretised", "resolution",
			"must be at least 2, got %d", resolution)
	}

	supp := d.Support()
	step := supp.Length() / float64(resolution-1)
	x := supp.Lo
	for i := 0; i < resolution; i++ {
		fs, _ := d.Membership(x)
		_, err := fmt.Fprintf(w, "%g,%g\n", x, fs)
		if err != nil {
			return err
		}
		x += step
	}
	return nil
}

// AppendToFile appends the sample points to the file at path, creating
// the file if needed.  On success it returns a message describing what
// was written.
func (d *Discretised) AppendToFile(path string) (string, error) {
	err := appendFile(path, d.WritePoints)
	if err != nil {
		return "", fmt.Errorf("writing discretised set %q to %s: %w",
			d.name, path, err)
	}
	return fmt.Sprintf("discretised set %q was successfully written to %s",
		d.name, path), nil
}

// AppendToFileHighRes appends a resampled view of the set to the file
// at path, creating the file if needed.  On success it returns a
// message describing what was written.
func (d *Discretised) AppendToFileHighRes(path string, resolution int) (string, error) {
	err := appendFile(path, func(w io.Writer) error {
		return d.WriteHighRes(w, resolution)
	})
	if err != nil {
		return "", fmt.Errorf("writing discretised set %q to %s: %w",
			d.name, path, err)
	}
	return fmt.Sprintf("discretised set %q was successfully written to %s",
		d.name, path), nil
}

// appendFile opens the file at path for appending, runs write, and
// closes the file again.
func appendFile(path string, write func(io.Writer) error) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	err = write(f)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

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

// InvalidParameterError is returned when a membership function
// parameter is outside its valid domain.
type InvalidParameterError struct {
	Variant string
	Field   string
	Message string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Variant, e.Field, e.Message)
}

func (e *InvalidParameterError) Is(target error) bool {
	_, ok := target.(*InvalidParameterError)
	return ok
}

// newInvalidParameterError creates a new InvalidParameterError.
func newInvalidParameterError(variant, field, format string, args ...any) *InvalidParameterError {
	return &InvalidParameterError{
		Variant: variant,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// NotSupportedError is returned when an operation from the [MF]
// capability set is invoked on a variant which does not implement it.
type NotSupportedError struct {
	Variant string
	Op      string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s: %s is not supported", e.Variant, e.Op)
}

func (e *NotSupportedError) Is(target error) bool {
	_, ok := target.(*NotSupportedError)
	return ok
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the CIE colorimetric value types shared by the
// spectral integrator, the appearance model, and the color difference
// formulas: XYZ tristimulus values, reference white points, and CIELAB.
package cie

import (
	"fmt"
	"math"

	"cogentcore.org/core/base/errors"
)

// ErrInvalidTristimulus is returned for tristimulus values that
// contain NaN or infinite components.
var ErrInvalidTristimulus = errors.New("invalid tristimulus values")

// XYZ is a CIE tristimulus value, typically on a scale
// where the reference white has Y = 100.
type XYZ struct {

	// X is the tristimulus value for the x̄ color matching function.
	X float64

	// Y is the luminance correlated tristimulus value.
	Y float64

	// Z is the tristimulus value for the z̄ color matching function.
	Z float64
}

// Vector returns the values as a column vector.
func (c XYZ) Vector() Vector {
	return Vector{c.X, c.Y, c.Z}
}

// XYZFromVector returns the XYZ value for the given column vector.
func XYZFromVector(v Vector) XYZ {
	return XYZ{v[0], v[1], v[2]}
}

// Validate returns an error if any component is not finite.
func (c XYZ) Validate() error {
	for _, v := range [3]float64{c.X, c.Y, c.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v", ErrInvalidTristimulus, c)
		}
	}
	return nil
}

// IsPhysical returns whether all components are non-negative,
// which is the case for all real stimuli.
func (c XYZ) IsPhysical() bool {
	return c.X >= 0 && c.Y >= 0 && c.Z >= 0
}

// Scale returns the value multiplied by k.
func (c XYZ) Scale(k float64) XYZ {
	return XYZ{c.X * k, c.Y * k, c.Z * k}
}

// ScaleY returns the value scaled so that its Y component equals y.
// A zero Y value is returned unchanged.
func (c XYZ) ScaleY(y float64) XYZ {
	if c.Y == 0 {
		return c
	}
	return c.Scale(y / c.Y)
}

// Chromaticity returns the CIE 1931 x, y chromaticity coordinates.
// Black has no defined chromaticity and returns 0, 0.
func (c XYZ) Chromaticity() (x, y float64) {
	sum := c.X + c.Y + c.Z
	if sum == 0 {
		return 0, 0
	}
	return c.X / sum, c.Y / sum
}

// FromChromaticity returns the XYZ value with the given
// x, y chromaticity and luminance Y.
func FromChromaticity(x, y, lum float64) XYZ {
	if y == 0 {
		return XYZ{}
	}
	return XYZ{X: x * lum / y, Y: lum, Z: (1 - x - y) * lum / y}
}

func (c XYZ) String() string {
	return fmt.Sprintf("XYZ(%.6g, %.6g, %.6g)", c.X, c.Y, c.Z)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ciecam02

import (
	"fmt"
	"math"

	"cogentcore.org/ciecam/cie"
)

var (
	// CAT02 is the sharpened cone response matrix of the CAT02
	// chromatic adaptation transform.
	CAT02 = cie.Matrix{
		{0.7328, 0.4296, -0.1624},
		{-0.7036, 1.6975, 0.0061},
		{0.0030, 0.0136, 0.9834},
	}

	// CAT02Inverse is the inverse of [CAT02].
	CAT02Inverse = cie.MustInverse(CAT02)

	// HPE is the Hunt-Pointer-Estevez cone fundamentals matrix,
	// normalized to the equal-energy illuminant.
	HPE = cie.Matrix{
		{0.38971, 0.68898, -0.07868},
		{-0.22981, 1.18340, 0.04641},
		{0, 0, 1},
	}

	// HPEInverse is the inverse of [HPE].
	HPEInverse = cie.MustInverse(HPE)

	// cat02ToHPE maps adapted CAT02 responses to HPE cone space.
	cat02ToHPE = HPE.Mul(CAT02Inverse)

	// hpeToCAT02 is the inverse of cat02ToHPE.
	hpeToCAT02 = CAT02.Mul(HPEInverse)
)

// LMS are the long, medium, and short wavelength sharpened
// cone responses of the CAT02 transform.
type LMS struct {
	L, M, S float64
}

func (c LMS) vector() cie.Vector {
	return cie.Vector{c.L, c.M, c.S}
}

func lmsFromVector(v cie.Vector) LMS {
	return LMS{v[0], v[1], v[2]}
}

// XYZToLMS converts tristimulus values to CAT02 cone responses.
func XYZToLMS(c cie.XYZ) LMS {
	return lmsFromVector(CAT02.MulVec(c.Vector()))
}

// LMSToXYZ converts CAT02 cone responses to tristimulus values.
func LMSToXYZ(c LMS) cie.XYZ {
	return cie.XYZFromVector(CAT02Inverse.MulVec(c.vector()))
}

// singularTolerance is the cone response to the white, relative to its
// luminance, below which the response is considered zero.
const singularTolerance = 1e-12

// gains returns the per channel adaptation gains D·Yw/W + 1 - D
// for the white point.
func gains(white cie.XYZ, vw *View) (cie.Vector, error) {
	if vw == nil {
		return cie.Vector{}, fmt.Errorf("%w: no view", ErrInvalidViewingConditions)
	}
	if err := white.Validate(); err != nil || !(white.Y > 0) {
		return cie.Vector{}, fmt.Errorf("%w: %v", ErrSingularWhitePoint, white)
	}
	w := XYZToLMS(white).vector()
	var g cie.Vector
	for i, wi := range w {
		if math.Abs(wi) <= singularTolerance*white.Y {
			return cie.Vector{}, fmt.Errorf("%w: zero cone response %d for %v", ErrSingularWhitePoint, i, white)
		}
		g[i] = vw.D*white.Y/wi + 1 - vw.D
		if g[i] == 0 {
			return cie.Vector{}, fmt.Errorf("%w: zero adaptation gain %d for %v", ErrSingularWhitePoint, i, white)
		}
	}
	return g, nil
}

// Adapt returns the CAT02 cone responses of the stimulus adapted from
// the given white to the equal-energy illuminant, to the degree of
// adaptation of the view. The stimulus and white must be on the same
// scale.
func Adapt(stimulus, white cie.XYZ, vw *View) (LMS, error) {
	g, err := gains(white, vw)
	if err != nil {
		return LMS{}, err
	}
	if err := stimulus.Validate(); err != nil {
		return LMS{}, err
	}
	c := XYZToLMS(stimulus)
	return LMS{g[0] * c.L, g[1] * c.M, g[2] * c.S}, nil
}

// Unadapt is the inverse of [Adapt], returning the tristimulus value
// under the given white for the adapted cone responses.
func Unadapt(adapted LMS, white cie.XYZ, vw *View) (cie.XYZ, error) {
	g, err := gains(white, vw)
	if err != nil {
		return cie.XYZ{}, err
	}
	for _, v := range adapted.vector() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return cie.XYZ{}, fmt.Errorf("%w: non-finite cone response", ErrNonInvertible)
		}
	}
	return LMSToXYZ(LMS{adapted.L / g[0], adapted.M / g[1], adapted.S / g[2]}), nil
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package deltae computes perceptual color differences between a
// reference and a test color, with the CIE 1976, CIE 1994, and CIEDE2000
// formulas on CIELAB coordinates and with the CIECAM02 based uniform
// color spaces on appearance correlates.
package deltae

import (
	"fmt"

	"cogentcore.org/ciecam/cie"
	"cogentcore.org/ciecam/ciecam02"
	"cogentcore.org/core/base/errors"
)

//go:generate core generate

// JND is the color difference, in ΔE units, of about one just
// noticeable difference.
const JND = 2.3

// ErrUnsupportedFormulaVariant is returned for a variant that the
// formula does not have, or for samples that lack the coordinates
// the formula needs.
var ErrUnsupportedFormulaVariant = errors.New("unsupported color difference formula variant")

// Formulas are the color difference formulas.
type Formulas int32 //enums:enum

const (
	// CIE76 is the Euclidean distance in CIELAB.
	CIE76 Formulas = iota

	// CIE94 weights the CIELAB chroma and hue differences by the
	// chroma of the reference, so it is not symmetric.
	CIE94

	// CIEDE2000 is the CIE 2000 color difference formula.
	CIEDE2000

	// CAM02UCS is the Euclidean distance in one of the CIECAM02
	// based uniform color spaces.
	CAM02UCS
)

// Variants select the parametric weights of a formula.
type Variants int32 //enums:enum

const (
	// Default is the standard variant of each formula:
	// GraphicArts for CIE94 and Uniform for CAM02UCS.
	Default Variants = iota

	// GraphicArts are the CIE94 and CIEDE2000 weights for graphic arts.
	GraphicArts

	// Textiles are the CIE94 and CIEDE2000 weights for textiles,
	// halving the weight of lightness differences.
	Textiles

	// LargeDifference is the CAM02-LCD space for large differences.
	LargeDifference

	// SmallDifference is the CAM02-SCD space for small differences.
	SmallDifference

	// Uniform is the CAM02-UCS space for all differences.
	Uniform
)

// Sample is a color to compare. The CIELAB formulas need Lab, and
// CAM02UCS needs CAM; a sample may carry both.
type Sample struct {

	// Lab is the CIELAB value of the color.
	Lab *cie.Lab

	// CAM is the CIECAM02 appearance of the color.
	CAM *ciecam02.CAM
}

// LabSample returns a sample for the CIELAB value.
func LabSample(l cie.Lab) Sample {
	return Sample{Lab: &l}
}

// CAMSample returns a sample for the appearance correlates.
func CAMSample(cam *ciecam02.CAM) Sample {
	return Sample{CAM: cam}
}

// Difference returns the color difference of the test sample from the
// reference sample with the given formula and variant.
func Difference(ref, test Sample, f Formulas, v Variants) (float64, error) {
	switch f {
	case CIE76, CIE94, CIEDE2000:
		if ref.Lab == nil || test.Lab == nil {
			return 0, fmt.Errorf("%w: %v needs CIELAB values", ErrUnsupportedFormulaVariant, f)
		}
	case CAM02UCS:
		if ref.CAM == nil || test.CAM == nil {
			return 0, fmt.Errorf("%w: %v needs appearance correlates", ErrUnsupportedFormulaVariant, f)
		}
	}
	switch f {
	case CIE76:
		if v != Default {
			break
		}
		return DE76(*ref.Lab, *test.Lab), nil
	case CIE94:
		w, ok := cie94Weights[v]
		if !ok {
			break
		}
		return DE94(*ref.Lab, *test.Lab, w), nil
	case CIEDE2000:
		w, ok := de2000Weights[v]
		if !ok {
			break
		}
		return DE2000(*ref.Lab, *test.Lab, w), nil
	case CAM02UCS:
		sp, ok := uniformSpaces[v]
		if !ok {
			break
		}
		return DECAM02(ref.CAM, test.CAM, sp), nil
	default:
		return 0, fmt.Errorf("%w: unknown formula %v", ErrUnsupportedFormulaVariant, f)
	}
	return 0, fmt.Errorf("%w: %v has no %v variant", ErrUnsupportedFormulaVariant, f, v)
}

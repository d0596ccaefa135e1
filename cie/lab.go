// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"math"
)

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// Lab is a CIE 1976 L*a*b* (CIELAB) color coordinate,
// relative to some reference white.
type Lab struct {

	// L is the lightness, 0 for black and 100 for the reference white.
	L float64

	// A is the red (+) green (-) opponent coordinate.
	A float64

	// B is the yellow (+) blue (-) opponent coordinate.
	B float64
}

// LABCompress is the nonlinear compression applied to the
// white-relative tristimulus ratios in the CIELAB transform.
func LABCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(ft float64) float64 {
	t3 := ft * ft * ft
	if t3 > labEpsilon {
		return t3
	}
	return (116*ft - 16) / labKappa
}

// XYZToLab converts the tristimulus value to CIELAB
// relative to the given reference white. Both values
// must be on the same scale.
func XYZToLab(c, white XYZ) Lab {
	fx := LABCompress(c.X / white.X)
	fy := LABCompress(c.Y / white.Y)
	fz := LABCompress(c.Z / white.Z)
	return Lab{L: 116*fy - 16, A: 500 * (fx - fy), B: 200 * (fy - fz)}
}

// XYZ converts the Lab value back to tristimulus values on
// the scale of the given reference white.
func (l Lab) XYZ(white XYZ) XYZ {
	fy := (l.L + 16) / 116
	fx := fy + l.A/500
	fz := fy - l.B/200
	return XYZ{
		X: LABUncompress(fx) * white.X,
		Y: LToY(l.L) * white.Y / 100,
		Z: LABUncompress(fz) * white.Z,
	}
}

// LToY converts a lightness L* to a relative luminance Y on a 0-100 scale.
func LToY(l float64) float64 {
	return 100 * LABUncompress((l+16)/116)
}

// YToL converts a relative luminance Y on a 0-100 scale to lightness L*.
func YToL(y float64) float64 {
	return 116*LABCompress(y/100) - 16
}

// Chroma returns the CIELAB chroma C*ab.
func (l Lab) Chroma() float64 {
	return math.Hypot(l.A, l.B)
}

// Hue returns the CIELAB hue angle h_ab in degrees, in [0, 360).
// Achromatic values (a = b = 0) return 0.
func (l Lab) Hue() float64 {
	if l.A == 0 && l.B == 0 {
		return 0
	}
	return SanitizeDegrees(math.Atan2(l.B, l.A) * 180 / math.Pi)
}

// SanitizeDegrees maps the angle to the range [0, 360).
func SanitizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

//go:generate core generate

// Illuminants are the CIE standard illuminants with tabulated
// white points for the CIE 1931 2° standard observer.
type Illuminants int32 //enums:enum

const (
	// D65 is average daylight with a correlated color temperature of 6504 K.
	D65 Illuminants = iota

	// D50 is horizon daylight, the graphic arts viewing standard.
	D50

	// D55 is mid-morning or mid-afternoon daylight.
	D55

	// D75 is north sky daylight.
	D75

	// A is a tungsten filament lamp at 2856 K.
	A

	// E is the equal-energy illuminant.
	E

	// F2 is a cool white fluorescent lamp.
	F2
)

// whitePoints are the Y = 100 tristimulus values of the
// illuminants, per ASTM E308 (CIE 1931 2°).
var whitePoints = [IlluminantsN]XYZ{
	D65: {95.047, 100, 108.883},
	D50: {96.422, 100, 82.521},
	D55: {95.682, 100, 92.149},
	D75: {94.972, 100, 122.638},
	A:   {109.850, 100, 35.585},
	E:   {100, 100, 100},
	F2:  {99.187, 100, 67.395},
}

// WhitePoint returns the reference white of the illuminant,
// normalized to Y = 100. It returns the D65 white point
// for invalid values.
func (il Illuminants) WhitePoint() XYZ {
	if il < 0 || il >= IlluminantsN {
		return whitePoints[D65]
	}
	return whitePoints[il]
}

var (
	// WhiteD65 is the D65 reference white with Y = 100.
	WhiteD65 = whitePoints[D65]

	// WhiteD50 is the D50 reference white with Y = 100.
	WhiteD50 = whitePoints[D50]
)

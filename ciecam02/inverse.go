// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ciecam02

import (
	"fmt"
	"math"

	"cogentcore.org/ciecam/cie"
)

// Inverse returns the tristimulus value, on the scale of the white, of
// the color with the given appearance correlates under the view and
// white. It is the inverse of [Adapt] followed by [Forward].
func Inverse(c Correlates, vw *View, white cie.XYZ) (cie.XYZ, error) {
	m, err := NewModel(white, vw)
	if err != nil {
		return cie.XYZ{}, err
	}
	return m.XYZ(c)
}

// inverse returns the adapted cone responses for the lightness j,
// chroma ch, and hue angle h in degrees, for the achromatic
// response aw of the white.
func inverse(j, ch, h, aw float64, vw *View) (LMS, error) {
	if j == 0 && ch > 0 {
		return LMS{}, fmt.Errorf("%w: chroma %g at zero lightness", ErrNonInvertible, ch)
	}
	t := 0.0
	if ch > 0 {
		t = math.Pow(ch/(math.Sqrt(j/100)*math.Pow(1.64-math.Pow(0.29, vw.N), 0.73)), 1/0.9)
	}
	A := aw * math.Pow(j/100, 1/(vw.C*vw.Z))
	p2 := A/vw.Nbb + 0.305
	const p3 = 21.0 / 20

	var a, b float64
	if t > 0 {
		hr := h * math.Pi / 180
		sin, cos := math.Sincos(hr)
		p1 := (50000.0 / 13) * vw.Nc * vw.Ncb * eccentricity(h) / t
		if math.Abs(sin) >= math.Abs(cos) {
			p4 := p1 / sin
			b = p2 * (2 + p3) * (460.0 / 1403) /
				(p4 + (2+p3)*(220.0/1403)*(cos/sin) - 27.0/1403 + p3*(6300.0/1403))
			a = b * cos / sin
		} else {
			p5 := p1 / cos
			a = p2 * (2 + p3) * (460.0 / 1403) /
				(p5 + (2+p3)*(220.0/1403) - (27.0/1403-p3*(6300.0/1403))*(sin/cos))
			b = a * sin / cos
		}
	}
	// offset-free compressed responses
	an := A / vw.Nbb
	ra := [3]float64{
		(460*an + 451*a + 288*b) / 1403,
		(460*an - 891*a - 261*b) / 1403,
		(460*an - 220*a - 6300*b) / 1403,
	}
	return decompress(ra, vw)
}

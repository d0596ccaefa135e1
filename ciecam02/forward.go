// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ciecam02

import (
	"fmt"
	"math"
)

// achromaticTolerance is the relative tolerance within which an
// adapted stimulus is considered equal to the adapted white.
const achromaticTolerance = 1e-12

// Forward returns the appearance correlates of the adapted cone
// responses of a stimulus, given the adapted cone responses of the
// white under the same view. Use [Adapt] to compute both.
func Forward(stimulus, white LMS, vw *View) (*CAM, error) {
	if vw == nil {
		return nil, fmt.Errorf("%w: no view", ErrInvalidViewingConditions)
	}
	aw := achromatic(compress(white, vw), vw)
	if !(aw > 0) || math.IsInf(aw, 0) {
		return nil, fmt.Errorf("%w: achromatic response of the white is %g", ErrInvalidViewingConditions, aw)
	}
	return forward(stimulus, isWhite(stimulus, white), aw, vw)
}

// isWhite returns whether the stimulus equals the white within
// achromaticTolerance.
func isWhite(stimulus, white LMS) bool {
	s, w := stimulus.vector(), white.vector()
	for i := range 3 {
		if math.Abs(s[i]-w[i]) > achromaticTolerance*math.Abs(w[i]) {
			return false
		}
	}
	return true
}

// forward computes the correlates for the achromatic response aw of the white.
// Only black may have a zero achromatic response; a negative one, or zero
// with a hue, has no lightness and returns [ErrNonInvertible].
func forward(stimulus LMS, neutral bool, aw float64, vw *View) (*CAM, error) {
	ra := compress(stimulus, vw)

	a := ra[0] - 12*ra[1]/11 + ra[2]/11
	b := (ra[0] + ra[1] - 2*ra[2]) / 9

	neutral = neutral || (a == 0 && b == 0)
	A := achromatic(ra, vw)
	if A < 0 || (A == 0 && !neutral) || math.IsNaN(A) {
		return nil, fmt.Errorf("%w: achromatic response %g out of range", ErrNonInvertible, A)
	}
	J := 0.0
	if A > 0 {
		J = 100 * math.Pow(A/aw, vw.C*vw.Z)
	}
	Q := (4 / vw.C) * math.Sqrt(J/100) * (aw + 4) * vw.FLRoot

	cam := &CAM{Lightness: J, Brightness: Q}
	if neutral {
		cam.Hue = HueUndefined
		cam.HueComposition = HueUndefined
		return cam, nil
	}
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	cam.RedGreen, cam.YellowBlue = a, b
	cam.Hue = h
	cam.HueComposition = HueComposition(h)

	et := eccentricity(h)
	t := 0.0
	if den := ra[0] + ra[1] + 21*ra[2]/20 + 0.305; den != 0 {
		t = (50000.0 / 13) * vw.Nc * vw.Ncb * et * math.Hypot(a, b) / den
	}
	if t > 0 {
		cam.Chroma = math.Pow(t, 0.9) * math.Sqrt(J/100) * math.Pow(1.64-math.Pow(0.29, vw.N), 0.73)
	}
	cam.Colorfulness = cam.Chroma * vw.FLRoot
	if Q > 0 {
		cam.Saturation = 100 * math.Sqrt(cam.Colorfulness/Q)
	}
	return cam, nil
}

// eccentricity returns the eccentricity factor et of the hue angle h in degrees.
func eccentricity(h float64) float64 {
	return 0.25 * (math.Cos(h*math.Pi/180+2) + 3.8)
}

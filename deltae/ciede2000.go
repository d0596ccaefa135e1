// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deltae

import (
	"math"

	"cogentcore.org/ciecam/cie"
)

// DE2000Weights are the parametric factors of the CIEDE2000
// color difference.
type DE2000Weights struct {
	KL, KC, KH float64
}

var de2000Weights = map[Variants]DE2000Weights{
	Default:     {1, 1, 1},
	GraphicArts: {1, 1, 1},
	Textiles:    {2, 1, 1},
}

const pow25to7 = 6103515625 // 25^7

func deg(rad float64) float64 { return rad * 180 / math.Pi }
func rad(deg float64) float64 { return deg * math.Pi / 180 }

// DE2000 returns the CIEDE2000 color difference between ref and test,
// following Sharma, Wu and Dalal (2005). A hue difference involving
// an achromatic color is zero.
func DE2000(ref, test cie.Lab, w DE2000Weights) float64 {
	c1 := ref.Chroma()
	c2 := test.Chroma()
	cb := (c1 + c2) / 2
	cb7 := math.Pow(cb, 7)
	g := 0.5 * (1 - math.Sqrt(cb7/(cb7+pow25to7)))

	a1 := (1 + g) * ref.A
	a2 := (1 + g) * test.A
	c1p := math.Hypot(a1, ref.B)
	c2p := math.Hypot(a2, test.B)
	h1p := primeHue(a1, ref.B)
	h2p := primeHue(a2, test.B)

	dl := test.L - ref.L
	dc := c2p - c1p
	chromatic := c1p*c2p != 0

	dh := 0.0
	if chromatic {
		dh = h2p - h1p
		switch {
		case dh > 180:
			dh -= 360
		case dh < -180:
			dh += 360
		}
	}
	dH := 2 * math.Sqrt(c1p*c2p) * math.Sin(rad(dh/2))

	lb := (ref.L + test.L) / 2
	cbp := (c1p + c2p) / 2
	var hb float64
	switch {
	case !chromatic:
		hb = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hb = (h1p + h2p) / 2
	case h1p+h2p < 360:
		hb = (h1p + h2p + 360) / 2
	default:
		hb = (h1p + h2p - 360) / 2
	}

	t := 1 - 0.17*math.Cos(rad(hb-30)) +
		0.24*math.Cos(rad(2*hb)) +
		0.32*math.Cos(rad(3*hb+6)) -
		0.20*math.Cos(rad(4*hb-63))
	dtheta := 30 * math.Exp(-((hb-275)/25)*((hb-275)/25))
	cbp7 := math.Pow(cbp, 7)
	rc := 2 * math.Sqrt(cbp7/(cbp7+pow25to7))
	l50 := (lb - 50) * (lb - 50)
	sl := 1 + 0.015*l50/math.Sqrt(20+l50)
	sc := 1 + 0.045*cbp
	sh := 1 + 0.015*cbp*t
	rt := -math.Sin(rad(2*dtheta)) * rc

	l := dl / (w.KL * sl)
	c := dc / (w.KC * sc)
	h := dH / (w.KH * sh)
	return math.Sqrt(l*l + c*c + h*h + rt*c*h)
}

// primeHue returns the hue angle in degrees in [0, 360) of the
// adjusted a' and b, with 0 for the achromatic axis.
func primeHue(ap, b float64) float64 {
	if ap == 0 && b == 0 {
		return 0
	}
	return cie.SanitizeDegrees(deg(math.Atan2(b, ap)))
}

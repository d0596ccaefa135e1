// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deltae

import (
	"math"

	"cogentcore.org/ciecam/cie"
)

// CIE94Weights are the application dependent parameters of
// the CIE 1994 color difference.
type CIE94Weights struct {

	// KL is the lightness weighting factor.
	KL float64

	// K1 scales the chroma weighting function.
	K1 float64

	// K2 scales the hue weighting function.
	K2 float64
}

var cie94Weights = map[Variants]CIE94Weights{
	Default:     {KL: 1, K1: 0.045, K2: 0.015},
	GraphicArts: {KL: 1, K1: 0.045, K2: 0.015},
	Textiles:    {KL: 2, K1: 0.048, K2: 0.014},
}

// DE94 returns the CIE 1994 color difference of test from ref.
// The chroma and hue weights depend on the chroma of ref only, so
// swapping the arguments generally changes the result.
func DE94(ref, test cie.Lab, w CIE94Weights) float64 {
	c1 := ref.Chroma()
	c2 := test.Chroma()
	dl := ref.L - test.L
	dc := c1 - c2
	da := ref.A - test.A
	db := ref.B - test.B
	// ΔH² can round to slightly below zero
	dh2 := max(da*da+db*db-dc*dc, 0)

	sc := 1 + w.K1*c1
	sh := 1 + w.K2*c1
	l := dl / w.KL
	c := dc / sc
	return math.Sqrt(l*l + c*c + dh2/(sh*sh))
}

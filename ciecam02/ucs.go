// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ciecam02

import "math"

// UniformSpace holds the coefficients of one of the uniform color
// spaces based on CIECAM02 (Luo, Cui and Li, 2006).
type UniformSpace struct {

	// Name of the space.
	Name string

	// KL is the lightness weighting in color differences.
	KL float64

	// C1 is the lightness compression coefficient.
	C1 float64

	// C2 is the colorfulness compression coefficient.
	C2 float64
}

var (
	// CAM02LCD is the space for large color differences.
	CAM02LCD = UniformSpace{Name: "CAM02-LCD", KL: 0.77, C1: 0.007, C2: 0.0053}

	// CAM02SCD is the space for small color differences.
	CAM02SCD = UniformSpace{Name: "CAM02-SCD", KL: 1.24, C1: 0.007, C2: 0.0363}

	// CAM02UCS is the uniform color space for all differences.
	CAM02UCS = UniformSpace{Name: "CAM02-UCS", KL: 1.0, C1: 0.007, C2: 0.0228}
)

// UCS is a color in one of the CIECAM02 based uniform color spaces.
type UCS struct {

	// J is the compressed lightness J'.
	J float64

	// A is the red-green coordinate a'.
	A float64

	// B is the yellow-blue coordinate b'.
	B float64
}

// UCS returns the coordinates of the color in the given uniform space.
// Achromatic colors lie on the lightness axis.
func (cam *CAM) UCS(sp UniformSpace) UCS {
	u := UCS{J: (1 + 100*sp.C1) * cam.Lightness / (1 + sp.C1*cam.Lightness)}
	if cam.IsAchromatic() {
		return u
	}
	m := math.Log1p(sp.C2*cam.Colorfulness) / sp.C2
	sin, cos := math.Sincos(cam.Hue * math.Pi / 180)
	u.A = m * cos
	u.B = m * sin
	return u
}

// Correlates returns the lightness, colorfulness, and hue angle of
// the coordinates in the given uniform space, with a [HueUndefined]
// hue for points on the lightness axis.
func (u UCS) Correlates(sp UniformSpace) Correlates {
	c := Correlates{Set: JMh, Lightness: u.J / (1 + 100*sp.C1 - sp.C1*u.J)}
	mp := math.Hypot(u.A, u.B)
	if mp == 0 {
		c.Hue = HueUndefined
		c.HueComposition = HueUndefined
		return c
	}
	c.Colorfulness = math.Expm1(sp.C2*mp) / sp.C2
	h := math.Atan2(u.B, u.A) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	c.Hue = h
	c.HueComposition = HueComposition(h)
	return c
}

// Distance returns the Euclidean color difference between u and o
// in the given uniform space, with lightness weighted by 1 / KL.
func (u UCS) Distance(o UCS, sp UniformSpace) float64 {
	dj := (u.J - o.J) / sp.KL
	da := u.A - o.A
	db := u.B - o.B
	return math.Sqrt(dj*dj + da*da + db*db)
}

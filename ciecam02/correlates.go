// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ciecam02

import (
	"fmt"
	"math"
)

// CorrelateSets are the sets of three independent appearance
// correlates from which a color can be reconstructed.
type CorrelateSets int32 //enums:enum

const (
	// JCh is lightness, chroma, and hue angle.
	JCh CorrelateSets = iota

	// QCh is brightness, chroma, and hue angle.
	QCh

	// QMh is brightness, colorfulness, and hue angle.
	QMh

	// JMh is lightness, colorfulness, and hue angle.
	JMh

	// Jsh is lightness, saturation, and hue angle.
	Jsh

	// Qsh is brightness, saturation, and hue angle.
	Qsh

	// JCQuadrature is lightness, chroma, and hue composition.
	JCQuadrature

	// QMQuadrature is brightness, colorfulness, and hue composition.
	QMQuadrature
)

// Correlates are appearance correlates of a color, of which the
// three named by Set are used to reconstruct it.
type Correlates struct {

	// Set selects the correlates that are used.
	Set CorrelateSets

	// Lightness is J.
	Lightness float64

	// Brightness is Q.
	Brightness float64

	// Chroma is C.
	Chroma float64

	// Colorfulness is M.
	Colorfulness float64

	// Saturation is s.
	Saturation float64

	// Hue is the hue angle h in degrees, or [HueUndefined]
	// for an achromatic color. Angles must be given in [0, 360):
	// -1 always means [HueUndefined], so -1° must be written as 359°.
	// Other angles outside of the range are reduced modulo 360.
	Hue float64

	// HueComposition is H, or [HueUndefined] for an achromatic color.
	HueComposition float64
}

// usesComposition returns whether the set specifies hue by composition.
func (s CorrelateSets) usesComposition() bool {
	return s == JCQuadrature || s == QMQuadrature
}

// jch returns the lightness, chroma, and hue angle specified by the
// correlates, for the achromatic response aw of the white.
func (c Correlates) jch(vw *View, aw float64) (j, ch, h float64, err error) {
	qToJ := func(q float64) float64 {
		v := vw.C * q / ((aw + 4) * vw.FLRoot)
		return 6.25 * v * v
	}
	jToQ := func(j float64) float64 {
		return (4 / vw.C) * math.Sqrt(j/100) * (aw + 4) * vw.FLRoot
	}
	var used [2]float64
	switch c.Set {
	case JCh, JCQuadrature:
		used = [2]float64{c.Lightness, c.Chroma}
		j, ch = c.Lightness, c.Chroma
	case QCh:
		used = [2]float64{c.Brightness, c.Chroma}
		j, ch = qToJ(c.Brightness), c.Chroma
	case QMh, QMQuadrature:
		used = [2]float64{c.Brightness, c.Colorfulness}
		j, ch = qToJ(c.Brightness), c.Colorfulness/vw.FLRoot
	case JMh:
		used = [2]float64{c.Lightness, c.Colorfulness}
		j, ch = c.Lightness, c.Colorfulness/vw.FLRoot
	case Jsh:
		used = [2]float64{c.Lightness, c.Saturation}
		j = c.Lightness
		m := (c.Saturation / 100) * (c.Saturation / 100) * jToQ(j)
		ch = m / vw.FLRoot
	case Qsh:
		used = [2]float64{c.Brightness, c.Saturation}
		j = qToJ(c.Brightness)
		m := (c.Saturation / 100) * (c.Saturation / 100) * c.Brightness
		ch = m / vw.FLRoot
	default:
		return 0, 0, 0, fmt.Errorf("%w: unsupported correlate set %v", ErrNonInvertible, c.Set)
	}
	for _, v := range used {
		if !(v >= 0) || math.IsInf(v, 0) {
			return 0, 0, 0, fmt.Errorf("%w: %v correlates must be finite and non-negative: %v", ErrNonInvertible, c.Set, used)
		}
	}

	h = c.Hue
	if c.Set.usesComposition() {
		h = HueUndefined
		if c.HueComposition != HueUndefined {
			h, err = HueFromComposition(c.HueComposition)
			if err != nil {
				return 0, 0, 0, err
			}
		}
	}
	if h == HueUndefined {
		if ch != 0 {
			return 0, 0, 0, fmt.Errorf("%w: chroma %g without a hue", ErrHueUndefined, ch)
		}
		return j, 0, h, nil
	}
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, 0, 0, fmt.Errorf("%w: hue %g", ErrNonInvertible, h)
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return j, ch, h, nil
}

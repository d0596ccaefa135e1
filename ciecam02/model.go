// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ciecam02

import (
	"fmt"
	"math"

	"cogentcore.org/ciecam/cie"
)

// Model converts between tristimulus values and appearance correlates
// for a fixed view and white point. It is immutable and safe for
// concurrent use.
type Model struct {

	// View is the viewing conditions.
	View *View

	// White is the adopted white point.
	White cie.XYZ

	// adaptedWhite is the adapted cone response of the white.
	adaptedWhite LMS

	// aw is the achromatic response of the white.
	aw float64
}

// NewModel returns a model for the given white point and view.
func NewModel(white cie.XYZ, vw *View) (*Model, error) {
	wa, err := Adapt(white, white, vw)
	if err != nil {
		return nil, err
	}
	aw := achromatic(compress(wa, vw), vw)
	if !(aw > 0) || math.IsInf(aw, 0) {
		return nil, fmt.Errorf("%w: achromatic response of the white is %g", ErrInvalidViewingConditions, aw)
	}
	return &Model{View: vw, White: white, adaptedWhite: wa, aw: aw}, nil
}

// NewStdModel returns a model for the D65 white under [NewStdView].
func NewStdModel() *Model {
	m, _ := NewModel(cie.WhiteD65, NewStdView())
	return m
}

// AchromaticWhite returns the achromatic response Aw of the white.
func (m *Model) AchromaticWhite() float64 {
	return m.aw
}

// FromXYZ returns the appearance correlates of the tristimulus
// value, which must be on the scale of the white.
func (m *Model) FromXYZ(c cie.XYZ) (*CAM, error) {
	s, err := Adapt(c, m.White, m.View)
	if err != nil {
		return nil, err
	}
	return forward(s, isWhite(s, m.adaptedWhite), m.aw, m.View)
}

// XYZ returns the tristimulus value of the color with the
// given appearance correlates.
func (m *Model) XYZ(c Correlates) (cie.XYZ, error) {
	j, ch, h, err := c.jch(m.View, m.aw)
	if err != nil {
		return cie.XYZ{}, err
	}
	s, err := inverse(j, ch, h, m.aw, m.View)
	if err != nil {
		return cie.XYZ{}, err
	}
	return Unadapt(s, m.White, m.View)
}

// FromCorrelates returns the full set of appearance correlates of
// the color specified by the given correlates.
func (m *Model) FromCorrelates(c Correlates) (*CAM, error) {
	x, err := m.XYZ(c)
	if err != nil {
		return nil, err
	}
	return m.FromXYZ(x)
}

// FromJCh returns the appearance correlates of the color with the
// given lightness, chroma, and hue angle.
func (m *Model) FromJCh(j, c, h float64) (*CAM, error) {
	return m.FromCorrelates(Correlates{Set: JCh, Lightness: j, Chroma: c, Hue: h})
}

// FromUCS returns the appearance correlates of the color with the
// given coordinates in the uniform space.
func (m *Model) FromUCS(u UCS, sp UniformSpace) (*CAM, error) {
	return m.FromCorrelates(u.Correlates(sp))
}

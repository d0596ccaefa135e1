// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ciecam02 implements the CIECAM02 color appearance model
// (CIE 159:2004): viewing conditions, CAT02 chromatic adaptation, and
// the forward and inverse transforms between tristimulus values and
// the perceptual appearance correlates.
package ciecam02

import (
	"fmt"
	"math"
	"sync"
)

// DiscountAuto is the [Conditions.Discount] value requesting that the
// degree of adaptation be derived from the surround and the adapting
// luminance.
const DiscountAuto = -1

// Conditions are the parameters of the viewing environment, from
// which a [View] is resolved.
type Conditions struct {

	// AdaptingLuminance is the luminance La of the adapting field
	// in cd/m², typically 20% of the luminance of the white.
	AdaptingLuminance float64 `default:"64"`

	// BackgroundLuminance is the relative luminance Yb of the
	// background, on a scale where the white has Y = 100.
	BackgroundLuminance float64 `default:"20"`

	// Surround is the surround class of the viewing field.
	Surround Surrounds `default:"Average"`

	// Discount is the degree of adaptation D in [0, 1], where 1 fully
	// discounts the illuminant, or [DiscountAuto] to derive it.
	Discount float64 `default:"-1"`
}

// Defaults sets the conditions to the default values given
// in the struct tags.
func (c *Conditions) Defaults() {
	c.AdaptingLuminance = 64
	c.BackgroundLuminance = 20
	c.Surround = Average
	c.Discount = DiscountAuto
}

// Resolve returns the view for the conditions.
func (c Conditions) Resolve() (*View, error) {
	vw := &View{Conditions: c}
	if err := vw.Update(); err != nil {
		return nil, err
	}
	return vw, nil
}

// View holds viewing [Conditions] together with the model parameters
// derived from them. Use [Resolve] or [Conditions.Resolve] to make one.
type View struct {
	Conditions

	// F is the maximum degree of adaptation for the surround.
	F float64

	// C is the impact of the surround, the exponential nonlinearity.
	C float64

	// Nc is the chromatic induction factor.
	Nc float64

	// D is the resolved degree of adaptation in [0, 1].
	D float64

	// FL is the luminance level adaptation factor.
	FL float64

	// FLRoot is FL to the 1/4 power.
	FLRoot float64

	// N is the background induction factor Yb / Yw.
	N float64

	// Z is the base exponential nonlinearity.
	Z float64

	// Nbb is the brightness background induction factor.
	Nbb float64

	// Ncb is the chromatic background induction factor.
	Ncb float64
}

// Resolve returns the view for the given adapting luminance la,
// relative background luminance yb, surround, and degree of
// adaptation d, which may be [DiscountAuto].
func Resolve(la, yb float64, s Surrounds, d float64) (*View, error) {
	return Conditions{AdaptingLuminance: la, BackgroundLuminance: yb, Surround: s, Discount: d}.Resolve()
}

var stdView = sync.OnceValue(func() *View {
	var c Conditions
	c.Defaults()
	vw, _ := c.Resolve()
	return vw
})

// NewStdView returns the standard viewing conditions: an average
// surround, an adapting luminance of 64 cd/m², a background of 20%
// of the white, and a derived degree of adaptation. The returned
// view is shared and must not be modified.
func NewStdView() *View {
	return stdView()
}

// Update validates the conditions and computes all derived parameters.
func (vw *View) Update() error {
	la := vw.AdaptingLuminance
	yb := vw.BackgroundLuminance
	if !(la > 0) || math.IsInf(la, 0) {
		return fmt.Errorf("%w: adapting luminance must be positive, got %g", ErrInvalidViewingConditions, la)
	}
	if !(yb >= 0) || math.IsInf(yb, 0) {
		return fmt.Errorf("%w: background luminance must be non-negative, got %g", ErrInvalidViewingConditions, yb)
	}
	sp, err := vw.Surround.Params()
	if err != nil {
		return err
	}
	d := vw.Discount
	if d != DiscountAuto && !(d >= 0 && d <= 1) {
		return fmt.Errorf("%w: degree of adaptation must be in [0, 1], got %g", ErrInvalidViewingConditions, d)
	}
	vw.F, vw.C, vw.Nc = sp.F, sp.C, sp.Nc

	if d == DiscountAuto {
		d = DegreeOfAdaptation(sp.F, la)
	}
	vw.D = d

	vw.FL = LuminanceAdaptation(la)
	vw.FLRoot = math.Pow(vw.FL, 0.25)

	// a pure black background is non-physical and makes Nbb infinite
	vw.N = max(yb, 0.1) / 100
	vw.Z = 1.48 + math.Sqrt(vw.N)
	vw.Nbb = 0.725 * math.Pow(vw.N, -0.2)
	vw.Ncb = vw.Nbb
	return nil
}

// DegreeOfAdaptation returns the degree of adaptation D for the
// maximum degree of adaptation f and adapting luminance la,
// clamped to [0, 1].
func DegreeOfAdaptation(f, la float64) float64 {
	d := f * (1 - (1/3.6)*math.Exp((-la-42)/92))
	return min(max(d, 0), 1)
}

// LuminanceAdaptation returns the luminance level adaptation
// factor FL for the adapting luminance la.
func LuminanceAdaptation(la float64) float64 {
	la5 := 5 * la
	k := 1 / (la5 + 1)
	k4 := k * k * k * k
	k4m1 := 1 - k4
	return 0.2*k4*la5 + 0.1*k4m1*k4m1*math.Cbrt(la5)
}

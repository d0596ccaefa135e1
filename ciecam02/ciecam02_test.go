// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ciecam02

import (
	"fmt"
	"math"
	"testing"

	"cogentcore.org/ciecam/cie"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/tolassert"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stimuli are chromatic test colors relative to the D65 white.
var stimuli = []cie.XYZ{
	{X: 41.24, Y: 21.26, Z: 1.93},
	{X: 20, Y: 30, Z: 40},
	{X: 35.76, Y: 71.52, Z: 11.92},
	{X: 18.05, Y: 7.22, Z: 95.05},
	{X: 5, Y: 5, Z: 5},
	{X: 60, Y: 50, Z: 20},
}

var approx = cmpopts.EquateApprox(1e-6, 1e-9)

func TestView(t *testing.T) {
	vw := NewStdView()
	tolassert.EqualTol(t, 64, vw.AdaptingLuminance, 0)
	tolassert.EqualTol(t, 1, vw.F, 0)
	tolassert.EqualTol(t, 0.69, vw.C, 0)
	tolassert.EqualTol(t, 1, vw.Nc, 0)
	tolassert.EqualTol(t, 0.9122363399, vw.D, 1e-9)
	tolassert.EqualTol(t, 0.6839903846, vw.FL, 1e-9)
	tolassert.EqualTol(t, 0.9094158081, vw.FLRoot, 1e-9)
	tolassert.EqualTol(t, 0.2, vw.N, 1e-15)
	tolassert.EqualTol(t, 1.9272135955, vw.Z, 1e-9)
	tolassert.EqualTol(t, 1.0003040046, vw.Nbb, 1e-9)
	assert.Equal(t, vw.Nbb, vw.Ncb)
	assert.Same(t, vw, NewStdView())

	// pure black background is raised to 0.1
	vw, err := Resolve(64, 0, Average, DiscountAuto)
	require.NoError(t, err)
	tolassert.EqualTol(t, 0.001, vw.N, 1e-15)
	tolassert.EqualTol(t, 2.886276987, vw.Nbb, 1e-8)
}

func TestSurrounds(t *testing.T) {
	tests := []struct {
		s       Surrounds
		f, c, n float64
		d       float64
	}{
		{Average, 1.0, 0.69, 1.0, 0.9122363399},
		{Dim, 0.9, 0.59, 0.9, 0.8210127059},
		{Dark, 0.8, 0.525, 0.8, 0.7297890719},
	}
	for _, test := range tests {
		vw, err := Resolve(64, 20, test.s, DiscountAuto)
		require.NoError(t, err)
		assert.Equal(t, test.f, vw.F, test.s.String())
		assert.Equal(t, test.c, vw.C, test.s.String())
		assert.Equal(t, test.n, vw.Nc, test.s.String())
		tolassert.EqualTol(t, test.d, vw.D, 1e-9)

		// the surround constants do not depend on the luminances
		other, err := Resolve(1000, 5, test.s, DiscountAuto)
		require.NoError(t, err)
		assert.Equal(t, vw.F, other.F)
		assert.Equal(t, vw.C, other.C)
		assert.Equal(t, vw.Nc, other.Nc)
		assert.NotEqual(t, vw.FL, other.FL)
	}

	var s Surrounds
	require.NoError(t, s.SetString("Dim"))
	assert.Equal(t, Dim, s)
	assert.Error(t, s.SetString("Bright"))
}

func TestDegreeOfAdaptation(t *testing.T) {
	tolassert.EqualTol(t, 0.9999966516, DegreeOfAdaptation(1, 1000), 1e-9)
	tolassert.EqualTol(t, 0.6592412478, DegreeOfAdaptation(0.8, 0.01), 1e-9)
	assert.Equal(t, 1.0, DegreeOfAdaptation(1, 1e6))

	vw, err := Resolve(64, 20, Dark, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, vw.D)
}

func TestInvalidViewingConditions(t *testing.T) {
	tests := []Conditions{
		{AdaptingLuminance: 0, BackgroundLuminance: 20},
		{AdaptingLuminance: -5, BackgroundLuminance: 20},
		{AdaptingLuminance: math.NaN(), BackgroundLuminance: 20},
		{AdaptingLuminance: math.Inf(1), BackgroundLuminance: 20},
		{AdaptingLuminance: 64, BackgroundLuminance: -1},
		{AdaptingLuminance: 64, BackgroundLuminance: 20, Surround: SurroundsN},
		{AdaptingLuminance: 64, BackgroundLuminance: 20, Discount: 1.5},
		{AdaptingLuminance: 64, BackgroundLuminance: 20, Discount: -0.5},
		{AdaptingLuminance: 64, BackgroundLuminance: 20, Discount: math.NaN()},
	}
	for _, c := range tests {
		vw, err := c.Resolve()
		assert.Nil(t, vw)
		assert.True(t, errors.Is(err, ErrInvalidViewingConditions), fmt.Sprintf("%+v: %v", c, err))
	}
}

func TestCAT02(t *testing.T) {
	vw := NewStdView()
	x := cie.XYZ{X: 20, Y: 30, Z: 40}
	a, err := Adapt(x, cie.WhiteD65, vw)
	require.NoError(t, err)
	tolassert.EqualTol(t, 22.073929064, a.L, 1e-8)
	tolassert.EqualTol(t, 35.940257655, a.M, 1e-8)
	tolassert.EqualTol(t, 36.891456479, a.S, 1e-8)

	back, err := Unadapt(a, cie.WhiteD65, vw)
	require.NoError(t, err)
	tolassert.EqualTol(t, x.X, back.X, 1e-12)
	tolassert.EqualTol(t, x.Y, back.Y, 1e-12)
	tolassert.EqualTol(t, x.Z, back.Z, 1e-12)

	// no adaptation at all for D = 0
	vw0, err := Resolve(64, 20, Average, 0)
	require.NoError(t, err)
	a, err = Adapt(x, cie.WhiteD65, vw0)
	require.NoError(t, err)
	assert.Equal(t, XYZToLMS(x), a)

	// complete adaptation maps the white to equal energy
	vw1, err := Resolve(64, 20, Average, 1)
	require.NoError(t, err)
	w, err := Adapt(cie.WhiteD50, cie.WhiteD50, vw1)
	require.NoError(t, err)
	tolassert.EqualTol(t, 100, w.L, 1e-12)
	tolassert.EqualTol(t, 100, w.M, 1e-12)
	tolassert.EqualTol(t, 100, w.S, 1e-12)
}

func TestSingularWhitePoint(t *testing.T) {
	vw := NewStdView()
	for _, w := range []cie.XYZ{{}, {X: 10, Y: 0, Z: 10}, {X: math.NaN(), Y: 100, Z: 100}, LMSToXYZ(LMS{0, 50, 50})} {
		_, err := Adapt(cie.XYZ{X: 20, Y: 30, Z: 40}, w, vw)
		assert.True(t, errors.Is(err, ErrSingularWhitePoint), w.String())
		_, err = NewModel(w, vw)
		assert.True(t, errors.Is(err, ErrSingularWhitePoint), w.String())
	}
	_, err := Adapt(cie.XYZ{X: 20, Y: 30, Z: 40}, cie.WhiteD65, nil)
	assert.True(t, errors.Is(err, ErrInvalidViewingConditions))
	_, err = Adapt(cie.XYZ{X: math.Inf(1), Y: 30, Z: 40}, cie.WhiteD65, vw)
	assert.True(t, errors.Is(err, cie.ErrInvalidTristimulus))
}

// TestWorkedExample checks the worked example of CIE 159:2004,
// whose background of Yb = 18 is on the scale of a white with Yw = 90.
func TestWorkedExample(t *testing.T) {
	vw, err := Resolve(200, 20, Average, DiscountAuto)
	require.NoError(t, err)
	tolassert.EqualTol(t, 0.9799869082, vw.D, 1e-9)
	tolassert.EqualTol(t, 1.0, vw.FL, 1e-9)

	white := cie.XYZ{X: 98.88, Y: 90, Z: 32.03}
	stim := cie.XYZ{X: 19.31, Y: 23.93, Z: 10.14}
	s, err := Adapt(stim, white, vw)
	require.NoError(t, err)
	w, err := Adapt(white, white, vw)
	require.NoError(t, err)
	cam, err := Forward(s, w, vw)
	require.NoError(t, err)

	want := &CAM{
		Lightness:      48.03141006,
		Chroma:         38.77889047,
		Hue:            191.04523657,
		HueComposition: 240.88844534,
		Brightness:     183.12403962,
		Colorfulness:   38.77889047,
		Saturation:     46.01771070,
		RedGreen:       -0.57734006,
		YellowBlue:     -0.11269666,
	}
	if diff := cmp.Diff(want, cam, cmpopts.EquateApprox(0, 1e-7)); diff != "" {
		t.Errorf("worked example mismatch (-want +got):\n%s", diff)
	}
	h, err := cam.HueAngle()
	require.NoError(t, err)
	assert.Equal(t, cam.Hue, h)

	back, err := Inverse(cam.Correlates(JCh), vw, white)
	require.NoError(t, err)
	tolassert.EqualTol(t, stim.X, back.X, 1e-9)
	tolassert.EqualTol(t, stim.Y, back.Y, 1e-9)
	tolassert.EqualTol(t, stim.Z, back.Z, 1e-9)

	m, err := NewModel(white, vw)
	require.NoError(t, err)
	tolassert.EqualTol(t, 41.57973452, m.AchromaticWhite(), 1e-7)
}

func TestForward(t *testing.T) {
	m := NewStdModel()
	tests := []struct {
		x                   cie.XYZ
		j, c, h, hc, q, mm, s float64
	}{
		{stimuli[0], 47.245048, 112.2867, 32.27687, 15.53894, 149.177484, 102.1153, 82.735857},
		{stimuli[1], 49.854872, 46.443156, 195.9112, 247.723114, 153.242397, 42.23614, 52.499195},
		{stimuli[2], 79.897427, 105.517245, 136.206154, 170.182818, 193.995444, 95.959051, 70.331067},
		{stimuli[3], 21.179422, 90.88971, 257.761252, 309.927043, 99.88084, 82.656539, 90.969858},
		{stimuli[4], 19.461172, 4.356044, 29.632706, 12.0951, 95.743572, 3.961456, 20.341013},
	}
	for _, test := range tests {
		cam, err := m.FromXYZ(test.x)
		require.NoError(t, err)
		tolassert.EqualTol(t, test.j, cam.Lightness, 1e-5)
		tolassert.EqualTol(t, test.c, cam.Chroma, 1e-4)
		tolassert.EqualTol(t, test.h, cam.Hue, 1e-5)
		tolassert.EqualTol(t, test.hc, cam.HueComposition, 1e-5)
		tolassert.EqualTol(t, test.q, cam.Brightness, 1e-5)
		tolassert.EqualTol(t, test.mm, cam.Colorfulness, 1e-4)
		tolassert.EqualTol(t, test.s, cam.Saturation, 1e-5)
		assert.False(t, cam.IsAchromatic())
	}
	_, err := Forward(LMS{}, LMS{}, nil)
	assert.True(t, errors.Is(err, ErrInvalidViewingConditions))
	_, err = Forward(LMS{1, 1, 1}, LMS{}, NewStdView())
	assert.True(t, errors.Is(err, ErrInvalidViewingConditions))
}

func TestAchromatic(t *testing.T) {
	m := NewStdModel()
	cam, err := m.FromXYZ(cie.WhiteD65)
	require.NoError(t, err)
	tolassert.EqualTol(t, 100, cam.Lightness, 1e-9)
	assert.Equal(t, 0.0, cam.Chroma)
	assert.Equal(t, 0.0, cam.Colorfulness)
	assert.Equal(t, 0.0, cam.Saturation)
	assert.Equal(t, float64(HueUndefined), cam.Hue)
	assert.Equal(t, float64(HueUndefined), cam.HueComposition)
	assert.True(t, cam.IsAchromatic())
	tolassert.EqualTol(t, 217.0326799393, cam.Brightness, 1e-8)
	_, err = cam.HueAngle()
	assert.True(t, errors.Is(err, ErrHueUndefined))

	// the white point on another scale is the same white
	cam, err = m.FromXYZ(cie.WhiteD65.Scale(1 + 1e-14))
	require.NoError(t, err)
	assert.True(t, cam.IsAchromatic())

	// black
	cam, err = m.FromXYZ(cie.XYZ{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, cam.Lightness)
	assert.Equal(t, 0.0, cam.Brightness)
	assert.True(t, cam.IsAchromatic())
	x, err := m.XYZ(cam.Correlates(JCh))
	require.NoError(t, err)
	tolassert.EqualTol(t, 0, x.Y, 1e-12)

	// achromatic correlates can be inverted
	x, err = m.XYZ(Correlates{Set: JCh, Lightness: 50, Hue: HueUndefined})
	require.NoError(t, err)
	back, err := m.FromXYZ(x)
	require.NoError(t, err)
	tolassert.EqualTol(t, 50, back.Lightness, 1e-9)
	tolassert.EqualTol(t, 0, back.Chroma, 1e-9)
}

func TestNegativeAchromaticResponse(t *testing.T) {
	m := NewStdModel()
	// a dark saturated blue: physical, but outside of the model's range
	blue := cie.XYZ{X: 1.5, Y: 1.5, Z: 80}
	_, err := m.FromXYZ(blue)
	assert.True(t, errors.Is(err, ErrNonInvertible))

	s, err := Adapt(blue, cie.WhiteD65, m.View)
	require.NoError(t, err)
	w, err := Adapt(cie.WhiteD65, cie.WhiteD65, m.View)
	require.NoError(t, err)
	_, err = Forward(s, w, m.View)
	assert.True(t, errors.Is(err, ErrNonInvertible))

	// a less extreme blue stays in range and round trips
	x := cie.XYZ{X: 5, Y: 4, Z: 60}
	cam, err := m.FromXYZ(x)
	require.NoError(t, err)
	assert.Greater(t, cam.Lightness, 0.0)
	back, err := m.XYZ(cam.Correlates(JCh))
	require.NoError(t, err)
	tolassert.EqualTol(t, x.Z, back.Z, 1e-8)
}

func TestRoundTrip(t *testing.T) {
	views := []Conditions{
		{AdaptingLuminance: 64, BackgroundLuminance: 20, Surround: Average, Discount: DiscountAuto},
		{AdaptingLuminance: 200, BackgroundLuminance: 18, Surround: Dim, Discount: 0.5},
		{AdaptingLuminance: 4, BackgroundLuminance: 10, Surround: Dark, Discount: DiscountAuto},
		{AdaptingLuminance: 318.31, BackgroundLuminance: 20, Surround: Average, Discount: 1},
	}
	for _, c := range views {
		vw, err := c.Resolve()
		require.NoError(t, err)
		for _, white := range []cie.XYZ{cie.WhiteD65, cie.WhiteD50, cie.A.WhitePoint()} {
			m, err := NewModel(white, vw)
			require.NoError(t, err)
			for _, x := range stimuli {
				cam, err := m.FromXYZ(x)
				require.NoError(t, err)
				for _, set := range CorrelateSetsValues() {
					back, err := Inverse(cam.Correlates(set), vw, white)
					require.NoError(t, err, set.String())
					tolassert.EqualTol(t, x.X, back.X, 1e-8)
					tolassert.EqualTol(t, x.Y, back.Y, 1e-8)
					tolassert.EqualTol(t, x.Z, back.Z, 1e-8)

					again, err := m.FromCorrelates(cam.Correlates(set))
					require.NoError(t, err)
					if diff := cmp.Diff(cam, again, approx); diff != "" {
						t.Errorf("%v %v %v round trip mismatch (-want +got):\n%s", c, white, set, diff)
					}
				}
			}
		}
	}
}

func TestFromJCh(t *testing.T) {
	m := NewStdModel()
	cam, err := m.FromJCh(50, 30, 120)
	require.NoError(t, err)
	tolassert.EqualTol(t, 50, cam.Lightness, 1e-9)
	tolassert.EqualTol(t, 30, cam.Chroma, 1e-9)
	tolassert.EqualTol(t, 120, cam.Hue, 1e-9)

	cam, err = m.FromJCh(70, 0, HueUndefined)
	require.NoError(t, err)
	tolassert.EqualTol(t, 0, cam.Chroma, 1e-9)
	tolassert.EqualTol(t, 70, cam.Lightness, 1e-9)

	_, err = m.FromJCh(50, 30, HueUndefined)
	assert.True(t, errors.Is(err, ErrHueUndefined))
}

func TestInverseErrors(t *testing.T) {
	m := NewStdModel()
	tests := []struct {
		c   Correlates
		err error
	}{
		{Correlates{Set: CorrelateSetsN, Lightness: 50, Chroma: 10, Hue: 30}, ErrNonInvertible},
		{Correlates{Set: JCh, Lightness: -1, Chroma: 10, Hue: 30}, ErrNonInvertible},
		{Correlates{Set: JCh, Lightness: 50, Chroma: math.NaN(), Hue: 30}, ErrNonInvertible},
		{Correlates{Set: JCh, Lightness: 50, Chroma: 10, Hue: math.Inf(1)}, ErrNonInvertible},
		{Correlates{Set: QMh, Brightness: -3, Colorfulness: 10, Hue: 30}, ErrNonInvertible},
		{Correlates{Set: JCh, Lightness: 1e6, Hue: HueUndefined}, ErrNonInvertible},
		{Correlates{Set: JCh, Lightness: 0, Chroma: 10, Hue: 30}, ErrNonInvertible},
		{Correlates{Set: JCQuadrature, Lightness: 50, Chroma: 10, HueComposition: 450}, ErrNonInvertible},
		{Correlates{Set: JCh, Lightness: 50, Chroma: 10, Hue: HueUndefined}, ErrHueUndefined},
		{Correlates{Set: QMQuadrature, Brightness: 100, Colorfulness: 10, HueComposition: HueUndefined}, ErrHueUndefined},
	}
	for _, test := range tests {
		_, err := m.XYZ(test.c)
		assert.True(t, errors.Is(err, test.err), fmt.Sprintf("%+v: %v", test.c, err))
	}

	// -1 is reserved for an undefined hue; the same angle is 359
	_, err := m.XYZ(Correlates{Set: JCh, Lightness: 50, Chroma: 20, Hue: -1})
	assert.True(t, errors.Is(err, ErrHueUndefined))
	x359, err := m.XYZ(Correlates{Set: JCh, Lightness: 50, Chroma: 20, Hue: 359})
	require.NoError(t, err)
	xm361, err := m.XYZ(Correlates{Set: JCh, Lightness: 50, Chroma: 20, Hue: -361})
	require.NoError(t, err)
	tolassert.EqualTol(t, x359.X, xm361.X, 1e-9)
	tolassert.EqualTol(t, x359.Z, xm361.Z, 1e-9)

	// lower level errors surface unchanged
	_, err = Inverse(Correlates{Lightness: 50, Chroma: 10, Hue: 30}, nil, cie.WhiteD65)
	assert.True(t, errors.Is(err, ErrInvalidViewingConditions))
	_, err = Inverse(Correlates{Lightness: 50, Chroma: 10, Hue: 30}, NewStdView(), cie.XYZ{})
	assert.True(t, errors.Is(err, ErrSingularWhitePoint))
}

func TestCompression(t *testing.T) {
	for _, fl := range []float64{0.1, 0.684, 1, 3} {
		for _, x := range []float64{-50, -1, 0, 1e-6, 1, 30, 100, 1000} {
			c := ResponseCompression(x, fl)
			back, err := ResponseDecompression(c, fl)
			require.NoError(t, err)
			tolassert.EqualTol(t, x, back, 1e-9*max(1, math.Abs(x)))
		}
	}
	assert.Equal(t, 0.1, ResponseCompression(0, 1))
	_, err := ResponseDecompression(401, 1)
	assert.True(t, errors.Is(err, ErrNonInvertible))
	_, err = ResponseDecompression(-401, 1)
	assert.True(t, errors.Is(err, ErrNonInvertible))
	_, err = ResponseDecompression(math.NaN(), 1)
	assert.True(t, errors.Is(err, ErrNonInvertible))
}

func TestHueComposition(t *testing.T) {
	tolassert.EqualTol(t, 0, HueComposition(20.14), 1e-12)
	tolassert.EqualTol(t, 100, HueComposition(90), 1e-12)
	tolassert.EqualTol(t, 200, HueComposition(164.25), 1e-12)
	tolassert.EqualTol(t, 300, HueComposition(237.53), 1e-12)
	tolassert.EqualTol(t, 240.88844534, HueComposition(191.04523657), 1e-7)
	tolassert.EqualTol(t, 389.70070423, HueComposition(10), 1e-7)
	tolassert.EqualTol(t, 389.70070423, HueComposition(370), 1e-7)

	for h := 1.25; h < 360; h += 7.5 {
		H := HueComposition(h)
		assert.True(t, H >= 0 && H < 400, "%g: %g", h, H)
		back, err := HueFromComposition(H)
		require.NoError(t, err)
		tolassert.EqualTol(t, h, back, 1e-9)
	}
	h, err := HueFromComposition(400)
	require.NoError(t, err)
	tolassert.EqualTol(t, 20.14, h, 1e-9)
	h, err = HueFromComposition(50)
	require.NoError(t, err)
	tolassert.EqualTol(t, 57.398666667, h, 1e-8)

	assert.Equal(t, "red", HueName(0))
	assert.Equal(t, "yellow", HueName(100))
	assert.Equal(t, "59% green 41% blue", HueName(240.88844534))
	assert.Equal(t, "achromatic", HueName(HueUndefined))
}

func TestUCS(t *testing.T) {
	m := NewStdModel()
	cam, err := m.FromXYZ(stimuli[0])
	require.NoError(t, err)

	tests := []struct {
		sp      UniformSpace
		j, a, b float64
	}{
		{CAM02LCD, 60.355944534, 69.005085413, 43.584223405},
		{CAM02SCD, 60.355944534, 36.078484672, 22.787490613},
		{CAM02UCS, 60.355944534, 44.589306420, 28.163001044},
	}
	for _, test := range tests {
		u := cam.UCS(test.sp)
		tolassert.EqualTol(t, test.j, u.J, 1e-6)
		tolassert.EqualTol(t, test.a, u.A, 1e-5)
		tolassert.EqualTol(t, test.b, u.B, 1e-5)

		back, err := m.FromUCS(u, test.sp)
		require.NoError(t, err)
		if diff := cmp.Diff(cam, back, approx); diff != "" {
			t.Errorf("%s round trip mismatch (-want +got):\n%s", test.sp.Name, diff)
		}
	}

	grey := &CAM{Lightness: 50, Hue: HueUndefined, HueComposition: HueUndefined}
	u := grey.UCS(CAM02UCS)
	assert.Equal(t, 0.0, u.A)
	assert.Equal(t, 0.0, u.B)
	c := u.Correlates(CAM02UCS)
	tolassert.EqualTol(t, 50, c.Lightness, 1e-12)
	assert.Equal(t, float64(HueUndefined), c.Hue)

	tolassert.EqualTol(t, 5, UCS{J: 50, A: 3}.Distance(UCS{J: 50, B: 4}, CAM02UCS), 1e-12)
	tolassert.EqualTol(t, 10/1.24, UCS{J: 60}.Distance(UCS{J: 50}, CAM02SCD), 1e-12)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/ciecam/cie"
	"cogentcore.org/ciecam/ciecam02"
	"cogentcore.org/ciecam/deltae"
	"cogentcore.org/ciecam/spectra"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func xyz(x, y, z float64) *cie.XYZ {
	return &cie.XYZ{X: x, Y: y, Z: z}
}

func TestConfigDefaults(t *testing.T) {
	c := NewConfig()
	assert.Equal(t, cie.D65, c.Illuminant)
	assert.Equal(t, spectra.CIE1931, c.Observer)
	assert.Equal(t, deltae.CIEDE2000, c.Formula)
	assert.Equal(t, deltae.Default, c.Variant)
	assert.Equal(t, 64.0, c.View.AdaptingLuminance)
	assert.Equal(t, ciecam02.Average, c.View.Surround)
	assert.Equal(t, cie.WhiteD65, c.WhitePoint())
	assert.Greater(t, c.NumWorkers(), 0)

	c.Workers = 3
	c.White = cie.XYZ{X: 98.88, Y: 90, Z: 32.03}
	assert.Equal(t, 3, c.NumWorkers())
	assert.Equal(t, c.White, c.WhitePoint())
}

func TestReadConfig(t *testing.T) {
	c, err := ReadConfig(strings.NewReader(`
Workers = 2
Illuminant = "D50"
Formula = "CAM02UCS"
Variant = "SmallDifference"

[View]
AdaptingLuminance = 31.83
Surround = "Dim"
`))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Workers)
	assert.Equal(t, cie.D50, c.Illuminant)
	assert.Equal(t, deltae.CAM02UCS, c.Formula)
	assert.Equal(t, deltae.SmallDifference, c.Variant)
	assert.Equal(t, 31.83, c.View.AdaptingLuminance)
	assert.Equal(t, ciecam02.Dim, c.View.Surround)
	// unset values keep their defaults
	assert.Equal(t, 20.0, c.View.BackgroundLuminance)
	assert.Equal(t, float64(ciecam02.DiscountAuto), c.View.Discount)
	assert.Equal(t, spectra.CIE1931, c.Observer)

	_, err = ReadConfig(strings.NewReader(`Illuminant = "D93"`))
	assert.Error(t, err)
	_, err = ReadConfig(strings.NewReader(`Observer = "CIE2006"`))
	assert.Error(t, err)
	_, err = ReadConfig(strings.NewReader(`Workerz = 2`))
	assert.Error(t, err)
	_, err = ReadConfig(strings.NewReader("[View]\nSurround = \"Bright\""))
	assert.True(t, errors.Is(err, ciecam02.ErrInvalidViewingConditions))
	_, err = ReadConfig(strings.NewReader(`Formula = "CIE2024"`))
	assert.True(t, errors.Is(err, deltae.ErrUnsupportedFormulaVariant))
	_, err = ReadConfig(strings.NewReader(`Variant = "Paint"`))
	assert.True(t, errors.Is(err, deltae.ErrUnsupportedFormulaVariant))
}

func TestReadYAMLConfig(t *testing.T) {
	c, err := ReadYAMLConfig(strings.NewReader(`
workers: 2
illuminant: A
white: {x: 109.85, y: 100, z: 35.585}
formula: CIE94
variant: Textiles
view:
  adaptingluminance: 200
  surround: Dark
  discount: 1
`))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Workers)
	assert.Equal(t, cie.A, c.Illuminant)
	assert.Equal(t, cie.XYZ{X: 109.85, Y: 100, Z: 35.585}, c.WhitePoint())
	assert.Equal(t, deltae.CIE94, c.Formula)
	assert.Equal(t, deltae.Textiles, c.Variant)
	assert.Equal(t, 200.0, c.View.AdaptingLuminance)
	assert.Equal(t, ciecam02.Dark, c.View.Surround)
	assert.Equal(t, 1.0, c.View.Discount)
	assert.Equal(t, 20.0, c.View.BackgroundLuminance)

	c, err = ReadYAMLConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), c)

	_, err = ReadYAMLConfig(strings.NewReader("surround: Dim"))
	assert.Error(t, err)
	_, err = ReadYAMLConfig(strings.NewReader("formula: CIE2024"))
	assert.True(t, errors.Is(err, deltae.ErrUnsupportedFormulaVariant))
	_, err = ReadYAMLConfig(strings.NewReader("view:\n  surround: Bright"))
	assert.True(t, errors.Is(err, ciecam02.ErrInvalidViewingConditions))
	_, err = ReadYAMLConfig(strings.NewReader("illuminant: D93"))
	assert.Error(t, err)
}

func TestOpenConfig(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "batch.toml")
	c := NewConfig()
	c.Workers = 5
	c.Formula = deltae.CIE94
	c.Variant = deltae.Textiles
	c.View.Surround = ciecam02.Dark
	require.NoError(t, c.Save(fn))

	got, err := OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	yfn := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, c.Save(yfn))
	got, err = OpenConfig(yfn)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	_, err = OpenConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestEvaluate(t *testing.T) {
	cfg := NewConfig()
	cfg.Workers = 2
	refl := spectra.Flat(spectra.Domain{Start: 380, End: 780, Step: 5}, 1)
	records := []Record{
		{ID: "red", Hex: "#ff0000"},
		{ID: "grey", XYZ: xyz(19.0, 20.0, 21.8)},
		{ID: "empty"},
		{ID: "nan", XYZ: xyz(math.NaN(), 1, 1)},
		{ID: "white", Spectrum: &refl},
		{ID: "bad-hex", Hex: "#zz"},
	}
	res, err := Evaluate(context.Background(), cfg, records)
	require.NoError(t, err)
	require.Len(t, res, len(records))

	m := ciecam02.NewStdModel()
	for i, r := range res {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, records[i].ID, r.ID)
	}
	require.NoError(t, res[0].Err)
	tolassert.EqualTol(t, 21.2639, res[0].XYZ.Y, 1e-3)
	want, err := m.FromXYZ(res[0].XYZ)
	require.NoError(t, err)
	assert.Equal(t, want, res[0].CAM)
	tolassert.EqualTol(t, 53.237, res[0].Lab.L, 1e-2)

	require.NoError(t, res[1].Err)
	assert.Equal(t, *records[1].XYZ, res[1].XYZ)

	assert.True(t, errors.Is(res[2].Err, ErrNoColor))
	assert.True(t, errors.Is(res[3].Err, cie.ErrInvalidTristimulus))
	assert.Nil(t, res[3].CAM)

	// the perfect reflector is the white of spectral records
	require.NoError(t, res[4].Err)
	tolassert.EqualTol(t, 100, res[4].XYZ.Y, 1e-9)
	tolassert.EqualTol(t, cie.WhiteD65.X, res[4].XYZ.X, 0.05)
	assert.Equal(t, cie.Lab{L: 100}, res[4].Lab)
	tolassert.EqualTol(t, 100, res[4].CAM.Lightness, 1e-9)
	assert.True(t, res[4].CAM.IsAchromatic())

	assert.Error(t, res[5].Err)
}

func TestEvaluateSpectralIlluminants(t *testing.T) {
	d := spectra.Domain{Start: 380, End: 780, Step: 5}
	for _, il := range cie.IlluminantsValues() {
		sd, err := IlluminantSpectrum(il, d)
		require.NoError(t, err, il.String())
		assert.Equal(t, d, sd.Domain)
	}
	_, err := IlluminantSpectrum(cie.Illuminants(42), d)
	assert.Error(t, err)

	flat := spectra.Flat(d, 1)
	white := Record{ID: "white", Spectrum: &flat}
	half := spectra.Flat(d, 0.5)
	for _, obs := range spectra.ObserversValues() {
		for _, il := range cie.IlluminantsValues() {
			cfg := NewConfig()
			cfg.Illuminant = il
			cfg.Observer = obs
			res, err := Evaluate(context.Background(), cfg, []Record{white, {Spectrum: &half}})
			require.NoError(t, err)
			require.NoError(t, res[0].Err)
			require.NoError(t, res[1].Err)
			assert.Equal(t, cie.Lab{L: 100}, res[0].Lab, "%v %v", obs, il)
			assert.True(t, res[0].CAM.IsAchromatic(), "%v %v", obs, il)
			tolassert.EqualTol(t, 100, res[0].CAM.Lightness, 1e-9)
			tolassert.EqualTol(t, 50, res[1].XYZ.Y, 1e-9)
			tolassert.EqualTol(t, res[0].XYZ.X/2, res[1].XYZ.X, 1e-9)
			tolassert.EqualTol(t, 0, res[1].CAM.Chroma, 1e-6)
		}
	}

	// CIE 1931 spectral whites are near the tabulated white points
	cfg := NewConfig()
	cfg.Illuminant = cie.F2
	res, err := Evaluate(context.Background(), cfg, []Record{white})
	require.NoError(t, err)
	tolassert.EqualTol(t, cie.F2.WhitePoint().X, res[0].XYZ.X, 0.05)
	tolassert.EqualTol(t, cie.F2.WhitePoint().Z, res[0].XYZ.Z, 0.05)

	// an explicit white is used for spectral records too
	cfg = NewConfig()
	cfg.White = cie.XYZ{X: 98.88, Y: 90, Z: 32.03}
	res, err = Evaluate(context.Background(), cfg, []Record{white})
	require.NoError(t, err)
	require.NoError(t, res[0].Err)
	assert.False(t, res[0].CAM.IsAchromatic())
}

func TestDifferences(t *testing.T) {
	cfg := NewConfig()
	pairs := []Pair{
		{ID: "same", Ref: Record{Hex: "#336699"}, Test: Record{Hex: "#336699"}},
		{ID: "near", Ref: Record{Hex: "#336699"}, Test: Record{Hex: "#33669a"}},
		{ID: "far", Ref: Record{XYZ: xyz(20, 30, 40)}, Test: Record{XYZ: xyz(40, 30, 20)}},
		{ID: "no-ref", Test: Record{Hex: "#336699"}},
		{ID: "no-test", Ref: Record{Hex: "#336699"}},
	}
	ev, err := NewEvaluator(cfg)
	require.NoError(t, err)
	res, err := ev.CompareAll(context.Background(), pairs)
	require.NoError(t, err)

	assert.NoError(t, res[0].Err)
	assert.Equal(t, 0.0, res[0].DeltaE)
	assert.NoError(t, res[1].Err)
	assert.Less(t, res[1].DeltaE, deltae.JND)
	assert.Greater(t, res[1].DeltaE, 0.0)

	ref := ev.Evaluate(pairs[2].Ref)
	test := ev.Evaluate(pairs[2].Test)
	want, err := deltae.Difference(ref.Sample(), test.Sample(), deltae.CIEDE2000, deltae.Default)
	require.NoError(t, err)
	assert.Equal(t, want, res[2].DeltaE)
	assert.Equal(t, 2, res[2].Index)

	assert.True(t, errors.Is(res[3].Err, ErrNoColor))
	assert.Contains(t, res[3].Err.Error(), "reference")
	assert.True(t, errors.Is(res[4].Err, ErrNoColor))
	assert.Contains(t, res[4].Err.Error(), "test")

	cfg = NewConfig()
	cfg.Formula = deltae.CAM02UCS
	cfg.Variant = deltae.Textiles
	res, err = Differences(context.Background(), cfg, pairs[:1])
	require.NoError(t, err)
	assert.True(t, errors.Is(res[0].Err, deltae.ErrUnsupportedFormulaVariant))
}

func TestInvalidConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.View.AdaptingLuminance = -1
	_, err := Evaluate(context.Background(), cfg, nil)
	assert.True(t, errors.Is(err, ciecam02.ErrInvalidViewingConditions))

	cfg = NewConfig()
	cfg.Observer = spectra.Observers(9)
	_, err = NewEvaluator(cfg)
	assert.Error(t, err)

	cfg = NewConfig()
	cfg.Illuminant = cie.Illuminants(42)
	_, err = NewEvaluator(cfg)
	assert.Error(t, err)
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	records := make([]Record, 10)
	for i := range records {
		records[i].XYZ = xyz(10, 10, 10)
	}
	_, err := Evaluate(ctx, NewConfig(), records)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	cfg := NewConfig()
	cfg.Workers = 1
	_, err := Evaluate(context.Background(), cfg, []Record{{ID: "missing"}, {ID: "ok", Hex: "#fff"}})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "batch record failed")
	assert.Contains(t, out, "id=missing")
	assert.Contains(t, out, "failed=1")
	assert.NotContains(t, out, "id=ok")

	SetLogger(nil)
	buf.Reset()
	Logger().Warn("hidden")
	assert.Empty(t, buf.String())
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batch evaluates the appearance and color differences of
// many colors at once under shared settings, isolating per-record
// failures so that one bad record does not fail the batch.
package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cogentcore.org/ciecam/cie"
	"cogentcore.org/ciecam/ciecam02"
	"cogentcore.org/ciecam/deltae"
	"cogentcore.org/ciecam/spectra"
	"cogentcore.org/core/base/errors"
	"golang.org/x/sync/errgroup"
)

// ErrNoColor is returned for a record without any color data.
var ErrNoColor = errors.New("record has no color")

// Record is one color to evaluate. The color is taken from the first
// of Spectrum, Hex, and XYZ that is set.
type Record struct {

	// ID identifies the record in results and logs.
	ID string

	// Spectrum is a spectral reflectance factor, integrated under
	// the configured illuminant and observer.
	Spectrum *spectra.Distribution

	// Hex is an sRGB color in "#rrggbb" or "#rgb" form, with the
	// D65 white at Y = 100.
	Hex string

	// XYZ is a tristimulus value on the scale of the white point.
	XYZ *cie.XYZ
}

// Result is the evaluation of one record.
type Result struct {

	// Index of the record in the batch.
	Index int

	// ID of the record.
	ID string

	// XYZ is the tristimulus value of the record.
	XYZ cie.XYZ

	// Lab is the CIELAB value relative to the white point.
	Lab cie.Lab

	// CAM are the appearance correlates.
	CAM *ciecam02.CAM

	// Err is the error evaluating the record, if any.
	Err error
}

// Sample returns the result as a color difference sample.
func (r *Result) Sample() deltae.Sample {
	return deltae.Sample{Lab: &r.Lab, CAM: r.CAM}
}

// Pair is a reference and a test color to compare.
type Pair struct {

	// ID identifies the pair in results and logs.
	ID string

	// Ref is the reference color.
	Ref Record

	// Test is the test color.
	Test Record
}

// Comparison is the color difference of one pair.
type Comparison struct {

	// Index of the pair in the batch.
	Index int

	// ID of the pair.
	ID string

	// DeltaE is the color difference of the test from the reference.
	DeltaE float64

	// Err is the error comparing the pair, if any.
	Err error
}

// Evaluator evaluates records under the settings of a [Config].
// It is safe for concurrent use.
type Evaluator struct {

	// Config are the settings.
	Config *Config

	// Model is the appearance model for the configured white and view,
	// used for tristimulus and sRGB records.
	Model *ciecam02.Model

	observer *spectra.Observer

	// spectral are the models for spectral records, by domain.
	spectral sync.Map
}

// NewEvaluator returns an evaluator for the config, or an error if the
// viewing conditions, white point, observer, or illuminant are invalid.
func NewEvaluator(cfg *Config) (*Evaluator, error) {
	m, err := cfg.Model()
	if err != nil {
		return nil, err
	}
	obs, err := spectra.ObserverFor(cfg.Observer)
	if err != nil {
		return nil, err
	}
	if _, err := IlluminantSpectrum(cfg.Illuminant, obs.Domain()); err != nil {
		return nil, err
	}
	return &Evaluator{Config: cfg, Model: m, observer: obs}, nil
}

// spectralModel returns the model for spectral records on domain d.
// Unless the config has an explicit white, its white is the perfect
// reflecting diffuser integrated like the records, under the same
// illuminant and observer.
func (ev *Evaluator) spectralModel(d spectra.Domain, illum *spectra.Distribution) (*ciecam02.Model, error) {
	if ev.Config.White.Y > 0 {
		return ev.Model, nil
	}
	if m, ok := ev.spectral.Load(d); ok {
		return m.(*ciecam02.Model), nil
	}
	w, err := spectra.Integrate(spectra.Flat(d, 1), ev.observer, illum)
	if err != nil {
		return nil, err
	}
	m, err := ciecam02.NewModel(w, ev.Model.View)
	if err != nil {
		return nil, err
	}
	ev.spectral.Store(d, m)
	return m, nil
}

// tristimulus returns the tristimulus value of the record and
// the model to evaluate it with.
func (ev *Evaluator) tristimulus(r Record) (cie.XYZ, *ciecam02.Model, error) {
	switch {
	case r.Spectrum != nil:
		illum, err := IlluminantSpectrum(ev.Config.Illuminant, r.Spectrum.Domain)
		if err != nil {
			return cie.XYZ{}, nil, err
		}
		c, err := spectra.Integrate(*r.Spectrum, ev.observer, &illum)
		if err != nil {
			return cie.XYZ{}, nil, err
		}
		m, err := ev.spectralModel(r.Spectrum.Domain, &illum)
		return c, m, err
	case r.Hex != "":
		c, err := cie.FromHex(r.Hex)
		return c, ev.Model, err
	case r.XYZ != nil:
		return *r.XYZ, ev.Model, r.XYZ.Validate()
	}
	return cie.XYZ{}, nil, ErrNoColor
}

// Tristimulus returns the tristimulus value of the record.
func (ev *Evaluator) Tristimulus(r Record) (cie.XYZ, error) {
	c, _, err := ev.tristimulus(r)
	return c, err
}

// Evaluate returns the result for one record. Spectral records are
// relative to the white of the perfect reflector under the configured
// illuminant and observer, unless the config has an explicit white.
func (ev *Evaluator) Evaluate(r Record) Result {
	res := Result{ID: r.ID}
	c, m, err := ev.tristimulus(r)
	res.XYZ = c
	if err != nil {
		res.Err = err
		return res
	}
	res.Lab = cie.XYZToLab(res.XYZ, m.White)
	res.CAM, res.Err = m.FromXYZ(res.XYZ)
	return res
}

// Compare returns the color difference of one pair.
func (ev *Evaluator) Compare(p Pair) Comparison {
	c := Comparison{ID: p.ID}
	ref := ev.Evaluate(p.Ref)
	if ref.Err != nil {
		c.Err = fmt.Errorf("reference: %w", ref.Err)
		return c
	}
	test := ev.Evaluate(p.Test)
	if test.Err != nil {
		c.Err = fmt.Errorf("test: %w", test.Err)
		return c
	}
	c.DeltaE, c.Err = deltae.Difference(ref.Sample(), test.Sample(), ev.Config.Formula, ev.Config.Variant)
	return c
}

// EvaluateAll evaluates the records concurrently, with at most
// [Config.NumWorkers] at once. Results are in record order. Record
// failures are reported in [Result.Err]; the returned error is only
// set when the context is done before all records are evaluated.
func (ev *Evaluator) EvaluateAll(ctx context.Context, records []Record) ([]Result, error) {
	res := make([]Result, len(records))
	err := fanOut(ctx, ev.Config.NumWorkers(), len(records), func(i int) error {
		res[i] = ev.Evaluate(records[i])
		res[i].Index = i
		return res[i].Err
	}, func(i int) string { return records[i].ID })
	return res, err
}

// CompareAll compares the pairs concurrently, in the manner of
// [Evaluator.EvaluateAll].
func (ev *Evaluator) CompareAll(ctx context.Context, pairs []Pair) ([]Comparison, error) {
	res := make([]Comparison, len(pairs))
	err := fanOut(ctx, ev.Config.NumWorkers(), len(pairs), func(i int) error {
		res[i] = ev.Compare(pairs[i])
		res[i].Index = i
		return res[i].Err
	}, func(i int) string { return pairs[i].ID })
	return res, err
}

// Evaluate evaluates the records under the config.
// See [Evaluator.EvaluateAll].
func Evaluate(ctx context.Context, cfg *Config, records []Record) ([]Result, error) {
	ev, err := NewEvaluator(cfg)
	if err != nil {
		return nil, err
	}
	return ev.EvaluateAll(ctx, records)
}

// Differences compares the pairs under the config.
// See [Evaluator.CompareAll].
func Differences(ctx context.Context, cfg *Config, pairs []Pair) ([]Comparison, error) {
	ev, err := NewEvaluator(cfg)
	if err != nil {
		return nil, err
	}
	return ev.CompareAll(ctx, pairs)
}

// fanOut calls do for each index in [0, n) on at most workers
// goroutines. Errors from do are logged and do not stop the others.
func fanOut(ctx context.Context, workers, n int, do func(i int) error, id func(i int) string) error {
	st := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	failed := make([]bool, n)
	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := do(i); err != nil {
				failed[i] = true
				Logger().Warn("batch record failed", "index", i, "id", id(i), "err", err)
			}
			return nil
		})
	}
	err := g.Wait()
	nf := 0
	for _, f := range failed {
		if f {
			nf++
		}
	}
	Logger().Debug("batch done", "records", n, "failed", nf, "workers", workers, "elapsed", time.Since(st))
	return err
}

// IlluminantSpectrum returns the relative spectral power distribution
// of the illuminant on the given domain.
func IlluminantSpectrum(il cie.Illuminants, d spectra.Domain) (spectra.Distribution, error) {
	switch il {
	case cie.D65:
		return spectra.D65(d), nil
	case cie.D50:
		return spectra.D50(d), nil
	case cie.D55:
		return spectra.Daylight(5503, d)
	case cie.D75:
		return spectra.Daylight(7504, d)
	case cie.A:
		return spectra.Planckian(2856, d)
	case cie.E:
		return spectra.EqualEnergy(d), nil
	case cie.F2:
		return spectra.F2(d), nil
	}
	return spectra.Distribution{}, fmt.Errorf("no spectral power distribution for illuminant %v", il)
}

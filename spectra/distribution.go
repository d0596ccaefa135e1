// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

import (
	"fmt"
	"math"
)

// Distribution is a spectral quantity (a reflectance, transmittance,
// spectral power distribution, or color matching function) sampled
// over a wavelength [Domain].
type Distribution struct {
	Domain

	// Values has one value per domain sample.
	Values []float64
}

// New returns a distribution with the given values over the domain.
// The number of values must equal the domain length, and all values
// must be finite.
func New(d Domain, values []float64) (Distribution, error) {
	sd := Distribution{Domain: d, Values: values}
	return sd, sd.Validate()
}

// Validate returns an error if the distribution is malformed.
func (sd Distribution) Validate() error {
	if err := sd.Domain.Validate(); err != nil {
		return err
	}
	if n := sd.Domain.Len(); n != len(sd.Values) {
		return fmt.Errorf("%w: %v has %d samples, got %d values", ErrInvalidDomain, sd.Domain, n, len(sd.Values))
	}
	for i, v := range sd.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value at %g nm", ErrInvalidDomain, sd.Wavelength(i))
		}
	}
	return nil
}

// At returns the value at wavelength wl, linearly interpolated
// between samples. It returns 0 outside of the domain.
func (sd Distribution) At(wl float64) float64 {
	if !sd.Contains(wl) || len(sd.Values) == 0 {
		return 0
	}
	x := (wl - sd.Start) / sd.Step
	i := int(math.Floor(x))
	if i < 0 {
		return sd.Values[0]
	}
	if i >= len(sd.Values)-1 {
		return sd.Values[len(sd.Values)-1]
	}
	f := x - float64(i)
	if f < domainTolerance {
		return sd.Values[i]
	}
	return sd.Values[i] + f*(sd.Values[i+1]-sd.Values[i])
}

// Resample returns the distribution linearly interpolated onto d.
func (sd Distribution) Resample(d Domain) Distribution {
	vals := make([]float64, d.Len())
	for i := range vals {
		vals[i] = sd.At(d.Wavelength(i))
	}
	return Distribution{Domain: d, Values: vals}
}

// Scale returns the distribution multiplied by k.
func (sd Distribution) Scale(k float64) Distribution {
	vals := make([]float64, len(sd.Values))
	for i, v := range sd.Values {
		vals[i] = v * k
	}
	return Distribution{Domain: sd.Domain, Values: vals}
}

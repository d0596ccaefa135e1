// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spectra provides spectral distributions sampled over
// wavelength domains, the CIE standard observers and illuminants,
// and the integration of spectra into CIE tristimulus values.
package spectra

import (
	"fmt"
	"math"

	"cogentcore.org/core/base/errors"
)

// ErrInvalidDomain is returned for malformed or non-overlapping
// wavelength domains, and for distributions whose values do not
// match their domain.
var ErrInvalidDomain = errors.New("invalid spectral domain")

// domainTolerance is the tolerance in nanometres used when
// comparing wavelengths against domain bounds.
const domainTolerance = 1e-9

// Domain is a uniformly sampled wavelength range in nanometres,
// including both end points.
type Domain struct {

	// Start is the first wavelength.
	Start float64

	// End is the last wavelength.
	End float64

	// Step is the sampling interval.
	Step float64
}

// NewDomain returns a validated domain.
func NewDomain(start, end, step float64) (Domain, error) {
	d := Domain{Start: start, End: end, Step: step}
	return d, d.Validate()
}

// Validate returns an error if the domain is not well formed.
func (d Domain) Validate() error {
	for _, v := range [3]float64{d.Start, d.End, d.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound in %v", ErrInvalidDomain, d)
		}
	}
	if d.Step <= 0 {
		return fmt.Errorf("%w: step must be positive: %v", ErrInvalidDomain, d)
	}
	if d.End < d.Start {
		return fmt.Errorf("%w: end before start: %v", ErrInvalidDomain, d)
	}
	return nil
}

// Len returns the number of samples in the domain.
func (d Domain) Len() int {
	return int(math.Floor((d.End-d.Start)/d.Step+domainTolerance)) + 1
}

// Wavelength returns the wavelength of sample i.
func (d Domain) Wavelength(i int) float64 {
	return d.Start + float64(i)*d.Step
}

// Contains returns whether wl lies within the domain bounds.
func (d Domain) Contains(wl float64) bool {
	return wl >= d.Start-domainTolerance && wl <= d.End+domainTolerance
}

// Intersect returns the domain covered by both d and o, sampled at
// the finer of the two steps. The end point is truncated to the last
// full step.
func (d Domain) Intersect(o Domain) (Domain, error) {
	r := Domain{
		Start: max(d.Start, o.Start),
		End:   min(d.End, o.End),
		Step:  min(d.Step, o.Step),
	}
	if r.End < r.Start-domainTolerance {
		return Domain{}, fmt.Errorf("%w: %v and %v do not overlap", ErrInvalidDomain, d, o)
	}
	r.End = r.Wavelength(r.Len() - 1)
	return r, nil
}

func (d Domain) String() string {
	return fmt.Sprintf("%g-%g/%g nm", d.Start, d.End, d.Step)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

import (
	"fmt"

	"cogentcore.org/ciecam/cie"
)

// Km is the maximum luminous efficacy of photopic vision, in lm/W.
const Km = 683

// Integrate returns the tristimulus value of the distribution sd as
// seen by the observer. If illum is non-nil, sd is a reflectance or
// transmittance lit by illum, and the result is normalized so that
// a perfect reflector has Y = 100. If illum is nil, sd is itself a
// light source, normalized against the equal-energy illuminant.
//
// All distributions are linearly resampled onto the intersection of
// their domains at the finest step among them.
func Integrate(sd Distribution, obs *Observer, illum *Distribution) (cie.XYZ, error) {
	d, err := commonDomain(sd, obs, illum)
	if err != nil {
		return cie.XYZ{}, err
	}
	var x, y, z, norm float64
	for i := range d.Len() {
		wl := d.Wavelength(i)
		s := 1.0
		if illum != nil {
			s = illum.At(wl)
		}
		ybar := obs.Y.At(wl)
		sr := s * sd.At(wl)
		x += sr * obs.X.At(wl)
		y += sr * ybar
		z += sr * obs.Z.At(wl)
		norm += s * ybar
	}
	if norm == 0 {
		return cie.XYZ{}, fmt.Errorf("%w: no luminous power over %v", ErrInvalidDomain, d)
	}
	k := 100 / norm
	return cie.XYZ{X: k * x, Y: k * y, Z: k * z}, nil
}

// Absolute returns the absolute tristimulus value of the spectral
// radiance or irradiance sd, in W per nm units, so that Y is the
// luminance or illuminance in photometric units.
func Absolute(sd Distribution, obs *Observer) (cie.XYZ, error) {
	d, err := commonDomain(sd, obs, nil)
	if err != nil {
		return cie.XYZ{}, err
	}
	var x, y, z float64
	for i := range d.Len() {
		wl := d.Wavelength(i)
		s := sd.At(wl)
		x += s * obs.X.At(wl)
		y += s * obs.Y.At(wl)
		z += s * obs.Z.At(wl)
	}
	k := Km * d.Step
	return cie.XYZ{X: k * x, Y: k * y, Z: k * z}, nil
}

func commonDomain(sd Distribution, obs *Observer, illum *Distribution) (Domain, error) {
	if obs == nil {
		return Domain{}, fmt.Errorf("%w: no observer", ErrInvalidDomain)
	}
	if err := sd.Validate(); err != nil {
		return Domain{}, err
	}
	d, err := sd.Domain.Intersect(obs.Domain())
	if err != nil {
		return Domain{}, err
	}
	if illum != nil {
		if err := illum.Validate(); err != nil {
			return Domain{}, fmt.Errorf("illuminant: %w", err)
		}
		return d.Intersect(illum.Domain)
	}
	return d, nil
}

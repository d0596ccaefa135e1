// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

import (
	"fmt"
	"math"

	"cogentcore.org/core/base/errors"
)

// ErrInvalidTemperature is returned for color temperatures
// outside of the range of a spectral model.
var ErrInvalidTemperature = errors.New("invalid color temperature")

// Physical constants (CODATA), SI units.
const (
	speedOfLight = 299792458.0
	planck       = 6.62607015e-34
	boltzmann    = 1.380649e-23

	// C1 is the first radiation constant 2πhc², in W·m².
	C1 = 2 * math.Pi * planck * speedOfLight * speedOfLight

	// C2 is the second radiation constant hc/k, in m·K.
	C2 = planck * speedOfLight / boltzmann
)

// Daylight model validity range, in kelvin.
const (
	DaylightMinCCT = 4000
	DaylightMaxCCT = 25000
)

// Flat returns a distribution with the constant value v over d.
// Flat(d, 1) is the perfect reflecting diffuser.
func Flat(d Domain, v float64) Distribution {
	vals := make([]float64, d.Len())
	for i := range vals {
		vals[i] = v
	}
	return Distribution{Domain: d, Values: vals}
}

// EqualEnergy returns the CIE equal-energy illuminant E over d,
// with a relative power of 100 at every wavelength.
func EqualEnergy(d Domain) Distribution {
	return Flat(d, 100)
}

// PlanckExitance returns the spectral radiant exitance of a black body
// at temperature t in kelvin and wavelength wl in nanometres, in W/m³.
func PlanckExitance(wl, t float64) float64 {
	l := wl * 1e-9
	return C1 / (l * l * l * l * l) / math.Expm1(C2/(l*t))
}

// Planckian returns the relative spectral power distribution of a
// black body radiator at temperature t in kelvin, normalized to 100
// at 560 nm.
func Planckian(t float64, d Domain) (Distribution, error) {
	if err := d.Validate(); err != nil {
		return Distribution{}, err
	}
	if !(t > 0) || math.IsInf(t, 0) {
		return Distribution{}, fmt.Errorf("%w: %g K", ErrInvalidTemperature, t)
	}
	norm := 100 / PlanckExitance(560, t)
	vals := make([]float64, d.Len())
	for i := range vals {
		vals[i] = norm * PlanckExitance(d.Wavelength(i), t)
	}
	return Distribution{Domain: d, Values: vals}, nil
}

// DaylightChromaticity returns the CIE 1931 chromaticity of the CIE
// daylight locus at the correlated color temperature cct.
func DaylightChromaticity(cct float64) (x, y float64) {
	t := cct
	if t < 7000 {
		x = 0.244063 + 0.09911e3/t + 2.9678e6/(t*t) - 4.6070e9/(t*t*t)
	} else {
		x = 0.23704 + 0.24748e3/t + 1.9018e6/(t*t) - 2.0064e9/(t*t*t)
	}
	y = -3*x*x + 2.87*x - 0.275
	return
}

var daylightDomain = Domain{Start: 300, End: 830, Step: 5}

// Daylight returns the relative spectral power distribution of CIE
// daylight at the correlated color temperature cct in kelvin, computed
// from the S0, S1, S2 basis functions and normalized to 100 at 560 nm.
// Wavelengths outside of 300-830 nm are zero.
func Daylight(cct float64, d Domain) (Distribution, error) {
	if err := d.Validate(); err != nil {
		return Distribution{}, err
	}
	if !(cct >= DaylightMinCCT && cct <= DaylightMaxCCT) {
		return Distribution{}, fmt.Errorf("%w: daylight is defined for %d-%d K, got %g K", ErrInvalidTemperature, DaylightMinCCT, DaylightMaxCCT, cct)
	}
	x, y := DaylightChromaticity(cct)
	m := 0.0241 + 0.2562*x - 0.7341*y
	m1 := (-1.3515 - 1.7703*x + 5.9114*y) / m
	m2 := (0.03 - 31.4424*x + 30.0717*y) / m
	vals := make([]float64, daylightDomain.Len())
	for i, s := range daylightData {
		vals[i] = s[0] + m1*s[1] + m2*s[2]
	}
	base := Distribution{Domain: daylightDomain, Values: vals}
	if d == daylightDomain {
		return base, nil
	}
	return base.Resample(d), nil
}

// D65 returns the CIE D65 daylight illuminant over d.
func D65(d Domain) Distribution {
	sd, _ := Daylight(6504, d)
	return sd
}

// D50 returns the CIE D50 daylight illuminant over d.
func D50(d Domain) Distribution {
	sd, _ := Daylight(5003, d)
	return sd
}

var fluorescentDomain = Domain{Start: 380, End: 780, Step: 5}

// F2 returns the CIE F2 cool white fluorescent illuminant over d.
// Wavelengths outside of 380-780 nm are zero.
func F2(d Domain) Distribution {
	base := Distribution{Domain: fluorescentDomain, Values: f2Data[:]}
	return base.Resample(d)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

import (
	"fmt"
	"sync"
)

//go:generate core generate

// Observers are the CIE standard colorimetric observers.
type Observers int32 //enums:enum

const (
	// CIE1931 is the CIE 1931 2° standard observer.
	CIE1931 Observers = iota

	// CIE1964 is the CIE 1964 10° supplementary standard observer.
	CIE1964
)

// Observer is a set of x̄, ȳ, z̄ color matching functions
// sampled over a common domain.
type Observer struct {

	// Name identifies the observer in messages.
	Name string

	// X is the x̄ color matching function.
	X Distribution

	// Y is the ȳ color matching function, equal to the
	// photopic luminous efficiency function for CIE1931.
	Y Distribution

	// Z is the z̄ color matching function.
	Z Distribution
}

// NewObserver returns an observer for the given color matching
// functions, which must share one domain.
func NewObserver(name string, x, y, z Distribution) (*Observer, error) {
	for _, sd := range [3]Distribution{x, y, z} {
		if err := sd.Validate(); err != nil {
			return nil, err
		}
		if sd.Domain != x.Domain {
			return nil, fmt.Errorf("%w: observer %q has mismatched domains %v and %v", ErrInvalidDomain, name, x.Domain, sd.Domain)
		}
	}
	return &Observer{Name: name, X: x, Y: y, Z: z}, nil
}

// Domain returns the domain of the color matching functions.
func (o *Observer) Domain() Domain {
	return o.X.Domain
}

// observerTable builds an observer from rows of x̄, ȳ, z̄
// values from 360 to 830 nm in 5 nm steps.
func observerTable(name string, rows [][3]float64) *Observer {
	d := Domain{Start: 360, End: 830, Step: 5}
	var x, y, z []float64
	for _, r := range rows {
		x = append(x, r[0])
		y = append(y, r[1])
		z = append(z, r[2])
	}
	return &Observer{
		Name: name,
		X:    Distribution{Domain: d, Values: x},
		Y:    Distribution{Domain: d, Values: y},
		Z:    Distribution{Domain: d, Values: z},
	}
}

var observers = sync.OnceValue(func() [ObserversN]*Observer {
	return [ObserversN]*Observer{
		CIE1931: observerTable("CIE 1931 2°", cie1931Data[:]),
		CIE1964: observerTable("CIE 1964 10°", cie1964Data[:]),
	}
})

// ObserverFor returns the standard observer for the given identifier,
// or an error for an unknown identifier. The returned observer is
// shared and must not be modified.
func ObserverFor(id Observers) (*Observer, error) {
	if id < 0 || id >= ObserversN {
		return nil, fmt.Errorf("%w: unknown observer %d", ErrInvalidDomain, id)
	}
	return observers()[id], nil
}

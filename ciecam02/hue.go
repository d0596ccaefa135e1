// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ciecam02

import (
	"fmt"
	"math"
)

// uniqueHue is a unique hue anchor of the hue composition.
type uniqueHue struct {
	name string

	// hue angle in degrees
	h float64

	// eccentricity
	e float64

	// hue composition
	H float64
}

// uniqueHues are the unique hues in order of hue angle, with red
// repeated one turn later to close the circle.
var uniqueHues = [5]uniqueHue{
	{"red", 20.14, 0.8, 0},
	{"yellow", 90, 0.7, 100},
	{"green", 164.25, 1.0, 200},
	{"blue", 237.53, 1.2, 300},
	{"red", 380.14, 0.8, 400},
}

// HueComposition returns the hue composition H in [0, 400) of the hue
// angle h in degrees: 0 is unique red, 100 unique yellow, 200 unique
// green, and 300 unique blue, with linear interpolation in between
// weighted by the eccentricities.
func HueComposition(h float64) float64 {
	hp := math.Mod(h, 360)
	if hp < 0 {
		hp += 360
	}
	if hp < uniqueHues[0].h {
		hp += 360
	}
	i := 0
	for i < 3 && hp >= uniqueHues[i+1].h {
		i++
	}
	lo, hi := uniqueHues[i], uniqueHues[i+1]
	p := (hp - lo.h) / lo.e
	H := lo.H + 100*p/(p+(hi.h-hp)/hi.e)
	if H >= 400 {
		H -= 400
	}
	return H
}

// HueFromComposition is the inverse of [HueComposition], returning the
// hue angle in [0, 360) for the hue composition H in [0, 400].
func HueFromComposition(H float64) (float64, error) {
	if !(H >= 0 && H <= 400) {
		return 0, fmt.Errorf("%w: hue composition %g outside of [0, 400]", ErrNonInvertible, H)
	}
	i := min(int(H/100), 3)
	lo, hi := uniqueHues[i], uniqueHues[i+1]
	u := H - lo.H
	hp := (u*(hi.e*lo.h-lo.e*hi.h) - 100*lo.h*hi.e) / (u*(hi.e-lo.e) - 100*hi.e)
	if hp >= 360 {
		hp -= 360
	}
	return hp, nil
}

// HueName returns a description of the hue composition H in terms
// of its two adjacent unique hues, such as "70% yellow 30% green".
func HueName(H float64) string {
	if !(H >= 0 && H < 400) {
		return "achromatic"
	}
	i := int(H / 100)
	hi := math.Round(H - float64(i)*100)
	lo := 100 - hi
	if hi == 0 {
		return uniqueHues[i].name
	}
	if lo == 0 {
		return uniqueHues[i+1].name
	}
	return fmt.Sprintf("%g%% %s %g%% %s", lo, uniqueHues[i].name, hi, uniqueHues[i+1].name)
}

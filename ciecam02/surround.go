// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ciecam02

import "fmt"

//go:generate core generate

// Surrounds are the viewing surround classes, describing the
// luminance of the field around the stimulus relative to the white.
type Surrounds int32 //enums:enum

const (
	// Average is a surround of the same brightness as the
	// background, as for surface colors viewed in a light booth.
	Average Surrounds = iota

	// Dim is a dim surround, as for television viewing.
	Dim

	// Dark is a dark surround, as for projected slides in a dark room.
	Dark
)

// SurroundParams are the model constants determined by the surround.
type SurroundParams struct {

	// F is the maximum degree of adaptation.
	F float64

	// C is the impact of the surround.
	C float64

	// Nc is the chromatic induction factor.
	Nc float64
}

var surroundParams = [SurroundsN]SurroundParams{
	Average: {F: 1.0, C: 0.69, Nc: 1.0},
	Dim:     {F: 0.9, C: 0.59, Nc: 0.9},
	Dark:    {F: 0.8, C: 0.525, Nc: 0.8},
}

// Params returns the constants for the surround, or an error
// for an unknown surround.
func (s Surrounds) Params() (SurroundParams, error) {
	if s < 0 || s >= SurroundsN {
		return SurroundParams{}, fmt.Errorf("%w: unknown surround %d", ErrInvalidViewingConditions, s)
	}
	return surroundParams[s], nil
}

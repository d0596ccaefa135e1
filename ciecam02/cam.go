// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ciecam02

import "fmt"

// HueUndefined is the [CAM.Hue] and [CAM.HueComposition] value
// of achromatic colors, which have no hue.
const HueUndefined = -1

// CAM represents a color by its CIECAM02 appearance correlates, the
// perceived lightness, brightness, chroma, colorfulness, saturation,
// and hue under some viewing conditions.
type CAM struct {

	// Lightness (J) is the brightness relative to the reference white, 100 for the white.
	Lightness float64

	// Chroma (C) is the colorfulness relative to the brightness of the white.
	Chroma float64

	// Hue (h) is the hue angle in degrees in [0, 360), or [HueUndefined].
	Hue float64

	// HueComposition (H) is the hue in terms of the unique hues, in [0, 400), or [HueUndefined].
	HueComposition float64

	// Brightness (Q) is the apparent amount of light from the color.
	Brightness float64

	// Colorfulness (M) is the absolute chromatic intensity.
	Colorfulness float64

	// Saturation (s) is the colorfulness relative to the brightness of the color itself.
	Saturation float64

	// RedGreen (a) is the red (+) green (-) opponent signal.
	RedGreen float64

	// YellowBlue (b) is the yellow (+) blue (-) opponent signal.
	YellowBlue float64
}

// IsAchromatic returns whether the color has no hue.
func (cam *CAM) IsAchromatic() bool {
	return cam.Hue == HueUndefined
}

// HueAngle returns the hue angle in degrees, or [ErrHueUndefined]
// for an achromatic color.
func (cam *CAM) HueAngle() (float64, error) {
	if cam.IsAchromatic() {
		return 0, ErrHueUndefined
	}
	return cam.Hue, nil
}

// Correlates returns the given set of correlates of the color,
// for use with [Inverse].
func (cam *CAM) Correlates(set CorrelateSets) Correlates {
	return Correlates{
		Set:            set,
		Lightness:      cam.Lightness,
		Brightness:     cam.Brightness,
		Chroma:         cam.Chroma,
		Colorfulness:   cam.Colorfulness,
		Saturation:     cam.Saturation,
		Hue:            cam.Hue,
		HueComposition: cam.HueComposition,
	}
}

func (cam *CAM) String() string {
	if cam.IsAchromatic() {
		return fmt.Sprintf("CAM(J=%.4f C=0 h=undefined Q=%.4f)", cam.Lightness, cam.Brightness)
	}
	return fmt.Sprintf("CAM(J=%.4f C=%.4f h=%.4f H=%.4f Q=%.4f M=%.4f s=%.4f)",
		cam.Lightness, cam.Chroma, cam.Hue, cam.HueComposition, cam.Brightness, cam.Colorfulness, cam.Saturation)
}

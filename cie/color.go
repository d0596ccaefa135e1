// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// FromColor returns the D65-relative tristimulus value (Y = 100 for
// white) of the given sRGB color. Fully transparent colors have no
// defined color and return black.
func FromColor(c color.Color) XYZ {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return XYZ{}
	}
	x, y, z := cf.Xyz()
	return XYZ{x, y, z}.Scale(100)
}

// FromHex returns the D65-relative tristimulus value of the
// given "#rrggbb" or "#rgb" sRGB hex color.
func FromHex(hex string) (XYZ, error) {
	cf, err := colorful.Hex(hex)
	if err != nil {
		return XYZ{}, err
	}
	x, y, z := cf.Xyz()
	return XYZ{x, y, z}.Scale(100), nil
}

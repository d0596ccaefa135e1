// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deltae

import "cogentcore.org/ciecam/ciecam02"

var uniformSpaces = map[Variants]ciecam02.UniformSpace{
	Default:         ciecam02.CAM02UCS,
	Uniform:         ciecam02.CAM02UCS,
	LargeDifference: ciecam02.CAM02LCD,
	SmallDifference: ciecam02.CAM02SCD,
}

// UniformSpace returns the CIECAM02 uniform space of the variant,
// and whether the variant is one of the CAM02UCS variants.
func UniformSpace(v Variants) (ciecam02.UniformSpace, bool) {
	sp, ok := uniformSpaces[v]
	return sp, ok
}

// DECAM02 returns the color difference between two colors in the
// given CIECAM02 uniform space. Achromatic colors have no hue and
// contribute only their lightness.
func DECAM02(ref, test *ciecam02.CAM, sp ciecam02.UniformSpace) float64 {
	return ref.UCS(sp).Distance(test.UCS(sp), sp)
}

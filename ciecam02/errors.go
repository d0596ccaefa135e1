// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ciecam02

import "cogentcore.org/core/base/errors"

var (
	// ErrInvalidViewingConditions is returned for a non-positive adapting
	// luminance, an unknown surround, a degree of adaptation outside of
	// [0, 1], or a white whose achromatic response is not positive.
	ErrInvalidViewingConditions = errors.New("invalid viewing conditions")

	// ErrSingularWhitePoint is returned when a cone response to the
	// white point is zero, so that the adaptation gain is undefined.
	ErrSingularWhitePoint = errors.New("singular white point")

	// ErrHueUndefined is returned when the hue of an achromatic
	// color is requested.
	ErrHueUndefined = errors.New("hue undefined for achromatic color")

	// ErrNonInvertible is returned when appearance correlates cannot be
	// converted back to tristimulus values, or when a stimulus has a
	// negative achromatic response and so no lightness.
	ErrNonInvertible = errors.New("appearance correlates not invertible")
)

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deltae

import (
	"math"

	"cogentcore.org/ciecam/cie"
)

// DE76 returns the CIE 1976 color difference, the Euclidean
// distance between the two CIELAB values.
func DE76(ref, test cie.Lab) float64 {
	dl := ref.L - test.L
	da := ref.A - test.A
	db := ref.B - test.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

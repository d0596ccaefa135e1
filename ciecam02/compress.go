// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ciecam02

import (
	"fmt"
	"math"
)

// ResponseCompression applies the post-adaptation hyperbolic response
// compression to the adapted HPE cone response x, with luminance level
// adaptation factor fl. It is odd-symmetric around the 0.1 offset, so
// negative responses compress to values below 0.1.
func ResponseCompression(x, fl float64) float64 {
	return compressResponse(x, fl) + 0.1
}

// ResponseDecompression is the inverse of [ResponseCompression].
// The compressed response must be within 400 of the 0.1 offset,
// the asymptote of the compression.
func ResponseDecompression(x, fl float64) (float64, error) {
	return decompressResponse(x-0.1, fl)
}

// compressResponse is the response compression without the 0.1 offset.
func compressResponse(x, fl float64) float64 {
	p := math.Pow(fl*math.Abs(x)/100, 0.42)
	return math.Copysign(400*p/(27.13+p), x)
}

// decompressResponse is the inverse of compressResponse.
func decompressResponse(d, fl float64) (float64, error) {
	ad := math.Abs(d)
	if !(ad < 400) {
		return 0, fmt.Errorf("%w: compressed response %g outside of the compression range", ErrNonInvertible, d+0.1)
	}
	return math.Copysign((100/fl)*math.Pow(27.13*ad/(400-ad), 1/0.42), d), nil
}

// compress returns the compressed HPE responses of the adapted
// CAT02 cone responses, less the 0.1 offset, which cancels in
// all of the opponent and achromatic signals.
func compress(c LMS, vw *View) [3]float64 {
	rgb := cat02ToHPE.MulVec(c.vector())
	return [3]float64{
		compressResponse(rgb[0], vw.FL),
		compressResponse(rgb[1], vw.FL),
		compressResponse(rgb[2], vw.FL),
	}
}

// decompress is the inverse of compress.
func decompress(ra [3]float64, vw *View) (LMS, error) {
	var rgb [3]float64
	for i, x := range ra {
		v, err := decompressResponse(x, vw.FL)
		if err != nil {
			return LMS{}, err
		}
		rgb[i] = v
	}
	return lmsFromVector(hpeToCAT02.MulVec(rgb)), nil
}

// achromatic returns the achromatic response A of offset-free
// compressed responses.
func achromatic(ra [3]float64, vw *View) float64 {
	return (2*ra[0] + ra[1] + ra[2]/20) * vw.Nbb
}

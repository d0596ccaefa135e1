// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"math"

	"cogentcore.org/core/base/errors"
)

// ErrSingularMatrix is returned by [Matrix.Inverse] for a matrix
// whose determinant is zero.
var ErrSingularMatrix = errors.New("singular matrix")

// Vector is a 3 component column vector.
type Vector [3]float64

// Matrix is a row-major 3x3 matrix, used for the fixed linear
// transforms between tristimulus and cone spaces.
type Matrix [3][3]float64

// Identity is the 3x3 identity matrix.
var Identity = Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// MulVec returns the product m·v.
func (m Matrix) MulVec(v Vector) Vector {
	return Vector{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Mul returns the matrix product m·n.
func (m Matrix) Mul(n Matrix) Matrix {
	var r Matrix
	for i := range 3 {
		for j := range 3 {
			r[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return r
}

// Det returns the determinant of m.
func (m Matrix) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse of m using the adjugate,
// which is exact enough for the well conditioned color matrices.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) {
		return Matrix{}, fmt.Errorf("%w: determinant %g", ErrSingularMatrix, det)
	}
	id := 1 / det
	return Matrix{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * id,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * id,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * id,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * id,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * id,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * id,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * id,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * id,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * id,
		},
	}, nil
}

// MustInverse returns the inverse of a matrix that is known
// to be invertible, such as one of the package constants.
// It panics otherwise.
func MustInverse(m Matrix) Matrix {
	inv, err := m.Inverse()
	errors.Must(err)
	return inv
}

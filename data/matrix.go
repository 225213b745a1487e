/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"fmt"
)

// Matrix is a binary matrix stored as a slice of rows.
// m[i][j] is the bit in row i and column j.
type Matrix []BitVector

// NewMatrix builds a matrix from the given rows.
// It returns error if the rows are not all of the same length.
func NewMatrix(rows []BitVector) (Matrix, error) {
	for _, r := range rows {
		if len(r) != len(rows[0]) {
			return nil, fmt.Errorf("all rows should be of the same length")
		}
	}

	return Matrix(rows), nil
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// Transpose returns the transpose of m in a new Matrix.
func (m Matrix) Transpose() Matrix {
	res := make(Matrix, m.Cols())
	for j := range res {
		res[j] = make(BitVector, m.Rows())
		for i, row := range m {
			res[j][i] = row[j]
		}
	}

	return res
}

// RowOr returns the disjunction of the rows of m selected by idx, that
// is the positions that are dark once the selected rows are overlaid.
// Error is returned if an index is out of range.
func (m Matrix) RowOr(idx []int) (BitVector, error) {
	res := NewConstantBitVector(m.Cols(), 0)
	for _, i := range idx {
		if i < 0 || i >= m.Rows() {
			return nil, fmt.Errorf("row index %d exceeds matrix dimensions", i)
		}
		res, _ = res.Or(m[i])
	}

	return res, nil
}

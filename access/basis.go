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

package access

import (
	"github.com/fentec-project/govcs/data"
	"github.com/fentec-project/govcs/internal"
	"github.com/pkg/errors"
)

// MaxBasisSize bounds the number of columns in each set of a basis.
const MaxBasisSize = 1 << 20

// BasisSize returns C(n,k) * 2^(k-1), the number of columns in each set
// of the (k,n) basis. It returns an error if the structure is invalid
// or the basis would exceed MaxBasisSize columns.
func BasisSize(k, n int) (int, error) {
	if _, err := NewStructure(k, n); err != nil {
		return 0, err
	}
	if k-1 > 20 || (k < n && n > MaxBasisSize) {
		return 0, errors.Wrapf(ErrInvalidStructure, "basis of (%d,%d) exceeds %d columns", k, n, MaxBasisSize)
	}

	// n <= MaxBasisSize from here on, so no step overflows
	size := uint64(1) << uint(k-1)
	c := k
	if c > n-k {
		c = n - k
	}
	binom := uint64(1)
	for i := 1; i <= c; i++ {
		binom = binom * uint64(n-c+i) / uint64(i)
		if binom*size > MaxBasisSize {
			return 0, errors.Wrapf(ErrInvalidStructure, "basis of (%d,%d) exceeds %d columns", k, n, MaxBasisSize)
		}
	}

	return int(binom * size), nil
}

// Basis holds the white and black basis columns of a threshold
// structure. Every row of White and Black is one column of the basis,
// that is a vector of length N with one bit per participant.
//
// A Basis is read-only once built and may be shared between goroutines.
type Basis struct {
	*Structure
	White data.Matrix
	Black data.Matrix
}

// NewBasis builds the basis columns of the (k,n) threshold structure.
// Both column sets have C(n,k) * 2^(k-1) elements. The result is fully
// determined by k and n.
//
// It returns an error if the structure is invalid or too large, see
// BasisSize.
func NewBasis(k, n int) (*Basis, error) {
	size, err := BasisSize(k, n)
	if err != nil {
		return nil, err
	}
	s := &Structure{K: k, N: n}

	var even, odd [][]uint8
	for _, p := range internal.Patterns(k) {
		if data.BitVector(p).Weight()%2 == 0 {
			even = append(even, p)
		} else {
			odd = append(odd, p)
		}
	}

	subsets := internal.Subsets(n, k)
	white := make([]data.BitVector, 0, size)
	black := make([]data.BitVector, 0, size)
	for _, subset := range subsets {
		white = append(white, scatter(subset, even, n)...)
		black = append(black, scatter(subset, odd, n)...)
	}

	b := &Basis{Structure: s}
	if b.White, err = data.NewMatrix(white); err != nil {
		return nil, err
	}
	if b.Black, err = data.NewMatrix(black); err != nil {
		return nil, err
	}

	return b, nil
}

// scatter places every pattern on the participants of subset, leaving
// the remaining participants at zero.
func scatter(subset []int, patterns [][]uint8, n int) []data.BitVector {
	ret := make([]data.BitVector, len(patterns))
	for i, p := range patterns {
		col := data.NewConstantBitVector(n, 0)
		for j, idx := range subset {
			col[idx] = p[j]
		}
		ret[i] = col
	}

	return ret
}

// Size returns the number of columns in each of the two sets.
func (b *Basis) Size() int {
	return b.White.Rows()
}

// Columns returns the black columns if ink is set and the white
// columns otherwise.
func (b *Basis) Columns(ink bool) data.Matrix {
	if ink {
		return b.Black
	}
	return b.White
}

// Matrix returns the basis matrix for a secret pixel: N rows, one per
// participant, and Size() columns.
func (b *Basis) Matrix(ink bool) data.Matrix {
	return b.Columns(ink).Transpose()
}

// Stack returns, for every column of the basis matching ink, whether it
// is dark once the rows of the given participants are overlaid. A
// column is dark as soon as one of the participants holds a 1 in it.
// Repeated participants count once.
//
// It returns an error if a participant index is out of range.
func (b *Basis) Stack(participants []int, ink bool) (data.BitVector, error) {
	seen := make(map[int]bool, len(participants))
	idx := make([]int, 0, len(participants))
	for _, p := range participants {
		if !seen[p] {
			seen[p] = true
			idx = append(idx, p)
		}
	}

	res, err := b.Matrix(ink).RowOr(idx)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidParticipant, "cannot stack participants %v of %s: %v", participants, b.Structure, err)
	}

	return res, nil
}

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

package evcs

import (
	"github.com/fentec-project/govcs/access"
	"github.com/fentec-project/govcs/data"
	"github.com/fentec-project/govcs/sample"
	"github.com/pkg/errors"
)

// BasisEncoder packs the basis columns of a threshold structure into
// RGB sub-pixels.
//
// Both column sets are padded with all-ones filler columns up to a
// multiple of three. Encoding a pixel permutes the padded set matching
// the secret bit and assigns three consecutive columns to the red,
// green and blue channels of one sub-pixel; a column bit equal to 1
// darkens that channel in the participant's shadow.
type BasisEncoder struct {
	basis   *access.Basis
	white   data.Matrix
	black   data.Matrix
	padding int
}

// NewBasisEncoder returns a BasisEncoder for the given basis.
func NewBasisEncoder(basis *access.Basis) *BasisEncoder {
	raw := basis.Size()
	padding := (3 - raw%3) % 3

	pad := func(m data.Matrix) data.Matrix {
		res := make(data.Matrix, 0, raw+padding)
		res = append(res, m...)
		for i := 0; i < padding; i++ {
			res = append(res, data.NewConstantBitVector(basis.N, 1))
		}
		return res
	}

	return &BasisEncoder{
		basis:   basis,
		white:   pad(basis.White),
		black:   pad(basis.Black),
		padding: padding,
	}
}

// Padding returns the number of filler columns added to each set.
func (e *BasisEncoder) Padding() int {
	return e.padding
}

// Width returns the number of sub-pixels per participant.
func (e *BasisEncoder) Width() int {
	return len(e.white) / 3
}

// Encode encodes one secret pixel under a fresh random permutation of
// the column set matching ink.
func (e *BasisEncoder) Encode(ink bool, src sample.Source) ([][]data.Color, error) {
	cols := e.white
	if ink {
		cols = e.black
	}

	perm, err := sample.Perm(src, len(cols))
	if err != nil {
		return nil, errors.Wrap(err, "cannot permute basis columns")
	}

	block := newBlock(e.basis.N, e.Width())
	for p := range block[0] {
		r, g, b := cols[perm[3*p]], cols[perm[3*p+1]], cols[perm[3*p+2]]
		for u := range block {
			block[u][p] = data.PackColumns(r[u], g[u], b[u])
		}
	}

	return block, nil
}

// Darkness returns the fraction of opaque channels in the secret block
// once the shadows of the given participants are stacked. Encoding only
// reorders the columns, so the value is the same for every ink (or
// every empty) pixel. Filler columns are dark in every shadow.
func (e *BasisEncoder) Darkness(participants []int, ink bool) (float64, error) {
	stacked, err := e.basis.Stack(participants, ink)
	if err != nil {
		return 0, err
	}
	dark := stacked.Weight()
	if len(participants) > 0 {
		dark += e.padding
	}

	return float64(dark) / float64(len(e.white)), nil
}

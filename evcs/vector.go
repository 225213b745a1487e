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
	"github.com/fentec-project/govcs/data"
	"github.com/fentec-project/govcs/internal"
	"github.com/fentec-project/govcs/sample"
	"github.com/pkg/errors"
)

// VectorSecretEncoder encodes a secret pixel as colour vectors over the
// primaries, long enough for every participant to receive a distinct
// vector. For an empty pixel all participants share one random vector;
// for an ink pixel they receive distinct vectors in random order, so
// any two stacked shares block light in at least one sub-pixel.
type VectorSecretEncoder struct {
	n     int
	width int
	count int
}

// NewVectorSecretEncoder returns a VectorSecretEncoder for n
// participants. Its width is the smallest m >= 1 with 3^m >= n.
func NewVectorSecretEncoder(n int) (*VectorSecretEncoder, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidParams, "cannot encode for %d participants", n)
	}
	width, count := 1, 3
	for count < n {
		width++
		count *= 3
	}

	return &VectorSecretEncoder{n: n, width: width, count: count}, nil
}

// Width returns the vector length.
func (e *VectorSecretEncoder) Width() int {
	return e.width
}

// vector writes the digits of v in base 3, most significant first, as
// primaries into dst.
func (e *VectorSecretEncoder) vector(v int, dst []data.Color) {
	for j := e.width - 1; j >= 0; j-- {
		dst[j] = data.Primaries[v%3]
		v /= 3
	}
}

// Encode encodes one secret pixel.
func (e *VectorSecretEncoder) Encode(ink bool, src sample.Source) ([][]data.Color, error) {
	block := newBlock(e.n, e.width)

	if !ink {
		v, err := sample.Intn(src, e.count)
		if err != nil {
			return nil, errors.Wrap(err, "cannot pick shared vector")
		}
		for i := range block {
			e.vector(v, block[i])
		}
		return block, nil
	}

	vs, err := sample.Choose(src, e.count, e.n)
	if err != nil {
		return nil, errors.Wrap(err, "cannot pick distinct vectors")
	}
	for i := range block {
		e.vector(vs[i], block[i])
	}

	return block, nil
}

// PerfectBlackSecretEncoder encodes a secret pixel in ceil(n/3)
// sub-pixels. For an ink pixel every sub-pixel deals the cyclic
// sequence red, green, blue, red, ... of length n to the participants
// in a freshly shuffled order. For an empty pixel all participants
// share one colour per sub-pixel, drawn from the same sequence, so a
// single shadow shows every colour equally often in both cases.
type PerfectBlackSecretEncoder struct {
	n      int
	width  int
	cyclic []data.Color
}

// NewPerfectBlackSecretEncoder returns a PerfectBlackSecretEncoder for
// n participants.
func NewPerfectBlackSecretEncoder(n int) (*PerfectBlackSecretEncoder, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidParams, "cannot encode for %d participants", n)
	}
	cyclic := make([]data.Color, n)
	for i := range cyclic {
		cyclic[i] = data.Primaries[i%3]
	}

	return &PerfectBlackSecretEncoder{n: n, width: internal.CeilDiv(n, 3), cyclic: cyclic}, nil
}

// Width returns ceil(n/3).
func (e *PerfectBlackSecretEncoder) Width() int {
	return e.width
}

// Encode encodes one secret pixel.
func (e *PerfectBlackSecretEncoder) Encode(ink bool, src sample.Source) ([][]data.Color, error) {
	block := newBlock(e.n, e.width)

	for p := 0; p < e.width; p++ {
		if !ink {
			c, err := randomColor(e.cyclic, src)
			if err != nil {
				return nil, errors.Wrap(err, "cannot pick shared colour")
			}
			for i := range block {
				block[i][p] = c
			}
			continue
		}

		perm, err := sample.Perm(src, e.n)
		if err != nil {
			return nil, errors.Wrap(err, "cannot shuffle colours")
		}
		for i := range block {
			block[i][p] = e.cyclic[perm[i]]
		}
	}

	return block, nil
}

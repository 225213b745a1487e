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

// Partner derives the colour of the second share from the colour of
// the first one, so that stacking both blocks light.
type Partner int

const (
	// PartnerDifferent picks a uniformly random palette colour other
	// than the given one.
	PartnerDifferent Partner = iota
	// PartnerComplement picks the complementary colour.
	PartnerComplement
)

func (p Partner) pick(palette []data.Color, c data.Color, src sample.Source) (data.Color, error) {
	if p == PartnerComplement {
		return c.Complement(), nil
	}

	others := make([]data.Color, 0, len(palette)-1)
	for _, o := range palette {
		if o != c {
			others = append(others, o)
		}
	}
	i, err := sample.Intn(src, len(others))
	if err != nil {
		return 0, err
	}

	return others[i], nil
}

func randomColor(palette []data.Color, src sample.Source) (data.Color, error) {
	i, err := sample.Intn(src, len(palette))
	if err != nil {
		return 0, err
	}
	return palette[i], nil
}

// PairSecretEncoder encodes a secret pixel for two participants in a
// single sub-pixel. The first share receives a uniformly random palette
// colour. For an empty pixel the second share receives the same colour,
// for an ink pixel the partner colour.
type PairSecretEncoder struct {
	palette []data.Color
	partner Partner
}

// NewPairSecretEncoder returns a PairSecretEncoder. The palette must
// hold at least two colours and, for PartnerComplement, be closed under
// complement.
func NewPairSecretEncoder(palette []data.Color, partner Partner) (*PairSecretEncoder, error) {
	if err := checkPalette(palette, partner); err != nil {
		return nil, err
	}
	return &PairSecretEncoder{palette: palette, partner: partner}, nil
}

func checkPalette(palette []data.Color, partner Partner) error {
	if len(palette) < 2 {
		return errors.Wrap(ErrInvalidParams, "palette should hold at least two colours")
	}
	if partner != PartnerComplement {
		return nil
	}
	in := make(map[data.Color]bool, len(palette))
	for _, c := range palette {
		in[c] = true
	}
	for _, c := range palette {
		if !in[c.Complement()] {
			return errors.Wrapf(ErrInvalidParams, "palette lacks the complement of %s", c)
		}
	}
	return nil
}

// Width returns 1.
func (e *PairSecretEncoder) Width() int {
	return 1
}

// Encode encodes one secret pixel.
func (e *PairSecretEncoder) Encode(ink bool, src sample.Source) ([][]data.Color, error) {
	c1, err := randomColor(e.palette, src)
	if err != nil {
		return nil, errors.Wrap(err, "cannot pick share colour")
	}
	c2 := c1
	if ink {
		if c2, err = e.partner.pick(e.palette, c1, src); err != nil {
			return nil, errors.Wrap(err, "cannot pick share colour")
		}
	}

	return [][]data.Color{{c1}, {c2}}, nil
}

// PairCoverEncoder embeds the covers of two participants. Each
// sub-pixel starts from a random background, a palette colour for the
// first share and its partner colour for the second, so that the
// stacked background is dark. Where a participant's cover is inked the
// sub-pixel is black.
type PairCoverEncoder struct {
	palette    []data.Color
	partner    Partner
	repetition int
}

// NewPairCoverEncoder returns a PairCoverEncoder producing d
// sub-pixels, each with its own background.
func NewPairCoverEncoder(palette []data.Color, partner Partner, d int) (*PairCoverEncoder, error) {
	if err := checkPalette(palette, partner); err != nil {
		return nil, err
	}
	if d < 1 {
		return nil, errors.Wrapf(ErrInvalidParams, "cover repetition %d should be at least 1", d)
	}
	return &PairCoverEncoder{palette: palette, partner: partner, repetition: d}, nil
}

// Width returns the number of sub-pixels per participant.
func (e *PairCoverEncoder) Width() int {
	return e.repetition
}

// Encode embeds the two cover pixels.
func (e *PairCoverEncoder) Encode(cover []bool, src sample.Source) ([][]data.Color, error) {
	if len(cover) != 2 {
		return nil, errors.Wrapf(internal.MalformedBlock, "expected 2 cover pixels, got %d", len(cover))
	}

	block := newBlock(2, e.repetition)
	for col := 0; col < e.repetition; col++ {
		b1, err := randomColor(e.palette, src)
		if err != nil {
			return nil, errors.Wrap(err, "cannot pick background colour")
		}
		b2, err := e.partner.pick(e.palette, b1, src)
		if err != nil {
			return nil, errors.Wrap(err, "cannot pick background colour")
		}
		for i, b := range []data.Color{b1, b2} {
			if cover[i] {
				b = data.Black
			}
			block[i][col] = b
		}
	}

	return block, nil
}

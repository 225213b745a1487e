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
	"io"

	"github.com/fentec-project/govcs/access"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Alphabet selects the colour alphabet and with it the pair of
// encoders a scheme uses.
type Alphabet string

const (
	// AlphabetBasis is the general (k,n) scheme: basis columns packed
	// into RGB sub-pixels, covers marked with red, green and blue.
	AlphabetBasis Alphabet = "basis"
	// AlphabetMismatch is the (2,2) scheme over red, green and blue in
	// which an ink pixel gives the two shares different colours.
	AlphabetMismatch Alphabet = "mismatch"
	// AlphabetComplementary is the (2,2) scheme over the primaries and
	// their complements in which an ink pixel gives the second share
	// the complement of the first.
	AlphabetComplementary Alphabet = "complementary"
	// AlphabetContrast is the (2,2) scheme over the high contrast pair
	// cyan and red.
	AlphabetContrast Alphabet = "contrast"
	// AlphabetVector is the (2,n) scheme in which the shares of an ink
	// pixel are distinct colour vectors in random order.
	AlphabetVector Alphabet = "vector"
	// AlphabetPerfectBlack is the (2,n) scheme in which the shares of an
	// ink pixel are a freshly shuffled cyclic colour sequence.
	AlphabetPerfectBlack Alphabet = "perfect-black"
)

// Alphabets lists all supported alphabets.
var Alphabets = []Alphabet{
	AlphabetBasis,
	AlphabetMismatch,
	AlphabetComplementary,
	AlphabetContrast,
	AlphabetVector,
	AlphabetPerfectBlack,
}

// Params represents configuration parameters of a scheme instance.
type Params struct {
	// Number of participants needed to reveal the secret.
	K int `yaml:"k"`
	// Number of participants.
	N int `yaml:"n"`
	// Colour alphabet, AlphabetBasis if empty.
	Alphabet Alphabet `yaml:"alphabet"`
	// How many times the cover block is repeated, 1 if zero.
	CoverRepetition int `yaml:"cover_repetition"`
	// Maximal number of rows encoded concurrently, GOMAXPROCS if zero.
	Workers int `yaml:"workers"`
}

// LoadParams decodes YAML encoded parameters from r, fills in the
// defaults and validates the result.
func LoadParams(r io.Reader) (*Params, error) {
	var p Params
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return nil, errors.Wrap(err, "cannot decode parameters")
	}
	p = p.withDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

func (p Params) withDefaults() Params {
	if p.Alphabet == "" {
		p.Alphabet = AlphabetBasis
	}
	if p.CoverRepetition == 0 {
		p.CoverRepetition = 1
	}
	return p
}

// Validate checks whether the parameters describe a supported scheme.
// Zero values that have a default are accepted.
func (p *Params) Validate() error {
	d := p.withDefaults()

	if _, err := access.NewStructure(d.K, d.N); err != nil {
		return err
	}
	if d.CoverRepetition < 1 {
		return errors.Wrapf(ErrInvalidParams, "cover repetition %d should be at least 1", d.CoverRepetition)
	}
	if d.Workers < 0 {
		return errors.Wrapf(ErrInvalidParams, "number of workers %d should not be negative", d.Workers)
	}

	switch d.Alphabet {
	case AlphabetBasis:
		if _, err := access.BasisSize(d.K, d.N); err != nil {
			return err
		}
	case AlphabetMismatch, AlphabetComplementary, AlphabetContrast:
		if d.K != 2 || d.N != 2 {
			return errors.Wrapf(ErrInvalidAccessStructure, "alphabet %s requires k = n = 2", d.Alphabet)
		}
	case AlphabetVector, AlphabetPerfectBlack:
		if d.K != 2 {
			return errors.Wrapf(ErrInvalidAccessStructure, "alphabet %s requires k = 2", d.Alphabet)
		}
	default:
		return errors.Wrapf(ErrUnknownAlphabet, "%q", d.Alphabet)
	}

	return nil
}

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
	"log/slog"
	"runtime"

	"github.com/fentec-project/govcs/access"
	"github.com/fentec-project/govcs/data"
	"github.com/pkg/errors"
)

// Scheme is an extended visual cryptography scheme: a threshold access
// structure together with a secret encoder, a cover encoder and the
// rule used to stack shadows.
//
// A Scheme is immutable and may be used from several goroutines.
type Scheme struct {
	Params    *Params
	Structure *access.Structure

	secret  SecretEncoder
	cover   CoverEncoder
	rule    StackRule
	workers int
	logger  *slog.Logger
}

// Option configures a Scheme.
type Option func(*Scheme)

// WithLogger sets the logger used to report progress at debug level.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheme) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithWorkers overrides the maximal number of rows encoded
// concurrently. Values below 1 are ignored.
func WithWorkers(workers int) Option {
	return func(s *Scheme) {
		if workers > 0 {
			s.workers = workers
		}
	}
}

// NewScheme configures a new scheme from params.
//
// It returns an error if the parameters are invalid or describe a
// threshold the selected alphabet does not support.
func NewScheme(params *Params, opts ...Option) (*Scheme, error) {
	if params == nil {
		return nil, errors.Wrap(ErrInvalidParams, "missing parameters")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	p := params.withDefaults()

	secret, cover, rule, err := encoders(&p)
	if err != nil {
		return nil, err
	}

	s, err := NewSchemeFromEncoders(p.K, p.N, secret, cover, rule)
	if err != nil {
		return nil, err
	}
	s.Params = &p
	if p.Workers > 0 {
		s.workers = p.Workers
	}
	for _, opt := range opts {
		opt(s)
	}

	attrs := []any{"structure", s.Structure.String(), "alphabet", p.Alphabet, "expansion", s.Width()}
	qualified := make([]int, p.K)
	for i := range qualified {
		qualified[i] = i
	}
	if ink, empty, err := s.ExpectedContrast(qualified); err == nil {
		attrs = append(attrs, "contrast", ink-empty)
	}
	s.logger.Debug("scheme ready", attrs...)

	return s, nil
}

// encoders builds the encoders selected by p.Alphabet.
func encoders(p *Params) (SecretEncoder, CoverEncoder, StackRule, error) {
	var palette []data.Color
	var partner Partner

	switch p.Alphabet {
	case AlphabetBasis, AlphabetVector, AlphabetPerfectBlack:
		cover, err := NewTriadCoverEncoder(p.N, p.CoverRepetition, data.Primaries)
		if err != nil {
			return nil, nil, 0, err
		}
		switch p.Alphabet {
		case AlphabetVector:
			secret, err := NewVectorSecretEncoder(p.N)
			return secret, cover, RuleFilter, err
		case AlphabetPerfectBlack:
			secret, err := NewPerfectBlackSecretEncoder(p.N)
			return secret, cover, RuleFilter, err
		}
		basis, err := access.NewBasis(p.K, p.N)
		if err != nil {
			return nil, nil, 0, err
		}
		return NewBasisEncoder(basis), cover, RuleAND, nil
	case AlphabetMismatch:
		palette, partner = data.Primaries, PartnerDifferent
	case AlphabetComplementary:
		palette, partner = append(append([]data.Color{}, data.Primaries...), data.Secondaries...), PartnerComplement
	case AlphabetContrast:
		palette, partner = []data.Color{data.Cyan, data.Red}, PartnerDifferent
	default:
		return nil, nil, 0, errors.Wrapf(ErrUnknownAlphabet, "%q", p.Alphabet)
	}

	secret, err := NewPairSecretEncoder(palette, partner)
	if err != nil {
		return nil, nil, 0, err
	}
	cover, err := NewPairCoverEncoder(palette, partner, p.CoverRepetition)
	if err != nil {
		return nil, nil, 0, err
	}
	return secret, cover, RuleFilter, nil
}

// NewSchemeFromEncoders assembles a (k,n) scheme from custom encoders.
// Both encoders must produce blocks for n participants. The Params of
// the returned scheme only carry k and n.
func NewSchemeFromEncoders(k, n int, secret SecretEncoder, cover CoverEncoder, rule StackRule, opts ...Option) (*Scheme, error) {
	st, err := access.NewStructure(k, n)
	if err != nil {
		return nil, err
	}
	if secret == nil || cover == nil {
		return nil, errors.Wrap(ErrInvalidParams, "missing encoder")
	}

	s := &Scheme{
		Params:    &Params{K: k, N: n},
		Structure: st,
		secret:    secret,
		cover:     cover,
		rule:      rule,
		workers:   runtime.GOMAXPROCS(0),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Expansion returns the widths of the secret and of the cover block.
func (s *Scheme) Expansion() (mSecret, mCover int) {
	return s.secret.Width(), s.cover.Width()
}

// Width returns the number of sub-pixels every source pixel expands to.
func (s *Scheme) Width() int {
	return s.secret.Width() + s.cover.Width()
}

// Rule returns the rule used to stack shadows of this scheme.
func (s *Scheme) Rule() StackRule {
	return s.rule
}

// SecretEncoder returns the encoder of the secret block.
func (s *Scheme) SecretEncoder() SecretEncoder {
	return s.secret
}

// CoverEncoder returns the encoder of the cover block.
func (s *Scheme) CoverEncoder() CoverEncoder {
	return s.cover
}

// Stack overlays shadows under the scheme's rule.
func (s *Scheme) Stack(shadows ...*data.ColorGrid) (*data.ColorGrid, error) {
	return Stack(s.rule, shadows...)
}

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
	"github.com/pkg/errors"
)

// StackRule models how light passes through overlaid sub-pixels.
type StackRule int

const (
	// RuleAND treats every channel as a filter: a channel stays lit
	// only if it is lit in every layer.
	RuleAND StackRule = iota
	// RuleFilter lets light through only where all layers show the same
	// colour; any other combination is black.
	RuleFilter
)

// String returns the name of the rule.
func (r StackRule) String() string {
	if r == RuleFilter {
		return "filter"
	}
	return "and"
}

// Combine returns the colour seen through sub-pixels a and b.
func (r StackRule) Combine(a, b data.Color) data.Color {
	if r == RuleFilter {
		if a != b {
			return data.Black
		}
		return a
	}
	return a.And(b)
}

// Stack overlays the given shadows under rule r and returns the result
// in a new grid of the same dimensions. Stacking a single shadow
// returns a copy of it.
//
// It returns an error if no shadows are given or their dimensions
// differ.
func Stack(r StackRule, shadows ...*data.ColorGrid) (*data.ColorGrid, error) {
	if len(shadows) == 0 {
		return nil, ErrNoShadows
	}
	for i, s := range shadows {
		if !wellFormedGrid(s) {
			return nil, errors.Wrapf(internal.MalformedShadow, "shadow %d", i)
		}
		if !s.DimsMatch(shadows[0]) {
			return nil, errors.Wrapf(ErrDimensionMismatch, "shadow %d is %dx%d, expected %dx%d",
				i, s.Width, s.Height, shadows[0].Width, shadows[0].Height)
		}
	}

	res := shadows[0].Copy()
	for _, s := range shadows[1:] {
		for i, c := range s.Pix {
			res.Pix[i] = r.Combine(res.Pix[i], c)
		}
	}

	return res, nil
}

// wellFormedGrid reports whether g is a grid with non-negative
// dimensions and one element per sub-pixel.
func wellFormedGrid(g *data.ColorGrid) bool {
	return g != nil && g.Width >= 0 && g.Height >= 0 && len(g.Pix) == g.Width*g.Height
}

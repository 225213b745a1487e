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

// Darkness measures how much light a region of every block of an
// expanded grid blocks. Blocks are m sub-pixels wide; the region covers
// sub-pixels [from, to) of each block. For the source pixel (x, y) the
// result holds, at index y*(g.Width/m)+x, the fraction of opaque
// channels in its region.
func Darkness(g *data.ColorGrid, m, from, to int) ([]float64, error) {
	if !wellFormedGrid(g) {
		return nil, errors.Wrap(internal.MalformedShadow, "cannot measure darkness")
	}
	if m < 1 || g.Width%m != 0 {
		return nil, errors.Wrapf(ErrDimensionMismatch, "grid width %d is not a multiple of %d", g.Width, m)
	}
	if from < 0 || to > m || from >= to {
		return nil, errors.Wrapf(ErrInvalidParams, "region [%d, %d) outside block of width %d", from, to, m)
	}

	w := g.Width / m
	res := make([]float64, w*g.Height)
	channels := float64(3 * (to - from))
	for y := 0; y < g.Height; y++ {
		row := g.Row(y)
		for x := 0; x < w; x++ {
			dark := 0
			for _, c := range row[x*m+from : x*m+to] {
				dark += c.Dark()
			}
			res[y*w+x] = float64(dark) / channels
		}
	}

	return res, nil
}

// MeanDarkness averages the Darkness of the region over the source
// pixels whose secret bit equals ink. It returns 0 if there are no such
// pixels.
func MeanDarkness(g *data.ColorGrid, secret *data.Bitmap, m, from, to int, ink bool) (float64, error) {
	if !wellFormedGrid(g) {
		return 0, errors.Wrap(internal.MalformedShadow, "cannot measure darkness")
	}
	if !wellFormed(secret) {
		return 0, errors.Wrap(internal.MalformedBitmap, "secret")
	}
	if g.Width != secret.Width*m || g.Height != secret.Height {
		return 0, errors.Wrapf(ErrDimensionMismatch, "grid does not expand a %dx%d secret", secret.Width, secret.Height)
	}
	d, err := Darkness(g, m, from, to)
	if err != nil {
		return 0, err
	}

	sum, count := 0.0, 0
	for i, v := range d {
		if secret.Pix[i] == ink {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}

	return sum / float64(count), nil
}

// Contrast returns the mean darkness of the secret blocks of stacked
// over the ink pixels and over the empty pixels of secret. A qualified
// set of shadows gives a clearly larger first value; a forbidden set
// gives equal values up to sampling noise.
func (s *Scheme) Contrast(stacked *data.ColorGrid, secret *data.Bitmap) (ink, empty float64, err error) {
	mSecret, _ := s.Expansion()
	if ink, err = MeanDarkness(stacked, secret, s.Width(), 0, mSecret, true); err != nil {
		return 0, 0, err
	}
	if empty, err = MeanDarkness(stacked, secret, s.Width(), 0, mSecret, false); err != nil {
		return 0, 0, err
	}

	return ink, empty, nil
}

// ExpectedContrast returns the darkness of the secret block that
// stacking the shadows of participants yields for an ink and for an
// empty pixel. It is only known for schemes built on a BasisEncoder.
func (s *Scheme) ExpectedContrast(participants []int) (ink, empty float64, err error) {
	e, ok := s.secret.(*BasisEncoder)
	if !ok {
		return 0, 0, errors.Wrapf(ErrInvalidParams, "contrast of %T is not known", s.secret)
	}
	if ink, err = e.Darkness(participants, true); err != nil {
		return 0, 0, err
	}
	if empty, err = e.Darkness(participants, false); err != nil {
		return 0, 0, err
	}

	return ink, empty, nil
}

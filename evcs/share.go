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
	"context"

	"github.com/fentec-project/govcs/data"
	"github.com/fentec-project/govcs/internal"
	"github.com/fentec-project/govcs/sample"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Share splits secret into one shadow per participant, embedding
// covers[i] into the shadow of participant i. Randomness is drawn from
// crypto/rand.
//
// All shadows are Width() times wider than the secret and equally high.
// Errors are reported before any shadow is returned.
func (s *Scheme) Share(secret *data.Bitmap, covers []*data.Bitmap) ([]*data.ColorGrid, error) {
	return s.ShareWith(sample.NewUniform(), secret, covers)
}

// ShareWith works as Share but draws all randomness from src. The
// shadows are fully determined by the state of src, independent of the
// number of workers. src must not be used by anyone else during the
// call; wrap it with sample.NewLocked if it is shared.
//
// Every row of the secret is encoded with its own generator keyed from
// src, so rows can be encoded concurrently without sharing state.
func (s *Scheme) ShareWith(src sample.Source, secret *data.Bitmap, covers []*data.Bitmap) ([]*data.ColorGrid, error) {
	if err := s.checkInputs(secret, covers); err != nil {
		return nil, err
	}

	gens := make([]*sample.UniformDet, secret.Height)
	for y := range gens {
		gen, err := sample.Fork(src)
		if err != nil {
			return nil, errors.Wrap(err, "cannot seed row generators")
		}
		gens[y] = gen
	}

	m := s.Width()
	shadows := make([]*data.ColorGrid, s.Structure.N)
	for i := range shadows {
		shadows[i] = data.NewColorGrid(secret.Width*m, secret.Height)
	}

	s.logger.Debug("sharing secret",
		"structure", s.Structure.String(),
		"width", secret.Width,
		"height", secret.Height,
		"expansion", m,
		"workers", s.workers)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(s.workers)
	for y := 0; y < secret.Height; y++ {
		y := y
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return s.shareRow(y, gens[y], secret, covers, shadows)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug("shadows ready", "count", len(shadows))

	return shadows, nil
}

func (s *Scheme) checkInputs(secret *data.Bitmap, covers []*data.Bitmap) error {
	if !wellFormed(secret) {
		return errors.Wrap(internal.MalformedBitmap, "secret")
	}
	if len(covers) != s.Structure.N {
		return errors.Wrapf(ErrMismatchedCoverCount, "got %d covers for %d participants", len(covers), s.Structure.N)
	}
	for i, c := range covers {
		if !wellFormed(c) {
			return errors.Wrapf(internal.MalformedBitmap, "cover %d", i)
		}
		if !c.DimsMatch(secret) {
			return errors.Wrapf(ErrDimensionMismatch, "cover %d is %dx%d, secret is %dx%d",
				i, c.Width, c.Height, secret.Width, secret.Height)
		}
	}

	return nil
}

// wellFormed reports whether b is a bitmap with non-negative dimensions
// and one element per pixel.
func wellFormed(b *data.Bitmap) bool {
	return b != nil && b.Width >= 0 && b.Height >= 0 && len(b.Pix) == b.Width*b.Height
}

// shareRow encodes row y of the secret into the shadows. Rows write to
// disjoint parts of the shadows.
func (s *Scheme) shareRow(y int, src sample.Source, secret *data.Bitmap, covers []*data.Bitmap, shadows []*data.ColorGrid) error {
	m := s.Width()
	cover := make([]bool, len(covers))
	for x := 0; x < secret.Width; x++ {
		for i, c := range covers {
			cover[i] = c.Ink(x, y)
		}
		block, err := s.EncodePixel(secret.Ink(x, y), cover, src)
		if err != nil {
			return errors.Wrapf(err, "cannot encode pixel (%d, %d)", x, y)
		}
		for i, row := range block {
			copy(shadows[i].Row(y)[x*m:(x+1)*m], row)
		}
	}

	return nil
}

// EncodePixel expands one source pixel: for every participant it
// returns the secret block followed by the cover block. Every call
// draws fresh randomness from src.
func (s *Scheme) EncodePixel(ink bool, cover []bool, src sample.Source) ([][]data.Color, error) {
	sec, err := s.secret.Encode(ink, src)
	if err != nil {
		return nil, err
	}
	cov, err := s.cover.Encode(cover, src)
	if err != nil {
		return nil, err
	}

	n := s.Structure.N
	if len(sec) != n || len(cov) != n {
		return nil, errors.Wrapf(internal.MalformedBlock, "expected blocks for %d participants", n)
	}
	ms, mc := s.Expansion()
	block := make([][]data.Color, n)
	for i := range block {
		if len(sec[i]) != ms || len(cov[i]) != mc {
			return nil, errors.Wrapf(internal.MalformedBlock, "participant %d", i)
		}
		row := make([]data.Color, 0, ms+mc)
		row = append(row, sec[i]...)
		block[i] = append(row, cov[i]...)
	}

	return block, nil
}

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

// TriadCoverEncoder embeds covers by splitting the participants into
// groups of three. Sub-pixel j of the base block belongs to the group
// starting at participant 3j; within it participant i shows its marker
// colour markers[i%3] where its cover is empty and black where it is
// inked. Participants outside the group always show black there. The
// base block is repeated to sharpen the covers.
//
// The encoding is deterministic.
type TriadCoverEncoder struct {
	n          int
	base       int
	repetition int
	markers    [3]data.Color
}

// NewTriadCoverEncoder returns a TriadCoverEncoder for n participants
// repeating the base block d times. It returns an error if d < 1 or if
// there are not exactly three markers.
func NewTriadCoverEncoder(n, d int, markers []data.Color) (*TriadCoverEncoder, error) {
	if n < 1 || d < 1 {
		return nil, errors.Wrapf(ErrInvalidParams, "cannot embed covers of %d participants %d times", n, d)
	}
	if len(markers) != 3 {
		return nil, errors.Wrapf(ErrInvalidParams, "expected 3 marker colours, got %d", len(markers))
	}
	e := &TriadCoverEncoder{
		n:          n,
		base:       internal.CeilDiv(n, 3),
		repetition: d,
	}
	copy(e.markers[:], markers)

	return e, nil
}

// Width returns the number of sub-pixels per participant, that is
// ceil(n/3) * d.
func (e *TriadCoverEncoder) Width() int {
	return e.base * e.repetition
}

// Encode embeds the cover pixels. src is not used.
func (e *TriadCoverEncoder) Encode(cover []bool, _ sample.Source) ([][]data.Color, error) {
	if len(cover) != e.n {
		return nil, errors.Wrapf(internal.MalformedBlock, "expected %d cover pixels, got %d", e.n, len(cover))
	}

	block := newBlock(e.n, e.Width())
	for col := range block[0] {
		start := (col % e.base) * 3
		for i := range block {
			if i >= start && i < start+3 && !cover[i] {
				block[i][col] = e.markers[i%3]
			} else {
				block[i][col] = data.Black
			}
		}
	}

	return block, nil
}

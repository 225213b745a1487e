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
	"github.com/fentec-project/govcs/sample"
)

// SecretEncoder expands one secret pixel into a block of sub-pixels
// for every participant.
//
// For a fixed participant and sub-pixel position the distribution of
// the encoded colour must not depend on ink; only the joint pattern
// across participants may.
type SecretEncoder interface {
	// Width returns the number of sub-pixels per participant.
	Width() int
	// Encode returns one row of Width() colours per participant. It
	// draws fresh randomness from src on every call.
	Encode(ink bool, src sample.Source) ([][]data.Color, error)
}

// CoverEncoder embeds the cover pixels of all participants into a
// block of sub-pixels for every participant.
type CoverEncoder interface {
	// Width returns the number of sub-pixels per participant.
	Width() int
	// Encode returns one row of Width() colours per participant, given
	// the ink flag of each participant's cover pixel.
	Encode(cover []bool, src sample.Source) ([][]data.Color, error)
}

func newBlock(n, width int) [][]data.Color {
	block := make([][]data.Color, n)
	for i := range block {
		block[i] = make([]data.Color, width)
	}
	return block
}

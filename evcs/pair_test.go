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

package evcs_test

import (
	"errors"
	"math"
	"testing"

	"github.com/fentec-project/govcs/data"
	"github.com/fentec-project/govcs/evcs"
	"github.com/fentec-project/govcs/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var complementary = []data.Color{data.Red, data.Green, data.Blue, data.Cyan, data.Magenta, data.Yellow}

func TestPairSecretEncoder(t *testing.T) {
	var tests = []struct {
		name    string
		palette []data.Color
		partner evcs.Partner
		check   func(c1, c2 data.Color) bool
	}{
		{
			name:    "mismatch",
			palette: data.Primaries,
			partner: evcs.PartnerDifferent,
			check:   func(c1, c2 data.Color) bool { return c1 != c2 },
		},
		{
			name:    "complementary",
			palette: complementary,
			partner: evcs.PartnerComplement,
			check:   func(c1, c2 data.Color) bool { return c2 == c1.Complement() && c1.And(c2) == data.Black },
		},
		{
			name:    "contrast",
			palette: []data.Color{data.Cyan, data.Red},
			partner: evcs.PartnerDifferent,
			check:   func(c1, c2 data.Color) bool { return c1 != c2 },
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e, err := evcs.NewPairSecretEncoder(test.palette, test.partner)
			require.NoError(t, err)
			assert.Equal(t, 1, e.Width())
			src := testSource(2)

			for i := 0; i < 200; i++ {
				block, err := e.Encode(false, src)
				require.NoError(t, err)
				require.Len(t, block, 2)
				assert.Contains(t, test.palette, block[0][0])
				assert.Equal(t, block[0][0], block[1][0])

				block, err = e.Encode(true, src)
				require.NoError(t, err)
				assert.Contains(t, test.palette, block[0][0])
				assert.Contains(t, test.palette, block[1][0])
				assert.True(t, test.check(block[0][0], block[1][0]), "%s then %s", block[0][0], block[1][0])
			}
		})
	}
}

// The colour seen by the second participant alone is uniform over the
// palette whatever the secret.
func TestPairSecretEncoder_Marginal(t *testing.T) {
	e, err := evcs.NewPairSecretEncoder(data.Primaries, evcs.PartnerDifferent)
	require.NoError(t, err)
	src := testSource(3)
	draws := 30000

	for _, ink := range []bool{false, true} {
		freq := make(map[data.Color]int)
		for i := 0; i < draws; i++ {
			block, err := e.Encode(ink, src)
			require.NoError(t, err)
			freq[block[1][0]]++
		}
		for _, c := range data.Primaries {
			p := float64(freq[c]) / float64(draws)
			assert.True(t, math.Abs(p-1.0/3) < 0.02, "colour %s with ink %v: %f", c, ink, p)
		}
	}
}

func TestPairCoverEncoder(t *testing.T) {
	e, err := evcs.NewPairCoverEncoder(complementary, evcs.PartnerComplement, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, e.Width())
	src := testSource(4)

	block, err := e.Encode([]bool{false, false}, src)
	require.NoError(t, err)
	require.Len(t, block, 2)
	for col := 0; col < 3; col++ {
		assert.Contains(t, complementary, block[0][col])
		assert.Equal(t, block[0][col].Complement(), block[1][col])
	}

	block, err = e.Encode([]bool{true, false}, src)
	require.NoError(t, err)
	for col := 0; col < 3; col++ {
		assert.Equal(t, data.Black, block[0][col])
		assert.Contains(t, complementary, block[1][col])
	}

	block, err = e.Encode([]bool{true, true}, src)
	require.NoError(t, err)
	assert.Equal(t, [][]data.Color{
		{data.Black, data.Black, data.Black},
		{data.Black, data.Black, data.Black},
	}, block)

	block, err = e.Encode([]bool{true}, src)
	assert.Nil(t, block)
	assert.True(t, errors.Is(err, internal.MalformedBlock))
}

func TestPairCoverEncoder_Different(t *testing.T) {
	e, err := evcs.NewPairCoverEncoder([]data.Color{data.Cyan, data.Red}, evcs.PartnerDifferent, 1)
	require.NoError(t, err)
	src := testSource(5)

	for i := 0; i < 100; i++ {
		block, err := e.Encode([]bool{false, false}, src)
		require.NoError(t, err)
		assert.ElementsMatch(t, []data.Color{data.Cyan, data.Red}, []data.Color{block[0][0], block[1][0]})
	}
}

func TestPairEncoders_Invalid(t *testing.T) {
	_, err := evcs.NewPairSecretEncoder([]data.Color{data.Red}, evcs.PartnerDifferent)
	assert.True(t, errors.Is(err, evcs.ErrInvalidParams))
	_, err = evcs.NewPairSecretEncoder(data.Primaries, evcs.PartnerComplement)
	assert.True(t, errors.Is(err, evcs.ErrInvalidParams))
	_, err = evcs.NewPairCoverEncoder(data.Primaries, evcs.PartnerDifferent, 0)
	assert.True(t, errors.Is(err, evcs.ErrInvalidParams))

	e, err := evcs.NewPairSecretEncoder(data.Primaries, evcs.PartnerDifferent)
	require.NoError(t, err)
	block, err := e.Encode(true, failingSource{})
	assert.Nil(t, block)
	assert.True(t, errors.Is(err, errBroken))
}

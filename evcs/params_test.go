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
	"strings"
	"testing"

	"github.com/fentec-project/govcs/evcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParams(t *testing.T) {
	p, err := evcs.LoadParams(strings.NewReader(`
k: 3
n: 5
alphabet: basis
cover_repetition: 2
workers: 4
`))
	require.NoError(t, err)
	assert.Equal(t, &evcs.Params{K: 3, N: 5, Alphabet: evcs.AlphabetBasis, CoverRepetition: 2, Workers: 4}, p)
}

func TestLoadParams_Defaults(t *testing.T) {
	p, err := evcs.LoadParams(strings.NewReader("k: 2\nn: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, evcs.AlphabetBasis, p.Alphabet)
	assert.Equal(t, 1, p.CoverRepetition)
	assert.Equal(t, 0, p.Workers)
}

func TestLoadParams_Malformed(t *testing.T) {
	_, err := evcs.LoadParams(strings.NewReader("k: [1, 2"))
	assert.Error(t, err)
}

func TestParams_Validate(t *testing.T) {
	var tests = []struct {
		name   string
		params evcs.Params
		expect error
	}{
		{"valid basis", evcs.Params{K: 3, N: 4}, nil},
		{"valid pair", evcs.Params{K: 2, N: 2, Alphabet: evcs.AlphabetContrast}, nil},
		{"valid vector", evcs.Params{K: 2, N: 7, Alphabet: evcs.AlphabetVector}, nil},
		{"zero threshold", evcs.Params{K: 0, N: 3}, evcs.ErrInvalidAccessStructure},
		{"threshold above n", evcs.Params{K: 4, N: 3}, evcs.ErrInvalidAccessStructure},
		{"pair with three participants", evcs.Params{K: 2, N: 3, Alphabet: evcs.AlphabetMismatch}, evcs.ErrInvalidAccessStructure},
		{"perfect black with threshold three", evcs.Params{K: 3, N: 3, Alphabet: evcs.AlphabetPerfectBlack}, evcs.ErrInvalidAccessStructure},
		{"basis too large", evcs.Params{K: 30, N: 40}, evcs.ErrInvalidAccessStructure},
		{"unknown alphabet", evcs.Params{K: 2, N: 2, Alphabet: "sepia"}, evcs.ErrUnknownAlphabet},
		{"negative repetition", evcs.Params{K: 2, N: 2, CoverRepetition: -1}, evcs.ErrInvalidParams},
		{"negative workers", evcs.Params{K: 2, N: 2, Workers: -2}, evcs.ErrInvalidParams},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.params.Validate()
			if test.expect == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, test.expect), "unexpected error: %v", err)

			s, err := evcs.NewScheme(&test.params)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, test.expect))
		})
	}
}

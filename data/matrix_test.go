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

package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	m, err := NewMatrix([]BitVector{
		{1, 0, 1},
		{0, 0, 1},
	})
	if err != nil {
		t.Fatalf("Error during matrix creation: %v", err)
	}

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, Matrix{{1, 0}, {0, 0}, {1, 1}}, m.Transpose())
	assert.Equal(t, m, m.Transpose().Transpose())

	or, err := m.RowOr([]int{0, 1})
	assert.NoError(t, err)
	assert.Equal(t, BitVector{1, 0, 1}, or)

	or, err = m.RowOr(nil)
	assert.NoError(t, err)
	assert.Equal(t, BitVector{0, 0, 0}, or)

	_, err = m.RowOr([]int{2})
	assert.Error(t, err)
	_, err = m.RowOr([]int{-1})
	assert.Error(t, err)

	_, err = NewMatrix([]BitVector{{1}, {1, 0}})
	assert.Error(t, err)
}

func TestMatrix_Empty(t *testing.T) {
	m, err := NewMatrix(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())
	assert.Equal(t, 0, m.Transpose().Rows())
}

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
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmap(t *testing.T) {
	b, err := NewBitmapFromRows([][]bool{
		{true, false, false},
		{false, false, true},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, b.Width)
	assert.Equal(t, 2, b.Height)
	assert.True(t, b.Ink(0, 0))
	assert.True(t, b.Ink(2, 1))
	assert.False(t, b.Ink(1, 1))

	b.Set(1, 1, true)
	assert.True(t, b.Ink(1, 1))

	assert.True(t, b.DimsMatch(NewBitmap(3, 2)))
	assert.False(t, b.DimsMatch(NewBitmap(2, 3)))

	_, err = NewBitmapFromRows([][]bool{{true}, {true, false}})
	assert.Error(t, err)
}

func TestBitmap_ImageRoundTrip(t *testing.T) {
	img := image.NewGray(image.Rect(2, 3, 6, 5))
	for y := 3; y < 5; y++ {
		for x := 2; x < 6; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	img.SetGray(2, 3, color.Gray{Y: 0})
	img.SetGray(5, 4, color.Gray{Y: 100})

	b := NewBitmapFromImage(img)
	assert.Equal(t, 4, b.Width)
	assert.Equal(t, 2, b.Height)
	assert.True(t, b.Ink(0, 0))
	assert.True(t, b.Ink(3, 1))
	assert.False(t, b.Ink(1, 0))

	assert.Equal(t, b, NewBitmapFromImage(b.Image()))
}

func TestColorGrid(t *testing.T) {
	g := NewConstantColorGrid(3, 2, White)
	g.Set(1, 1, Red)
	assert.Equal(t, Red, g.At(1, 1))
	assert.Equal(t, []Color{White, Red, White}, g.Row(1))

	c := g.Copy()
	c.Set(0, 0, Black)
	assert.Equal(t, White, g.At(0, 0))

	img := g.Image()
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(1, 1))
	assert.Equal(t, g, NewColorGridFromImage(img))
	assert.True(t, g.DimsMatch(NewColorGrid(3, 2)))
}

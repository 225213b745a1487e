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
	"fmt"
	"image"
	"image/color"
)

// Bitmap is a binary image. Pix holds one element per pixel in
// row-major order; true marks ink (a black pixel), false marks an
// empty (white) pixel.
type Bitmap struct {
	Width  int
	Height int
	Pix    []bool
}

// NewBitmap returns an empty bitmap of the given dimensions.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]bool, width*height),
	}
}

// NewBitmapFromRows builds a bitmap from rows of ink flags.
// It returns error if the rows are not all of the same length.
func NewBitmapFromRows(rows [][]bool) (*Bitmap, error) {
	if len(rows) == 0 {
		return NewBitmap(0, 0), nil
	}
	b := NewBitmap(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != b.Width {
			return nil, fmt.Errorf("all rows should be of the same length")
		}
		copy(b.Pix[y*b.Width:], row)
	}

	return b, nil
}

// NewBitmapFromImage converts img into a bitmap. A pixel whose
// luminance is below half intensity becomes ink. The bitmap origin is
// the minimum point of img's bounds.
func NewBitmapFromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	b := NewBitmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			g := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			b.Pix[y*b.Width+x] = g.Y < 128
		}
	}

	return b
}

// Ink reports whether the pixel at (x, y) is ink.
func (b *Bitmap) Ink(x, y int) bool {
	return b.Pix[y*b.Width+x]
}

// Set sets the pixel at (x, y).
func (b *Bitmap) Set(x, y int, ink bool) {
	b.Pix[y*b.Width+x] = ink
}

// DimsMatch returns a bool indicating whether bitmaps
// b and other have the same dimensions.
func (b *Bitmap) DimsMatch(other *Bitmap) bool {
	return b.Width == other.Width && b.Height == other.Height
}

// Image renders b as a black and white image.
func (b *Bitmap) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
	for i, ink := range b.Pix {
		if !ink {
			img.Pix[(i/b.Width)*img.Stride+i%b.Width] = 255
		}
	}

	return img
}

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

	"github.com/fentec-project/govcs/data"
	"github.com/fentec-project/govcs/sample"
)

var errBroken = errors.New("broken generator")

type failingSource struct{}

func (failingSource) Uint64() (uint64, error) {
	return 0, errBroken
}

func testSource(seed byte) *sample.UniformDet {
	var key [32]byte
	for i := range key {
		key[i] = seed ^ byte(7*i)
	}
	return sample.NewUniformDet(&key)
}

// checkerboard returns a bitmap whose ink pixels alternate with empty
// ones, starting with ink at the origin.
func checkerboard(w, h int) *data.Bitmap {
	b := data.NewBitmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.Set(x, y, (x+y)%2 == 0)
		}
	}
	return b
}

// stripes returns a bitmap with ink in every column x where x%period
// equals phase.
func stripes(w, h, period, phase int) *data.Bitmap {
	b := data.NewBitmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.Set(x, y, x%period == phase)
		}
	}
	return b
}

func covers(n, w, h int) []*data.Bitmap {
	c := make([]*data.Bitmap, n)
	for i := range c {
		c[i] = stripes(w, h, n+1, i)
	}
	return c
}

func constant(w, h int, ink bool) *data.Bitmap {
	b := data.NewBitmap(w, h)
	for i := range b.Pix {
		b.Pix[i] = ink
	}
	return b
}

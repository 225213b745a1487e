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
	"image/color"
)

// Color is an index into the eight colours that can be formed with
// fully lit or fully dark RGB channels. Every set bit marks a channel
// that lets light through (value 255); a cleared bit marks an opaque
// channel (value 0).
type Color uint8

// Channel bits of a Color.
const (
	ChannelB Color = 1 << iota
	ChannelG
	ChannelR
)

// The eight colours of the channel cube.
const (
	Black   Color = 0
	Blue          = ChannelB
	Green         = ChannelG
	Cyan          = ChannelG | ChannelB
	Red           = ChannelR
	Magenta       = ChannelR | ChannelB
	Yellow        = ChannelR | ChannelG
	White         = ChannelR | ChannelG | ChannelB
)

var colorNames = [8]string{"black", "blue", "green", "cyan", "red", "magenta", "yellow", "white"}

// complements maps each colour to the colour that lets through exactly
// the channels it blocks. Black is its own complement, as an opaque
// pixel stays opaque.
var complements = [8]Color{Black, Yellow, Magenta, Red, Cyan, Green, Blue, Black}

// Primaries holds the three single-channel colours in channel order.
var Primaries = []Color{Red, Green, Blue}

// Secondaries holds the three two-channel colours, each listed at the
// position of the primary it complements.
var Secondaries = []Color{Cyan, Magenta, Yellow}

// Complement returns the complementary colour of c.
func (c Color) Complement() Color {
	return complements[c&White]
}

// And returns the colour that remains when light passes through both
// c and other.
func (c Color) And(other Color) Color {
	return c & other
}

// Lit reports whether channel ch lets light through.
func (c Color) Lit(ch Color) bool {
	return c&ch != 0
}

// Dark returns the number of opaque channels of c.
func (c Color) Dark() int {
	d := 0
	for _, ch := range []Color{ChannelR, ChannelG, ChannelB} {
		if !c.Lit(ch) {
			d++
		}
	}

	return d
}

// Channels returns the 8-bit channel values of c.
func (c Color) Channels() (r, g, b uint8) {
	if c.Lit(ChannelR) {
		r = 255
	}
	if c.Lit(ChannelG) {
		g = 255
	}
	if c.Lit(ChannelB) {
		b = 255
	}

	return r, g, b
}

// RGBA returns c as an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.Channels()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// String returns the name of the colour.
func (c Color) String() string {
	return colorNames[c&White]
}

// ColorOf maps an arbitrary colour onto the nearest Color, treating a
// channel as lit when it is at least half intensity.
func ColorOf(col color.Color) Color {
	r, g, b, _ := col.RGBA()
	var c Color
	if r >= 0x8000 {
		c |= ChannelR
	}
	if g >= 0x8000 {
		c |= ChannelG
	}
	if b >= 0x8000 {
		c |= ChannelB
	}

	return c
}

// PackColumns packs up to three bits into one Color, one bit per
// channel in R, G, B order. A bit equal to 1 darkens its channel.
func PackColumns(r, g, b uint8) Color {
	c := White
	if r == 1 {
		c &^= ChannelR
	}
	if g == 1 {
		c &^= ChannelG
	}
	if b == 1 {
		c &^= ChannelB
	}

	return c
}

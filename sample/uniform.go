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

package sample

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Source provides uniformly distributed 64-bit words.
type Source interface {
	Uint64() (uint64, error)
}

// bufSize is the number of random bytes fetched at once.
const bufSize = 512

// Uniform samples random words from a cryptographically secure
// generator. By default the generator is crypto/rand.
type Uniform struct {
	r   io.Reader
	buf []byte
	off int
}

// NewUniform returns an instance of the Uniform source reading
// from crypto/rand.
func NewUniform() *Uniform {
	return NewUniformFrom(rand.Reader)
}

// NewUniformFrom returns an instance of the Uniform source reading
// from r. The reader is expected to deliver uniformly random bytes.
func NewUniformFrom(r io.Reader) *Uniform {
	return &Uniform{
		r:   r,
		buf: make([]byte, bufSize),
		off: bufSize,
	}
}

// Uint64 returns a random word. It returns an error if the
// underlying reader fails.
func (u *Uniform) Uint64() (uint64, error) {
	if u.off+8 > len(u.buf) {
		if _, err := io.ReadFull(u.r, u.buf); err != nil {
			return 0, errors.Wrap(err, "error while reading randomness")
		}
		u.off = 0
	}
	v := binary.LittleEndian.Uint64(u.buf[u.off:])
	u.off += 8

	return v, nil
}

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
	"encoding/binary"

	"github.com/pkg/errors"
	"golang.org/x/crypto/salsa20"
)

// zeros is the keystream input. It is never written.
var zeros [bufSize]byte

// UniformDet samples (deterministic) random words from a pseudo-random
// generator keyed by a 32-byte key. The generator is the salsa20
// keystream; every refill of the internal buffer uses the next nonce.
type UniformDet struct {
	key   *[32]byte
	nonce uint64
	buf   []byte
	off   int
}

// NewUniformDet returns an instance of the UniformDet source.
// Two instances created with the same key produce the same words.
func NewUniformDet(key *[32]byte) *UniformDet {
	k := *key
	return &UniformDet{
		key: &k,
		buf: make([]byte, bufSize),
		off: bufSize,
	}
}

// newKey draws a fresh 32-byte generator key from src.
func newKey(src Source) (*[32]byte, error) {
	var key [32]byte
	for i := 0; i < 4; i++ {
		w, err := src.Uint64()
		if err != nil {
			return nil, errors.Wrap(err, "cannot derive generator key")
		}
		binary.LittleEndian.PutUint64(key[8*i:], w)
	}

	return &key, nil
}

// Fork draws a fresh key from src and returns a new UniformDet keyed
// with it. Forking lets every worker own an independent generator
// seeded from a single parent source.
func Fork(src Source) (*UniformDet, error) {
	key, err := newKey(src)
	if err != nil {
		return nil, err
	}

	return NewUniformDet(key), nil
}

// Uint64 returns a pseudo-random word. It never fails.
func (u *UniformDet) Uint64() (uint64, error) {
	if u.off+8 > len(u.buf) {
		var nonce [8]byte
		binary.LittleEndian.PutUint64(nonce[:], u.nonce)
		salsa20.XORKeyStream(u.buf, zeros[:], nonce[:], u.key)
		u.nonce++
		u.off = 0
	}
	v := binary.LittleEndian.Uint64(u.buf[u.off:])
	u.off += 8

	return v, nil
}

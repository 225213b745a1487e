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
)

// BitVector wraps a slice of bits. Every element is either 0 or 1.
type BitVector []uint8

// NewConstantBitVector returns a new BitVector instance
// with all elements set to bit b.
func NewConstantBitVector(len int, b uint8) BitVector {
	vec := make(BitVector, len)
	for i := range vec {
		vec[i] = b & 1
	}

	return vec
}

// Weight returns the Hamming weight of vector v.
func (v BitVector) Weight() int {
	w := 0
	for _, b := range v {
		w += int(b)
	}

	return w
}

// Or computes the element-wise disjunction of v and other.
// The result is returned in a new BitVector.
// Error is returned if v and other have different lengths.
func (v BitVector) Or(other BitVector) (BitVector, error) {
	if len(v) != len(other) {
		return nil, fmt.Errorf("vectors should be of the same length")
	}
	res := make(BitVector, len(v))
	for i := range v {
		res[i] = v[i] | other[i]
	}

	return res, nil
}

// String produces a compact representation of v, e.g. "0110".
func (v BitVector) String() string {
	s := make([]byte, len(v))
	for i, b := range v {
		s[i] = '0' + b
	}

	return string(s)
}

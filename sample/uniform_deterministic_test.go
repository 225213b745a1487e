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

package sample_test

import (
	"testing"

	"github.com/fentec-project/govcs/sample"
	"github.com/stretchr/testify/assert"
)

func testKey(seed byte) *[32]byte {
	var key [32]byte
	for i := range key {
		key[i] = seed + byte(i)
	}
	return &key
}

func TestUniformDet(t *testing.T) {
	a := sample.NewUniformDet(testKey(1))
	b := sample.NewUniformDet(testKey(1))
	c := sample.NewUniformDet(testKey(2))

	same, differ := 0, 0
	// cross several buffer refills
	for i := 0; i < 1000; i++ {
		va, _ := a.Uint64()
		vb, _ := b.Uint64()
		vc, _ := c.Uint64()
		if va == vb {
			same++
		}
		if va != vc {
			differ++
		}
	}
	assert.Equal(t, 1000, same, "equal keys should give equal streams")
	assert.Equal(t, 1000, differ, "different keys should give different streams")
}

func TestUniformDet_KeyIsCopied(t *testing.T) {
	key := testKey(7)
	a := sample.NewUniformDet(key)
	key[0]++
	b := sample.NewUniformDet(testKey(7))

	va, _ := a.Uint64()
	vb, _ := b.Uint64()
	assert.Equal(t, vb, va)
}

func TestFork(t *testing.T) {
	parent := sample.NewUniformDet(testKey(3))
	f1, err := sample.Fork(parent)
	assert.NoError(t, err)
	f2, err := sample.Fork(parent)
	assert.NoError(t, err)

	v1, _ := f1.Uint64()
	v2, _ := f2.Uint64()
	assert.NotEqual(t, v1, v2, "forks should be independent")

	_, err = sample.Fork(sample.NewUniformFrom(failingReader{}))
	assert.Error(t, err)
}

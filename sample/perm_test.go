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
	"sort"
	"testing"

	"github.com/fentec-project/govcs/sample"
	"github.com/stretchr/testify/assert"
)

func TestIntn(t *testing.T) {
	src := sample.NewUniformDet(testKey(11))
	n := 6
	draws := 60000
	counts := make([]int, n)
	for i := 0; i < draws; i++ {
		v, err := sample.Intn(src, n)
		if err != nil {
			t.Fatalf("Error during sampling: %v", err)
		}
		counts[v]++
	}
	// expected 10000 per bucket, standard deviation about 91
	for v, c := range counts {
		assert.True(t, c > 9500 && c < 10500, "value %d drawn %d times", v, c)
	}

	_, err := sample.Intn(src, 0)
	assert.Error(t, err)
}

func TestPerm(t *testing.T) {
	src := sample.NewUniformDet(testKey(13))
	// each of the 6 permutations of 3 elements should be equally likely
	counts := make(map[[3]int]int)
	for i := 0; i < 6000; i++ {
		p, err := sample.Perm(src, 3)
		if err != nil {
			t.Fatalf("Error during sampling: %v", err)
		}
		counts[[3]int{p[0], p[1], p[2]}]++
	}
	assert.Equal(t, 6, len(counts))
	for p, c := range counts {
		assert.True(t, c > 850 && c < 1150, "permutation %v drawn %d times", p, c)
	}
}

func TestChoose(t *testing.T) {
	src := sample.NewUniformDet(testKey(14))
	for i := 0; i < 100; i++ {
		c, err := sample.Choose(src, 9, 4)
		assert.NoError(t, err)
		assert.Len(t, c, 4)
		s := append([]int(nil), c...)
		sort.Ints(s)
		for j := 1; j < len(s); j++ {
			assert.NotEqual(t, s[j-1], s[j], "chosen elements should be distinct")
		}
		for _, v := range c {
			assert.True(t, v >= 0 && v < 9)
		}
	}

	_, err := sample.Choose(src, 3, 4)
	assert.Error(t, err)
}

func TestShuffle_Failure(t *testing.T) {
	err := sample.Shuffle(sample.NewUniformFrom(failingReader{}), 4, func(i, j int) {})
	assert.Error(t, err)
}

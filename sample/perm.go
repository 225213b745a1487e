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
	"fmt"
)

// Intn returns a uniformly random integer from the interval [0, n).
// Words falling into the biased tail of the 64-bit range are rejected,
// so the result carries no modulo bias.
func Intn(src Source, n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("upper bound on samples should be positive")
	}
	bound := uint64(n)
	threshold := -bound % bound
	for {
		v, err := src.Uint64()
		if err != nil {
			return 0, err
		}
		if v >= threshold {
			return int(v % bound), nil
		}
	}
}

// Shuffle pseudo-randomizes the order of n elements with the
// Fisher-Yates algorithm. swap swaps the elements with indexes i and j.
func Shuffle(src Source, n int, swap func(i, j int)) error {
	for i := n - 1; i > 0; i-- {
		j, err := Intn(src, i+1)
		if err != nil {
			return err
		}
		swap(i, j)
	}

	return nil
}

// Perm returns a uniformly random permutation of the integers [0, n).
func Perm(src Source, n int) ([]int, error) {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	err := Shuffle(src, n, func(i, j int) { p[i], p[j] = p[j], p[i] })
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Choose returns k distinct integers from [0, n) in random order.
// Every ordered selection is equally likely.
func Choose(src Source, n, k int) ([]int, error) {
	if k < 0 || k > n {
		return nil, fmt.Errorf("cannot choose %d of %d elements", k, n)
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	// partial Fisher-Yates: the first k positions are settled
	for i := 0; i < k; i++ {
		j, err := Intn(src, n-i)
		if err != nil {
			return nil, err
		}
		p[i], p[i+j] = p[i+j], p[i]
	}

	return p[:k], nil
}

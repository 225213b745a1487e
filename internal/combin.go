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

package internal

// Binomial calculates the binomial coefficient C(n, k).
// It returns 0 if k < 0 or k > n. The result must fit in an int.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	ret := 1
	for i := 1; i <= k; i++ {
		// exact at every step: ret*(n-k+i) is divisible by i
		ret = ret * (n - k + i) / i
	}

	return ret
}

// Subsets returns all size-k subsets of {0, ..., n-1} in lexicographic
// order. Each subset is listed in increasing order.
func Subsets(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	ret := make([][]int, 0, Binomial(n, k))
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		subset := make([]int, k)
		copy(subset, idx)
		ret = append(ret, subset)

		// find the rightmost index that can still be increased
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return ret
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Patterns returns all 2^k bit strings of length k in lexicographic
// order, the first bit being the most significant. k must be small
// enough for 2^k strings to be held in memory.
func Patterns(k int) [][]uint8 {
	ret := make([][]uint8, 1<<uint(k))
	for v := range ret {
		p := make([]uint8, k)
		for j := 0; j < k; j++ {
			p[j] = uint8(v>>uint(k-1-j)) & 1
		}
		ret[v] = p
	}

	return ret
}

// CeilDiv returns ceil(a / b) for a >= 0 and b > 0.
func CeilDiv(a, b int) int {
	return (a + b - 1) / b
}

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

package access

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidStructure is returned when the threshold does not satisfy
// 1 <= k <= n.
var ErrInvalidStructure = errors.New("invalid access structure")

// ErrInvalidParticipant is returned for a participant index outside
// [0, n).
var ErrInvalidParticipant = errors.New("invalid participant")

// Structure represents a (k,n) threshold access structure.
type Structure struct {
	// Number of participants needed to reconstruct the secret.
	K int
	// Total number of participants.
	N int
}

// NewStructure returns a new (k,n) threshold structure.
// It returns an error if k < 1 or k > n.
func NewStructure(k, n int) (*Structure, error) {
	if k < 1 || k > n {
		return nil, errors.Wrapf(ErrInvalidStructure, "threshold %d out of range [1, %d]", k, n)
	}

	return &Structure{K: k, N: n}, nil
}

// Qualified reports whether the given participants form a qualified
// set, i.e. whether at least K distinct valid participant indices are
// present.
func (s *Structure) Qualified(participants []int) bool {
	seen := make(map[int]bool, len(participants))
	for _, p := range participants {
		if p >= 0 && p < s.N {
			seen[p] = true
		}
	}

	return len(seen) >= s.K
}

// String returns the structure in (k,n) notation.
func (s *Structure) String() string {
	return fmt.Sprintf("(%d,%d)", s.K, s.N)
}

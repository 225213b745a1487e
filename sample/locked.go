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
	"sync"
)

// Locked wraps a Source so that it can be shared between goroutines.
type Locked struct {
	mu  sync.Mutex
	src Source
}

// NewLocked returns a synchronized facade over src. After the call src
// must only be used through the returned value.
func NewLocked(src Source) *Locked {
	return &Locked{src: src}
}

// Uint64 returns the next word of the wrapped source.
func (l *Locked) Uint64() (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.src.Uint64()
}

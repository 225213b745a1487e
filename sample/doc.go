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

// Package sample includes sources of randomness and the samplers built
// on top of them.
//
// Package sample provides the Source interface along with different
// implementations of this interface: a Uniform source reading from the
// operating system's cryptographically secure generator, a keyed
// deterministic UniformDet source based on the salsa20 stream cipher,
// and a Locked facade that makes any source safe for concurrent use.
//
// Sources are not safe for concurrent use unless stated otherwise. Work
// that is spread over several goroutines should either Fork an
// independent UniformDet per goroutine or go through a Locked source.
//
// Samplers such as Intn, Shuffle and Choose never fall back to a
// weaker generator: a failing source makes them fail.
package sample

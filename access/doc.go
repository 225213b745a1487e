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

// Package access describes the threshold access structures of visual
// cryptography schemes and builds their basis columns.
//
// In a (k,n) threshold structure any k of the n participants form a
// qualified set, while smaller sets are forbidden. The basis of such a
// structure is a pair of column sets, one for a white (no-ink) secret
// pixel and one for a black (ink) secret pixel. Every column is a bit
// vector of length n, bit i telling whether participant i receives a
// dark sub-pixel for that column.
//
// Columns are built from all bit strings of length k: strings of even
// Hamming weight make up the white set, strings of odd weight the black
// set. Each string is scattered over every k-subset of participants,
// with zeros elsewhere. Restricted to any k-1 participants the two sets
// contain the same multiset of columns, which is what hides the secret
// from forbidden sets; restricted to a full k-subset only the white set
// contains an all-zero column, which is what makes black pixels darker
// once k shares are stacked.
package access
